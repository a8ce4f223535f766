package cart

import (
	"time"

	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Cart belongs to exactly one session. version increases on every persisted
// write and is used by the store for compare-and-swap.
type Cart struct {
	sessionID string
	lines     []Line
	version   int64
	createdAt time.Time
	updatedAt time.Time
}

func New(sessionID string, now time.Time) *Cart {
	return &Cart{
		sessionID: sessionID,
		lines:     []Line{},
		createdAt: now,
		updatedAt: now,
	}
}

func Reconstruct(sessionID string, lines []Line, version int64, createdAt, updatedAt time.Time) *Cart {
	if lines == nil {
		lines = []Line{}
	}
	return &Cart{
		sessionID: sessionID,
		lines:     lines,
		version:   version,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Add merges line into the cart. An existing line with the same variant key
// only gains quantity; its snapshot is left as it was.
func (c *Cart) Add(line Line) error {
	if i := c.indexOf(line.Key()); i >= 0 {
		if line.quantity > MaxLineQuantity-c.lines[i].quantity {
			return errs.ErrQuantityTooLarge
		}
		c.lines[i].quantity += line.quantity
		return nil
	}
	c.lines = append(c.lines, line)
	return nil
}

// SetQuantity overwrites a line's quantity, removing it when quantity <= 0.
func (c *Cart) SetQuantity(key VariantKey, quantity int) error {
	i := c.indexOf(key)
	if i < 0 {
		return errs.ErrLineNotFound
	}
	if quantity <= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
		return nil
	}
	if quantity > MaxLineQuantity {
		return errs.ErrQuantityTooLarge
	}
	c.lines[i].quantity = quantity
	return nil
}

// Remove drops the line for key and reports whether one existed.
func (c *Cart) Remove(key VariantKey) bool {
	i := c.indexOf(key)
	if i < 0 {
		return false
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	return true
}

func (c *Cart) Drain() {
	c.lines = []Line{}
}

func (c *Cart) Touch(now time.Time) {
	c.updatedAt = now
}

func (c *Cart) ItemCount() int {
	n := 0
	for _, l := range c.lines {
		n += l.quantity
	}
	return n
}

func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range c.lines {
		sum = sum.Add(l.Total())
	}
	return sum
}

func (c *Cart) IsEmpty() bool { return len(c.lines) == 0 }

func (c *Cart) Find(key VariantKey) (Line, bool) {
	if i := c.indexOf(key); i >= 0 {
		return c.lines[i], true
	}
	return Line{}, false
}

// Lines returns a copy.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) SessionID() string    { return c.sessionID }
func (c *Cart) Version() int64       { return c.version }
func (c *Cart) CreatedAt() time.Time { return c.createdAt }
func (c *Cart) UpdatedAt() time.Time { return c.updatedAt }

func (c *Cart) indexOf(key VariantKey) int {
	for i, l := range c.lines {
		if l.Key() == key {
			return i
		}
	}
	return -1
}
