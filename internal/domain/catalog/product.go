package catalog

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"storefront/internal/domain/cart"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/patch"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var Sizes = []string{"PP", "P", "M", "G", "GG", "XG"}

type Color struct {
	Name string `json:"name"`
	Hex  string `json:"hex,omitempty"`
}

type Product struct {
	ID                 uuid.UUID
	Name               string
	Slug               string
	Description        string
	Price              decimal.Decimal
	CompareAtPrice     *decimal.Decimal
	DiscountPercent    int
	PixDiscountPercent int
	Images             []string
	Category           string
	Subcategory        string
	Colors             []Color
	Sizes              []string
	Composition        string
	CareInstructions   []string
	InStock            bool
	Featured           bool
	Tags               []string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Snapshot is what a cart line freezes when the product is first added.
func (p *Product) Snapshot() cart.Snapshot {
	image := ""
	if len(p.Images) > 0 {
		image = p.Images[0]
	}
	return cart.Snapshot{ProductID: p.ID.String(), Name: p.Name, Price: p.Price, Image: image}
}

func (p *Product) Validate() error {
	var problems []string
	if strings.TrimSpace(p.Name) == "" {
		problems = append(problems, "name is required")
	}
	if strings.TrimSpace(p.Description) == "" {
		problems = append(problems, "description is required")
	}
	if strings.TrimSpace(p.Category) == "" {
		problems = append(problems, "category is required")
	}
	if p.Price.IsNegative() {
		problems = append(problems, "price must not be negative")
	}
	if p.CompareAtPrice != nil && p.CompareAtPrice.IsNegative() {
		problems = append(problems, "compareAtPrice must not be negative")
	}
	if p.DiscountPercent < 0 || p.DiscountPercent > 100 {
		problems = append(problems, "discountPercent must be between 0 and 100")
	}
	if p.PixDiscountPercent < 0 || p.PixDiscountPercent > 100 {
		problems = append(problems, "pixDiscountPercent must be between 0 and 100")
	}
	for _, s := range p.Sizes {
		if !slices.Contains(Sizes, s) {
			problems = append(problems, fmt.Sprintf("size %q is not one of %s", s, strings.Join(Sizes, ",")))
		}
	}
	for _, c := range p.Colors {
		if strings.TrimSpace(c.Name) == "" {
			problems = append(problems, "color name is required")
			break
		}
	}
	if len(problems) > 0 {
		return errs.Validation(strings.Join(problems, "; "))
	}
	return nil
}

// ProductDraft carries the writable fields of a product. Nil fields are left
// untouched on update and defaulted on create.
type ProductDraft struct {
	Name               *string
	Description        *string
	Price              *decimal.Decimal
	CompareAtPrice     *decimal.Decimal
	DiscountPercent    *int
	PixDiscountPercent *int
	Images             []string
	Category           *string
	Subcategory        *string
	Colors             []Color
	Sizes              []string
	Composition        *string
	CareInstructions   []string
	InStock            *bool
	Featured           *bool
	Tags               []string
}

func NewProduct(d ProductDraft, now time.Time) (*Product, error) {
	p := &Product{
		ID:                 uuid.New(),
		PixDiscountPercent: 10,
		Images:             []string{},
		Colors:             []Color{},
		Sizes:              []string{},
		CareInstructions:   []string{},
		Tags:               []string{},
		InStock:            true,
		CreatedAt:          now,
	}
	if d.Price == nil {
		return nil, errs.Validation("price is required")
	}
	p.Apply(d, now)
	if err := p.Validate(); err != nil {
		return nil, err
	}
	p.Slug = Slugify(p.Name)
	return p, nil
}

// Apply copies the non-nil draft fields onto p and reports whether the name changed.
func (p *Product) Apply(d ProductDraft, now time.Time) bool {
	previous := p.Name
	patch.SetTrimmed(&p.Name, d.Name)
	patch.Set(&p.Description, d.Description)
	patch.Set(&p.Price, d.Price)
	if d.CompareAtPrice != nil {
		p.CompareAtPrice = d.CompareAtPrice
	}
	patch.Set(&p.DiscountPercent, d.DiscountPercent)
	patch.Set(&p.PixDiscountPercent, d.PixDiscountPercent)
	patch.SetSlice(&p.Images, d.Images)
	patch.SetTrimmed(&p.Category, d.Category)
	patch.SetTrimmed(&p.Subcategory, d.Subcategory)
	patch.SetSlice(&p.Colors, d.Colors)
	patch.SetSlice(&p.Sizes, d.Sizes)
	patch.SetTrimmed(&p.Composition, d.Composition)
	patch.SetSlice(&p.CareInstructions, d.CareInstructions)
	patch.Set(&p.InStock, d.InStock)
	patch.Set(&p.Featured, d.Featured)
	patch.SetSlice(&p.Tags, d.Tags)
	p.UpdatedAt = now
	return p.Name != previous
}

// UniqueSlug disambiguates a taken slug with a millisecond timestamp.
func UniqueSlug(slug string, now time.Time) string {
	return fmt.Sprintf("%s-%d", slug, now.UnixMilli())
}

// Stats is the admin dashboard summary.
type Stats struct {
	Total      int64
	InStock    int64
	OutOfStock int64
	Featured   int64
}

type ProductFilter struct {
	Category string
	Featured bool
	Search   string
	Page     int
	Limit    int
}

const (
	DefaultPageLimit = 50
	MaxPageLimit     = 100
)

func (f ProductFilter) Normalize() ProductFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = DefaultPageLimit
	}
	if f.Limit > MaxPageLimit {
		f.Limit = MaxPageLimit
	}
	f.Search = strings.TrimSpace(f.Search)
	return f
}

func (f ProductFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}
