package catalog

import (
	"strings"
	"time"

	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
)

type Category struct {
	ID            uuid.UUID
	Name          string
	Slug          string
	Description   string
	Subcategories []string
	Order         int
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewCategory(name, description string, subcategories []string, order int, active bool, now time.Time) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.Validation("category name is required")
	}
	slug := Slugify(name)
	if slug == "" {
		return nil, errs.ErrInvalidCategory
	}
	if subcategories == nil {
		subcategories = []string{}
	}

	return &Category{
		ID:            uuid.New(),
		Name:          name,
		Slug:          slug,
		Description:   strings.TrimSpace(description),
		Subcategories: subcategories,
		Order:         order,
		IsActive:      active,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// CategoryPatch holds optional fields of an update.
type CategoryPatch struct {
	Name          *string
	Description   *string
	Subcategories []string
	Order         *int
	IsActive      *bool
}

// Apply mutates c and reports whether the slug changed.
func (c *Category) Apply(p CategoryPatch, now time.Time) (bool, error) {
	renamed := false
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		slug := Slugify(name)
		if name == "" || slug == "" {
			return false, errs.Validation("category name is required")
		}
		renamed = slug != c.Slug
		c.Name, c.Slug = name, slug
	}
	if p.Description != nil {
		c.Description = strings.TrimSpace(*p.Description)
	}
	if p.Subcategories != nil {
		c.Subcategories = p.Subcategories
	}
	if p.Order != nil {
		c.Order = *p.Order
	}
	if p.IsActive != nil {
		c.IsActive = *p.IsActive
	}
	c.UpdatedAt = now
	return renamed, nil
}

// DefaultCategories is the initial catalog tree.
func DefaultCategories(now time.Time) []*Category {
	beach, _ := NewCategory("Beachwear", "Biquínis, body, maiôs e saídas de praia",
		[]string{"Biquínis", "Body/Maiô", "Saída de Praia"}, 0, true, now)
	out, _ := NewCategory("Outwear", "Vestidos, saias, calças e muito mais",
		[]string{"Vestidos", "Short e Saias", "Croppeds e Top", "Calças", "Blusas", "Macaquinhos", "Kimonos", "Sobreposição"}, 1, true, now)
	return []*Category{beach, out}
}
