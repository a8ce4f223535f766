package converter

import (
	"encoding/json"

	"storefront/internal/domain/catalog"
	"storefront/internal/infra/query"
	"storefront/internal/pkg/pgconv"
)

func CategoryToRow(c *catalog.Category) query.Categories {
	return query.Categories{
		ID:            c.ID,
		Name:          c.Name,
		Slug:          c.Slug,
		Description:   c.Description,
		Subcategories: nonNil(c.Subcategories),
		SortOrder:     int32(c.Order), // #nosec G115 -- admin supplied display order
		IsActive:      c.IsActive,
		CreatedAt:     pgconv.TimeToPgtype(c.CreatedAt),
		UpdatedAt:     pgconv.TimeToPgtype(c.UpdatedAt),
	}
}

func CategoryFromRow(row query.Categories) *catalog.Category {
	return &catalog.Category{
		ID:            row.ID,
		Name:          row.Name,
		Slug:          row.Slug,
		Description:   row.Description,
		Subcategories: nonNil(row.Subcategories),
		Order:         int(row.SortOrder),
		IsActive:      row.IsActive,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func ProductToRow(p *catalog.Product) (query.Products, error) {
	colors := p.Colors
	if colors == nil {
		colors = []catalog.Color{}
	}
	colorsJSON, err := json.Marshal(colors)
	if err != nil {
		return query.Products{}, err
	}

	return query.Products{
		ID:                 p.ID,
		Name:               p.Name,
		Slug:               p.Slug,
		Description:        p.Description,
		Price:              pgconv.DecimalToNumeric(p.Price),
		CompareAtPrice:     pgconv.DecimalPtrToNumeric(p.CompareAtPrice),
		DiscountPercent:    int32(p.DiscountPercent),    // #nosec G115 -- validated 0..100
		PixDiscountPercent: int32(p.PixDiscountPercent), // #nosec G115 -- validated 0..100
		Images:             nonNil(p.Images),
		Category:           p.Category,
		Subcategory:        p.Subcategory,
		Colors:             colorsJSON,
		Sizes:              nonNil(p.Sizes),
		Composition:        p.Composition,
		CareInstructions:   nonNil(p.CareInstructions),
		InStock:            p.InStock,
		Featured:           p.Featured,
		Tags:               nonNil(p.Tags),
		CreatedAt:          pgconv.TimeToPgtype(p.CreatedAt),
		UpdatedAt:          pgconv.TimeToPgtype(p.UpdatedAt),
	}, nil
}

func ProductFromRow(row query.Products) (*catalog.Product, error) {
	price, err := pgconv.DecimalFromNumeric(row.Price)
	if err != nil {
		return nil, err
	}
	compareAt, err := pgconv.DecimalPtrFromNumeric(row.CompareAtPrice)
	if err != nil {
		return nil, err
	}

	colors := []catalog.Color{}
	if len(row.Colors) > 0 {
		if err := json.Unmarshal(row.Colors, &colors); err != nil {
			return nil, err
		}
	}

	return &catalog.Product{
		ID:                 row.ID,
		Name:               row.Name,
		Slug:               row.Slug,
		Description:        row.Description,
		Price:              price,
		CompareAtPrice:     compareAt,
		DiscountPercent:    int(row.DiscountPercent),
		PixDiscountPercent: int(row.PixDiscountPercent),
		Images:             nonNil(row.Images),
		Category:           row.Category,
		Subcategory:        row.Subcategory,
		Colors:             colors,
		Sizes:              nonNil(row.Sizes),
		Composition:        row.Composition,
		CareInstructions:   nonNil(row.CareInstructions),
		InStock:            row.InStock,
		Featured:           row.Featured,
		Tags:               nonNil(row.Tags),
		CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:          pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
