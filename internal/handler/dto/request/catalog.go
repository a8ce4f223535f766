package request

import (
	"storefront/internal/domain/catalog"
	"storefront/internal/pkg/patch"

	"github.com/shopspring/decimal"
)

// ProductRequest serves both create and partial update; absent fields stay nil.
type ProductRequest struct {
	Name               *string          `json:"name"`
	Description        *string          `json:"description"`
	Price              *decimal.Decimal `json:"price"`
	CompareAtPrice     *decimal.Decimal `json:"compareAtPrice"`
	DiscountPercent    *int             `json:"discountPercent" binding:"omitempty,min=0,max=100"`
	PixDiscountPercent *int             `json:"pixDiscountPercent" binding:"omitempty,min=0,max=100"`
	Images             []string         `json:"images"`
	Category           *string          `json:"category"`
	Subcategory        *string          `json:"subcategory"`
	Colors             []catalog.Color  `json:"colors"`
	Sizes              []string         `json:"sizes"`
	Composition        *string          `json:"composition"`
	CareInstructions   []string         `json:"careInstructions"`
	InStock            *bool            `json:"inStock"`
	Featured           *bool            `json:"featured"`
	Tags               []string         `json:"tags"`
}

func (r *ProductRequest) ToDraft() catalog.ProductDraft {
	return catalog.ProductDraft{
		Name:               r.Name,
		Description:        r.Description,
		Price:              r.Price,
		CompareAtPrice:     r.CompareAtPrice,
		DiscountPercent:    r.DiscountPercent,
		PixDiscountPercent: r.PixDiscountPercent,
		Images:             r.Images,
		Category:           r.Category,
		Subcategory:        r.Subcategory,
		Colors:             r.Colors,
		Sizes:              r.Sizes,
		Composition:        r.Composition,
		CareInstructions:   r.CareInstructions,
		InStock:            r.InStock,
		Featured:           r.Featured,
		Tags:               r.Tags,
	}
}

type ProductListRequest struct {
	Category string `form:"category"`
	Featured bool   `form:"featured"`
	Search   string `form:"search"`
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
}

func (r *ProductListRequest) ToFilter() catalog.ProductFilter {
	return catalog.ProductFilter{
		Category: r.Category,
		Featured: r.Featured,
		Search:   r.Search,
		Page:     r.Page,
		Limit:    r.Limit,
	}.Normalize()
}

type CreateCategoryRequest struct {
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description"`
	Subcategories []string `json:"subcategories"`
	Order         int      `json:"order"`
	IsActive      *bool    `json:"isActive"`
}

func (r *CreateCategoryRequest) Active() bool {
	return patch.Coalesce(r.IsActive, true)
}

type UpdateCategoryRequest struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	Subcategories []string `json:"subcategories"`
	Order         *int     `json:"order"`
	IsActive      *bool    `json:"isActive"`
}

func (r *UpdateCategoryRequest) ToPatch() catalog.CategoryPatch {
	return catalog.CategoryPatch{
		Name:          r.Name,
		Description:   r.Description,
		Subcategories: r.Subcategories,
		Order:         r.Order,
		IsActive:      r.IsActive,
	}
}
