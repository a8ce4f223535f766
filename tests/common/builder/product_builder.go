//go:build unit || integration || e2e

package builder

import (
	"time"

	"storefront/internal/domain/catalog"
	reqdto "storefront/internal/handler/dto/request"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductBuilder struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Category    string
	Sizes       []string
	Images      []string
	InStock     bool
	Featured    bool
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		Name:        "Maiô Tropical",
		Description: "Maiô com bojo removível",
		Price:       decimal.RequireFromString("189.90"),
		Category:    "moda-praia",
		Sizes:       []string{"P", "M", "G"},
		Images:      []string{"https://cdn.example.com/maio.jpg"},
		InStock:     true,
	}
}

func (b *ProductBuilder) WithName(n string) *ProductBuilder     { b.Name = n; return b }
func (b *ProductBuilder) WithCategory(c string) *ProductBuilder { b.Category = c; return b }
func (b *ProductBuilder) WithInStock(v bool) *ProductBuilder    { b.InStock = v; return b }
func (b *ProductBuilder) WithFeatured(v bool) *ProductBuilder   { b.Featured = v; return b }
func (b *ProductBuilder) WithPrice(p string) *ProductBuilder {
	b.Price = decimal.RequireFromString(p)
	return b
}

func (b *ProductBuilder) BuildDomain() *catalog.Product {
	now := time.Now().UTC()
	return &catalog.Product{
		ID:                 uuid.New(),
		Name:               b.Name,
		Slug:               catalog.Slugify(b.Name),
		Description:        b.Description,
		Price:              b.Price,
		PixDiscountPercent: 10,
		Images:             b.Images,
		Category:           b.Category,
		Colors:             []catalog.Color{},
		Sizes:              b.Sizes,
		CareInstructions:   []string{},
		InStock:            b.InStock,
		Featured:           b.Featured,
		Tags:               []string{},
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

func (b *ProductBuilder) BuildRequestDTO() reqdto.ProductRequest {
	name, desc, category := b.Name, b.Description, b.Category
	price := b.Price
	inStock, featured := b.InStock, b.Featured
	return reqdto.ProductRequest{
		Name:        &name,
		Description: &desc,
		Price:       &price,
		Category:    &category,
		Images:      b.Images,
		Sizes:       b.Sizes,
		InStock:     &inStock,
		Featured:    &featured,
	}
}
