package response

import (
	"log/slog"
	"time"

	"storefront/internal/domain/catalog"
	"storefront/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type ProductResponse struct {
	ID                 string           `json:"id"`
	Name               string           `json:"name"`
	Slug               string           `json:"slug"`
	Description        string           `json:"description"`
	Price              decimal.Decimal  `json:"price"`
	CompareAtPrice     *decimal.Decimal `json:"compareAtPrice,omitempty"`
	DiscountPercent    int              `json:"discountPercent"`
	PixDiscountPercent int              `json:"pixDiscountPercent"`
	Images             []string         `json:"images"`
	Category           string           `json:"category"`
	Subcategory        string           `json:"subcategory,omitempty"`
	Colors             []catalog.Color  `json:"colors"`
	Sizes              []string         `json:"sizes"`
	Composition        string           `json:"composition,omitempty"`
	CareInstructions   []string         `json:"careInstructions"`
	InStock            bool             `json:"inStock"`
	Featured           bool             `json:"featured"`
	Tags               []string         `json:"tags"`
	CreatedAt          time.Time        `json:"createdAt"`
	UpdatedAt          time.Time        `json:"updatedAt"`
}

type CategoryResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	Description   string    `json:"description"`
	Subcategories []string  `json:"subcategories"`
	Order         int       `json:"order"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

type ProductListResponse struct {
	Products   []*ProductResponse `json:"products"`
	Pagination Pagination         `json:"pagination"`
}

type ProductEnvelope struct {
	Product *ProductResponse `json:"product"`
	Message string           `json:"message,omitempty"`
}

type CategoryListResponse struct {
	Categories []*CategoryResponse `json:"categories"`
}

type CategoryEnvelope struct {
	Category *CategoryResponse `json:"category"`
	Message  string            `json:"message,omitempty"`
}

type SeedResponse struct {
	Created int    `json:"created"`
	Message string `json:"message"`
}

type StatsResponse struct {
	Total      int64 `json:"total"`
	InStock    int64 `json:"inStock"`
	OutOfStock int64 `json:"outOfStock"`
	Featured   int64 `json:"featured"`
}

type UploadResponse struct {
	Paths   []string `json:"paths"`
	Message string   `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// shallow: decimal and time carry unexported state a deep copy would drop
var copyOpts = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: uuid.UUID{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(uuid.UUID).String(), nil
			},
		},
	},
}

func FromProduct(p *catalog.Product) *ProductResponse {
	out := &ProductResponse{}
	if err := copier.CopyWithOption(out, p, copyOpts); err != nil {
		slog.Error("failed to map product response", "product_id", p.ID, "error", err)
	}
	return out
}

func FromProducts(ps []*catalog.Product) []*ProductResponse {
	out := make([]*ProductResponse, len(ps))
	for i, p := range ps {
		out[i] = FromProduct(p)
	}
	return out
}

func FromProductPage(page *queries.ProductPage) *ProductListResponse {
	return &ProductListResponse{
		Products: FromProducts(page.Items),
		Pagination: Pagination{
			Total:      page.Page.Total,
			Page:       page.Page.Page,
			Limit:      page.Page.Limit,
			TotalPages: page.Page.TotalPages,
		},
	}
}

func FromCategory(c *catalog.Category) *CategoryResponse {
	out := &CategoryResponse{}
	if err := copier.CopyWithOption(out, c, copyOpts); err != nil {
		slog.Error("failed to map category response", "category_id", c.ID, "error", err)
	}
	return out
}

func FromCategories(cs []*catalog.Category) []*CategoryResponse {
	out := make([]*CategoryResponse, len(cs))
	for i, c := range cs {
		out[i] = FromCategory(c)
	}
	return out
}

func FromStats(s catalog.Stats) *StatsResponse {
	return &StatsResponse{
		Total:      s.Total,
		InStock:    s.InStock,
		OutOfStock: s.OutOfStock,
		Featured:   s.Featured,
	}
}
