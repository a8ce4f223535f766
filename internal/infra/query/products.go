package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const productColumns = `id, name, slug, description, price, compare_at_price, discount_percent,
       pix_discount_percent, images, category, subcategory, colors, sizes, composition,
       care_instructions, in_stock, featured, tags, created_at, updated_at`

func scanProduct(row pgx.Row) (Products, error) {
	var i Products
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Slug,
		&i.Description,
		&i.Price,
		&i.CompareAtPrice,
		&i.DiscountPercent,
		&i.PixDiscountPercent,
		&i.Images,
		&i.Category,
		&i.Subcategory,
		&i.Colors,
		&i.Sizes,
		&i.Composition,
		&i.CareInstructions,
		&i.InStock,
		&i.Featured,
		&i.Tags,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

func productArgs(p Products) []interface{} {
	return []interface{}{
		p.ID,
		p.Name,
		p.Slug,
		p.Description,
		p.Price,
		p.CompareAtPrice,
		p.DiscountPercent,
		p.PixDiscountPercent,
		p.Images,
		p.Category,
		p.Subcategory,
		p.Colors,
		p.Sizes,
		p.Composition,
		p.CareInstructions,
		p.InStock,
		p.Featured,
		p.Tags,
		p.CreatedAt,
		p.UpdatedAt,
	}
}

// Empty category/search parameters disable their predicate.
const productFilter = `
WHERE ($1::text = '' OR category = $1)
  AND (NOT $2::boolean OR featured)
  AND ($3::text = '' OR name ILIKE '%' || $3 || '%' OR array_to_string(tags, ' ') ILIKE '%' || $3 || '%')`

const listProducts = `
SELECT ` + productColumns + `
FROM products` + productFilter + `
ORDER BY created_at DESC, id
LIMIT $4 OFFSET $5`

type ListProductsParams struct {
	Category string
	Featured bool
	Search   string
	Limit    int32
	Offset   int32
}

func (q *Queries) ListProducts(ctx context.Context, db DBTX, arg ListProductsParams) ([]Products, error) {
	rows, err := db.Query(ctx, listProducts, arg.Category, arg.Featured, arg.Search, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Products
	for rows.Next() {
		i, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const countProducts = `SELECT count(*) FROM products` + productFilter

func (q *Queries) CountProducts(ctx context.Context, db DBTX, arg ListProductsParams) (int64, error) {
	var n int64
	err := db.QueryRow(ctx, countProducts, arg.Category, arg.Featured, arg.Search).Scan(&n)
	return n, err
}

const getProduct = `SELECT ` + productColumns + ` FROM products WHERE id = $1`

func (q *Queries) GetProduct(ctx context.Context, db DBTX, id uuid.UUID) (Products, error) {
	return scanProduct(db.QueryRow(ctx, getProduct, id))
}

const getProductBySlug = `SELECT ` + productColumns + ` FROM products WHERE slug = $1`

func (q *Queries) GetProductBySlug(ctx context.Context, db DBTX, slug string) (Products, error) {
	return scanProduct(db.QueryRow(ctx, getProductBySlug, slug))
}

const productSlugTaken = `SELECT EXISTS (SELECT 1 FROM products WHERE slug = $1 AND id <> $2)`

func (q *Queries) ProductSlugTaken(ctx context.Context, db DBTX, slug string, exceptID uuid.UUID) (bool, error) {
	var taken bool
	err := db.QueryRow(ctx, productSlugTaken, slug, exceptID).Scan(&taken)
	return taken, err
}

const insertProduct = `
INSERT INTO products (` + productColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`

func (q *Queries) InsertProduct(ctx context.Context, db DBTX, arg Products) error {
	_, err := db.Exec(ctx, insertProduct, productArgs(arg)...)
	return err
}

const updateProduct = `
UPDATE products
SET name = $2, slug = $3, description = $4, price = $5, compare_at_price = $6,
    discount_percent = $7, pix_discount_percent = $8, images = $9, category = $10,
    subcategory = $11, colors = $12, sizes = $13, composition = $14,
    care_instructions = $15, in_stock = $16, featured = $17, tags = $18,
    updated_at = $19
WHERE id = $1`

func (q *Queries) UpdateProduct(ctx context.Context, db DBTX, arg Products) (int64, error) {
	args := productArgs(arg)
	// drop created_at, keep updated_at
	args = append(args[:18], arg.UpdatedAt)
	tag, err := db.Exec(ctx, updateProduct, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteProduct = `DELETE FROM products WHERE id = $1`

func (q *Queries) DeleteProduct(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deleteProduct, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const productStats = `
SELECT count(*),
       count(*) FILTER (WHERE in_stock),
       count(*) FILTER (WHERE NOT in_stock),
       count(*) FILTER (WHERE featured)
FROM products`

type ProductStatsRow struct {
	Total      int64
	InStock    int64
	OutOfStock int64
	Featured   int64
}

func (q *Queries) ProductStats(ctx context.Context, db DBTX) (ProductStatsRow, error) {
	var r ProductStatsRow
	err := db.QueryRow(ctx, productStats).Scan(&r.Total, &r.InStock, &r.OutOfStock, &r.Featured)
	return r, err
}
