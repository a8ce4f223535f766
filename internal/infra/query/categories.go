package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const categoryColumns = `id, name, slug, description, subcategories, sort_order, is_active, created_at, updated_at`

func scanCategory(row pgx.Row) (Categories, error) {
	var i Categories
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Slug,
		&i.Description,
		&i.Subcategories,
		&i.SortOrder,
		&i.IsActive,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listCategories = `
SELECT ` + categoryColumns + `
FROM categories
WHERE is_active OR $1::boolean
ORDER BY sort_order, name`

func (q *Queries) ListCategories(ctx context.Context, db DBTX, includeInactive bool) ([]Categories, error) {
	rows, err := db.Query(ctx, listCategories, includeInactive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Categories
	for rows.Next() {
		i, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const getCategory = `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`

func (q *Queries) GetCategory(ctx context.Context, db DBTX, id uuid.UUID) (Categories, error) {
	return scanCategory(db.QueryRow(ctx, getCategory, id))
}

const countCategories = `SELECT count(*) FROM categories`

func (q *Queries) CountCategories(ctx context.Context, db DBTX) (int64, error) {
	var n int64
	err := db.QueryRow(ctx, countCategories).Scan(&n)
	return n, err
}

const categorySlugTaken = `
SELECT EXISTS (SELECT 1 FROM categories WHERE (slug = $1 OR name = $2) AND id <> $3)`

// CategorySlugTaken checks slug and name uniqueness, ignoring the row with id exceptID.
func (q *Queries) CategorySlugTaken(ctx context.Context, db DBTX, slug, name string, exceptID uuid.UUID) (bool, error) {
	var taken bool
	err := db.QueryRow(ctx, categorySlugTaken, slug, name, exceptID).Scan(&taken)
	return taken, err
}

const insertCategory = `
INSERT INTO categories (` + categoryColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

type InsertCategoryParams = Categories

func (q *Queries) InsertCategory(ctx context.Context, db DBTX, arg InsertCategoryParams) error {
	_, err := db.Exec(ctx, insertCategory,
		arg.ID,
		arg.Name,
		arg.Slug,
		arg.Description,
		arg.Subcategories,
		arg.SortOrder,
		arg.IsActive,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const updateCategory = `
UPDATE categories
SET name = $2, slug = $3, description = $4, subcategories = $5,
    sort_order = $6, is_active = $7, updated_at = $8
WHERE id = $1`

type UpdateCategoryParams struct {
	ID            uuid.UUID
	Name          string
	Slug          string
	Description   string
	Subcategories []string
	SortOrder     int32
	IsActive      bool
	UpdatedAt     pgtype.Timestamptz
}

func (q *Queries) UpdateCategory(ctx context.Context, db DBTX, arg UpdateCategoryParams) (int64, error) {
	tag, err := db.Exec(ctx, updateCategory,
		arg.ID,
		arg.Name,
		arg.Slug,
		arg.Description,
		arg.Subcategories,
		arg.SortOrder,
		arg.IsActive,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteCategory = `DELETE FROM categories WHERE id = $1`

func (q *Queries) DeleteCategory(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deleteCategory, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const countProductsInCategory = `SELECT count(*) FROM products WHERE category = $1`

func (q *Queries) CountProductsInCategory(ctx context.Context, db DBTX, slug string) (int64, error) {
	var n int64
	err := db.QueryRow(ctx, countProductsInCategory, slug).Scan(&n)
	return n, err
}
