package repository

import (
	"context"

	"storefront/internal/domain/catalog"
	"storefront/internal/infra"
	"storefront/internal/infra/query"
	"storefront/internal/infra/repository/converter"
	"storefront/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CategoryWriteQueries interface {
	InsertCategory(ctx context.Context, db query.DBTX, arg query.InsertCategoryParams) error
	UpdateCategory(ctx context.Context, db query.DBTX, arg query.UpdateCategoryParams) (int64, error)
	DeleteCategory(ctx context.Context, db query.DBTX, id uuid.UUID) (int64, error)
	CountCategories(ctx context.Context, db query.DBTX) (int64, error)
	CategorySlugTaken(ctx context.Context, db query.DBTX, slug, name string, exceptID uuid.UUID) (bool, error)
	CountProductsInCategory(ctx context.Context, db query.DBTX, slug string) (int64, error)
}

type CategoryRepository struct {
	queries CategoryWriteQueries
	db      query.DBTX
}

func NewCategoryRepository(queries CategoryWriteQueries, db query.DBTX) *CategoryRepository {
	return &CategoryRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CategoryRepository) Create(ctx context.Context, tx query.DBTX, c *catalog.Category) error {
	if err := r.queries.InsertCategory(ctx, tx, converter.CategoryToRow(c)); err != nil {
		return infra.WrapRepoErr("failed to insert category", err)
	}
	return nil
}

func (r *CategoryRepository) Update(ctx context.Context, tx query.DBTX, c *catalog.Category) error {
	row := converter.CategoryToRow(c)
	n, err := r.queries.UpdateCategory(ctx, tx, query.UpdateCategoryParams{
		ID:            row.ID,
		Name:          row.Name,
		Slug:          row.Slug,
		Description:   row.Description,
		Subcategories: row.Subcategories,
		SortOrder:     row.SortOrder,
		IsActive:      row.IsActive,
		UpdatedAt:     pgconv.TimeToPgtype(c.UpdatedAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update category", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("category not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, tx query.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteCategory(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete category", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("category not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CategoryRepository) Count(ctx context.Context, tx query.DBTX) (int64, error) {
	n, err := r.queries.CountCategories(ctx, tx)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count categories", err)
	}
	return n, nil
}

func (r *CategoryRepository) SlugTaken(ctx context.Context, tx query.DBTX, slug, name string, exceptID uuid.UUID) (bool, error) {
	taken, err := r.queries.CategorySlugTaken(ctx, tx, slug, name, exceptID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check category slug", err)
	}
	return taken, nil
}

func (r *CategoryRepository) ProductCount(ctx context.Context, tx query.DBTX, slug string) (int64, error) {
	n, err := r.queries.CountProductsInCategory(ctx, tx, slug)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count category products", err)
	}
	return n, nil
}
