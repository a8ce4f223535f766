package readstore

import (
	"context"

	"storefront/internal/domain/catalog"
	"storefront/internal/infra"
	"storefront/internal/infra/query"
	"storefront/internal/infra/repository/converter"
	"storefront/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CategoryReadQueries interface {
	ListCategories(ctx context.Context, db query.DBTX, includeInactive bool) ([]query.Categories, error)
	GetCategory(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Categories, error)
}

type CategoryReadStore struct {
	queries CategoryReadQueries
	db      query.DBTX
}

func NewCategoryReadStore(queries CategoryReadQueries, db query.DBTX) *CategoryReadStore {
	return &CategoryReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CategoryReadStore) List(ctx context.Context, includeInactive bool) ([]*catalog.Category, error) {
	rows, err := r.queries.ListCategories(ctx, r.db, includeInactive)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list categories", err)
	}
	out := make([]*catalog.Category, 0, len(rows))
	for _, row := range rows {
		out = append(out, converter.CategoryFromRow(row))
	}
	return out, nil
}

func (r *CategoryReadStore) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Category, error) {
	row, err := r.queries.GetCategory(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("category not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get category", err)
	}
	return converter.CategoryFromRow(row), nil
}
