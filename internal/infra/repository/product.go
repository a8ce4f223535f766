package repository

import (
	"context"

	"storefront/internal/domain/catalog"
	"storefront/internal/infra"
	"storefront/internal/infra/query"
	"storefront/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type ProductWriteQueries interface {
	InsertProduct(ctx context.Context, db query.DBTX, arg query.Products) error
	UpdateProduct(ctx context.Context, db query.DBTX, arg query.Products) (int64, error)
	DeleteProduct(ctx context.Context, db query.DBTX, id uuid.UUID) (int64, error)
	ProductSlugTaken(ctx context.Context, db query.DBTX, slug string, exceptID uuid.UUID) (bool, error)
}

type ProductRepository struct {
	queries ProductWriteQueries
	db      query.DBTX
}

func NewProductRepository(queries ProductWriteQueries, db query.DBTX) *ProductRepository {
	return &ProductRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ProductRepository) Create(ctx context.Context, tx query.DBTX, p *catalog.Product) error {
	row, err := converter.ProductToRow(p)
	if err != nil {
		return infra.WrapRepoErr("failed to encode product", err)
	}
	if err := r.queries.InsertProduct(ctx, tx, row); err != nil {
		return infra.WrapRepoErr("failed to insert product", err)
	}
	return nil
}

func (r *ProductRepository) Update(ctx context.Context, tx query.DBTX, p *catalog.Product) error {
	row, err := converter.ProductToRow(p)
	if err != nil {
		return infra.WrapRepoErr("failed to encode product", err)
	}
	n, err := r.queries.UpdateProduct(ctx, tx, row)
	if err != nil {
		return infra.WrapRepoErr("failed to update product", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, tx query.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteProduct(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete product", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ProductRepository) SlugTaken(ctx context.Context, tx query.DBTX, slug string, exceptID uuid.UUID) (bool, error) {
	taken, err := r.queries.ProductSlugTaken(ctx, tx, slug, exceptID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check product slug", err)
	}
	return taken, nil
}
