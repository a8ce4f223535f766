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

type ProductReadQueries interface {
	ListProducts(ctx context.Context, db query.DBTX, arg query.ListProductsParams) ([]query.Products, error)
	CountProducts(ctx context.Context, db query.DBTX, arg query.ListProductsParams) (int64, error)
	GetProduct(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Products, error)
	GetProductBySlug(ctx context.Context, db query.DBTX, slug string) (query.Products, error)
	ProductStats(ctx context.Context, db query.DBTX) (query.ProductStatsRow, error)
}

type ProductReadStore struct {
	queries ProductReadQueries
	db      query.DBTX
}

func NewProductReadStore(queries ProductReadQueries, db query.DBTX) *ProductReadStore {
	return &ProductReadStore{
		queries: queries,
		db:      db,
	}
}

// List returns one page of products matching f and the total match count.
func (r *ProductReadStore) List(ctx context.Context, f catalog.ProductFilter) ([]*catalog.Product, int64, error) {
	f = f.Normalize()
	params := query.ListProductsParams{
		Category: f.Category,
		Featured: f.Featured,
		Search:   f.Search,
		Limit:    int32(f.Limit),    // #nosec G115 -- capped by MaxPageLimit
		Offset:   int32(f.Offset()), // #nosec G115 -- page size is capped
	}

	rows, err := r.queries.ListProducts(ctx, r.db, params)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list products", err)
	}
	total, err := r.queries.CountProducts(ctx, r.db, params)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count products", err)
	}

	items := make([]*catalog.Product, 0, len(rows))
	for _, row := range rows {
		p, err := converter.ProductFromRow(row)
		if err != nil {
			return nil, 0, infra.WrapRepoErr("failed to decode product", err)
		}
		items = append(items, p)
	}
	return items, total, nil
}

func (r *ProductReadStore) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	return r.decode(r.queries.GetProduct(ctx, r.db, id))
}

// FindByRef accepts either a product id or its slug.
func (r *ProductReadStore) FindByRef(ctx context.Context, ref string) (*catalog.Product, error) {
	if id, err := uuid.Parse(ref); err == nil {
		return r.FindByID(ctx, id)
	}
	return r.decode(r.queries.GetProductBySlug(ctx, r.db, ref))
}

func (r *ProductReadStore) Stats(ctx context.Context) (catalog.Stats, error) {
	row, err := r.queries.ProductStats(ctx, r.db)
	if err != nil {
		return catalog.Stats{}, infra.WrapRepoErr("failed to get product stats", err)
	}
	return catalog.Stats{
		Total:      row.Total,
		InStock:    row.InStock,
		OutOfStock: row.OutOfStock,
		Featured:   row.Featured,
	}, nil
}

func (r *ProductReadStore) decode(row query.Products, err error) (*catalog.Product, error) {
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get product", err)
	}
	p, err := converter.ProductFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode product", err)
	}
	return p, nil
}
