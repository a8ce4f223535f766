package queries

import (
	"context"

	"storefront/internal/domain/catalog"
	"storefront/internal/infra"
	"storefront/internal/pkg/errs"
)

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/queries/mock_catalog.go -package=queriesmock

var ErrCatalogReadFailed = errs.New("failed to read catalog")

type Page struct {
	Page       int
	Limit      int
	Total      int64
	TotalPages int
}

type ProductPage struct {
	Items []*catalog.Product
	Page  Page
}

type ProductReadStore interface {
	List(ctx context.Context, f catalog.ProductFilter) ([]*catalog.Product, int64, error)
	FindByRef(ctx context.Context, ref string) (*catalog.Product, error)
	Stats(ctx context.Context) (catalog.Stats, error)
}

type CategoryReadStore interface {
	List(ctx context.Context, includeInactive bool) ([]*catalog.Category, error)
}

type ProductQueries interface {
	List(ctx context.Context, f catalog.ProductFilter) (*ProductPage, error)
	// Get accepts a product id or slug.
	Get(ctx context.Context, ref string) (*catalog.Product, error)
	Stats(ctx context.Context) (catalog.Stats, error)
}

type CategoryQueries interface {
	List(ctx context.Context, includeInactive bool) ([]*catalog.Category, error)
}

type productQueriesImpl struct {
	store ProductReadStore
}

func NewProductQueries(store ProductReadStore) ProductQueries {
	return &productQueriesImpl{store: store}
}

func (q *productQueriesImpl) List(ctx context.Context, f catalog.ProductFilter) (*ProductPage, error) {
	f = f.Normalize()
	items, total, err := q.store.List(ctx, f)
	if err != nil {
		return nil, errs.Mark(err, ErrCatalogReadFailed)
	}

	return &ProductPage{
		Items: items,
		Page: Page{
			Page:       f.Page,
			Limit:      f.Limit,
			Total:      total,
			TotalPages: int((total + int64(f.Limit) - 1) / int64(f.Limit)),
		},
	}, nil
}

func (q *productQueriesImpl) Get(ctx context.Context, ref string) (*catalog.Product, error) {
	p, err := q.store.FindByRef(ctx, ref)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrProductNotFound
		}
		return nil, errs.Mark(err, ErrCatalogReadFailed)
	}
	return p, nil
}

func (q *productQueriesImpl) Stats(ctx context.Context) (catalog.Stats, error) {
	stats, err := q.store.Stats(ctx)
	if err != nil {
		return catalog.Stats{}, errs.Mark(err, ErrCatalogReadFailed)
	}
	return stats, nil
}

type categoryQueriesImpl struct {
	store CategoryReadStore
}

func NewCategoryQueries(store CategoryReadStore) CategoryQueries {
	return &categoryQueriesImpl{store: store}
}

func (q *categoryQueriesImpl) List(ctx context.Context, includeInactive bool) ([]*catalog.Category, error) {
	cats, err := q.store.List(ctx, includeInactive)
	if err != nil {
		return nil, errs.Mark(err, ErrCatalogReadFailed)
	}
	return cats, nil
}
