//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/catalog"
	"storefront/internal/infra"
	"storefront/internal/infra/query"
	"storefront/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProductReadQueries struct {
	mock.Mock
}

func (m *MockProductReadQueries) ListProducts(ctx context.Context, db query.DBTX, arg query.ListProductsParams) ([]query.Products, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]query.Products), args.Error(1)
}

func (m *MockProductReadQueries) CountProducts(ctx context.Context, db query.DBTX, arg query.ListProductsParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductReadQueries) GetProduct(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Products, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(query.Products), args.Error(1)
}

func (m *MockProductReadQueries) GetProductBySlug(ctx context.Context, db query.DBTX, slug string) (query.Products, error) {
	args := m.Called(ctx, db, slug)
	return args.Get(0).(query.Products), args.Error(1)
}

func (m *MockProductReadQueries) ProductStats(ctx context.Context, db query.DBTX) (query.ProductStatsRow, error) {
	args := m.Called(ctx, db)
	return args.Get(0).(query.ProductStatsRow), args.Error(1)
}

func productRow(name string) query.Products {
	now := time.Now()
	return query.Products{
		ID:          uuid.New(),
		Name:        name,
		Slug:        catalog.Slugify(name),
		Description: "Lycra dupla",
		Price:       pgconv.DecimalToNumeric(decimal.RequireFromString("189.90")),
		Category:    "beachwear",
		Colors:      []byte(`[{"name":"Preto","hex":"#000000"}]`),
		Images:      []string{"https://cdn/a.jpg"},
		InStock:     true,
		CreatedAt:   pgconv.TimeToPgtype(now),
		UpdatedAt:   pgconv.TimeToPgtype(now),
	}
}

func TestProductReadStoreList(t *testing.T) {
	ctx := context.Background()
	q := new(MockProductReadQueries)
	want := query.ListProductsParams{Category: "beachwear", Search: "biquini", Limit: 10, Offset: 10}
	q.On("ListProducts", ctx, nil, want).Return([]query.Products{productRow("Biquíni Asa Delta")}, nil)
	q.On("CountProducts", ctx, nil, want).Return(int64(11), nil)

	items, total, err := NewProductReadStore(q, nil).List(ctx, catalog.ProductFilter{
		Category: "beachwear", Search: "  biquini ", Page: 2, Limit: 10,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(11), total)
	require.Len(t, items, 1)
	assert.Equal(t, "biquini-asa-delta", items[0].Slug)
	assert.Equal(t, "189.9", items[0].Price.String())
	assert.Equal(t, []catalog.Color{{Name: "Preto", Hex: "#000000"}}, items[0].Colors)
	assert.Nil(t, items[0].CompareAtPrice)
	assert.Empty(t, items[0].Tags)
}

func TestProductReadStoreFindByRef(t *testing.T) {
	ctx := context.Background()

	t.Run("uuid reference reads by id", func(t *testing.T) {
		row := productRow("Saída Kimono")
		q := new(MockProductReadQueries)
		q.On("GetProduct", ctx, nil, row.ID).Return(row, nil)

		p, err := NewProductReadStore(q, nil).FindByRef(ctx, row.ID.String())

		require.NoError(t, err)
		assert.Equal(t, row.ID, p.ID)
	})

	t.Run("slug reference reads by slug", func(t *testing.T) {
		row := productRow("Saída Kimono")
		q := new(MockProductReadQueries)
		q.On("GetProductBySlug", ctx, nil, "saida-kimono").Return(row, nil)

		p, err := NewProductReadStore(q, nil).FindByRef(ctx, "saida-kimono")

		require.NoError(t, err)
		assert.Equal(t, "Saída Kimono", p.Name)
	})

	t.Run("missing product is not found", func(t *testing.T) {
		q := new(MockProductReadQueries)
		q.On("GetProductBySlug", ctx, nil, "nope").Return(query.Products{}, pgx.ErrNoRows)

		_, err := NewProductReadStore(q, nil).FindByRef(ctx, "nope")

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
