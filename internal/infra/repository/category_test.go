//go:build unit

package repository

import (
	"context"
	"testing"

	"storefront/internal/domain/catalog"
	"storefront/internal/infra"
	"storefront/internal/infra/query"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCategoryWriteQueries struct {
	mock.Mock
}

func (m *MockCategoryWriteQueries) InsertCategory(ctx context.Context, db query.DBTX, arg query.InsertCategoryParams) error {
	return m.Called(ctx, db, arg).Error(0)
}

func (m *MockCategoryWriteQueries) UpdateCategory(ctx context.Context, db query.DBTX, arg query.UpdateCategoryParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCategoryWriteQueries) DeleteCategory(ctx context.Context, db query.DBTX, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCategoryWriteQueries) CountCategories(ctx context.Context, db query.DBTX) (int64, error) {
	args := m.Called(ctx, db)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCategoryWriteQueries) CategorySlugTaken(ctx context.Context, db query.DBTX, slug, name string, exceptID uuid.UUID) (bool, error) {
	args := m.Called(ctx, db, slug, name, exceptID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryWriteQueries) CountProductsInCategory(ctx context.Context, db query.DBTX, slug string) (int64, error) {
	args := m.Called(ctx, db, slug)
	return args.Get(0).(int64), args.Error(1)
}

func TestCategoryRepository(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	tests := []struct {
		name     string
		setup    func(q *MockCategoryWriteQueries)
		run      func(r *CategoryRepository) error
		wantKind infra.RepositoryErrorKind
	}{
		{
			name: "update of a missing row is not found",
			setup: func(q *MockCategoryWriteQueries) {
				q.On("UpdateCategory", ctx, nil, mock.Anything).Return(int64(0), nil)
			},
			run: func(r *CategoryRepository) error {
				return r.Update(ctx, nil, &catalog.Category{ID: id, Name: "Beachwear", Slug: "beachwear"})
			},
			wantKind: infra.KindNotFound,
		},
		{
			name: "delete of a missing row is not found",
			setup: func(q *MockCategoryWriteQueries) {
				q.On("DeleteCategory", ctx, nil, id).Return(int64(0), nil)
			},
			run: func(r *CategoryRepository) error {
				return r.Delete(ctx, nil, id)
			},
			wantKind: infra.KindNotFound,
		},
		{
			name: "driver failure on create",
			setup: func(q *MockCategoryWriteQueries) {
				q.On("InsertCategory", ctx, nil, mock.Anything).Return(assert.AnError)
			},
			run: func(r *CategoryRepository) error {
				return r.Create(ctx, nil, &catalog.Category{ID: id, Name: "Beachwear", Slug: "beachwear"})
			},
			wantKind: infra.KindDBFailure,
		},
		{
			name: "successful update",
			setup: func(q *MockCategoryWriteQueries) {
				q.On("UpdateCategory", ctx, nil, mock.MatchedBy(func(p query.UpdateCategoryParams) bool {
					return p.ID == id && p.Slug == "outwear" && p.Subcategories != nil
				})).Return(int64(1), nil)
			},
			run: func(r *CategoryRepository) error {
				return r.Update(ctx, nil, &catalog.Category{ID: id, Name: "Outwear", Slug: "outwear"})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockCategoryWriteQueries)
			tt.setup(q)

			err := tt.run(NewCategoryRepository(q, nil))

			if tt.wantKind == "" {
				assert.NoError(t, err)
			} else {
				assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
			}
			q.AssertExpectations(t)
		})
	}
}
