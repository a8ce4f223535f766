//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront/internal/domain/catalog"
	reqdto "storefront/internal/handler/dto/request"
	"storefront/internal/infra"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/shared"
	commandsmock "storefront/tests/mock/commands"
	sharedmock "storefront/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogCommandsTestSuite struct {
	suite.Suite
	ctx        context.Context
	ctrl       *gomock.Controller
	uow        *sharedmock.MockUnitOfWork
	tx         *sharedmock.MockTx
	products   *sharedmock.MockProductRepository
	categories *sharedmock.MockCategoryRepository
	reads      *sharedmock.MockCommandReads
	cache      *commandsmock.MockProductCache
	clock      *clock.MockClock
	cmds       commands.CatalogCommands
}

func (s *CatalogCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.products = sharedmock.NewMockProductRepository(s.ctrl)
	s.categories = sharedmock.NewMockCategoryRepository(s.ctrl)
	s.reads = sharedmock.NewMockCommandReads(s.ctrl)
	s.cache = commandsmock.NewMockProductCache(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC))

	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).AnyTimes()
	s.tx.EXPECT().DB().Return(nil).AnyTimes()
	s.tx.EXPECT().Products().Return(s.products).AnyTimes()
	s.tx.EXPECT().Categories().Return(s.categories).AnyTimes()
	s.tx.EXPECT().Reads().Return(s.reads).AnyTimes()

	s.cmds = commands.NewCatalogCommands(s.uow, s.cache, s.clock)
}

func (s *CatalogCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCatalogCommandsSuite(t *testing.T) {
	suite.Run(t, new(CatalogCommandsTestSuite))
}

func ptr[T any](v T) *T { return &v }

func productRequest() reqdto.ProductRequest {
	return reqdto.ProductRequest{
		Name:        ptr("Biquíni Cortininha Azul"),
		Description: ptr("Biquíni com amarração lateral"),
		Price:       ptr(decimal.RequireFromString("129.90")),
		Category:    ptr("beachwear"),
		Sizes:       []string{"P", "M"},
	}
}

func existingProduct(id uuid.UUID) *catalog.Product {
	return &catalog.Product{
		ID:          id,
		Name:        "Biquíni Cortininha Azul",
		Slug:        "biquini-cortininha-azul",
		Description: "Biquíni com amarração lateral",
		Price:       decimal.RequireFromString("129.90"),
		Category:    "beachwear",
		InStock:     true,
	}
}

func (s *CatalogCommandsTestSuite) TestCreateProduct() {
	s.Run("success: slug derived from the name", func() {
		s.products.EXPECT().SlugTaken(gomock.Any(), nil, "biquini-cortininha-azul", uuid.Nil).Return(false, nil)
		s.products.EXPECT().Create(gomock.Any(), nil, gomock.Any()).Return(nil)

		p, err := s.cmds.CreateProduct(s.ctx, productRequest())

		s.Require().NoError(err)
		s.Equal("biquini-cortininha-azul", p.Slug)
		s.True(p.InStock)
		s.Equal(10, p.PixDiscountPercent)
	})

	s.Run("success: taken slug gets a timestamp suffix", func() {
		s.products.EXPECT().SlugTaken(gomock.Any(), nil, "biquini-cortininha-azul", uuid.Nil).Return(true, nil)
		s.products.EXPECT().Create(gomock.Any(), nil, gomock.Any()).Return(nil)

		p, err := s.cmds.CreateProduct(s.ctx, productRequest())

		s.Require().NoError(err)
		s.Equal("biquini-cortininha-azul-1738404000000", p.Slug)
	})

	s.Run("error: invalid size is rejected before the transaction", func() {
		req := productRequest()
		req.Sizes = []string{"XXL"}

		_, err := s.cmds.CreateProduct(s.ctx, req)

		s.Equal(errs.KindValidation, errs.KindOf(err))
	})
}

func (s *CatalogCommandsTestSuite) TestUpdateProduct() {
	id := uuid.New()

	s.Run("success: rename re-slugs and invalidates the cache", func() {
		s.reads.EXPECT().ProductByID(gomock.Any(), id).Return(existingProduct(id), nil)
		s.products.EXPECT().SlugTaken(gomock.Any(), nil, "maio-decote-v", id).Return(false, nil)
		s.products.EXPECT().Update(gomock.Any(), nil, gomock.Any()).Return(nil)
		s.cache.EXPECT().Invalidate(gomock.Any(), id.String()).Return(nil)

		p, err := s.cmds.UpdateProduct(s.ctx, id, reqdto.ProductRequest{Name: ptr("Maiô Decote V")})

		s.Require().NoError(err)
		s.Equal("maio-decote-v", p.Slug)
		s.Equal("beachwear", p.Category, "absent fields are kept")
	})

	s.Run("success: cache failure does not fail the update", func() {
		s.reads.EXPECT().ProductByID(gomock.Any(), id).Return(existingProduct(id), nil)
		s.products.EXPECT().Update(gomock.Any(), nil, gomock.Any()).Return(nil)
		s.cache.EXPECT().Invalidate(gomock.Any(), id.String()).Return(errors.New("redis down"))

		_, err := s.cmds.UpdateProduct(s.ctx, id, reqdto.ProductRequest{Featured: ptr(true)})

		s.NoError(err)
	})

	s.Run("error: unknown product", func() {
		s.reads.EXPECT().ProductByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("product not found", nil, infra.KindNotFound))

		_, err := s.cmds.UpdateProduct(s.ctx, id, productRequest())

		s.ErrorIs(err, errs.ErrProductNotFound)
	})

	s.Run("error: negative price", func() {
		s.reads.EXPECT().ProductByID(gomock.Any(), id).Return(existingProduct(id), nil)

		_, err := s.cmds.UpdateProduct(s.ctx, id, reqdto.ProductRequest{Price: ptr(decimal.RequireFromString("-1"))})

		s.Equal(errs.KindValidation, errs.KindOf(err))
	})
}

func (s *CatalogCommandsTestSuite) TestDeleteProduct() {
	id := uuid.New()

	s.Run("success", func() {
		s.products.EXPECT().Delete(gomock.Any(), nil, id).Return(nil)
		s.cache.EXPECT().Invalidate(gomock.Any(), id.String()).Return(nil)

		s.NoError(s.cmds.DeleteProduct(s.ctx, id))
	})

	s.Run("error: not found", func() {
		s.products.EXPECT().Delete(gomock.Any(), nil, id).
			Return(infra.WrapRepoErr("product not found", nil, infra.KindNotFound))

		s.ErrorIs(s.cmds.DeleteProduct(s.ctx, id), errs.ErrProductNotFound)
	})
}

func (s *CatalogCommandsTestSuite) TestCategories() {
	s.Run("create: slug conflict", func() {
		s.categories.EXPECT().SlugTaken(gomock.Any(), nil, "beachwear", "Beachwear", uuid.Nil).Return(true, nil)

		_, err := s.cmds.CreateCategory(s.ctx, reqdto.CreateCategoryRequest{Name: "Beachwear"})

		s.ErrorIs(err, errs.ErrCategoryExists)
		s.Equal(errs.KindConflict, errs.KindOf(err))
	})

	s.Run("create: defaults to active", func() {
		s.categories.EXPECT().SlugTaken(gomock.Any(), nil, "fitness", "Fitness", uuid.Nil).Return(false, nil)
		s.categories.EXPECT().Create(gomock.Any(), nil, gomock.Any()).Return(nil)

		cat, err := s.cmds.CreateCategory(s.ctx, reqdto.CreateCategoryRequest{Name: "Fitness"})

		s.Require().NoError(err)
		s.True(cat.IsActive)
		s.Equal([]string{}, cat.Subcategories)
	})

	s.Run("create: racing insert maps to conflict", func() {
		s.categories.EXPECT().SlugTaken(gomock.Any(), nil, "fitness", "Fitness", uuid.Nil).Return(false, nil)
		s.categories.EXPECT().Create(gomock.Any(), nil, gomock.Any()).
			Return(infra.WrapRepoErr("insert category", nil, infra.KindDuplicateKey))

		_, err := s.cmds.CreateCategory(s.ctx, reqdto.CreateCategoryRequest{Name: "Fitness"})

		s.ErrorIs(err, errs.ErrCategoryExists)
	})

	s.Run("update: rename to a taken slug", func() {
		id := uuid.New()
		cat, err := catalog.NewCategory("Outwear", "", nil, 1, true, s.clock.Now())
		s.Require().NoError(err)
		cat.ID = id
		s.reads.EXPECT().CategoryByID(gomock.Any(), id).Return(cat, nil)
		s.categories.EXPECT().SlugTaken(gomock.Any(), nil, "beachwear", "Beachwear", id).Return(true, nil)

		_, err = s.cmds.UpdateCategory(s.ctx, id, reqdto.UpdateCategoryRequest{Name: ptr("Beachwear")})

		s.ErrorIs(err, errs.ErrCategoryExists)
	})

	s.Run("delete: refused while products reference it", func() {
		id := uuid.New()
		cat, err := catalog.NewCategory("Beachwear", "", nil, 0, true, s.clock.Now())
		s.Require().NoError(err)
		s.reads.EXPECT().CategoryByID(gomock.Any(), id).Return(cat, nil)
		s.categories.EXPECT().ProductCount(gomock.Any(), nil, "beachwear").Return(int64(3), nil)

		s.ErrorIs(s.cmds.DeleteCategory(s.ctx, id), errs.ErrCategoryInUse)
	})

	s.Run("delete: unknown category", func() {
		id := uuid.New()
		s.reads.EXPECT().CategoryByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("category not found", nil, infra.KindNotFound))

		s.ErrorIs(s.cmds.DeleteCategory(s.ctx, id), errs.ErrCategoryNotFound)
	})

	s.Run("seed: inserts defaults into an empty catalog", func() {
		s.categories.EXPECT().Count(gomock.Any(), nil).Return(int64(0), nil)
		s.categories.EXPECT().Create(gomock.Any(), nil, gomock.Any()).Return(nil).Times(2)

		n, err := s.cmds.SeedCategories(s.ctx)

		s.Require().NoError(err)
		s.Equal(2, n)
	})

	s.Run("seed: skipped when categories exist", func() {
		s.categories.EXPECT().Count(gomock.Any(), nil).Return(int64(1), nil)

		n, err := s.cmds.SeedCategories(s.ctx)

		s.Require().NoError(err)
		s.Zero(n)
	})
}
