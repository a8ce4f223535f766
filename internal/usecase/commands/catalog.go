package commands

import (
	"context"
	"log/slog"

	"storefront/internal/domain/catalog"
	reqdto "storefront/internal/handler/dto/request"
	"storefront/internal/infra"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/commands/mock_catalog.go -package=commandsmock

var (
	ErrCatalogWriteFailed = errs.New("failed to write catalog")
)

type CatalogCommands interface {
	CreateProduct(ctx context.Context, req reqdto.ProductRequest) (*catalog.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, req reqdto.ProductRequest) (*catalog.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	CreateCategory(ctx context.Context, req reqdto.CreateCategoryRequest) (*catalog.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, req reqdto.UpdateCategoryRequest) (*catalog.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	// SeedCategories inserts the default tree into an empty catalog and
	// reports how many categories were created.
	SeedCategories(ctx context.Context) (int, error)
}

type catalogCommandsImpl struct {
	uow   shared.UnitOfWork
	cache ProductCache
	clock clock.Clock
}

func NewCatalogCommands(uow shared.UnitOfWork, cache ProductCache, clk clock.Clock) CatalogCommands {
	return &catalogCommandsImpl{
		uow:   uow,
		cache: cache,
		clock: clk,
	}
}

func (c *catalogCommandsImpl) CreateProduct(ctx context.Context, req reqdto.ProductRequest) (*catalog.Product, error) {
	now := c.clock.Now()
	p, err := catalog.NewProduct(req.ToDraft(), now)
	if err != nil {
		return nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		taken, err := tx.Products().SlugTaken(ctx, tx.DB(), p.Slug, uuid.Nil)
		if err != nil {
			return err
		}
		if taken {
			p.Slug = catalog.UniqueSlug(catalog.Slugify(p.Name), now)
		}
		return tx.Products().Create(ctx, tx.DB(), p)
	})
	if err != nil {
		return nil, errs.Mark(err, ErrCatalogWriteFailed)
	}

	slog.Info("product created", "product_id", p.ID, "slug", p.Slug)
	return p, nil
}

func (c *catalogCommandsImpl) UpdateProduct(ctx context.Context, id uuid.UUID, req reqdto.ProductRequest) (*catalog.Product, error) {
	var updated *catalog.Product
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Reads().ProductByID(ctx, id)
		if err != nil {
			return err
		}

		now := c.clock.Now()
		if renamed := p.Apply(req.ToDraft(), now); renamed {
			p.Slug = catalog.Slugify(p.Name)
			taken, err := tx.Products().SlugTaken(ctx, tx.DB(), p.Slug, p.ID)
			if err != nil {
				return err
			}
			if taken {
				p.Slug = catalog.UniqueSlug(p.Slug, now)
			}
		}
		if err := p.Validate(); err != nil {
			return err
		}
		if err := tx.Products().Update(ctx, tx.DB(), p); err != nil {
			return err
		}
		updated = p
		return nil
	})
	if err != nil {
		return nil, c.productErr(err)
	}

	c.invalidate(ctx, id)
	return updated, nil
}

func (c *catalogCommandsImpl) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Products().Delete(ctx, tx.DB(), id)
	})
	if err != nil {
		return c.productErr(err)
	}

	c.invalidate(ctx, id)
	slog.Info("product deleted", "product_id", id)
	return nil
}

func (c *catalogCommandsImpl) CreateCategory(ctx context.Context, req reqdto.CreateCategoryRequest) (*catalog.Category, error) {
	cat, err := catalog.NewCategory(req.Name, req.Description, req.Subcategories, req.Order, req.Active(), c.clock.Now())
	if err != nil {
		return nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		taken, err := tx.Categories().SlugTaken(ctx, tx.DB(), cat.Slug, cat.Name, uuid.Nil)
		if err != nil {
			return err
		}
		if taken {
			return errs.ErrCategoryExists
		}
		return tx.Categories().Create(ctx, tx.DB(), cat)
	})
	if err != nil {
		return nil, c.categoryErr(err)
	}
	return cat, nil
}

func (c *catalogCommandsImpl) UpdateCategory(ctx context.Context, id uuid.UUID, req reqdto.UpdateCategoryRequest) (*catalog.Category, error) {
	var updated *catalog.Category
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cat, err := tx.Reads().CategoryByID(ctx, id)
		if err != nil {
			return err
		}

		renamed, err := cat.Apply(req.ToPatch(), c.clock.Now())
		if err != nil {
			return err
		}
		if renamed {
			taken, err := tx.Categories().SlugTaken(ctx, tx.DB(), cat.Slug, cat.Name, cat.ID)
			if err != nil {
				return err
			}
			if taken {
				return errs.ErrCategoryExists
			}
		}
		if err := tx.Categories().Update(ctx, tx.DB(), cat); err != nil {
			return err
		}
		updated = cat
		return nil
	})
	if err != nil {
		return nil, c.categoryErr(err)
	}
	return updated, nil
}

func (c *catalogCommandsImpl) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cat, err := tx.Reads().CategoryByID(ctx, id)
		if err != nil {
			return err
		}
		inUse, err := tx.Categories().ProductCount(ctx, tx.DB(), cat.Slug)
		if err != nil {
			return err
		}
		if inUse > 0 {
			return errs.ErrCategoryInUse
		}
		return tx.Categories().Delete(ctx, tx.DB(), id)
	})
	if err != nil {
		return c.categoryErr(err)
	}
	return nil
}

func (c *catalogCommandsImpl) SeedCategories(ctx context.Context) (int, error) {
	created := 0
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created = 0
		count, err := tx.Categories().Count(ctx, tx.DB())
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		for _, cat := range catalog.DefaultCategories(c.clock.Now()) {
			if err := tx.Categories().Create(ctx, tx.DB(), cat); err != nil {
				return err
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, errs.Mark(err, ErrCatalogWriteFailed)
	}
	return created, nil
}

// invalidate is best effort: a stale snapshot expires with its TTL.
func (c *catalogCommandsImpl) invalidate(ctx context.Context, id uuid.UUID) {
	if err := c.cache.Invalidate(ctx, id.String()); err != nil {
		slog.Warn("failed to invalidate product cache", "product_id", id, "error", err)
	}
}

func (c *catalogCommandsImpl) productErr(err error) error {
	if errs.KindOf(err) != 0 {
		return err
	}
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.ErrProductNotFound
	}
	return errs.Mark(err, ErrCatalogWriteFailed)
}

func (c *catalogCommandsImpl) categoryErr(err error) error {
	if errs.KindOf(err) != 0 {
		return err
	}
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.ErrCategoryNotFound
	case infra.IsKind(err, infra.KindDuplicateKey):
		return errs.ErrCategoryExists
	}
	return errs.Mark(err, ErrCatalogWriteFailed)
}
