package components

import (
	"storefront/internal/infra/cache"
	"storefront/internal/infra/cartstore"
	"storefront/internal/infra/query"
	"storefront/internal/infra/readstore"
	"storefront/internal/infra/storage"
	"storefront/internal/infra/uow"
	"storefront/internal/pkg/config"
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/queries"
	"storefront/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
	documentModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Product
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ProductReadQueries)),
		),
		fx.Annotate(
			readstore.NewProductReadStore,
			fx.As(new(queries.ProductReadStore)),
			fx.As(new(cache.ProductSource)),
		),
		// Category
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CategoryReadQueries)),
		),
		fx.Annotate(
			readstore.NewCategoryReadStore,
			fx.As(new(queries.CategoryReadStore)),
		),
		// Product snapshots for carts
		fx.Annotate(
			NewProductSnapshotCache,
			fx.As(new(commands.ProductReader)),
			fx.As(new(commands.ProductCache)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork: orders, checkout attempts, notification jobs and catalog writes
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

// documentModule exposes the Mongo cart store and the GCS uploader under
// their use case ports.
var documentModule = fx.Module("persistence/document",
	fx.Provide(
		func(s *cartstore.MongoCartStore) commands.CartStore { return s },
		func(s *cartstore.MongoCartStore) queries.CartReader { return s },
		func(u *storage.GCSUploader) commands.ObjectStorage { return u },
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *query.Queries {
	return query.New()
}

func NewDBTX(pool *pgxpool.Pool) query.DBTX {
	return pool
}

func NewProductSnapshotCache(client *redis.Client, source cache.ProductSource, cfg config.Config) *cache.ProductSnapshotCache {
	return cache.NewProductSnapshotCache(client, source, cfg.Redis.ProductCacheTTL)
}
