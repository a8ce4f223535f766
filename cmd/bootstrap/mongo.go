package bootstrap

import (
	"context"
	"time"

	"storefront/internal/infra/cartstore"
	"storefront/internal/pkg/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
)

var MongoModule = fx.Module("mongo",
	fx.Provide(
		NewMongoDatabase,
		NewCartStore,
	),
)

func NewMongoDatabase(lc fx.Lifecycle, cfg config.Config) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	database, err := cartstore.ConnectMongoDB(ctx, cfg.Mongo.URI, cfg.Mongo.DBName)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return database.Client().Disconnect(ctx)
		},
	})

	return database, nil
}

// NewCartStore ensures the session and TTL indexes before the server accepts traffic.
func NewCartStore(lc fx.Lifecycle, database *mongo.Database, cfg config.Config) *cartstore.MongoCartStore {
	store := cartstore.NewMongoCartStore(database, cfg.Mongo.CartTTL)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return store.EnsureIndexes(ctx)
		},
	})
	return store
}
