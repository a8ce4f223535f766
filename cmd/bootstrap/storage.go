package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"storefront/internal/infra/storage"
	"storefront/internal/pkg/config"

	gcs "cloud.google.com/go/storage"
	"go.uber.org/fx"
)

var StorageModule = fx.Module("storage",
	fx.Provide(
		NewGCSUploader,
	),
)

// NewGCSUploader uses application default credentials. Without GCS_BUCKET the
// uploader is built client-less and every Put fails.
func NewGCSUploader(lc fx.Lifecycle, cfg config.Config) (*storage.GCSUploader, error) {
	if cfg.Storage.Bucket == "" {
		slog.Warn("GCS_BUCKET not set, image uploads are disabled")
		return storage.NewGCSUploader(nil, "", cfg.Storage.PublicBaseURL), nil
	}

	client, err := gcs.NewClient(context.Background())
	if err != nil {
		return nil, fmt.Errorf("storage.NewClient failed: %w", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return storage.NewGCSUploader(client, cfg.Storage.Bucket, cfg.Storage.PublicBaseURL), nil
}
