package bootstrap

import (
	"fmt"
	"log/slog"

	"storefront/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(loadConfig),
)

func loadConfig() (config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return config.Config{}, err
	}
	if cfg.Server.IsProduction() && cfg.Cookie.SameSite == "None" && !cfg.Cookie.Secure {
		return config.Config{}, fmt.Errorf("COOKIE_SAME_SITE=None requires secure cookies")
	}
	slog.Info("config loaded",
		"env", cfg.Server.Env,
		"kafka", cfg.Kafka.Enabled(),
		"sendgrid", cfg.SendGrid.Enabled(),
		"storage_bucket", cfg.Storage.Bucket,
		"relay", cfg.Relay.Enabled,
	)
	return cfg, nil
}
