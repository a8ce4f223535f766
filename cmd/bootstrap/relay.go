package bootstrap

import (
	"context"
	"log/slog"

	"storefront/internal/infra/outbox"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/config"
	"storefront/internal/usecase/shared"

	"go.uber.org/fx"
)

var RelayModule = fx.Module("relay",
	fx.Provide(
		NewRelay,
	),
	fx.Invoke(startRelay),
)

func NewRelay(uow shared.UnitOfWork, publisher outbox.EventPublisher, mailer outbox.Mailer, clk clock.Clock, cfg config.Config) *outbox.Relay {
	return outbox.NewRelay(uow, publisher, mailer, clk, cfg.Relay)
}

func startRelay(lc fx.Lifecycle, relay *outbox.Relay, cfg config.Config) {
	if !cfg.Relay.Enabled {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			slog.Info("outbox relay started", "interval", cfg.Relay.Interval, "batch_size", cfg.Relay.BatchSize)
			go func() {
				defer close(done)
				relay.Run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
			return nil
		},
	})
}
