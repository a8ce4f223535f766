package bootstrap

import (
	"context"
	"log/slog"

	"storefront/internal/infra/messaging"
	"storefront/internal/infra/outbox"
	"storefront/internal/pkg/config"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewEventPublisher,
		NewMailer,
	),
)

// NewEventPublisher returns a nil publisher when no brokers are configured;
// the relay then skips event jobs.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) outbox.EventPublisher {
	if !cfg.Kafka.Enabled() {
		slog.Info("KAFKA_BROKERS not set, order events are skipped")
		return nil
	}

	publisher := messaging.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.OrderTopic)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})
	return publisher
}

func NewMailer(cfg config.Config) outbox.Mailer {
	if !cfg.SendGrid.Enabled() {
		slog.Info("SENDGRID_API_KEY not set, confirmation emails are skipped")
		return nil
	}
	return messaging.NewSendGridMailer(cfg.SendGrid.APIKey, cfg.SendGrid.From, cfg.SendGrid.FromName)
}
