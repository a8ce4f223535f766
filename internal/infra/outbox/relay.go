package outbox

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/config"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/shared"
)

//go:generate mockgen -source=relay.go -destination=../../../tests/mock/outbox/mock_relay.go -package=outboxmock

type EventPublisher interface {
	Publish(ctx context.Context, key, eventType string, payload []byte) error
}

type Mailer interface {
	Send(ctx context.Context, to, toName, subject, body string) error
}

// Relay drains queued notification jobs. A nil publisher or mailer marks the
// matching jobs skipped.
type Relay struct {
	uow       shared.UnitOfWork
	publisher EventPublisher
	mailer    Mailer
	clock     clock.Clock
	cfg       config.RelayConfig
}

func NewRelay(uow shared.UnitOfWork, publisher EventPublisher, mailer Mailer, clk clock.Clock, cfg config.RelayConfig) *Relay {
	return &Relay{
		uow:       uow,
		publisher: publisher,
		mailer:    mailer,
		clock:     clk,
		cfg:       cfg,
	}
}

func (r *Relay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if _, err := r.RunOnce(ctx); err != nil {
				slog.Error("outbox relay batch failed", "error", err.Error())
			}
		case <-ctx.Done():
			return
		}
	}
}

// RunOnce claims one batch and settles every job in it. It returns the number
// of jobs handled.
func (r *Relay) RunOnce(ctx context.Context) (int, error) {
	handled := 0
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		jobs, err := tx.Notifications().ClaimJobs(ctx, tx.DB(), r.cfg.BatchSize)
		if err != nil {
			return err
		}
		for _, job := range jobs {
			settled := r.settle(ctx, job)
			if err := tx.Notifications().UpdateJobStatus(ctx, tx.DB(), settled); err != nil {
				return err
			}
		}
		handled = len(jobs)
		return nil
	})
	return handled, err
}

func (r *Relay) settle(ctx context.Context, job shared.NotificationJob) shared.NotificationJob {
	err := r.dispatch(ctx, job)
	switch {
	case errs.Is(err, errSinkDisabled):
		job.Status = shared.JobStatusSkipped
	case err != nil:
		job.Attempts++
		msg := err.Error()
		job.LastError = &msg
		if job.Attempts >= r.cfg.MaxAttempts {
			job.Status = shared.JobStatusFailed
			slog.Error("notification job failed", "job_id", job.ID, "topic", job.Topic, "attempts", job.Attempts, "error", msg)
		} else {
			job.Status = shared.JobStatusQueued
			job.RunAt = r.clock.Now().Add(backoff(job.Attempts, r.cfg.Interval))
			slog.Warn("notification job requeued", "job_id", job.ID, "topic", job.Topic, "attempts", job.Attempts, "error", msg)
		}
	default:
		job.Status = shared.JobStatusSent
		job.LastError = nil
	}
	return job
}

var errSinkDisabled = errs.New("sink disabled")

func (r *Relay) dispatch(ctx context.Context, job shared.NotificationJob) error {
	switch job.Kind {
	case shared.JobKindEvent:
		if r.publisher == nil {
			return errSinkDisabled
		}
		var evt shared.OrderCreatedEvent
		if err := json.Unmarshal(job.Payload, &evt); err != nil {
			return fmt.Errorf("decode event payload: %w", err)
		}
		return r.publisher.Publish(ctx, evt.OrderNumber, job.Topic, job.Payload)

	case shared.JobKindEmail:
		if r.mailer == nil {
			return errSinkDisabled
		}
		var mail shared.OrderEmail
		if err := json.Unmarshal(job.Payload, &mail); err != nil {
			return fmt.Errorf("decode email payload: %w", err)
		}
		return r.mailer.Send(ctx, mail.To, mail.ToName, mail.Subject, mail.Body)

	default:
		return fmt.Errorf("unknown job kind %q", job.Kind)
	}
}

func backoff(attempts int32, base time.Duration) time.Duration {
	if attempts > 10 {
		attempts = 10
	}
	return base * time.Duration(1<<attempts)
}
