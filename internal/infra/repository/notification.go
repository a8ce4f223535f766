package repository

import (
	"context"
	"time"

	"storefront/internal/infra"
	"storefront/internal/infra/query"
	"storefront/internal/pkg/pgconv"
	"storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db query.DBTX, arg query.CreateNotificationJobParams) error
	ClaimNotificationJobs(ctx context.Context, db query.DBTX, limit int32) ([]query.NotificationJobs, error)
	UpdateNotificationJobStatus(ctx context.Context, db query.DBTX, arg query.UpdateNotificationJobStatusParams) error
}

type NotificationRepository struct {
	queries NotificationWriteQueries
	db      query.DBTX
}

func NewNotificationRepository(queries NotificationWriteQueries, db query.DBTX) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx query.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	params := query.CreateNotificationJobParams{
		ID:      uuid.New(),
		Kind:    kind,
		Topic:   topic,
		Payload: payload,
		RunAt:   pgconv.TimeToPgtype(runAt),
		Status:  shared.JobStatusQueued,
	}

	err := r.queries.CreateNotificationJob(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}

	return nil
}

// ClaimJobs locks due queued jobs; other relays skip the locked rows.
func (r *NotificationRepository) ClaimJobs(ctx context.Context, tx query.DBTX, limit int32) ([]shared.NotificationJob, error) {
	rows, err := r.queries.ClaimNotificationJobs(ctx, tx, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}

	jobs := make([]shared.NotificationJob, 0, len(rows))
	for _, row := range rows {
		jobs = append(jobs, shared.NotificationJob{
			ID:        row.ID,
			Kind:      row.Kind,
			Topic:     row.Topic,
			Payload:   row.Payload,
			Status:    row.Status,
			Attempts:  row.Attempts,
			LastError: pgconv.StringPtrFromPgtype(row.LastError),
			RunAt:     pgconv.TimeFromPgtype(row.RunAt),
		})
	}
	return jobs, nil
}

func (r *NotificationRepository) UpdateJobStatus(ctx context.Context, tx query.DBTX, job shared.NotificationJob) error {
	params := query.UpdateNotificationJobStatusParams{
		ID:        job.ID,
		Status:    job.Status,
		Attempts:  job.Attempts,
		LastError: pgconv.StringPtrToPgtype(job.LastError),
		RunAt:     pgconv.TimeToPgtype(job.RunAt),
	}

	err := r.queries.UpdateNotificationJobStatus(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update notification job status", err)
	}

	return nil
}
