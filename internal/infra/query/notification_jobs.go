package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createNotificationJob = `
INSERT INTO notification_jobs (id, kind, topic, payload, status, run_at)
VALUES ($1, $2, $3, $4, $5, $6)`

type CreateNotificationJobParams struct {
	ID      uuid.UUID
	Kind    string
	Topic   string
	Payload []byte
	Status  string
	RunAt   pgtype.Timestamptz
}

func (q *Queries) CreateNotificationJob(ctx context.Context, db DBTX, arg CreateNotificationJobParams) error {
	_, err := db.Exec(ctx, createNotificationJob,
		arg.ID,
		arg.Kind,
		arg.Topic,
		arg.Payload,
		arg.Status,
		arg.RunAt,
	)
	return err
}

const claimNotificationJobs = `
SELECT id, kind, topic, payload, status, attempts, last_error, run_at, created_at, updated_at
FROM notification_jobs
WHERE status = 'queued' AND run_at <= now()
ORDER BY run_at
LIMIT $1
FOR UPDATE SKIP LOCKED`

func (q *Queries) ClaimNotificationJobs(ctx context.Context, db DBTX, limit int32) ([]NotificationJobs, error) {
	rows, err := db.Query(ctx, claimNotificationJobs, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []NotificationJobs
	for rows.Next() {
		var i NotificationJobs
		if err := rows.Scan(
			&i.ID,
			&i.Kind,
			&i.Topic,
			&i.Payload,
			&i.Status,
			&i.Attempts,
			&i.LastError,
			&i.RunAt,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const updateNotificationJobStatus = `
UPDATE notification_jobs
SET status = $2, attempts = $3, last_error = $4, run_at = $5, updated_at = now()
WHERE id = $1`

type UpdateNotificationJobStatusParams struct {
	ID        uuid.UUID
	Status    string
	Attempts  int32
	LastError pgtype.Text
	RunAt     pgtype.Timestamptz
}

func (q *Queries) UpdateNotificationJobStatus(ctx context.Context, db DBTX, arg UpdateNotificationJobStatusParams) error {
	_, err := db.Exec(ctx, updateNotificationJobStatus,
		arg.ID,
		arg.Status,
		arg.Attempts,
		arg.LastError,
		arg.RunAt,
	)
	return err
}
