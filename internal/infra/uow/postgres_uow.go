package uow

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"storefront/internal/domain/catalog"
	"storefront/internal/domain/order"
	"storefront/internal/infra/query"
	"storefront/internal/infra/readstore"
	"storefront/internal/infra/repository"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// retryPolicy bounds how often a transaction that lost a serialization or
// deadlock race is replayed.
type retryPolicy struct {
	maxRetries int
	base       time.Duration
}

var defaultRetry = retryPolicy{maxRetries: 3, base: 100 * time.Millisecond}

type PostgresUoW struct {
	pool  *pgxpool.Pool
	q     *query.Queries
	retry retryPolicy
}

func NewPostgresUoW(pool *pgxpool.Pool, q *query.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool:  pool,
		q:     q,
		retry: defaultRetry,
	}
}

// Checkout relies on SELECT ... FOR UPDATE, so ReadCommitted is enough.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	opts := pgx.TxOptions{IsoLevel: pgx.ReadCommitted}

	for attempt := 0; ; attempt++ {
		err := u.runOnce(ctx, opts, fn)
		if err == nil {
			return nil
		}
		if !u.retry.allows(err, attempt) {
			if isRetryableError(err) {
				slog.Error("transaction failed after max retries", "attempts", attempt+1, "error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		wait := u.retry.backoff(attempt)
		slog.Warn("retrying transaction",
			"attempt", attempt+1,
			"wait_ms", wait.Milliseconds(),
			"error", err.Error())

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// runOnce owns exactly one pgx transaction; the rollback after a successful
// commit is a no-op returning ErrTxClosed.
func (u *PostgresUoW) runOnce(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, opts)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer func() {
		if rbErr := pgxTx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			slog.Warn("rollback failed", "error", rbErr.Error())
		}
	}()

	if err := fn(ctx, &pgTx{dbtx: pgxTx, uow: u}); err != nil {
		return err
	}
	if err := pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

func (p retryPolicy) allows(err error, attempt int) bool {
	return attempt < p.maxRetries && isRetryableError(err)
}

// backoff doubles per attempt with up to 20% jitter.
func (p retryPolicy) backoff(attempt int) time.Duration {
	wait := p.base << attempt
	if jitter := int64(wait / 5); jitter > 0 {
		wait += time.Duration(rand.Int64N(jitter))
	}
	return wait
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgErrCodeSerializationFailure || pgErr.Code == pgErrCodeDeadlockDetected
}

type pgTx struct {
	dbtx query.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	orderRepo        shared.OrderRepository
	attemptRepo      shared.CheckoutAttemptRepository
	notificationRepo shared.NotificationRepository
	categoryRepo     shared.CategoryRepository
	productRepo      shared.ProductRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) DB() query.DBTX {
	return t.dbtx
}

func (t *pgTx) Orders() shared.OrderRepository {
	if t.orderRepo == nil {
		t.orderRepo = repository.NewOrderRepository(t.uow.q, t.dbtx)
	}
	return t.orderRepo
}

func (t *pgTx) CheckoutAttempts() shared.CheckoutAttemptRepository {
	if t.attemptRepo == nil {
		t.attemptRepo = repository.NewCheckoutAttemptRepository(t.uow.q, t.dbtx)
	}
	return t.attemptRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.uow.q, t.dbtx)
	}
	return t.notificationRepo
}

func (t *pgTx) Categories() shared.CategoryRepository {
	if t.categoryRepo == nil {
		t.categoryRepo = repository.NewCategoryRepository(t.uow.q, t.dbtx)
	}
	return t.categoryRepo
}

func (t *pgTx) Products() shared.ProductRepository {
	if t.productRepo == nil {
		t.productRepo = repository.NewProductRepository(t.uow.q, t.dbtx)
	}
	return t.productRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

// commandReads resolves aggregates on the write side, inside or outside a
// transaction depending on dbtx.
type commandReads struct {
	uow  *PostgresUoW
	dbtx query.DBTX

	// Lazy-initialized readstores
	orderStore    *readstore.OrderReadStore
	categoryStore *readstore.CategoryReadStore
	productStore  *readstore.ProductReadStore
}

func (r *commandReads) OrderByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	if r.orderStore == nil {
		r.orderStore = readstore.NewOrderReadStore(r.uow.q, r.dbtx)
	}
	return r.orderStore.FindByID(ctx, id)
}

func (r *commandReads) CategoryByID(ctx context.Context, id uuid.UUID) (*catalog.Category, error) {
	if r.categoryStore == nil {
		r.categoryStore = readstore.NewCategoryReadStore(r.uow.q, r.dbtx)
	}
	return r.categoryStore.FindByID(ctx, id)
}

func (r *commandReads) ProductByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	if r.productStore == nil {
		r.productStore = readstore.NewProductReadStore(r.uow.q, r.dbtx)
	}
	return r.productStore.FindByID(ctx, id)
}
