package shared

import (
	"context"
	"time"

	"storefront/internal/domain/catalog"
	"storefront/internal/domain/order"
	"storefront/internal/infra/query"

	"github.com/google/uuid"
)

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/mock_uow.go -package=sharedmock

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Orders() OrderRepository
	CheckoutAttempts() CheckoutAttemptRepository
	Notifications() NotificationRepository
	Categories() CategoryRepository
	Products() ProductRepository
	Reads() CommandReads
	DB() query.DBTX
}

type CommandReads interface {
	OrderByID(ctx context.Context, id uuid.UUID) (*order.Order, error)
	CategoryByID(ctx context.Context, id uuid.UUID) (*catalog.Category, error)
	ProductByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error)
}

type OrderRepository interface {
	// Create reports false when the order number is already taken.
	Create(ctx context.Context, tx query.DBTX, o *order.Order) (bool, error)
}

type CheckoutAttemptRepository interface {
	TryInsert(ctx context.Context, tx query.DBTX, key, sessionID string) error
	GetForUpdate(ctx context.Context, tx query.DBTX, key string) (*CheckoutAttempt, error)
	Complete(ctx context.Context, tx query.DBTX, key string, orderID uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx query.DBTX, kind, topic string, payload []byte, runAt time.Time) error
	ClaimJobs(ctx context.Context, tx query.DBTX, limit int32) ([]NotificationJob, error)
	UpdateJobStatus(ctx context.Context, tx query.DBTX, job NotificationJob) error
}

type CategoryRepository interface {
	Create(ctx context.Context, tx query.DBTX, c *catalog.Category) error
	Update(ctx context.Context, tx query.DBTX, c *catalog.Category) error
	Delete(ctx context.Context, tx query.DBTX, id uuid.UUID) error
	Count(ctx context.Context, tx query.DBTX) (int64, error)
	SlugTaken(ctx context.Context, tx query.DBTX, slug, name string, exceptID uuid.UUID) (bool, error)
	ProductCount(ctx context.Context, tx query.DBTX, slug string) (int64, error)
}

type ProductRepository interface {
	Create(ctx context.Context, tx query.DBTX, p *catalog.Product) error
	Update(ctx context.Context, tx query.DBTX, p *catalog.Product) error
	Delete(ctx context.Context, tx query.DBTX, id uuid.UUID) error
	SlugTaken(ctx context.Context, tx query.DBTX, slug string, exceptID uuid.UUID) (bool, error)
}
