package query

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Categories struct {
	ID            uuid.UUID
	Name          string
	Slug          string
	Description   string
	Subcategories []string
	SortOrder     int32
	IsActive      bool
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

type Products struct {
	ID                 uuid.UUID
	Name               string
	Slug               string
	Description        string
	Price              pgtype.Numeric
	CompareAtPrice     pgtype.Numeric
	DiscountPercent    int32
	PixDiscountPercent int32
	Images             []string
	Category           string
	Subcategory        string
	Colors             []byte
	Sizes              []string
	Composition        string
	CareInstructions   []string
	InStock            bool
	Featured           bool
	Tags               []string
	CreatedAt          pgtype.Timestamptz
	UpdatedAt          pgtype.Timestamptz
}

type Orders struct {
	ID            uuid.UUID
	OrderNumber   string
	SessionID     string
	CustomerName  string
	CustomerPhone string
	CustomerEmail pgtype.Text
	Subtotal      pgtype.Numeric
	Notes         pgtype.Text
	Status        string
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

type OrderItems struct {
	OrderID   uuid.UUID
	Position  int32
	ProductID string
	Name      string
	Price     pgtype.Numeric
	Image     string
	Size      string
	Color     string
	Quantity  int32
}

type CheckoutAttempts struct {
	Key       string
	SessionID string
	Status    string
	OrderID   pgtype.UUID
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

type NotificationJobs struct {
	ID        uuid.UUID
	Kind      string
	Topic     string
	Payload   []byte
	Status    string
	Attempts  int32
	LastError pgtype.Text
	RunAt     pgtype.Timestamptz
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}
