package errs

// Kind classifies a domain error for the transport layer.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindConflict
	KindUnauthorized
)

// Error is a user-facing sentinel. Compare with errors.Is against the
// package variables below; read the Kind with errors.As.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func newKind(k Kind, msg string) *Error { return &Error{Kind: k, Msg: msg} }

// Cart errors
var (
	ErrCartNotFound      = newKind(KindNotFound, "cart not found")
	ErrLineNotFound      = newKind(KindNotFound, "item not found in cart")
	ErrCartEmpty         = newKind(KindValidation, "cart is empty")
	ErrProductRequired   = newKind(KindValidation, "productId, name and price are required")
	ErrInvalidQuantity   = newKind(KindValidation, "quantity must be at least 1")
	ErrQuantityTooLarge  = newKind(KindValidation, "quantity is too large")
	ErrProductNotFound   = newKind(KindNotFound, "product not found")
	ErrProductOutOfStock = newKind(KindValidation, "product out of stock")
)

// Checkout errors
var (
	ErrCustomerNameRequired  = newKind(KindValidation, "customer name is required")
	ErrCustomerPhoneRequired = newKind(KindValidation, "customer phone is required")
)

// Catalog errors
var (
	ErrCategoryNotFound  = newKind(KindNotFound, "category not found")
	ErrCategoryExists    = newKind(KindConflict, "category with this slug already exists")
	ErrCategoryInUse     = newKind(KindConflict, "category has products")
	ErrInvalidProduct    = newKind(KindValidation, "invalid product")
	ErrInvalidCategory   = newKind(KindValidation, "invalid category")
	ErrNoFilesUploaded   = newKind(KindValidation, "no files uploaded")
	ErrUnsupportedUpload = newKind(KindValidation, "unsupported file type")
)

// Auth errors
var (
	ErrInvalidCredentials = newKind(KindUnauthorized, "invalid password")
	ErrUnauthorized       = newKind(KindUnauthorized, "unauthorized")
)

// Validation builds an ad-hoc validation error carrying a field-level message.
func Validation(msg string) *Error { return newKind(KindValidation, msg) }

// KindOf returns the Kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var e *Error
	if As(err, &e) {
		return e.Kind
	}
	return 0
}

// PublicMessage returns the message of the first *Error in err's chain.
func PublicMessage(err error) (string, bool) {
	var e *Error
	if As(err, &e) {
		return e.Msg, true
	}
	return "", false
}
