package domain

import "errors"

var (
	// ErrNotFound is returned when a product does not exist in the repository
	ErrNotFound = errors.New("product not found")

	// ErrAlreadyExists is returned when saving a product whose id is already taken
	ErrAlreadyExists = errors.New("product already exists")

	// ErrValidation is the base error for every field-validation failure
	ErrValidation = errors.New("validation failed")

	// ErrInvalidAmount is returned for negative or non-finite monetary amounts
	ErrInvalidAmount = wrapValidation("invalid amount")

	// ErrInvalidCurrency is returned when a currency code is not exactly 3 letters
	ErrInvalidCurrency = wrapValidation("invalid currency")

	// ErrInvalidDiscount is returned when a discount percentage is outside [0,100]
	ErrInvalidDiscount = wrapValidation("invalid discount")

	// ErrEmptyIdentifier is returned when parsing a blank product id
	ErrEmptyIdentifier = wrapValidation("empty identifier")

	// ErrInvalidName is returned for an empty or over-long product name
	ErrInvalidName = wrapValidation("invalid name")

	// ErrInvalidDescription is returned for an empty product description
	ErrInvalidDescription = wrapValidation("invalid description")

	// ErrInvalidStock is returned when stock is negative and not the
	// unlimited sentinel
	ErrInvalidStock = wrapValidation("invalid stock")

	// ErrCurrencyMismatch is returned when arithmetic mixes two currencies
	ErrCurrencyMismatch = errors.New("currency mismatch")

	// ErrInvalidQuantity is returned for non-positive stock or cart quantities
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrInsufficientStock is returned when a reduction exceeds the available stock
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrProductUnavailable is returned when a cart operation references an
	// unavailable product
	ErrProductUnavailable = errors.New("product unavailable")

	// ErrCartCapacityExceeded is returned when adding a new line past the cart cap
	ErrCartCapacityExceeded = errors.New("cart capacity exceeded")

	// ErrLineNotFound is returned when updating a cart line that does not exist
	ErrLineNotFound = errors.New("cart line not found")

	// ErrUnsupportedVariant is returned for an unrecognized product variant tag
	ErrUnsupportedVariant = errors.New("unsupported product variant")

	// ErrNullProductOperation is returned by every mutator of the null product
	ErrNullProductOperation = errors.New("operation not permitted on null product")
)

// wrapValidation chains a specific failure onto ErrValidation so callers can
// classify with errors.Is(err, ErrValidation) or match the specific sentinel.
func wrapValidation(msg string) error {
	return &validationError{msg: msg}
}

type validationError struct {
	msg string
}

func (e *validationError) Error() string {
	return e.msg + ": " + ErrValidation.Error()
}

func (e *validationError) Unwrap() error {
	return ErrValidation
}
