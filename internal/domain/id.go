package domain

import (
	"strings"

	"github.com/google/uuid"
)

// ProductID is an immutable opaque product identifier. Equality is by value.
type ProductID struct {
	value string
}

// NewProductID generates a new globally-unique identifier.
func NewProductID() ProductID {
	return ProductID{value: uuid.NewString()}
}

// ParseProductID wraps an existing identifier, rejecting blank input.
func ParseProductID(s string) (ProductID, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ProductID{}, ErrEmptyIdentifier
	}
	return ProductID{value: trimmed}, nil
}

// String returns the underlying identifier value.
func (id ProductID) String() string {
	return id.value
}

// Equals reports structural equality on the identifier value.
func (id ProductID) Equals(other ProductID) bool {
	return id.value == other.value
}

// IsZero reports whether the identifier is the empty zero value.
func (id ProductID) IsZero() bool {
	return id.value == ""
}
