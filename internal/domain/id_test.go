package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProductID_Unique(t *testing.T) {
	a := NewProductID()
	b := NewProductID()

	assert.False(t, a.IsZero())
	assert.False(t, a.Equals(b))
}

func TestParseProductID_Success(t *testing.T) {
	id, err := ParseProductID("  abc-123  ")

	require.NoError(t, err)
	assert.Equal(t, "abc-123", id.String())
}

func TestParseProductID_Empty(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n"} {
		_, err := ParseProductID(input)
		assert.ErrorIs(t, err, ErrEmptyIdentifier)
		assert.ErrorIs(t, err, ErrValidation)
	}
}

func TestProductID_Equals(t *testing.T) {
	a, _ := ParseProductID("same")
	b, _ := ParseProductID("same")
	c, _ := ParseProductID("other")

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}
