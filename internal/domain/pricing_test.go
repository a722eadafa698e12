package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeVariant is a Product outside the closed set; only the pricer cares.
type fakeVariant struct {
	NullProduct
}

func TestPricer_DigitalQuoteKeepsFullPrecision(t *testing.T) {
	// 19.99 with no discount at 10% digital tax is exactly 21.989
	pricer, err := NewPricer(21, 10)
	require.NoError(t, err)
	p := newTestDigital(t, UnlimitedStock, nil)

	quote, err := pricer.Quote(p)

	require.NoError(t, err)
	assert.True(t, quote.Amount().Equal(decimal.RequireFromString("21.989")))
	assert.Equal(t, "EUR", quote.Currency())
}

func TestPricer_StandardUsesGeneralRate(t *testing.T) {
	pricer := DefaultPricer()
	p := newTestStandard(t, 5, 0, nil)

	quote, err := pricer.Quote(p)

	require.NoError(t, err)
	// 10.00 × 1.21
	assert.True(t, quote.Amount().Equal(decimal.RequireFromString("12.1")))
}

func TestPricer_NaturalUsesGeneralRate(t *testing.T) {
	// Natural products share the general rate; this is a recorded product
	// decision, not a bug.
	pricer := DefaultPricer()
	p := newTestNatural(t, 0, nil)

	quote, err := pricer.Quote(p)

	require.NoError(t, err)
	// 5.00 × 1.21
	assert.True(t, quote.Amount().Equal(decimal.RequireFromString("6.05")))
}

func TestPricer_DiscountAppliesBeforeTax(t *testing.T) {
	pricer := DefaultPricer()
	p := newTestStandard(t, 5, 50, nil)

	quote, err := pricer.Quote(p)

	require.NoError(t, err)
	// (10.00 × 0.5) × 1.21
	assert.True(t, quote.Amount().Equal(decimal.RequireFromString("6.05")))
}

func TestPricer_NullQuotesZero(t *testing.T) {
	pricer := DefaultPricer()

	quote, err := pricer.Quote(NewNullProduct())

	require.NoError(t, err)
	assert.True(t, quote.IsZero())
}

func TestPricer_UnknownVariant(t *testing.T) {
	pricer := DefaultPricer()

	_, err := pricer.Quote(&fakeVariant{})

	assert.ErrorIs(t, err, ErrUnsupportedVariant)
}

func TestPricer_ConfigurableRates(t *testing.T) {
	pricer, err := NewPricer(0, 0)
	require.NoError(t, err)

	quote, err := pricer.Quote(newTestStandard(t, 5, 0, nil))
	require.NoError(t, err)
	assert.True(t, quote.Equals(mustMoney(t, "10.00", "EUR")))
}

func TestNewPricer_InvalidRates(t *testing.T) {
	_, err := NewPricer(-1, 10)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewPricer(21, -0.5)
	assert.ErrorIs(t, err, ErrValidation)
}
