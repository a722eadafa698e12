package domain

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when a caller does not specify a currency code.
const DefaultCurrency = "EUR"

// Money is an immutable currency-tagged decimal amount. Every operation
// returns a new value; amounts are never negative. Arithmetic between two
// Money values requires equal currencies.
type Money struct {
	amount   decimal.Decimal
	currency string
}

// NewMoney creates a Money from a float amount and a 3-letter currency code.
// An empty currency falls back to DefaultCurrency.
func NewMoney(amount float64, currency string) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return Money{}, fmt.Errorf("%w: %v", ErrInvalidAmount, amount)
	}
	cur, err := normalizeCurrency(currency)
	if err != nil {
		return Money{}, err
	}
	return Money{amount: decimal.NewFromFloat(amount), currency: cur}, nil
}

// NewMoneyFromString creates a Money from a decimal string such as "19.99".
func NewMoneyFromString(amount, currency string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}
	if d.IsNegative() {
		return Money{}, fmt.Errorf("%w: %s", ErrInvalidAmount, amount)
	}
	cur, err := normalizeCurrency(currency)
	if err != nil {
		return Money{}, err
	}
	return Money{amount: d, currency: cur}, nil
}

// ZeroMoney returns a zero amount in the given currency, or DefaultCurrency
// when the code is empty.
func ZeroMoney(currency string) Money {
	cur, err := normalizeCurrency(currency)
	if err != nil {
		cur = DefaultCurrency
	}
	return Money{amount: decimal.Zero, currency: cur}
}

func normalizeCurrency(currency string) (string, error) {
	cur := strings.ToUpper(strings.TrimSpace(currency))
	if cur == "" {
		return DefaultCurrency, nil
	}
	if len(cur) != 3 {
		return "", fmt.Errorf("%w: %q", ErrInvalidCurrency, currency)
	}
	return cur, nil
}

// Amount returns the decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the 3-letter currency code.
func (m Money) Currency() string {
	if m.currency == "" {
		return DefaultCurrency
	}
	return m.currency
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Add returns m + other. Fails when the currencies differ.
func (m Money) Add(other Money) (Money, error) {
	if err := m.sameCurrency(other); err != nil {
		return Money{}, err
	}
	return Money{amount: m.amount.Add(other.amount), currency: m.Currency()}, nil
}

// Subtract returns m - other. Fails when the currencies differ or the
// result would be negative.
func (m Money) Subtract(other Money) (Money, error) {
	if err := m.sameCurrency(other); err != nil {
		return Money{}, err
	}
	result := m.amount.Sub(other.amount)
	if result.IsNegative() {
		return Money{}, fmt.Errorf("%w: subtraction result is negative", ErrInvalidAmount)
	}
	return Money{amount: result, currency: m.Currency()}, nil
}

// Multiply returns m scaled by a non-negative factor.
func (m Money) Multiply(factor float64) (Money, error) {
	if math.IsNaN(factor) || math.IsInf(factor, 0) || factor < 0 {
		return Money{}, fmt.Errorf("%w: factor %v", ErrInvalidAmount, factor)
	}
	return Money{
		amount:   m.amount.Mul(decimal.NewFromFloat(factor)),
		currency: m.Currency(),
	}, nil
}

// ApplyDiscount returns m reduced by pct percent, pct in [0,100].
func (m Money) ApplyDiscount(pct float64) (Money, error) {
	if math.IsNaN(pct) || pct < 0 || pct > 100 {
		return Money{}, fmt.Errorf("%w: %v", ErrInvalidDiscount, pct)
	}
	multiplier := decimal.NewFromInt(1).Sub(
		decimal.NewFromFloat(pct).Div(decimal.NewFromInt(100)))
	return Money{amount: m.amount.Mul(multiplier), currency: m.Currency()}, nil
}

// Equals reports value equality: same currency and numerically equal amounts.
func (m Money) Equals(other Money) bool {
	return m.Currency() == other.Currency() && m.amount.Equal(other.amount)
}

// GreaterThan reports m > other. Fails when the currencies differ.
func (m Money) GreaterThan(other Money) (bool, error) {
	if err := m.sameCurrency(other); err != nil {
		return false, err
	}
	return m.amount.GreaterThan(other.amount), nil
}

// LessThan reports m < other. Fails when the currencies differ.
func (m Money) LessThan(other Money) (bool, error) {
	if err := m.sameCurrency(other); err != nil {
		return false, err
	}
	return m.amount.LessThan(other.amount), nil
}

// String renders the exact amount and currency, e.g. "21.989 EUR".
func (m Money) String() string {
	return m.amount.String() + " " + m.Currency()
}

// StringFixed renders the amount rounded to two decimal places for display.
// The engine itself never rounds; this is presentation only.
func (m Money) StringFixed() string {
	return m.amount.StringFixed(2) + " " + m.Currency()
}

func (m Money) sameCurrency(other Money) error {
	if m.Currency() != other.Currency() {
		return fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, m.Currency(), other.Currency())
	}
	return nil
}
