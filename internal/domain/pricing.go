package domain

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Default tax rates in percent. The general rate covers standard and natural
// products; digital products get the reduced rate. Natural products reusing
// the general rate is a recorded product decision, not an omission.
const (
	DefaultGeneralTaxRate = 21.0
	DefaultDigitalTaxRate = 10.0
)

// Pricer computes tax-inclusive quotes over the closed variant set. New
// pricing operations are added here, never on the product types. Quotes keep
// full decimal precision; rounding is a presentation concern.
type Pricer struct {
	generalMultiplier decimal.Decimal
	digitalMultiplier decimal.Decimal
}

// NewPricer builds a Pricer from tax rates given in percent.
func NewPricer(generalPct, digitalPct float64) (*Pricer, error) {
	general, err := taxMultiplier(generalPct)
	if err != nil {
		return nil, err
	}
	digital, err := taxMultiplier(digitalPct)
	if err != nil {
		return nil, err
	}
	return &Pricer{generalMultiplier: general, digitalMultiplier: digital}, nil
}

// DefaultPricer returns a Pricer with the default rates.
func DefaultPricer() *Pricer {
	p, _ := NewPricer(DefaultGeneralTaxRate, DefaultDigitalTaxRate)
	return p
}

func taxMultiplier(pct float64) (decimal.Decimal, error) {
	if math.IsNaN(pct) || math.IsInf(pct, 0) || pct < 0 {
		return decimal.Decimal{}, fmt.Errorf("%w: tax rate %v", ErrValidation, pct)
	}
	return decimal.NewFromInt(1).Add(
		decimal.NewFromFloat(pct).Div(decimal.NewFromInt(100))), nil
}

// Quote returns the discounted price with the variant's tax applied. The
// null variant quotes zero unconditionally; a product type outside the
// closed set fails with ErrUnsupportedVariant.
func (p *Pricer) Quote(product Product) (Money, error) {
	switch product.(type) {
	case *StandardProduct, *NaturalProduct:
		return withTax(product.FinalPrice(), p.generalMultiplier), nil
	case *DigitalProduct:
		return withTax(product.FinalPrice(), p.digitalMultiplier), nil
	case *NullProduct:
		return ZeroMoney(""), nil
	default:
		return Money{}, fmt.Errorf("%w: %T", ErrUnsupportedVariant, product)
	}
}

func withTax(price Money, multiplier decimal.Decimal) Money {
	return Money{
		amount:   price.amount.Mul(multiplier),
		currency: price.Currency(),
	}
}
