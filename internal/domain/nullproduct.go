package domain

import "time"

// NullProduct is the "not found" sentinel variant: zero price, zero stock,
// never available. Every mutator fails with ErrNullProductOperation and it
// never emits events. Boundaries that prefer errors over sentinels use the
// repository's ErrNotFound instead; both representations are supported.
type NullProduct struct{}

// NewNullProduct returns the null sentinel.
func NewNullProduct() *NullProduct {
	return &NullProduct{}
}

func (*NullProduct) ID() ProductID        { return ProductID{} }
func (*NullProduct) Name() string         { return "" }
func (*NullProduct) Description() string  { return "" }
func (*NullProduct) Price() Money         { return ZeroMoney("") }
func (*NullProduct) Stock() int           { return 0 }
func (*NullProduct) CategoryID() string   { return "" }
func (*NullProduct) ImageURL() string     { return "" }
func (*NullProduct) Discount() float64    { return 0 }
func (*NullProduct) CreatedAt() time.Time { return time.Time{} }
func (*NullProduct) UpdatedAt() time.Time { return time.Time{} }
func (*NullProduct) Variant() VariantKind { return VariantNull }

// IsAvailable is always false.
func (*NullProduct) IsAvailable() bool { return false }

// FinalPrice is always zero.
func (*NullProduct) FinalPrice() Money { return ZeroMoney("") }

func (*NullProduct) ReduceStock(int) error       { return ErrNullProductOperation }
func (*NullProduct) IncreaseStock(int) error     { return ErrNullProductOperation }
func (*NullProduct) SetName(string) error        { return ErrNullProductOperation }
func (*NullProduct) SetDescription(string) error { return ErrNullProductOperation }
func (*NullProduct) SetPrice(Money) error        { return ErrNullProductOperation }
func (*NullProduct) SetStock(int) error          { return ErrNullProductOperation }
func (*NullProduct) SetImageURL(string) error    { return ErrNullProductOperation }
func (*NullProduct) SetDiscount(float64) error   { return ErrNullProductOperation }
