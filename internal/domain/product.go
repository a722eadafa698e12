package domain

import (
	"fmt"
	"strings"
	"time"
)

// VariantKind tags the closed set of product variants.
type VariantKind string

const (
	VariantStandard VariantKind = "standard"
	VariantDigital  VariantKind = "digital"
	VariantNatural  VariantKind = "natural"
	VariantNull     VariantKind = "null"
)

// UnlimitedStock is the sentinel stock value meaning "never depleted".
// Only the digital variant treats it as unlimited; see unlimitedStockPolicy.
const UnlimitedStock = -1

const maxNameLength = 100

// Product is the capability set shared by every variant. Mutations validate
// before any field write, bump UpdatedAt, and publish exactly one event,
// except on the null variant which rejects all mutations and never emits.
type Product interface {
	ID() ProductID
	Name() string
	Description() string
	Price() Money
	Stock() int
	CategoryID() string
	ImageURL() string
	Discount() float64
	CreatedAt() time.Time
	UpdatedAt() time.Time
	Variant() VariantKind

	// IsAvailable reports whether the product can currently be purchased
	IsAvailable() bool

	// FinalPrice returns the base price with the variant's discount applied
	FinalPrice() Money

	ReduceStock(qty int) error
	IncreaseStock(qty int) error

	SetName(name string) error
	SetDescription(description string) error
	SetPrice(price Money) error
	SetStock(stock int) error
	SetImageURL(url string) error
	SetDiscount(pct float64) error
}

// stockPolicy is the per-variant strategy driving the shared stock-mutation
// algorithm. It replaces virtual validate/after hooks with an explicit
// capability injected into productCore.
type stockPolicy interface {
	validateReduce(stock, qty int) error
	applyReduce(stock, qty int) int
	applyIncrease(stock, qty int) int
	available(stock int) bool
}

// finiteStockPolicy is the default: stock is a plain counter and the
// UnlimitedStock sentinel gets no special treatment.
type finiteStockPolicy struct{}

func (finiteStockPolicy) validateReduce(stock, qty int) error {
	if qty > stock {
		return fmt.Errorf("%w: have %d, need %d", ErrInsufficientStock, stock, qty)
	}
	return nil
}

func (finiteStockPolicy) applyReduce(stock, qty int) int   { return stock - qty }
func (finiteStockPolicy) applyIncrease(stock, qty int) int { return stock + qty }
func (finiteStockPolicy) available(stock int) bool         { return stock > 0 }

// unlimitedStockPolicy is the digital variant's policy: the UnlimitedStock
// sentinel passes every check and is invariant under both mutations.
type unlimitedStockPolicy struct{}

func (unlimitedStockPolicy) validateReduce(stock, qty int) error {
	if stock == UnlimitedStock {
		return nil
	}
	return finiteStockPolicy{}.validateReduce(stock, qty)
}

func (unlimitedStockPolicy) applyReduce(stock, qty int) int {
	if stock == UnlimitedStock {
		return UnlimitedStock
	}
	return stock - qty
}

func (unlimitedStockPolicy) applyIncrease(stock, qty int) int {
	if stock == UnlimitedStock {
		return UnlimitedStock
	}
	return stock + qty
}

func (unlimitedStockPolicy) available(stock int) bool {
	return stock > 0 || stock == UnlimitedStock
}

// productAttrs carries the attributes common to every constructible variant.
type productAttrs struct {
	id          ProductID
	name        string
	description string
	price       Money
	stock       int
	categoryID  string
	imageURL    string
	discount    float64
}

// productCore holds the shared state and the shared mutation machinery.
// Variants embed it and contribute their policy, extra fields and extra
// validation through their constructors.
type productCore struct {
	id          ProductID
	name        string
	description string
	price       Money
	stock       int
	categoryID  string
	imageURL    string
	discount    float64
	createdAt   time.Time
	updatedAt   time.Time
	variant     VariantKind
	policy      stockPolicy
	bus         *EventBus
}

func newProductCore(variant VariantKind, policy stockPolicy, bus *EventBus, attrs productAttrs) (productCore, error) {
	name, err := validateName(attrs.name)
	if err != nil {
		return productCore{}, err
	}
	description, err := validateDescription(attrs.description)
	if err != nil {
		return productCore{}, err
	}
	if err := validateStock(attrs.stock); err != nil {
		return productCore{}, err
	}
	if err := validateDiscount(attrs.discount); err != nil {
		return productCore{}, err
	}

	id := attrs.id
	if id.IsZero() {
		id = NewProductID()
	}

	now := time.Now()
	return productCore{
		id:          id,
		name:        name,
		description: description,
		price:       attrs.price,
		stock:       attrs.stock,
		categoryID:  attrs.categoryID,
		imageURL:    strings.TrimSpace(attrs.imageURL),
		discount:    attrs.discount,
		createdAt:   now,
		updatedAt:   now,
		variant:     variant,
		policy:      policy,
		bus:         bus,
	}, nil
}

func validateName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", fmt.Errorf("%w: name is required", ErrInvalidName)
	}
	if len(trimmed) > maxNameLength {
		return "", fmt.Errorf("%w: name exceeds %d characters", ErrInvalidName, maxNameLength)
	}
	return trimmed, nil
}

func validateDescription(description string) (string, error) {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return "", fmt.Errorf("%w: description is required", ErrInvalidDescription)
	}
	return trimmed, nil
}

func validateStock(stock int) error {
	if stock < 0 && stock != UnlimitedStock {
		return fmt.Errorf("%w: %d", ErrInvalidStock, stock)
	}
	return nil
}

func validateDiscount(pct float64) error {
	if pct < 0 || pct > 100 {
		return fmt.Errorf("%w: %v", ErrInvalidDiscount, pct)
	}
	return nil
}

func (c *productCore) ID() ProductID        { return c.id }
func (c *productCore) Name() string         { return c.name }
func (c *productCore) Description() string  { return c.description }
func (c *productCore) Price() Money         { return c.price }
func (c *productCore) Stock() int           { return c.stock }
func (c *productCore) CategoryID() string   { return c.categoryID }
func (c *productCore) ImageURL() string     { return c.imageURL }
func (c *productCore) Discount() float64    { return c.discount }
func (c *productCore) CreatedAt() time.Time { return c.createdAt }
func (c *productCore) UpdatedAt() time.Time { return c.updatedAt }
func (c *productCore) Variant() VariantKind { return c.variant }

// IsAvailable delegates to the variant's stock policy.
func (c *productCore) IsAvailable() bool {
	return c.policy.available(c.stock)
}

// FinalPrice returns the base price with the variant discount applied.
// The discount invariant (0..100) is enforced on every write, so applying
// it cannot fail here.
func (c *productCore) FinalPrice() Money {
	final, err := c.price.ApplyDiscount(c.discount)
	if err != nil {
		return c.price
	}
	return final
}

// ReduceStock decrements stock by qty under the variant's policy and
// publishes a StockChanged event. State is untouched on any failure.
func (c *productCore) ReduceStock(qty int) error {
	if qty <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidQuantity, qty)
	}
	if err := c.policy.validateReduce(c.stock, qty); err != nil {
		return err
	}
	old := c.stock
	c.stock = c.policy.applyReduce(c.stock, qty)
	c.touch()
	c.emit(StockChanged{
		ID:       c.id,
		OldStock: old,
		NewStock: c.stock,
		Delta:    -qty,
		At:       c.updatedAt,
	})
	return nil
}

// IncreaseStock increments stock by qty under the variant's policy and
// publishes a StockChanged event.
func (c *productCore) IncreaseStock(qty int) error {
	if qty <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidQuantity, qty)
	}
	old := c.stock
	c.stock = c.policy.applyIncrease(c.stock, qty)
	c.touch()
	c.emit(StockChanged{
		ID:       c.id,
		OldStock: old,
		NewStock: c.stock,
		Delta:    qty,
		At:       c.updatedAt,
	})
	return nil
}

// SetName validates and replaces the product name.
func (c *productCore) SetName(name string) error {
	validated, err := validateName(name)
	if err != nil {
		return err
	}
	old := c.name
	c.name = validated
	c.touch()
	c.emitUpdated("name", old, validated)
	return nil
}

// SetDescription validates and replaces the product description.
func (c *productCore) SetDescription(description string) error {
	validated, err := validateDescription(description)
	if err != nil {
		return err
	}
	old := c.description
	c.description = validated
	c.touch()
	c.emitUpdated("description", old, validated)
	return nil
}

// SetPrice replaces the base price. Money values are valid by construction.
func (c *productCore) SetPrice(price Money) error {
	old := c.price
	c.price = price
	c.touch()
	c.emitUpdated("price", old, price)
	return nil
}

// SetStock replaces the stock level and publishes a dedicated StockChanged
// event rather than a generic update.
func (c *productCore) SetStock(stock int) error {
	if err := validateStock(stock); err != nil {
		return err
	}
	old := c.stock
	c.stock = stock
	c.touch()
	c.emit(StockChanged{
		ID:       c.id,
		OldStock: old,
		NewStock: stock,
		Delta:    stock - old,
		At:       c.updatedAt,
	})
	return nil
}

// SetImageURL replaces the image URL.
func (c *productCore) SetImageURL(url string) error {
	old := c.imageURL
	c.imageURL = strings.TrimSpace(url)
	c.touch()
	c.emitUpdated("image_url", old, c.imageURL)
	return nil
}

// SetDiscount replaces the discount percentage, pct in [0,100].
func (c *productCore) SetDiscount(pct float64) error {
	if err := validateDiscount(pct); err != nil {
		return err
	}
	old := c.discount
	c.discount = pct
	c.touch()
	c.emitUpdated("discount", old, pct)
	return nil
}

// touch bumps updatedAt, keeping it monotonically non-decreasing.
func (c *productCore) touch() {
	now := time.Now()
	if now.After(c.updatedAt) {
		c.updatedAt = now
	}
}

func (c *productCore) emit(event Event) {
	if c.bus != nil {
		c.bus.Publish(event)
	}
}

func (c *productCore) emitUpdated(field string, oldValue, newValue any) {
	c.emit(ProductUpdated{
		ID:    c.id,
		Field: field,
		Old:   oldValue,
		New:   newValue,
		At:    c.updatedAt,
	})
}

func (c *productCore) emitCreated() {
	c.emit(ProductCreated{
		ID:    c.id,
		Name:  c.name,
		Price: c.price,
		At:    c.createdAt,
	})
}

// normalizeTags lowercases, trims, deduplicates and drops blank tags while
// preserving first-seen order.
func normalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		t := strings.ToLower(strings.TrimSpace(tag))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		normalized = append(normalized, t)
	}
	return normalized
}
