package domain

import "fmt"

// DefaultMaxCartLines caps the number of distinct products in a cart.
const DefaultMaxCartLines = 10

// CartLine is a (product, quantity) pair. The product is held by reference;
// the cart never copies or owns its state.
type CartLine struct {
	Product  Product
	Quantity int
}

// Cart is the mutable aggregate holding a bounded set of product lines,
// unique by product id, with insertion order retained. One cart per owning
// session or context; instances are passed by reference, never shared
// through package state. Like the rest of the engine the cart does no
// internal locking; callers serialize concurrent mutations.
type Cart struct {
	lines    map[string]*CartLine
	order    []string
	maxLines int
}

// NewCart creates an empty cart holding at most maxLines distinct products;
// values <= 0 select DefaultMaxCartLines.
func NewCart(maxLines int) *Cart {
	if maxLines <= 0 {
		maxLines = DefaultMaxCartLines
	}
	return &Cart{
		lines:    make(map[string]*CartLine),
		maxLines: maxLines,
	}
}

// AddProduct inserts the product with the given quantity, or increments the
// existing line. The capacity cap only applies to new lines.
func (c *Cart) AddProduct(product Product, qty int) error {
	if qty <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidQuantity, qty)
	}
	if !product.IsAvailable() {
		return fmt.Errorf("%w: %s", ErrProductUnavailable, product.ID())
	}

	key := product.ID().String()
	if line, ok := c.lines[key]; ok {
		line.Quantity += qty
		return nil
	}

	if len(c.lines) >= c.maxLines {
		return fmt.Errorf("%w: cap is %d distinct products", ErrCartCapacityExceeded, c.maxLines)
	}
	c.lines[key] = &CartLine{Product: product, Quantity: qty}
	c.order = append(c.order, key)
	return nil
}

// RemoveProduct drops the product's line; absent products are a no-op.
func (c *Cart) RemoveProduct(id ProductID) {
	key := id.String()
	if _, ok := c.lines[key]; !ok {
		return
	}
	delete(c.lines, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}

// UpdateQuantity replaces a line's quantity. A quantity <= 0 removes the
// line; the product must still be available for a positive quantity.
func (c *Cart) UpdateQuantity(id ProductID, qty int) error {
	line, ok := c.lines[id.String()]
	if !ok {
		return fmt.Errorf("%w: %s", ErrLineNotFound, id)
	}
	if qty <= 0 {
		c.RemoveProduct(id)
		return nil
	}
	if !line.Product.IsAvailable() {
		return fmt.Errorf("%w: %s", ErrProductUnavailable, id)
	}
	line.Quantity = qty
	return nil
}

// Total sums final price times quantity over all lines. Every line must
// share a currency or the accumulation fails with ErrCurrencyMismatch.
// An empty cart totals zero in the default currency.
func (c *Cart) Total() (Money, error) {
	if len(c.order) == 0 {
		return ZeroMoney(""), nil
	}

	var total Money
	for i, key := range c.order {
		line := c.lines[key]
		lineTotal, err := line.Product.FinalPrice().Multiply(float64(line.Quantity))
		if err != nil {
			return Money{}, err
		}
		if i == 0 {
			total = lineTotal
			continue
		}
		total, err = total.Add(lineTotal)
		if err != nil {
			return Money{}, err
		}
	}
	return total, nil
}

// Items returns the lines in insertion order. The slice is a copy; the
// products inside are still references.
func (c *Cart) Items() []CartLine {
	items := make([]CartLine, 0, len(c.order))
	for _, key := range c.order {
		items = append(items, *c.lines[key])
	}
	return items
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Clear removes every line.
func (c *Cart) Clear() {
	c.lines = make(map[string]*CartLine)
	c.order = nil
}

// TotalQuantity sums the quantities over all lines.
func (c *Cart) TotalQuantity() int {
	total := 0
	for _, line := range c.lines {
		total += line.Quantity
	}
	return total
}

// HasProduct reports whether a line exists for the product id.
func (c *Cart) HasProduct(id ProductID) bool {
	_, ok := c.lines[id.String()]
	return ok
}
