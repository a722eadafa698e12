package domain

import (
	"fmt"
	"strings"
)

// StandardParams carries the attributes for constructing a standard product.
// A zero ID means "generate one".
type StandardParams struct {
	ID          ProductID
	Name        string
	Description string
	Price       Money
	Stock       int
	CategoryID  string
	ImageURL    string
	Discount    float64
	Featured    bool
	Tags        []string
}

// StandardProduct is the plain physical catalog item: finite stock, optional
// discount, featured flag and a normalized tag set.
type StandardProduct struct {
	productCore
	featured bool
	tags     []string
}

// NewStandardProduct validates params and constructs a standard product,
// publishing a ProductCreated event on the bus. A nil bus disables emission.
func NewStandardProduct(params StandardParams, bus *EventBus) (*StandardProduct, error) {
	core, err := newProductCore(VariantStandard, finiteStockPolicy{}, bus, productAttrs{
		id:          params.ID,
		name:        params.Name,
		description: params.Description,
		price:       params.Price,
		stock:       params.Stock,
		categoryID:  params.CategoryID,
		imageURL:    params.ImageURL,
		discount:    params.Discount,
	})
	if err != nil {
		return nil, err
	}

	p := &StandardProduct{
		productCore: core,
		featured:    params.Featured,
		tags:        normalizeTags(params.Tags),
	}
	p.emitCreated()
	return p, nil
}

// Featured reports whether the product is highlighted in listings.
func (p *StandardProduct) Featured() bool {
	return p.featured
}

// SetFeatured toggles the featured flag.
func (p *StandardProduct) SetFeatured(featured bool) error {
	old := p.featured
	p.featured = featured
	p.touch()
	p.emitUpdated("featured", old, featured)
	return nil
}

// Tags returns a copy of the normalized tag set.
func (p *StandardProduct) Tags() []string {
	tags := make([]string, len(p.tags))
	copy(tags, p.tags)
	return tags
}

// AddTag inserts a tag after normalization. Adding a tag that is already
// present is a no-op and emits nothing.
func (p *StandardProduct) AddTag(tag string) error {
	t := strings.ToLower(strings.TrimSpace(tag))
	if t == "" {
		return fmt.Errorf("%w: tag is empty", ErrValidation)
	}
	for _, existing := range p.tags {
		if existing == t {
			return nil
		}
	}
	old := p.Tags()
	p.tags = append(p.tags, t)
	p.touch()
	p.emitUpdated("tags", old, p.Tags())
	return nil
}

// RemoveTag drops a tag if present; absent tags are a no-op.
func (p *StandardProduct) RemoveTag(tag string) {
	t := strings.ToLower(strings.TrimSpace(tag))
	for i, existing := range p.tags {
		if existing == t {
			old := p.Tags()
			p.tags = append(p.tags[:i], p.tags[i+1:]...)
			p.touch()
			p.emitUpdated("tags", old, p.Tags())
			return
		}
	}
}
