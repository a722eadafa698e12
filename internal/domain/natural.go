package domain

import (
	"fmt"
	"strings"
)

// NatureCategory enumerates the categories of a natural product.
type NatureCategory string

const (
	NatureSupplement NatureCategory = "supplement"
	NatureHerbal     NatureCategory = "herbal"
	NatureCosmetic   NatureCategory = "cosmetic"
	NatureFood       NatureCategory = "food"
)

// Valid reports whether the category is one of the known values.
func (n NatureCategory) Valid() bool {
	switch n {
	case NatureSupplement, NatureHerbal, NatureCosmetic, NatureFood:
		return true
	}
	return false
}

// NaturalParams carries the attributes for constructing a natural product.
// Ingredients and Benefits must each contain at least one non-blank entry.
type NaturalParams struct {
	ID             ProductID
	Name           string
	Description    string
	Price          Money
	Stock          int
	CategoryID     string
	ImageURL       string
	Discount       float64
	Nature         NatureCategory
	Ingredients    []string
	Benefits       []string
	Certifications []string
	Featured       bool
	Tags           []string
}

// NaturalProduct is a physical item with provenance metadata: nature
// category, ingredient and benefit lists, and certifications.
type NaturalProduct struct {
	productCore
	nature         NatureCategory
	ingredients    []string
	benefits       []string
	certifications []string
	featured       bool
	tags           []string
}

// NewNaturalProduct validates params and constructs a natural product,
// publishing a ProductCreated event on the bus.
func NewNaturalProduct(params NaturalParams, bus *EventBus) (*NaturalProduct, error) {
	if !params.Nature.Valid() {
		return nil, fmt.Errorf("%w: unknown nature category %q", ErrValidation, params.Nature)
	}
	ingredients := trimNonEmpty(params.Ingredients)
	if len(ingredients) == 0 {
		return nil, fmt.Errorf("%w: at least one ingredient is required", ErrValidation)
	}
	benefits := trimNonEmpty(params.Benefits)
	if len(benefits) == 0 {
		return nil, fmt.Errorf("%w: at least one benefit is required", ErrValidation)
	}

	core, err := newProductCore(VariantNatural, finiteStockPolicy{}, bus, productAttrs{
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

	p := &NaturalProduct{
		productCore:    core,
		nature:         params.Nature,
		ingredients:    ingredients,
		benefits:       benefits,
		certifications: trimNonEmpty(params.Certifications),
		featured:       params.Featured,
		tags:           normalizeTags(params.Tags),
	}
	p.emitCreated()
	return p, nil
}

// Nature returns the nature category.
func (p *NaturalProduct) Nature() NatureCategory {
	return p.nature
}

// Ingredients returns a copy of the ingredient list.
func (p *NaturalProduct) Ingredients() []string {
	return copyStrings(p.ingredients)
}

// Benefits returns a copy of the benefit list.
func (p *NaturalProduct) Benefits() []string {
	return copyStrings(p.benefits)
}

// Certifications returns a copy of the certification list.
func (p *NaturalProduct) Certifications() []string {
	return copyStrings(p.certifications)
}

// AddCertification appends a certification label.
func (p *NaturalProduct) AddCertification(cert string) error {
	trimmed := strings.TrimSpace(cert)
	if trimmed == "" {
		return fmt.Errorf("%w: certification is empty", ErrValidation)
	}
	old := p.Certifications()
	p.certifications = append(p.certifications, trimmed)
	p.touch()
	p.emitUpdated("certifications", old, p.Certifications())
	return nil
}

// Featured reports whether the product is highlighted in listings.
func (p *NaturalProduct) Featured() bool {
	return p.featured
}

// SetFeatured toggles the featured flag.
func (p *NaturalProduct) SetFeatured(featured bool) error {
	old := p.featured
	p.featured = featured
	p.touch()
	p.emitUpdated("featured", old, featured)
	return nil
}

// Tags returns a copy of the normalized tag set.
func (p *NaturalProduct) Tags() []string {
	return copyStrings(p.tags)
}

// AddTag inserts a tag after normalization; present tags are a no-op.
func (p *NaturalProduct) AddTag(tag string) error {
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

func trimNonEmpty(values []string) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func copyStrings(values []string) []string {
	result := make([]string, len(values))
	copy(result, values)
	return result
}
