package domain

import "fmt"

// ProductInput is the flat payload the factory maps onto a variant
// constructor. Generic fields apply to every variant; the format/size/url
// block only to digital, the nature block only to natural. Defaults: the
// factory currency when Currency is blank, zero discount, empty lists.
type ProductInput struct {
	Name        string
	Description string
	Price       float64
	Currency    string
	Stock       int
	CategoryID  string
	ImageURL    string
	Discount    float64
	Featured    bool
	Tags        []string

	Format      DigitalFormat
	SizeMB      float64
	DownloadURL string

	Nature         NatureCategory
	Ingredients    []string
	Benefits       []string
	Certifications []string
}

// Factory constructs product variants from a tag plus payload. It only fills
// defaults; field validation stays in the constructors. This is the single
// seam where new variants are registered.
type Factory struct {
	bus             *EventBus
	defaultCurrency string
}

// NewFactory creates a factory emitting on bus. An empty defaultCurrency
// falls back to DefaultCurrency.
func NewFactory(bus *EventBus, defaultCurrency string) *Factory {
	if defaultCurrency == "" {
		defaultCurrency = DefaultCurrency
	}
	return &Factory{bus: bus, defaultCurrency: defaultCurrency}
}

// Create builds the variant named by kind. Unknown tags fail with
// ErrUnsupportedVariant.
func (f *Factory) Create(kind VariantKind, in ProductInput) (Product, error) {
	currency := in.Currency
	if currency == "" {
		currency = f.defaultCurrency
	}
	price, err := NewMoney(in.Price, currency)
	if err != nil {
		return nil, err
	}

	switch kind {
	case VariantStandard:
		return NewStandardProduct(StandardParams{
			Name:        in.Name,
			Description: in.Description,
			Price:       price,
			Stock:       in.Stock,
			CategoryID:  in.CategoryID,
			ImageURL:    in.ImageURL,
			Discount:    in.Discount,
			Featured:    in.Featured,
			Tags:        in.Tags,
		}, f.bus)
	case VariantDigital:
		return NewDigitalProduct(DigitalParams{
			Name:        in.Name,
			Description: in.Description,
			Price:       price,
			Stock:       in.Stock,
			CategoryID:  in.CategoryID,
			ImageURL:    in.ImageURL,
			Discount:    in.Discount,
			Format:      in.Format,
			SizeMB:      in.SizeMB,
			DownloadURL: in.DownloadURL,
		}, f.bus)
	case VariantNatural:
		return NewNaturalProduct(NaturalParams{
			Name:           in.Name,
			Description:    in.Description,
			Price:          price,
			Stock:          in.Stock,
			CategoryID:     in.CategoryID,
			ImageURL:       in.ImageURL,
			Discount:       in.Discount,
			Nature:         in.Nature,
			Ingredients:    in.Ingredients,
			Benefits:       in.Benefits,
			Certifications: in.Certifications,
			Featured:       in.Featured,
			Tags:           in.Tags,
		}, f.bus)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedVariant, kind)
	}
}
