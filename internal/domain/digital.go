package domain

import (
	"fmt"
	"math"
	"strings"
)

// DigitalFormat enumerates the delivery formats of a digital product.
type DigitalFormat string

const (
	FormatPDF      DigitalFormat = "pdf"
	FormatEPUB     DigitalFormat = "epub"
	FormatAudio    DigitalFormat = "audio"
	FormatVideo    DigitalFormat = "video"
	FormatSoftware DigitalFormat = "software"
)

// Valid reports whether the format is one of the known values.
func (f DigitalFormat) Valid() bool {
	switch f {
	case FormatPDF, FormatEPUB, FormatAudio, FormatVideo, FormatSoftware:
		return true
	}
	return false
}

// DigitalParams carries the attributes for constructing a digital product.
// Stock may be UnlimitedStock (-1), meaning the product is never depleted.
type DigitalParams struct {
	ID          ProductID
	Name        string
	Description string
	Price       Money
	Stock       int
	CategoryID  string
	ImageURL    string
	Discount    float64
	Format      DigitalFormat
	SizeMB      float64
	DownloadURL string
}

// DigitalProduct is a downloadable item. Its stock may be the unlimited
// sentinel, which is invariant under reduce/increase and always available.
type DigitalProduct struct {
	productCore
	format      DigitalFormat
	sizeMB      float64
	downloadURL string
}

// NewDigitalProduct validates params and constructs a digital product,
// publishing a ProductCreated event on the bus.
func NewDigitalProduct(params DigitalParams, bus *EventBus) (*DigitalProduct, error) {
	if !params.Format.Valid() {
		return nil, fmt.Errorf("%w: unknown format %q", ErrValidation, params.Format)
	}
	if math.IsNaN(params.SizeMB) || params.SizeMB < 0 {
		return nil, fmt.Errorf("%w: size %v MB", ErrValidation, params.SizeMB)
	}
	downloadURL := strings.TrimSpace(params.DownloadURL)
	if downloadURL == "" {
		return nil, fmt.Errorf("%w: download url is required", ErrValidation)
	}

	core, err := newProductCore(VariantDigital, unlimitedStockPolicy{}, bus, productAttrs{
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

	p := &DigitalProduct{
		productCore: core,
		format:      params.Format,
		sizeMB:      params.SizeMB,
		downloadURL: downloadURL,
	}
	p.emitCreated()
	return p, nil
}

// Format returns the delivery format.
func (p *DigitalProduct) Format() DigitalFormat {
	return p.format
}

// SizeMB returns the download size in megabytes.
func (p *DigitalProduct) SizeMB() float64 {
	return p.sizeMB
}

// DownloadURL returns the delivery URL.
func (p *DigitalProduct) DownloadURL() string {
	return p.downloadURL
}

// SetDownloadURL replaces the delivery URL; it must stay non-empty.
func (p *DigitalProduct) SetDownloadURL(url string) error {
	trimmed := strings.TrimSpace(url)
	if trimmed == "" {
		return fmt.Errorf("%w: download url is required", ErrValidation)
	}
	old := p.downloadURL
	p.downloadURL = trimmed
	p.touch()
	p.emitUpdated("download_url", old, trimmed)
	return nil
}

// Unlimited reports whether stock is the unlimited sentinel.
func (p *DigitalProduct) Unlimited() bool {
	return p.stock == UnlimitedStock
}
