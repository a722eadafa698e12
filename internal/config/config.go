package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Env     string
	Catalog CatalogConfig
	Pricing PricingConfig
}

// CatalogConfig holds catalog and cart settings
type CatalogConfig struct {
	DefaultCurrency string
	MaxCartLines    int
}

// PricingConfig holds tax rates in percent
type PricingConfig struct {
	GeneralTaxRate float64
	DigitalTaxRate float64
}

// Load reads configuration from environment variables and returns a Config struct
func Load() (*Config, error) {
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("ENV", "development")

	viper.SetDefault("CATALOG_DEFAULT_CURRENCY", "EUR")
	viper.SetDefault("CART_MAX_LINES", 10)

	viper.SetDefault("PRICING_GENERAL_TAX_RATE", 21.0)
	viper.SetDefault("PRICING_DIGITAL_TAX_RATE", 10.0)

	currency := strings.ToUpper(strings.TrimSpace(viper.GetString("CATALOG_DEFAULT_CURRENCY")))
	if len(currency) != 3 {
		return nil, fmt.Errorf("invalid CATALOG_DEFAULT_CURRENCY: %q", currency)
	}

	maxLines := viper.GetInt("CART_MAX_LINES")
	if maxLines <= 0 {
		return nil, fmt.Errorf("invalid CART_MAX_LINES: %d", maxLines)
	}

	generalRate := viper.GetFloat64("PRICING_GENERAL_TAX_RATE")
	if generalRate < 0 {
		return nil, fmt.Errorf("invalid PRICING_GENERAL_TAX_RATE: %v", generalRate)
	}

	digitalRate := viper.GetFloat64("PRICING_DIGITAL_TAX_RATE")
	if digitalRate < 0 {
		return nil, fmt.Errorf("invalid PRICING_DIGITAL_TAX_RATE: %v", digitalRate)
	}

	config := &Config{
		Env: viper.GetString("ENV"),
		Catalog: CatalogConfig{
			DefaultCurrency: currency,
			MaxCartLines:    maxLines,
		},
		Pricing: PricingConfig{
			GeneralTaxRate: generalRate,
			DigitalTaxRate: digitalRate,
		},
	}

	return config, nil
}
