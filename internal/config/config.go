package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// Config defines all configurable parameters for the shop, sourced from
// environment variables (loaded from .env for local runs).
type Config struct {
	// Storage
	CatalogFile string `envconfig:"CATALOG_FILE" default:"product_details.txt"`
	InvoiceDir  string `envconfig:"INVOICE_DIR" default:"."`

	// Sale rules
	ShippingFee decimal.Decimal `envconfig:"SHIPPING_FEE" default:"500"`

	// Logging
	LogFile  string `envconfig:"LOG_FILE"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Shop identity shown on banners and invoices
	ShopName    string `envconfig:"SHOP_NAME" default:"WeCare Skin Care Products"`
	ShopAddress string `envconfig:"SHOP_ADDRESS" default:"Kamalpokhari, Kathmandu"`
	ShopPhone   string `envconfig:"SHOP_PHONE" default:"9811190255"`
}

// Load reads configuration from the .env file and environment variables.
// A missing .env file is not an error; the environment alone may be
// enough.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("processing environment config: %w", err)
	}

	if cfg.LogFile == "" {
		cfg.LogFile = fmt.Sprintf("wecare_%s.log", time.Now().Format("20060102_150405"))
	}

	if cfg.ShippingFee.IsNegative() {
		return nil, fmt.Errorf("SHIPPING_FEE must not be negative, got %s", cfg.ShippingFee)
	}

	return &cfg, nil
}
