package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "product_details.txt", cfg.CatalogFile)
	assert.Equal(t, ".", cfg.InvoiceDir)
	assert.True(t, cfg.ShippingFee.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NotEmpty(t, cfg.LogFile)
	assert.Equal(t, "WeCare Skin Care Products", cfg.ShopName)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("CATALOG_FILE", "/tmp/catalog.txt")
	t.Setenv("SHIPPING_FEE", "750.50")
	t.Setenv("LOG_FILE", "session.log")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/catalog.txt", cfg.CatalogFile)
	assert.True(t, cfg.ShippingFee.Equal(decimal.NewFromFloat(750.5)))
	assert.Equal(t, "session.log", cfg.LogFile)
}

func TestLoadRejectsNegativeShippingFee(t *testing.T) {
	t.Setenv("SHIPPING_FEE", "-1")

	_, err := Load()
	assert.Error(t, err)
}
