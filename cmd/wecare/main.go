package main

import (
	"fmt"
	"log"
	"os"

	"wecare-shop/internal/config"
	"wecare-shop/internal/inventory"
	"wecare-shop/internal/invoice"
	"wecare-shop/internal/shop"
	"wecare-shop/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading configuration: ", err)
	}

	logFile, err := logger.Init(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		log.Fatal("Failed to setup logger: ", err)
	}
	defer logFile.Close()

	logger.Info().
		Str("catalog", cfg.CatalogFile).
		Str("invoice_dir", cfg.InvoiceDir).
		Str("shipping_fee", cfg.ShippingFee.String()).
		Msg("starting shop")

	store := inventory.NewStore(cfg.CatalogFile)
	catalog, err := store.Load()
	if err != nil {
		// The shop still opens with an empty inventory.
		if os.IsNotExist(err) {
			fmt.Println("Error: Product file not found. Starting with empty inventory.")
		} else {
			fmt.Println("Error reading product file: " + err.Error())
		}
		logger.Warn().Err(err).Str("catalog", cfg.CatalogFile).Msg("loading catalog")
	}

	info := invoice.ShopInfo{
		Name:    cfg.ShopName,
		Address: cfg.ShopAddress,
		Phone:   cfg.ShopPhone,
	}

	s := shop.New(shop.Params{
		Catalog:     catalog,
		Store:       store,
		Invoices:    invoice.NewWriter(cfg.InvoiceDir, os.Stdout, info),
		In:          os.Stdin,
		Out:         os.Stdout,
		ShippingFee: cfg.ShippingFee,
		Info:        info,
	})

	if err := s.Run(); err != nil {
		logger.Error().Err(err).Msg("session aborted")
		fmt.Println("Session ended with error: " + err.Error())
	}
}
