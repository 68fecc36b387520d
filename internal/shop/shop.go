// Package shop drives the interactive menu: catalog display, the
// purchase (restock) flow and the sale flow, each ending in a catalog
// save and an invoice.
package shop

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"wecare-shop/internal/inventory"
	"wecare-shop/internal/invoice"
	"wecare-shop/pkg/logger"
	"wecare-shop/pkg/textfmt"
)

// Params carries the collaborators a Shop needs. In and Out default to
// nothing; callers pass os.Stdin/os.Stdout in production and scripted
// buffers in tests.
type Params struct {
	Catalog     *inventory.Catalog
	Store       *inventory.Store
	Invoices    *invoice.Writer
	In          io.Reader
	Out         io.Writer
	ShippingFee decimal.Decimal
	Info        invoice.ShopInfo
}

// Shop is the single-operator console front end over the catalog.
type Shop struct {
	catalog     *inventory.Catalog
	store       *inventory.Store
	invoices    *invoice.Writer
	prompt      *Prompter
	out         io.Writer
	shippingFee decimal.Decimal
	info        invoice.ShopInfo
}

// New assembles a Shop.
func New(p Params) *Shop {
	return &Shop{
		catalog:     p.Catalog,
		store:       p.Store,
		invoices:    p.Invoices,
		prompt:      NewPrompter(p.In, p.Out),
		out:         p.Out,
		shippingFee: p.ShippingFee,
		info:        p.Info,
	}
}

var displayColumns = []int{5, 20, 15, 10, 13, 15}

// DisplayProducts prints the catalog table. Prices shown are selling
// prices (twice the cost price).
func (s *Shop) DisplayProducts() {
	fmt.Fprintln(s.out, "\nAvailable Products:")
	fmt.Fprintln(s.out, textfmt.Rule("-", 80))
	fmt.Fprintln(s.out, textfmt.Row([]string{"ID", "Name", "Brand", "Qty", "Price (NPR)", "Origin"}, displayColumns, "|"))
	fmt.Fprintln(s.out, textfmt.Rule("-", 80))
	for _, p := range s.catalog.Products() {
		fmt.Fprintln(s.out, textfmt.Row([]string{
			fmt.Sprint(p.ID),
			p.Name,
			p.Brand,
			fmt.Sprint(p.Quantity),
			p.SellingPrice().StringFixed(2),
			p.Origin,
		}, displayColumns, "|"))
	}
	fmt.Fprintln(s.out, textfmt.Rule("-", 80))
}

// promptProductID re-prompts until the operator picks an ID present in
// the catalog.
func (s *Shop) promptProductID(verb string) (int, error) {
	for {
		id, err := s.prompt.Int(fmt.Sprintf("\nEnter product ID to %s: ", verb))
		if err != nil {
			return 0, err
		}
		if _, ok := s.catalog.Get(id); !ok {
			fmt.Fprintln(s.out, "Invalid product ID. Please enter a valid ID.")
			continue
		}
		return id, nil
	}
}

// persistCatalog saves the catalog, reporting failure without aborting:
// the in-memory catalog stays authoritative for the rest of the session.
func (s *Shop) persistCatalog() {
	if err := s.store.Save(s.catalog); err != nil {
		fmt.Fprintf(s.out, "Error saving product file: %v\n", err)
		logger.Error().Err(err).Msg("saving catalog")
		return
	}
	logger.Info().Int("products", s.catalog.Len()).Msg("catalog saved")
}
