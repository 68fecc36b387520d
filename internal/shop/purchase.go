package shop

import (
	"fmt"

	"github.com/shopspring/decimal"

	"wecare-shop/internal/invoice"
	"wecare-shop/pkg/logger"
)

// PurchaseProducts runs the restock flow: supplier name, then one or
// more line items (product, quantity, optional price override), then a
// catalog save and a purchase invoice. The catalog is mutated per line
// item; persistence happens once at the end.
func (s *Shop) PurchaseProducts() error {
	fmt.Fprintln(s.out, "\n------------------ Purchase Products -----------------------")

	supplier, err := s.prompt.NonEmpty("Please, Enter supplier name: ", "Please, Don't leave the supplier name empty.\n")
	if err != nil {
		return err
	}

	var items []invoice.PurchaseItem
	total := decimal.Zero

	for {
		s.DisplayProducts()

		id, err := s.promptProductID("purchase")
		if err != nil {
			return err
		}

		qty, err := s.promptPurchaseQuantity()
		if err != nil {
			return err
		}

		current, _ := s.catalog.Get(id)
		price, err := s.promptPriceOverride(current.CostPrice)
		if err != nil {
			return err
		}

		updated, err := s.catalog.Restock(id, qty, price)
		if err != nil {
			// Inputs were validated above; a failure here means the
			// product vanished, which cannot happen in this
			// single-operator loop. Report and re-enter the loop.
			fmt.Fprintf(s.out, "Could not record purchase: %v\n", err)
			continue
		}

		items = append(items, invoice.PurchaseItem{
			Name:     updated.Name,
			Brand:    updated.Brand,
			Quantity: qty,
			UnitCost: price,
		})
		total = total.Add(price.Mul(decimal.NewFromInt(int64(qty))))
		fmt.Fprintf(s.out, "Added %d %s to purchase list.\n", qty, updated.Name)

		more, err := s.prompt.YesNo("Do you want to purchase more items? (yes/no): ")
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}

	if len(items) == 0 {
		fmt.Fprintln(s.out, "No products purchased.")
		return nil
	}

	s.persistCatalog()
	if _, err := s.invoices.EmitPurchase(supplier, items, total); err != nil {
		fmt.Fprintf(s.out, "Error creating purchase invoice: %v\n", err)
	}
	logger.Info().
		Str("supplier", supplier).
		Int("lines", len(items)).
		Str("total", total.StringFixed(2)).
		Msg("purchase committed")
	return nil
}

func (s *Shop) promptPurchaseQuantity() (int, error) {
	for {
		qty, err := s.prompt.Int("Please, Enter quantity to purchase: ")
		if err != nil {
			return 0, err
		}
		if qty <= 0 {
			fmt.Fprintln(s.out, "Quantity must be positive. So, Please try again.")
			continue
		}
		return qty, nil
	}
}

// promptPriceOverride shows the current cost price; an empty entry keeps
// it, anything else must parse as a positive decimal.
func (s *Shop) promptPriceOverride(current decimal.Decimal) (decimal.Decimal, error) {
	for {
		line, err := s.prompt.Line(fmt.Sprintf("Current cost price is NPR %s. Enter new price or press enter to keep same: ", current.StringFixed(2)))
		if err != nil {
			return decimal.Zero, err
		}
		if line == "" {
			return current, nil
		}
		price, err := decimal.NewFromString(line)
		if err != nil {
			fmt.Fprintln(s.out, "Invalid input. Please enter a number.")
			continue
		}
		if !price.IsPositive() {
			fmt.Fprintln(s.out, "Price must be positive. Please try again.")
			continue
		}
		return price, nil
	}
}
