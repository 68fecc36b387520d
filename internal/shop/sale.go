package shop

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"wecare-shop/internal/inventory"
	"wecare-shop/internal/invoice"
	"wecare-shop/pkg/logger"
)

// SellProducts runs the sale flow: customer details, one or more line
// items under the buy-3-get-1-free rule, a single shipping question, a
// catalog save and a sale invoice.
func (s *Shop) SellProducts() error {
	fmt.Fprintln(s.out, "\n------------------ Sell Products ----------------")

	name, phone, err := s.promptCustomer()
	if err != nil {
		return err
	}

	var items []invoice.SaleItem
	var freeItems []invoice.FreeItem
	subtotal := decimal.Zero

	for {
		s.DisplayProducts()

		id, err := s.promptProductID("sell")
		if err != nil {
			return err
		}

		res, err := s.promptAndSell(id)
		if err != nil {
			return err
		}

		items = append(items, invoice.SaleItem{
			Name:         res.Product.Name,
			Brand:        res.Product.Brand,
			Quantity:     res.Quantity,
			FreeQuantity: res.FreeQuantity,
			UnitPrice:    res.UnitPrice,
		})
		subtotal = subtotal.Add(res.LineTotal)

		if res.FreeQuantity > 0 {
			freeItems = append(freeItems, invoice.FreeItem{
				Name:     res.Product.Name,
				Brand:    res.Product.Brand,
				Quantity: res.FreeQuantity,
				UnitCost: res.Product.CostPrice,
			})
			fmt.Fprintf(s.out, "Dear %s, you get %d free items with this purchase!\n", name, res.FreeQuantity)
		}
		fmt.Fprintf(s.out, "Sold %d %s with %d free.\n", res.Quantity, res.Product.Name, res.FreeQuantity)

		more, err := s.prompt.YesNo("Do you want to sell more items? (yes/no): ")
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}

	// Shipping is asked exactly once, after the line-item loop.
	fmt.Fprintln(s.out, "\nShipping Information:")
	shipping := decimal.Zero
	wantShipping, err := s.prompt.YesNo("Do you need shipping? (yes/no): ")
	if err != nil {
		return err
	}
	if wantShipping {
		shipping = s.shippingFee
		fmt.Fprintf(s.out, "Shipping cost: NPR %s will be added to your total.\n", shipping.StringFixed(2))
	}

	if len(items) == 0 {
		fmt.Fprintln(s.out, "No products sold.")
		return nil
	}

	s.persistCatalog()
	if _, err := s.invoices.EmitSale(name, phone, items, freeItems, subtotal, shipping); err != nil {
		fmt.Fprintf(s.out, "Error creating sales invoice: %v\n", err)
	}
	logger.Info().
		Str("customer", name).
		Int("lines", len(items)).
		Str("subtotal", subtotal.StringFixed(2)).
		Str("shipping", shipping.StringFixed(2)).
		Msg("sale committed")
	return nil
}

// promptCustomer collects name and phone together; any violation
// restarts collection of both. The phone must be exactly 10 digits.
func (s *Shop) promptCustomer() (string, string, error) {
	for {
		name, err := s.prompt.Line("Please, Enter the customer name: ")
		if err != nil {
			return "", "", err
		}
		phone, err := s.prompt.Line("Please, Enter the customer phone number: ")
		if err != nil {
			return "", "", err
		}

		if name == "" || phone == "" {
			fmt.Fprintf(s.out, "Please, Fill in the customer information.\n\n")
			continue
		}
		if !allDigits(phone) {
			fmt.Fprintf(s.out, "Please, Enter the numeric value only in Phone number.\n\n")
			continue
		}
		if len(phone) != 10 {
			fmt.Fprintf(s.out, "Please, Enter the 10 digits phone number.\n\n")
			continue
		}
		return name, phone, nil
	}
}

// promptAndSell re-prompts for a quantity until the sale commits. A
// quantity whose deduction (sold plus free) exceeds the stock is
// rejected with the availability details; product selection is not
// revisited.
func (s *Shop) promptAndSell(id int) (inventory.SaleResult, error) {
	for {
		current, _ := s.catalog.Get(id)
		qty, err := s.prompt.Int(fmt.Sprintf("Enter quantity to sell (max %d): ", current.Quantity))
		if err != nil {
			return inventory.SaleResult{}, err
		}
		if qty <= 0 {
			fmt.Fprintln(s.out, "Quantity must be positive. Please try again.")
			continue
		}

		res, err := s.catalog.Sell(id, qty)
		var stockErr *inventory.InsufficientStockError
		if errors.As(err, &stockErr) {
			fmt.Fprintf(s.out, "Only %d available. Cannot sell the %d quantity with %d free.\n",
				stockErr.Available, stockErr.Requested, stockErr.FreeQuantity)
			continue
		}
		if err != nil {
			fmt.Fprintf(s.out, "Could not record sale: %v\n", err)
			continue
		}
		return res, nil
	}
}

func allDigits(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
