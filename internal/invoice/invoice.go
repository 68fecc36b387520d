// Package invoice renders purchase and sale invoices and persists each
// one to its own write-once text file named after its bill number.
package invoice

import (
	"time"

	"github.com/shopspring/decimal"

	"wecare-shop/pkg/textfmt"
)

// Kind distinguishes the two transaction types on a bill number.
type Kind string

const (
	KindPurchase Kind = "PURCHASE"
	KindSale     Kind = "SALE"
)

// ShopInfo is the shop identity printed on banners and invoice headers.
type ShopInfo struct {
	Name    string
	Address string
	Phone   string
}

// PurchaseItem is one restocked product line.
type PurchaseItem struct {
	Name     string
	Brand    string
	Quantity int
	UnitCost decimal.Decimal
}

// Total is quantity times the unit cost.
func (it PurchaseItem) Total() decimal.Decimal {
	return it.UnitCost.Mul(decimal.NewFromInt(int64(it.Quantity)))
}

// SaleItem is one sold product line. The unit price is the selling price
// at sale time; free units are listed but never charged.
type SaleItem struct {
	Name         string
	Brand        string
	Quantity     int
	FreeQuantity int
	UnitPrice    decimal.Decimal
}

// Total is the charged amount for the line: sold quantity times unit
// price, free units excluded.
func (it SaleItem) Total() decimal.Decimal {
	return it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
}

// FreeItem records promotion units given away on a sale, for invoice
// display only.
type FreeItem struct {
	Name     string
	Brand    string
	Quantity int
	UnitCost decimal.Decimal
}

// Purchase is a completed restock invoice.
type Purchase struct {
	BillNumber string
	IssuedAt   time.Time
	Supplier   string
	Items      []PurchaseItem
	Total      decimal.Decimal
}

// Sale is a completed sale invoice.
type Sale struct {
	BillNumber    string
	IssuedAt      time.Time
	CustomerName  string
	CustomerPhone string
	Items         []SaleItem
	FreeItems     []FreeItem
	Subtotal      decimal.Decimal
	Shipping      decimal.Decimal
}

// GrandTotal is the subtotal plus shipping.
func (s Sale) GrandTotal() decimal.Decimal {
	return s.Subtotal.Add(s.Shipping)
}

const lineWidth = 80

var (
	purchaseColumns = []int{20, 15, 10, 15, 15}
	saleColumns     = []int{20, 15, 10, 10, 15, 15}
)

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// RenderPurchase lays out a purchase invoice as fixed-width text. The
// returned lines are written to the invoice file and echoed to the
// console verbatim.
func RenderPurchase(shop ShopInfo, p Purchase) []string {
	lines := []string{
		"\t\t\t\t" + shop.Name + " Purchase Invoice",
		"\t\t\t" + shop.Address + " | Phone No: " + shop.Phone,
		textfmt.Rule("=", lineWidth),
		"Supplier: " + p.Supplier,
		"Invoice No: " + p.BillNumber,
		"Date: " + p.IssuedAt.Format("2006-01-02 15:04:05"),
		textfmt.Rule("-", lineWidth),
		textfmt.Row([]string{"Product", "Brand", "Qty", "Unit Price", "Total"}, purchaseColumns, ""),
		textfmt.Rule("-", lineWidth),
	}

	for _, it := range p.Items {
		lines = append(lines, textfmt.Row([]string{
			it.Name,
			it.Brand,
			itoa(it.Quantity),
			money(it.UnitCost),
			money(it.Total()),
		}, purchaseColumns, ""))
	}

	lines = append(lines,
		textfmt.Rule("-", lineWidth),
		"Total Amount: NPR "+money(p.Total),
	)
	return lines
}

// RenderSale lays out a sale invoice: customer block, one row per line
// item, the free-items block when any free units were granted, subtotal,
// a shipping line only when shipping was charged, and the grand total.
func RenderSale(shop ShopInfo, s Sale) []string {
	lines := []string{
		"\t\t\t\t" + shop.Name + " Sales Invoice",
		"\t\t\t" + shop.Address + " | Phone No: " + shop.Phone,
		textfmt.Rule("=", lineWidth),
		"Customer Details:",
		textfmt.Rule("-", lineWidth),
		"Customer: " + s.CustomerName,
		"Contact: " + s.CustomerPhone,
		"Invoice No: " + s.BillNumber,
		"Date: " + s.IssuedAt.Format("2006-01-02 15:04:05"),
		textfmt.Rule("-", lineWidth),
		textfmt.Row([]string{"Product", "Brand", "Qty", "Free", "Unit Price", "Total"}, saleColumns, ""),
		textfmt.Rule("-", lineWidth),
	}

	for _, it := range s.Items {
		lines = append(lines, textfmt.Row([]string{
			it.Name,
			it.Brand,
			itoa(it.Quantity),
			itoa(it.FreeQuantity),
			money(it.UnitPrice),
			money(it.Total()),
		}, saleColumns, ""))
	}

	if len(s.FreeItems) > 0 {
		lines = append(lines, "", "Free Items:")
		for _, it := range s.FreeItems {
			lines = append(lines, it.Name+" ("+it.Brand+") - "+itoa(it.Quantity)+" free")
		}
	}

	lines = append(lines,
		textfmt.Rule("-", lineWidth),
		"Subtotal Amount: NPR "+money(s.Subtotal),
	)
	if s.Shipping.IsPositive() {
		lines = append(lines, "Shipping Cost: NPR "+money(s.Shipping))
	}
	lines = append(lines, "Total Amount: NPR "+money(s.GrandTotal()))
	return lines
}
