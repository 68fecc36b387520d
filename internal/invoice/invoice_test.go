package invoice

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testShop = ShopInfo{
	Name:    "WeCare Skin Care Products",
	Address: "Kamalpokhari, Kathmandu",
	Phone:   "9811190255",
}

func fixedWriter(dir string, out *bytes.Buffer) *Writer {
	w := NewWriter(dir, out, testShop)
	w.now = func() time.Time {
		return time.Date(2025, 5, 3, 12, 30, 45, 0, time.Local)
	}
	w.randN = func(int) int { return 122 }
	return w
}

func TestBillNumberFormat(t *testing.T) {
	w := fixedWriter(t.TempDir(), &bytes.Buffer{})

	assert.Equal(t, "PURCHASE-20250503123045-123", w.BillNumber(KindPurchase))
	assert.Equal(t, "SALE-20250503123045-123", w.BillNumber(KindSale))
}

func TestRenderPurchase(t *testing.T) {
	p := Purchase{
		BillNumber: "PURCHASE-20250503123045-123",
		IssuedAt:   time.Date(2025, 5, 3, 12, 30, 45, 0, time.Local),
		Supplier:   "Global Suppliers",
		Items: []PurchaseItem{
			{Name: "Vitamin C Serum", Brand: "Garnier", Quantity: 10, UnitCost: decimal.NewFromInt(500)},
		},
		Total: decimal.NewFromInt(5000),
	}

	text := strings.Join(RenderPurchase(testShop, p), "\n")
	assert.Contains(t, text, "Supplier: Global Suppliers")
	assert.Contains(t, text, "Invoice No: PURCHASE-20250503123045-123")
	assert.Contains(t, text, "Date: 2025-05-03 12:30:45")
	assert.Contains(t, text, "Vitamin C Serum")
	assert.Contains(t, text, "500.00")
	assert.Contains(t, text, "5000.00")
	assert.Contains(t, text, "Total Amount: NPR 5000.00")
}

func TestRenderSaleWithFreeItemsAndShipping(t *testing.T) {
	s := Sale{
		BillNumber:    "SALE-20250503123045-123",
		IssuedAt:      time.Date(2025, 5, 3, 12, 30, 45, 0, time.Local),
		CustomerName:  "Ram Prasad",
		CustomerPhone: "9823327291",
		Items: []SaleItem{
			{Name: "Serum", Brand: "Garnier", Quantity: 3, FreeQuantity: 1, UnitPrice: decimal.NewFromInt(1000)},
		},
		FreeItems: []FreeItem{
			{Name: "Serum", Brand: "Garnier", Quantity: 1, UnitCost: decimal.NewFromInt(500)},
		},
		Subtotal: decimal.NewFromInt(3000),
		Shipping: decimal.NewFromInt(500),
	}

	text := strings.Join(RenderSale(testShop, s), "\n")
	assert.Contains(t, text, "Customer: Ram Prasad")
	assert.Contains(t, text, "Contact: 9823327291")
	assert.Contains(t, text, "Free Items:")
	assert.Contains(t, text, "Serum (Garnier) - 1 free")
	assert.Contains(t, text, "Subtotal Amount: NPR 3000.00")
	assert.Contains(t, text, "Shipping Cost: NPR 500.00")
	assert.Contains(t, text, "Total Amount: NPR 3500.00")
}

func TestRenderSaleOmitsShippingAndFreeBlockWhenAbsent(t *testing.T) {
	s := Sale{
		BillNumber:    "SALE-20250503123045-123",
		IssuedAt:      time.Date(2025, 5, 3, 12, 30, 45, 0, time.Local),
		CustomerName:  "Sita",
		CustomerPhone: "1234567890",
		Items: []SaleItem{
			{Name: "Toner", Brand: "Lakme", Quantity: 2, FreeQuantity: 0, UnitPrice: decimal.NewFromInt(300)},
		},
		Subtotal: decimal.NewFromInt(600),
		Shipping: decimal.Zero,
	}

	text := strings.Join(RenderSale(testShop, s), "\n")
	assert.NotContains(t, text, "Shipping Cost")
	assert.NotContains(t, text, "Free Items:")
	assert.Contains(t, text, "Subtotal Amount: NPR 600.00")
	assert.Contains(t, text, "Total Amount: NPR 600.00")
}

func TestEmitPurchaseWritesFileAndConsole(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	w := fixedWriter(dir, &out)

	items := []PurchaseItem{
		{Name: "Serum", Brand: "Garnier", Quantity: 5, UnitCost: decimal.NewFromInt(500)},
	}
	p, err := w.EmitPurchase("Global Suppliers", items, decimal.NewFromInt(2500))
	require.NoError(t, err)
	assert.Equal(t, "PURCHASE-20250503123045-123", p.BillNumber)

	data, err := os.ReadFile(filepath.Join(dir, p.BillNumber+".txt"))
	require.NoError(t, err)

	// The file and the console carry the identical invoice text.
	assert.Contains(t, out.String(), strings.TrimSuffix(string(data), "\n"))
	assert.Contains(t, out.String(), "PURCHASE INVOICE DISPLAY")
	assert.Contains(t, out.String(), "Invoice saved to: ")
}

func TestEmitStillPrintsWhenFileWriteFails(t *testing.T) {
	var out bytes.Buffer
	w := fixedWriter(filepath.Join(t.TempDir(), "no-such-dir"), &out)

	_, err := w.EmitSale("Sita", "1234567890",
		[]SaleItem{{Name: "Toner", Brand: "Lakme", Quantity: 1, UnitPrice: decimal.NewFromInt(300)}},
		nil, decimal.NewFromInt(300), decimal.Zero)
	require.Error(t, err)

	assert.Contains(t, out.String(), "SALES INVOICE DISPLAY")
	assert.Contains(t, out.String(), "Customer: Sita")
	assert.NotContains(t, out.String(), "Invoice saved to: ")
}
