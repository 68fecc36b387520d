package invoice

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"wecare-shop/pkg/logger"
	"wecare-shop/pkg/textfmt"
)

func itoa(n int) string {
	return strconv.Itoa(n)
}

// Writer generates bill numbers and emits invoices to the invoice
// directory and the console.
type Writer struct {
	dir  string
	out  io.Writer
	shop ShopInfo

	// injectable for tests
	now   func() time.Time
	randN func(n int) int
}

// NewWriter returns a writer that stores invoice files under dir and
// echoes each invoice to out.
func NewWriter(dir string, out io.Writer, shop ShopInfo) *Writer {
	return &Writer{
		dir:   dir,
		out:   out,
		shop:  shop,
		now:   time.Now,
		randN: rand.Intn,
	}
}

// BillNumber builds `<KIND>-<YYYYMMDDHHMMSS>-<R>` with R in [1, 999].
// Uniqueness is probabilistic: two invoices in the same second with the
// same draw collide, which is accepted for a single-operator shop.
func (w *Writer) BillNumber(kind Kind) string {
	return string(kind) + "-" + w.now().Format("20060102150405") + "-" + itoa(w.randN(999)+1)
}

// EmitPurchase builds, displays and persists a purchase invoice. The
// console copy is printed even when the file write fails; only the file
// error is returned.
func (w *Writer) EmitPurchase(supplier string, items []PurchaseItem, total decimal.Decimal) (Purchase, error) {
	p := Purchase{
		BillNumber: w.BillNumber(KindPurchase),
		IssuedAt:   w.now(),
		Supplier:   supplier,
		Items:      items,
		Total:      total,
	}
	err := w.emit("PURCHASE INVOICE DISPLAY", p.BillNumber, RenderPurchase(w.shop, p))
	return p, err
}

// EmitSale builds, displays and persists a sale invoice, same contract
// as EmitPurchase.
func (w *Writer) EmitSale(customerName, customerPhone string, items []SaleItem, free []FreeItem, subtotal, shipping decimal.Decimal) (Sale, error) {
	s := Sale{
		BillNumber:    w.BillNumber(KindSale),
		IssuedAt:      w.now(),
		CustomerName:  customerName,
		CustomerPhone: customerPhone,
		Items:         items,
		FreeItems:     free,
		Subtotal:      subtotal,
		Shipping:      shipping,
	}
	err := w.emit("SALES INVOICE DISPLAY", s.BillNumber, RenderSale(w.shop, s))
	return s, err
}

func (w *Writer) emit(banner, billNumber string, lines []string) error {
	fmt.Fprintln(w.out)
	fmt.Fprintln(w.out, textfmt.Rule("=", lineWidth))
	fmt.Fprintln(w.out, "\t\t\t\t "+banner)
	fmt.Fprintln(w.out, textfmt.Rule("=", lineWidth))
	for _, line := range lines {
		fmt.Fprintln(w.out, line)
	}

	filename := filepath.Join(w.dir, billNumber+".txt")
	if err := os.WriteFile(filename, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		logger.Error().Err(err).Str("bill", billNumber).Msg("writing invoice file")
		return fmt.Errorf("writing invoice %s: %w", billNumber, err)
	}

	fmt.Fprintln(w.out, "\nInvoice saved to: "+filename)
	logger.Info().Str("bill", billNumber).Str("file", filename).Msg("invoice written")
	return nil
}
