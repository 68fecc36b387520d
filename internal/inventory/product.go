// Package inventory holds the product catalog and the stock mutations
// behind restocking and selling.
package inventory

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var two = decimal.NewFromInt(2)

// Product is one catalog entry. IDs are assigned sequentially at load
// and are stable for the session only; they are not persisted.
type Product struct {
	ID        int
	Name      string
	Brand     string
	Quantity  int
	CostPrice decimal.Decimal
	Origin    string
}

// SellingPrice is always twice the current cost price. It is derived,
// never stored.
func (p Product) SellingPrice() decimal.Decimal {
	return p.CostPrice.Mul(two)
}

// Catalog is the in-memory product collection, keyed by ID and iterated
// in insertion order.
type Catalog struct {
	byID  map[int]*Product
	order []int
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{byID: make(map[int]*Product)}
}

// Append adds a product, assigning the next sequential ID, and returns
// the stored entry.
func (c *Catalog) Append(p Product) *Product {
	p.ID = len(c.order) + 1
	c.byID[p.ID] = &p
	c.order = append(c.order, p.ID)
	return &p
}

// Get returns the product with the given ID.
func (c *Catalog) Get(id int) (Product, bool) {
	p, ok := c.byID[id]
	if !ok {
		return Product{}, false
	}
	return *p, true
}

// Products returns all products in insertion order.
func (c *Catalog) Products() []Product {
	out := make([]Product, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.byID[id])
	}
	return out
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.order)
}

// Restock applies a supplier purchase: quantity on hand grows by qty and
// the cost price is set to price, even when unchanged. The update is a
// single in-memory assignment after validation. Returns the product
// state after the update.
func (c *Catalog) Restock(id, qty int, price decimal.Decimal) (Product, error) {
	p, ok := c.byID[id]
	if !ok {
		return Product{}, fmt.Errorf("unknown product ID %d", id)
	}
	if qty <= 0 {
		return Product{}, fmt.Errorf("purchase quantity must be positive, got %d", qty)
	}
	if !price.IsPositive() {
		return Product{}, fmt.Errorf("cost price must be positive, got %s", price)
	}

	p.Quantity += qty
	p.CostPrice = price
	return *p, nil
}

// SaleResult describes one committed sale line.
type SaleResult struct {
	Product      Product // state after the deduction
	Quantity     int
	FreeQuantity int
	UnitPrice    decimal.Decimal // selling price at sale time
	LineTotal    decimal.Decimal // charged amount, free units excluded
}

// InsufficientStockError reports a sale that would overdraw the stock,
// including the free units the promotion would add to the deduction.
type InsufficientStockError struct {
	Available    int
	Requested    int
	FreeQuantity int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("only %d available, cannot sell %d with %d free",
		e.Available, e.Requested, e.FreeQuantity)
}

// Sell applies a customer sale of qty units under the buy-3-get-1-free
// rule: qty/3 free units are granted and qty plus the free units are
// deducted together. The catalog is untouched when the deduction would
// exceed the quantity on hand. Cost price is read-only during a sale.
func (c *Catalog) Sell(id, qty int) (SaleResult, error) {
	p, ok := c.byID[id]
	if !ok {
		return SaleResult{}, fmt.Errorf("unknown product ID %d", id)
	}
	if qty <= 0 {
		return SaleResult{}, fmt.Errorf("sale quantity must be positive, got %d", qty)
	}

	free := qty / 3
	deduct := qty + free
	if deduct > p.Quantity {
		return SaleResult{}, &InsufficientStockError{
			Available:    p.Quantity,
			Requested:    qty,
			FreeQuantity: free,
		}
	}

	p.Quantity -= deduct
	unit := p.SellingPrice()
	return SaleResult{
		Product:      *p,
		Quantity:     qty,
		FreeQuantity: free,
		UnitPrice:    unit,
		LineTotal:    unit.Mul(decimal.NewFromInt(int64(qty))),
	}, nil
}
