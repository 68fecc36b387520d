package inventory

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// delimiter separates catalog fields; the format has no escaping, so no
// field may contain it.
const delimiter = ","

// Store reads and writes the catalog file: one product per line, five
// comma-separated fields (name, brand, quantity, cost price, origin),
// no header.
type Store struct {
	path string
}

// NewStore returns a store over the given catalog file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the catalog file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the catalog file. Malformed lines (fewer than five fields,
// or a quantity or cost price that does not parse as a non-negative
// number) are skipped. The returned catalog is never nil: a missing or
// unreadable file yields an empty catalog alongside the error, and the
// caller decides how loudly to warn.
func (s *Store) Load() (*Catalog, error) {
	catalog := NewCatalog()

	file, err := os.Open(s.path)
	if err != nil {
		return catalog, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fields := strings.Split(scanner.Text(), delimiter)
		if len(fields) < 5 {
			continue
		}

		qty, err := strconv.Atoi(fields[2])
		if err != nil || qty < 0 {
			continue
		}
		price, err := decimal.NewFromString(fields[3])
		if err != nil || price.IsNegative() {
			continue
		}

		catalog.Append(Product{
			Name:      fields[0],
			Brand:     fields[1],
			Quantity:  qty,
			CostPrice: price,
			Origin:    fields[4],
		})
	}
	if err := scanner.Err(); err != nil {
		return catalog, err
	}
	return catalog, nil
}

// Save rewrites the catalog file with every product, in catalog order.
// A field containing the delimiter would corrupt the format on the next
// load, so such a catalog is rejected without touching the file.
func (s *Store) Save(catalog *Catalog) error {
	var b strings.Builder
	for _, p := range catalog.Products() {
		for _, field := range []string{p.Name, p.Brand, p.Origin} {
			if strings.Contains(field, delimiter) {
				return fmt.Errorf("product %q: field %q contains the %q delimiter", p.Name, field, delimiter)
			}
		}
		b.WriteString(p.Name)
		b.WriteString(delimiter)
		b.WriteString(p.Brand)
		b.WriteString(delimiter)
		b.WriteString(strconv.Itoa(p.Quantity))
		b.WriteString(delimiter)
		b.WriteString(p.CostPrice.String())
		b.WriteString(delimiter)
		b.WriteString(p.Origin)
		b.WriteString("\n")
	}

	if err := os.WriteFile(s.path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("writing catalog file: %w", err)
	}
	return nil
}
