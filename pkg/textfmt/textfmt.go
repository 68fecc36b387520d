// Package textfmt builds the fixed-width text rows used by the catalog
// display and the invoice files. It does no I/O.
package textfmt

import "strings"

// Pad right-pads text with spaces to the given width. Text already at or
// beyond the width is returned unchanged, so overlong values shift the
// columns to their right rather than being truncated.
func Pad(text string, width int) string {
	if len(text) >= width {
		return text
	}
	return text + strings.Repeat(" ", width-len(text))
}

// Row assembles one table row from cell values and per-column widths,
// separating columns with sep. Cells beyond len(widths) are appended
// unpadded.
func Row(cells []string, widths []int, sep string) string {
	var b strings.Builder
	for i, cell := range cells {
		if i > 0 {
			b.WriteString(sep)
		}
		if i < len(widths) {
			b.WriteString(Pad(cell, widths[i]))
		} else {
			b.WriteString(cell)
		}
	}
	return b.String()
}

// Rule returns a horizontal rule of n copies of ch.
func Rule(ch string, n int) string {
	return strings.Repeat(ch, n)
}
