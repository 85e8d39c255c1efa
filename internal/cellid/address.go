// internal/cellid/address.go
package cellid

import "strconv"

// ColumnLabel returns the letter used for a zero-based column index, or an
// empty string if the column has no label.
func ColumnLabel(col int) string {
	if col < 0 || col >= MaxColumns {
		return ""
	}
	return string(rune('A' + col))
}

// String serializes the position into its canonical `A1` representation.
// Positions without a column label are rendered as `?<row>`.
func (p Position) String() string {
	label := ColumnLabel(p.Col)
	if label == "" {
		label = "?"
	}
	return label + strconv.Itoa(p.Row+1)
}
