// internal/cellid/types.go
package cellid

// MaxColumns is the number of addressable column labels, `A` through `Z`.
const MaxColumns = 26

// Position is the zero-based (column, row) coordinate of a cell. It is a
// comparable value type and is used directly as a map key.
type Position struct {
	Col int
	Row int
}

// New creates a position from zero-based column and row indices.
func New(col, row int) Position {
	return Position{Col: col, Row: row}
}

// Valid reports whether both indices are non-negative and the column has a label.
func (p Position) Valid() bool {
	return p.Col >= 0 && p.Col < MaxColumns && p.Row >= 0
}

// Within reports whether the position lies inside a grid of the given extents.
func (p Position) Within(cols, rows int) bool {
	return p.Col >= 0 && p.Col < cols && p.Row >= 0 && p.Row < rows
}
