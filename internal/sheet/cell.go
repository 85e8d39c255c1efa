package sheet

import (
	"strconv"

	"github.com/vk/gridcalc/internal/formula"
)

// CellKind identifies the variant held by a Cell.
type CellKind int

const (
	KindEmpty CellKind = iota
	KindInt
	KindText
	KindFormula
)

func (k CellKind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindInt:
		return "int"
	case KindText:
		return "text"
	case KindFormula:
		return "formula"
	}
	return "CellKind(" + strconv.Itoa(int(k)) + ")"
}

// Display placeholders.
const (
	EmptyDisplay = "---"
	ErrorDisplay = "#Error"
)

// Cell is one grid entry. Only the fields of its Kind are meaningful. A
// formula cell shares its Expression by pointer and keeps its own cached
// Result next to it.
type Cell struct {
	Kind   CellKind
	Num    int64
	Str    string
	Expr   *formula.Expression
	Result formula.Result
}

// IntCell returns an integer cell.
func IntCell(v int64) Cell {
	return Cell{Kind: KindInt, Num: v}
}

// TextCell returns a text cell.
func TextCell(s string) Cell {
	return Cell{Kind: KindText, Str: s}
}

// FormulaCell returns a formula cell that has not been evaluated yet.
func FormulaCell(expr *formula.Expression) Cell {
	return Cell{Kind: KindFormula, Expr: expr, Result: formula.NotExecuted()}
}

// Value returns the numeric value of the cell: the integer of an integer cell
// or the cached value of a successfully evaluated formula.
func (c Cell) Value() (int64, bool) {
	switch c.Kind {
	case KindInt:
		return c.Num, true
	case KindFormula:
		if c.Result.OK() {
			return c.Result.Value, true
		}
	}
	return 0, false
}

// Entry returns the canonical text of the cell for editing: the raw number,
// the raw string, or the formula text including its marker.
func (c Cell) Entry() string {
	switch c.Kind {
	case KindInt:
		return strconv.FormatInt(c.Num, 10)
	case KindText:
		return c.Str
	case KindFormula:
		return c.Expr.Text()
	}
	return ""
}

// String renders the cell for display.
func (c Cell) String() string {
	switch c.Kind {
	case KindInt:
		return strconv.FormatInt(c.Num, 10)
	case KindText:
		return c.Str
	case KindFormula:
		if c.Result.OK() {
			return strconv.FormatInt(c.Result.Value, 10)
		}
		return ErrorDisplay
	}
	return EmptyDisplay
}

// JustifyRight reports whether the cell is drawn right-aligned. Only text is
// left-aligned.
func (c Cell) JustifyRight() bool {
	return c.Kind != KindText
}
