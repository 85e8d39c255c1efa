package sheet

import (
	"strconv"
	"strings"

	"github.com/vk/gridcalc/internal/formula"
)

// ParseEntry turns text typed by a user into a cell. Empty text is an empty
// cell, text starting with the formula marker is compiled into a formula
// cell (not yet evaluated), a decimal integer is an integer cell, and
// anything else is kept as text.
func ParseEntry(text string) Cell {
	if text == "" {
		return Cell{}
	}
	if strings.HasPrefix(text, formula.Marker) {
		return FormulaCell(formula.NewExpression(text))
	}
	if v, err := strconv.ParseInt(text, 10, 64); err == nil {
		return IntCell(v)
	}
	return TextCell(text)
}
