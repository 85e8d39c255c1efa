package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/gridcalc/internal/formula"
)

func TestParseEntry(t *testing.T) {
	testCases := []struct {
		name         string
		text         string
		expectedKind CellKind
		expectedStr  string
	}{
		{name: "empty", text: "", expectedKind: KindEmpty, expectedStr: EmptyDisplay},
		{name: "integer", text: "42", expectedKind: KindInt, expectedStr: "42"},
		{name: "negative integer", text: "-7", expectedKind: KindInt, expectedStr: "-7"},
		{name: "text", text: "hello", expectedKind: KindText, expectedStr: "hello"},
		{name: "whitespace is text", text: " ", expectedKind: KindText, expectedStr: " "},
		{name: "overflowing number is text", text: "99999999999999999999", expectedKind: KindText, expectedStr: "99999999999999999999"},
		{name: "formula", text: "=1+2", expectedKind: KindFormula, expectedStr: ErrorDisplay},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := ParseEntry(tc.text)
			assert.Equal(t, tc.expectedKind, c.Kind)
			assert.Equal(t, tc.expectedStr, c.String())
			assert.Equal(t, tc.text, c.Entry(), "entry text round-trips")
		})
	}
}

func TestParseEntry_FormulaIsNotExecuted(t *testing.T) {
	c := ParseEntry("=3+4")
	require.Equal(t, KindFormula, c.Kind)
	require.NotNil(t, c.Expr)
	assert.ErrorIs(t, c.Result.Err, formula.ErrNotExecuted)

	_, ok := c.Value()
	assert.False(t, ok)
}

func TestCell_Value(t *testing.T) {
	v, ok := IntCell(5).Value()
	assert.True(t, ok)
	assert.Equal(t, int64(5), v)

	_, ok = TextCell("x").Value()
	assert.False(t, ok)

	_, ok = Cell{}.Value()
	assert.False(t, ok)

	c := FormulaCell(formula.NewExpression("=1"))
	c.Result = formula.ResultOf(9, nil)
	v, ok = c.Value()
	assert.True(t, ok)
	assert.Equal(t, int64(9), v)
	assert.Equal(t, "9", c.String())
	assert.Equal(t, "=1", c.Entry())
}

func TestCell_JustifyRight(t *testing.T) {
	assert.True(t, Cell{}.JustifyRight())
	assert.True(t, IntCell(1).JustifyRight())
	assert.True(t, ParseEntry("=1").JustifyRight())
	assert.False(t, TextCell("a").JustifyRight())
}

func TestCellKind_String(t *testing.T) {
	assert.Equal(t, "formula", KindFormula.String())
	assert.Equal(t, "CellKind(9)", CellKind(9).String())
}
