package config

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/gridcalc/internal/cellid"
	"github.com/vk/gridcalc/internal/sheet"
)

func entry(addr, text string) CellEntry {
	return CellEntry{Pos: cellid.MustParse(addr), Entry: text}
}

func TestSheetOptions(t *testing.T) {
	s := sheet.New((&Model{}).SheetOptions(4, 5)...)
	assert.Equal(t, 4, s.Columns())
	assert.Equal(t, 5, s.Rows())
	assert.Equal(t, sheet.DefaultWidth, s.ColumnWidth(0))

	m := &Model{Grid: Grid{Columns: 3, Width: 11}}
	s = sheet.New(m.SheetOptions(4, 5)...)
	assert.Equal(t, 3, s.Columns())
	assert.Equal(t, 5, s.Rows())
	assert.Equal(t, 11, s.ColumnWidth(2))
}

func TestApply(t *testing.T) {
	m := &Model{
		Columns: []Column{{Col: 1, Width: 12}, {Col: 9, Width: 4}},
		Cells: []CellEntry{
			entry("A1", "5"),
			entry("A2", "=A1*2"),
			entry("B1", "total"),
			entry("C9", "out of range"),
			entry("A1", "6"),
		},
	}
	s := sheet.New(sheet.WithSize(3, 5))

	skipped := m.Apply(context.Background(), s)

	assert.Equal(t, 2, skipped)
	assert.Equal(t, 12, s.ColumnWidth(1))
	assert.Equal(t, "6", s.Display(cellid.MustParse("A1")))
	assert.Equal(t, "10", s.Display(cellid.MustParse("A2")), "later entries do not recalculate without recalc")
	assert.Equal(t, "total", s.Display(cellid.MustParse("B1")))
}

func TestSnapshot(t *testing.T) {
	s := sheet.New(sheet.WithSize(3, 4))
	require.NoError(t, s.SetColumnWidth(2, 10))
	require.NoError(t, s.InsertEntry(cellid.MustParse("B2"), "=1+1"))
	require.NoError(t, s.InsertEntry(cellid.MustParse("A1"), "x"))

	expected := &Model{
		Grid:    Grid{Columns: 3, Rows: 4, Width: sheet.DefaultWidth},
		Columns: []Column{{Col: 2, Width: 10}},
		Cells:   []CellEntry{entry("A1", "x"), entry("B2", "=1+1")},
	}
	if diff := cmp.Diff(expected, Snapshot(s, sheet.DefaultWidth)); diff != "" {
		t.Errorf("Snapshot() mismatch (-want +got):\n%s", diff)
	}
}

func TestSnapshot_RoundTrip(t *testing.T) {
	src := sheet.New(sheet.WithSize(4, 4), sheet.WithWidth(9))
	require.NoError(t, src.SetColumnWidth(0, 3))
	require.NoError(t, src.InsertEntry(cellid.MustParse("A1"), "2"))
	require.NoError(t, src.InsertEntry(cellid.MustParse("B1"), "=A1*21"))

	m := Snapshot(src, 9)
	dst := sheet.New(m.SheetOptions(1, 1)...)
	require.Zero(t, m.Apply(context.Background(), dst))

	assert.Equal(t, 4, dst.Columns())
	assert.Equal(t, 3, dst.ColumnWidth(0))
	assert.Equal(t, 9, dst.ColumnWidth(1))
	assert.Equal(t, "42", dst.Display(cellid.MustParse("B1")))
}
