package config

import (
	"context"
	"fmt"

	"github.com/vk/gridcalc/internal/cellid"
	"github.com/vk/gridcalc/internal/ctxlog"
	"github.com/vk/gridcalc/internal/sheet"
)

// SheetOptions returns the sheet options described by the model's grid
// settings. Unset values are omitted so that the caller's defaults apply.
func (m *Model) SheetOptions(cols, rows int) []sheet.Option {
	if m.Grid.Columns > 0 {
		cols = m.Grid.Columns
	}
	if m.Grid.Rows > 0 {
		rows = m.Grid.Rows
	}
	opts := []sheet.Option{sheet.WithSize(cols, rows)}
	if m.Grid.Width > 0 {
		opts = append(opts, sheet.WithWidth(m.Grid.Width))
	}
	return opts
}

// Apply replays the model into s: column widths first, then every cell in
// declaration order. Cells and columns that do not fit the sheet are skipped
// with a warning; the number of skipped entries is returned.
func (m *Model) Apply(ctx context.Context, s *sheet.Sheet) int {
	logger := ctxlog.FromContext(ctx)
	skipped := 0

	for _, c := range m.Columns {
		if err := s.SetColumnWidth(c.Col, c.Width); err != nil {
			logger.Warn("Skipping column width.", "column", cellid.ColumnLabel(c.Col), "error", err)
			skipped++
		}
	}

	for _, c := range m.Cells {
		if err := s.InsertEntry(c.Pos, c.Entry); err != nil {
			logger.Warn("Skipping cell.", "cell", c.Pos.String(), "source", c.Source, "error", err)
			skipped++
			continue
		}
		if cell, _ := s.Cell(c.Pos); cell.Kind == sheet.KindFormula && !cell.Result.OK() {
			logger.Info("Formula did not evaluate.", "cell", c.Pos.String(), "formula", c.Entry, "error", cell.Result.Err)
		}
	}

	logger.Debug("Model applied to sheet.", "columns", len(m.Columns), "cells", len(m.Cells), "skipped", skipped)
	return skipped
}

// Snapshot captures the extents, non-default column widths and every
// non-empty cell of s.
func Snapshot(s *sheet.Sheet, defaultWidth int) *Model {
	m := &Model{
		Grid: Grid{Columns: s.Columns(), Rows: s.Rows(), Width: defaultWidth},
	}
	for col := range s.Columns() {
		if w := s.ColumnWidth(col); w != defaultWidth {
			m.Columns = append(m.Columns, Column{Col: col, Width: w})
		}
	}
	for pos, c := range s.All() {
		m.Cells = append(m.Cells, CellEntry{Pos: pos, Entry: c.Entry()})
	}
	return m
}

// String summarizes the model for logs.
func (m *Model) String() string {
	return fmt.Sprintf("grid=%dx%d width=%d columns=%d cells=%d",
		m.Grid.Columns, m.Grid.Rows, m.Grid.Width, len(m.Columns), len(m.Cells))
}
