package sheet

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"

	"github.com/vk/gridcalc/internal/cellid"
	"github.com/vk/gridcalc/internal/depgraph"
	"github.com/vk/gridcalc/internal/formula"
)

// ErrOutOfRange is returned for positions outside the grid.
var ErrOutOfRange = errors.New("position out of range")

type column struct {
	width int
	cells []Cell
}

// Sheet is the grid of cells plus the dependency graph between them.
type Sheet struct {
	columns []column
	graph   *depgraph.Graph

	cols, rows, width int
	recalc            bool
	logger            *slog.Logger
	observers         []Observer
}

// New creates an empty sheet. Without options it has DefaultColumns columns
// of DefaultRows rows, each DefaultWidth wide.
func New(opts ...Option) *Sheet {
	s := &Sheet{
		graph:  depgraph.New(),
		cols:   DefaultColumns,
		rows:   DefaultRows,
		width:  DefaultWidth,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.columns = make([]column, s.cols)
	for i := range s.columns {
		s.columns[i] = column{width: s.width, cells: make([]Cell, s.rows)}
	}
	return s
}

// Columns returns the number of columns.
func (s *Sheet) Columns() int { return s.cols }

// Rows returns the number of rows.
func (s *Sheet) Rows() int { return s.rows }

// Recalc reports whether dependents are re-evaluated after an insert.
func (s *Sheet) Recalc() bool { return s.recalc }

// ColumnWidth returns the display width of a column, or 0 if it does not exist.
func (s *Sheet) ColumnWidth(col int) int {
	if col < 0 || col >= s.cols {
		return 0
	}
	return s.columns[col].width
}

// SetColumnWidth changes the display width of a column.
func (s *Sheet) SetColumnWidth(col, width int) error {
	if col < 0 || col >= s.cols {
		return fmt.Errorf("%w: column %d", ErrOutOfRange, col)
	}
	if width < 1 {
		return fmt.Errorf("invalid width %d for column %s", width, cellid.ColumnLabel(col))
	}
	s.columns[col].width = width
	return nil
}

// Contains reports whether pos lies inside the grid.
func (s *Sheet) Contains(pos cellid.Position) bool {
	return pos.Within(s.cols, s.rows)
}

// Cell returns the cell stored at pos.
func (s *Sheet) Cell(pos cellid.Position) (Cell, bool) {
	if !s.Contains(pos) {
		return Cell{}, false
	}
	return s.columns[pos.Col].cells[pos.Row], true
}

// Value returns the current numeric value of the cell at pos, if any. It
// makes Sheet a formula.Resolver.
func (s *Sheet) Value(pos cellid.Position) (int64, bool) {
	c, ok := s.Cell(pos)
	if !ok {
		return 0, false
	}
	return c.Value()
}

// Entry returns the edit text of the cell at pos.
func (s *Sheet) Entry(pos cellid.Position) string {
	c, _ := s.Cell(pos)
	return c.Entry()
}

// Display returns the display text of the cell at pos.
func (s *Sheet) Display(pos cellid.Position) string {
	c, _ := s.Cell(pos)
	return c.String()
}

// Dependents returns the positions whose formulas directly reference pos.
func (s *Sheet) Dependents(pos cellid.Position) []cellid.Position {
	return s.graph.Dependents(pos)
}

// Precedents returns the positions the formula at pos directly references.
func (s *Sheet) Precedents(pos cellid.Position) []cellid.Position {
	return s.graph.Precedents(pos)
}

// All iterates over every non-empty cell, column by column.
func (s *Sheet) All() iter.Seq2[cellid.Position, Cell] {
	return func(yield func(cellid.Position, Cell) bool) {
		for col, column := range s.columns {
			for row, c := range column.cells {
				if c.Kind == KindEmpty {
					continue
				}
				if !yield(cellid.New(col, row), c) {
					return
				}
			}
		}
	}
}

// Observe registers fn to be called for every cell stored from now on.
func (s *Sheet) Observe(fn Observer) {
	if fn != nil {
		s.observers = append(s.observers, fn)
	}
}

// Insert stores cell at pos. Formula cells are checked for circular
// references, have their references registered and are evaluated before
// being stored; failures are cached in the cell, not returned. The only
// error is ErrOutOfRange.
func (s *Sheet) Insert(pos cellid.Position, cell Cell) error {
	if !s.Contains(pos) {
		return fmt.Errorf("%w: %s", ErrOutOfRange, pos)
	}

	// Whatever was at pos before no longer references anything.
	s.graph.ClearDependencies(pos)

	if cell.Kind == KindFormula {
		cell.Result = s.commitFormula(pos, cell.Expr)
	}
	s.store(pos, cell)

	if s.recalc {
		s.recalculate(pos)
	}
	return nil
}

// InsertEntry parses text with ParseEntry and inserts the result at pos.
func (s *Sheet) InsertEntry(pos cellid.Position, text string) error {
	return s.Insert(pos, ParseEntry(text))
}

// commitFormula runs the cycle check, registers the references of an
// accepted formula and evaluates it.
func (s *Sheet) commitFormula(pos cellid.Position, expr *formula.Expression) formula.Result {
	deps := expr.Deps()
	if s.graph.WouldCycle(pos, deps) {
		s.logger.Debug("Rejected circular reference.", "cell", pos.String(), "formula", expr.Text())
		return formula.Result{Err: fmt.Errorf("%w: %s", formula.ErrCyclic, pos)}
	}

	for _, d := range deps {
		s.graph.AddDependency(d, pos)
	}

	res := formula.ResultOf(expr.Execute(s))
	s.logger.Debug("Evaluated formula.", "cell", pos.String(), "formula", expr.Text(), "deps", len(deps), "ok", res.OK())
	return res
}

// recalculate re-evaluates every formula that transitively depends on pos.
func (s *Sheet) recalculate(pos cellid.Position) {
	order := s.graph.RecalcOrder(pos)
	if len(order) == 0 {
		return
	}
	s.logger.Debug("Recalculating dependents.", "cell", pos.String(), "count", len(order))

	for _, p := range order {
		c, ok := s.Cell(p)
		if !ok || c.Kind != KindFormula {
			continue
		}
		c.Result = formula.ResultOf(c.Expr.Execute(s))
		s.store(p, c)
	}
}

func (s *Sheet) store(pos cellid.Position, c Cell) {
	s.columns[pos.Col].cells[pos.Row] = c
	for _, fn := range s.observers {
		fn(pos, c)
	}
}
