package sheet

import (
	"log/slog"

	"github.com/vk/gridcalc/internal/cellid"
)

// Defaults for a new sheet.
const (
	DefaultColumns = 10
	DefaultRows    = 30
	DefaultWidth   = 7
)

// Observer is called after a cell has been stored, including formulas
// re-evaluated by recalculation.
type Observer func(pos cellid.Position, c Cell)

// Option configures a Sheet.
type Option func(*Sheet)

// WithSize sets the number of columns and rows. Columns are capped at the
// number of column labels; both extents are at least one.
func WithSize(cols, rows int) Option {
	return func(s *Sheet) {
		s.cols = max(1, min(cols, cellid.MaxColumns))
		s.rows = max(1, rows)
	}
}

// WithWidth sets the initial display width of every column.
func WithWidth(width int) Option {
	return func(s *Sheet) {
		s.width = max(1, width)
	}
}

// WithLogger sets the logger used for debug output about insertions.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Sheet) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRecalc enables re-evaluation of dependent formulas after each insert.
func WithRecalc(enabled bool) Option {
	return func(s *Sheet) {
		s.recalc = enabled
	}
}

// WithObserver registers a callback for stored cells.
func WithObserver(fn Observer) Option {
	return func(s *Sheet) {
		if fn != nil {
			s.observers = append(s.observers, fn)
		}
	}
}
