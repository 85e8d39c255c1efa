package render

import (
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/vk/gridcalc/internal/cellid"
	"github.com/vk/gridcalc/internal/sheet"
)

// Grid is the read-only view of a sheet needed for drawing.
type Grid interface {
	Columns() int
	Rows() int
	ColumnWidth(col int) int
	Cell(pos cellid.Position) (sheet.Cell, bool)
}

// Options control which part of the grid is drawn and how.
type Options struct {
	// Styles colors the output; nil draws plain text.
	Styles *Styles
	// Selected is highlighted when Styles is set.
	Selected cellid.Position
	// MaxWidth drops columns that would not fit entirely. Zero is unlimited.
	MaxWidth int
	// MaxRows limits the number of rows drawn. Zero draws every row.
	MaxRows int
}

// LabelWidth returns the width of the row label column for a grid with the
// given number of rows. It is never narrower than three characters.
func LabelWidth(rows int) int {
	return max(3, len(strconv.Itoa(rows))+1)
}

// Render draws g into a string. Every line, including the last, ends with a
// newline.
func Render(g Grid, opts Options) string {
	labelW := LabelWidth(g.Rows())
	cols := visibleColumns(g, labelW, opts.MaxWidth)
	rows := g.Rows()
	if opts.MaxRows > 0 {
		rows = min(rows, opts.MaxRows)
	}

	var b strings.Builder

	st := opts.Styles
	b.WriteString(st.paint(roleHeader, strings.Repeat(" ", labelW)))
	for col := range cols {
		r := roleHeader
		if col == opts.Selected.Col {
			r = roleHeaderFocus
		}
		b.WriteString(st.paint(r, Header(cellid.ColumnLabel(col), g.ColumnWidth(col))))
	}
	b.WriteByte('\n')

	for row := range rows {
		r := roleLabel
		if row == opts.Selected.Row {
			r = roleLabelFocus
		}
		b.WriteString(st.paint(r, runewidth.FillRight(strconv.Itoa(row+1), labelW)))

		for col := range cols {
			pos := cellid.New(col, row)
			c, _ := g.Cell(pos)
			text := Fit(c.String(), g.ColumnWidth(col), c.JustifyRight())
			b.WriteString(st.paint(cellRole(opts.Selected, pos, c), text))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Write renders g as plain text to w.
func Write(w io.Writer, g Grid) error {
	_, err := io.WriteString(w, Render(g, Options{}))
	return err
}

// Fit clips text to width-1 display cells and pads it on the left or right,
// followed by one separating space. The result is exactly width cells wide.
func Fit(text string, width int, right bool) string {
	if width < 1 {
		return ""
	}
	inner := width - 1
	text = runewidth.Truncate(text, inner, "")
	if right {
		text = runewidth.FillLeft(text, inner)
	} else {
		text = runewidth.FillRight(text, inner)
	}
	return text + " "
}

// Header centers a column label in width cells.
func Header(label string, width int) string {
	if width < 1 {
		return ""
	}
	return runewidth.FillRight(strings.Repeat(" ", width/2)+label, width)
}

func visibleColumns(g Grid, offset, maxWidth int) int {
	if maxWidth <= 0 {
		return g.Columns()
	}
	for col := range g.Columns() {
		offset += g.ColumnWidth(col)
		if offset > maxWidth {
			return col
		}
	}
	return g.Columns()
}

type role int

const (
	roleCell role = iota
	roleHeader
	roleHeaderFocus
	roleLabel
	roleLabelFocus
	roleSelected
	roleError
	roleEmpty
)

func cellRole(selected, pos cellid.Position, c sheet.Cell) role {
	switch {
	case pos == selected:
		return roleSelected
	case c.Kind == sheet.KindFormula && !c.Result.OK():
		return roleError
	case c.Kind == sheet.KindEmpty:
		return roleEmpty
	}
	return roleCell
}

// paint renders text with the style for r. A nil *Styles leaves text as is.
func (s *Styles) paint(r role, text string) string {
	if s == nil {
		return text
	}
	var st lipgloss.Style
	switch r {
	case roleHeader:
		st = s.Header
	case roleHeaderFocus:
		st = s.HeaderFocus
	case roleLabel:
		st = s.Label
	case roleLabelFocus:
		st = s.LabelFocus
	case roleSelected:
		st = s.Selected
	case roleError:
		st = s.Error
	case roleEmpty:
		st = s.Empty
	default:
		st = s.Cell
	}
	return st.Render(text)
}
