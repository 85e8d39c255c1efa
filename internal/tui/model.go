// Package tui is the interactive sheet editor: a one-line entry field above
// the grid. Arrow keys move the selection, load the selected cell's entry
// text and show its references in the status line. Typing edits the entry,
// Enter commits it into the sheet, Esc or Ctrl+C quit.
package tui

import (
	"context"
	"io"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vk/gridcalc/internal/cellid"
	"github.com/vk/gridcalc/internal/ctxlog"
	"github.com/vk/gridcalc/internal/render"
	"github.com/vk/gridcalc/internal/sheet"
)

// reserved lines around the grid: entry line, header row, status line.
const chromeLines = 3

// Model is the bubbletea model of the editor.
type Model struct {
	sheet  *sheet.Sheet
	logger *slog.Logger
	styles *render.Styles

	sel    cellid.Position
	entry  []rune
	status string

	width, height int
	quitting      bool
}

// New creates an editor for s with the selection on A1.
func New(ctx context.Context, s *sheet.Sheet) Model {
	m := Model{
		sheet:  s,
		logger: ctxlog.FromContext(ctx),
		styles: render.DefaultStyles(),
	}
	m.loadEntry()
	return m
}

// Run starts the editor on the alternate screen and blocks until the user
// quits or ctx is cancelled.
func Run(ctx context.Context, s *sheet.Sheet, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(New(ctx, s),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	_, err := p.Run()
	return err
}

// Selection returns the selected position.
func (m Model) Selection() cellid.Position { return m.sel }

// Entry returns the text in the entry line.
func (m Model) Entry() string { return string(m.entry) }

// Status returns the message shown below the grid.
func (m Model) Status() string { return m.status }

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyUp:
			m.move(0, -1)
		case tea.KeyDown:
			m.move(0, 1)
		case tea.KeyLeft:
			m.move(-1, 0)
		case tea.KeyRight:
			m.move(1, 0)
		case tea.KeyEnter:
			m.commit()
		case tea.KeyBackspace:
			if len(m.entry) > 0 {
				m.entry = m.entry[:len(m.entry)-1]
			}
		case tea.KeySpace:
			m.entry = append(m.entry, ' ')
		case tea.KeyRunes:
			m.entry = append(m.entry, msg.Runes...)
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(render.Faint.Render(" " + m.sel.String() + " "))
	b.WriteString(" ")
	b.WriteString(string(m.entry))
	b.WriteString("\n")

	opts := render.Options{Styles: m.styles, Selected: m.sel, MaxWidth: m.width}
	if m.height > chromeLines {
		opts.MaxRows = m.height - chromeLines
	}
	b.WriteString(render.Render(m.sheet, opts))
	b.WriteString(render.Faint.Render(m.status))
	return b.String()
}

// move shifts the selection, saturating at the grid edges, and reloads the
// entry line from the newly selected cell.
func (m *Model) move(dc, dr int) {
	m.sel.Col = max(0, min(m.sel.Col+dc, m.sheet.Columns()-1))
	m.sel.Row = max(0, min(m.sel.Row+dr, m.sheet.Rows()-1))
	m.loadEntry()
	m.status = m.references()
}

// references describes the direct links of the selected cell, for example
// "B1 uses A1, A2; used by C1". It is empty for unlinked cells.
func (m *Model) references() string {
	var parts []string
	if refs := m.sheet.Precedents(m.sel); len(refs) > 0 {
		parts = append(parts, "uses "+joinPositions(refs))
	}
	if deps := m.sheet.Dependents(m.sel); len(deps) > 0 {
		parts = append(parts, "used by "+joinPositions(deps))
	}
	if len(parts) == 0 {
		return ""
	}
	return m.sel.String() + " " + strings.Join(parts, "; ")
}

func joinPositions(ps []cellid.Position) string {
	labels := make([]string, len(ps))
	for i, p := range ps {
		labels[i] = p.String()
	}
	return strings.Join(labels, ", ")
}

func (m *Model) loadEntry() {
	m.entry = []rune(m.sheet.Entry(m.sel))
}

func (m *Model) commit() {
	text := string(m.entry)
	if err := m.sheet.InsertEntry(m.sel, text); err != nil {
		m.status = err.Error()
		m.logger.Warn("Commit failed.", "cell", m.sel.String(), "error", err)
		return
	}

	c, _ := m.sheet.Cell(m.sel)
	if c.Kind == sheet.KindFormula && !c.Result.OK() {
		m.status = m.sel.String() + ": " + c.Result.Err.Error()
	} else {
		m.status = m.sel.String() + " = " + c.String()
	}
	m.logger.Debug("Cell committed.", "cell", m.sel.String(), "entry", text, "display", c.String())
}
