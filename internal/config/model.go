package config

import (
	"github.com/vk/gridcalc/internal/cellid"
)

// Model is the format-agnostic representation of a sheet file.
type Model struct {
	Grid    Grid
	Columns []Column
	Cells   []CellEntry
}

// Grid holds the sheet extents. Zero means the value was not given.
type Grid struct {
	Columns int
	Rows    int
	Width   int
}

// Column overrides the display width of one column.
type Column struct {
	Col   int
	Width int
}

// CellEntry is the text entered into one cell, exactly as a user would type
// it. Source names the place it was declared, for diagnostics.
type CellEntry struct {
	Pos    cellid.Position
	Entry  string
	Source string
}
