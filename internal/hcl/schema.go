package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot decodes every top-level block of a sheet file. There is no remain
// field, so unknown blocks and attributes are reported as errors.
type fileRoot struct {
	Sheet   *sheetBlock    `hcl:"sheet,block"`
	Columns []*columnBlock `hcl:"column,block"`
	Cells   []*cellBlock   `hcl:"cell,block"`
}

type sheetBlock struct {
	Columns *int `hcl:"columns,optional"`
	Rows    *int `hcl:"rows,optional"`
	Width   *int `hcl:"width,optional"`
}

type columnBlock struct {
	Label     string    `hcl:"label,label"`
	Width     int       `hcl:"width"`
	DeclRange hcl.Range `hcl:",def_range"`
}

type cellBlock struct {
	Address   string         `hcl:"address,label"`
	Value     hcl.Expression `hcl:"value"`
	DeclRange hcl.Range      `hcl:",def_range"`
}
