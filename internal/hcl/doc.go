// Package hcl implements config.Loader and config.Exporter for HCL sheet
// files. A sheet file holds an optional `sheet` block with grid extents,
// `column` blocks overriding display widths and one `cell` block per
// non-empty cell:
//
//	sheet {
//	  columns = 4
//	  rows    = 10
//	}
//
//	column "B" {
//	  width = 12
//	}
//
//	cell "A1" { value = 5 }
//	cell "B1" { value = "=A1*2" }
//
// Cell values are numbers or strings and are interpreted exactly like text
// typed into the editor.
package hcl
