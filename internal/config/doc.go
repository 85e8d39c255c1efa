// Package config defines the format-agnostic description of a sheet: its
// extents, column widths and the entry text of every cell, plus the Loader
// interface implemented by concrete file formats such as HCL.
//
// A Model is the bridge between files and the live sheet.Sheet. Loaders
// produce one, Apply replays it into a sheet, and Snapshot captures a sheet
// back into a Model for exporting.
package config
