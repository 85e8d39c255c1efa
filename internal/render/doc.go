// Package render draws a sheet as a text grid: a header row of column
// letters, one labelled line per row, and every cell fitted to its column
// width and justified the way the cell asks for.
package render
