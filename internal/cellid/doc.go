// internal/cellid/doc.go

/*
Package cellid provides the Position type that identifies a cell in the grid,
together with its canonical `A1` string format.

A position is a (column, row) pair of zero-based indices. Its canonical text
form is a single uppercase column letter `A`..`Z` followed by the one-based
decimal row number, e.g. `A1` for (0, 0) and `C12` for (2, 11).

Formulas only recognize single-digit rows; that restriction lives in the
formula tokenizer, not here. Sheet files, the CLI and the renderer use this
package and may address any row of the grid.
*/
package cellid
