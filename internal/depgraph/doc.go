// Package depgraph tracks which cells reference which.
//
// The primary direction is the reverse edge: for every referenced position it
// keeps the positions whose formulas reference it ("depends on me"). That is
// the direction cycle detection and recalculation walk. The forward direction
// (what a position references) is kept alongside so that a cell's edges can
// be removed when it is overwritten.
//
// The graph is not safe for concurrent use; its owner, the sheet, is the only
// writer and runs single-threaded.
package depgraph
