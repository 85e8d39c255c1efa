// Package sheet owns the cell matrix and its dependency graph.
//
// A Sheet is a fixed-size grid of columns, each with a display width and a
// run of cells. Insert is the single mutation path: for a formula cell it
// removes the position's previous references, rejects the formula with
// formula.ErrCyclic if it would close a circular reference, otherwise
// registers its references and evaluates it, and finally stores the cell with
// its cached result. Partial states are never visible to callers.
//
// When recalculation is enabled (WithRecalc), every formula that transitively
// depends on the inserted position is re-evaluated afterwards in dependency
// order. Without it, dependents keep their previously cached results.
package sheet
