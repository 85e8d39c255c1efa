package depgraph

import (
	"slices"

	"github.com/vk/gridcalc/internal/cellid"
)

// Graph maps positions to the positions that depend on them, plus the inverse.
type Graph struct {
	dependents map[cellid.Position][]cellid.Position
	precedents map[cellid.Position][]cellid.Position
}

// New creates and returns an initialized, empty Graph.
func New() *Graph {
	return &Graph{
		dependents: make(map[cellid.Position][]cellid.Position),
		precedents: make(map[cellid.Position][]cellid.Position),
	}
}

// AddDependency records that depender references target. Adding an edge that
// already exists does nothing.
func (g *Graph) AddDependency(target, depender cellid.Position) {
	if slices.Contains(g.dependents[target], depender) {
		return
	}
	g.dependents[target] = append(g.dependents[target], depender)
	g.precedents[depender] = append(g.precedents[depender], target)
}

// RemoveDependency deletes the edge "depender references target". It reports
// whether the edge existed.
func (g *Graph) RemoveDependency(target, depender cellid.Position) bool {
	deps := g.dependents[target]
	i := slices.Index(deps, depender)
	if i < 0 {
		return false
	}
	g.dependents[target] = slices.Delete(deps, i, i+1)
	if len(g.dependents[target]) == 0 {
		delete(g.dependents, target)
	}

	precs := g.precedents[depender]
	if j := slices.Index(precs, target); j >= 0 {
		g.precedents[depender] = slices.Delete(precs, j, j+1)
	}
	if len(g.precedents[depender]) == 0 {
		delete(g.precedents, depender)
	}
	return true
}

// ClearDependencies removes every edge going out of depender, i.e. forgets
// everything its formula referenced. Edges pointing at depender are kept.
func (g *Graph) ClearDependencies(depender cellid.Position) {
	for _, target := range slices.Clone(g.precedents[depender]) {
		g.RemoveDependency(target, depender)
	}
}

// Dependents returns the positions that directly reference pos.
func (g *Graph) Dependents(pos cellid.Position) []cellid.Position {
	return slices.Clone(g.dependents[pos])
}

// Precedents returns the positions that pos directly references.
func (g *Graph) Precedents(pos cellid.Position) []cellid.Position {
	return slices.Clone(g.precedents[pos])
}

// EdgeCount returns the number of recorded dependency edges.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, deps := range g.dependents {
		n += len(deps)
	}
	return n
}
