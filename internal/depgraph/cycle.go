package depgraph

import (
	"slices"

	"github.com/vk/gridcalc/internal/cellid"
)

// WouldCycle reports whether making pos reference every position in deps would
// close a circular reference. That is the case when pos references itself, or
// when some dependency already (transitively) depends on pos.
//
// The search walks "depends on me" edges outward from pos; visit order does
// not matter since only reachability is needed.
func (g *Graph) WouldCycle(pos cellid.Position, deps []cellid.Position) bool {
	if len(deps) == 0 {
		return false
	}
	if slices.Contains(deps, pos) {
		return true
	}

	targets := make(map[cellid.Position]struct{}, len(deps))
	for _, d := range deps {
		targets[d] = struct{}{}
	}

	found := false
	g.walkDependents(pos, func(p cellid.Position) bool {
		if _, ok := targets[p]; ok {
			found = true
			return false
		}
		return true
	})
	return found
}

// RecalcOrder returns the transitive dependents of pos ordered so that every
// position comes after all of the positions it depends on within that set.
// The graph is expected to be acyclic; positions on a cycle are still
// returned exactly once.
func (g *Graph) RecalcOrder(pos cellid.Position) []cellid.Position {
	visited := map[cellid.Position]bool{pos: true}
	var post []cellid.Position

	var visit func(p cellid.Position)
	visit = func(p cellid.Position) {
		for _, d := range g.dependents[p] {
			if visited[d] {
				continue
			}
			visited[d] = true
			visit(d)
			post = append(post, d)
		}
	}
	visit(pos)

	slices.Reverse(post)
	return post
}

// walkDependents visits every position reachable from start along "depends
// on me" edges, each at most once. start itself is only visited if it is
// reachable. fn returns false to stop the walk.
func (g *Graph) walkDependents(start cellid.Position, fn func(cellid.Position) bool) {
	seen := make(map[cellid.Position]struct{})
	next := slices.Clone(g.dependents[start])

	for len(next) > 0 {
		p := next[len(next)-1]
		next = next[:len(next)-1]

		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}

		if !fn(p) {
			return
		}
		for _, d := range g.dependents[p] {
			if _, ok := seen[d]; !ok {
				next = append(next, d)
			}
		}
	}
}
