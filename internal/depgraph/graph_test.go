package depgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/gridcalc/internal/cellid"
)

func pos(raw string) cellid.Position {
	return cellid.MustParse(raw)
}

func TestNew(t *testing.T) {
	g := New()
	require.NotNil(t, g)
	assert.Empty(t, g.dependents)
	assert.Empty(t, g.precedents)
	assert.Zero(t, g.EdgeCount())
}

func TestAddDependency(t *testing.T) {
	g := New()

	g.AddDependency(pos("A1"), pos("B1")) // B1 references A1
	g.AddDependency(pos("A1"), pos("C1"))
	g.AddDependency(pos("A1"), pos("B1")) // idempotent

	assert.Equal(t, []cellid.Position{pos("B1"), pos("C1")}, g.Dependents(pos("A1")))
	assert.Equal(t, []cellid.Position{pos("A1")}, g.Precedents(pos("B1")))
	assert.Empty(t, g.Dependents(pos("B1")))
	assert.Equal(t, 2, g.EdgeCount())
}

func TestRemoveDependency(t *testing.T) {
	g := New()
	g.AddDependency(pos("A1"), pos("B1"))
	g.AddDependency(pos("A1"), pos("C1"))

	assert.True(t, g.RemoveDependency(pos("A1"), pos("B1")))
	assert.False(t, g.RemoveDependency(pos("A1"), pos("B1")), "edge already removed")
	assert.False(t, g.RemoveDependency(pos("Z9"), pos("B1")), "unknown target")

	assert.Equal(t, []cellid.Position{pos("C1")}, g.Dependents(pos("A1")))
	assert.Empty(t, g.Precedents(pos("B1")))
	assert.NotContains(t, g.precedents, pos("B1"), "empty lists are pruned")
}

func TestClearDependencies(t *testing.T) {
	g := New()
	g.AddDependency(pos("A1"), pos("C1"))
	g.AddDependency(pos("B1"), pos("C1"))
	g.AddDependency(pos("C1"), pos("D1")) // D1 references C1

	g.ClearDependencies(pos("C1"))

	assert.Empty(t, g.Dependents(pos("A1")))
	assert.Empty(t, g.Dependents(pos("B1")))
	assert.Empty(t, g.Precedents(pos("C1")))
	assert.Equal(t, []cellid.Position{pos("D1")}, g.Dependents(pos("C1")), "incoming edges are kept")
	assert.Equal(t, 1, g.EdgeCount())
}

func TestDependents_ReturnsCopy(t *testing.T) {
	g := New()
	g.AddDependency(pos("A1"), pos("B1"))

	deps := g.Dependents(pos("A1"))
	deps[0] = pos("Z9")
	assert.Equal(t, []cellid.Position{pos("B1")}, g.Dependents(pos("A1")))
}
