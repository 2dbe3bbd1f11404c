package structure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnederkorn/cores/structure"
)

func buildTriangle(t *testing.T) *structure.HGraph {
	t.Helper()
	hg := structure.NewHGraph()
	for _, v := range []string{"a", "b", "c"} {
		require.NoError(t, hg.AddVertex(v))
	}
	require.NoError(t, hg.AddLabel("R", 3))
	require.NoError(t, hg.AddEdgeInstance("R", []string{"a", "b", "c"}))
	require.NoError(t, hg.AddEdgeInstance("R", []string{"b", "c", "a"}))
	require.NoError(t, hg.AddEdgeInstance("R", []string{"c", "a", "b"}))
	return hg
}

func TestHGraph_AddEdgeInstance(t *testing.T) {
	hg := buildTriangle(t)
	assert.Equal(t, []string{"a", "b", "c"}, hg.Vertices())
	assert.Len(t, hg.Instances(), 3)

	require.ErrorIs(t, hg.AddEdgeInstance("R", []string{"a", "b", "c"}), structure.ErrDuplicateInstance)
	require.ErrorIs(t, hg.AddEdgeInstance("S", []string{"a"}), structure.ErrUnknownLabel)
	require.ErrorIs(t, hg.AddEdgeInstance("R", []string{"a", "b"}), structure.ErrArityMismatch)
	require.ErrorIs(t, hg.AddEdgeInstance("R", []string{"a", "b", "zz"}), structure.ErrUnknownVertex)
}

func TestHGraph_RemoveVertex(t *testing.T) {
	hg := buildTriangle(t)
	require.NoError(t, hg.RemoveVertex("a"))
	assert.False(t, hg.HasVertex("a"))
	assert.Empty(t, hg.Instances()) // every instance touches "a"
}

func TestHGraph_RenameVertex(t *testing.T) {
	hg := buildTriangle(t)
	require.NoError(t, hg.RemoveVertex("a"))
	require.NoError(t, hg.AddVertex("a")) // re-add so b can merge onto a fresh name
	require.NoError(t, hg.RenameVertex("b", "b.a"))

	assert.False(t, hg.HasVertex("b"))
	assert.True(t, hg.HasVertex("b.a"))
	assert.Empty(t, hg.Instances()) // all instances were already stripped by RemoveVertex("a")
}

func TestHGraph_CloneAndRestore(t *testing.T) {
	hg := buildTriangle(t)
	snapshot := hg.Clone()

	require.NoError(t, hg.RemoveVertex("a"))
	assert.Equal(t, 2, hg.VertexCount())

	hg.RestoreFrom(snapshot)
	assert.Equal(t, 3, hg.VertexCount())
	assert.Len(t, hg.Instances(), 3)
}

func TestHGraph_ZeroArityLabel(t *testing.T) {
	hg := structure.NewHGraph()
	require.NoError(t, hg.AddVertex("a"))
	require.NoError(t, hg.AddLabel("Flag", 0))
	require.NoError(t, hg.AddEdgeInstance("Flag", nil))
	assert.Len(t, hg.Instances(), 1)
}
