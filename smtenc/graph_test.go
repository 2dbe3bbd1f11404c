package smtenc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnederkorn/cores/smtenc"
	"github.com/mnederkorn/cores/structure"
)

func buildS2(t *testing.T) *structure.Graph {
	t.Helper()
	g := structure.NewGraph()
	require.NoError(t, g.AddVertex("1"))
	require.NoError(t, g.AddVertex("2"))
	require.NoError(t, g.AddEdge("1", "1", 'A'))
	require.NoError(t, g.AddEdge("2", "1", 'A'))
	return g
}

func build3Cycle(t *testing.T) *structure.Graph {
	t.Helper()
	g := structure.NewGraph()
	for _, v := range []string{"1", "2", "3"} {
		require.NoError(t, g.AddVertex(v))
	}
	require.NoError(t, g.AddEdge("1", "2", 'A'))
	require.NoError(t, g.AddEdge("2", "3", 'A'))
	require.NoError(t, g.AddEdge("3", "1", 'A'))
	return g
}

func TestSolveGraph_S2_FindsRetract(t *testing.T) {
	m, ok, err := smtenc.SolveGraph(buildS2(t))
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, m, 1)
	assert.Equal(t, structure.Pair{Src: "2", Tgt: "1"}, m[0])
}

func TestSolveGraph_3Cycle_AlreadyCore(t *testing.T) {
	_, ok, err := smtenc.SolveGraph(build3Cycle(t))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSolveGraph_EmptyStructure(t *testing.T) {
	_, _, err := smtenc.SolveGraph(structure.NewGraph())
	assert.ErrorIs(t, err, smtenc.ErrEmptyStructure)
}
