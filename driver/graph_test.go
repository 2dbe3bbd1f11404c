package driver_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnederkorn/cores/driver"
	"github.com/mnederkorn/cores/structure"
)

// scriptedBackend replays a fixed sequence of Graph() results, one per call,
// so the driver loop can be tested without a real solver.
type scriptedBackend struct {
	steps []struct {
		m   structure.Morphism
		ok  bool
		err error
	}
	calls int
}

func (b *scriptedBackend) Graph(*structure.Graph) (structure.Morphism, bool, error) {
	s := b.steps[b.calls]
	b.calls++
	return s.m, s.ok, s.err
}

func (b *scriptedBackend) Hypergraph(*structure.HGraph) (structure.Morphism, bool, error) {
	panic("not used")
}

func buildS2(t *testing.T) *structure.Graph {
	t.Helper()
	g := structure.NewGraph()
	require.NoError(t, g.AddVertex("1"))
	require.NoError(t, g.AddVertex("2"))
	require.NoError(t, g.AddEdge("1", "1", 'A'))
	require.NoError(t, g.AddEdge("2", "1", 'A'))
	return g
}

func TestSolveGraph_S2_OneStepToCore(t *testing.T) {
	g := buildS2(t)
	backend := &scriptedBackend{steps: []struct {
		m   structure.Morphism
		ok  bool
		err error
	}{
		{m: structure.Morphism{{Src: "2", Tgt: "1"}}, ok: true},
	}}

	var iterations []int
	err := driver.SolveGraph(g, backend, driver.WithOnIteration(func(step int, _ structure.Morphism) {
		iterations = append(iterations, step)
	}))
	require.NoError(t, err)
	assert.Equal(t, 1, g.VertexCount())
	assert.Equal(t, []int{1}, iterations)
}

func TestSolveGraph_UNSAT_StopsImmediately(t *testing.T) {
	g := buildS2(t)
	backend := &scriptedBackend{steps: []struct {
		m   structure.Morphism
		ok  bool
		err error
	}{
		{ok: false},
	}}

	err := driver.SolveGraph(g, backend)
	require.NoError(t, err)
	assert.Equal(t, 2, g.VertexCount())
}

func TestSolveGraph_BackendError_RestoresSnapshot(t *testing.T) {
	g := buildS2(t)
	boom := errors.New("boom")
	backend := &scriptedBackend{steps: []struct {
		m   structure.Morphism
		ok  bool
		err error
	}{
		{err: boom},
	}}

	err := driver.SolveGraph(g, backend)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	// Structure must be untouched: both vertices and the self-loop survive.
	assert.Equal(t, 2, g.VertexCount())
	assert.True(t, g.HasEdge("1", "1"))
	assert.True(t, g.HasEdge("2", "1"))
}

func buildChain3(t *testing.T) *structure.Graph {
	t.Helper()
	g := structure.NewGraph()
	for _, v := range []string{"1", "2", "3"} {
		require.NoError(t, g.AddVertex(v))
	}
	require.NoError(t, g.AddEdge("1", "1", 'A'))
	require.NoError(t, g.AddEdge("2", "1", 'A'))
	require.NoError(t, g.AddEdge("3", "2", 'A'))
	return g
}

func TestSolveGraph_MaxStepsExceeded(t *testing.T) {
	// This chain needs two genuine retracts to collapse to one vertex;
	// capping at one step must surface ErrStepLimitExceeded instead of
	// silently under-reducing. Only the first step is ever called.
	g := buildChain3(t)
	backend := &scriptedBackend{steps: []struct {
		m   structure.Morphism
		ok  bool
		err error
	}{
		{m: structure.Morphism{{Src: "3", Tgt: "2"}}, ok: true},
	}}

	err := driver.SolveGraph(g, backend, driver.WithMaxSteps(1))
	require.Error(t, err)
	assert.ErrorIs(t, err, driver.ErrStepLimitExceeded)
}

func TestSolveGraph_MaxStepsZeroMeansUnlimited(t *testing.T) {
	g := buildS2(t)
	backend := &scriptedBackend{steps: []struct {
		m   structure.Morphism
		ok  bool
		err error
	}{
		{m: structure.Morphism{{Src: "2", Tgt: "1"}}, ok: true},
	}}

	err := driver.SolveGraph(g, backend, driver.WithMaxSteps(0))
	require.NoError(t, err)
}

func TestSolveGraph_SingleVertex_NoOpBackendNeverCalled(t *testing.T) {
	g := structure.NewGraph()
	require.NoError(t, g.AddVertex("only"))

	err := driver.SolveGraph(g, &scriptedBackend{})
	require.NoError(t, err)
	assert.Equal(t, 1, g.VertexCount())
}
