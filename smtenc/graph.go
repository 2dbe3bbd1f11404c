package smtenc

import (
	"fmt"
	"sort"

	"github.com/aclements/go-z3/z3"

	"github.com/mnederkorn/cores/structure"
)

// SolveGraph asks Z3 for one proper retract of g. It reports (nil, false,
// nil) when g is already its own core (UNSAT).
func SolveGraph(g *structure.Graph) (structure.Morphism, bool, error) {
	verts := g.Vertices()
	if len(verts) == 0 {
		return nil, false, ErrEmptyStructure
	}

	ctx := z3.NewContext(z3.NewConfig())
	s := ctx.NewSolver()

	vertexSort, vertexConst := vertexSorts(ctx, s, verts)

	vmorph := ctx.FuncDecl("vmorph", []z3.Sort{vertexSort}, vertexSort)
	assertFunctionalityAndFixedImage(ctx, s, verts, vertexConst, vmorph)
	assertProperness(ctx, s, verts, vertexConst, vmorph)

	for _, l := range sortedLabelsOf(g) {
		assertGraphLabelMorphism(ctx, s, vertexConst, vmorph, string(l), labelPairs(g, l))
	}

	if s.Check() != z3.Sat {
		return nil, false, nil
	}

	return extractMorphism(ctx, s.Model(), verts, vertexConst, vmorph)
}

func sortedLabelsOf(g *structure.Graph) []byte {
	seen := map[byte]struct{}{}
	for _, b := range g.EdgeBundles() {
		for _, l := range b.SortedLabels() {
			seen[l] = struct{}{}
		}
	}
	out := make([]byte, 0, len(seen))
	for l := range seen {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func labelPairs(g *structure.Graph, label byte) [][2]string {
	var pairs [][2]string
	for _, b := range g.EdgeBundles() {
		if _, ok := b.Labels[label]; ok {
			pairs = append(pairs, [2]string{b.From, b.To})
		}
	}
	return pairs
}

// assertFunctionalityAndFixedImage imposes that vmorph is total and
// single-valued over the vertex sort, and fixes every vertex in its own
// image. The vertex sort is uninterpreted, so without an explicit range
// restriction vmorph(u) could be satisfied by a value outside the
// enumerated vertex constants entirely; assert that vmorph(u) always
// equals one of them, mirroring how the per-label edge morphism below is
// restricted to range over the declared edge constants.
func assertFunctionalityAndFixedImage(ctx *z3.Context, s *z3.Solver, verts []string, consts map[string]z3.Value, vmorph z3.FuncDecl) {
	for _, u := range verts {
		var disj []z3.Bool
		for _, w := range verts {
			disj = append(disj, vmorph.Apply(consts[w]).Eq(consts[u]))
		}
		s.Assert(ctx.Implies(ctx.Or(disj...), vmorph.Apply(consts[u]).Eq(consts[u])))

		var inRange []z3.Bool
		for _, v := range verts {
			inRange = append(inRange, vmorph.Apply(consts[u]).Eq(consts[v]))
		}
		s.Assert(ctx.Or(inRange...))
	}
}

// assertProperness forbids the identity morphism.
func assertProperness(ctx *z3.Context, s *z3.Solver, verts []string, consts map[string]z3.Value, vmorph z3.FuncDecl) {
	var fixed []z3.Bool
	for _, u := range verts {
		fixed = append(fixed, vmorph.Apply(consts[u]).Eq(consts[u]))
	}
	s.Assert(ctx.Not(ctx.And(fixed...)))
}

// assertGraphLabelMorphism declares the per-label edge sort (one record
// per edge with this label, src/tgt accessors), instantiates every
// concrete edge, and asserts the induced edge morphism is a homomorphism
// over vmorph and itself total/single-valued.
func assertGraphLabelMorphism(ctx *z3.Context, s *z3.Solver, vertexConst map[string]z3.Value, vmorph z3.FuncDecl, label string, pairs [][2]string) {
	if len(pairs) == 0 {
		return
	}
	edgeSort := ctx.UninterpretedSort(label + "Edge")
	srcFn := ctx.FuncDecl(label+"_src", []z3.Sort{edgeSort}, ctx.UninterpretedSort("Vertex"))
	tgtFn := ctx.FuncDecl(label+"_tgt", []z3.Sort{edgeSort}, ctx.UninterpretedSort("Vertex"))
	edgeMorph := ctx.FuncDecl(label+"_morph", []z3.Sort{edgeSort}, edgeSort)

	edgeConst := make([]z3.Value, len(pairs))
	for i, p := range pairs {
		c := ctx.Const(fmt.Sprintf("%s_e%d", label, i), edgeSort)
		s.Assert(srcFn.Apply(c).Eq(vertexConst[p[0]]))
		s.Assert(tgtFn.Apply(c).Eq(vertexConst[p[1]]))
		edgeConst[i] = c
	}
	s.Assert(ctx.Distinct(edgeConst...))

	for _, e := range edgeConst {
		s.Assert(vmorph.Apply(srcFn.Apply(e)).Eq(srcFn.Apply(edgeMorph.Apply(e))))
		s.Assert(vmorph.Apply(tgtFn.Apply(e)).Eq(tgtFn.Apply(edgeMorph.Apply(e))))

		var disj []z3.Bool
		for _, k := range edgeConst {
			disj = append(disj, edgeMorph.Apply(e).Eq(k))
		}
		s.Assert(ctx.Or(disj...))
	}
}

// extractMorphism reads vmorph out of a satisfying model into a Morphism,
// dropping every vertex vmorph fixes.
func extractMorphism(ctx *z3.Context, model *z3.Model, verts []string, consts map[string]z3.Value, vmorph z3.FuncDecl) (structure.Morphism, bool, error) {
	var m structure.Morphism
	for _, u := range verts {
		val := model.Eval(vmorph.Apply(consts[u]), true)
		target, ok := resolveConst(ctx, model, val, consts)
		if !ok {
			return nil, false, fmt.Errorf("%w: vertex %q", ErrModelExtraction, u)
		}
		if target != u {
			m = append(m, structure.Pair{Src: u, Tgt: target})
		}
	}
	return m, true, nil
}
