package smtenc

import (
	"fmt"

	"github.com/aclements/go-z3/z3"

	"github.com/mnederkorn/cores/structure"
)

// SolveHypergraph is the hypergraph analogue of SolveGraph: one record sort
// per label, with one accessor function per argument position instead of a
// fixed src/tgt pair.
func SolveHypergraph(hg *structure.HGraph) (structure.Morphism, bool, error) {
	verts := hg.Vertices()
	if len(verts) == 0 {
		return nil, false, ErrEmptyStructure
	}

	ctx := z3.NewContext(z3.NewConfig())
	s := ctx.NewSolver()

	vertexSort, vertexConst := vertexSorts(ctx, s, verts)

	vmorph := ctx.FuncDecl("vmorph", []z3.Sort{vertexSort}, vertexSort)
	assertFunctionalityAndFixedImage(ctx, s, verts, vertexConst, vmorph)
	assertProperness(ctx, s, verts, vertexConst, vmorph)

	byLabel := map[string][]structure.EdgeInstance{}
	for _, inst := range hg.Instances() {
		if len(inst.Args) == 0 {
			continue // zero-arity labels impose no constraint on vmorph
		}
		byLabel[inst.Label] = append(byLabel[inst.Label], inst)
	}
	for _, l := range hg.Labels() {
		insts := byLabel[l.Name]
		if len(insts) == 0 {
			continue
		}
		assertHyperLabelMorphism(ctx, s, vertexSort, vertexConst, vmorph, l.Name, l.Arity, insts)
	}

	if s.Check() != z3.Sat {
		return nil, false, nil
	}
	return extractMorphism(ctx, s.Model(), verts, vertexConst, vmorph)
}

// assertHyperLabelMorphism declares the record sort for one hypergraph
// label (arity accessors arg_0..arg_{k-1}), instantiates its instances, and
// asserts the induced edge morphism is a positional homomorphism over
// vmorph and itself total/single-valued.
func assertHyperLabelMorphism(ctx *z3.Context, s *z3.Solver, vertexSort z3.Sort, vertexConst map[string]z3.Value, vmorph z3.FuncDecl, label string, arity int, insts []structure.EdgeInstance) {
	edgeSort := ctx.UninterpretedSort(label + "Edge")
	argFns := make([]z3.FuncDecl, arity)
	for i := 0; i < arity; i++ {
		argFns[i] = ctx.FuncDecl(fmt.Sprintf("%s_arg%d", label, i), []z3.Sort{edgeSort}, vertexSort)
	}
	edgeMorph := ctx.FuncDecl(label+"_morph", []z3.Sort{edgeSort}, edgeSort)

	edgeConst := make([]z3.Value, len(insts))
	for i, inst := range insts {
		c := ctx.Const(fmt.Sprintf("%s_e%d", label, i), edgeSort)
		for pos, v := range inst.Args {
			s.Assert(argFns[pos].Apply(c).Eq(vertexConst[v]))
		}
		edgeConst[i] = c
	}
	s.Assert(ctx.Distinct(edgeConst...))

	for _, e := range edgeConst {
		for _, argFn := range argFns {
			s.Assert(vmorph.Apply(argFn.Apply(e)).Eq(argFn.Apply(edgeMorph.Apply(e))))
		}
		var disj []z3.Bool
		for _, k := range edgeConst {
			disj = append(disj, edgeMorph.Apply(e).Eq(k))
		}
		s.Assert(ctx.Or(disj...))
	}
}
