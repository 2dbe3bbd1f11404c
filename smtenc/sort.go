package smtenc

import "github.com/aclements/go-z3/z3"

// vertexSorts builds the Vertex uninterpreted sort and a distinct constant
// for every vertex, plus the assertion that makes the constants pairwise
// distinct (the enumerated-datatype behaviour a Z3 Datatype sort would give
// for free).
func vertexSorts(ctx *z3.Context, s *z3.Solver, verts []string) (z3.Sort, map[string]z3.Value) {
	sort := ctx.UninterpretedSort("Vertex")
	consts := make(map[string]z3.Value, len(verts))
	vals := make([]z3.Value, 0, len(verts))
	for _, v := range verts {
		c := ctx.Const(v, sort)
		consts[v] = c
		vals = append(vals, c)
	}
	s.Assert(ctx.Distinct(vals...))
	return sort, consts
}

// resolveConst finds the vertex ID whose constant z3 reports as equal to
// val under the model, by evaluating val == c for each Vertex constant this
// package itself declared.
func resolveConst(ctx *z3.Context, model *z3.Model, val z3.Value, consts map[string]z3.Value) (string, bool) {
	for id, c := range consts {
		eq := model.Eval(val.Eq(c), true)
		if eq.IsTrue() {
			return id, true
		}
	}
	return "", false
}
