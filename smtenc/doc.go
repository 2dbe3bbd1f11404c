// Package smtenc implements an in-process SMT encoding of the
// retract-search problem over uninterpreted sorts and functions, solved
// via github.com/aclements/go-z3/z3.
//
// Vertices become distinct constants of one uninterpreted sort; edges
// become distinct constants of a per-label record sort carrying
// <label>_src/<label>_tgt (or, for hypergraphs, <label>_arg0..<label>_arg{k-1})
// accessor functions. A single uninterpreted function vmorph : Vertex ->
// Vertex stands in for the candidate retract; one <label>_morph function per
// label carries the induced edge morphism. Every SolveGraph/SolveHypergraph call builds its own *z3.Context,
// since a Z3 solver context does not reset between uses — state must never
// be shared across iterations.
package smtenc
