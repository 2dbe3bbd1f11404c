package solver

import (
	"github.com/mnederkorn/cores/smtenc"
	"github.com/mnederkorn/cores/structure"
)

// SMTBackend solves in-process via package smtenc (Z3). Each call builds a
// fresh Z3 context, since a solver context does not reset between uses.
type SMTBackend struct{}

// NewSMTBackend returns an SMTBackend.
func NewSMTBackend() *SMTBackend { return &SMTBackend{} }

// Graph implements driver.Backend.
func (*SMTBackend) Graph(g *structure.Graph) (structure.Morphism, bool, error) {
	return smtenc.SolveGraph(g)
}

// Hypergraph implements driver.Backend.
func (*SMTBackend) Hypergraph(hg *structure.HGraph) (structure.Morphism, bool, error) {
	return smtenc.SolveHypergraph(hg)
}
