// Package cores computes the core of a finite directed edge-labeled graph
// or a finite relational hypergraph: the unique smallest structure
// homomorphism-equivalent to the input, found by iteratively searching for
// and applying proper retracts until none remain.
//
// Two interchangeable backends answer the same question:
//
//   - SAT — emit a Boolean formula, hand it to an external solver process
//     over stdin/stdout, decode the model into a vertex-merging morphism.
//   - SMT — build the same semantics as an uninterpreted-function model
//     over enumerated sorts, solved in-process via Z3.
//
// Everything is organized under six subpackages:
//
//	structure/ — Graph, HGraph, Vertex, HLabel and the Morphism type
//	reducer/   — applies a morphism to a structure, producing its image
//	satenc/    — encodes/decodes the SAT formulation (both flavors)
//	smtenc/    — encodes/decodes the SMT formulation (both flavors)
//	solver/    — the two solver gateways (external process, in-process Z3)
//	driver/    — the iterate/reduce/terminate loop tying it together
//
// Quick example:
//
//	g := structure.NewGraph()
//	g.AddVertex("1")
//	g.AddVertex("2")
//	g.AddEdge("1", "1", 'A')
//	g.AddEdge("2", "1", 'A')
//	backend := solver.NewSATBackend("limboole", []string{"-s"})
//	if err := driver.SolveGraph(g, backend); err != nil {
//		log.Fatal(err)
//	}
//	// g now has one vertex: its core.
//
// Out of scope: textual (de)serialization, Graphviz rendering, randomized
// generation, and the interactive GUI — these are external collaborators,
// not part of this module.
package cores
