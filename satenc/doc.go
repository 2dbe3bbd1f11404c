// Package satenc implements the SAT encoding/decoding half of the
// retract-search engine.
//
// Encode{Graph,Hypergraph} emit a propositional formula in limboole's
// concrete syntax (! negation, & conjunction, | disjunction) over one
// Boolean variable per ordered vertex pair: "u_v" for graphs, "u@v" for
// hypergraphs. A model of the formula corresponds to a proper retract.
//
// Decode{Graph,Hypergraph} do the inverse: given the solver's assignment
// map (produced by the solver gateway's text parsing, not by this
// package), they read off which target each vertex was assigned and
// return the resulting Morphism. Because the vertex domain is known in
// advance (it is exactly structure.Graph.Vertices()/HGraph.Vertices()),
// decoding is a direct map lookup over that domain rather than a regex
// over arbitrary atom text. Atom names are plain concatenations, so vertex
// names that themselves contain the atom separator ("_" or "@") can still
// produce colliding atoms.
package satenc
