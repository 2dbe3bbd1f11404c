// Package structure defines the in-memory representation of the two
// structure flavors CoReS operates on — Graph and HGraph — along with the
// Morphism type produced by a retract search.
//
// Graph models a finite directed multigraph: vertices identified by string
// IDs, edges keyed by an ordered pair (From, To) carrying a non-empty set of
// single-uppercase-letter Labels. HGraph models a finite relational
// hypergraph: vertices, a set of Labels of fixed arity, and EdgeInstances —
// tuples of vertex IDs matched positionally to a label of that arity.
//
// Both types guard their mutable state with separate sync.RWMutex locks
// (one for the vertex catalog, one for edges/adjacency), independent of the
// fact that the retract-search driver only ever calls them from a single
// goroutine at a time.
//
// Neither type parses or serializes text — that is an out-of-scope external
// collaborator; structures are built purely through the exported mutation
// methods (AddVertex, AddEdge, AddLabel, AddEdgeInstance), which validate
// their invariants directly instead of relying on parse-time checks.
package structure
