// Package driver implements the iteration loop: repeatedly ask a Backend
// for a proper retract of a structure, apply it with the reducer, and
// stop when the backend reports none exists.
//
// Solve{Graph,Hypergraph} own the structure for the call's duration: each
// iteration takes a deep snapshot before invoking the backend, so a
// backend failure restores the structure to its state at the start of that
// iteration and surfaces a single error — no partial morphism is ever
// applied. Reductions completed in earlier iterations are kept.
package driver
