// Package reducer applies a vertex-merging Morphism to a structure.Graph or
// structure.HGraph, producing its image.
//
// Given a Morphism [(a1,b1), (a2,b2), ...] extracted from a solver model,
// Reduce/ReduceHyper first rewrite the pairs under a trace-preserving
// renaming discipline — so that a later pair targeting a name an earlier
// pair already renamed still resolves to the live vertex — then apply each
// rewritten pair by deleting its source vertex and renaming its target to
// record the merge.
package reducer
