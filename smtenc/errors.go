package smtenc

import "errors"

// ErrEmptyStructure mirrors satenc.ErrEmptyStructure: a structure with no
// vertices has no retract problem to encode.
var ErrEmptyStructure = errors.New("smtenc: structure has no vertices")

// ErrModelExtraction is returned when a satisfiable model's vmorph values
// can't be mapped back onto the known vertex domain — a z3/encoding
// mismatch that should never occur for a model this package itself built.
var ErrModelExtraction = errors.New("smtenc: could not extract morphism from model")
