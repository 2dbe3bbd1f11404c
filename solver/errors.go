package solver

import "errors"

// ErrSolverFailed is returned when the external SAT process exits with a
// non-zero status.
var ErrSolverFailed = errors.New("solver: external process failed")

// ErrUnrecognizedOutput is returned when the solver's stdout starts with
// neither "% SATISFIABLE" nor "% UNSATISFIABLE".
var ErrUnrecognizedOutput = errors.New("solver: unrecognized solver output")
