package driver

import "errors"

// ErrReduceFailed wraps a reducer error encountered mid-iteration. It should
// never occur for a morphism the backend itself produced from the same
// snapshot — seeing it indicates a backend/reducer encoding mismatch.
var ErrReduceFailed = errors.New("driver: reduce step failed")

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("driver: invalid option supplied")

// ErrStepLimitExceeded is returned when WithMaxSteps's cap is reached before
// the backend reports UNSAT.
var ErrStepLimitExceeded = errors.New("driver: step limit exceeded")
