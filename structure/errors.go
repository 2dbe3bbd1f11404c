package structure

import "errors"

// Sentinel errors for structure construction and mutation. Callers should
// branch on these with errors.Is; messages are never matched as strings.
var (
	// ErrEmptyVertexID indicates an empty-string vertex ID was supplied.
	ErrEmptyVertexID = errors.New("structure: vertex ID is empty")

	// ErrDuplicateVertex indicates a vertex ID already exists in the structure.
	ErrDuplicateVertex = errors.New("structure: vertex already exists")

	// ErrUnknownVertex indicates an operation referenced a vertex ID that is
	// not present in the structure.
	ErrUnknownVertex = errors.New("structure: unknown vertex")

	// ErrBadLabel indicates a graph label outside the single-uppercase-letter
	// alphabet (A-Z), or an empty hypergraph label name.
	ErrBadLabel = errors.New("structure: label must be a single uppercase letter")

	// ErrDuplicateEdge indicates the same (From, To, Label) edge was added twice.
	ErrDuplicateEdge = errors.New("structure: duplicate edge")

	// ErrDuplicateLabel indicates a hypergraph label name was declared twice.
	ErrDuplicateLabel = errors.New("structure: duplicate label")

	// ErrUnknownLabel indicates an edge instance referenced an undeclared label.
	ErrUnknownLabel = errors.New("structure: unknown label")

	// ErrArityMismatch indicates an edge instance's argument count does not
	// match its label's declared arity, or a negative arity was declared.
	ErrArityMismatch = errors.New("structure: edge instance arity mismatch")

	// ErrDuplicateInstance indicates the same (label, args) edge instance was
	// added twice.
	ErrDuplicateInstance = errors.New("structure: duplicate edge instance")
)
