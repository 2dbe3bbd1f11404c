// Package solver implements the two solver gateways: SATBackend, which
// shells out to an external SAT solver speaking the limboole text
// protocol, and SMTBackend, which wraps the in-process Z3 encoding of
// package smtenc. Both satisfy driver.Backend; this package does not
// import driver to avoid a cycle.
package solver
