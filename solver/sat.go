package solver

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/mnederkorn/cores/satenc"
	"github.com/mnederkorn/cores/structure"
)

// SATBackend shells out to an external SAT solver speaking the limboole
// text protocol: the formula is written to a temporary file, fed to the
// solver on stdin, and its stdout is parsed for a verdict and, if
// satisfiable, a variable assignment.
//
// The zero value is invalid; use NewSATBackend.
type SATBackend struct {
	// Command and Args name the solver executable, e.g. "limboole" with
	// Args []string{"-s"}.
	Command string
	Args    []string

	// Ctx bounds each solver invocation; defaults to context.Background()
	// if left nil.
	Ctx context.Context
}

// NewSATBackend returns a SATBackend invoking command with args.
func NewSATBackend(command string, args []string, opts ...GatewayOption) *SATBackend {
	b := &SATBackend{Command: command, Args: args}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Graph implements driver.Backend.
func (b *SATBackend) Graph(g *structure.Graph) (structure.Morphism, bool, error) {
	f, err := satenc.EncodeGraph(g)
	if err != nil {
		return nil, false, err
	}
	sat, assignments, err := b.run(f.Text)
	if err != nil {
		return nil, false, err
	}
	if !sat {
		return nil, false, nil
	}
	m, err := satenc.DecodeGraph(f, assignments)
	if err != nil {
		return nil, false, err
	}
	return m, true, nil
}

// Hypergraph implements driver.Backend.
func (b *SATBackend) Hypergraph(hg *structure.HGraph) (structure.Morphism, bool, error) {
	f, err := satenc.EncodeHypergraph(hg)
	if err != nil {
		return nil, false, err
	}
	sat, assignments, err := b.run(f.Text)
	if err != nil {
		return nil, false, err
	}
	if !sat {
		return nil, false, nil
	}
	m, err := satenc.DecodeHypergraph(f, assignments)
	if err != nil {
		return nil, false, err
	}
	return m, true, nil
}

// run writes formula to a temporary file, feeds it to the solver on stdin,
// and parses the result. The temp file is always removed.
func (b *SATBackend) run(formula string) (sat bool, assignments map[string]bool, err error) {
	tmp, err := os.CreateTemp("", "cores-sat-*.txt")
	if err != nil {
		return false, nil, fmt.Errorf("solver: creating temp formula file: %w", err)
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if _, err := tmp.WriteString(formula); err != nil {
		return false, nil, fmt.Errorf("solver: writing temp formula file: %w", err)
	}
	if _, err := tmp.Seek(0, 0); err != nil {
		return false, nil, fmt.Errorf("solver: rewinding temp formula file: %w", err)
	}

	ctx := b.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	cmd := exec.CommandContext(ctx, b.Command, b.Args...)
	cmd.Stdin = tmp

	output, err := cmd.Output()
	if err != nil {
		return false, nil, fmt.Errorf("%w: %w", ErrSolverFailed, err)
	}

	text := string(output)
	satVerdict, ok := parseVerdict(text)
	if !ok {
		return false, nil, fmt.Errorf("%w: %q", ErrUnrecognizedOutput, firstLine(text))
	}
	if !satVerdict {
		return false, nil, nil
	}
	return true, parseAssignments(text), nil
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}
