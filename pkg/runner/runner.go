// Package runner executes a single end-to-end solve request: resolve the
// key, drain the input source, invoke the solver, emit the answer.
package runner

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/asloane/aoc2024/internal/logging"
	"github.com/asloane/aoc2024/pkg/puzzle"
	"github.com/asloane/aoc2024/pkg/registry"
)

// Runner dispatches solve requests against a frozen registry using the
// provided IO. Swapping Input/Output keeps it testable and lets other
// frontends reuse the same dispatch path.
type Runner struct {
	Registry *registry.Registry

	// Input is drained to EOF once per request. Defaults to os.Stdin.
	Input io.Reader

	// Output receives the answer followed by a newline. Defaults to os.Stdout.
	Output io.Writer

	// Logger is used for internal debug logging. If nil, a no-op logger is used.
	Logger *slog.Logger
}

// New creates a Runner wired to the process's stdin and stdout.
func New(reg *registry.Registry) *Runner {
	return &Runner{
		Registry: reg,
		Input:    os.Stdin,
		Output:   os.Stdout,
		Logger:   logging.NewNop(),
	}
}

// Run performs one solve request for the given key.
//
// The key is resolved before any input is consumed, so an unknown puzzle
// never drains stdin. The solver is invoked exactly once; a solver failure
// is definitional, not transient, so there are no retries. Empty input is
// valid and forwarded as-is — whether it parses is the solver's concern.
func (r *Runner) Run(key puzzle.Key) error {
	logger := r.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	fn, err := r.Registry.Lookup(key)
	if err != nil {
		return err
	}

	raw, err := io.ReadAll(r.Input)
	if err != nil {
		return fmt.Errorf("reading input for %s: %w", key, err)
	}
	if !utf8.Valid(raw) {
		return &puzzle.InputEncodingError{Key: key}
	}
	logger.Debug("input read", "key", key.String(), "bytes", len(raw))

	answer, err := fn(string(raw))
	if err != nil {
		return &puzzle.SolveError{Key: key, Err: err}
	}

	_, err = fmt.Fprintln(r.Output, answer)
	return err
}
