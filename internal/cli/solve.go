// Package cli implements the command logic behind the cobra layer.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/asloane/aoc2024/internal/logging"
	"github.com/asloane/aoc2024/internal/solutions"
	"github.com/asloane/aoc2024/pkg/puzzle"
	"github.com/asloane/aoc2024/pkg/registry"
	"github.com/asloane/aoc2024/pkg/runner"
)

// SolveOptions contains the configuration for the solve command.
type SolveOptions struct {
	Key   puzzle.Key
	Debug bool
}

// RunSolve builds the registry, dispatches one solve request with stdin as
// the input source, and prints the answer to stdout.
func RunSolve(opts SolveOptions) error {
	reg, err := registry.New(solutions.All()...)
	if err != nil {
		return fmt.Errorf("building solver registry: %w", err)
	}

	r := runner.New(reg)
	r.Logger = newLogger(opts.Debug)
	return r.Run(opts.Key)
}

func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return logging.New(level)
}
