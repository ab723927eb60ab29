package cli

import (
	"fmt"
	"os"

	"github.com/asloane/aoc2024/internal/presentation"
	"github.com/asloane/aoc2024/internal/solutions"
	"github.com/asloane/aoc2024/pkg/bench"
	"github.com/asloane/aoc2024/pkg/registry"
)

// BenchOptions contains the configuration for the bench command.
type BenchOptions struct {
	// ConfigPath points at the curated suite file. Empty means the built-in
	// default suite.
	ConfigPath string
	// InputDir overrides the suite's fixture directory when non-empty.
	InputDir string
	Debug    bool
}

// RunBench loads the suite, benchmarks every resolvable entry against the
// registry, and writes the report to stdout.
func RunBench(opts BenchOptions) error {
	suite := bench.Default()
	if opts.ConfigPath != "" {
		var err error
		suite, err = bench.Load(opts.ConfigPath)
		if err != nil {
			return err
		}
	}
	if opts.InputDir != "" {
		suite.InputDir = opts.InputDir
	}

	reg, err := registry.New(solutions.All()...)
	if err != nil {
		return fmt.Errorf("building solver registry: %w", err)
	}

	results := bench.Run(reg, suite, newLogger(opts.Debug))
	return presentation.WriteBenchReport(os.Stdout, results)
}
