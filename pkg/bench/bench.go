// Package bench measures wall-clock execution cost of selected puzzles
// using on-disk input fixtures.
package bench

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/asloane/aoc2024/internal/logging"
	"github.com/asloane/aoc2024/pkg/puzzle"
	"github.com/asloane/aoc2024/pkg/registry"
)

// FixtureError reports a fixture file that could not be loaded. It is fatal
// for its own entry only; the remaining entries still run.
type FixtureError struct {
	Day  puzzle.Day
	Path string
	Err  error
}

func (e *FixtureError) Error() string {
	return fmt.Sprintf("fixture for %s unavailable at %s: %v", e.Day, e.Path, e.Err)
}

func (e *FixtureError) Unwrap() error {
	return e.Err
}

// Result is the timing summary for one benchmarked puzzle.
type Result struct {
	Key     puzzle.Key
	Samples int
	Mean    time.Duration
	Median  time.Duration
	StdDev  time.Duration
	Min     time.Duration
	Max     time.Duration
}

// FixturePath derives the on-disk input location for a day.
func FixturePath(dir string, day puzzle.Day) string {
	return filepath.Join(dir, fmt.Sprintf("day%d.txt", int(day)))
}

// Run executes the suite against the registry and returns one result per
// entry that loaded its fixture and solved cleanly. Failed entries are
// logged and skipped; they never abort their siblings.
//
// Entries run sequentially so one measurement is not perturbed by a sibling
// competing for cores.
func Run(reg *registry.Registry, suite Suite, logger *slog.Logger) []Result {
	if logger == nil {
		logger = logging.NewNop()
	}

	results := make([]Result, 0, len(suite.Entries))
	for _, entry := range suite.Entries {
		fn, err := reg.Lookup(entry.Key)
		if err != nil {
			logger.Error("skipping benchmark entry", "key", entry.Key.String(), "err", err)
			continue
		}

		path := FixturePath(suite.InputDir, entry.Key.Day)
		input, err := loadFixture(entry.Key.Day, path)
		if err != nil {
			logger.Error("skipping benchmark entry", "key", entry.Key.String(), "err", err)
			continue
		}

		res, err := measure(entry, fn, input)
		if err != nil {
			logger.Error("skipping benchmark entry", "key", entry.Key.String(), "err", err)
			continue
		}
		logger.Debug("benchmark entry complete",
			"key", entry.Key.String(), "samples", res.Samples, "median", res.Median)
		results = append(results, res)
	}
	return results
}

// loadFixture reads the whole fixture file, releasing the handle on every
// exit path.
func loadFixture(day puzzle.Day, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", &FixtureError{Day: day, Path: path, Err: err}
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return "", &FixtureError{Day: day, Path: path, Err: err}
	}
	if !utf8.Valid(raw) {
		return "", &FixtureError{Day: day, Path: path, Err: fmt.Errorf("not valid UTF-8 text")}
	}
	return string(raw), nil
}

// measure times repeated solver invocations. Warm-up iterations are
// discarded to amortize cold-start effects; the retained samples feed the
// distribution summary.
func measure(entry Entry, fn puzzle.Func, input string) (Result, error) {
	for i := 0; i < entry.Warmup; i++ {
		if _, err := fn(input); err != nil {
			return Result{}, fmt.Errorf("warm-up solve failed: %w", err)
		}
	}

	// At least one sample, so hand-built entries bypassing Load/Default
	// still summarize safely.
	count := entry.Samples
	if count < 1 {
		count = 1
	}

	samples := make([]time.Duration, 0, count)
	for i := 0; i < count; i++ {
		start := time.Now()
		_, err := fn(input)
		elapsed := time.Since(start)
		if err != nil {
			return Result{}, fmt.Errorf("sample %d failed: %w", i, err)
		}
		samples = append(samples, elapsed)
	}

	return summarize(entry.Key, samples), nil
}
