package bench_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asloane/aoc2024/pkg/bench"
	"github.com/asloane/aoc2024/pkg/puzzle"
	"github.com/asloane/aoc2024/pkg/registry"
)

func constSolver(input string) (string, error) {
	return "answer", nil
}

func writeFixture(t *testing.T, dir string, day puzzle.Day, content string) {
	t.Helper()
	path := bench.FixturePath(dir, day)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestRun_ProducesOneResultPerEntry(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, 1, "fixture input\n")

	slowSolver := func(input string) (string, error) {
		time.Sleep(100 * time.Microsecond)
		return "answer", nil
	}
	reg, err := registry.New(puzzle.Solution{Day: 1, PartOne: slowSolver})
	require.NoError(t, err)

	suite := bench.Suite{
		InputDir: dir,
		Entries: []bench.Entry{
			{Key: puzzle.Key{Day: 1, Part: puzzle.PartOne}, Warmup: 1, Samples: 5},
		},
	}

	results := bench.Run(reg, suite, nil)
	require.Len(t, results, 1)

	r := results[0]
	assert.Equal(t, puzzle.Key{Day: 1, Part: puzzle.PartOne}, r.Key)
	assert.Equal(t, 5, r.Samples)
	assert.LessOrEqual(t, r.Min, r.Median)
	assert.LessOrEqual(t, r.Median, r.Max)
	assert.Greater(t, r.Mean, time.Duration(0))
}

func TestRun_MissingFixtureIsIsolated(t *testing.T) {
	dir := t.TempDir()
	// Day 2 has a fixture, day 5 does not.
	writeFixture(t, dir, 2, "ok\n")

	reg, err := registry.New(
		puzzle.Solution{Day: 2, PartOne: constSolver},
		puzzle.Solution{Day: 5, PartOne: constSolver},
	)
	require.NoError(t, err)

	suite := bench.Suite{
		InputDir: dir,
		Entries: []bench.Entry{
			{Key: puzzle.Key{Day: 5, Part: puzzle.PartOne}, Warmup: 1, Samples: 2},
			{Key: puzzle.Key{Day: 2, Part: puzzle.PartOne}, Warmup: 1, Samples: 2},
		},
	}

	results := bench.Run(reg, suite, nil)
	require.Len(t, results, 1, "the missing fixture must not abort the other entry")
	assert.Equal(t, puzzle.Key{Day: 2, Part: puzzle.PartOne}, results[0].Key)
}

func TestRun_SolverInvokedWarmupPlusSamples(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, 3, "x")

	calls := 0
	counting := func(input string) (string, error) {
		calls++
		return "", nil
	}
	reg, err := registry.New(puzzle.Solution{Day: 3, PartOne: counting})
	require.NoError(t, err)

	suite := bench.Suite{
		InputDir: dir,
		Entries: []bench.Entry{
			{Key: puzzle.Key{Day: 3, Part: puzzle.PartOne}, Warmup: 2, Samples: 4},
		},
	}

	results := bench.Run(reg, suite, nil)
	require.Len(t, results, 1)
	assert.Equal(t, 6, calls)
	assert.Equal(t, 4, results[0].Samples)
}

func TestRun_ZeroSamplesClampedToOne(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, 4, "x")

	reg, err := registry.New(puzzle.Solution{Day: 4, PartOne: constSolver})
	require.NoError(t, err)

	suite := bench.Suite{
		InputDir: dir,
		Entries: []bench.Entry{
			{Key: puzzle.Key{Day: 4, Part: puzzle.PartOne}},
		},
	}

	results := bench.Run(reg, suite, nil)
	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].Samples)
}

func TestRun_UnregisteredEntrySkipped(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, 7, "x")

	reg, err := registry.New()
	require.NoError(t, err)

	suite := bench.Suite{
		InputDir: dir,
		Entries: []bench.Entry{
			{Key: puzzle.Key{Day: 7, Part: puzzle.PartOne}, Warmup: 1, Samples: 1},
		},
	}
	assert.Empty(t, bench.Run(reg, suite, nil))
}

func TestFixturePath(t *testing.T) {
	assert.Equal(t, filepath.Join(".input", "day6.txt"), bench.FixturePath(".input", 6))
	assert.Equal(t, filepath.Join("fixtures", "day11.txt"), bench.FixturePath("fixtures", 11))
}
