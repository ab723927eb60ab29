package runner_test

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asloane/aoc2024/pkg/puzzle"
	"github.com/asloane/aoc2024/pkg/registry"
	"github.com/asloane/aoc2024/pkg/runner"
)

func sumLines(input string) (string, error) {
	sum := 0
	for _, line := range strings.Fields(input) {
		n, err := strconv.Atoi(line)
		if err != nil {
			return "", err
		}
		sum += n
	}
	return strconv.Itoa(sum), nil
}

func newRunner(t *testing.T, reg *registry.Registry, input string) (*runner.Runner, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	r := runner.New(reg)
	r.Input = strings.NewReader(input)
	r.Output = out
	return r, out
}

func TestRunner_SolvesRegisteredPuzzle(t *testing.T) {
	reg, err := registry.New(puzzle.Solution{Day: 1, PartOne: sumLines})
	require.NoError(t, err)

	r, out := newRunner(t, reg, "3\n1\n2\n")
	require.NoError(t, r.Run(puzzle.Key{Day: 1, Part: puzzle.PartOne}))
	assert.Equal(t, "6\n", out.String())
}

func TestRunner_UnknownPuzzle(t *testing.T) {
	reg, err := registry.New(puzzle.Solution{Day: 1, PartOne: sumLines})
	require.NoError(t, err)

	r, out := newRunner(t, reg, "3\n1\n2\n")
	err = r.Run(puzzle.Key{Day: 1, Part: puzzle.PartTwo})

	var unknown *puzzle.UnknownPuzzleError
	require.ErrorAs(t, err, &unknown)
	assert.Empty(t, out.String(), "nothing may be printed on failure")
}

func TestRunner_UnknownPuzzleNeverInvokesSolver(t *testing.T) {
	calls := 0
	counting := func(input string) (string, error) {
		calls++
		return "", nil
	}
	reg, err := registry.New(puzzle.Solution{Day: 2, PartOne: counting})
	require.NoError(t, err)

	r, _ := newRunner(t, reg, "irrelevant")
	_ = r.Run(puzzle.Key{Day: 3, Part: puzzle.PartOne})
	assert.Zero(t, calls)
}

func TestRunner_InvokesSolverExactlyOnce(t *testing.T) {
	calls := 0
	counting := func(input string) (string, error) {
		calls++
		return "ok", nil
	}
	reg, err := registry.New(puzzle.Solution{Day: 2, PartOne: counting})
	require.NoError(t, err)

	r, _ := newRunner(t, reg, "input")
	require.NoError(t, r.Run(puzzle.Key{Day: 2, Part: puzzle.PartOne}))
	assert.Equal(t, 1, calls)
}

func TestRunner_EmptyInputForwarded(t *testing.T) {
	var got *string
	capture := func(input string) (string, error) {
		got = &input
		return "empty ok", nil
	}
	reg, err := registry.New(puzzle.Solution{Day: 4, PartOne: capture})
	require.NoError(t, err)

	r, out := newRunner(t, reg, "")
	require.NoError(t, r.Run(puzzle.Key{Day: 4, Part: puzzle.PartOne}))
	require.NotNil(t, got, "solver must be invoked for empty input")
	assert.Equal(t, "", *got)
	assert.Equal(t, "empty ok\n", out.String())
}

func TestRunner_InvalidEncoding(t *testing.T) {
	reg, err := registry.New(puzzle.Solution{Day: 5, PartOne: sumLines})
	require.NoError(t, err)

	out := &bytes.Buffer{}
	r := runner.New(reg)
	r.Input = bytes.NewReader([]byte{0xff, 0xfe, 0xfd})
	r.Output = out

	err = r.Run(puzzle.Key{Day: 5, Part: puzzle.PartOne})
	var enc *puzzle.InputEncodingError
	require.ErrorAs(t, err, &enc)
	assert.Empty(t, out.String())
}

func TestRunner_SolveFailurePropagatesCause(t *testing.T) {
	cause := errors.New("expected two integers per line")
	failing := func(input string) (string, error) {
		return "", cause
	}
	reg, err := registry.New(puzzle.Solution{Day: 6, PartOne: failing})
	require.NoError(t, err)

	r, out := newRunner(t, reg, "garbage")
	err = r.Run(puzzle.Key{Day: 6, Part: puzzle.PartOne})

	var solveErr *puzzle.SolveError
	require.ErrorAs(t, err, &solveErr)
	assert.Equal(t, puzzle.Key{Day: 6, Part: puzzle.PartOne}, solveErr.Key)
	assert.ErrorIs(t, err, cause)
	assert.Empty(t, out.String())
}

func TestRunner_Deterministic(t *testing.T) {
	reg, err := registry.New(puzzle.Solution{Day: 1, PartOne: sumLines})
	require.NoError(t, err)

	answers := make([]string, 0, 2)
	for i := 0; i < 2; i++ {
		r, out := newRunner(t, reg, "10\n20\n")
		require.NoError(t, r.Run(puzzle.Key{Day: 1, Part: puzzle.PartOne}))
		answers = append(answers, out.String())
	}
	assert.Equal(t, answers[0], answers[1])
}
