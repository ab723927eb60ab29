package presentation_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asloane/aoc2024/internal/presentation"
	"github.com/asloane/aoc2024/pkg/bench"
	"github.com/asloane/aoc2024/pkg/puzzle"
)

func TestWriteBenchReport_OneRowPerResult(t *testing.T) {
	results := []bench.Result{
		{
			Key:     puzzle.Key{Day: 6, Part: puzzle.PartTwo},
			Samples: 10,
			Mean:    120 * time.Millisecond,
			Median:  118 * time.Millisecond,
			StdDev:  4 * time.Millisecond,
			Min:     114 * time.Millisecond,
			Max:     131 * time.Millisecond,
		},
		{
			Key:     puzzle.Key{Day: 11, Part: puzzle.PartTwo},
			Samples: 20,
			Mean:    40 * time.Millisecond,
			Median:  39 * time.Millisecond,
			StdDev:  time.Millisecond,
			Min:     38 * time.Millisecond,
			Max:     44 * time.Millisecond,
		},
	}

	out := &bytes.Buffer{}
	require.NoError(t, presentation.WriteBenchReport(out, results))

	assert.Contains(t, out.String(), "day 6 part two")
	assert.Contains(t, out.String(), "day 11 part two")

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	// Title, header, one row per result.
	assert.Len(t, lines, 4)
}

func TestWriteBenchReport_Empty(t *testing.T) {
	out := &bytes.Buffer{}
	require.NoError(t, presentation.WriteBenchReport(out, nil))
	assert.Contains(t, out.String(), "no benchmark results")
}
