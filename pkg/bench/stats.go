package bench

import (
	"math"
	"sort"
	"time"

	"github.com/asloane/aoc2024/pkg/puzzle"
)

// summarize reduces a non-empty sample set to its distribution summary.
func summarize(key puzzle.Key, samples []time.Duration) Result {
	sorted := make([]time.Duration, len(samples))
	copy(sorted, samples)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var sum time.Duration
	for _, d := range sorted {
		sum += d
	}
	mean := sum / time.Duration(len(sorted))

	var sq float64
	for _, d := range sorted {
		diff := float64(d - mean)
		sq += diff * diff
	}
	stddev := time.Duration(math.Sqrt(sq / float64(len(sorted))))

	mid := len(sorted) / 2
	median := sorted[mid]
	if len(sorted)%2 == 0 {
		median = (sorted[mid-1] + sorted[mid]) / 2
	}

	return Result{
		Key:     key,
		Samples: len(sorted),
		Mean:    mean,
		Median:  median,
		StdDev:  stddev,
		Min:     sorted[0],
		Max:     sorted[len(sorted)-1],
	}
}
