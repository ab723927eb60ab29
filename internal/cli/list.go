package cli

import (
	"fmt"
	"os"

	"github.com/asloane/aoc2024/internal/solutions"
	"github.com/asloane/aoc2024/pkg/registry"
)

// RunList prints every registered puzzle key, one per line.
func RunList() error {
	reg, err := registry.New(solutions.All()...)
	if err != nil {
		return fmt.Errorf("building solver registry: %w", err)
	}

	for _, key := range reg.Keys() {
		fmt.Fprintln(os.Stdout, key)
	}
	return nil
}
