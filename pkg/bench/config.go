package bench

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/asloane/aoc2024/pkg/puzzle"
)

// Entry is one benchmarked puzzle. Warmup and Samples, when zero, inherit
// the suite-wide values.
type Entry struct {
	Key     puzzle.Key
	Warmup  int
	Samples int
}

// Suite is the curated set of puzzles worth benchmarking. The selection is
// a human judgment call, so it lives in an editable config file rather than
// being derived from the registry.
type Suite struct {
	InputDir string
	Entries  []Entry
}

const (
	defaultInputDir = ".input"
	defaultWarmup   = 2
	defaultSamples  = 10
)

// Default returns the built-in suite: the handful of puzzles expensive
// enough to track. Cheap puzzles are deliberately excluded to keep the run
// time bounded.
func Default() Suite {
	return Suite{
		InputDir: defaultInputDir,
		Entries: []Entry{
			{Key: puzzle.Key{Day: 6, Part: puzzle.PartTwo}, Warmup: defaultWarmup, Samples: defaultSamples},
			{Key: puzzle.Key{Day: 9, Part: puzzle.PartTwo}, Warmup: defaultWarmup, Samples: defaultSamples},
			{Key: puzzle.Key{Day: 11, Part: puzzle.PartTwo}, Warmup: defaultWarmup, Samples: defaultSamples},
		},
	}
}

type suiteConfig struct {
	InputDir string        `yaml:"input_dir"`
	Warmup   int           `yaml:"warmup"`
	Samples  int           `yaml:"samples"`
	Entries  []entryConfig `yaml:"entries"`
}

type entryConfig struct {
	Day     int    `yaml:"day"`
	Part    string `yaml:"part"`
	Warmup  int    `yaml:"warmup"`
	Samples int    `yaml:"samples"`
}

// Load reads and validates a suite definition from a YAML file.
func Load(path string) (Suite, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Suite{}, fmt.Errorf("reading bench config: %w", err)
	}

	var cfg suiteConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Suite{}, fmt.Errorf("parsing bench config %s: %w", path, err)
	}

	if cfg.InputDir == "" {
		cfg.InputDir = defaultInputDir
	}
	if cfg.Warmup <= 0 {
		cfg.Warmup = defaultWarmup
	}
	if cfg.Samples <= 0 {
		cfg.Samples = defaultSamples
	}

	suite := Suite{InputDir: cfg.InputDir}
	for i, e := range cfg.Entries {
		day := puzzle.Day(e.Day)
		if !day.Valid() {
			return Suite{}, fmt.Errorf("bench config %s: entry %d: invalid day %d", path, i, e.Day)
		}
		part, err := puzzle.ParsePart(e.Part)
		if err != nil {
			return Suite{}, fmt.Errorf("bench config %s: entry %d: %w", path, i, err)
		}

		entry := Entry{
			Key:     puzzle.Key{Day: day, Part: part},
			Warmup:  e.Warmup,
			Samples: e.Samples,
		}
		if entry.Warmup <= 0 {
			entry.Warmup = cfg.Warmup
		}
		if entry.Samples <= 0 {
			entry.Samples = cfg.Samples
		}
		suite.Entries = append(suite.Entries, entry)
	}

	return suite, nil
}
