package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/asloane/aoc2024/internal/cli"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark the expensive solvers using fixture inputs",
	Long: `Runs the curated benchmark suite against fixture files stored one per day
(e.g. .input/day6.txt) and prints a timing summary per puzzle. A missing
fixture skips that entry; the rest of the suite still runs.`,
	Run: func(cmd *cobra.Command, args []string) {
		debug, _ := cmd.Flags().GetBool("debug")
		config, _ := cmd.Flags().GetString("config")
		inputDir, _ := cmd.Flags().GetString("input-dir")

		// Smart default: only pick up bench.yaml if it actually exists.
		if !cmd.Flags().Changed("config") {
			if _, err := os.Stat(config); err != nil {
				config = ""
			}
		}

		opts := cli.BenchOptions{ConfigPath: config, InputDir: inputDir, Debug: debug}
		if err := cli.RunBench(opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(benchCmd)

	benchCmd.Flags().String("config", "bench.yaml", "Benchmark suite file")
	benchCmd.Flags().String("input-dir", "", "Override the fixture directory")
}
