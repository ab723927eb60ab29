package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/asloane/aoc2024/internal/cli"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the registered puzzles",
	Run: func(cmd *cobra.Command, args []string) {
		if err := cli.RunList(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
