package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "0.11.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of aoc",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("aoc version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
