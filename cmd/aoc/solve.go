package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/asloane/aoc2024/internal/cli"
	"github.com/asloane/aoc2024/pkg/puzzle"
)

// Exit codes, so scripts can branch on the failure class.
const (
	exitSolveFailed    = 1
	exitUnknownPuzzle  = 2
	exitInputOrIOError = 3
)

var solveCmd = &cobra.Command{
	Use:   "solve <day> <part>",
	Short: "Solve a puzzle with input from standard input",
	Long: `Reads the puzzle input from standard input until EOF and prints the answer.

The day is 1-25 and the part is "one" or "two" (or 1/2):

  aoc solve 3 two < .input/day3.txt`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		debug, _ := cmd.Flags().GetBool("debug")

		key, err := parseKey(args[0], args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(exitUnknownPuzzle)
		}

		if err := cli.RunSolve(cli.SolveOptions{Key: key, Debug: debug}); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(exitCode(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)
}

func parseKey(dayArg, partArg string) (puzzle.Key, error) {
	day, err := puzzle.ParseDay(dayArg)
	if err != nil {
		return puzzle.Key{}, err
	}
	part, err := puzzle.ParsePart(partArg)
	if err != nil {
		return puzzle.Key{}, err
	}
	return puzzle.Key{Day: day, Part: part}, nil
}

func exitCode(err error) int {
	var unknown *puzzle.UnknownPuzzleError
	var solve *puzzle.SolveError
	switch {
	case errors.As(err, &unknown):
		return exitUnknownPuzzle
	case errors.As(err, &solve):
		return exitSolveFailed
	}
	return exitInputOrIOError
}
