package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

func newRootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "sudoku",
		Short:        "Solve 9x9 Sudoku puzzles with recursive backtracking",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newSolveCommand())
	root.AddCommand(newValidateCommand())
	root.AddCommand(newBatchCommand())
	root.AddCommand(newGetCommand())
	root.AddCommand(newListCommand())
	return root
}

// readPuzzleArg returns the puzzle string from the single positional
// argument, or from the first line of stdin when no argument was given.
func readPuzzleArg(args []string) (string, error) {
	if len(args) == 1 {
		return strings.TrimSpace(args[0]), nil
	}
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading puzzle from stdin: %v", err)
	}
	return strings.TrimSpace(line), nil
}
