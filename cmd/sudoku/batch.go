package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/duke-git/lancet/v2/slice"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"sudoku_solver_go/internal/solver"
)

func newBatchCommand() *cobra.Command {
	var (
		file    string
		workers int
		prof    bool
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Solve a file of puzzles concurrently, one 81-digit string per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			if prof {
				defer profile.Start(profile.ProfilePath(".")).Stop()
			}

			puzzles, err := loadPuzzles(file)
			if err != nil {
				return err
			}
			if len(puzzles) == 0 {
				return fmt.Errorf("no puzzles in %s", file)
			}
			log.Infof("solving %d puzzles", len(puzzles))

			progress := make(chan solver.ProgressReport, len(puzzles))
			done := make(chan struct{})
			go func() {
				defer close(done)
				for p := range progress {
					log.Debug(p.Message)
				}
			}()
			results := solver.SolveAll(puzzles, workers, progress)
			close(progress)
			<-done

			failed := 0
			for _, res := range results {
				switch {
				case res.Err != nil:
					failed++
					fmt.Printf("%d: error: %v\n", res.Index+1, res.Err)
				case !res.Solved:
					failed++
					fmt.Printf("%d: no solution\n", res.Index+1)
				default:
					fmt.Printf("%d: %s\n", res.Index+1, res.Grid.Encode())
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d puzzles failed", failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "file with one puzzle per line")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "worker count (default: all CPUs)")
	cmd.Flags().BoolVar(&prof, "profile", false, "write a CPU profile to the current directory")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

// loadPuzzles reads one puzzle per line, skipping blank lines and
// #-comments, and drops repeated puzzles.
func loadPuzzles(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(string(data), "\n")
	lines = slice.Map(lines, func(_ int, l string) string { return strings.TrimSpace(l) })
	lines = slice.Filter(lines, func(_ int, l string) bool {
		return l != "" && !strings.HasPrefix(l, "#")
	})
	return slice.Unique(lines), nil
}
