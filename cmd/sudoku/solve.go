package main

import (
	"fmt"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"sudoku_solver_go/db"
	"sudoku_solver_go/internal/solver"
	"sudoku_solver_go/internal/types"
	"sudoku_solver_go/internal/validator"
	"sudoku_solver_go/internal/visualizer"
)

func newSolveCommand() *cobra.Command {
	var (
		pretty bool
		check  bool
		upload bool
		prof   bool
	)

	cmd := &cobra.Command{
		Use:   "solve [puzzle]",
		Short: "Solve a single puzzle given as an 81-digit string",
		Long: "Solve reads an 81-character puzzle string (row-major, '0' for blank)\n" +
			"from the first argument, or from stdin when no argument is given, and\n" +
			"prints the completed grid.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if prof {
				defer profile.Start(profile.ProfilePath(".")).Stop()
			}

			input, err := readPuzzleArg(args)
			if err != nil {
				return err
			}
			grid, err := types.FromString(input)
			if err != nil {
				return err
			}
			if check {
				if ok, conflicts := validator.Check(grid); !ok {
					return fmt.Errorf("conflicting fixed digits at %v", conflicts)
				}
			}

			puzzle := grid.Clone()
			s := solver.New()
			start := time.Now()
			solved := s.Solve(grid)
			elapsed := time.Since(start)
			log.Debugf("search finished: nodes=%d elapsed=%v", s.Nodes(), elapsed)

			if !solved {
				return fmt.Errorf("puzzle has no solution")
			}

			if pretty {
				viz := visualizer.New(grid)
				viz.MarkGivens(puzzle)
				fmt.Print(viz.Render())
			} else {
				fmt.Print(grid.String())
			}

			if upload {
				if err := db.Connect(); err != nil {
					return err
				}
				rec, err := db.UploadSolve(puzzle.Encode(), grid.Encode(), s.Nodes(), elapsed)
				if err != nil {
					return err
				}
				log.Infof("uploaded solve %s", rec.ID)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "render the solution with box borders")
	cmd.Flags().BoolVar(&check, "check", false, "reject puzzles whose givens already conflict")
	cmd.Flags().BoolVar(&upload, "upload", false, "store the result in PocketBase")
	cmd.Flags().BoolVar(&prof, "profile", false, "write a CPU profile to the current directory")
	return cmd
}
