package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sudoku_solver_go/internal/types"
	"sudoku_solver_go/internal/validator"
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [puzzle]",
		Short: "Check a puzzle's fixed digits for row/column/box conflicts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readPuzzleArg(args)
			if err != nil {
				return err
			}
			grid, err := types.FromString(input)
			if err != nil {
				return err
			}

			ok, conflicts := validator.Check(grid)
			if !ok {
				for _, p := range conflicts {
					fmt.Printf("conflict at row %d, col %d\n", p.Row, p.Col)
				}
				return fmt.Errorf("%d conflicting fixed digits", len(conflicts))
			}
			fmt.Println("ok")
			return nil
		},
	}
}
