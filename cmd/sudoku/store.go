package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sudoku_solver_go/db"
	"sudoku_solver_go/internal/types"
)

func newGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Fetch a stored solve by record ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := db.Connect(); err != nil {
				return err
			}
			rec, err := db.GetSolve(args[0])
			if err != nil {
				return err
			}
			grid, err := types.FromString(rec.Solution)
			if err != nil {
				return fmt.Errorf("stored solution is corrupt: %v", err)
			}
			fmt.Printf("puzzle: %s\n", rec.Puzzle)
			fmt.Printf("nodes:  %d\n", rec.Nodes)
			fmt.Printf("millis: %d\n", rec.Millis)
			fmt.Print(grid.String())
			return nil
		},
	}
}

func newListCommand() *cobra.Command {
	var page, perPage int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored solves, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := db.Connect(); err != nil {
				return err
			}
			result, err := db.ListSolves(page, perPage)
			if err != nil {
				return err
			}
			for _, item := range result.Items {
				fmt.Printf("%v  %v  nodes=%v  millis=%v\n",
					item["id"], item["puzzle"], item["nodes"], item["millis"])
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&perPage, "per-page", 20, "records per page")
	return cmd
}
