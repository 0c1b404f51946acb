package solver

import "sudoku_solver_go/internal/types"

// Solver fills grids by recursive backtracking. Cells are visited in
// row-major order and candidates tried in ascending order 1 through 9, so
// the first solution found is the same on every run.
type Solver struct {
	nodes int
}

func New() *Solver { return &Solver{} }

// Nodes reports how many candidate placements the last Solve attempted.
func (s *Solver) Nodes() int { return s.nodes }

// Solve searches for a complete assignment and returns true with the grid
// filled in when one exists. Pre-filled cells are never altered. On
// failure the grid is left exactly as it was passed in: each frame resets
// its own cell before giving up, so no speculative digit survives.
func (s *Solver) Solve(g *types.Grid) bool {
	s.nodes = 0
	return s.solveFrom(g, types.Position{})
}

func (s *Solver) solveFrom(g *types.Grid, pos types.Position) bool {
	if g.Cells[pos.Row][pos.Col] != 0 {
		next, ok := pos.Next()
		if !ok {
			return true
		}
		return s.solveFrom(g, next)
	}
	for v := 1; v <= types.Size; v++ {
		s.nodes++
		if !isValid(g, pos, v) {
			continue
		}
		g.Cells[pos.Row][pos.Col] = v
		next, ok := pos.Next()
		if !ok {
			return true
		}
		if s.solveFrom(g, next) {
			return true
		}
		g.Cells[pos.Row][pos.Col] = 0
	}
	return false
}

// isValid reports whether v can be placed at pos without duplicating a
// value already present in the same row, column, or 3x3 box. The check
// runs against the grid's current state, givens and guesses alike.
func isValid(g *types.Grid, pos types.Position, v int) bool {
	for i := 0; i < types.Size; i++ {
		if g.Cells[pos.Row][i] == v || g.Cells[i][pos.Col] == v {
			return false
		}
	}
	br := (pos.Row / types.BoxSize) * types.BoxSize
	bc := (pos.Col / types.BoxSize) * types.BoxSize
	for r := br; r < br+types.BoxSize; r++ {
		for c := bc; c < bc+types.BoxSize; c++ {
			if g.Cells[r][c] == v {
				return false
			}
		}
	}
	return true
}
