package validator

import "sudoku_solver_go/internal/types"

// Check scans a grid's non-zero digits for duplicates within a row,
// column, or 3x3 box. It returns false together with the positions of the
// offending cells when the givens already conflict; the solver never runs
// this itself, callers opt in before searching.
func Check(g *types.Grid) (bool, []types.Position) {
	conf := make([]types.Position, 0, 8)
	// rows
	for r := 0; r < types.Size; r++ {
		m := 0
		for c := 0; c < types.Size; c++ {
			val := g.Cells[r][c]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, types.Position{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// cols
	for c := 0; c < types.Size; c++ {
		m := 0
		for r := 0; r < types.Size; r++ {
			val := g.Cells[r][c]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, types.Position{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// boxes
	for br := 0; br < types.BoxSize; br++ {
		for bc := 0; bc < types.BoxSize; bc++ {
			m := 0
			for dr := 0; dr < types.BoxSize; dr++ {
				for dc := 0; dc < types.BoxSize; dc++ {
					r := br*types.BoxSize + dr
					c := bc*types.BoxSize + dc
					val := g.Cells[r][c]
					if val == 0 {
						continue
					}
					bit := 1 << val
					if m&bit != 0 {
						conf = append(conf, types.Position{Row: r, Col: c})
					}
					m |= bit
				}
			}
		}
	}
	return len(conf) == 0, conf
}
