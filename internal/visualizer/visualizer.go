package visualizer

import (
	"strings"

	"sudoku_solver_go/internal/types"
)

// ANSI codes for highlighting given digits.
const (
	bold  = "\033[1m"
	reset = "\033[0m"
)

// Visualizer renders 9x9 grids with box-drawing borders.
type Visualizer struct {
	grid   *types.Grid
	givens *types.Grid
}

func New(grid *types.Grid) *Visualizer {
	return &Visualizer{grid: grid}
}

// MarkGivens supplies the original puzzle; cells that are non-zero in it
// render in bold so guessed digits stand apart from the input.
func (v *Visualizer) MarkGivens(puzzle *types.Grid) {
	v.givens = puzzle
}

// Render returns the grid as a bordered block of text, with dots for
// blank cells.
func (v *Visualizer) Render() string {
	var b strings.Builder
	writeBorder(&b)
	for r := 0; r < types.Size; r++ {
		b.WriteString("│ ")
		for c := 0; c < types.Size; c++ {
			cell := "."
			if val := v.grid.Cells[r][c]; val != 0 {
				cell = string(rune('0' + val))
			}
			if v.givens != nil && v.givens.Cells[r][c] != 0 {
				b.WriteString(bold)
				b.WriteString(cell)
				b.WriteString(reset)
			} else {
				b.WriteString(cell)
			}
			b.WriteByte(' ')

			if (c+1)%types.BoxSize == 0 && c < types.Size-1 {
				b.WriteString("│ ")
			}
		}
		b.WriteString("│\n")

		if (r+1)%types.BoxSize == 0 && r < types.Size-1 {
			writeBorder(&b)
		}
	}
	writeBorder(&b)
	return b.String()
}

func writeBorder(b *strings.Builder) {
	b.WriteString("├")
	for i := 0; i < types.Size; i++ {
		b.WriteString("──")
		if (i+1)%types.BoxSize == 0 && i < types.Size-1 {
			b.WriteString("┼")
		}
	}
	b.WriteString("┤\n")
}
