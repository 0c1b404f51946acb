package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Board geometry. Only the standard 9x9 layout is supported.
const (
	Size      = 9
	BoxSize   = 3
	CellCount = Size * Size
)

// ErrInvalidInputFormat reports a puzzle string of the wrong length or
// containing a non-digit character.
var ErrInvalidInputFormat = errors.New("invalid puzzle format")

// Grid represents a standard 9x9 Sudoku grid. Zero marks a blank cell.
type Grid struct {
	Cells [Size][Size]int `json:"cells"`
}

// FromString builds a grid from an 81-character digit string, read
// left-to-right then top-to-bottom, with '0' meaning blank.
func FromString(s string) (*Grid, error) {
	if len(s) != CellCount {
		return nil, fmt.Errorf("%w: got %d characters, want %d", ErrInvalidInputFormat, len(s), CellCount)
	}
	var g Grid
	for i := 0; i < CellCount; i++ {
		ch := s[i]
		if ch < '0' || ch > '9' {
			return nil, fmt.Errorf("%w: character %q at index %d", ErrInvalidInputFormat, ch, i)
		}
		g.Cells[i/Size][i%Size] = int(ch - '0')
	}
	return &g, nil
}

// String renders the grid as nine lines of nine space-separated digits,
// each line terminated by a newline.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(CellCount * 2)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			b.WriteByte(byte('0' + g.Cells[r][c]))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Encode returns the compact 81-character form of the grid.
func (g *Grid) Encode() string {
	var b [CellCount]byte
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			b[r*Size+c] = byte('0' + g.Cells[r][c])
		}
	}
	return string(b[:])
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	out := *g
	return &out
}

// ToJSON converts the grid to JSON bytes
func (g *Grid) ToJSON() ([]byte, error) {
	return json.Marshal(g)
}

// FromJSON creates a Grid from JSON bytes
func FromJSON(data []byte) (*Grid, error) {
	var grid Grid
	err := json.Unmarshal(data, &grid)
	return &grid, err
}

// Position identifies a cell by row and column, both in [0,9).
// Positions are ordered row-major: all of row 0, then row 1, and so on.
type Position struct {
	Row int
	Col int
}

// Next returns the row-major successor of p. The second return value is
// false when p is the last cell (8,8).
func (p Position) Next() (Position, bool) {
	if p.Col < Size-1 {
		return Position{Row: p.Row, Col: p.Col + 1}, true
	}
	if p.Row < Size-1 {
		return Position{Row: p.Row + 1}, true
	}
	return Position{}, false
}
