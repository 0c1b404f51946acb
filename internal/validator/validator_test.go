package validator

import (
	"testing"

	"sudoku_solver_go/internal/types"
)

func gridWith(t *testing.T, cells map[types.Position]int) *types.Grid {
	t.Helper()
	var g types.Grid
	for p, v := range cells {
		g.Cells[p.Row][p.Col] = v
	}
	return &g
}

func TestCheckAcceptsConsistentGivens(t *testing.T) {
	g, err := types.FromString("530070000600195000098000060800060003400803001700020006060000280000419005000080079")
	if err != nil {
		t.Fatalf("FromString: %v", err)
	}
	if ok, conflicts := Check(g); !ok {
		t.Errorf("valid puzzle flagged with conflicts %v", conflicts)
	}
}

func TestCheckAcceptsEmptyGrid(t *testing.T) {
	if ok, _ := Check(&types.Grid{}); !ok {
		t.Error("empty grid flagged as conflicting")
	}
}

func TestCheckFindsConflicts(t *testing.T) {
	cases := []struct {
		name  string
		cells map[types.Position]int
		want  types.Position
	}{
		{
			"row duplicate",
			map[types.Position]int{{Row: 0, Col: 0}: 5, {Row: 0, Col: 7}: 5},
			types.Position{Row: 0, Col: 7},
		},
		{
			"column duplicate",
			map[types.Position]int{{Row: 0, Col: 4}: 7, {Row: 6, Col: 4}: 7},
			types.Position{Row: 6, Col: 4},
		},
		{
			"box duplicate",
			map[types.Position]int{{Row: 3, Col: 3}: 3, {Row: 5, Col: 5}: 3},
			types.Position{Row: 5, Col: 5},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, conflicts := Check(gridWith(t, tc.cells))
			if ok {
				t.Fatal("conflict not detected")
			}
			found := false
			for _, p := range conflicts {
				if p == tc.want {
					found = true
				}
			}
			if !found {
				t.Errorf("conflicts %v do not include %v", conflicts, tc.want)
			}
		})
	}
}

func TestCheckReportsEveryUnit(t *testing.T) {
	// Two 4s in the same row and the same box conflict twice.
	g := gridWith(t, map[types.Position]int{
		{Row: 0, Col: 0}: 4,
		{Row: 0, Col: 1}: 4,
	})
	ok, conflicts := Check(g)
	if ok {
		t.Fatal("conflict not detected")
	}
	if len(conflicts) != 2 {
		t.Errorf("got %d conflict entries, want 2 (row and box)", len(conflicts))
	}
}
