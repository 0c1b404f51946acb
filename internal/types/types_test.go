package types

import (
	"errors"
	"strings"
	"testing"
)

const classic = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"

func TestFromString(t *testing.T) {
	g, err := FromString(classic)
	if err != nil {
		t.Fatalf("FromString: %v", err)
	}
	if g.Cells[0][0] != 5 || g.Cells[0][1] != 3 || g.Cells[8][8] != 9 {
		t.Errorf("grid decoded incorrectly: corners %d %d %d",
			g.Cells[0][0], g.Cells[0][1], g.Cells[8][8])
	}
	if g.Cells[0][2] != 0 {
		t.Errorf("blank cell decoded as %d", g.Cells[0][2])
	}
}

func TestFromStringRejectsMalformedInput(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"too short", classic[:80]},
		{"too long", classic + "1"},
		{"letter", classic[:40] + "x" + classic[41:]},
		{"space", classic[:40] + " " + classic[41:]},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := FromString(tc.input); !errors.Is(err, ErrInvalidInputFormat) {
				t.Errorf("err = %v, want ErrInvalidInputFormat", err)
			}
		})
	}
}

func TestStringFormat(t *testing.T) {
	g, err := FromString(classic)
	if err != nil {
		t.Fatalf("FromString: %v", err)
	}
	out := g.String()
	if !strings.HasSuffix(out, "\n") {
		t.Error("output does not end with a newline")
	}
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != Size {
		t.Fatalf("got %d lines, want %d", len(lines), Size)
	}
	if lines[0] != "5 3 0 0 7 0 0 0 0" {
		t.Errorf("first line = %q", lines[0])
	}
	if lines[8] != "0 0 0 0 8 0 0 7 9" {
		t.Errorf("last line = %q", lines[8])
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	g, err := FromString(classic)
	if err != nil {
		t.Fatalf("FromString: %v", err)
	}
	if got := g.Encode(); got != classic {
		t.Errorf("Encode = %q, want %q", got, classic)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g, err := FromString(classic)
	if err != nil {
		t.Fatalf("FromString: %v", err)
	}
	cp := g.Clone()
	cp.Cells[0][2] = 4
	if g.Cells[0][2] != 0 {
		t.Error("mutating the clone changed the original")
	}
}

func TestPositionNext(t *testing.T) {
	cases := []struct {
		name string
		pos  Position
		want Position
		ok   bool
	}{
		{"within a row", Position{Row: 0, Col: 0}, Position{Row: 0, Col: 1}, true},
		{"row wrap", Position{Row: 0, Col: 8}, Position{Row: 1, Col: 0}, true},
		{"middle", Position{Row: 4, Col: 5}, Position{Row: 4, Col: 6}, true},
		{"last cell", Position{Row: 8, Col: 8}, Position{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.pos.Next()
			if ok != tc.ok || got != tc.want {
				t.Errorf("Next(%v) = %v, %v; want %v, %v", tc.pos, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestPositionOrderCoversGrid(t *testing.T) {
	pos := Position{}
	visited := 1
	for {
		next, ok := pos.Next()
		if !ok {
			break
		}
		if next.Row < pos.Row || (next.Row == pos.Row && next.Col <= pos.Col) {
			t.Fatalf("successor %v does not follow %v in row-major order", next, pos)
		}
		pos = next
		visited++
	}
	if visited != CellCount {
		t.Errorf("traversal visited %d cells, want %d", visited, CellCount)
	}
	if (pos != Position{Row: 8, Col: 8}) {
		t.Errorf("traversal ended at %v, want (8,8)", pos)
	}
}
