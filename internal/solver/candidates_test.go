package solver

import (
	"testing"

	"svw.info/sudokusolve/internal/domain"
)

func eq(a, b []uint8) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestCandidatesAt(t *testing.T) {
	grid := sample
	cases := []struct {
		name string
		r, c int
		want []uint8
	}{
		// row {3,5,7}, col {8}, box {3,5,6,8,9}
		{"corner box cell", 0, 2, []uint8{1, 2, 4}},
		// row {3,5,7}, col {1,4,8}, box {1,5,7,9}
		{"top band cell", 0, 3, []uint8{2, 6}},
		// a filled cell still evaluates; its own digit is simply ruled out
		{"filled cell", 0, 0, []uint8{1, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := candidatesAt(&grid, tc.r, tc.c)
			if !eq(got, tc.want) {
				t.Fatalf("candidatesAt(%d,%d) = %v, want %v", tc.r, tc.c, got, tc.want)
			}
		})
	}
}

func TestCandidatesAtIdempotent(t *testing.T) {
	grid := sample
	a := candidatesAt(&grid, 4, 4)
	b := candidatesAt(&grid, 4, 4)
	if !eq(a, b) {
		t.Fatalf("repeated evaluation differed: %v vs %v", a, b)
	}
	if grid != sample {
		t.Fatalf("candidatesAt mutated the grid")
	}
}

func TestSelectCellSolved(t *testing.T) {
	grid := sampleSolved
	if p := selectCell(&grid); p.kind != pickSolved {
		t.Fatalf("full grid: got kind %v", p.kind)
	}
}

func TestSelectCellDeadEnd(t *testing.T) {
	grid := deadEnd
	p := selectCell(&grid)
	if p.kind != pickDeadEnd {
		t.Fatalf("got kind %v, want dead end", p.kind)
	}
	if p.cell != (domain.CellCoord{Row: 0, Col: 0}) {
		t.Fatalf("dead end reported at %v", p.cell)
	}
}

func TestSelectCellSingleCandidateWins(t *testing.T) {
	// (0,0) and (0,1) have two candidates each; (4,0) has exactly one and
	// must be picked despite coming later in the scan.
	var grid [9][9]uint8
	copy(grid[0][2:], []uint8{3, 4, 5, 6, 7, 8, 9})
	copy(grid[4][1:], []uint8{4, 5, 6, 7, 8, 9, 2, 3})
	p := selectCell(&grid)
	if p.kind != pickCell || p.cell != (domain.CellCoord{Row: 4, Col: 0}) {
		t.Fatalf("got %+v, want cell (4,0)", p)
	}
	if !eq(p.candidates, []uint8{1}) {
		t.Fatalf("candidates = %v, want [1]", p.candidates)
	}
}

func TestSelectCellTieBreak(t *testing.T) {
	// Rows 0 and 4 each have two 2-candidate cells; the first in row-major
	// order must win.
	var grid [9][9]uint8
	copy(grid[0][2:], []uint8{3, 4, 5, 6, 7, 8, 9})
	copy(grid[4][2:], []uint8{5, 6, 7, 8, 9, 1, 2})
	p := selectCell(&grid)
	if p.kind != pickCell || p.cell != (domain.CellCoord{Row: 0, Col: 0}) {
		t.Fatalf("got %+v, want first tied cell (0,0)", p)
	}
	if !eq(p.candidates, []uint8{1, 2}) {
		t.Fatalf("candidates = %v, want [1 2]", p.candidates)
	}
}
