package solver

import "svw.info/sudokusolve/internal/domain"

type pickKind int

const (
	pickCell    pickKind = iota // best empty cell found, candidates attached
	pickSolved                  // no empty cell remains
	pickDeadEnd                 // some empty cell has no legal digit
)

// pick is the outcome of one most-constrained-cell scan.
type pick struct {
	kind       pickKind
	cell       domain.CellCoord
	candidates []uint8
}

// selectCell scans all cells in row-major order and returns the empty cell
// with the fewest candidates. A cell with exactly one candidate ends the
// scan early since nothing can beat it; a cell with none means the grid
// cannot be completed from here. Ties keep the first cell found.
func selectCell(b *[9][9]uint8) pick {
	best := pick{kind: pickSolved}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b[r][c] != 0 {
				continue
			}
			cands := candidatesAt(b, r, c)
			switch {
			case len(cands) == 0:
				return pick{kind: pickDeadEnd, cell: domain.CellCoord{Row: r, Col: c}}
			case len(cands) == 1:
				return pick{kind: pickCell, cell: domain.CellCoord{Row: r, Col: c}, candidates: cands}
			case best.kind == pickSolved || len(cands) < len(best.candidates):
				best = pick{kind: pickCell, cell: domain.CellCoord{Row: r, Col: c}, candidates: cands}
			}
		}
	}
	return best
}
