package solver

import (
	"context"
	"errors"
	"time"

	"svw.info/sudokusolve/internal/domain"
	"svw.info/sudokusolve/internal/ports"
)

// ErrUnsolvable reports that no assignment of the empty cells satisfies the
// row, column, and box constraints.
var ErrUnsolvable = errors.New("unsolvable")

// BacktrackingSolver fills boards by depth-first search, always branching on
// the empty cell with the fewest legal digits (minimum remaining values).
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

// Solve returns a completed copy of b, leaving b untouched. On failure the
// working grid has also been fully unwound: every trial assignment is
// cleared on the way back up.
func (s *BacktrackingSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	grid := b.Values
	nodes := 0
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		p := selectCell(&grid)
		if p.kind == pickSolved {
			return true
		}
		if p.kind == pickDeadEnd {
			return false
		}
		r, c := p.cell.Row, p.cell.Col
		// Candidates exclude conflicts by construction, so no legality
		// re-check before assigning.
		for _, v := range p.candidates {
			nodes++
			grid[r][c] = v
			if dfs() {
				return true
			}
		}
		grid[r][c] = 0
		return false
	}
	if !dfs() {
		st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
		if err := ctx.Err(); err != nil {
			return nil, st, err
		}
		return nil, st, ErrUnsolvable
	}
	out := &domain.Board{Values: grid, Fixed: b.Fixed}
	return out, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
