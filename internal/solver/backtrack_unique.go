package solver

import (
	"context"
	"time"

	"svw.info/sudokusolve/internal/domain"
	"svw.info/sudokusolve/internal/ports"
)

// Unique counts solutions up to 2 and reports whether exactly one exists.
func (s *BacktrackingSolver) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	start := time.Now()
	grid := b.Values
	nodes := 0
	count := 0

	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil || count >= 2 {
			return true // stop early
		}
		p := selectCell(&grid)
		if p.kind == pickDeadEnd {
			return false
		}
		if p.kind == pickSolved {
			count++
			return count >= 2
		}
		r, c := p.cell.Row, p.cell.Col
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
	_ = dfs()
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return false, st, err
	}
	return count == 1, st, nil
}
