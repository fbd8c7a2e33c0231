package validator

import (
	"context"

	"svw.info/sudokusolve/internal/domain"
)

// FastValidator flags duplicate digits within any row, column, or 3x3 box.
// Empty cells never conflict.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// Validate reports whether b is free of constraint violations. Each
// conflict coordinate is the later occurrence of a repeated digit within
// its unit.
func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	conf := make([]domain.CellCoord, 0, 8)
	scan := func(cells [9]domain.CellCoord) {
		m := 0
		for _, cc := range cells {
			val := b.Values[cc.Row][cc.Col]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, cc)
			}
			m |= bit
		}
	}
	for i := 0; i < 9; i++ {
		var row, col, box [9]domain.CellCoord
		for j := 0; j < 9; j++ {
			row[j] = domain.CellCoord{Row: i, Col: j}
			col[j] = domain.CellCoord{Row: j, Col: i}
			box[j] = domain.CellCoord{Row: (i/3)*3 + j/3, Col: (i%3)*3 + j%3}
		}
		scan(row)
		scan(col)
		scan(box)
	}
	return len(conf) == 0, conf, nil
}
