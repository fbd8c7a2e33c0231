package render

import (
	"fmt"
	"strings"

	"svw.info/sudokusolve/internal/domain"
)

// Text lays the board out for a terminal: digits space-separated, a "| "
// marker before every 4th and 7th column, a divider line between row
// groups.
func Text(b *domain.Board) string {
	var sb strings.Builder
	for r := 0; r < 9; r++ {
		if r%3 == 0 && r != 0 {
			sb.WriteString("------+-------+------\n")
		}
		for c := 0; c < 9; c++ {
			if c%3 == 0 && c != 0 {
				sb.WriteString("| ")
			}
			fmt.Fprintf(&sb, "%d ", b.Values[r][c])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
