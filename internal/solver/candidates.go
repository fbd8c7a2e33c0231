package solver

// candidatesAt returns, in ascending order, every digit 1-9 not already
// present in the row, column, or 3x3 box of (r, c). Index 0 of the seen
// array absorbs empty cells so they never rule anything out.
func candidatesAt(b *[9][9]uint8, r, c int) []uint8 {
	var seen [10]bool
	for i := 0; i < 9; i++ {
		seen[b[r][i]] = true
		seen[b[i][c]] = true
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			seen[b[br+dr][bc+dc]] = true
		}
	}
	out := make([]uint8, 0, 9)
	for v := uint8(1); v <= 9; v++ {
		if !seen[v] {
			out = append(out, v)
		}
	}
	return out
}

// isValid reports whether v can be placed at (r, c) without a conflict.
// Cheaper than candidatesAt when only one digit is in question.
func isValid(b *[9][9]uint8, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if b[r][i] == v || b[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if b[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}
