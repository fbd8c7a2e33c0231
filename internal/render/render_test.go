package render

import (
	"testing"

	"svw.info/sudokusolve/internal/domain"
)

func TestTextLayout(t *testing.T) {
	b := &domain.Board{Values: [9][9]uint8{
		{5, 3, 0, 0, 7, 0, 0, 0, 0},
		{6, 0, 0, 1, 9, 5, 0, 0, 0},
		{0, 9, 8, 0, 0, 0, 0, 6, 0},
		{8, 0, 0, 0, 6, 0, 0, 0, 3},
		{4, 0, 0, 8, 0, 3, 0, 0, 1},
		{7, 0, 0, 0, 2, 0, 0, 0, 6},
		{0, 6, 0, 0, 0, 0, 2, 8, 0},
		{0, 0, 0, 4, 1, 9, 0, 0, 5},
		{0, 0, 0, 0, 8, 0, 0, 7, 9},
	}}
	want := "" +
		"5 3 0 | 0 7 0 | 0 0 0 \n" +
		"6 0 0 | 1 9 5 | 0 0 0 \n" +
		"0 9 8 | 0 0 0 | 0 6 0 \n" +
		"------+-------+------\n" +
		"8 0 0 | 0 6 0 | 0 0 3 \n" +
		"4 0 0 | 8 0 3 | 0 0 1 \n" +
		"7 0 0 | 0 2 0 | 0 0 6 \n" +
		"------+-------+------\n" +
		"0 6 0 | 0 0 0 | 2 8 0 \n" +
		"0 0 0 | 4 1 9 | 0 0 5 \n" +
		"0 0 0 | 0 8 0 | 0 7 9 \n"
	if got := Text(b); got != want {
		t.Fatalf("layout mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}
