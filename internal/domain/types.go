package domain

// Board holds current values and which cells are fixed givens.
// Values range 0-9; 0 means empty.
type Board struct {
	Values [9][9]uint8
	Fixed  [9][9]bool
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int
	Col int
}
