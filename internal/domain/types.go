package domain

// Puzzle is a stored Sudoku with metadata. Givens is the 81-character
// row-major form of the original clues ('.' for empty); solved boards are
// never persisted.
type Puzzle struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name,omitempty"`
	Givens    string `json:"givens"`
	CreatedAt int64  `json:"createdAt,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	CreatedAt int64  `json:"createdAt"`
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}
