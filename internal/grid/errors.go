package grid

import "errors"

var (
	// ErrInvalidInput rejects malformed construction input: wrong cell count,
	// out-of-range clue digits, or clues that already conflict in a unit.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConstraintViolation rejects an assignment that duplicates a value in
	// the cell's row, column or box, or overwrites an occupied cell.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrFixedCell rejects mutation of an original clue.
	ErrFixedCell = errors.New("fixed cell")
)
