package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RejectsWrongLength(t *testing.T) {
	_, err := New(make([]uint8, 80))
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = New(make([]uint8, 82))
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestNew_RejectsOutOfRangeClue(t *testing.T) {
	values := make([]uint8, Cells)
	values[40] = 10
	_, err := New(values)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestNew_RejectsConflictingClues(t *testing.T) {
	// Two 5s in row 0, rest empty.
	values := make([]uint8, Cells)
	values[0] = 5
	values[8] = 5
	_, err := New(values)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestNew_MarksCluesFixed(t *testing.T) {
	values := make([]uint8, Cells)
	values[0] = 5
	values[80] = 3
	g, err := New(values)
	require.NoError(t, err)

	assert.True(t, g.Fixed(0, 0))
	assert.True(t, g.Fixed(8, 8))
	assert.False(t, g.Fixed(0, 1))
	assert.Equal(t, uint8(5), g.Value(0, 0))
	assert.Equal(t, Cells-2, g.EmptyCount())
}

func TestSet_RowColBoxConflicts(t *testing.T) {
	g, err := New(make([]uint8, Cells))
	require.NoError(t, err)
	require.NoError(t, g.Set(0, 0, 5))

	assert.ErrorIs(t, g.Set(0, 8, 5), ErrConstraintViolation, "row conflict")
	assert.ErrorIs(t, g.Set(8, 0, 5), ErrConstraintViolation, "col conflict")
	assert.ErrorIs(t, g.Set(1, 1, 5), ErrConstraintViolation, "box conflict")
	assert.NoError(t, g.Set(1, 3, 5), "same band, different box")
}

func TestSet_OccupiedAndFixedCells(t *testing.T) {
	values := make([]uint8, Cells)
	values[0] = 5
	g, err := New(values)
	require.NoError(t, err)

	assert.NoError(t, g.Set(0, 0, 5), "re-assigning the held value is a no-op")
	assert.ErrorIs(t, g.Set(0, 0, 6), ErrConstraintViolation, "fixed cell, different value")

	require.NoError(t, g.Set(4, 4, 1))
	assert.ErrorIs(t, g.Set(4, 4, 2), ErrConstraintViolation, "occupied non-fixed cell")
}

func TestSet_RejectsBadValueAndCoord(t *testing.T) {
	g, err := New(make([]uint8, Cells))
	require.NoError(t, err)

	assert.ErrorIs(t, g.Set(0, 0, 0), ErrInvalidInput)
	assert.ErrorIs(t, g.Set(0, 0, 10), ErrInvalidInput)
	assert.ErrorIs(t, g.Set(9, 0, 1), ErrInvalidInput)
	assert.ErrorIs(t, g.Set(0, -1, 1), ErrInvalidInput)
}

func TestUnset(t *testing.T) {
	values := make([]uint8, Cells)
	values[0] = 5
	g, err := New(values)
	require.NoError(t, err)

	assert.ErrorIs(t, g.Unset(0, 0), ErrFixedCell)
	assert.NoError(t, g.Unset(1, 1), "clearing an empty cell is a no-op")

	require.NoError(t, g.Set(1, 1, 7))
	require.NoError(t, g.Unset(1, 1))
	assert.Equal(t, uint8(0), g.Value(1, 1))
	// 7 must be placeable again after the unset.
	assert.NoError(t, g.Set(1, 1, 7))
}

func TestCandidates(t *testing.T) {
	g, err := New(make([]uint8, Cells))
	require.NoError(t, err)

	assert.Equal(t, uint16(0x3fe), g.Candidates(4, 4), "unconstrained cell sees all nine values")
	assert.Equal(t, 9, g.CandidateCount(4, 4))

	require.NoError(t, g.Set(0, 0, 1)) // row
	require.NoError(t, g.Set(8, 4, 2)) // col
	require.NoError(t, g.Set(1, 5, 3)) // box of (0,4)

	vals := g.CandidateValues(0, 4)
	assert.Equal(t, []uint8{4, 5, 6, 7, 8, 9}, vals)
	assert.Zero(t, g.Candidates(0, 0), "occupied cells have no candidates")
}

func TestIsCompleteIsValid(t *testing.T) {
	g := MustParse(demoSolution)
	assert.True(t, g.IsComplete())
	assert.True(t, g.IsValid())

	p := MustParse(demoPuzzle)
	assert.False(t, p.IsComplete())
	assert.True(t, p.IsValid())
}

func TestClone_Independent(t *testing.T) {
	g := MustParse(demoPuzzle)
	c := g.Clone()
	require.True(t, g.Equal(c))

	require.NoError(t, c.Set(0, 0, 1))
	assert.Equal(t, uint8(0), g.Value(0, 0), "mutating the clone must not touch the original")
	assert.False(t, g.Equal(c))
}

func TestParseFlatRoundTrip(t *testing.T) {
	g := MustParse(demoPuzzle)
	flat := g.Flat()
	require.Len(t, flat, Cells)

	g2, err := Parse(flat)
	require.NoError(t, err)
	assert.Equal(t, flat, g2.Flat())
}

func TestParse_IgnoresNewlines(t *testing.T) {
	src := "53..7....\n6..195...\n.98....6.\n8...6...3\n4..8.3..1\n7...2...6\n.6....28.\n...419..5\n....8..79"
	g, err := Parse(src)
	require.NoError(t, err)
	assert.Equal(t, uint8(5), g.Value(0, 0))
	assert.Equal(t, uint8(9), g.Value(8, 8))
}

func TestParse_RejectsShortInput(t *testing.T) {
	_, err := Parse("123")
	require.ErrorIs(t, err, ErrInvalidInput)
}
