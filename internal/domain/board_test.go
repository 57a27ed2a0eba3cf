package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, text string) Board {
	t.Helper()
	b, err := ParseBoard(text)
	require.NoError(t, err)
	return b
}

func TestIsLegal_EmptyBoard(t *testing.T) {
	board := NewBoard()
	for col := 0; col < Columns; col++ {
		assert.True(t, IsLegal(board, col), "column %d", col)
	}
	assert.False(t, IsLegal(board, -1))
	assert.False(t, IsLegal(board, Columns))
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, LegalColumns(board))
}

func TestDrop_FullColumn(t *testing.T) {
	board := NewBoard()
	var err error
	for i := 0; i < Rows; i++ {
		board, err = Drop(board, 3, Red)
		require.NoError(t, err)
	}

	assert.False(t, IsLegal(board, 3))
	_, err = Drop(board, 3, Red)
	assert.ErrorIs(t, err, ErrIllegalMove)
	assert.Equal(t, []int{0, 1, 2, 4, 5, 6}, LegalColumns(board))
}

func TestDrop_RejectsBadInput(t *testing.T) {
	board := NewBoard()

	_, err := Drop(board, 7, Red)
	assert.ErrorIs(t, err, ErrIllegalMove)

	_, err = Drop(board, -1, Yellow)
	assert.ErrorIs(t, err, ErrIllegalMove)

	_, err = Drop(board, 0, Empty)
	assert.ErrorIs(t, err, ErrIllegalMove)
}

func TestDrop_DoesNotMutateInput(t *testing.T) {
	board := mustParse(t, `
		.......
		.......
		.......
		.......
		...Y...
		..RRY..`)
	before := board

	next, err := Drop(board, 3, Red)
	require.NoError(t, err)

	assert.Equal(t, before, board)
	assert.NotEqual(t, board, next)
	assert.Equal(t, Red, next[3][3])
	assert.Equal(t, Empty, board[3][3])
}

func TestDrop_LegalityAfterDrop(t *testing.T) {
	board := NewBoard()
	side := Red
	for i := 0; i < Rows; i++ {
		empties := LandingRow(board, 2) + 1
		next, err := Drop(board, 2, side)
		require.NoError(t, err)

		assert.Equal(t, empties-1, LandingRow(next, 2)+1)
		assert.Equal(t, empties-1 > 0, IsLegal(next, 2))

		board = next
		side = side.Opponent()
	}
}

func TestIsFull(t *testing.T) {
	full := mustParse(t, `
		RRYYRRY
		YYRRYYR
		RRYYRRY
		YYRRYYR
		RRYYRRY
		YYRRYYR`)

	assert.True(t, IsFull(full))
	assert.Empty(t, LegalColumns(full))
	assert.Equal(t, Empty, Winner(full))
	assert.True(t, IsTerminal(full))
	assert.False(t, IsFull(NewBoard()))
}

func TestParseBoard_RoundTrip(t *testing.T) {
	board := mustParse(t, "......./......./......./......./...Y.../..RRY..")
	again, err := ParseBoard(board.Key())
	require.NoError(t, err)
	assert.Equal(t, board, again)

	again, err = ParseBoard(board.String())
	require.NoError(t, err)
	assert.Equal(t, board, again)
}

func TestParseBoard_Errors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"too short", "RY"},
		{"bad rune", "X" + emptyRows(6)[1:]},
		{"floating token", "R......" + emptyRows(5)},
		{"too long", emptyRows(6) + "."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBoard(tt.text)
			assert.ErrorIs(t, err, ErrInvalidBoard)
		})
	}
}

func TestParseSide(t *testing.T) {
	side, err := ParseSide("yellow")
	require.NoError(t, err)
	assert.Equal(t, Yellow, side)

	side, err = ParseSide("R")
	require.NoError(t, err)
	assert.Equal(t, Red, side)

	_, err = ParseSide("green")
	assert.ErrorIs(t, err, ErrInvalidSide)
}

func emptyRows(n int) string {
	s := ""
	for i := 0; i < n; i++ {
		s += "......."
	}
	return s
}
