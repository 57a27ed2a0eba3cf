package domain

import (
	"fmt"
	"strings"
)

// Board is a value grid; row 0 is the top. Copying a Board copies every cell,
// so Drop can hand back a new position without touching its input.
type Board [Rows][Columns]PlayerID

// NewBoard returns the empty position.
func NewBoard() Board {
	return Board{}
}

func IsLegal(board Board, column int) bool {
	if column < 0 || column >= Columns {
		return false
	}

	// here board[0] represents the top row (0 -> top and 5 -> bottom)
	return board[0][column] == Empty
}

// LandingRow returns the row a token dropped in column would occupy, or -1
// when the column is full or out of range.
func LandingRow(board Board, column int) int {
	if column < 0 || column >= Columns {
		return -1
	}
	for row := Rows - 1; row >= 0; row-- {
		if board[row][column] == Empty {
			return row
		}
	}
	return -1
}

// Drop returns a copy of board with side's token in the lowest empty row of
// column.
func Drop(board Board, column int, side PlayerID) (Board, error) {
	if !side.IsSide() {
		return board, fmt.Errorf("%w: %v cannot move", ErrIllegalMove, side)
	}
	if !IsLegal(board, column) {
		return board, fmt.Errorf("%w: column %d", ErrIllegalMove, column)
	}

	next := board
	next[LandingRow(board, column)][column] = side
	return next, nil
}

func IsFull(board Board) bool {
	for c := 0; c < Columns; c++ {
		if board[0][c] == Empty {
			return false
		}
	}
	return true
}

// LegalColumns lists the playable columns in ascending order.
func LegalColumns(board Board) []int {
	cols := make([]int, 0, Columns)
	for col := 0; col < Columns; col++ {
		if IsLegal(board, col) {
			cols = append(cols, col)
		}
	}
	return cols
}

// Count returns how many tokens of p are on the board.
func (b Board) Count(p PlayerID) int {
	n := 0
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			if b[row][col] == p {
				n++
			}
		}
	}
	return n
}

// Key is the canonical flattened encoding: 42 cells, top row first.
func (b Board) Key() string {
	var sb strings.Builder
	sb.Grow(Rows * Columns)
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			sb.WriteByte(cellByte(b[row][col]))
		}
	}
	return sb.String()
}

// String renders the board as six lines of seven cells.
func (b Board) String() string {
	key := b.Key()
	lines := make([]string, 0, Rows)
	for row := 0; row < Rows; row++ {
		lines = append(lines, key[row*Columns:(row+1)*Columns])
	}
	return strings.Join(lines, "\n")
}

// Cells converts the board to the [][]int shape the front ends serialise.
func (b Board) Cells() [][]int {
	cells := make([][]int, Rows)
	for row := range cells {
		cells[row] = make([]int, Columns)
		for col := 0; col < Columns; col++ {
			cells[row][col] = int(b[row][col])
		}
	}
	return cells
}

// ParseBoard reads the Key/String encoding. Whitespace and '/' separators are
// ignored, '.' or '-' is empty, 'R' and 'Y' (any case) are tokens. The result
// must respect gravity.
func ParseBoard(text string) (Board, error) {
	var board Board
	i := 0
	for _, ch := range text {
		var cell PlayerID
		switch ch {
		case ' ', '\t', '\n', '\r', '/':
			continue
		case '.', '-':
			cell = Empty
		case 'R', 'r':
			cell = Red
		case 'Y', 'y':
			cell = Yellow
		default:
			return Board{}, fmt.Errorf("%w: unexpected %q", ErrInvalidBoard, ch)
		}
		if i >= Rows*Columns {
			return Board{}, fmt.Errorf("%w: more than %d cells", ErrInvalidBoard, Rows*Columns)
		}
		board[i/Columns][i%Columns] = cell
		i++
	}
	if i != Rows*Columns {
		return Board{}, fmt.Errorf("%w: got %d cells, want %d", ErrInvalidBoard, i, Rows*Columns)
	}

	for col := 0; col < Columns; col++ {
		for row := 0; row < Rows-1; row++ {
			if board[row][col] != Empty && board[row+1][col] == Empty {
				return Board{}, fmt.Errorf("%w: floating token at row %d column %d", ErrInvalidBoard, row, col)
			}
		}
	}
	return board, nil
}

func cellByte(p PlayerID) byte {
	switch p {
	case Red:
		return 'R'
	case Yellow:
		return 'Y'
	default:
		return '.'
	}
}
