package domain

// HasFourInARow reports whether side owns any run of four cells.
func HasFourInARow(board Board, side PlayerID) bool {
	if !side.IsSide() {
		return false
	}

	// horizontal
	for row := 0; row < Rows; row++ {
		for col := 0; col <= Columns-ToWin; col++ {
			if runOf(board, side, row, col, 0, 1) {
				return true
			}
		}
	}

	// vertical
	for row := 0; row <= Rows-ToWin; row++ {
		for col := 0; col < Columns; col++ {
			if runOf(board, side, row, col, 1, 0) {
				return true
			}
		}
	}

	// diagonal \ going down-right
	for row := 0; row <= Rows-ToWin; row++ {
		for col := 0; col <= Columns-ToWin; col++ {
			if runOf(board, side, row, col, 1, 1) {
				return true
			}
		}
	}

	// diagonal / going down-left
	for row := 0; row <= Rows-ToWin; row++ {
		for col := ToWin - 1; col < Columns; col++ {
			if runOf(board, side, row, col, 1, -1) {
				return true
			}
		}
	}

	return false
}

// Winner returns the side with four in a row, or Empty.
func Winner(board Board) PlayerID {
	switch {
	case HasFourInARow(board, Red):
		return Red
	case HasFourInARow(board, Yellow):
		return Yellow
	default:
		return Empty
	}
}

// IsTerminal is true once either side has won or no column is left.
func IsTerminal(board Board) bool {
	return Winner(board) != Empty || IsFull(board)
}

func runOf(board Board, side PlayerID, row, col, dRow, dCol int) bool {
	for k := 0; k < ToWin; k++ {
		if board[row+k*dRow][col+k*dCol] != side {
			return false
		}
	}
	return true
}

// Window is one line of ToWin cells as (row, column) pairs.
type Window [ToWin][2]int

// Windows lists every horizontal, vertical and diagonal line of four on the
// grid (69 in total), in the same order HasFourInARow scans them.
var Windows = buildWindows()

func buildWindows() []Window {
	var ws []Window
	add := func(row, col, dRow, dCol int) {
		var w Window
		for k := 0; k < ToWin; k++ {
			w[k] = [2]int{row + k*dRow, col + k*dCol}
		}
		ws = append(ws, w)
	}
	for row := 0; row < Rows; row++ {
		for col := 0; col <= Columns-ToWin; col++ {
			add(row, col, 0, 1)
		}
	}
	for row := 0; row <= Rows-ToWin; row++ {
		for col := 0; col < Columns; col++ {
			add(row, col, 1, 0)
		}
	}
	for row := 0; row <= Rows-ToWin; row++ {
		for col := 0; col <= Columns-ToWin; col++ {
			add(row, col, 1, 1)
		}
	}
	for row := 0; row <= Rows-ToWin; row++ {
		for col := ToWin - 1; col < Columns; col++ {
			add(row, col, 1, -1)
		}
	}
	return ws
}
