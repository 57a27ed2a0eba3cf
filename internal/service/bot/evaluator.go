package bot

import (
	"github.com/iamasit07/connect4-ai/internal/domain"
)

// Evaluate scores board for side: complete fours owned by side minus those
// owned by the opponent. Evaluate(b, Red) == -Evaluate(b, Yellow).
func Evaluate(board domain.Board, side domain.PlayerID) int {
	return CountFours(board, side) - CountFours(board, side.Opponent())
}

// CountFours counts the windows of four whose cells all belong to side.
func CountFours(board domain.Board, side domain.PlayerID) int {
	if !side.IsSide() {
		return 0
	}

	count := 0
	for _, w := range domain.Windows {
		if board[w[0][0]][w[0][1]] == side &&
			board[w[1][0]][w[1][1]] == side &&
			board[w[2][0]][w[2][1]] == side &&
			board[w[3][0]][w[3][1]] == side {
			count++
		}
	}
	return count
}
