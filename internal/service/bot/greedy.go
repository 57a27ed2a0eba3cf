package bot

import (
	"math"

	"github.com/iamasit07/connect4-ai/internal/domain"
)

// Greedy looks one ply ahead and keeps the best static score.
type Greedy struct{}

func NewGreedy() *Greedy {
	return &Greedy{}
}

func (g *Greedy) Name() string { return StrategyGreedy }

func (g *Greedy) ChooseMove(board domain.Board, side domain.PlayerID) (int, error) {
	validColumns := domain.LegalColumns(board)
	if len(validColumns) == 0 {
		return -1, domain.ErrNoLegalMove
	}

	bestCol := validColumns[0]
	bestScore := math.MinInt
	for _, col := range validColumns {
		next, err := domain.Drop(board, col, side)
		if err != nil {
			return -1, err
		}
		// strict > keeps the lowest column on ties
		if score := Evaluate(next, side); score > bestScore {
			bestScore = score
			bestCol = col
		}
	}
	return bestCol, nil
}
