package bot

import (
	"math"

	"github.com/iamasit07/connect4-ai/internal/domain"
)

// WinUtility is added to the static score of a won position so a reachable
// win outranks any heuristic value.
const WinUtility = 1000000

// Minimax is depth-limited minimax with alpha-beta pruning. Utilities are
// always from the perspective of the side that was to move at the root.
type Minimax struct {
	depth int
}

func NewMinimax(depth int) *Minimax {
	if depth <= 0 {
		depth = DefaultMinimaxDepth
	}
	if depth > MaxMinimaxDepth {
		depth = MaxMinimaxDepth
	}
	return &Minimax{depth: depth}
}

func (m *Minimax) Name() string { return StrategyMinimax }

// Depth is the ply budget, root drop included.
func (m *Minimax) Depth() int { return m.depth }

func (m *Minimax) ChooseMove(board domain.Board, side domain.PlayerID) (int, error) {
	validColumns := domain.LegalColumns(board)
	if len(validColumns) == 0 {
		return -1, domain.ErrNoLegalMove
	}

	bestCol := validColumns[0]
	bestScore := math.MinInt
	alpha := math.MinInt
	beta := math.MaxInt

	for _, col := range validColumns {
		next, err := domain.Drop(board, col, side)
		if err != nil {
			return -1, err
		}

		score := m.minimax(next, m.depth-1, alpha, beta, false, side)
		if score > bestScore {
			bestScore = score
			bestCol = col
		}
		alpha = max(alpha, bestScore)
	}

	return bestCol, nil
}

// minimax scores board with depth plies left; maximizing is true when root
// is the side to move on board.
func (m *Minimax) minimax(board domain.Board, depth, alpha, beta int, maximizing bool, root domain.PlayerID) int {
	if u, terminal := terminalUtility(board, depth, root); terminal {
		return u
	}
	if depth == 0 {
		return Evaluate(board, root)
	}

	mover := root
	if !maximizing {
		mover = root.Opponent()
	}

	if maximizing {
		maxEval := math.MinInt
		for _, col := range domain.LegalColumns(board) {
			next, _ := domain.Drop(board, col, mover)
			eval := m.minimax(next, depth-1, alpha, beta, false, root)
			maxEval = max(maxEval, eval)
			alpha = max(alpha, eval)
			if beta <= alpha {
				break // beta cutoff
			}
		}
		return maxEval
	}

	minEval := math.MaxInt
	for _, col := range domain.LegalColumns(board) {
		next, _ := domain.Drop(board, col, mover)
		eval := m.minimax(next, depth-1, alpha, beta, true, root)
		minEval = min(minEval, eval)
		beta = min(beta, eval)
		if beta <= alpha {
			break // alpha cutoff
		}
	}
	return minEval
}

// terminalUtility scores won and drawn positions. Wins carry the remaining
// depth so faster wins and slower losses are preferred.
func terminalUtility(board domain.Board, depth int, root domain.PlayerID) (int, bool) {
	switch {
	case domain.HasFourInARow(board, root):
		return Evaluate(board, root) + WinUtility + depth, true
	case domain.HasFourInARow(board, root.Opponent()):
		return Evaluate(board, root) - WinUtility - depth, true
	case domain.IsFull(board):
		return Evaluate(board, root), true
	}
	return 0, false
}
