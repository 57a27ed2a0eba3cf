package bot

import (
	"github.com/iamasit07/connect4-ai/internal/domain"
)

// searchNode is a frontier entry shared by BFS and UCS.
type searchNode struct {
	board  domain.Board
	column int // root column this line started with
	cost   int // plies simulated so far
	seq    int // insertion order, breaks cost ties in UCS
}

// BFS expands positions level by level looking for four in a row for the
// searching side. Only that side's drops are simulated; opponent replies are
// never considered, so it finds "self-wins" rather than forced wins.
type BFS struct {
	nodeLimit int
}

func NewBFS(nodeLimit int) *BFS {
	if nodeLimit <= 0 {
		nodeLimit = DefaultSearchNodeLimit
	}
	return &BFS{nodeLimit: nodeLimit}
}

func (s *BFS) Name() string { return StrategyBFS }

func (s *BFS) ChooseMove(board domain.Board, side domain.PlayerID) (int, error) {
	fallback, err := firstLegal(board)
	if err != nil {
		return -1, err
	}

	visited := make(map[string]struct{})
	var queue []searchNode

	for _, col := range domain.LegalColumns(board) {
		next, err := domain.Drop(board, col, side)
		if err != nil {
			return -1, err
		}
		key := next.Key()
		if _, seen := visited[key]; seen {
			continue
		}
		visited[key] = struct{}{}
		queue = append(queue, searchNode{board: next, column: col, cost: 1})
	}

	for expanded := 0; len(queue) > 0 && expanded < s.nodeLimit; expanded++ {
		node := queue[0]
		queue = queue[1:]

		if domain.HasFourInARow(node.board, side) {
			return node.column, nil
		}

		for _, col := range domain.LegalColumns(node.board) {
			next, err := domain.Drop(node.board, col, side)
			if err != nil {
				return -1, err
			}
			key := next.Key()
			if _, seen := visited[key]; seen {
				continue
			}
			visited[key] = struct{}{}
			queue = append(queue, searchNode{board: next, column: node.column, cost: node.cost + 1})
		}
	}

	return fallback, nil
}
