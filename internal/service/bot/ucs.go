package bot

import (
	"container/heap"

	"github.com/iamasit07/connect4-ai/internal/domain"
)

// frontier is a min-heap on (cost, seq).
type frontier []searchNode

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].cost != f[j].cost {
		return f[i].cost < f[j].cost
	}
	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(searchNode)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	node := old[n-1]
	*f = old[:n-1]
	return node
}

// UCS has the same shape as BFS but always expands the cheapest state first,
// cost being the number of plies simulated from the root.
type UCS struct {
	nodeLimit int
}

func NewUCS(nodeLimit int) *UCS {
	if nodeLimit <= 0 {
		nodeLimit = DefaultSearchNodeLimit
	}
	return &UCS{nodeLimit: nodeLimit}
}

func (s *UCS) Name() string { return StrategyUCS }

func (s *UCS) ChooseMove(board domain.Board, side domain.PlayerID) (int, error) {
	fallback, err := firstLegal(board)
	if err != nil {
		return -1, err
	}

	visited := make(map[string]struct{})
	pq := &frontier{}
	seq := 0
	push := func(node searchNode) {
		node.seq = seq
		seq++
		heap.Push(pq, node)
	}

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
		push(searchNode{board: next, column: col, cost: 1})
	}

	for expanded := 0; pq.Len() > 0 && expanded < s.nodeLimit; expanded++ {
		node := heap.Pop(pq).(searchNode)

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
			push(searchNode{board: next, column: node.column, cost: node.cost + 1})
		}
	}

	return fallback, nil
}
