package bot

import (
	"sync"

	"github.com/iamasit07/connect4-ai/internal/domain"
)

// Engine is the single entry point the game layer uses for the computer's
// turn. It holds exactly one active strategy.
type Engine struct {
	mu       sync.RWMutex
	strategy Strategy
}

func NewEngine(strategy Strategy) *Engine {
	return &Engine{strategy: strategy}
}

// ChooseMove delegates to the active strategy.
func (e *Engine) ChooseMove(board domain.Board, side domain.PlayerID) (int, error) {
	return e.Strategy().ChooseMove(board, side)
}

// SetStrategy swaps the active strategy. Calls already in flight keep the
// strategy they started with.
func (e *Engine) SetStrategy(strategy Strategy) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.strategy = strategy
}

func (e *Engine) Strategy() Strategy {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.strategy
}
