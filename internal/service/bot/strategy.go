package bot

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/iamasit07/connect4-ai/internal/domain"
)

// Strategy picks a column for the side to move. Implementations never modify
// board and return domain.ErrNoLegalMove when every column is full.
type Strategy interface {
	Name() string
	ChooseMove(board domain.Board, side domain.PlayerID) (int, error)
}

const (
	StrategyBFS     = "bfs"
	StrategyUCS     = "ucs"
	StrategyGreedy  = "greedy"
	StrategyMinimax = "minimax"
	StrategyGenetic = "genetic"
)

const ErrUnknownStrategy domain.Error = "unknown strategy"

// Options tunes the strategies built by New. Zero values pick the defaults.
type Options struct {
	MinimaxDepth    int
	SearchNodeLimit int
	Genetic         GeneticOptions
	Seed            int64
}

const (
	DefaultMinimaxDepth    = 5
	MaxMinimaxDepth        = 10
	DefaultSearchNodeLimit = 200000
)

// New builds the named strategy.
func New(name string, opts Options) (Strategy, error) {
	switch name {
	case StrategyBFS:
		return NewBFS(opts.SearchNodeLimit), nil
	case StrategyUCS:
		return NewUCS(opts.SearchNodeLimit), nil
	case StrategyGreedy:
		return NewGreedy(), nil
	case StrategyMinimax:
		return NewMinimax(opts.MinimaxDepth), nil
	case StrategyGenetic:
		return NewGenetic(opts.Genetic, rand.New(rand.NewSource(opts.Seed))), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Names lists the strategies New understands, sorted.
func Names() []string {
	names := []string{StrategyBFS, StrategyUCS, StrategyGreedy, StrategyMinimax, StrategyGenetic}
	sort.Strings(names)
	return names
}

// firstLegal is the fallback every strategy shares.
func firstLegal(board domain.Board) (int, error) {
	cols := domain.LegalColumns(board)
	if len(cols) == 0 {
		return -1, domain.ErrNoLegalMove
	}
	return cols[0], nil
}
