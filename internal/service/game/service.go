package game

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/iamasit07/connect4-ai/internal/domain"
	"github.com/iamasit07/connect4-ai/internal/service/bot"
	"github.com/iamasit07/connect4-ai/pkg/logger"
	"github.com/iamasit07/connect4-ai/pkg/uid"
)

const (
	ErrNoActiveGame domain.Error = "no active game"
	ErrGameFinished domain.Error = "game already finished"
)

// Move is one placed token.
type Move struct {
	Column int    `json:"column"`
	Row    int    `json:"row"`
	Player string `json:"player"`
}

// Snapshot is the read-only view of the active game handed to front ends.
type Snapshot struct {
	GameID       string            `json:"gameId"`
	Board        [][]int           `json:"board"`
	BoardKey     string            `json:"boardKey"`
	CurrentTurn  string            `json:"currentTurn"`
	HumanSide    string            `json:"humanSide"`
	ComputerSide string            `json:"computerSide"`
	Status       domain.GameStatus `json:"status"`
	Winner       string            `json:"winner,omitempty"`
	MoveCount    int               `json:"moveCount"`
	Strategy     string            `json:"strategy"`
	LegalColumns []int             `json:"legalColumns"`
	HumanMove    *Move             `json:"humanMove,omitempty"`
	ComputerMove *Move             `json:"computerMove,omitempty"`
}

// Session is the single game in progress.
type Session struct {
	GameID       string
	Game         *domain.Game
	HumanSide    domain.PlayerID
	ComputerSide domain.PlayerID
	CreatedAt    time.Time
	LastActivity time.Time
	LastHuman    *Move
	LastComputer *Move
}

// Service runs one human-versus-computer game at a time. It owns turn
// alternation and win/draw detection; the Engine only picks columns.
type Service struct {
	mu      sync.Mutex
	engine  *bot.Engine
	opts    bot.Options
	session *Session
	now     func() time.Time
}

// NewService wraps engine. opts are reused whenever SetStrategy builds a new
// strategy by name.
func NewService(engine *bot.Engine, opts bot.Options) *Service {
	return &Service{
		engine: engine,
		opts:   opts,
		now:    time.Now,
	}
}

// NewGame replaces any game in progress. When the computer holds Red it makes
// the opening move before NewGame returns.
func (s *Service) NewGame(humanSide domain.PlayerID) (Snapshot, error) {
	if !humanSide.IsSide() {
		return Snapshot{}, domain.ErrInvalidSide
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session != nil && !s.session.Game.IsFinished() {
		logger.Log.Info("[GAME] Abandoning unfinished game", zap.String("gameId", s.session.GameID))
	}

	now := s.now()
	sess := &Session{
		GameID:       uid.GenerateGameID(),
		Game:         domain.NewGame(),
		HumanSide:    humanSide,
		ComputerSide: humanSide.Opponent(),
		CreatedAt:    now,
		LastActivity: now,
	}
	s.session = sess

	logger.Log.Info("[GAME] New game",
		zap.String("gameId", sess.GameID),
		zap.Stringer("human", sess.HumanSide),
		zap.String("strategy", s.engine.Strategy().Name()),
	)

	if sess.Game.CurrentPlayer == sess.ComputerSide {
		if err := s.playComputer(sess); err != nil {
			return Snapshot{}, err
		}
	}
	return s.snapshot(sess), nil
}

// PlayHuman applies the human's column and, unless that ended the game, the
// computer's reply.
func (s *Service) PlayHuman(column int) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session
	if sess == nil {
		return Snapshot{}, ErrNoActiveGame
	}
	if sess.Game.IsFinished() {
		return Snapshot{}, ErrGameFinished
	}
	if sess.Game.CurrentPlayer != sess.HumanSide {
		return Snapshot{}, domain.ErrNotYourTurn
	}
	if !domain.IsLegal(sess.Game.Board, column) {
		return Snapshot{}, fmt.Errorf("%w: column %d", domain.ErrIllegalMove, column)
	}

	row, err := sess.Game.MakeMove(sess.HumanSide, column)
	if err != nil {
		return Snapshot{}, err
	}
	sess.LastActivity = s.now()
	sess.LastHuman = &Move{Column: column, Row: row, Player: sess.HumanSide.String()}
	sess.LastComputer = nil

	if sess.Game.IsFinished() {
		s.recordFinish(sess)
		return s.snapshot(sess), nil
	}

	if err := s.playComputer(sess); err != nil {
		return Snapshot{}, err
	}
	return s.snapshot(sess), nil
}

// Current returns the active game.
func (s *Service) Current() (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return Snapshot{}, ErrNoActiveGame
	}
	return s.snapshot(s.session), nil
}

// SetStrategy switches the computer player; the next computer turn uses it.
func (s *Service) SetStrategy(name string) error {
	strategy, err := bot.New(name, s.opts)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.SetStrategy(strategy)

	logger.Log.Info("[GAME] Strategy changed", zap.String("strategy", name))
	return nil
}

func (s *Service) StrategyName() string {
	return s.engine.Strategy().Name()
}

// ExpireIdle drops the active game if nobody has moved for maxIdle.
func (s *Service) ExpireIdle(maxIdle time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil || s.now().Sub(s.session.LastActivity) < maxIdle {
		return false
	}
	logger.Log.Info("[GAME] Expiring idle game",
		zap.String("gameId", s.session.GameID),
		zap.Duration("idle", s.now().Sub(s.session.LastActivity)),
	)
	s.session = nil
	return true
}

func (s *Service) playComputer(sess *Session) error {
	name := s.engine.Strategy().Name()

	start := time.Now()
	column, err := s.engine.ChooseMove(sess.Game.Board, sess.ComputerSide)
	elapsed := time.Since(start)
	moveSelectionSeconds.WithLabelValues(name).Observe(elapsed.Seconds())
	if err != nil {
		logger.Log.Error("[BOT] Strategy failed", zap.String("strategy", name), zap.Error(err))
		return fmt.Errorf("computer move: %w", err)
	}

	row, err := sess.Game.MakeMove(sess.ComputerSide, column)
	if err != nil {
		logger.Log.Error("[BOT] Strategy returned an unplayable column",
			zap.String("strategy", name), zap.Int("column", column), zap.Error(err))
		return fmt.Errorf("computer move: %w", err)
	}
	movesChosen.WithLabelValues(name).Inc()

	sess.LastActivity = s.now()
	sess.LastComputer = &Move{Column: column, Row: row, Player: sess.ComputerSide.String()}

	logger.Log.Debug("[BOT] Move chosen",
		zap.String("gameId", sess.GameID),
		zap.String("strategy", name),
		zap.Int("column", column),
		zap.Duration("took", elapsed),
	)

	if sess.Game.IsFinished() {
		s.recordFinish(sess)
	}
	return nil
}

func (s *Service) recordFinish(sess *Session) {
	result := "draw"
	switch sess.Game.Winner {
	case sess.HumanSide:
		result = "human"
	case sess.ComputerSide:
		result = "computer"
	}
	gamesFinished.WithLabelValues(result).Inc()

	logger.Log.Info("[GAME] Game finished",
		zap.String("gameId", sess.GameID),
		zap.String("result", result),
		zap.Int("moves", sess.Game.MoveCount),
	)
}

func (s *Service) snapshot(sess *Session) Snapshot {
	g := sess.Game
	snap := Snapshot{
		GameID:       sess.GameID,
		Board:        g.Board.Cells(),
		BoardKey:     g.Board.Key(),
		CurrentTurn:  g.CurrentPlayer.String(),
		HumanSide:    sess.HumanSide.String(),
		ComputerSide: sess.ComputerSide.String(),
		Status:       g.Status,
		MoveCount:    g.MoveCount,
		Strategy:     s.engine.Strategy().Name(),
		LegalColumns: domain.LegalColumns(g.Board),
		HumanMove:    sess.LastHuman,
		ComputerMove: sess.LastComputer,
	}
	if g.Status == domain.StatusWon {
		snap.Winner = g.Winner.String()
	}
	if g.IsFinished() {
		snap.LegalColumns = []int{}
	}
	return snap
}
