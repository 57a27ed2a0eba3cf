package cleanup

import (
	"time"

	"go.uber.org/zap"

	"github.com/iamasit07/connect4-ai/pkg/logger"
)

// IdleExpirer is implemented by the game service.
type IdleExpirer interface {
	ExpireIdle(maxIdle time.Duration) bool
}

type Worker struct {
	Games    IdleExpirer
	MaxIdle  time.Duration
	Interval time.Duration
	stop     chan struct{}
}

func NewWorker(games IdleExpirer, maxIdle time.Duration) *Worker {
	interval := maxIdle / 4
	if interval < time.Second {
		interval = time.Second
	}
	return &Worker{
		Games:    games,
		MaxIdle:  maxIdle,
		Interval: interval,
		stop:     make(chan struct{}),
	}
}

// Start runs the cleanup on a ticker until Stop is called.
func (w *Worker) Start() {
	ticker := time.NewTicker(w.Interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				w.runCleanup()
			case <-w.stop:
				return
			}
		}
	}()
	logger.Log.Info("[CLEANUP] Background worker started",
		zap.Duration("maxIdle", w.MaxIdle), zap.Duration("interval", w.Interval))
}

func (w *Worker) Stop() {
	close(w.stop)
}

// runCleanup executes the actual cleanup logic
func (w *Worker) runCleanup() {
	if w.Games.ExpireIdle(w.MaxIdle) {
		logger.Log.Info("[CLEANUP] Removed idle game", zap.Duration("maxIdle", w.MaxIdle))
	}
}
