package game

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	movesChosen = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "connect4_moves_chosen_total",
		Help: "Columns chosen by the computer player, by strategy.",
	}, []string{"strategy"})

	moveSelectionSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "connect4_move_selection_seconds",
		Help:    "Time spent in ChooseMove, by strategy.",
		Buckets: prometheus.ExponentialBuckets(0.0005, 4, 8),
	}, []string{"strategy"})

	gamesFinished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "connect4_games_finished_total",
		Help: "Finished games by result: human, computer or draw.",
	}, []string{"result"})
)
