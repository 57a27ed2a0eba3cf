package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iamasit07/connect4-ai/internal/domain"
	"github.com/iamasit07/connect4-ai/internal/service/bot"
	"github.com/iamasit07/connect4-ai/internal/service/game"
)

type GameHandler struct {
	Games *game.Service
}

func NewGameHandler(games *game.Service) *GameHandler {
	return &GameHandler{Games: games}
}

type newGameRequest struct {
	HumanSide string `json:"humanSide"`
	Strategy  string `json:"strategy"`
}

type moveRequest struct {
	Column *int `json:"column" binding:"required"`
}

type strategyRequest struct {
	Strategy string `json:"strategy" binding:"required"`
}

type strategiesResponse struct {
	Active    string   `json:"active"`
	Available []string `json:"available"`
}

// NewGame starts a fresh game, optionally switching strategy first.
func (h *GameHandler) NewGame(c *gin.Context) {
	var req newGameRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
	}

	side := domain.Red
	if req.HumanSide != "" {
		parsed, err := domain.ParseSide(req.HumanSide)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		side = parsed
	}

	if req.Strategy != "" {
		if err := h.Games.SetStrategy(req.Strategy); err != nil {
			writeError(c, err)
			return
		}
	}

	snap, err := h.Games.NewGame(side)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, snap)
}

func (h *GameHandler) GetGame(c *gin.Context) {
	snap, err := h.Games.Current()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// Move plays the human's column and returns the position after the
// computer's reply.
func (h *GameHandler) Move(c *gin.Context) {
	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "column is required"})
		return
	}

	snap, err := h.Games.PlayHuman(*req.Column)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (h *GameHandler) ListStrategies(c *gin.Context) {
	c.JSON(http.StatusOK, strategiesResponse{
		Active:    h.Games.StrategyName(),
		Available: bot.Names(),
	})
}

func (h *GameHandler) SetStrategy(c *gin.Context) {
	var req strategyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "strategy is required"})
		return
	}
	if err := h.Games.SetStrategy(req.Strategy); err != nil {
		writeError(c, err)
		return
	}
	h.ListStrategies(c)
}

func (h *GameHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// writeError maps service errors onto status codes.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrIllegalMove),
		errors.Is(err, domain.ErrInvalidSide),
		errors.Is(err, bot.ErrUnknownStrategy):
		status = http.StatusBadRequest
	case errors.Is(err, game.ErrNoActiveGame):
		status = http.StatusNotFound
	case errors.Is(err, game.ErrGameFinished),
		errors.Is(err, domain.ErrNotYourTurn),
		errors.Is(err, domain.ErrGameOver):
		status = http.StatusConflict
	}
	_ = c.Error(err)
	c.JSON(status, gin.H{"error": err.Error()})
}
