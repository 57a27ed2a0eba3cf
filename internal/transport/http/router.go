package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/iamasit07/connect4-ai/internal/service/game"
	"github.com/iamasit07/connect4-ai/internal/transport/http/middleware"
)

// NewRouter wires the REST API, metrics and, when ws is non-nil, the
// WebSocket endpoint.
func NewRouter(games *game.Service, allowedOrigins []string, ws gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLogger(), gin.Recovery())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(allowedOrigins))

	gameHandler := NewGameHandler(games)

	api := router.Group("/api")
	{
		api.GET("/health", gameHandler.Health)
		api.GET("/strategies", gameHandler.ListStrategies)
		api.PUT("/strategy", gameHandler.SetStrategy)
		api.POST("/game", gameHandler.NewGame)
		api.GET("/game", gameHandler.GetGame)
		api.POST("/game/move", gameHandler.Move)
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if ws != nil {
		router.GET("/ws", ws)
	}
	return router
}
