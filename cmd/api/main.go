package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/iamasit07/connect4-ai/internal/config"
	"github.com/iamasit07/connect4-ai/internal/service/bot"
	"github.com/iamasit07/connect4-ai/internal/service/cleanup"
	"github.com/iamasit07/connect4-ai/internal/service/game"
	transportHttp "github.com/iamasit07/connect4-ai/internal/transport/http"
	"github.com/iamasit07/connect4-ai/internal/transport/websocket"
	"github.com/iamasit07/connect4-ai/pkg/logger"
)

func main() {
	envErr := godotenv.Load()
	if envErr != nil {
		envErr = godotenv.Load("../.env")
	}

	if err := logger.Init(config.GetEnv("ENV", "development")); err != nil {
		fmt.Fprintln(os.Stderr, "logger init:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if envErr != nil {
		logger.Log.Info("[SERVER] No .env file found")
	}

	cfg := config.LoadConfig()
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 1. Computer player
	opts := cfg.Engine.BotOptions()
	strategy, err := bot.New(cfg.Engine.Strategy, opts)
	if err != nil {
		logger.Log.Fatal("[SERVER] Failed to build strategy", zap.Error(err))
	}
	engine := bot.NewEngine(strategy)

	// 2. Game service and background workers
	gameService := game.NewService(engine, opts)

	cleanupWorker := cleanup.NewWorker(gameService, cfg.IdleTimeout)
	cleanupWorker.Start()
	defer cleanupWorker.Stop()

	// 3. Transport
	connManager := websocket.NewConnectionManager()
	wsHandler := websocket.NewHandler(connManager, gameService, cfg.AllowedOrigins)
	router := transportHttp.NewRouter(gameService, cfg.AllowedOrigins, gin.WrapF(wsHandler.HandleWebSocket))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Log.Info("[SERVER] Starting",
			zap.String("port", cfg.Port),
			zap.String("strategy", strategy.Name()),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("[SERVER] Listen error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Log.Info("[SERVER] Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("[SERVER] Forced to shutdown", zap.Error(err))
		return
	}

	logger.Log.Info("[SERVER] Exited gracefully")
}
