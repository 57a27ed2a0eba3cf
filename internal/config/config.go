package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/iamasit07/connect4-ai/internal/service/bot"
	"github.com/iamasit07/connect4-ai/pkg/logger"
)

type Config struct {
	Port           string
	Env            string
	FrontendURL    string
	AllowedOrigins []string
	HumanSide      string
	IdleTimeout    time.Duration
	Engine         EngineConfig
}

// EngineConfig selects and tunes the computer player. Field tags match the
// optional YAML engine file.
type EngineConfig struct {
	Strategy        string  `yaml:"strategy"`
	MinimaxDepth    int     `yaml:"minimax_depth"`
	SearchNodeLimit int     `yaml:"search_node_limit"`
	Population      int     `yaml:"ga_population"`
	Generations     int     `yaml:"ga_generations"`
	EliteFraction   float64 `yaml:"ga_elite_fraction"`
	MutationRate    float64 `yaml:"ga_mutation_rate"`
	Seed            int64   `yaml:"seed"`
}

var AppConfig *Config

func LoadConfig() *Config {
	port := GetEnv("PORT", "8080")
	env := GetEnv("ENV", "development")

	// Frontend & CORS
	frontendURL := GetEnv("FRONTEND_URL", "http://localhost:5173")
	allowedOrigins := []string{frontendURL}
	for _, origin := range strings.Split(GetEnv("ALLOWED_ORIGINS", ""), ",") {
		trimmed := strings.TrimSpace(origin)
		if trimmed == "" || trimmed == frontendURL {
			continue
		}
		if !strings.HasPrefix(trimmed, "http://") && !strings.HasPrefix(trimmed, "https://") {
			logger.Log.Warn("[CONFIG] Skipping origin without scheme", zap.String("origin", trimmed))
			continue
		}
		allowedOrigins = append(allowedOrigins, trimmed)
	}

	humanSide := strings.ToLower(GetEnv("HUMAN_SIDE", "red"))
	if humanSide != "red" && humanSide != "yellow" {
		logger.Log.Warn("[CONFIG] Invalid HUMAN_SIDE, using red", zap.String("value", humanSide))
		humanSide = "red"
	}

	idleMinutes := GetEnvAsInt("GAME_IDLE_TIMEOUT_MINUTES", 30)
	if idleMinutes < 1 {
		idleMinutes = 30
	}

	engine := EngineConfig{
		Strategy:        strings.ToLower(GetEnv("AI_STRATEGY", bot.StrategyMinimax)),
		MinimaxDepth:    GetEnvAsInt("AI_MINIMAX_DEPTH", bot.DefaultMinimaxDepth),
		SearchNodeLimit: GetEnvAsInt("AI_SEARCH_NODE_LIMIT", bot.DefaultSearchNodeLimit),
		Population:      GetEnvAsInt("AI_GA_POPULATION", bot.DefaultPopulationSize),
		Generations:     GetEnvAsInt("AI_GA_GENERATIONS", bot.DefaultGenerations),
		EliteFraction:   GetEnvAsFloat("AI_GA_ELITE_FRACTION", bot.DefaultEliteFraction),
		MutationRate:    GetEnvAsFloat("AI_GA_MUTATION_RATE", bot.DefaultMutationRate),
		Seed:            GetEnvAsInt64("AI_SEED", time.Now().UnixNano()),
	}

	if path := GetEnv("ENGINE_CONFIG_FILE", ""); path != "" {
		if err := LoadEngineFile(path, &engine); err != nil {
			logger.Log.Warn("[CONFIG] Ignoring engine file", zap.String("path", path), zap.Error(err))
		}
	}
	engine.Normalize()

	AppConfig = &Config{
		Port:           port,
		Env:            env,
		FrontendURL:    frontendURL,
		AllowedOrigins: allowedOrigins,
		HumanSide:      humanSide,
		IdleTimeout:    time.Duration(idleMinutes) * time.Minute,
		Engine:         engine,
	}

	return AppConfig
}

// LoadEngineFile overlays the fields present in a YAML file onto engine.
func LoadEngineFile(path string, engine *EngineConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read engine config: %w", err)
	}
	if err := yaml.Unmarshal(data, engine); err != nil {
		return fmt.Errorf("parse engine config %s: %w", path, err)
	}
	return nil
}

// Normalize replaces out-of-range values with the engine defaults.
func (e *EngineConfig) Normalize() {
	known := false
	for _, name := range bot.Names() {
		if e.Strategy == name {
			known = true
			break
		}
	}
	if !known {
		logger.Log.Warn("[CONFIG] Unknown AI strategy, using minimax", zap.String("value", e.Strategy))
		e.Strategy = bot.StrategyMinimax
	}
	if e.MinimaxDepth < 1 || e.MinimaxDepth > bot.MaxMinimaxDepth {
		logger.Log.Warn("[CONFIG] Minimax depth out of range", zap.Int("value", e.MinimaxDepth))
		e.MinimaxDepth = bot.DefaultMinimaxDepth
	}
	if e.SearchNodeLimit < 1 {
		e.SearchNodeLimit = bot.DefaultSearchNodeLimit
	}
	if e.Population < 2 {
		e.Population = bot.DefaultPopulationSize
	}
	if e.Generations < 1 {
		e.Generations = bot.DefaultGenerations
	}
	if e.EliteFraction <= 0 || e.EliteFraction > 1 {
		e.EliteFraction = bot.DefaultEliteFraction
	}
	if e.MutationRate < 0 || e.MutationRate > 1 {
		e.MutationRate = bot.DefaultMutationRate
	}
}

// BotOptions converts the engine settings for bot.New.
func (e EngineConfig) BotOptions() bot.Options {
	return bot.Options{
		MinimaxDepth:    e.MinimaxDepth,
		SearchNodeLimit: e.SearchNodeLimit,
		Seed:            e.Seed,
		Genetic: bot.GeneticOptions{
			PopulationSize: e.Population,
			Generations:    e.Generations,
			EliteFraction:  e.EliteFraction,
			MutationRate:   e.MutationRate,
		},
	}
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		logger.Log.Warn("[CONFIG] Invalid integer, using default",
			zap.String("key", key), zap.String("value", valueStr), zap.Int("default", defaultValue))
		return defaultValue
	}
	return value
}

func GetEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		logger.Log.Warn("[CONFIG] Invalid integer, using default",
			zap.String("key", key), zap.String("value", valueStr), zap.Int64("default", defaultValue))
		return defaultValue
	}
	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		logger.Log.Warn("[CONFIG] Invalid number, using default",
			zap.String("key", key), zap.String("value", valueStr), zap.Float64("default", defaultValue))
		return defaultValue
	}
	return value
}
