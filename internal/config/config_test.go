package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamasit07/connect4-ai/internal/service/bot"
)

var configKeys = []string{
	"PORT", "ENV", "FRONTEND_URL", "ALLOWED_ORIGINS", "HUMAN_SIDE", "GAME_IDLE_TIMEOUT_MINUTES",
	"AI_STRATEGY", "AI_MINIMAX_DEPTH", "AI_SEARCH_NODE_LIMIT", "AI_GA_POPULATION", "AI_GA_GENERATIONS",
	"AI_GA_ELITE_FRACTION", "AI_GA_MUTATION_RATE", "AI_SEED", "ENGINE_CONFIG_FILE",
}

// clearEnv blanks every key LoadConfig reads; an empty value means "unset".
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("AI_SEED", "17")

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "red", cfg.HumanSide)
	assert.Equal(t, 30*time.Minute, cfg.IdleTimeout)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.AllowedOrigins)
	assert.Equal(t, EngineConfig{
		Strategy:        bot.StrategyMinimax,
		MinimaxDepth:    bot.DefaultMinimaxDepth,
		SearchNodeLimit: bot.DefaultSearchNodeLimit,
		Population:      bot.DefaultPopulationSize,
		Generations:     bot.DefaultGenerations,
		EliteFraction:   bot.DefaultEliteFraction,
		MutationRate:    bot.DefaultMutationRate,
		Seed:            17,
	}, cfg.Engine)
	assert.Same(t, cfg, AppConfig)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, http://b.test ,c.test")
	t.Setenv("HUMAN_SIDE", "Yellow")
	t.Setenv("AI_STRATEGY", "GENETIC")
	t.Setenv("AI_GA_POPULATION", "40")
	t.Setenv("AI_GA_MUTATION_RATE", "0.25")
	t.Setenv("GAME_IDLE_TIMEOUT_MINUTES", "5")

	cfg := LoadConfig()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, []string{"http://localhost:5173", "http://a.test", "http://b.test"}, cfg.AllowedOrigins)
	assert.Equal(t, "yellow", cfg.HumanSide)
	assert.Equal(t, 5*time.Minute, cfg.IdleTimeout)
	assert.Equal(t, bot.StrategyGenetic, cfg.Engine.Strategy)
	assert.Equal(t, 40, cfg.Engine.Population)
	assert.InDelta(t, 0.25, cfg.Engine.MutationRate, 1e-9)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("HUMAN_SIDE", "green")
	t.Setenv("AI_STRATEGY", "montecarlo")
	t.Setenv("AI_MINIMAX_DEPTH", "99")
	t.Setenv("AI_GA_GENERATIONS", "many")
	t.Setenv("AI_GA_ELITE_FRACTION", "2")

	cfg := LoadConfig()

	assert.Equal(t, "red", cfg.HumanSide)
	assert.Equal(t, bot.StrategyMinimax, cfg.Engine.Strategy)
	assert.Equal(t, bot.DefaultMinimaxDepth, cfg.Engine.MinimaxDepth)
	assert.Equal(t, bot.DefaultGenerations, cfg.Engine.Generations)
	assert.Equal(t, bot.DefaultEliteFraction, cfg.Engine.EliteFraction)
}

func TestLoadEngineFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "engine.yaml")
	require.NoError(t, os.WriteFile(path, []byte("strategy: ucs\nsearch_node_limit: 5000\nseed: 3\n"), 0o644))

	t.Setenv("ENGINE_CONFIG_FILE", path)
	t.Setenv("AI_MINIMAX_DEPTH", "3")

	cfg := LoadConfig()

	assert.Equal(t, bot.StrategyUCS, cfg.Engine.Strategy)
	assert.Equal(t, 5000, cfg.Engine.SearchNodeLimit)
	assert.Equal(t, int64(3), cfg.Engine.Seed)
	assert.Equal(t, 3, cfg.Engine.MinimaxDepth, "fields missing from the file keep env values")
}

func TestLoadEngineFile_Errors(t *testing.T) {
	var engine EngineConfig
	assert.Error(t, LoadEngineFile(filepath.Join(t.TempDir(), "missing.yaml"), &engine))

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("strategy: [unterminated"), 0o644))
	assert.Error(t, LoadEngineFile(path, &engine))
}

func TestBotOptions(t *testing.T) {
	e := EngineConfig{MinimaxDepth: 4, SearchNodeLimit: 10, Population: 8, Generations: 3, EliteFraction: 0.5, MutationRate: 0.2, Seed: 9}
	opts := e.BotOptions()

	assert.Equal(t, 4, opts.MinimaxDepth)
	assert.Equal(t, 10, opts.SearchNodeLimit)
	assert.Equal(t, int64(9), opts.Seed)
	assert.Equal(t, bot.GeneticOptions{PopulationSize: 8, Generations: 3, EliteFraction: 0.5, MutationRate: 0.2}, opts.Genetic)
}
