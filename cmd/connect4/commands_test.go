package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamasit07/connect4-ai/internal/domain"
)

const yellowToWinAt3 = "......./......./......./......./......./YYY.RR."

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("AI_STRATEGY", "minimax")
	t.Setenv("AI_MINIMAX_DEPTH", "4")
	t.Setenv("ENGINE_CONFIG_FILE", "")
	t.Setenv("HUMAN_SIDE", "red")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func TestSuggest(t *testing.T) {
	for _, strategy := range []string{"greedy", "minimax", "bfs", "ucs"} {
		t.Run(strategy, func(t *testing.T) {
			out, err := run(t, "", "suggest", "--board", yellowToWinAt3, "--side", "yellow", "--strategy", strategy)
			require.NoError(t, err)
			assert.Contains(t, out, "yellow ("+strategy+") plays column 3")
		})
	}
}

func TestSuggest_BadInput(t *testing.T) {
	_, err := run(t, "", "suggest", "--board", "RRR")
	assert.ErrorIs(t, err, domain.ErrInvalidBoard)

	_, err = run(t, "", "suggest", "--board", yellowToWinAt3, "--side", "blue")
	assert.ErrorIs(t, err, domain.ErrInvalidSide)

	_, err = run(t, "", "suggest", "--board", yellowToWinAt3, "--strategy", "astar")
	assert.ErrorContains(t, err, "unknown strategy")

	_, err = run(t, "", "suggest", "--board", yellowToWinAt3, "--depth", "50")
	assert.ErrorContains(t, err, "depth must be between")

	_, err = run(t, "", "suggest")
	assert.Error(t, err)
}

func TestSuggest_FullBoard(t *testing.T) {
	full := "RRYYRRY/YYRRYYR/RRYYRRY/YYRRYYR/RRYYRRY/YYRRYYR"
	_, err := run(t, "", "suggest", "--board", full, "--strategy", "greedy")
	assert.ErrorIs(t, err, domain.ErrNoLegalMove)
}

func TestStrategies(t *testing.T) {
	out, err := run(t, "", "strategies")
	require.NoError(t, err)
	assert.Contains(t, out, "* minimax")
	assert.Contains(t, out, "  genetic")
}

func TestPlay(t *testing.T) {
	out, err := run(t, "6\n6\n6\n6\n", "play", "--strategy", "greedy")
	require.NoError(t, err)
	assert.Contains(t, out, "You win!")

	_, err = run(t, "", "play", "--side", "purple")
	assert.ErrorIs(t, err, domain.ErrInvalidSide)
}
