package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/iamasit07/connect4-ai/internal/config"
	"github.com/iamasit07/connect4-ai/internal/domain"
	"github.com/iamasit07/connect4-ai/internal/service/bot"
	"github.com/iamasit07/connect4-ai/internal/service/game"
	"github.com/iamasit07/connect4-ai/internal/transport/terminal"
	"github.com/iamasit07/connect4-ai/pkg/logger"
)

type cliFlags struct {
	strategy string
	side     string
	depth    int
	seed     int64
	board    string
	verbose  bool

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	flags := &cliFlags{}

	rootCmd := &cobra.Command{
		Use:           "connect4",
		Short:         "Play Connect-4 against a search-based computer player",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			if flags.verbose {
				if err := logger.Init("development"); err != nil {
					return err
				}
			}
			flags.cfg = config.LoadConfig()
			return nil
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log engine and game events to stderr")

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "Play an interactive game in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, flags)
		},
	}
	addEngineFlags(playCmd, flags)
	playCmd.Flags().StringVar(&flags.side, "side", "red", "your side: red (moves first) or yellow")

	suggestCmd := &cobra.Command{
		Use:   "suggest",
		Short: "Print the column the engine would play in a position",
		Long: `Reads a board as 42 cells, top row first, using R, Y and '.'.
Whitespace and '/' between rows are ignored, e.g.
  connect4 suggest --side yellow --board "......./......./......./......./......./YYY.RR."`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuggest(cmd, flags)
		},
	}
	addEngineFlags(suggestCmd, flags)
	suggestCmd.Flags().StringVar(&flags.board, "board", "", "position to analyse (required)")
	suggestCmd.Flags().StringVar(&flags.side, "side", "red", "side to move")
	_ = suggestCmd.MarkFlagRequired("board")

	strategiesCmd := &cobra.Command{
		Use:   "strategies",
		Short: "List the available strategies",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range bot.Names() {
				marker := " "
				if name == flags.cfg.Engine.Strategy {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, name)
			}
		},
	}

	rootCmd.AddCommand(playCmd, suggestCmd, strategiesCmd)
	return rootCmd
}

func addEngineFlags(cmd *cobra.Command, flags *cliFlags) {
	cmd.Flags().StringVar(&flags.strategy, "strategy", "", "strategy: "+strings.Join(bot.Names(), ", "))
	cmd.Flags().IntVar(&flags.depth, "depth", 0, "minimax search depth")
	cmd.Flags().Int64Var(&flags.seed, "seed", 0, "random seed for the genetic strategy")
}

// engineSettings applies command-line overrides on top of the loaded config.
func engineSettings(cmd *cobra.Command, flags *cliFlags) config.EngineConfig {
	engine := flags.cfg.Engine
	if cmd.Flags().Changed("strategy") {
		engine.Strategy = strings.ToLower(flags.strategy)
	}
	if cmd.Flags().Changed("depth") {
		engine.MinimaxDepth = flags.depth
	}
	if cmd.Flags().Changed("seed") {
		engine.Seed = flags.seed
	}
	return engine
}

func buildStrategy(cmd *cobra.Command, flags *cliFlags) (bot.Strategy, bot.Options, error) {
	engine := engineSettings(cmd, flags)
	if engine.MinimaxDepth < 1 || engine.MinimaxDepth > bot.MaxMinimaxDepth {
		return nil, bot.Options{}, fmt.Errorf("depth must be between 1 and %d", bot.MaxMinimaxDepth)
	}
	opts := engine.BotOptions()
	strategy, err := bot.New(engine.Strategy, opts)
	return strategy, opts, err
}

func runPlay(cmd *cobra.Command, flags *cliFlags) error {
	strategy, opts, err := buildStrategy(cmd, flags)
	if err != nil {
		return err
	}

	sideName := flags.cfg.HumanSide
	if cmd.Flags().Changed("side") {
		sideName = flags.side
	}
	side, err := domain.ParseSide(sideName)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	games := game.NewService(bot.NewEngine(strategy), opts)
	return terminal.Play(ctx, games, side, cmd.InOrStdin(), cmd.OutOrStdout())
}

func runSuggest(cmd *cobra.Command, flags *cliFlags) error {
	board, err := domain.ParseBoard(flags.board)
	if err != nil {
		return err
	}
	side, err := domain.ParseSide(flags.side)
	if err != nil {
		return err
	}
	strategy, _, err := buildStrategy(cmd, flags)
	if err != nil {
		return err
	}

	column, err := bot.NewEngine(strategy).ChooseMove(board, side)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	render := terminal.NewRenderer(out)
	next, _ := domain.Drop(board, column, side)
	fmt.Fprintln(out, render.Board(next, &game.Move{Column: column, Row: domain.LandingRow(board, column), Player: side.String()}))
	fmt.Fprintf(out, "%s (%s) plays column %d\n", side, strategy.Name(), column)
	return nil
}
