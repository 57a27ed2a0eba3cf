package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iamasit07/connect4-ai/internal/domain"
	"github.com/iamasit07/connect4-ai/internal/service/game"
)

const help = "Enter a column 0-6, s <name> to switch strategy, or q to quit."

// Play runs one game against the computer, reading columns line by line from
// in. It returns nil when the game ends, the player quits, or in is
// exhausted.
func Play(ctx context.Context, games *game.Service, humanSide domain.PlayerID, in io.Reader, out io.Writer) error {
	render := NewRenderer(out)

	snap, err := games.NewGame(humanSide)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Playing %s against %s. %s\n", humanSide, snap.Strategy, help)
	fmt.Fprintln(out, render.Snapshot(snap))

	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case line == "q" || line == "quit":
			fmt.Fprintln(out, "Bye.")
			return nil
		case line == "?" || line == "help":
			fmt.Fprintln(out, help)
			continue
		case strings.HasPrefix(line, "s "):
			name := strings.TrimSpace(strings.TrimPrefix(line, "s "))
			if err := games.SetStrategy(name); err != nil {
				fmt.Fprintln(out, render.Error(err))
				continue
			}
			fmt.Fprintf(out, "Computer now plays %s.\n", name)
			continue
		}

		column, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(out, render.Error(fmt.Errorf("%q is not a column", line)))
			continue
		}

		snap, err = games.PlayHuman(column)
		if err != nil {
			if errors.Is(err, domain.ErrIllegalMove) {
				fmt.Fprintln(out, render.Error(err))
				continue
			}
			return err
		}

		fmt.Fprintln(out, render.Snapshot(snap))
		if snap.Status != domain.StatusActive {
			return nil
		}
	}
}
