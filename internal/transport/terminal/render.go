// Package terminal is the interactive console front end: a lipgloss board
// renderer and a line-based play loop.
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iamasit07/connect4-ai/internal/domain"
	"github.com/iamasit07/connect4-ai/internal/service/game"
)

var (
	colorRed    = lipgloss.Color("#E74C3C")
	colorYellow = lipgloss.Color("#F4D03F")
	colorFrame  = lipgloss.Color("#1D6FA3")
	colorMuted  = lipgloss.Color("#6C7A89")
	colorWin    = lipgloss.Color("#2CD7C7")
)

// Renderer draws boards with the color profile of the writer it was built
// for, so piped output stays plain text.
type Renderer struct {
	red       lipgloss.Style
	yellow    lipgloss.Style
	empty     lipgloss.Style
	highlight lipgloss.Style
	header    lipgloss.Style
	frame     lipgloss.Style
	status    lipgloss.Style
	errStyle  lipgloss.Style
}

func NewRenderer(w io.Writer) *Renderer {
	r := lipgloss.NewRenderer(w)
	return &Renderer{
		red:       r.NewStyle().Foreground(colorRed).Bold(true),
		yellow:    r.NewStyle().Foreground(colorYellow).Bold(true),
		empty:     r.NewStyle().Foreground(colorMuted),
		highlight: r.NewStyle().Underline(true),
		header:    r.NewStyle().Foreground(colorMuted),
		frame: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorFrame).
			Padding(0, 1),
		status:   r.NewStyle().Bold(true).Foreground(colorWin),
		errStyle: r.NewStyle().Foreground(colorRed),
	}
}

func (r *Renderer) cell(p domain.PlayerID) string {
	switch p {
	case domain.Red:
		return r.red.Render("R")
	case domain.Yellow:
		return r.yellow.Render("Y")
	default:
		return r.empty.Render(".")
	}
}

// Board renders board inside a frame with column numbers underneath. The
// token at (row, col) of last is underlined; pass nil for none.
func (r *Renderer) Board(board domain.Board, last *game.Move) string {
	var b strings.Builder
	for row := 0; row < domain.Rows; row++ {
		cells := make([]string, domain.Columns)
		for col := 0; col < domain.Columns; col++ {
			cells[col] = r.cell(board[row][col])
			if last != nil && last.Row == row && last.Column == col {
				cells[col] = r.highlight.Render(cells[col])
			}
		}
		b.WriteString(strings.Join(cells, " "))
		if row < domain.Rows-1 {
			b.WriteByte('\n')
		}
	}

	numbers := make([]string, domain.Columns)
	for col := range numbers {
		numbers[col] = fmt.Sprint(col)
	}
	footer := r.header.Render(" " + strings.Join(numbers, " "))

	return lipgloss.JoinVertical(lipgloss.Left, r.frame.Render(b.String()), footer)
}

// Snapshot renders the board of snap plus a one-line status.
func (r *Renderer) Snapshot(snap game.Snapshot) string {
	last := snap.ComputerMove
	if last == nil {
		last = snap.HumanMove
	}
	return r.Board(boardFromCells(snap.Board), last) + "\n" + r.Status(snap)
}

func (r *Renderer) Status(snap game.Snapshot) string {
	switch snap.Status {
	case domain.StatusWon:
		if snap.Winner == snap.HumanSide {
			return r.status.Render("You win!")
		}
		return r.status.Render(fmt.Sprintf("The computer (%s) wins.", snap.Strategy))
	case domain.StatusDraw:
		return r.status.Render("Draw: the board is full.")
	}
	return fmt.Sprintf("Move %d, %s to play. You are %s.", snap.MoveCount+1, snap.CurrentTurn, snap.HumanSide)
}

func (r *Renderer) Error(err error) string {
	return r.errStyle.Render("error: " + err.Error())
}

func boardFromCells(cells [][]int) domain.Board {
	var board domain.Board
	for row := 0; row < domain.Rows && row < len(cells); row++ {
		for col := 0; col < domain.Columns && col < len(cells[row]); col++ {
			board[row][col] = domain.PlayerID(cells[row][col])
		}
	}
	return board
}
