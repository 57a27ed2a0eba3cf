package domain

// Game is the turn-taking state the UI side keeps around a Board.
type Game struct {
	Board         Board
	CurrentPlayer PlayerID
	Status        GameStatus
	Winner        PlayerID
	MoveCount     int
}

// NewGame starts an empty board with Red to move.
func NewGame() *Game {
	return &Game{
		Board:         NewBoard(),
		CurrentPlayer: Red,
		Status:        StatusActive,
		Winner:        Empty,
	}
}

// MakeMove drops the current player's token and advances the turn. It
// returns the row the token landed in.
func (g *Game) MakeMove(player PlayerID, column int) (int, error) {
	if g.IsFinished() {
		return -1, ErrGameOver
	}
	if player != g.CurrentPlayer {
		return -1, ErrNotYourTurn
	}

	row := LandingRow(g.Board, column)
	next, err := Drop(g.Board, column, player)
	if err != nil {
		return -1, err
	}
	g.Board = next
	g.MoveCount++

	if HasFourInARow(g.Board, player) {
		g.Status = StatusWon
		g.Winner = player
		return row, nil
	}

	if IsFull(g.Board) {
		g.Status = StatusDraw
		return row, nil
	}

	g.CurrentPlayer = player.Opponent()
	return row, nil
}

func (g *Game) IsFinished() bool {
	return g.Status == StatusWon || g.Status == StatusDraw
}
