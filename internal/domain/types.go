package domain

// PlayerID is both the content of a cell and the side to move.
type PlayerID int

const (
	Empty  PlayerID = 0
	Red    PlayerID = 1
	Yellow PlayerID = 2
)

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
)

// Opponent returns the other playing side. Empty has no opponent.
func (p PlayerID) Opponent() PlayerID {
	switch p {
	case Red:
		return Yellow
	case Yellow:
		return Red
	default:
		return Empty
	}
}

// IsSide reports whether p is one of the two playing sides.
func (p PlayerID) IsSide() bool {
	return p == Red || p == Yellow
}

func (p PlayerID) String() string {
	switch p {
	case Red:
		return "red"
	case Yellow:
		return "yellow"
	default:
		return "empty"
	}
}

// ParseSide maps "red"/"yellow" (or "r"/"y", any case) to a side.
func ParseSide(s string) (PlayerID, error) {
	switch s {
	case "red", "Red", "RED", "r", "R":
		return Red, nil
	case "yellow", "Yellow", "YELLOW", "y", "Y":
		return Yellow, nil
	}
	return Empty, ErrInvalidSide
}

// to represent the game status
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrIllegalMove  Error = "illegal move"
	ErrNoLegalMove  Error = "no legal move"
	ErrInvalidSide  Error = "invalid side"
	ErrInvalidBoard Error = "invalid board"
	ErrNotYourTurn  Error = "not your turn"
	ErrGameOver     Error = "game is over"
)
