package websocket

import "github.com/iamasit07/connect4-ai/internal/service/game"

const (
	MsgNewGame  = "new_game"
	MsgMove     = "move"
	MsgState    = "state"
	MsgStrategy = "strategy"
	MsgError    = "error"
)

type ClientMessage struct {
	Type     string `json:"type"`
	Column   *int   `json:"column,omitempty"`
	Side     string `json:"side,omitempty"`
	Strategy string `json:"strategy,omitempty"`
}

type ServerMessage struct {
	Type     string         `json:"type"`
	Message  string         `json:"message,omitempty"`
	Strategy string         `json:"strategy,omitempty"`
	Game     *game.Snapshot `json:"game,omitempty"`
}

func stateMessage(snap game.Snapshot) ServerMessage {
	return ServerMessage{Type: MsgState, Strategy: snap.Strategy, Game: &snap}
}

func errorMessage(err error) ServerMessage {
	return ServerMessage{Type: MsgError, Message: err.Error()}
}
