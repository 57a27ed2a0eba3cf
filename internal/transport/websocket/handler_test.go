package websocket

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamasit07/connect4-ai/internal/service/bot"
	"github.com/iamasit07/connect4-ai/internal/service/game"
)

func newTestServer(t *testing.T) (*httptest.Server, *Handler) {
	t.Helper()
	svc := game.NewService(bot.NewEngine(bot.NewGreedy()), bot.Options{})
	h := NewHandler(NewConnectionManager(), svc, []string{"http://localhost:5173"})
	srv := httptest.NewServer(http.HandlerFunc(h.HandleWebSocket))
	t.Cleanup(srv.Close)
	return srv, h
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func roundTrip(t *testing.T, conn *websocket.Conn, msg ClientMessage) ServerMessage {
	t.Helper()
	require.NoError(t, conn.WriteJSON(msg))
	return read(t, conn)
}

func read(t *testing.T, conn *websocket.Conn) ServerMessage {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var reply ServerMessage
	require.NoError(t, conn.ReadJSON(&reply))
	return reply
}

func column(c int) *int { return &c }

func TestHandler_PlayOverSocket(t *testing.T) {
	srv, _ := newTestServer(t)
	conn := dial(t, srv)

	reply := roundTrip(t, conn, ClientMessage{Type: MsgState})
	assert.Equal(t, MsgError, reply.Type)
	assert.Equal(t, string(game.ErrNoActiveGame), reply.Message)

	reply = roundTrip(t, conn, ClientMessage{Type: MsgNewGame, Side: "red"})
	require.Equal(t, MsgState, reply.Type)
	require.NotNil(t, reply.Game)
	assert.Equal(t, 0, reply.Game.MoveCount)

	reply = roundTrip(t, conn, ClientMessage{Type: MsgMove, Column: column(3)})
	require.Equal(t, MsgState, reply.Type)
	assert.Equal(t, 2, reply.Game.MoveCount)
	require.NotNil(t, reply.Game.ComputerMove)
	assert.Equal(t, 0, reply.Game.ComputerMove.Column)
}

func TestHandler_Errors(t *testing.T) {
	srv, _ := newTestServer(t)
	conn := dial(t, srv)

	reply := roundTrip(t, conn, ClientMessage{Type: MsgNewGame, Side: "green"})
	assert.Equal(t, MsgError, reply.Type)

	reply = roundTrip(t, conn, ClientMessage{Type: MsgNewGame})
	require.Equal(t, MsgState, reply.Type)

	reply = roundTrip(t, conn, ClientMessage{Type: MsgMove})
	assert.Equal(t, MsgError, reply.Type)

	reply = roundTrip(t, conn, ClientMessage{Type: MsgMove, Column: column(-1)})
	assert.Equal(t, MsgError, reply.Type)
	assert.Contains(t, reply.Message, "illegal move")

	reply = roundTrip(t, conn, ClientMessage{Type: "resign"})
	assert.Equal(t, MsgError, reply.Type)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{")))
	assert.Equal(t, "invalid message", read(t, conn).Message)
}

func TestHandler_StrategyChange(t *testing.T) {
	srv, h := newTestServer(t)
	conn := dial(t, srv)

	reply := roundTrip(t, conn, ClientMessage{Type: MsgStrategy, Strategy: bot.StrategyUCS})
	assert.Equal(t, MsgStrategy, reply.Type)
	assert.Equal(t, bot.StrategyUCS, reply.Strategy)
	assert.Equal(t, bot.StrategyUCS, h.Games.StrategyName())

	reply = roundTrip(t, conn, ClientMessage{Type: MsgStrategy, Strategy: "dice"})
	assert.Equal(t, MsgError, reply.Type)
}

func TestHandler_BroadcastsToEveryViewer(t *testing.T) {
	srv, h := newTestServer(t)
	first := dial(t, srv)

	reply := roundTrip(t, first, ClientMessage{Type: MsgNewGame, Side: "yellow"})
	require.Equal(t, MsgState, reply.Type)
	assert.Equal(t, 1, reply.Game.MoveCount)

	// The second viewer gets the running game on connect.
	second := dial(t, srv)
	joined := read(t, second)
	require.Equal(t, MsgState, joined.Type)
	assert.Equal(t, reply.Game.GameID, joined.Game.GameID)

	require.Eventually(t, func() bool { return h.ConnManager.Count() == 2 }, time.Second, 10*time.Millisecond)

	require.NoError(t, first.WriteJSON(ClientMessage{Type: MsgMove, Column: column(6)}))
	assert.Equal(t, 3, read(t, first).Game.MoveCount)
	assert.Equal(t, 3, read(t, second).Game.MoveCount)
}
