package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/iamasit07/connect4-ai/internal/domain"
	"github.com/iamasit07/connect4-ai/internal/service/game"
	"github.com/iamasit07/connect4-ai/pkg/logger"
	"github.com/iamasit07/connect4-ai/pkg/uid"
)

const (
	pongWait     = 60 * time.Second
	pingInterval = 30 * time.Second
)

// Handler manages WebSocket dependencies
type Handler struct {
	ConnManager *ConnectionManager
	Games       *game.Service
	Upgrader    websocket.Upgrader
}

// NewHandler accepts upgrades from allowedOrigins and from clients that send
// no Origin header at all, such as the CLI or tests.
func NewHandler(cm *ConnectionManager, games *game.Service, allowedOrigins []string) *Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = true
	}

	return &Handler{
		ConnManager: cm,
		Games:       games,
		Upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || allowed[origin]
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// HandleWebSocket is the HTTP handler that upgrades the connection
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Warn("[WS] Upgrade error", zap.Error(err))
		return
	}

	h.handleConnection(conn)
}

func (h *Handler) handleConnection(conn *websocket.Conn) {
	connID := uid.GenerateConnectionID()
	h.ConnManager.AddConnection(connID, conn)

	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	done := make(chan struct{})
	go h.keepAlive(connID, done)

	defer func() {
		close(done)
		h.ConnManager.RemoveConnectionIfMatching(connID, conn)
		logger.Log.Info("[WS] Connection closed", zap.String("conn", connID))
	}()

	logger.Log.Info("[WS] Connection opened", zap.String("conn", connID))

	// A late joiner sees the game already in progress.
	if snap, err := h.Games.Current(); err == nil {
		h.ConnManager.SendMessage(connID, stateMessage(snap))
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Log.Warn("[WS] Client disconnected unexpectedly", zap.String("conn", connID), zap.Error(err))
			}
			return
		}

		var message ClientMessage
		if err := json.Unmarshal(data, &message); err != nil {
			h.ConnManager.SendMessage(connID, ServerMessage{Type: MsgError, Message: "invalid message"})
			continue
		}

		h.handleMessage(connID, message)
	}
}

func (h *Handler) keepAlive(connID string, done <-chan struct{}) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := h.ConnManager.Ping(connID); err != nil {
				return
			}
		}
	}
}

func (h *Handler) handleMessage(connID string, message ClientMessage) {
	switch message.Type {
	case MsgNewGame:
		side := domain.Red
		if message.Side != "" {
			parsed, err := domain.ParseSide(message.Side)
			if err != nil {
				h.ConnManager.SendMessage(connID, errorMessage(err))
				return
			}
			side = parsed
		}
		if message.Strategy != "" {
			if err := h.Games.SetStrategy(message.Strategy); err != nil {
				h.ConnManager.SendMessage(connID, errorMessage(err))
				return
			}
		}
		snap, err := h.Games.NewGame(side)
		if err != nil {
			h.ConnManager.SendMessage(connID, errorMessage(err))
			return
		}
		h.ConnManager.BroadcastMessage(stateMessage(snap))

	case MsgMove:
		if message.Column == nil {
			h.ConnManager.SendMessage(connID, ServerMessage{Type: MsgError, Message: "column is required"})
			return
		}
		snap, err := h.Games.PlayHuman(*message.Column)
		if err != nil {
			h.ConnManager.SendMessage(connID, errorMessage(err))
			return
		}
		h.ConnManager.BroadcastMessage(stateMessage(snap))

	case MsgState:
		snap, err := h.Games.Current()
		if err != nil {
			h.ConnManager.SendMessage(connID, errorMessage(err))
			return
		}
		h.ConnManager.SendMessage(connID, stateMessage(snap))

	case MsgStrategy:
		if err := h.Games.SetStrategy(message.Strategy); err != nil {
			h.ConnManager.SendMessage(connID, errorMessage(err))
			return
		}
		h.ConnManager.BroadcastMessage(ServerMessage{Type: MsgStrategy, Strategy: h.Games.StrategyName()})

	default:
		h.ConnManager.SendMessage(connID, ServerMessage{
			Type:    MsgError,
			Message: fmt.Sprintf("unknown message type %q", message.Type),
		})
	}
}
