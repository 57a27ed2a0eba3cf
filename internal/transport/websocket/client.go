package websocket

import (
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// ConnectionManager tracks every open socket watching the game so a move made
// in one tab shows up in the others.
type ConnectionManager struct {
	connections map[string]*websocket.Conn

	// conn.WriteJSON is not safe for concurrent use; one writer per socket.
	writeMu map[string]*sync.Mutex

	mu sync.RWMutex // protects the maps
}

func NewConnectionManager() *ConnectionManager {
	return &ConnectionManager{
		connections: make(map[string]*websocket.Conn),
		writeMu:     make(map[string]*sync.Mutex),
	}
}

func (cm *ConnectionManager) AddConnection(id string, conn *websocket.Conn) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if oldConn, exists := cm.connections[id]; exists {
		oldConn.Close()
	}
	cm.connections[id] = conn
	cm.writeMu[id] = &sync.Mutex{}
}

// RemoveConnectionIfMatching only drops id if it still points at conn.
func (cm *ConnectionManager) RemoveConnectionIfMatching(id string, conn *websocket.Conn) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if currentConn, exists := cm.connections[id]; exists && currentConn == conn {
		currentConn.Close()
		delete(cm.connections, id)
		delete(cm.writeMu, id)
	}
}

func (cm *ConnectionManager) Count() int {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return len(cm.connections)
}

// SendMessage writes message to one socket. Unknown ids are ignored.
func (cm *ConnectionManager) SendMessage(id string, message ServerMessage) error {
	cm.mu.RLock()
	conn, exists := cm.connections[id]
	mu, muExists := cm.writeMu[id]
	cm.mu.RUnlock()

	if !exists || !muExists {
		return nil
	}

	mu.Lock()
	defer mu.Unlock()

	conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return conn.WriteJSON(message)
}

// Ping sends a keep-alive ping, sharing the socket's write lock.
func (cm *ConnectionManager) Ping(id string) error {
	cm.mu.RLock()
	conn, exists := cm.connections[id]
	mu, muExists := cm.writeMu[id]
	cm.mu.RUnlock()

	if !exists || !muExists {
		return errors.New("connection closed")
	}

	mu.Lock()
	defer mu.Unlock()
	return conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(10*time.Second))
}

// BroadcastMessage sends message to every socket and returns how many
// writes failed.
func (cm *ConnectionManager) BroadcastMessage(message ServerMessage) int {
	cm.mu.RLock()
	ids := make([]string, 0, len(cm.connections))
	for id := range cm.connections {
		ids = append(ids, id)
	}
	cm.mu.RUnlock()

	failed := 0
	for _, id := range ids {
		if err := cm.SendMessage(id, message); err != nil {
			failed++
		}
	}
	return failed
}
