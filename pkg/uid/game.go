package uid

import "github.com/google/uuid"

// GenerateGameID returns a random UUIDv4 string identifying one game.
func GenerateGameID() string {
	return uuid.NewString()
}

// GenerateConnectionID names one WebSocket connection.
func GenerateConnectionID() string {
	return uuid.NewString()
}
