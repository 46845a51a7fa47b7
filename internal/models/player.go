// internal/models/player.go
package models

import (
	"github.com/coder/websocket"
)

// PlayerData is one player's identity and assignment inside a room. A
// player with neither team nor role set is unassigned (just joined or
// after a game reset). The nickname doubles as the player id within the
// room.
type PlayerData struct {
	ID   string `json:"id"`
	Team Team   `json:"team,omitempty"`
	Role Role   `json:"role,omitempty"`

	Connected bool            `json:"-"`
	Conn      *websocket.Conn `json:"-"`
}

// Assigned reports whether the player has claimed a team and role.
func (p *PlayerData) Assigned() bool {
	return p.Team != "" || p.Role != ""
}
