// internal/handlers/server.go
package handlers

import (
	"github.com/jason-s-yu/codenames/internal/game"
)

// GameServer is a high-level struct that holds the room registry plus
// the server-wide settings rooms are created with.
type GameServer struct {
	RoomStore *game.RoomStore

	// Words is the codename pool handed to every new room.
	Words []string

	// ReleaseOnDisconnect is the seat policy applied to new rooms: when
	// true a dropped connection vacates the player's seat, when false the
	// seat is kept for the same nickname.
	ReleaseOnDisconnect bool

	// BaseURL is the externally reachable address used to build join
	// links (QR codes).
	BaseURL string
}

func NewGameServer(words []string) *GameServer {
	return &GameServer{
		RoomStore:           game.NewRoomStore(),
		Words:               words,
		ReleaseOnDisconnect: true,
	}
}
