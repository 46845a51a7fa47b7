// internal/game/events.go
package game

import (
	"github.com/jason-s-yu/codenames/internal/models"
)

// RoomEventType is an enum-like type for broadcasting room actions.
type RoomEventType string

const (
	EventPlayerJoin     RoomEventType = "player_join"      // Player entered the room (still unassigned)
	EventPlayerJoinTeam RoomEventType = "player_join_team" // Player claimed a team seat
	EventPlayerLeave    RoomEventType = "player_leave"     // Player left or dropped
	EventNewClue        RoomEventType = "new_clue"         // Spymaster gave a clue, operatives are up
	EventNewGuess       RoomEventType = "new_guess"        // Operative revealed a card
	EventNewTurn        RoomEventType = "new_turn"         // Turn handed over without a guess result
	EventWin            RoomEventType = "win"              // Game reached a winner; full deck attached
	EventNewGame        RoomEventType = "new_game"         // Session was reset; per-viewer filtered state
	EventRoomState      RoomEventType = "room_state"       // Private full-state sync for one viewer
)

// RoomEvent is the single payload shape broadcast to clients. Fields are
// omitted unless the event type uses them.
type RoomEvent struct {
	Type   RoomEventType `json:"type"`
	Player string        `json:"player,omitempty"`

	Team models.Team `json:"team,omitempty"`
	Role models.Role `json:"role,omitempty"`

	Clue      *models.Clue        `json:"clue,omitempty"`
	CardIndex *int                `json:"cardIndex,omitempty"`
	Color     models.CardColor    `json:"color,omitempty"`
	Score     map[models.Team]int `json:"score,omitempty"`
	Turn      *models.Turn        `json:"turn,omitempty"`

	// Cards carries the fully revealed deck on win and the spymaster's
	// private deck reveal on a successful spymaster claim.
	Cards []models.Card `json:"cards,omitempty"`

	// State carries a role-filtered room snapshot (room_state, new_game).
	State *RoomState `json:"state,omitempty"`
}
