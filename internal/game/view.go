// internal/game/view.go
package game

import (
	"github.com/jason-s-yu/codenames/internal/models"
)

// RoomState is the outbound projection of a room for one viewer. It is
// the only shape the session ever leaves the server in, so the
// information-hiding rule lives here: unrevealed card colors are blanked
// for everyone except spymasters until the game is decided.
type RoomState struct {
	RoomID      string                     `json:"roomId"`
	Players     []models.PlayerData        `json:"players"`
	Teams       map[models.Team]TeamRoster `json:"teams"`
	Cards       []models.Card              `json:"cards"`
	Turn        models.Turn                `json:"turn"`
	Score       map[models.Team]int        `json:"score"`
	TargetScore map[models.Team]int        `json:"targetScore"`
	Clues       []models.Clue              `json:"pastClues"`
	Winner      models.Team                `json:"winner,omitempty"`
}

// FilterCards returns a copy of the deck appropriate for a viewer with
// the given role. Spymasters see everything; once the game is over so
// does everyone else. Any other viewer gets the hidden sentinel in place
// of unrevealed colors. Revealed flags always pass through.
func FilterCards(deck []models.Card, viewerRole models.Role, gameOver bool) []models.Card {
	out := make([]models.Card, len(deck))
	copy(out, deck)
	if viewerRole == models.RoleSpymaster || gameOver {
		return out
	}
	for i := range out {
		if !out[i].Revealed {
			out[i].Color = models.ColorHidden
		}
	}
	return out
}

// ProjectSession builds the session part of a viewer's snapshot with
// card colors filtered for the viewer's role.
func ProjectSession(s *Session, viewerRole models.Role) RoomState {
	score := make(map[models.Team]int, len(s.Score))
	for t, v := range s.Score {
		score[t] = v
	}
	target := make(map[models.Team]int, len(s.TargetScore))
	for t, v := range s.TargetScore {
		target[t] = v
	}
	clues := make([]models.Clue, len(s.Clues))
	copy(clues, s.Clues)

	return RoomState{
		Cards:       FilterCards(s.Deck, viewerRole, s.Over()),
		Turn:        s.Turn,
		Score:       score,
		TargetScore: target,
		Clues:       clues,
		Winner:      s.Winner,
	}
}
