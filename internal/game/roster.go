// internal/game/roster.go
package game

import (
	"errors"

	"github.com/jason-s-yu/codenames/internal/models"
)

// ErrNicknameInUse is returned by Join when the nickname is already
// taken inside the room. This is an addressing error for the caller
// only; nothing is broadcast.
var ErrNicknameInUse = errors.New("nickname already in use in this room")

// TeamRoster holds one team's seat assignments: at most one spymaster
// and any number of operatives.
type TeamRoster struct {
	Spymaster  string   `json:"spymaster,omitempty"`
	Operatives []string `json:"operatives"`
}

// Roster is the durable player registry of a room. It outlives session
// resets: a reset clears team/role assignments but keeps identities.
// The Roster carries no lock; the owning Room serializes all access, so
// slot claims are atomic check-and-set under the room lock.
type Roster struct {
	players map[string]*models.PlayerData
	teams   map[models.Team]*TeamRoster
}

// NewRoster returns an empty registry with both team slots prepared.
func NewRoster() *Roster {
	return &Roster{
		players: make(map[string]*models.PlayerData),
		teams: map[models.Team]*TeamRoster{
			models.TeamRed:  {Operatives: []string{}},
			models.TeamBlue: {Operatives: []string{}},
		},
	}
}

// Join registers a new, unassigned player under the given nickname.
func (r *Roster) Join(playerID string) (*models.PlayerData, error) {
	if _, exists := r.players[playerID]; exists {
		return nil, ErrNicknameInUse
	}
	p := &models.PlayerData{ID: playerID}
	r.players[playerID] = p
	return p, nil
}

// Get looks up a player by nickname.
func (r *Roster) Get(playerID string) (*models.PlayerData, bool) {
	p, ok := r.players[playerID]
	return p, ok
}

// AssignTeam claims a team seat for the player. First claim wins: a
// player that already has a team or role keeps it, and the spymaster
// seat is refused while occupied. Returns false without changing
// anything when the claim loses.
func (r *Roster) AssignTeam(playerID string, team models.Team, role models.Role) bool {
	p, ok := r.players[playerID]
	if !ok || p.Assigned() || !team.Valid() || !role.Valid() {
		return false
	}

	tr := r.teams[team]
	if role == models.RoleSpymaster {
		if tr.Spymaster != "" {
			return false
		}
		tr.Spymaster = playerID
	} else {
		tr.Operatives = append(tr.Operatives, playerID)
	}

	p.Team = team
	p.Role = role
	return true
}

// Leave deletes the player's identity and vacates whichever seat it
// held.
func (r *Roster) Leave(playerID string) bool {
	p, ok := r.players[playerID]
	if !ok {
		return false
	}
	r.clearSeat(p)
	delete(r.players, playerID)
	return true
}

// ResetAssignments clears every player's team and role but keeps the
// identities, so the same group can re-seat for the next game.
func (r *Roster) ResetAssignments() {
	for _, p := range r.players {
		p.Team = ""
		p.Role = ""
	}
	r.teams = map[models.Team]*TeamRoster{
		models.TeamRed:  {Operatives: []string{}},
		models.TeamBlue: {Operatives: []string{}},
	}
}

// Players returns the live player records. Callers must hold the room
// lock while iterating.
func (r *Roster) Players() []*models.PlayerData {
	out := make([]*models.PlayerData, 0, len(r.players))
	for _, p := range r.players {
		out = append(out, p)
	}
	return out
}

// Teams returns a copy of both team rosters for outbound payloads.
func (r *Roster) Teams() map[models.Team]TeamRoster {
	out := make(map[models.Team]TeamRoster, len(r.teams))
	for team, tr := range r.teams {
		ops := make([]string, len(tr.Operatives))
		copy(ops, tr.Operatives)
		out[team] = TeamRoster{Spymaster: tr.Spymaster, Operatives: ops}
	}
	return out
}

func (r *Roster) clearSeat(p *models.PlayerData) {
	if !p.Assigned() {
		return
	}
	tr := r.teams[p.Team]
	if tr == nil {
		return
	}
	if p.Role == models.RoleSpymaster && tr.Spymaster == p.ID {
		tr.Spymaster = ""
		return
	}
	for i, id := range tr.Operatives {
		if id == p.ID {
			tr.Operatives = append(tr.Operatives[:i], tr.Operatives[i+1:]...)
			return
		}
	}
}
