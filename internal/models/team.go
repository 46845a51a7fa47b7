// internal/models/team.go
package models

// Team identifies one of the two playing sides.
type Team string

const (
	TeamRed  Team = "red"
	TeamBlue Team = "blue"
)

// Valid reports whether t names an actual playing side.
func (t Team) Valid() bool {
	return t == TeamRed || t == TeamBlue
}

// Opposite returns the opposing team. Calling it on an invalid team
// returns the zero value.
func (t Team) Opposite() Team {
	switch t {
	case TeamRed:
		return TeamBlue
	case TeamBlue:
		return TeamRed
	}
	return ""
}

// Color returns the card color owned by this team.
func (t Team) Color() CardColor {
	return CardColor(t)
}

// Role is what type of player in the game you are.
type Role string

const (
	// RoleSpymaster is the clue giver; sees every card identity.
	RoleSpymaster Role = "spymaster"
	// RoleOperative guesses cards and sees only revealed identities.
	RoleOperative Role = "operative"
)

// Valid reports whether r is a recognized role.
func (r Role) Valid() bool {
	return r == RoleSpymaster || r == RoleOperative
}
