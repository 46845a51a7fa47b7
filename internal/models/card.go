// internal/models/card.go
package models

// CardColor is the hidden affiliation of a card on the board.
type CardColor string

const (
	ColorRed       CardColor = "red"
	ColorBlue      CardColor = "blue"
	ColorBystander CardColor = "bystander"
	ColorAssassin  CardColor = "assassin"

	// ColorHidden is the sentinel sent in place of the true color whenever
	// the viewer is not allowed to see an unrevealed card's identity.
	ColorHidden CardColor = "unknown"
)

// Team returns the owning team for red/blue colors. The second return is
// false for bystander, assassin and hidden colors.
func (c CardColor) Team() (Team, bool) {
	switch c {
	case ColorRed:
		return TeamRed, true
	case ColorBlue:
		return TeamBlue, true
	}
	return "", false
}

// Card is a single codename on the 5x5 board. Codename and Color are
// fixed at deck generation; only Revealed flips during play.
type Card struct {
	Codename string    `json:"codename"`
	Color    CardColor `json:"color"`
	Revealed bool      `json:"revealed"`
}
