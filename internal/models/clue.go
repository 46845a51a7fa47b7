// internal/models/clue.go
package models

// Clue is a spymaster hint: one word plus the number of cards it points
// at. Clues are append-only history; they are never mutated once given.
type Clue struct {
	Team   Team   `json:"team"`
	Word   string `json:"word"`
	Number int    `json:"number"`
}

// Valid checks the clue is well formed: non-empty word, number in [1,9].
func (c Clue) Valid() bool {
	return c.Word != "" && c.Number >= 1 && c.Number <= 9
}

// Turn is the currently authorized (team, role) pair plus the remaining
// guess budget for the operative phase.
type Turn struct {
	Team        Team `json:"team"`
	Role        Role `json:"role"`
	MaxGuesses  int  `json:"maxGuesses"`
	GuessesLeft int  `json:"guessesLeft"`
}
