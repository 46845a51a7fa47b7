// internal/game/session.go
package game

import (
	"github.com/jason-s-yu/codenames/internal/models"
)

// Session is the mutable state of one game inside a room: the board, the
// turn machine, scores, clue history and the eventual winner. A Session
// holds no lock of its own; the owning Room serializes access. Every
// transition either passes its full legality check and applies, or
// rejects without touching any field.
type Session struct {
	Deck        []models.Card       `json:"cards"`
	Turn        models.Turn         `json:"turn"`
	Score       map[models.Team]int `json:"score"`
	TargetScore map[models.Team]int `json:"targetScore"`
	Clues       []models.Clue       `json:"pastClues"`
	Winner      models.Team         `json:"winner,omitempty"`
}

// NewSession generates a fresh board and puts the starting team's
// spymaster on the clock. The starting team needs 9 agents to win, the
// other 8, matching the card split.
func NewSession(words []string, startingTeam models.Team) (*Session, error) {
	deck, err := GenerateDeck(words, startingTeam)
	if err != nil {
		return nil, err
	}
	return &Session{
		Deck: deck,
		Turn: models.Turn{
			Team: startingTeam,
			Role: models.RoleSpymaster,
		},
		Score: map[models.Team]int{
			models.TeamRed:  0,
			models.TeamBlue: 0,
		},
		TargetScore: map[models.Team]int{
			startingTeam:            StartingTeamCards,
			startingTeam.Opposite(): OtherTeamCards,
		},
		Clues: []models.Clue{},
	}, nil
}

// Over reports whether a winner has been decided.
func (s *Session) Over() bool {
	return s.Winner != ""
}

// onTurn reports whether (team, role) is the pair currently allowed to
// act.
func (s *Session) onTurn(team models.Team, role models.Role) bool {
	return team == s.Turn.Team && role == s.Turn.Role
}

// SubmitClue records a clue from the acting spymaster and hands the turn
// to their operatives with number+1 guesses (the extra guess lets the
// team pick up a word left over from an earlier clue). Returns false,
// changing nothing, if the clue is malformed or the actor is not the
// spymaster on turn.
func (s *Session) SubmitClue(team models.Team, role models.Role, clue models.Clue) bool {
	if s.Over() || role != models.RoleSpymaster || !s.onTurn(team, role) || !clue.Valid() {
		return false
	}

	s.Clues = append(s.Clues, clue)
	s.Turn.MaxGuesses = clue.Number + 1
	s.Turn.GuessesLeft = s.Turn.MaxGuesses
	s.Turn.Role = models.RoleOperative
	return true
}

// SubmitGuess reveals the card at cardIndex on behalf of the acting
// operative and returns its true color. A correct guess spends one guess
// from the budget; any other color ends the guessing streak outright.
// Revealing an agent card scores for that card's team, whichever side
// guessed it, and wins the game when it crosses the team's target. The
// assassin hands the win to the actor's opponents immediately and takes
// precedence over any score threshold crossed by the same guess. When
// the guess budget empties without a winner, the opposing spymaster is
// up next. Illegal guesses return ("", false) with no state change.
func (s *Session) SubmitGuess(team models.Team, role models.Role, cardIndex int) (models.CardColor, bool) {
	if s.Over() || role != models.RoleOperative || !s.onTurn(team, role) {
		return "", false
	}
	if s.Turn.GuessesLeft <= 0 || cardIndex < 0 || cardIndex >= len(s.Deck) {
		return "", false
	}
	card := &s.Deck[cardIndex]
	if card.Revealed {
		return "", false
	}

	card.Revealed = true

	if card.Color == team.Color() {
		s.Turn.GuessesLeft--
	} else {
		s.Turn.GuessesLeft = 0
	}

	if cardTeam, ok := card.Color.Team(); ok {
		s.Score[cardTeam]++
		if s.Score[cardTeam] >= s.TargetScore[cardTeam] {
			s.Winner = cardTeam
		}
	} else if card.Color == models.ColorAssassin {
		s.Winner = team.Opposite()
	}

	if s.Turn.GuessesLeft == 0 && !s.Over() {
		s.flipTurn()
	}
	return card.Color, true
}

// EndTurn lets the operatives on turn stop guessing early. At least one
// guess must already have been spent; a team cannot hand the turn back
// without attempting anything.
func (s *Session) EndTurn(team models.Team, role models.Role) bool {
	if s.Over() || role != models.RoleOperative || !s.onTurn(team, role) {
		return false
	}
	if s.Turn.GuessesLeft >= s.Turn.MaxGuesses {
		return false
	}

	s.flipTurn()
	return true
}

func (s *Session) flipTurn() {
	s.Turn = models.Turn{
		Team: s.Turn.Team.Opposite(),
		Role: models.RoleSpymaster,
	}
}
