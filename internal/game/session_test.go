// internal/game/session_test.go
package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jason-s-yu/codenames/internal/models"
)

// newTestSession deals a fresh session for the given starting team.
func newTestSession(t *testing.T, startingTeam models.Team) *Session {
	t.Helper()
	s, err := NewSession(DefaultWords(), startingTeam)
	require.NoError(t, err)
	return s
}

// unrevealedIndex finds a card of the wanted color that has not been
// revealed yet.
func unrevealedIndex(t *testing.T, s *Session, color models.CardColor) int {
	t.Helper()
	for i, card := range s.Deck {
		if !card.Revealed && card.Color == color {
			return i
		}
	}
	t.Fatalf("no unrevealed %s card left", color)
	return -1
}

// giveClue submits a legal clue for the team on turn so the operatives
// can act.
func giveClue(t *testing.T, s *Session, number int) {
	t.Helper()
	clue := models.Clue{Team: s.Turn.Team, Word: "ocean", Number: number}
	require.True(t, s.SubmitClue(s.Turn.Team, models.RoleSpymaster, clue))
}

func TestNewSessionInitialState(t *testing.T) {
	s := newTestSession(t, models.TeamBlue)

	assert.Equal(t, models.TeamBlue, s.Turn.Team)
	assert.Equal(t, models.RoleSpymaster, s.Turn.Role)
	assert.Equal(t, 0, s.Score[models.TeamRed])
	assert.Equal(t, 0, s.Score[models.TeamBlue])
	assert.Equal(t, StartingTeamCards, s.TargetScore[models.TeamBlue], "starting team needs 9")
	assert.Equal(t, OtherTeamCards, s.TargetScore[models.TeamRed], "other team needs 8")
	assert.Empty(t, s.Clues)
	assert.False(t, s.Over())
}

func TestSubmitClueSetsGuessBudget(t *testing.T) {
	s := newTestSession(t, models.TeamRed)

	clue := models.Clue{Team: models.TeamRed, Word: "ocean", Number: 3}
	require.True(t, s.SubmitClue(models.TeamRed, models.RoleSpymaster, clue))

	// number+1: one bonus guess beyond the stated number.
	assert.Equal(t, 4, s.Turn.MaxGuesses)
	assert.Equal(t, 4, s.Turn.GuessesLeft)
	assert.Equal(t, models.RoleOperative, s.Turn.Role)
	assert.Equal(t, models.TeamRed, s.Turn.Team)
	require.Len(t, s.Clues, 1)
	assert.Equal(t, clue, s.Clues[0])
}

func TestSubmitClueRejections(t *testing.T) {
	s := newTestSession(t, models.TeamRed)
	valid := models.Clue{Team: models.TeamRed, Word: "ocean", Number: 2}

	// Wrong team and wrong role are no-ops.
	assert.False(t, s.SubmitClue(models.TeamBlue, models.RoleSpymaster, valid))
	assert.False(t, s.SubmitClue(models.TeamRed, models.RoleOperative, valid))

	// Malformed clues are no-ops.
	assert.False(t, s.SubmitClue(models.TeamRed, models.RoleSpymaster, models.Clue{Word: "", Number: 2}))
	assert.False(t, s.SubmitClue(models.TeamRed, models.RoleSpymaster, models.Clue{Word: "ocean", Number: 0}))
	assert.False(t, s.SubmitClue(models.TeamRed, models.RoleSpymaster, models.Clue{Word: "ocean", Number: 10}))

	assert.Empty(t, s.Clues, "rejected clues must not be recorded")
	assert.Equal(t, models.RoleSpymaster, s.Turn.Role, "rejected clues must not advance the turn")

	// Terminal session rejects everything.
	s.Winner = models.TeamBlue
	assert.False(t, s.SubmitClue(models.TeamRed, models.RoleSpymaster, valid))
}

func TestSubmitGuessOwnCard(t *testing.T) {
	s := newTestSession(t, models.TeamRed)
	giveClue(t, s, 2)

	idx := unrevealedIndex(t, s, models.ColorRed)
	color, ok := s.SubmitGuess(models.TeamRed, models.RoleOperative, idx)
	require.True(t, ok)

	assert.Equal(t, models.ColorRed, color)
	assert.True(t, s.Deck[idx].Revealed)
	assert.Equal(t, 2, s.Turn.GuessesLeft, "own-team guess spends one guess")
	assert.Equal(t, 1, s.Score[models.TeamRed])
	assert.Equal(t, models.TeamRed, s.Turn.Team, "turn continues while budget remains")
	assert.Equal(t, models.RoleOperative, s.Turn.Role)
}

func TestSubmitGuessOpponentCard(t *testing.T) {
	s := newTestSession(t, models.TeamRed)
	giveClue(t, s, 2)

	idx := unrevealedIndex(t, s, models.ColorBlue)
	color, ok := s.SubmitGuess(models.TeamRed, models.RoleOperative, idx)
	require.True(t, ok)

	assert.Equal(t, models.ColorBlue, color)
	assert.Equal(t, 0, s.Turn.GuessesLeft, "wrong guess ends the streak")
	assert.Equal(t, 1, s.Score[models.TeamBlue], "opponent still scores the reveal")
	assert.Equal(t, 0, s.Score[models.TeamRed])
	assert.Equal(t, models.TeamBlue, s.Turn.Team)
	assert.Equal(t, models.RoleSpymaster, s.Turn.Role)
}

func TestSubmitGuessBystander(t *testing.T) {
	s := newTestSession(t, models.TeamRed)
	giveClue(t, s, 2)

	idx := unrevealedIndex(t, s, models.ColorBystander)
	color, ok := s.SubmitGuess(models.TeamRed, models.RoleOperative, idx)
	require.True(t, ok)

	assert.Equal(t, models.ColorBystander, color)
	assert.Equal(t, 0, s.Turn.GuessesLeft)
	assert.Equal(t, 0, s.Score[models.TeamRed])
	assert.Equal(t, 0, s.Score[models.TeamBlue])
	assert.Equal(t, models.TeamBlue, s.Turn.Team)
	assert.Equal(t, models.RoleSpymaster, s.Turn.Role)
	assert.False(t, s.Over())
}

func TestSubmitGuessAssassin(t *testing.T) {
	s := newTestSession(t, models.TeamRed)
	giveClue(t, s, 2)

	idx := unrevealedIndex(t, s, models.ColorAssassin)
	color, ok := s.SubmitGuess(models.TeamRed, models.RoleOperative, idx)
	require.True(t, ok)

	assert.Equal(t, models.ColorAssassin, color)
	assert.Equal(t, models.TeamBlue, s.Winner, "assassin hands the win to the opponents")
	assert.True(t, s.Over())
	assert.Equal(t, 0, s.Score[models.TeamRed])
	assert.Equal(t, 0, s.Score[models.TeamBlue])
}

func TestAssassinOverridesPendingScore(t *testing.T) {
	s := newTestSession(t, models.TeamRed)
	// Blue sits one reveal away from its target; red pulling the
	// assassin must still hand blue the win via the assassin rule, with
	// no score movement.
	s.Score[models.TeamBlue] = s.TargetScore[models.TeamBlue] - 1
	giveClue(t, s, 1)

	idx := unrevealedIndex(t, s, models.ColorAssassin)
	_, ok := s.SubmitGuess(models.TeamRed, models.RoleOperative, idx)
	require.True(t, ok)

	assert.Equal(t, models.TeamBlue, s.Winner)
	assert.Equal(t, s.TargetScore[models.TeamBlue]-1, s.Score[models.TeamBlue], "assassin reveal never scores")
}

func TestWinExactlyAtThreshold(t *testing.T) {
	s := newTestSession(t, models.TeamRed)
	giveClue(t, s, 9) // budget 10, enough to clear the board

	for i := 0; i < StartingTeamCards; i++ {
		require.False(t, s.Over(), "winner must not be set before the threshold is crossed")
		idx := unrevealedIndex(t, s, models.ColorRed)
		_, ok := s.SubmitGuess(models.TeamRed, models.RoleOperative, idx)
		require.True(t, ok)
	}

	assert.Equal(t, models.TeamRed, s.Winner)
	assert.Equal(t, StartingTeamCards, s.Score[models.TeamRed])
}

func TestOpponentColorCanWinForOpponent(t *testing.T) {
	s := newTestSession(t, models.TeamRed)
	s.Score[models.TeamBlue] = s.TargetScore[models.TeamBlue] - 1
	giveClue(t, s, 1)

	idx := unrevealedIndex(t, s, models.ColorBlue)
	color, ok := s.SubmitGuess(models.TeamRed, models.RoleOperative, idx)
	require.True(t, ok)

	assert.Equal(t, models.ColorBlue, color)
	assert.Equal(t, models.TeamBlue, s.Winner, "revealing the opponent's last agent wins it for them")
}

func TestSubmitGuessRejections(t *testing.T) {
	s := newTestSession(t, models.TeamRed)

	// No clue yet: guess budget is zero.
	_, ok := s.SubmitGuess(models.TeamRed, models.RoleOperative, 0)
	assert.False(t, ok)

	giveClue(t, s, 2)

	// Wrong team, wrong role, out-of-range index.
	_, ok = s.SubmitGuess(models.TeamBlue, models.RoleOperative, 0)
	assert.False(t, ok)
	_, ok = s.SubmitGuess(models.TeamRed, models.RoleSpymaster, 0)
	assert.False(t, ok)
	_, ok = s.SubmitGuess(models.TeamRed, models.RoleOperative, -1)
	assert.False(t, ok)
	_, ok = s.SubmitGuess(models.TeamRed, models.RoleOperative, DeckSize)
	assert.False(t, ok)

	// Already-revealed card.
	idx := unrevealedIndex(t, s, models.ColorRed)
	_, ok = s.SubmitGuess(models.TeamRed, models.RoleOperative, idx)
	require.True(t, ok)
	_, ok = s.SubmitGuess(models.TeamRed, models.RoleOperative, idx)
	assert.False(t, ok, "re-guessing a revealed card is a no-op")
	assert.Equal(t, 1, s.Score[models.TeamRed], "rejected guess must not score")
}

func TestRejectedGuessLeavesStateUntouched(t *testing.T) {
	s := newTestSession(t, models.TeamRed)
	giveClue(t, s, 2)

	before := ProjectSession(s, models.RoleSpymaster)
	_, ok := s.SubmitGuess(models.TeamBlue, models.RoleOperative, unrevealedIndex(t, s, models.ColorRed))
	require.False(t, ok)
	after := ProjectSession(s, models.RoleSpymaster)

	assert.Equal(t, before, after, "rejected action must not partially mutate the session")
}

func TestEndTurnRequiresAtLeastOneGuess(t *testing.T) {
	s := newTestSession(t, models.TeamRed)
	giveClue(t, s, 2)

	// No guess spent yet.
	assert.False(t, s.EndTurn(models.TeamRed, models.RoleOperative))
	assert.Equal(t, models.TeamRed, s.Turn.Team)

	idx := unrevealedIndex(t, s, models.ColorRed)
	_, ok := s.SubmitGuess(models.TeamRed, models.RoleOperative, idx)
	require.True(t, ok)

	// Wrong actors still rejected.
	assert.False(t, s.EndTurn(models.TeamBlue, models.RoleOperative))
	assert.False(t, s.EndTurn(models.TeamRed, models.RoleSpymaster))

	require.True(t, s.EndTurn(models.TeamRed, models.RoleOperative))
	assert.Equal(t, models.TeamBlue, s.Turn.Team)
	assert.Equal(t, models.RoleSpymaster, s.Turn.Role)
}
