// internal/game/deck.go
package game

import (
	"errors"
	"math/rand"
	"time"

	"github.com/jason-s-yu/codenames/internal/models"
)

// Board composition. The starting team gets one extra agent because it
// moves first; target scores mirror this split.
const (
	DeckSize          = 25
	StartingTeamCards = 9
	OtherTeamCards    = 8
	BystanderCards    = 7
	AssassinCards     = 1
)

// ErrInsufficientWords is returned when the word list cannot cover a
// full board of distinct codenames.
var ErrInsufficientWords = errors.New("word list has fewer than 25 words")

// GenerateDeck builds a fresh shuffled board: 25 distinct codenames drawn
// without replacement from words, labeled with exactly 9 cards of the
// starting team's color, 8 of the other team's, 7 bystanders and 1
// assassin. Color positions come from an unbiased permutation, so the
// multiset is exact regardless of where the shuffle lands.
func GenerateDeck(words []string, startingTeam models.Team) ([]models.Card, error) {
	if len(words) < DeckSize {
		return nil, ErrInsufficientWords
	}

	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	pool := make([]string, len(words))
	copy(pool, words)
	r.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	codenames := pool[:DeckSize]

	colors := make([]models.CardColor, DeckSize)
	for i, slot := range r.Perm(DeckSize) {
		switch {
		case i < StartingTeamCards:
			colors[slot] = startingTeam.Color()
		case i < StartingTeamCards+OtherTeamCards:
			colors[slot] = startingTeam.Opposite().Color()
		case i < StartingTeamCards+OtherTeamCards+BystanderCards:
			colors[slot] = models.ColorBystander
		default:
			colors[slot] = models.ColorAssassin
		}
	}

	deck := make([]models.Card, DeckSize)
	for i := range deck {
		deck[i] = models.Card{
			Codename: codenames[i],
			Color:    colors[i],
		}
	}
	return deck, nil
}
