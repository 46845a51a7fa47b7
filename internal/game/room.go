// internal/game/room.go
package game

import (
	"sync"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/jason-s-yu/codenames/internal/models"
)

// Room is one isolated game instance: a durable Roster plus the current
// Session, guarded by a single mutex so every accepted action applies
// atomically with respect to the room. Rooms never share state; the
// store's own lock covers only creation and lookup.
//
// Authority is always re-derived here from the roster by player id. The
// gateway supplies (roomID, playerID) and intents; it never supplies the
// team or role used for legality checks.
type Room struct {
	ID uuid.UUID
	Mu sync.Mutex

	Roster  *Roster
	Session *Session

	// words is the codename pool used for the initial deal and resets.
	words []string

	// ReleaseOnDisconnect controls whether a dropped connection vacates
	// the player's seat and identity, or keeps them parked.
	ReleaseOnDisconnect bool

	// BroadcastFn sends an event to every connected player. If nil, no
	// broadcast is done.
	BroadcastFn func(ev RoomEvent)

	// BroadcastToPlayerFn sends an event to a single specific player.
	BroadcastToPlayerFn func(playerID string, ev RoomEvent)
}

// NewRoom creates a room with an empty roster and a freshly dealt
// session for the given starting team.
func NewRoom(words []string, startingTeam models.Team) (*Room, error) {
	session, err := NewSession(words, startingTeam)
	if err != nil {
		return nil, err
	}
	r := &Room{
		ID:                  uuid.New(),
		Roster:              NewRoster(),
		Session:             session,
		words:               words,
		ReleaseOnDisconnect: true,
	}
	log.Infof("Created room %s (starting team %s)", r.ID, startingTeam)
	return r, nil
}

// AddPlayer registers a nickname in the room and announces the arrival.
// Addressing errors (duplicate nickname) go back to the caller only.
func (r *Room) AddPlayer(playerID string) (*models.PlayerData, error) {
	r.Mu.Lock()
	p, err := r.Roster.Join(playerID)
	r.Mu.Unlock()
	if err != nil {
		return nil, err
	}

	log.Infof("Player %s joined room %s", playerID, r.ID)
	r.broadcast(RoomEvent{Type: EventPlayerJoin, Player: playerID})
	return p, nil
}

// RemovePlayer drops the player from the roster, vacating any seat, and
// announces the departure. Returns false if the player was unknown.
func (r *Room) RemovePlayer(playerID string) bool {
	r.Mu.Lock()
	removed := r.Roster.Leave(playerID)
	r.Mu.Unlock()
	if !removed {
		return false
	}

	log.Infof("Player %s left room %s", playerID, r.ID)
	r.broadcast(RoomEvent{Type: EventPlayerLeave, Player: playerID})
	return true
}

// ReattachPlayer reconnects a parked identity left behind by the
// keep-seats disconnect policy, seat and all. Returns false if the
// nickname is unknown or its player is still connected, so a live
// session cannot be hijacked by a second socket.
func (r *Room) ReattachPlayer(playerID string) (*models.PlayerData, bool) {
	r.Mu.Lock()
	p, ok := r.Roster.Get(playerID)
	if !ok || p.Connected {
		r.Mu.Unlock()
		return nil, false
	}
	r.Mu.Unlock()

	log.Infof("Player %s reconnected to room %s", playerID, r.ID)
	r.broadcast(RoomEvent{Type: EventPlayerJoin, Player: playerID})
	return p, true
}

// HandleDisconnect applies the room's disconnect policy. With
// ReleaseOnDisconnect the player is removed outright; otherwise only
// the connection is detached and the seat survives for the same
// nickname to reclaim.
func (r *Room) HandleDisconnect(playerID string) {
	if r.ReleaseOnDisconnect {
		r.RemovePlayer(playerID)
		return
	}
	r.Mu.Lock()
	if p, ok := r.Roster.Get(playerID); ok {
		p.Connected = false
		p.Conn = nil
	}
	r.Mu.Unlock()
	log.Infof("Player %s disconnected from room %s (seat kept)", playerID, r.ID)
}

// HandleJoinTeam claims a team seat for the player. Exactly one of two
// racing claims on the same spymaster seat wins; the loser sees a
// rejected result and no broadcast.
func (r *Room) HandleJoinTeam(playerID string, team models.Team, role models.Role) bool {
	r.Mu.Lock()
	accepted := r.Roster.AssignTeam(playerID, team, role)
	r.Mu.Unlock()
	if !accepted {
		log.Debugf("Rejected team claim by %s in room %s (%s/%s)", playerID, r.ID, team, role)
		return false
	}

	log.Infof("Player %s joined team %s as %s in room %s", playerID, team, role, r.ID)
	r.broadcast(RoomEvent{
		Type:   EventPlayerJoinTeam,
		Player: playerID,
		Team:   team,
		Role:   role,
	})
	return true
}

// HandleClue applies a clue on behalf of the player, resolving team and
// role from the roster.
func (r *Room) HandleClue(playerID string, clue models.Clue) bool {
	r.Mu.Lock()
	p, ok := r.Roster.Get(playerID)
	if !ok {
		r.Mu.Unlock()
		return false
	}
	clue.Team = p.Team
	accepted := r.Session.SubmitClue(p.Team, p.Role, clue)
	turn := r.Session.Turn
	r.Mu.Unlock()
	if !accepted {
		log.Debugf("Rejected clue from %s in room %s", playerID, r.ID)
		return false
	}

	log.Infof("Player %s gave clue %q (%d) in room %s", playerID, clue.Word, clue.Number, r.ID)
	r.broadcast(RoomEvent{
		Type:   EventNewClue,
		Player: playerID,
		Clue:   &clue,
		Turn:   &turn,
	})
	return true
}

// HandleGuess reveals a card on behalf of the player and broadcasts the
// outcome, plus the win event with the full deck if the guess decided
// the game. The revealed color is returned for the caller.
func (r *Room) HandleGuess(playerID string, cardIndex int) (models.CardColor, bool) {
	r.Mu.Lock()
	p, ok := r.Roster.Get(playerID)
	if !ok {
		r.Mu.Unlock()
		return "", false
	}
	color, accepted := r.Session.SubmitGuess(p.Team, p.Role, cardIndex)
	if !accepted {
		r.Mu.Unlock()
		log.Debugf("Rejected guess from %s in room %s (card %d)", playerID, r.ID, cardIndex)
		return "", false
	}

	turn := r.Session.Turn
	score := make(map[models.Team]int, len(r.Session.Score))
	for t, v := range r.Session.Score {
		score[t] = v
	}
	winner := r.Session.Winner
	var fullDeck []models.Card
	if winner != "" {
		fullDeck = FilterCards(r.Session.Deck, models.RoleSpymaster, true)
	}
	r.Mu.Unlock()

	log.Infof("Player %s guessed card %d (%s) in room %s", playerID, cardIndex, color, r.ID)
	idx := cardIndex
	r.broadcast(RoomEvent{
		Type:      EventNewGuess,
		Player:    playerID,
		CardIndex: &idx,
		Color:     color,
		Score:     score,
		Turn:      &turn,
	})
	if winner != "" {
		log.Infof("Team %s won in room %s", winner, r.ID)
		r.broadcast(RoomEvent{
			Type:  EventWin,
			Team:  winner,
			Cards: fullDeck,
		})
	}
	return color, true
}

// HandleEndTurn passes the turn to the other team on behalf of the
// player.
func (r *Room) HandleEndTurn(playerID string) bool {
	r.Mu.Lock()
	p, ok := r.Roster.Get(playerID)
	if !ok {
		r.Mu.Unlock()
		return false
	}
	accepted := r.Session.EndTurn(p.Team, p.Role)
	turn := r.Session.Turn
	r.Mu.Unlock()
	if !accepted {
		log.Debugf("Rejected end turn from %s in room %s", playerID, r.ID)
		return false
	}

	log.Infof("Player %s ended their turn in room %s", playerID, r.ID)
	r.broadcast(RoomEvent{Type: EventNewTurn, Turn: &turn})
	return true
}

// HandleReset replaces the session wholesale and clears all seat
// assignments while keeping player identities. Every connected viewer
// receives its own role-filtered snapshot; with seats cleared that means
// a hidden board for everyone.
func (r *Room) HandleReset(startingTeam models.Team) error {
	r.Mu.Lock()
	session, err := NewSession(r.words, startingTeam)
	if err != nil {
		r.Mu.Unlock()
		return err
	}
	r.Session = session
	r.Roster.ResetAssignments()

	type viewerState struct {
		playerID string
		state    RoomState
	}
	var states []viewerState
	for _, p := range r.Roster.Players() {
		states = append(states, viewerState{
			playerID: p.ID,
			state:    r.stateFor(p),
		})
	}
	r.Mu.Unlock()

	log.Infof("Room %s reset (starting team %s)", r.ID, startingTeam)
	for _, vs := range states {
		st := vs.state
		r.broadcastToPlayer(vs.playerID, RoomEvent{Type: EventNewGame, State: &st})
	}
	return nil
}

// StateFor builds the role-filtered snapshot for one player, used for
// the initial join payload and private re-syncs.
func (r *Room) StateFor(playerID string) (RoomState, bool) {
	r.Mu.Lock()
	defer r.Mu.Unlock()
	p, ok := r.Roster.Get(playerID)
	if !ok {
		return RoomState{}, false
	}
	return r.stateFor(p), true
}

// RevealedDeck returns the unfiltered deck for a player, but only if the
// roster says they are a spymaster. Used for the private deck reveal on
// a successful spymaster claim.
func (r *Room) RevealedDeck(playerID string) ([]models.Card, bool) {
	r.Mu.Lock()
	defer r.Mu.Unlock()
	p, ok := r.Roster.Get(playerID)
	if !ok || p.Role != models.RoleSpymaster {
		return nil, false
	}
	return FilterCards(r.Session.Deck, models.RoleSpymaster, true), true
}

// stateFor assumes the room lock is held.
func (r *Room) stateFor(p *models.PlayerData) RoomState {
	state := ProjectSession(r.Session, p.Role)
	state.RoomID = r.ID.String()
	state.Teams = r.Roster.Teams()
	for _, pl := range r.Roster.Players() {
		state.Players = append(state.Players, models.PlayerData{
			ID:   pl.ID,
			Team: pl.Team,
			Role: pl.Role,
		})
	}
	return state
}

func (r *Room) broadcast(ev RoomEvent) {
	if r.BroadcastFn != nil {
		r.BroadcastFn(ev)
	}
}

func (r *Room) broadcastToPlayer(playerID string, ev RoomEvent) {
	if r.BroadcastToPlayerFn != nil {
		r.BroadcastToPlayerFn(playerID, ev)
	}
}
