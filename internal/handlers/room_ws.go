// internal/handlers/room_ws.go
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jason-s-yu/codenames/internal/game"
	"github.com/jason-s-yu/codenames/internal/middleware"
	"github.com/jason-s-yu/codenames/internal/models"
)

// RoomMessage is the structure for incoming WebSocket messages once a
// player is inside a room. Type selects the action; the remaining fields
// carry that action's intent. Team/role here are only ever intents (which
// seat to claim); authorization is re-derived from the roster server-side.
type RoomMessage struct {
	Type string `json:"type"`

	Team models.Team `json:"team,omitempty"`
	Role models.Role `json:"role,omitempty"`

	Word   string `json:"word,omitempty"`
	Number int    `json:"number,omitempty"`

	CardIndex *int `json:"cardIndex,omitempty"`

	StartingTeam models.Team `json:"startingTeam,omitempty"`
}

// RoomWSHandler upgrades the HTTP connection to WebSocket for a specific
// room. It resolves the room, registers the nickname, wires the room's
// broadcast functions, sends the private join snapshot, and then runs the
// read loop until the client goes away.
func RoomWSHandler(logger *logrus.Logger, gs *GameServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Extract room ID from URL path: /room/ws/{room_id}
		pathParts := strings.Split(strings.TrimPrefix(r.URL.Path, "/room/ws/"), "/")
		if len(pathParts) < 1 || pathParts[0] == "" {
			http.Error(w, "Missing room_id in path (/room/ws/{room_id})", http.StatusBadRequest)
			return
		}
		roomID, err := uuid.Parse(pathParts[0])
		if err != nil {
			http.Error(w, "Invalid room_id format", http.StatusBadRequest)
			return
		}

		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			Subprotocols:   []string{"codenames"},
			OriginPatterns: []string{"*"}, // Adjust for production security.
		})
		if err != nil {
			logger.Warnf("WebSocket accept error for room %s: %v", roomID, err)
			return
		}
		defer c.Close(websocket.StatusInternalError, "handler finished")

		if c.Subprotocol() != "codenames" {
			c.Close(BadSubprotocolError, "client must speak the codenames subprotocol")
			return
		}
		middleware.LogWebSocketConnect(logger, r.RemoteAddr, r.URL.Path)

		// Addressing errors are surfaced to this caller only, never
		// broadcast into the room.
		room, ok := gs.RoomStore.GetRoom(roomID)
		if !ok {
			c.Close(InvalidRoomIDError, "room does not exist")
			return
		}

		nickname := strings.TrimSpace(r.URL.Query().Get("nickname"))
		if nickname == "" {
			c.Close(MissingNicknameError, "nickname query parameter is required")
			return
		}

		// Wire broadcast functions once per room instance.
		room.Mu.Lock()
		if room.BroadcastFn == nil {
			room.BroadcastFn = createBroadcastFunc(room, logger)
		}
		if room.BroadcastToPlayerFn == nil {
			room.BroadcastToPlayerFn = createBroadcastToPlayerFunc(room, logger)
		}
		room.Mu.Unlock()

		player, err := room.AddPlayer(nickname)
		if err != nil {
			if !errors.Is(err, game.ErrNicknameInUse) {
				c.Close(websocket.StatusInternalError, "join failed")
				return
			}
			// Under the keep-seats policy the nickname may belong to a
			// parked identity waiting to reclaim its seat.
			var ok bool
			player, ok = room.ReattachPlayer(nickname)
			if !ok {
				c.Close(NicknameInUseError, "nickname already in use")
				return
			}
		}

		room.Mu.Lock()
		player.Conn = c
		player.Connected = true
		room.Mu.Unlock()

		// Private join payload: the room state filtered for an
		// unassigned viewer.
		if state, ok := room.StateFor(nickname); ok {
			sendWsMessage(c, game.RoomEvent{Type: game.EventRoomState, State: &state})
		}

		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()

		readRoomMessages(ctx, c, room, nickname, logger)

		logger.Infof("Player %s WebSocket read loop exited for room %s.", nickname, roomID)
		room.HandleDisconnect(nickname)
		middleware.LogWebSocketDisconnect(logger, r.RemoteAddr, r.URL.Path, nil)
	}
}

// readRoomMessages continuously reads client messages, unmarshals them,
// and routes them to the room. Every rejected action gets a caller-only
// notice; accepted actions broadcast through the room itself.
func readRoomMessages(ctx context.Context, c *websocket.Conn, room *game.Room, playerID string, logger *logrus.Logger) {
	for {
		msgType, data, err := c.Read(ctx)
		if err != nil {
			status := websocket.CloseStatus(err)
			if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway {
				logger.Infof("WebSocket closed normally for player %s in room %s.", playerID, room.ID)
			} else if strings.Contains(err.Error(), "context canceled") {
				logger.Infof("WebSocket context canceled for player %s in room %s.", playerID, room.ID)
			} else {
				logger.Warnf("Error reading from WebSocket for player %s in room %s: %v", playerID, room.ID, err)
			}
			return
		}

		if msgType != websocket.MessageText {
			logger.Warnf("Received non-text message from player %s in room %s. Ignoring.", playerID, room.ID)
			continue
		}

		var msg RoomMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			logger.Warnf("Invalid JSON from player %s in room %s: %v", playerID, room.ID, err)
			sendWsError(c, "Invalid JSON format.")
			continue
		}

		logger.Debugf("Received action '%s' from player %s in room %s.", msg.Type, playerID, room.ID)

		switch msg.Type {
		case "join_team":
			if room.HandleJoinTeam(playerID, msg.Team, msg.Role) {
				// The claim may have won a spymaster seat; re-sync the
				// claimant with their newly filtered (or revealed) board.
				if state, ok := room.StateFor(playerID); ok {
					sendWsMessage(c, game.RoomEvent{Type: game.EventRoomState, State: &state})
				}
			} else {
				sendWsRejected(c, msg.Type)
			}

		case "clue":
			clue := models.Clue{Word: msg.Word, Number: msg.Number}
			if !room.HandleClue(playerID, clue) {
				sendWsRejected(c, msg.Type)
			}

		case "guess":
			if msg.CardIndex == nil {
				sendWsRejected(c, msg.Type)
				continue
			}
			if _, ok := room.HandleGuess(playerID, *msg.CardIndex); !ok {
				sendWsRejected(c, msg.Type)
			}

		case "end_turn":
			if !room.HandleEndTurn(playerID) {
				sendWsRejected(c, msg.Type)
			}

		case "reset":
			team := msg.StartingTeam
			if team == "" {
				team = models.TeamRed
			}
			if !team.Valid() {
				sendWsRejected(c, msg.Type)
				continue
			}
			if err := room.HandleReset(team); err != nil {
				logger.Errorf("Reset failed in room %s: %v", room.ID, err)
				sendWsError(c, "reset failed")
			}

		case "ping":
			sendWsMessage(c, map[string]string{"type": "pong"})

		default:
			logger.Warnf("Unknown action type '%s' from player %s in room %s.", msg.Type, playerID, room.ID)
			sendWsError(c, fmt.Sprintf("Unknown action type: %s", msg.Type))
		}

		select {
		case <-ctx.Done():
			return
		default:
		}
	}
}

// createBroadcastFunc returns a function suitable for Room.BroadcastFn.
// It snapshots the connected players under the room lock, then marshals
// and sends the event asynchronously so slow sockets never stall the
// game.
func createBroadcastFunc(room *game.Room, logger *logrus.Logger) func(ev game.RoomEvent) {
	return func(ev game.RoomEvent) {
		var conns []*websocket.Conn
		room.Mu.Lock()
		for _, p := range room.Roster.Players() {
			if p.Connected && p.Conn != nil {
				conns = append(conns, p.Conn)
			}
		}
		room.Mu.Unlock()

		msgBytes, err := json.Marshal(ev)
		if err != nil {
			logger.Errorf("Failed to marshal broadcast event (%s) for room %s: %v", ev.Type, room.ID, err)
			return
		}

		go func(conns []*websocket.Conn, data []byte, roomID uuid.UUID) {
			for _, conn := range conns {
				ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
				err := conn.Write(ctx, websocket.MessageText, data)
				cancel()
				if err != nil {
					logger.Warnf("Failed to write broadcast message in room %s: %v", roomID, err)
				}
			}
		}(conns, msgBytes, room.ID)
	}
}

// createBroadcastToPlayerFunc returns a function suitable for
// Room.BroadcastToPlayerFn.
func createBroadcastToPlayerFunc(room *game.Room, logger *logrus.Logger) func(playerID string, ev game.RoomEvent) {
	return func(playerID string, ev game.RoomEvent) {
		var targetConn *websocket.Conn
		room.Mu.Lock()
		if p, ok := room.Roster.Get(playerID); ok && p.Connected && p.Conn != nil {
			targetConn = p.Conn
		}
		room.Mu.Unlock()

		if targetConn == nil {
			return
		}
		msgBytes, err := json.Marshal(ev)
		if err != nil {
			logger.Errorf("Failed to marshal private event (%s) for player %s in room %s: %v", ev.Type, playerID, room.ID, err)
			return
		}
		go func(conn *websocket.Conn, data []byte) {
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			if err := conn.Write(ctx, websocket.MessageText, data); err != nil {
				logger.Warnf("Failed to write private message to player %s in room %s: %v", playerID, room.ID, err)
			}
		}(targetConn, msgBytes)
	}
}

// sendWsMessage marshals a message and sends it to the WebSocket client
// with a write timeout.
func sendWsMessage(c *websocket.Conn, message interface{}) {
	if c == nil {
		return
	}
	msgBytes, err := json.Marshal(message)
	if err != nil {
		logrus.Errorf("Error marshaling WebSocket message: %v", err)
		return
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := c.Write(writeCtx, websocket.MessageText, msgBytes); err != nil {
		status := websocket.CloseStatus(err)
		if status != websocket.StatusNormalClosure && status != websocket.StatusGoingAway {
			logrus.Warnf("Error writing WebSocket message: %v", err)
		}
	}
}

// sendWsError sends a structured error message to the client.
func sendWsError(c *websocket.Conn, errorMsg string) {
	sendWsMessage(c, map[string]interface{}{
		"type":    "error",
		"message": errorMsg,
	})
}

// sendWsRejected tells the caller their action did not apply. State is
// untouched and nothing was broadcast; this only makes the no-op
// observable.
func sendWsRejected(c *websocket.Conn, action string) {
	sendWsMessage(c, map[string]interface{}{
		"type":   "rejected",
		"action": action,
	})
}
