// internal/handlers/room.go
package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/jason-s-yu/codenames/internal/game"
	"github.com/jason-s-yu/codenames/internal/models"
)

// createRoomRequest is the POST /room/create payload. Nickname is the
// creator's intended id; the actual join happens over the websocket.
type createRoomRequest struct {
	Nickname     string      `json:"nickname"`
	StartingTeam models.Team `json:"startingTeam"`
}

type createRoomResponse struct {
	RoomID string `json:"room_id"`
}

// CreateRoomHandler builds a new in-memory room and returns its id. The
// creator then connects to /room/ws/{room_id} like everyone else.
func CreateRoomHandler(gs *GameServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req createRoomRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			http.Error(w, "bad room request payload", http.StatusBadRequest)
			return
		}
		if req.StartingTeam == "" {
			req.StartingTeam = models.TeamRed
		}
		if !req.StartingTeam.Valid() {
			http.Error(w, "invalid starting team", http.StatusBadRequest)
			return
		}

		room, err := game.NewRoom(gs.Words, req.StartingTeam)
		if err != nil {
			http.Error(w, "failed to create room: "+err.Error(), http.StatusInternalServerError)
			return
		}
		room.ReleaseOnDisconnect = gs.ReleaseOnDisconnect
		gs.RoomStore.AddRoom(room)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(createRoomResponse{RoomID: room.ID.String()})
	}
}

// ListRoomsHandler returns the live room ids, for debugging.
func ListRoomsHandler(gs *GameServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ids := gs.RoomStore.RoomIDs()
		out := make([]string, 0, len(ids))
		for _, id := range ids {
			out = append(out, id.String())
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string][]string{"rooms": out})
	}
}

// RoomQRHandler serves a PNG QR code of the join URL for a room, so a
// phone can scan its way into the game.
func RoomQRHandler(gs *GameServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idStr := strings.TrimPrefix(r.URL.Path, "/room/qr/")
		roomID, err := uuid.Parse(idStr)
		if err != nil {
			http.Error(w, "invalid room_id", http.StatusBadRequest)
			return
		}
		if _, ok := gs.RoomStore.GetRoom(roomID); !ok {
			http.Error(w, "room not found", http.StatusNotFound)
			return
		}

		joinURL := gs.BaseURL + "/room/ws/" + roomID.String()
		png, err := qrcode.Encode(joinURL, qrcode.Medium, 256)
		if err != nil {
			http.Error(w, "failed to encode qr code", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Write(png)
	}
}
