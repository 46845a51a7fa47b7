package game

import (
	"sync"

	"github.com/google/uuid"
)

// RoomStore is the registry of live rooms, in memory only. Its lock
// covers creation and lookup; each room serializes its own operations.
type RoomStore struct {
	mu    sync.Mutex
	rooms map[uuid.UUID]*Room
}

func NewRoomStore() *RoomStore {
	return &RoomStore{
		rooms: make(map[uuid.UUID]*Room),
	}
}

func (s *RoomStore) AddRoom(room *Room) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms[room.ID] = room
}

func (s *RoomStore) GetRoom(id uuid.UUID) (*Room, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, exists := s.rooms[id]
	return r, exists
}

func (s *RoomStore) DeleteRoom(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rooms, id)
}

// RoomIDs lists the live room ids, typically for debugging or listing.
func (s *RoomStore) RoomIDs() []uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]uuid.UUID, 0, len(s.rooms))
	for id := range s.rooms {
		ids = append(ids, id)
	}
	return ids
}
