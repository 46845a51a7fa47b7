// internal/handlers/ws_codes.go
package handlers

// Custom WebSocket close codes used by the room handlers. These provide
// more specific reasons for closure than standard codes.
const (
	BadSubprotocolError  = 3000 // Client connected with an unsupported subprotocol.
	NicknameInUseError   = 3001 // Requested nickname is already taken in the room.
	InvalidRoomIDError   = 3002 // Target room ID in the WS URL does not exist or is invalid.
	MissingNicknameError = 3003 // No nickname supplied on the join URL.
)
