package proto

import (
	"encoding/json"
	"time"

	"github.com/mkrasnov/sudoku-server/internal/sudoku"
)

// Inbound is the envelope for commands coming from the client.
type Inbound struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

const (
	InboundTypeCreateRoom       = "create_room"
	InboundTypeJoinRoom         = "join_room"
	InboundTypeGameUpdate       = "game_update"
	InboundTypeChatMessage      = "chat_message"
	InboundTypeSectionCompleted = "section_completed"
	InboundTypeGameCompleted    = "game_completed"
	InboundTypeGetRoomInfo      = "get_room_info"

	OutboundTypeEvent = "event"
	OutboundTypeError = "error"

	EventRoomCreated      = "room_created"
	EventPlayerJoined     = "player_joined"
	EventPlayerLeft       = "player_left"
	EventPlayerUpdate     = "player_update"
	EventChatMessage      = "chat_message"
	EventSectionCompleted = "section_completed"
	EventGameCompleted    = "game_completed"
	EventRoomInfo         = "room_info"
)

// CreateRoomData opens a new room. When puzzle or solution is absent the
// server generates a pair itself using difficulty.
type CreateRoomData struct {
	PlayerName string       `json:"playerName"`
	Puzzle     *sudoku.Grid `json:"puzzle,omitempty"`
	Solution   *sudoku.Grid `json:"solution,omitempty"`
	Difficulty string       `json:"difficulty,omitempty"`
}

// JoinRoomData requests entry into an existing room.
type JoinRoomData struct {
	RoomCode   string `json:"roomCode"`
	PlayerName string `json:"playerName"`
}

// GameUpdateData carries the sender's full working grid and progress percent.
type GameUpdateData struct {
	Grid     sudoku.Grid `json:"grid"`
	Progress int         `json:"progress"`
}

// ChatData is a chat line from the client.
type ChatData struct {
	Message string `json:"message"`
}

// SectionCompletedData announces a finished row, column, or box.
type SectionCompletedData struct {
	SectionType string `json:"sectionType"`
}

// GameCompletedData reports the sender finished the puzzle.
type GameCompletedData struct {
	Time int `json:"time"`
}

// RoomInfoRequest asks for a snapshot of a room.
type RoomInfoRequest struct {
	RoomCode string `json:"roomCode"`
}

// Outbound is the envelope for messages sent to the client.
type Outbound struct {
	Type  string `json:"type"`
	Event string `json:"event,omitempty"`
	Data  any    `json:"data,omitempty"`
	Error *Error `json:"error,omitempty"`
}

// Player mirrors a roster entry as shown to clients. The solution grid never
// appears here.
type Player struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Progress       int         `json:"progress"`
	Grid           sudoku.Grid `json:"grid"`
	IsHost         bool        `json:"isHost"`
	Completed      bool        `json:"completed,omitempty"`
	CompletionTime int         `json:"completionTime,omitempty"`
}

// RoomCreatedData confirms a fresh room to its creator.
type RoomCreatedData struct {
	RoomCode string   `json:"roomCode"`
	Players  []Player `json:"players"`
}

// PlayerJoinedData announces an arrival to the whole room.
type PlayerJoinedData struct {
	Player  string      `json:"player"`
	Players []Player    `json:"players"`
	Puzzle  sudoku.Grid `json:"puzzle"`
}

// PlayerLeftData announces a departure to the remaining players.
type PlayerLeftData struct {
	Player  string   `json:"player"`
	Players []Player `json:"players"`
}

// PlayerUpdateData carries another player's progress.
type PlayerUpdateData struct {
	PlayerName string   `json:"playerName"`
	Progress   int      `json:"progress"`
	Players    []Player `json:"players"`
}

// ChatMessageData is one delivered chat line.
type ChatMessageData struct {
	ID        int64     `json:"id"`
	Player    string    `json:"player"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// SectionCompletedEvent relays a section announcement to the others.
type SectionCompletedEvent struct {
	Player      string `json:"player"`
	SectionType string `json:"sectionType"`
}

// GameCompletedEvent announces a finisher to the whole room.
type GameCompletedEvent struct {
	Player  string   `json:"player"`
	Time    int      `json:"time"`
	Players []Player `json:"players"`
}

// RoomInfoData answers a get_room_info request.
type RoomInfoData struct {
	Players  []Player          `json:"players"`
	Messages []ChatMessageData `json:"messages"`
	Puzzle   sudoku.Grid       `json:"puzzle"`
}

// Error describes a protocol-level error response. Code is machine-readable;
// Message is what the presentation layer shows.
type Error struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}
