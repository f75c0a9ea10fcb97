package core

import "github.com/mkrasnov/sudoku-server/internal/sudoku"

// EventKind is a notification the core emits to clients.
type EventKind int

const (
	// EventRoomCreated confirms room creation to the creator only.
	EventRoomCreated EventKind = iota
	// EventPlayerJoined notifies the whole room, joiner included.
	EventPlayerJoined
	// EventPlayerLeft notifies the players remaining after a departure.
	EventPlayerLeft
	// EventPlayerUpdate carries grid progress to everyone but the sender.
	EventPlayerUpdate
	// EventChatMessage delivers a chat line to the whole room.
	EventChatMessage
	// EventSectionCompleted announces a finished row/column/box to everyone
	// but the sender.
	EventSectionCompleted
	// EventGameCompleted announces a finished puzzle to the whole room.
	EventGameCompleted
	// EventRoomInfo answers a snapshot request, requester only.
	EventRoomInfo
	// EventError reports a domain error to the requester only.
	EventError
)

// Event describes what happened in a room. Roster and transcript fields are
// copies taken inside the room's critical section, so receivers never observe
// later mutations.
type Event struct {
	Kind     EventKind
	RoomCode string
	Player   string // display name of the acting player
	Players  []Player
	Puzzle   *sudoku.Grid
	Progress int
	Chat     *ChatMessage
	Chats    []ChatMessage // transcript, for EventRoomInfo
	Section  string
	Seconds  int
	Err      *CoreError
}
