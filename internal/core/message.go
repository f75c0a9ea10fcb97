package core

import "time"

// ChatMessage is one transcript line. IDs are monotonic within a room and
// ordering is arrival order at the hub.
type ChatMessage struct {
	ID        int64
	Player    string
	Text      string
	Timestamp time.Time
}
