package core

import (
	"sync"
	"time"

	"github.com/mkrasnov/sudoku-server/internal/sudoku"
)

// maxPlayers caps the roster of a single room.
const maxPlayers = 4

// Room groups up to four players solving one puzzle. Everything behind mu is
// mutated only by the hub, and broadcast payloads are composed inside the
// same critical section as the mutation, so no connection can observe a
// half-updated roster. Each room has its own lock; traffic in one room never
// contends with another.
type Room struct {
	Code string

	mu          sync.Mutex
	hostID      string
	players     []*Player // join order
	conns       map[string]*Client
	puzzle      sudoku.Grid
	solution    sudoku.Grid
	messages    []ChatMessage
	nextMsgID   int64
	gameStarted bool
	closed      bool
}

func newRoom(code string, puzzle, solution sudoku.Grid) *Room {
	return &Room{
		Code:     code,
		conns:    make(map[string]*Client),
		puzzle:   puzzle,
		solution: solution,
	}
}

// broadcast fans an event out to every connection except exceptID ("" for
// all). Must be called with mu held. Sends never block: a slow consumer's
// event is dropped rather than stalling the room.
func (r *Room) broadcast(ev *Event, exceptID string) {
	for id, c := range r.conns {
		if id == exceptID {
			continue
		}
		select {
		case c.Events <- ev:
		default:
			// Drop if slow consumer.
		}
	}
}

// roster returns a by-value copy of the players in join order.
func (r *Room) roster() []Player {
	out := make([]Player, 0, len(r.players))
	for _, p := range r.players {
		out = append(out, *p)
	}
	return out
}

func (r *Room) player(connID string) *Player {
	for _, p := range r.players {
		if p.ID == connID {
			return p
		}
	}
	return nil
}

// join appends a player starting from the room's puzzle and announces the
// arrival to the whole room, joiner included.
func (r *Room) join(c *Client, name string) *CoreError {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		// Lost the race against the last disconnect.
		return coreError(ErrCodeRoomNotFound, "Room not found")
	}
	if len(r.players) >= maxPlayers {
		return coreError(ErrCodeRoomFull, "Room is full")
	}

	p := &Player{ID: c.ID, Name: name, Grid: r.puzzle}
	r.players = append(r.players, p)
	r.conns[c.ID] = c

	puzzle := r.puzzle
	r.broadcast(&Event{
		Kind:     EventPlayerJoined,
		RoomCode: r.Code,
		Player:   name,
		Players:  r.roster(),
		Puzzle:   &puzzle,
	}, "")
	return nil
}

// leave removes the player behind connID. When the roster empties the room is
// flagged closed and true is returned so the hub can drop it from the
// registry; otherwise host duty falls to the longest-present player and the
// remaining connections are told who left.
func (r *Room) leave(connID string) (name string, empty bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, p := range r.players {
		if p.ID == connID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return "", false
	}
	name = r.players[idx].Name
	r.players = append(r.players[:idx], r.players[idx+1:]...)
	delete(r.conns, connID)

	if len(r.players) == 0 {
		r.closed = true
		return name, true
	}
	if r.hostID == connID {
		r.hostID = r.players[0].ID
		r.players[0].IsHost = true
	}
	r.broadcast(&Event{
		Kind:     EventPlayerLeft,
		RoomCode: r.Code,
		Player:   name,
		Players:  r.roster(),
	}, "")
	return name, false
}

// update overwrites the sender's working grid and progress and tells everyone
// else. Grid contents are taken on trust; the server does not re-derive them
// from the solution.
func (r *Room) update(connID string, grid sudoku.Grid, progress int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.player(connID)
	if p == nil {
		return
	}
	p.Grid = grid
	p.Progress = progress
	r.gameStarted = true

	r.broadcast(&Event{
		Kind:     EventPlayerUpdate,
		RoomCode: r.Code,
		Player:   p.Name,
		Progress: progress,
		Players:  r.roster(),
	}, connID)
}

// chat appends a transcript line and delivers it to the whole room, sender
// included.
func (r *Room) chat(connID, text string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.player(connID)
	if p == nil {
		return
	}
	r.nextMsgID++
	msg := ChatMessage{
		ID:        r.nextMsgID,
		Player:    p.Name,
		Text:      text,
		Timestamp: time.Now(),
	}
	r.messages = append(r.messages, msg)

	r.broadcast(&Event{
		Kind:     EventChatMessage,
		RoomCode: r.Code,
		Chat:     &msg,
	}, "")
}

// announceSection relays a finished row/column/box to everyone but the
// sender. Nothing is persisted.
func (r *Room) announceSection(connID, sectionType string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.player(connID)
	if p == nil {
		return
	}
	r.broadcast(&Event{
		Kind:     EventSectionCompleted,
		RoomCode: r.Code,
		Player:   p.Name,
		Section:  sectionType,
	}, connID)
}

// complete marks the sender finished and announces it to the whole room, the
// finisher included.
func (r *Room) complete(connID string, seconds int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.player(connID)
	if p == nil {
		return
	}
	p.Completed = true
	p.CompletionTime = seconds

	r.broadcast(&Event{
		Kind:     EventGameCompleted,
		RoomCode: r.Code,
		Player:   p.Name,
		Seconds:  seconds,
		Players:  r.roster(),
	}, "")
}

// snapshot returns copies of the roster, transcript, and puzzle, or ok=false
// when the room already closed.
func (r *Room) snapshot() (players []Player, messages []ChatMessage, puzzle sudoku.Grid, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil, nil, sudoku.Grid{}, false
	}
	players = r.roster()
	messages = append([]ChatMessage(nil), r.messages...)
	return players, messages, r.puzzle, true
}
