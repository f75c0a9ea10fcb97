package core

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/mkrasnov/sudoku-server/internal/sudoku"
)

// codeAttempts bounds the generate-and-check loop for fresh room codes.
// Exhaustion is practically unreachable in a 36^6 code space.
const codeAttempts = 16

// Hub is the session coordinator. It owns the room registry and the
// connection binding table; the registry lock covers only map bookkeeping,
// while each room serializes its own mutations, so operations on different
// rooms proceed independently.
type Hub struct {
	log *zerolog.Logger

	roomsMu sync.RWMutex
	rooms   map[string]*Room

	conns *connTable
}

// NewHub creates an empty coordinator.
func NewHub(logger *zerolog.Logger) *Hub {
	return &Hub{
		log:   logger,
		rooms: make(map[string]*Room),
		conns: newConnTable(),
	}
}

// CreateRoom mints a room around the given puzzle/solution pair with the
// caller as host and confirms the code to the creator only. The new room is
// fully populated before it becomes visible in the registry, so a concurrent
// join can never see it empty.
func (h *Hub) CreateRoom(c *Client, playerName string, puzzle, solution sudoku.Grid) {
	host := &Player{ID: c.ID, Name: playerName, Grid: puzzle, IsHost: true}

	var room *Room
	h.roomsMu.Lock()
	for i := 0; i < codeAttempts; i++ {
		code := newRoomCode()
		if _, taken := h.rooms[code]; taken {
			continue
		}
		room = newRoom(code, puzzle, solution)
		room.hostID = c.ID
		room.players = []*Player{host}
		room.conns[c.ID] = c
		h.rooms[code] = room
		break
	}
	h.roomsMu.Unlock()

	if room == nil {
		h.sendError(c, coreError(ErrCodeInternal, "could not allocate a room code"))
		return
	}
	h.conns.bind(c.ID, playerName, room.Code)

	h.send(c, &Event{
		Kind:     EventRoomCreated,
		RoomCode: room.Code,
		Players:  []Player{*host},
	})
	h.log.Info().Str("room", room.Code).Str("player", playerName).Msg("room created")
}

// JoinRoom adds the caller to an existing room. Failures are reported to the
// requester only; success is announced to the whole room by the room itself.
func (h *Hub) JoinRoom(c *Client, roomCode, playerName string) {
	room := h.lookup(roomCode)
	if room == nil {
		h.sendError(c, coreError(ErrCodeRoomNotFound, "Room not found"))
		return
	}
	if cerr := room.join(c, playerName); cerr != nil {
		h.sendError(c, cerr)
		return
	}
	h.conns.bind(c.ID, playerName, roomCode)
	h.log.Info().Str("room", roomCode).Str("player", playerName).Msg("player joined")
}

// UpdateGrid stores the caller's reported grid and progress. A connection
// with no binding yet (update raced ahead of a join) is silently ignored.
func (h *Hub) UpdateGrid(c *Client, grid sudoku.Grid, progress int) {
	if room := h.roomFor(c.ID); room != nil {
		room.update(c.ID, grid, progress)
	}
}

// PostChat appends a chat line to the caller's room transcript.
func (h *Hub) PostChat(c *Client, text string) {
	if room := h.roomFor(c.ID); room != nil {
		room.chat(c.ID, text)
	}
}

// SectionCompleted relays a finished row/column/box announcement.
func (h *Hub) SectionCompleted(c *Client, sectionType string) {
	if room := h.roomFor(c.ID); room != nil {
		room.announceSection(c.ID, sectionType)
	}
}

// GameCompleted marks the caller finished after the reported number of
// seconds. The time is trusted as reported.
func (h *Hub) GameCompleted(c *Client, seconds int) {
	if room := h.roomFor(c.ID); room != nil {
		room.complete(c.ID, seconds)
	}
}

// Disconnect tears down the caller's binding and roster entry. The binding is
// removed even when no room is found, so a stale entry cannot outlive its
// connection. Deleting the last player closes the room and drops it from the
// registry.
func (h *Hub) Disconnect(c *Client) {
	b, ok := h.conns.remove(c.ID)
	if !ok {
		return
	}

	room := h.lookup(b.roomCode)
	if room == nil {
		return
	}
	name, empty := room.leave(c.ID)
	if empty {
		h.roomsMu.Lock()
		delete(h.rooms, room.Code)
		h.roomsMu.Unlock()
		h.log.Info().Str("room", room.Code).Msg("room deleted")
		return
	}
	if name != "" {
		h.log.Info().Str("room", room.Code).Str("player", name).Msg("player left")
	}
}

// RoomInfo answers a read-only snapshot request to the requester only.
func (h *Hub) RoomInfo(c *Client, roomCode string) {
	room := h.lookup(roomCode)
	if room == nil {
		h.sendError(c, coreError(ErrCodeRoomNotFound, "Room not found"))
		return
	}
	players, messages, puzzle, ok := room.snapshot()
	if !ok {
		h.sendError(c, coreError(ErrCodeRoomNotFound, "Room not found"))
		return
	}
	h.send(c, &Event{
		Kind:     EventRoomInfo,
		RoomCode: roomCode,
		Players:  players,
		Chats:    messages,
		Puzzle:   &puzzle,
	})
}

// Stats reports live room and player counts for the health endpoint.
func (h *Hub) Stats() (rooms, players int) {
	h.roomsMu.RLock()
	rooms = len(h.rooms)
	h.roomsMu.RUnlock()
	return rooms, h.conns.size()
}

func (h *Hub) lookup(roomCode string) *Room {
	h.roomsMu.RLock()
	defer h.roomsMu.RUnlock()
	return h.rooms[roomCode]
}

// roomFor resolves a connection to its room through the binding table.
func (h *Hub) roomFor(connID string) *Room {
	b, ok := h.conns.lookup(connID)
	if !ok {
		return nil
	}
	return h.lookup(b.roomCode)
}

func (h *Hub) send(c *Client, ev *Event) {
	select {
	case c.Events <- ev:
	default:
		// Drop if slow consumer.
	}
}

func (h *Hub) sendError(c *Client, cerr *CoreError) {
	h.send(c, &Event{Kind: EventError, Err: cerr})
}
