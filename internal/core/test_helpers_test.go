package core

import (
	"math/rand"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/mkrasnov/sudoku-server/internal/sudoku"
)

func newTestHub() *Hub {
	logger := zerolog.Nop()
	return NewHub(&logger)
}

func testGrids(t *testing.T) (sudoku.Grid, sudoku.Grid) {
	t.Helper()
	rng := rand.New(rand.NewSource(1))
	return sudoku.Generate(rng, sudoku.Easy)
}

// mustEvent waits for the next event of the wanted kind, skipping others.
func mustEvent(t *testing.T, ch <-chan *Event, kind EventKind) *Event {
	t.Helper()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case ev := <-ch:
			if ev == nil {
				continue
			}
			if ev.Kind == kind {
				return ev
			}
		case <-deadline:
			t.Fatalf("expected event kind %v not received", kind)
			return nil
		}
	}
}

// noEvent asserts the channel holds nothing.
func noEvent(t *testing.T, ch <-chan *Event) {
	t.Helper()
	select {
	case ev := <-ch:
		t.Fatalf("unexpected event kind %v", ev.Kind)
	default:
	}
}

func createRoom(t *testing.T, h *Hub, c *Client, name string) string {
	t.Helper()

	puzzle, solution := testGrids(t)
	h.CreateRoom(c, name, puzzle, solution)
	ev := mustEvent(t, c.Events, EventRoomCreated)
	if len(ev.RoomCode) != 6 {
		t.Fatalf("room code %q is not 6 characters", ev.RoomCode)
	}
	if len(ev.Players) != 1 || !ev.Players[0].IsHost {
		t.Fatalf("unexpected creator roster: %+v", ev.Players)
	}
	return ev.RoomCode
}
