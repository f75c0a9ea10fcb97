package core

import (
	"fmt"
	"testing"

	"github.com/mkrasnov/sudoku-server/internal/sudoku"
)

func TestCreateRoomConfirmsCreatorOnly(t *testing.T) {
	hub := newTestHub()
	alice := NewClient("a")

	code := createRoom(t, hub, alice, "alice")

	rooms, players := hub.Stats()
	if rooms != 1 || players != 1 {
		t.Fatalf("stats after create: rooms=%d players=%d", rooms, players)
	}
	if code == "" {
		t.Fatal("empty room code")
	}
	noEvent(t, alice.Events)
}

func TestJoinUnknownRoomReturnsNotFound(t *testing.T) {
	hub := newTestHub()
	bob := NewClient("b")

	hub.JoinRoom(bob, "NOSUCH", "bob")

	ev := mustEvent(t, bob.Events, EventError)
	if ev.Err == nil || ev.Err.Code != ErrCodeRoomNotFound {
		t.Fatalf("expected room_not_found, got %+v", ev.Err)
	}
}

func TestJoinBroadcastsToWholeRoom(t *testing.T) {
	hub := newTestHub()
	alice := NewClient("a")
	bob := NewClient("b")

	code := createRoom(t, hub, alice, "alice")
	hub.JoinRoom(bob, code, "bob")

	for _, c := range []*Client{alice, bob} {
		ev := mustEvent(t, c.Events, EventPlayerJoined)
		if ev.Player != "bob" {
			t.Fatalf("joined player = %q", ev.Player)
		}
		if len(ev.Players) != 2 || ev.Players[0].Name != "alice" || ev.Players[1].Name != "bob" {
			t.Fatalf("unexpected roster: %+v", ev.Players)
		}
		if ev.Puzzle == nil {
			t.Fatal("player_joined carries no puzzle")
		}
	}
}

func TestRoomCapacityFourPlayers(t *testing.T) {
	hub := newTestHub()
	alice := NewClient("a")
	code := createRoom(t, hub, alice, "alice")

	for i := 0; i < 3; i++ {
		c := NewClient(fmt.Sprintf("c%d", i))
		hub.JoinRoom(c, code, fmt.Sprintf("player%d", i))
		mustEvent(t, c.Events, EventPlayerJoined)
	}

	fifth := NewClient("e")
	hub.JoinRoom(fifth, code, "eve")

	ev := mustEvent(t, fifth.Events, EventError)
	if ev.Err == nil || ev.Err.Code != ErrCodeRoomFull {
		t.Fatalf("expected room_full, got %+v", ev.Err)
	}

	probe := NewClient("p")
	hub.RoomInfo(probe, code)
	info := mustEvent(t, probe.Events, EventRoomInfo)
	if len(info.Players) != 4 {
		t.Fatalf("roster changed by rejected join: %d players", len(info.Players))
	}
}

func TestHostFailoverOnDisconnect(t *testing.T) {
	hub := newTestHub()
	alice := NewClient("a")
	bob := NewClient("b")

	code := createRoom(t, hub, alice, "alice")
	hub.JoinRoom(bob, code, "bob")
	mustEvent(t, bob.Events, EventPlayerJoined)

	hub.Disconnect(alice)

	ev := mustEvent(t, bob.Events, EventPlayerLeft)
	if ev.Player != "alice" {
		t.Fatalf("departed player = %q", ev.Player)
	}
	if len(ev.Players) != 1 || ev.Players[0].Name != "bob" || !ev.Players[0].IsHost {
		t.Fatalf("expected bob promoted to host, got %+v", ev.Players)
	}
}

func TestExactlyOneHostAfterChurn(t *testing.T) {
	hub := newTestHub()
	alice := NewClient("a")
	bob := NewClient("b")
	carol := NewClient("c")

	code := createRoom(t, hub, alice, "alice")
	hub.JoinRoom(bob, code, "bob")
	hub.JoinRoom(carol, code, "carol")
	hub.Disconnect(alice)
	hub.Disconnect(bob)

	probe := NewClient("p")
	hub.RoomInfo(probe, code)
	info := mustEvent(t, probe.Events, EventRoomInfo)

	hosts := 0
	for _, p := range info.Players {
		if p.IsHost {
			hosts++
		}
	}
	if hosts != 1 {
		t.Fatalf("expected exactly one host, got %d in %+v", hosts, info.Players)
	}
}

func TestLastDisconnectDeletesRoom(t *testing.T) {
	hub := newTestHub()
	alice := NewClient("a")
	code := createRoom(t, hub, alice, "alice")

	hub.Disconnect(alice)

	probe := NewClient("p")
	hub.RoomInfo(probe, code)
	ev := mustEvent(t, probe.Events, EventError)
	if ev.Err == nil || ev.Err.Code != ErrCodeRoomNotFound {
		t.Fatalf("expected room_not_found after last disconnect, got %+v", ev.Err)
	}

	rooms, players := hub.Stats()
	if rooms != 0 || players != 0 {
		t.Fatalf("stats after last disconnect: rooms=%d players=%d", rooms, players)
	}
}

func TestChatOrderingAndAudience(t *testing.T) {
	hub := newTestHub()
	alice := NewClient("a")
	bob := NewClient("b")
	carol := NewClient("c")

	code := createRoom(t, hub, alice, "alice")
	hub.JoinRoom(bob, code, "bob")
	hub.JoinRoom(carol, code, "carol")

	hub.PostChat(alice, "M1")
	hub.PostChat(bob, "M2")
	hub.PostChat(carol, "M3")

	for _, c := range []*Client{alice, bob, carol} {
		var lastID int64
		for _, want := range []string{"M1", "M2", "M3"} {
			ev := mustEvent(t, c.Events, EventChatMessage)
			if ev.Chat == nil || ev.Chat.Text != want {
				t.Fatalf("expected chat %q, got %+v", want, ev.Chat)
			}
			if ev.Chat.ID <= lastID {
				t.Fatalf("chat ids not monotonic: %d after %d", ev.Chat.ID, lastID)
			}
			lastID = ev.Chat.ID
		}
	}

	probe := NewClient("p")
	hub.RoomInfo(probe, code)
	info := mustEvent(t, probe.Events, EventRoomInfo)
	if len(info.Chats) != 3 || info.Chats[0].Text != "M1" || info.Chats[2].Text != "M3" {
		t.Fatalf("unexpected transcript: %+v", info.Chats)
	}
}

func TestUpdateGridSkipsSender(t *testing.T) {
	hub := newTestHub()
	alice := NewClient("a")
	bob := NewClient("b")

	code := createRoom(t, hub, alice, "alice")
	hub.JoinRoom(bob, code, "bob")
	mustEvent(t, alice.Events, EventPlayerJoined)
	mustEvent(t, bob.Events, EventPlayerJoined)

	var grid sudoku.Grid
	grid[0][0] = 5
	hub.UpdateGrid(alice, grid, 12)

	ev := mustEvent(t, bob.Events, EventPlayerUpdate)
	if ev.Player != "alice" || ev.Progress != 12 {
		t.Fatalf("unexpected update event: %+v", ev)
	}
	if ev.Players[0].Grid[0][0] != 5 {
		t.Fatalf("roster snapshot missing the updated grid")
	}
	noEvent(t, alice.Events)
}

func TestSectionCompletedSkipsSender(t *testing.T) {
	hub := newTestHub()
	alice := NewClient("a")
	bob := NewClient("b")

	code := createRoom(t, hub, alice, "alice")
	hub.JoinRoom(bob, code, "bob")
	mustEvent(t, alice.Events, EventPlayerJoined)
	mustEvent(t, bob.Events, EventPlayerJoined)

	hub.SectionCompleted(bob, "row")

	ev := mustEvent(t, alice.Events, EventSectionCompleted)
	if ev.Player != "bob" || ev.Section != "row" {
		t.Fatalf("unexpected section event: %+v", ev)
	}
	noEvent(t, bob.Events)
}

func TestGameCompletedReachesEveryone(t *testing.T) {
	hub := newTestHub()
	alice := NewClient("a")
	bob := NewClient("b")

	code := createRoom(t, hub, alice, "alice")
	hub.JoinRoom(bob, code, "bob")

	hub.GameCompleted(bob, 321)

	for _, c := range []*Client{alice, bob} {
		ev := mustEvent(t, c.Events, EventGameCompleted)
		if ev.Player != "bob" || ev.Seconds != 321 {
			t.Fatalf("unexpected completion event: %+v", ev)
		}
		var finisher *Player
		for i := range ev.Players {
			if ev.Players[i].Name == "bob" {
				finisher = &ev.Players[i]
			}
		}
		if finisher == nil || !finisher.Completed || finisher.CompletionTime != 321 {
			t.Fatalf("roster does not reflect completion: %+v", ev.Players)
		}
	}
}

func TestCommandsBeforeJoinAreIgnored(t *testing.T) {
	hub := newTestHub()
	stray := NewClient("s")

	var grid sudoku.Grid
	hub.UpdateGrid(stray, grid, 50)
	hub.PostChat(stray, "hello?")
	hub.SectionCompleted(stray, "box")
	hub.GameCompleted(stray, 1)
	hub.Disconnect(stray)

	noEvent(t, stray.Events)
	rooms, players := hub.Stats()
	if rooms != 0 || players != 0 {
		t.Fatalf("stray commands mutated state: rooms=%d players=%d", rooms, players)
	}
}

func TestRoomsDoNotShareState(t *testing.T) {
	hub := newTestHub()
	alice := NewClient("a")
	bob := NewClient("b")

	codeA := createRoom(t, hub, alice, "alice")
	codeB := createRoom(t, hub, bob, "bob")
	if codeA == codeB {
		t.Fatalf("two rooms share code %s", codeA)
	}

	hub.PostChat(alice, "only for room A")
	mustEvent(t, alice.Events, EventChatMessage)
	noEvent(t, bob.Events)
}
