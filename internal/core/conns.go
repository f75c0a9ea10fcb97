package core

import "sync"

// binding ties a live connection to its player identity and room. It is the
// only map from transport identity to domain identity; all room mutation
// requests are resolved through it.
type binding struct {
	playerName string
	roomCode   string
}

// connTable tracks which room each connection belongs to. Connection IDs are
// never reused; a reconnect gets a fresh ID and joins as a new player.
type connTable struct {
	mu       sync.Mutex
	bindings map[string]binding
}

func newConnTable() *connTable {
	return &connTable{bindings: make(map[string]binding)}
}

func (t *connTable) bind(connID, playerName, roomCode string) {
	t.mu.Lock()
	t.bindings[connID] = binding{playerName: playerName, roomCode: roomCode}
	t.mu.Unlock()
}

func (t *connTable) lookup(connID string) (binding, bool) {
	t.mu.Lock()
	b, ok := t.bindings[connID]
	t.mu.Unlock()
	return b, ok
}

// remove deletes the binding whether or not it exists, and reports what was
// there.
func (t *connTable) remove(connID string) (binding, bool) {
	t.mu.Lock()
	b, ok := t.bindings[connID]
	delete(t.bindings, connID)
	t.mu.Unlock()
	return b, ok
}

func (t *connTable) size() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.bindings)
}
