package core

import "github.com/mkrasnov/sudoku-server/internal/sudoku"

// Player is one roster entry. ID matches the owning connection and dies with
// it; a reconnect joins as a brand-new player.
type Player struct {
	ID             string
	Name           string
	Progress       int
	Grid           sudoku.Grid
	IsHost         bool
	Completed      bool
	CompletionTime int // seconds, meaningful only when Completed
}
