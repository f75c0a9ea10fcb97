package http

import (
	"math/rand"
	"sync"
	"time"

	"github.com/mkrasnov/sudoku-server/internal/sudoku"
)

// puzzleSource guards one rand.Rand shared by the HTTP puzzle endpoint and
// the websocket create_room fallback; rand.Rand itself is not safe for
// concurrent use.
type puzzleSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func newPuzzleSource() *puzzleSource {
	return &puzzleSource{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (s *puzzleSource) Generate(d sudoku.Difficulty) (sudoku.Grid, sudoku.Grid) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sudoku.Generate(s.rng, d)
}
