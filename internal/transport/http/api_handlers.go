package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mkrasnov/sudoku-server/internal/core"
	"github.com/mkrasnov/sudoku-server/internal/sudoku"
)

// APIHandlers provides the plain HTTP endpoints next to the websocket.
type APIHandlers struct {
	hub     *core.Hub
	log     *zerolog.Logger
	puzzles *puzzleSource
}

// NewAPIHandlers creates the handler set.
func NewAPIHandlers(hub *core.Hub, puzzles *puzzleSource, logger *zerolog.Logger) *APIHandlers {
	return &APIHandlers{
		hub:     hub,
		log:     logger,
		puzzles: puzzles,
	}
}

// HealthResponse is the liveness probe body.
type HealthResponse struct {
	Status  string `json:"status"`
	Rooms   int    `json:"rooms"`
	Players int    `json:"players"`
}

// Health handles GET /health.
func (h *APIHandlers) Health(c *gin.Context) {
	rooms, players := h.hub.Stats()
	c.JSON(http.StatusOK, HealthResponse{Status: "OK", Rooms: rooms, Players: players})
}

// PuzzleRequest selects the difficulty for a generated puzzle.
type PuzzleRequest struct {
	Difficulty string `json:"difficulty"`
}

// PuzzleResponse carries a generated pair back to the requesting client.
// This is the only surface besides room creation where a solution travels,
// and only to the client that asked for it.
type PuzzleResponse struct {
	Puzzle   sudoku.Grid `json:"puzzle"`
	Solution sudoku.Grid `json:"solution"`
}

// GeneratePuzzle handles POST /api/puzzle for clients that cannot generate
// locally.
func (h *APIHandlers) GeneratePuzzle(c *gin.Context) {
	var req PuzzleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug().Err(err).Msg("invalid puzzle request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	puzzle, solution := h.puzzles.Generate(sudoku.ParseDifficulty(req.Difficulty))
	c.JSON(http.StatusOK, PuzzleResponse{Puzzle: puzzle, Solution: solution})
}
