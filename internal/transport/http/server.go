package http

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mkrasnov/sudoku-server/internal/config"
	"github.com/mkrasnov/sudoku-server/internal/core"
)

// NewServer builds the HTTP server: health probe, puzzle endpoint, and the
// websocket upgrade route.
func NewServer(hub *core.Hub, cfg config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	puzzles := newPuzzleSource()
	api := NewAPIHandlers(hub, puzzles, logger)
	router.GET("/health", api.Health)
	router.POST("/api/puzzle", api.GeneratePuzzle)

	ws := NewWSHandler(hub, puzzles, logger)
	router.GET("/ws", gin.WrapH(ws))

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}
