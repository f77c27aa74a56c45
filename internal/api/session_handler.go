package api

import (
	"math/rand"
	"time"

	"github.com/DADGADD/Venus/internal/config"
	"github.com/DADGADD/Venus/internal/storage"
)

// SessionHandler groups all session-related HTTP handlers.
type SessionHandler struct {
	repo      storage.Repository
	cfg       *config.LoadedConfig
	hub       *Hub
	turnDelay time.Duration
}

// NewSessionHandler creates a SessionHandler with the given repository,
// loaded configuration and snapshot stream hub.
func NewSessionHandler(repo storage.Repository, cfg *config.LoadedConfig, hub *Hub) *SessionHandler {
	return &SessionHandler{repo: repo, cfg: cfg, hub: hub, turnDelay: cfg.TurnDelay}
}

// newRand returns the ambient entropy source used for roster setup. The
// service and engine layers take the source as a parameter so tests seed
// their own.
func newRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
