package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/DADGADD/Venus/internal/constants"
	"github.com/DADGADD/Venus/internal/logging"
	"github.com/DADGADD/Venus/internal/service"

	"github.com/gin-gonic/gin"
)

type CreateSessionPayload struct {
	Mode            string   `json:"mode"`
	PlayerCount     int      `json:"player_count"`
	StartingBalance int64    `json:"starting_balance"`
	InitialTax      int64    `json:"initial_tax"`
	TaxMultiplier   float64  `json:"tax_multiplier"`
	Names           []string `json:"names"`
	AIFlags         []bool   `json:"ai_flags"`
}

// CreateSession validates the setup parameters, builds the roster and
// starts play immediately. Returns the join code and the first snapshot.
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req CreateSessionPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	cfg := service.SessionConfig{
		Mode:            req.Mode,
		PlayerCount:     req.PlayerCount,
		StartingBalance: req.StartingBalance,
		InitialTax:      req.InitialTax,
		TaxMultiplier:   req.TaxMultiplier,
		Names:           req.Names,
		AIFlags:         req.AIFlags,
	}
	s, err := service.CreateSession(cfg, h.cfg.CorporationNames, h.cfg.PlayerColors, newRand())
	if err != nil {
		if errors.Is(err, service.ErrConfigurationInvalid) {
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidConfig, constants.JSONKeyMessage: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedCreate})
		return
	}

	s.JoinCode = generateJoinCode()
	// Seat 0 may itself be AI-controlled via explicit flags; arm the
	// scanner right away in that case.
	service.ScheduleAutoAdvance(s, h.turnDelay, time.Now())

	if err := h.repo.CreateSession(s); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedCreate})
		return
	}

	logging.Info("session created", logging.Fields{
		constants.LogFieldSessionID: s.ID,
		constants.LogFieldJoinCode:  s.JoinCode,
		"mode":                      s.Mode,
		"players":                   len(s.Players),
	})
	c.JSON(http.StatusCreated, gin.H{
		"session_id": s.ID,
		"join_code":  s.JoinCode,
		"snapshot":   BuildSnapshot(s),
	})
}

// EndSession discards a session (reset to menu from any phase).
func (h *SessionHandler) EndSession(c *gin.Context) {
	short, ok := h.resolveSession(c)
	if !ok {
		return
	}
	s, err := service.EndSession(h.repo, short.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedUpdate})
		return
	}
	h.hub.Publish(s.JoinCode, BuildSnapshot(s))
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: "Session ended"})
}
