package api

import (
	"errors"
	"net/http"

	"github.com/DADGADD/Venus/internal/constants"
	"github.com/DADGADD/Venus/internal/engine"
	"github.com/DADGADD/Venus/internal/game"
	"github.com/DADGADD/Venus/internal/logging"
	"github.com/DADGADD/Venus/internal/service"

	"github.com/gin-gonic/gin"
)

type ActionRequest struct {
	ActionID   string `json:"action_id"`
	TargetUUID string `json:"target_uuid"`
}

// InvokeAction executes one action for the session's current player and
// ends the turn.
func (h *SessionHandler) InvokeAction(c *gin.Context) {
	short, ok := h.resolveSession(c)
	if !ok {
		return
	}
	var req ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	s, err := service.InvokeAction(h.repo, short.ID, game.ActionID(req.ActionID), req.TargetUUID, h.turnDelay)
	if err != nil {
		h.rejectEngineError(c, err, constants.ErrActionRejected)
		return
	}

	logging.Info("action invoked", logging.Fields{
		constants.LogFieldSessionID: s.ID,
		constants.LogFieldAction:    req.ActionID,
		constants.LogFieldMonth:     s.Month,
		constants.LogFieldSerial:    s.TurnSerial,
	})
	h.hub.Publish(s.JoinCode, BuildSnapshot(s))
	c.JSON(http.StatusOK, BuildSnapshot(s))
}

// SkipTurn ends the current human player's turn without consuming an action.
func (h *SessionHandler) SkipTurn(c *gin.Context) {
	short, ok := h.resolveSession(c)
	if !ok {
		return
	}
	s, err := service.SkipTurn(h.repo, short.ID, h.turnDelay)
	if err != nil {
		h.rejectEngineError(c, err, constants.ErrSkipRejected)
		return
	}

	h.hub.Publish(s.JoinCode, BuildSnapshot(s))
	c.JSON(http.StatusOK, BuildSnapshot(s))
}

// rejectEngineError maps service and engine rejections onto HTTP statuses.
// Rejections never mutate state, so every branch is safe to retry.
func (h *SessionHandler) rejectEngineError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrSessionNotFound})
	case errors.Is(err, service.ErrSessionNotPlaying), errors.Is(err, engine.ErrNotPlaying):
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrSessionNotPlaying})
	case errors.Is(err, engine.ErrUnknownAction),
		errors.Is(err, engine.ErrTargetRequired),
		errors.Is(err, engine.ErrInvalidTarget):
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: err.Error()})
	case errors.Is(err, engine.ErrActorNotActive),
		errors.Is(err, engine.ErrActionAlreadyUsed),
		errors.Is(err, engine.ErrLoanOutstanding),
		errors.Is(err, engine.ErrSkipNotAllowed):
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: fallback})
	}
}
