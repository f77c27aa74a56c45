package api

import (
	"net/http"
	"strconv"

	"github.com/DADGADD/Venus/internal/constants"
	"github.com/DADGADD/Venus/internal/game"

	"github.com/gin-gonic/gin"
)

// resolveSession validates the path join code and resolves it to the
// stored session (shallow, without associations).
func (h *SessionHandler) resolveSession(c *gin.Context) (*game.Session, bool) {
	code := normalizeJoinCode(c.Param("sessionCode"))
	if code == "" || !joinCodeRegex.MatchString(code) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidSessionID})
		return nil, false
	}
	s, err := h.repo.FindSessionByJoinCode(code)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrSessionNotFound})
		return nil, false
	}
	return s, true
}

// GetSession returns the full snapshot for a session.
func (h *SessionHandler) GetSession(c *gin.Context) {
	short, ok := h.resolveSession(c)
	if !ok {
		return
	}
	s, err := h.repo.GetSessionByID(short.ID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrSessionNotFound})
		return
	}
	c.JSON(http.StatusOK, BuildSnapshot(s))
}

// ListLeaderboard returns the top corporations by wins (desc), top 10 by default.
func (h *SessionHandler) ListLeaderboard(c *gin.Context) {
	// optional ?limit=N
	limit := 10
	if s := c.Query("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	profiles, err := h.repo.GetTopCorporations(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchBoard})
		return
	}
	c.JSON(http.StatusOK, profiles)
}
