package service

import (
	"errors"

	"github.com/DADGADD/Venus/internal/game"
)

var (
	ErrSessionNotFound      = errors.New("session not found")
	ErrSessionNotPlaying    = errors.New("session is not in the playing phase")
	ErrConfigurationInvalid = errors.New("invalid session configuration")
)

// SessionRepo is the narrow persistence surface the service layer needs.
// The storage package's Repository satisfies it; tests use in-memory mocks.
type SessionRepo interface {
	GetSessionByID(id uint) (*game.Session, error)
	UpdateSession(s *game.Session) error
	UpdateStatsOnSessionEnd(s *game.Session) error
}

// finishStats counts the match outcome into the corporation profiles once,
// the first time the session is observed in the winner phase.
func finishStats(repo SessionRepo, s *game.Session) {
	if s.Phase != game.PhaseWinner || s.StatsCounted {
		return
	}
	_ = repo.UpdateStatsOnSessionEnd(s)
	s.StatsCounted = true
}
