package storage

import (
	"time"

	"github.com/DADGADD/Venus/internal/game"
)

// AutoTurnClaim identifies one session turn the background scanner claimed
// for automatic resolution.
type AutoTurnClaim struct {
	SessionID  uint
	TurnSerial int
}

type Repository interface {
	CreateSession(s *game.Session) error
	GetSessionByID(id uint) (*game.Session, error)
	FindSessionByJoinCode(code string) (*game.Session, error)
	UpdateSession(s *game.Session) error

	// ClaimDueAutoTurns returns sessions whose auto-advance deadline is at
	// or before now and atomically disarms them, so a claim is handed out
	// once even with several scanner instances running.
	ClaimDueAutoTurns(now time.Time, limit int) ([]AutoTurnClaim, error)

	// UpdateStatsOnSessionEnd counts a finished session into the
	// corporation profiles (games played for all, a win for the winner).
	UpdateStatsOnSessionEnd(s *game.Session) error
	// Leaderboard
	GetTopCorporations(limit int) ([]game.CorpProfile, error)
}
