package service

import (
	"time"

	"github.com/DADGADD/Venus/internal/engine"
	"github.com/DADGADD/Venus/internal/game"
)

// InvokeAction applies one action for the session's current player and
// persists the outcome. Engine rejections (used action, wrong status,
// missing target) are returned untouched and leave no state behind.
func InvokeAction(repo SessionRepo, sessionID uint, action game.ActionID, targetUUID string, turnDelay time.Duration) (*game.Session, error) {
	s, err := repo.GetSessionByID(sessionID)
	if err != nil || s == nil {
		return nil, ErrSessionNotFound
	}
	if s.Phase != game.PhasePlaying {
		return nil, ErrSessionNotPlaying
	}

	if err := engine.Apply(s, action, targetUUID); err != nil {
		return nil, err
	}

	finishStats(repo, s)
	ScheduleAutoAdvance(s, turnDelay, time.Now())
	if err := repo.UpdateSession(s); err != nil {
		return nil, err
	}
	return s, nil
}

// SkipTurn ends the current human player's turn without an action.
func SkipTurn(repo SessionRepo, sessionID uint, turnDelay time.Duration) (*game.Session, error) {
	s, err := repo.GetSessionByID(sessionID)
	if err != nil || s == nil {
		return nil, ErrSessionNotFound
	}
	if s.Phase != game.PhasePlaying {
		return nil, ErrSessionNotPlaying
	}

	if err := engine.SkipTurn(s); err != nil {
		return nil, err
	}

	finishStats(repo, s)
	ScheduleAutoAdvance(s, turnDelay, time.Now())
	if err := repo.UpdateSession(s); err != nil {
		return nil, err
	}
	return s, nil
}

// EndSession discards a session: phase back to menu, no stats counted,
// any pending auto-advance cancelled.
func EndSession(repo SessionRepo, sessionID uint) (*game.Session, error) {
	s, err := repo.GetSessionByID(sessionID)
	if err != nil || s == nil {
		return nil, ErrSessionNotFound
	}
	s.Phase = game.PhaseMenu
	s.AutoAdvanceAt = nil
	s.Message = "Сессия завершена."
	if err := repo.UpdateSession(s); err != nil {
		return nil, err
	}
	return s, nil
}
