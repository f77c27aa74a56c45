package service

import (
	"fmt"
	"time"

	"github.com/DADGADD/Venus/internal/dedupe"
	"github.com/DADGADD/Venus/internal/engine"
	"github.com/DADGADD/Venus/internal/game"
)

// ScheduleAutoAdvance arms or clears the session's auto-advance deadline.
// Armed whenever the current turn will close without player input
// (vacation countdown, exhausted actions, AI decision); the delay paces the
// transition so the frontend can animate it.
func ScheduleAutoAdvance(s *game.Session, delay time.Duration, now time.Time) {
	if engine.NeedsAutoResolve(s) {
		at := now.Add(delay)
		s.AutoAdvanceAt = &at
		return
	}
	s.AutoAdvanceAt = nil
}

type autoTurnResult struct {
	session  *game.Session
	resolved bool
}

// AdvanceAutomaticTurn resolves a turn the scanner claimed. expectedSerial
// is the turn serial the deadline was armed for: a mismatch means the turn
// already moved on (for example a human acted right before the timer
// fired) and the call is a no-op. Concurrent triggers for the same turn
// collapse into a single resolution.
func AdvanceAutomaticTurn(repo SessionRepo, sessionID uint, expectedSerial int, rng engine.Rand, turnDelay time.Duration) (*game.Session, bool, error) {
	key := fmt.Sprintf("%d:%d", sessionID, expectedSerial)
	v, err, _ := dedupe.AdvanceGroup.Do(key, func() (interface{}, error) {
		s, err := repo.GetSessionByID(sessionID)
		if err != nil || s == nil {
			return nil, ErrSessionNotFound
		}
		if s.Phase != game.PhasePlaying || s.TurnSerial != expectedSerial {
			// Stale trigger: the turn already moved on. Re-arm the
			// deadline in case claiming disarmed one that belongs to the
			// newer turn.
			ScheduleAutoAdvance(s, turnDelay, time.Now())
			if s.AutoAdvanceAt != nil {
				if err := repo.UpdateSession(s); err != nil {
					return nil, err
				}
			}
			return autoTurnResult{session: s}, nil
		}

		if !engine.AutoResolve(s, rng) {
			// A human turn was claimed by mistake; disarm and move on.
			s.AutoAdvanceAt = nil
			if err := repo.UpdateSession(s); err != nil {
				return nil, err
			}
			return autoTurnResult{session: s}, nil
		}

		finishStats(repo, s)
		ScheduleAutoAdvance(s, turnDelay, time.Now())
		if err := repo.UpdateSession(s); err != nil {
			return nil, err
		}
		return autoTurnResult{session: s, resolved: true}, nil
	})
	if err != nil {
		return nil, false, err
	}
	res := v.(autoTurnResult)
	return res.session, res.resolved, nil
}
