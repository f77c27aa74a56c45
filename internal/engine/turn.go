package engine

import (
	"fmt"

	"github.com/DADGADD/Venus/internal/game"
)

// CloseTurn resolves the current player's economics and advances the
// schedule. It is the single exit point of every turn: player actions,
// explicit skips and automatic resolutions all funnel through here.
//
// Sequence: economic resolution (may bankrupt the closing player), win
// condition check, then circular advance to the next non-bankrupt player.
// The month counter increments every time the pointer wraps past the end
// of the roster, including wraps that happen while skipping bankrupts.
func CloseTurn(s *game.Session) {
	if s.Phase != game.PhasePlaying {
		return
	}

	resolveEconomy(s)
	s.TurnSerial++

	remaining := s.NonBankruptCount()
	if remaining <= 1 {
		s.Phase = game.PhaseWinner
		s.Winner = ""
		if remaining == 1 {
			for i := range s.Players {
				if s.Players[i].Status != game.StatusBankrupt {
					s.Winner = s.Players[i].Name
					s.AppendLog(fmt.Sprintf("%s поглотила рынок и победила!", s.Winner), game.LogSuccess, s.Players[i].Color)
					break
				}
			}
		} else {
			// Simultaneous collapse of the last corporations: a draw.
			s.AppendLog("Все корпорации обанкротились. Ничья.", game.LogWarning, "")
		}
		return
	}

	next := (s.CurrentIndex + 1) % len(s.Players)
	if next == 0 {
		s.Month++
	}
	// Bounded by one full lap; unreachable past the guard above but kept
	// so a corrupt roster can never spin forever.
	for lap := 0; s.Players[next].Status == game.StatusBankrupt && lap < len(s.Players); lap++ {
		next = (next + 1) % len(s.Players)
		if next == 0 {
			s.Month++
		}
	}
	s.CurrentIndex = next
}

// NeedsAutoResolve reports whether the current turn will close without
// player input: the player is on vacation, has exhausted all actions, or
// is AI-controlled.
func NeedsAutoResolve(s *game.Session) bool {
	if s.Phase != game.PhasePlaying {
		return false
	}
	p := s.CurrentPlayer()
	if p == nil || p.Status == game.StatusBankrupt {
		return false
	}
	if p.Status == game.StatusVacation {
		return true
	}
	if p.IsAI {
		return true
	}
	return len(p.UnusedActions()) == 0
}

// AutoResolve closes a turn that requires no player input. It returns true
// when a turn was actually resolved; a human turn with actions left is not
// touched.
func AutoResolve(s *game.Session, rng Rand) bool {
	if s.Phase != game.PhasePlaying {
		return false
	}
	p := s.CurrentPlayer()
	if p == nil || p.Status == game.StatusBankrupt {
		return false
	}

	if p.Status == game.StatusVacation {
		s.AppendLog(fmt.Sprintf("%s: в отпуске, переход хода.", p.Name), game.LogInfo, p.Color)
		CloseTurn(s)
		return true
	}

	if len(p.UnusedActions()) == 0 {
		s.AppendLog(fmt.Sprintf("%s: все действия выполнены.", p.Name), game.LogInfo, p.Color)
		CloseTurn(s)
		return true
	}

	if p.IsAI {
		action, targetUUID, ok := ChooseAction(s, rng)
		if !ok {
			s.AppendLog(fmt.Sprintf("%s: пропуск хода.", p.Name), game.LogInfo, p.Color)
			CloseTurn(s)
			return true
		}
		if err := Apply(s, action, targetUUID); err != nil {
			// The policy only proposes valid moves; close the turn anyway
			// so a rejected pick cannot stall the session.
			CloseTurn(s)
		}
		return true
	}

	return false
}
