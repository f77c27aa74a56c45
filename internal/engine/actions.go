package engine

import (
	"errors"
	"fmt"

	"github.com/DADGADD/Venus/internal/game"
)

var (
	ErrNotPlaying        = errors.New("session is not in the playing phase")
	ErrUnknownAction     = errors.New("unknown action id")
	ErrActorNotActive    = errors.New("current player is not in active status")
	ErrActionAlreadyUsed = errors.New("action already used this game")
	ErrLoanOutstanding   = errors.New("a loan is already being repaid")
	ErrTargetRequired    = errors.New("action requires a target player")
	ErrInvalidTarget     = errors.New("target is not an active opponent")
	ErrSkipNotAllowed    = errors.New("player may not skip the turn")
)

// Apply validates and executes one action for the current player, then
// closes the turn. Validation happens entirely before any mutation so a
// rejected call leaves the session untouched.
func Apply(s *game.Session, action game.ActionID, targetUUID string) error {
	if s.Phase != game.PhasePlaying {
		return ErrNotPlaying
	}
	if !action.Valid() {
		return ErrUnknownAction
	}
	actor := s.CurrentPlayer()
	if actor == nil || actor.Status != game.StatusActive {
		return ErrActorNotActive
	}
	if actor.HasUsed(action) {
		return ErrActionAlreadyUsed
	}
	if action == game.ActionLoanFix && actor.LoanRepaymentMonths > 0 {
		return ErrLoanOutstanding
	}

	var target *game.Player
	if action.OpponentTargeted() {
		if targetUUID == "" {
			return ErrTargetRequired
		}
		target = s.PlayerByUUID(targetUUID)
		if target == nil || target.Status != game.StatusActive || target.PlayerUUID == actor.PlayerUUID {
			return ErrInvalidTarget
		}
	}

	switch action {
	case game.ActionAds:
		actor.Balance += AdsBonus
	case game.ActionSales:
		actor.Balance += SalesBonus
	case game.ActionLoanFix:
		actor.Balance += LoanPrincipal
		actor.LoanRepaymentMonths = LoanTermMonths
	case game.ActionVacation:
		actor.Status = game.StatusVacation
		actor.VacationTurns = VacationLength
	case game.ActionDocs:
		target.Balance = clampBalance(target.Balance - DocsDamage)
	case game.ActionBlackPR:
		target.Balance = clampBalance(target.Balance - BlackPRDamage)
	case game.ActionRobbery:
		actor.Balance += RobberyAmount
		target.Balance = clampBalance(target.Balance - RobberyAmount)
	}
	actor.UsedActions = append(actor.UsedActions, action)

	if target != nil {
		s.AppendLog(fmt.Sprintf("%s: %s → %s", actor.Name, action.Title(), target.Name), game.LogInfo, actor.Color)
	} else {
		s.AppendLog(fmt.Sprintf("%s: %s", actor.Name, action.Title()), game.LogInfo, actor.Color)
	}

	CloseTurn(s)
	return nil
}

// SkipTurn ends the current player's turn without consuming an action id.
// Only human players may skip explicitly; AI and automatic turns go
// through AutoResolve instead. Any status but bankrupt may skip.
func SkipTurn(s *game.Session) error {
	if s.Phase != game.PhasePlaying {
		return ErrNotPlaying
	}
	p := s.CurrentPlayer()
	if p == nil || p.IsAI || p.Status == game.StatusBankrupt {
		return ErrSkipNotAllowed
	}
	s.AppendLog(fmt.Sprintf("%s: пропуск хода.", p.Name), game.LogInfo, p.Color)
	CloseTurn(s)
	return nil
}

func clampBalance(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}
