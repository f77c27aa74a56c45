package engine

import (
	"github.com/DADGADD/Venus/internal/game"
)

// Rand is the random source the decision policy draws from. *math/rand.Rand
// satisfies it; tests inject seeded sources for determinism.
type Rand interface {
	Intn(n int) int
}

// ChooseAction picks the move for an AI-controlled current player: a
// uniformly random unused action, with a uniformly random active opponent
// when the action needs a target. When an opponent-targeted pick has no
// eligible target the policy substitutes a self-targeted action. ok=false
// means there is no legal move left and the turn should be skipped.
func ChooseAction(s *game.Session, rng Rand) (action game.ActionID, targetUUID string, ok bool) {
	actor := s.CurrentPlayer()
	if actor == nil || actor.Status != game.StatusActive {
		return "", "", false
	}
	unused := actor.UnusedActions()
	if len(unused) == 0 {
		return "", "", false
	}

	choice := unused[rng.Intn(len(unused))]
	if !choice.OpponentTargeted() {
		return choice, "", true
	}

	targets := s.EligibleTargets(actor)
	if len(targets) == 0 {
		return fallbackSelfAction(actor)
	}
	return choice, targets[rng.Intn(len(targets))].PlayerUUID, true
}

// fallbackSelfAction returns the self-targeted substitute used when no
// opponent can be attacked: ads when still available, otherwise the first
// remaining self-targeted action. With none left the turn is skipped.
func fallbackSelfAction(actor *game.Player) (game.ActionID, string, bool) {
	if !actor.HasUsed(game.ActionAds) {
		return game.ActionAds, "", true
	}
	for _, a := range actor.UnusedActions() {
		if !a.OpponentTargeted() {
			return a, "", true
		}
	}
	return "", "", false
}
