package engine

import (
	"math/rand"
	"testing"

	"github.com/DADGADD/Venus/internal/game"
)

// scriptedRand replays a fixed pick sequence, reduced modulo n.
type scriptedRand struct {
	picks []int
	pos   int
}

func (r *scriptedRand) Intn(n int) int {
	p := r.picks[r.pos%len(r.picks)] % n
	r.pos++
	return p
}

func TestChooseAction_DeterministicForSeed(t *testing.T) {
	pick := func() (game.ActionID, string, bool) {
		s := newSession(100000, 100000, 100000)
		s.Players[0].IsAI = true
		return ChooseAction(s, rand.New(rand.NewSource(42)))
	}

	a1, t1, ok1 := pick()
	a2, t2, ok2 := pick()
	if !ok1 || !ok2 {
		t.Fatalf("expected a move with all actions available")
	}
	if a1 != a2 || t1 != t2 {
		t.Fatalf("same seed must pick the same move: %s/%s vs %s/%s", a1, t1, a2, t2)
	}
}

func TestChooseAction_OnlyUnusedActions(t *testing.T) {
	s := newSession(100000, 100000)
	s.Players[0].IsAI = true
	for _, a := range game.AllActions() {
		if a != game.ActionSales {
			s.Players[0].UsedActions = append(s.Players[0].UsedActions, a)
		}
	}

	action, target, ok := ChooseAction(s, rand.New(rand.NewSource(7)))
	if !ok {
		t.Fatalf("expected a move")
	}
	if action != game.ActionSales {
		t.Fatalf("expected the only unused action, got %s", action)
	}
	if target != "" {
		t.Fatalf("sales is self-targeted, got target %q", target)
	}
}

func TestChooseAction_TargetsOnlyActiveOpponents(t *testing.T) {
	s := newSession(100000, 100000, 100000)
	s.Players[0].IsAI = true
	s.Players[2].Status = game.StatusBankrupt
	for _, a := range game.AllActions() {
		if a != game.ActionRobbery {
			s.Players[0].UsedActions = append(s.Players[0].UsedActions, a)
		}
	}

	action, target, ok := ChooseAction(s, rand.New(rand.NewSource(7)))
	if !ok || action != game.ActionRobbery {
		t.Fatalf("expected robbery, got %s ok=%v", action, ok)
	}
	if target != "p2" {
		t.Fatalf("expected the only active opponent p2, got %q", target)
	}
}

func TestChooseAction_FallbackToAdsWithoutTargets(t *testing.T) {
	s := newSession(100000, 100000)
	s.Players[0].IsAI = true
	s.Players[1].Status = game.StatusVacation
	s.Players[1].VacationTurns = 2
	// Only ads and docs remain; force the targeted pick.
	for _, a := range game.AllActions() {
		if a != game.ActionAds && a != game.ActionDocs {
			s.Players[0].UsedActions = append(s.Players[0].UsedActions, a)
		}
	}

	action, target, ok := ChooseAction(s, &scriptedRand{picks: []int{1}})
	if !ok {
		t.Fatalf("expected the fallback to produce a move")
	}
	if action != game.ActionAds || target != "" {
		t.Fatalf("expected ads fallback, got %s target %q", action, target)
	}
}

func TestChooseAction_SkipWhenNoMoveLeft(t *testing.T) {
	s := newSession(100000, 100000)
	s.Players[0].IsAI = true
	s.Players[1].Status = game.StatusVacation
	s.Players[1].VacationTurns = 2
	// Every self-targeted action used; only docs remains and it has no
	// eligible target.
	for _, a := range game.AllActions() {
		if a != game.ActionDocs {
			s.Players[0].UsedActions = append(s.Players[0].UsedActions, a)
		}
	}

	if _, _, ok := ChooseAction(s, &scriptedRand{picks: []int{0}}); ok {
		t.Fatalf("expected no legal move")
	}
	// The fallback must never re-propose a used action.
	if s.Players[0].HasUsed(game.ActionDocs) {
		t.Fatalf("docs must still be unused")
	}
}

func TestAutoResolve_AITurnAppliesAMove(t *testing.T) {
	s := newSession(100000, 100000)
	s.Players[0].IsAI = true

	if !AutoResolve(s, rand.New(rand.NewSource(1))) {
		t.Fatalf("expected the AI turn to resolve")
	}
	if s.TurnSerial != 1 {
		t.Fatalf("expected the turn to close, serial %d", s.TurnSerial)
	}
	if len(s.Players[0].UsedActions) != 1 {
		t.Fatalf("expected exactly one action consumed, got %d", len(s.Players[0].UsedActions))
	}
}

func TestAutoResolve_AISkipsWhenExhaustedOfMoves(t *testing.T) {
	s := newSession(100000, 100000)
	s.Players[0].IsAI = true
	s.Players[1].Status = game.StatusVacation
	s.Players[1].VacationTurns = 2
	for _, a := range game.AllActions() {
		if a != game.ActionBlackPR {
			s.Players[0].UsedActions = append(s.Players[0].UsedActions, a)
		}
	}

	if !AutoResolve(s, &scriptedRand{picks: []int{0}}) {
		t.Fatalf("expected the turn to resolve as a skip")
	}
	if s.Players[0].HasUsed(game.ActionBlackPR) {
		t.Fatalf("skip must not consume the remaining action")
	}
	if s.CurrentIndex != 1 {
		t.Fatalf("expected the turn to close")
	}
}
