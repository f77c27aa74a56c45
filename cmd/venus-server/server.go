package main

import (
	"math/rand"
	"time"

	"github.com/DADGADD/Venus/internal/api"
	"github.com/DADGADD/Venus/internal/constants"
	"github.com/DADGADD/Venus/internal/logging"
	"github.com/DADGADD/Venus/internal/service"
	"github.com/DADGADD/Venus/internal/storage"
)

// startAutoTurnScanner claims sessions whose auto-advance deadline passed
// and resolves their turns through the service layer. Claims carry the
// turn serial the deadline was armed for, so a claim that lost a race with
// a player action is dropped instead of double-advancing.
func startAutoTurnScanner(repo storage.Repository, hub *api.Hub, turnDelay time.Duration, workerID string) {
	go func() {
		const claimBatch = 20
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		ticker := time.NewTicker(250 * time.Millisecond)
		defer ticker.Stop()
		for range ticker.C {
			claims, err := repo.ClaimDueAutoTurns(time.Now(), claimBatch)
			if err != nil {
				logging.Error("auto-turn scanner failed to claim sessions", err, logging.Fields{constants.LogFieldWorker: workerID})
				continue
			}
			if len(claims) == claimBatch {
				logging.Warn("auto-turn scanner claimed a full batch, turns may be lagging", logging.Fields{constants.LogFieldWorker: workerID})
			}
			// process each claim sequentially (keeps the DB safe under SQLite)
			for _, claim := range claims {
				s, resolved, err := service.AdvanceAutomaticTurn(repo, claim.SessionID, claim.TurnSerial, rng, turnDelay)
				if err != nil {
					logging.Error("auto-turn resolution failed", err, logging.Fields{
						constants.LogFieldSessionID: claim.SessionID,
						constants.LogFieldSerial:    claim.TurnSerial,
					})
					continue
				}
				if resolved && s != nil {
					logging.Info("automatic turn resolved", logging.Fields{
						constants.LogFieldSessionID: claim.SessionID,
						constants.LogFieldSerial:    claim.TurnSerial,
						constants.LogFieldMonth:     s.Month,
					})
					hub.Publish(s.JoinCode, api.BuildSnapshot(s))
				}
			}
		}
	}()
}
