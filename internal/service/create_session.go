package service

import (
	"fmt"
	"math/rand"

	"github.com/DADGADD/Venus/internal/engine"
	"github.com/DADGADD/Venus/internal/game"
	"github.com/DADGADD/Venus/internal/namegen"

	"github.com/google/uuid"
)

// Allowed ranges for session parameters, matching the setup screen.
const (
	MinPlayers         = 2
	MaxPlayers         = 5
	MinStartingBalance = 100000
	MaxStartingBalance = 500000
	MinInitialTax      = 5000
	MaxInitialTax      = 30000
	MinTaxMultiplier   = 1.0
	MaxTaxMultiplier   = 5.0
)

// SessionConfig carries the immutable parameters chosen at setup.
type SessionConfig struct {
	Mode            string
	PlayerCount     int
	StartingBalance int64
	InitialTax      int64
	TaxMultiplier   float64
	// Names holds optional per-seat custom names; empty entries fall back
	// to pool names (AI seats) or numbered defaults (human seats).
	Names []string
	// AIFlags optionally overrides which seats are AI-controlled. When
	// empty the flags derive from Mode: solo = every seat but the first.
	AIFlags []bool
}

// Validate checks the configuration against the allowed ranges before any
// roster is created.
func (c SessionConfig) Validate() error {
	if c.Mode != game.ModeSolo && c.Mode != game.ModeFriends {
		return fmt.Errorf("%w: unknown mode %q", ErrConfigurationInvalid, c.Mode)
	}
	if c.PlayerCount < MinPlayers || c.PlayerCount > MaxPlayers {
		return fmt.Errorf("%w: player count %d outside [%d,%d]", ErrConfigurationInvalid, c.PlayerCount, MinPlayers, MaxPlayers)
	}
	if c.StartingBalance < MinStartingBalance || c.StartingBalance > MaxStartingBalance {
		return fmt.Errorf("%w: starting balance %d outside [%d,%d]", ErrConfigurationInvalid, c.StartingBalance, MinStartingBalance, MaxStartingBalance)
	}
	if c.InitialTax < MinInitialTax || c.InitialTax > MaxInitialTax {
		return fmt.Errorf("%w: initial tax %d outside [%d,%d]", ErrConfigurationInvalid, c.InitialTax, MinInitialTax, MaxInitialTax)
	}
	if c.TaxMultiplier < MinTaxMultiplier || c.TaxMultiplier > MaxTaxMultiplier {
		return fmt.Errorf("%w: tax multiplier %.2f outside [%.1f,%.1f]", ErrConfigurationInvalid, c.TaxMultiplier, MinTaxMultiplier, MaxTaxMultiplier)
	}
	if len(c.AIFlags) != 0 && len(c.AIFlags) != c.PlayerCount {
		return fmt.Errorf("%w: ai flags length %d does not match player count %d", ErrConfigurationInvalid, len(c.AIFlags), c.PlayerCount)
	}
	return nil
}

func (c SessionConfig) aiFlags() []bool {
	if len(c.AIFlags) == c.PlayerCount {
		return c.AIFlags
	}
	flags := make([]bool, c.PlayerCount)
	if c.Mode == game.ModeSolo {
		for i := 1; i < c.PlayerCount; i++ {
			flags[i] = true
		}
	}
	return flags
}

// CreateSession validates the configuration and builds a fresh session in
// the playing phase: full roster with identical starting state, month 1,
// seat 0 on turn. The caller persists the result and assigns a join code.
func CreateSession(cfg SessionConfig, namePool, colors []string, rng *rand.Rand) (*game.Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(colors) < cfg.PlayerCount {
		return nil, fmt.Errorf("%w: %d colors for %d players", ErrConfigurationInvalid, len(colors), cfg.PlayerCount)
	}

	flags := cfg.aiFlags()
	names := namegen.AssignNames(namePool, cfg.PlayerCount, cfg.Names, flags, rng)

	s := &game.Session{
		Phase:           game.PhasePlaying,
		Mode:            cfg.Mode,
		StartingBalance: cfg.StartingBalance,
		InitialTax:      cfg.InitialTax,
		TaxMultiplier:   cfg.TaxMultiplier,
		Month:           1,
		Message:         "Симуляция запущена.",
	}
	for i := 0; i < cfg.PlayerCount; i++ {
		s.Players = append(s.Players, game.Player{
			PlayerUUID:  uuid.NewString(),
			Seat:        i,
			Name:        names[i],
			Balance:     cfg.StartingBalance,
			IsAI:        flags[i],
			Status:      game.StatusActive,
			Color:       colors[i],
			UsedActions: game.ActionList{},
		})
	}
	s.AppendLog("Симуляция запущена.", game.LogSuccess, "")

	return s, nil
}

// CurrentTaxRate exposes the tax charged this month, for snapshots.
func CurrentTaxRate(s *game.Session) int64 {
	return engine.TaxRate(s.InitialTax, s.TaxMultiplier, s.Month)
}
