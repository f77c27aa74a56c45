package service

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/DADGADD/Venus/internal/game"
)

var testNamePool = []string{"Роза Ветров", "Зенит", "Прорыв", "Альтаир", "Вектор"}

var testColors = []string{"#6366f1", "#10b981", "#f43f5e", "#f59e0b", "#8b5cf6"}

func validConfig() SessionConfig {
	return SessionConfig{
		Mode:            game.ModeSolo,
		PlayerCount:     4,
		StartingBalance: 300000,
		InitialTax:      10000,
		TaxMultiplier:   1.3,
	}
}

func TestCreateSession_SoloRoster(t *testing.T) {
	s, err := CreateSession(validConfig(), testNamePool, testColors, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.Phase != game.PhasePlaying || s.Month != 1 || s.CurrentIndex != 0 {
		t.Fatalf("expected a fresh playing session, got phase=%s month=%d index=%d", s.Phase, s.Month, s.CurrentIndex)
	}
	if len(s.Players) != 4 {
		t.Fatalf("expected 4 players, got %d", len(s.Players))
	}
	if s.Players[0].IsAI {
		t.Fatalf("solo seat 0 must be human")
	}
	for i := 1; i < 4; i++ {
		if !s.Players[i].IsAI {
			t.Fatalf("solo seat %d must be AI", i)
		}
	}

	seenUUID := map[string]bool{}
	seenColor := map[string]bool{}
	for _, p := range s.Players {
		if p.Balance != 300000 || p.Status != game.StatusActive {
			t.Fatalf("player %d: wrong starting state", p.Seat)
		}
		if p.PlayerUUID == "" || seenUUID[p.PlayerUUID] {
			t.Fatalf("player %d: uuid missing or duplicated", p.Seat)
		}
		if p.Color == "" || seenColor[p.Color] {
			t.Fatalf("player %d: color missing or duplicated", p.Seat)
		}
		seenUUID[p.PlayerUUID] = true
		seenColor[p.Color] = true
	}
	if len(s.Logs) != 1 || s.Logs[0].Severity != game.LogSuccess {
		t.Fatalf("expected a single start log entry")
	}
}

func TestCreateSession_FriendsRosterIsAllHuman(t *testing.T) {
	cfg := validConfig()
	cfg.Mode = game.ModeFriends
	cfg.PlayerCount = 3

	s, err := CreateSession(cfg, testNamePool, testColors, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, p := range s.Players {
		if p.IsAI {
			t.Fatalf("friends seat %d must be human", p.Seat)
		}
	}
	if s.Players[1].Name != "Корпорация 2" {
		t.Fatalf("expected numbered default name, got %q", s.Players[1].Name)
	}
}

func TestCreateSession_CustomNamesWin(t *testing.T) {
	cfg := validConfig()
	cfg.Names = []string{"Моя Корпорация", "", "  "}

	s, err := CreateSession(cfg, testNamePool, testColors, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Players[0].Name != "Моя Корпорация" {
		t.Fatalf("custom name must win, got %q", s.Players[0].Name)
	}
	// Blank custom entries fall back to the pool for AI seats.
	if s.Players[1].Name == "" || s.Players[2].Name == "" {
		t.Fatalf("expected pool names for blank custom entries")
	}
}

func TestSessionConfig_Validate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*SessionConfig)
	}{
		{"unknown mode", func(c *SessionConfig) { c.Mode = "tournament" }},
		{"too few players", func(c *SessionConfig) { c.PlayerCount = 1 }},
		{"too many players", func(c *SessionConfig) { c.PlayerCount = 6 }},
		{"balance too low", func(c *SessionConfig) { c.StartingBalance = 99999 }},
		{"balance too high", func(c *SessionConfig) { c.StartingBalance = 500001 }},
		{"tax too low", func(c *SessionConfig) { c.InitialTax = 4999 }},
		{"tax too high", func(c *SessionConfig) { c.InitialTax = 30001 }},
		{"multiplier too low", func(c *SessionConfig) { c.TaxMultiplier = 0.9 }},
		{"multiplier too high", func(c *SessionConfig) { c.TaxMultiplier = 5.1 }},
		{"ai flags length mismatch", func(c *SessionConfig) { c.AIFlags = []bool{true} }},
	}
	for _, c := range cases {
		cfg := validConfig()
		c.mutate(&cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrConfigurationInvalid) {
			t.Fatalf("%s: expected ErrConfigurationInvalid, got %v", c.name, err)
		}
	}
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
}

func TestCreateSession_NotEnoughColors(t *testing.T) {
	_, err := CreateSession(validConfig(), testNamePool, testColors[:2], rand.New(rand.NewSource(1)))
	if !errors.Is(err, ErrConfigurationInvalid) {
		t.Fatalf("expected ErrConfigurationInvalid, got %v", err)
	}
}
