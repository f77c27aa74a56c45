package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// defaultColors is the seat color palette used when the config file does
// not provide one. Colors map to seats in order and are never reused
// inside one session.
var defaultColors = []string{"#6366f1", "#10b981", "#f43f5e", "#f59e0b", "#8b5cf6"}

const defaultTurnDelay = 1500 * time.Millisecond

type rawConfig struct {
	Server *struct {
		Address string `json:"address"`
	} `json:"server"`
	// CorporationNames seeds the pool AI opponents draw their display
	// names from. Required; the pool is shuffled per session.
	CorporationNames []string `json:"corporation_names"`
	// PlayerColors optionally overrides the seat color palette.
	PlayerColors []string `json:"player_colors"`
	// TurnDelayMS paces automatic turn transitions (vacation skips, AI
	// moves) so the frontend can animate them.
	TurnDelayMS int `json:"turn_delay_ms"`
}

// LoadedConfig contains the server address and the game presentation data
// loaded at startup.
type LoadedConfig struct {
	ServerAddress    string
	CorporationNames []string
	PlayerColors     []string
	TurnDelay        time.Duration
}

// LoadConfig reads the configuration file at path. It requires the key
// `corporation_names` (snake_case); everything else has defaults.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	names := make([]string, 0, len(rc.CorporationNames))
	seen := make(map[string]struct{}, len(rc.CorporationNames))
	for _, n := range rc.CorporationNames {
		n = strings.TrimSpace(n)
		if n == "" {
			return nil, fmt.Errorf("config file %s: corporation_names contains an empty entry", path)
		}
		key := strings.ToLower(n)
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("config file %s: duplicate corporation name '%s'", path, n)
		}
		seen[key] = struct{}{}
		names = append(names, n)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("config file %s: corporation_names is empty (provide a 'corporation_names' array)", path)
	}

	colors := rc.PlayerColors
	if len(colors) == 0 {
		colors = defaultColors
	}
	colorSeen := make(map[string]struct{}, len(colors))
	for _, c := range colors {
		if strings.TrimSpace(c) == "" {
			return nil, fmt.Errorf("config file %s: player_colors contains an empty entry", path)
		}
		if _, dup := colorSeen[c]; dup {
			return nil, fmt.Errorf("config file %s: duplicate player color '%s'", path, c)
		}
		colorSeen[c] = struct{}{}
	}

	addr := ":8080"
	if rc.Server != nil && rc.Server.Address != "" {
		addr = rc.Server.Address
	}

	delay := defaultTurnDelay
	if rc.TurnDelayMS > 0 {
		delay = time.Duration(rc.TurnDelayMS) * time.Millisecond
	}

	return &LoadedConfig{
		ServerAddress:    addr,
		CorporationNames: names,
		PlayerColors:     colors,
		TurnDelay:        delay,
	}, nil
}
