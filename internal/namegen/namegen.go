package namegen

// Package namegen assigns display names to the corporations of a new
// session. AI seats draw from a shuffled pool of canned corporation names;
// human seats get a numbered default. Custom names always win.

import (
	"fmt"
	"math/rand"
	"strings"
)

// DefaultHumanName formats the fallback name for a human-controlled seat.
func DefaultHumanName(seat int) string {
	return fmt.Sprintf("Корпорация %d", seat+1)
}

// AssignNames produces one display name per seat. pool is shuffled with
// the provided random source so solo runs do not repeat the same AI
// opponents; custom entries (trimmed, non-empty) override everything.
func AssignNames(pool []string, count int, custom []string, aiFlags []bool, rng *rand.Rand) []string {
	shuffled := make([]string, len(pool))
	copy(shuffled, pool)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	names := make([]string, count)
	for i := 0; i < count; i++ {
		if i < len(custom) {
			if c := strings.TrimSpace(custom[i]); c != "" {
				names[i] = c
				continue
			}
		}
		if i < len(aiFlags) && aiFlags[i] && i < len(shuffled) {
			names[i] = shuffled[i]
			continue
		}
		names[i] = DefaultHumanName(i)
	}
	return names
}
