package namegen

import (
	"math/rand"
	"testing"
)

var pool = []string{"Роза Ветров", "Зенит", "Прорыв", "Альтаир", "Вектор", "Квант"}

func TestAssignNames_AISeatsDrawFromPool(t *testing.T) {
	flags := []bool{false, true, true, true}
	names := AssignNames(pool, 4, nil, flags, rand.New(rand.NewSource(1)))

	if names[0] != "Корпорация 1" {
		t.Fatalf("human seat must get the numbered default, got %q", names[0])
	}
	inPool := func(n string) bool {
		for _, p := range pool {
			if p == n {
				return true
			}
		}
		return false
	}
	seen := map[string]bool{}
	for i := 1; i < 4; i++ {
		if !inPool(names[i]) {
			t.Fatalf("AI seat %d must draw from the pool, got %q", i, names[i])
		}
		if seen[names[i]] {
			t.Fatalf("pool name %q used twice", names[i])
		}
		seen[names[i]] = true
	}
}

func TestAssignNames_CustomNamesWin(t *testing.T) {
	custom := []string{"  Моя Корпорация  ", "", "   "}
	flags := []bool{false, true, true}
	names := AssignNames(pool, 3, custom, flags, rand.New(rand.NewSource(1)))

	if names[0] != "Моя Корпорация" {
		t.Fatalf("expected the trimmed custom name, got %q", names[0])
	}
	if names[1] == "" || names[2] == "" {
		t.Fatalf("blank custom entries must fall back, got %q and %q", names[1], names[2])
	}
}

func TestAssignNames_ShuffleIsSeeded(t *testing.T) {
	flags := []bool{true, true, true}
	a := AssignNames(pool, 3, nil, flags, rand.New(rand.NewSource(42)))
	b := AssignNames(pool, 3, nil, flags, rand.New(rand.NewSource(42)))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed must produce the same assignment: %v vs %v", a, b)
		}
	}
}

func TestAssignNames_PoolExhaustedFallsBack(t *testing.T) {
	flags := []bool{true, true, true}
	names := AssignNames(pool[:2], 3, nil, flags, rand.New(rand.NewSource(1)))

	if names[2] != DefaultHumanName(2) {
		t.Fatalf("expected numbered fallback past the pool, got %q", names[2])
	}
}
