package roster

import "testing"

func TestNatureCount(t *testing.T) {
	if len(NATURES) != 25 {
		t.Fatalf("Expected 25 natures: got %d", len(NATURES))
	}

	seen := make(map[string]bool)
	for _, nature := range NATURES {
		if seen[nature.Name] {
			t.Fatalf("Duplicate nature %s", nature.Name)
		}
		seen[nature.Name] = true
	}
}

func TestNatureEffects(t *testing.T) {
	neutral := map[string]bool{"hardy": true, "docile": true, "serious": true, "bashful": true, "quirky": true}

	for _, nature := range NATURES {
		if neutral[nature.Name] {
			if !nature.Neutral() {
				t.Fatalf("Expected %s to be neutral: got %+v", nature.Name, nature)
			}
			continue
		}

		if !nature.Up.Valid() || !nature.Down.Valid() {
			t.Fatalf("Expected %s to have both effects: got %+v", nature.Name, nature)
		}
		if nature.Up == nature.Down {
			t.Fatalf("Expected %s to boost and lower different stats", nature.Name)
		}
		if nature.Up == STAT_HP || nature.Down == STAT_HP {
			t.Fatalf("Natures never touch hp: %+v", nature)
		}
	}
}

func TestLookupNature(t *testing.T) {
	timid, ok := LookupNature("TIMID")
	if !ok {
		t.Fatalf("Expected to find timid")
	}
	if timid.Up != STAT_SPEED || timid.Down != STAT_ATTACK {
		t.Fatalf("Expected timid to be +speed -attack: got %+v", timid)
	}

	if _, ok := LookupNature("grumpy"); ok {
		t.Fatalf("Found a nature that doesn't exist")
	}

	if _, err := ResolveNature("grumpy"); err == nil {
		t.Fatalf("Expected unknown nature error")
	}
}

func TestNatureModifier(t *testing.T) {
	if m := NATURE_TIMID.Modifier(STAT_SPEED); m != 1.1 {
		t.Fatalf("Expected 1.1 speed modifier: got %f", m)
	}
	if m := NATURE_TIMID.Modifier(STAT_ATTACK); m != .9 {
		t.Fatalf("Expected .9 attack modifier: got %f", m)
	}
	if m := NATURE_TIMID.Modifier(STAT_HP); m != 1 {
		t.Fatalf("Expected no hp modifier: got %f", m)
	}
	if m := NATURE_HARDY.Modifier(STAT_SPEED); m != 1 {
		t.Fatalf("Expected neutral nature to do nothing: got %f", m)
	}
}
