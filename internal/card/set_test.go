package card

import "testing"

func TestSetForArg(t *testing.T) {
	tests := []struct {
		arg  string
		want string
		ok   bool
	}{
		{"base2e", "Base 2E", true},
		{"Base 2E", "Base 2E", true},
		{"darkages", "Dark Ages", true},
		{"seaside", "Seaside", true},
		{"promo", "Promo", true},
		{"atlantis", "", false},
	}
	for _, tt := range tests {
		g, ok := SetForArg(tt.arg)
		if ok != tt.ok {
			t.Errorf("SetForArg(%q) ok = %v, want %v", tt.arg, ok, tt.ok)
			continue
		}
		if ok && g.FullName() != tt.want {
			t.Errorf("SetForArg(%q) = %q, want %q", tt.arg, g.FullName(), tt.want)
		}
	}
}

func TestSetForName(t *testing.T) {
	g, ok := SetForName("Intrigue 1E")
	if !ok || g.Name != "Intrigue" || g.Edition != 1 {
		t.Fatalf("SetForName(\"Intrigue 1E\") = %+v, %v", g, ok)
	}
	if _, ok := SetForName("intrigue 1e"); ok {
		t.Error("SetForName should be case sensitive on full names")
	}
}

func TestContainsHandlesEditions(t *testing.T) {
	base, _ := SetForName("Base")
	base1e, _ := SetForName("Base 1E")
	base2e, _ := SetForName("Base 2E")
	seaside, _ := SetForName("Seaside")

	editionless := New("Village", CategoryCard, []string{"Action"}, base, Cost{Coins: 3}, "")
	firstOnly := New("Woodcutter", CategoryCard, []string{"Action"}, base1e, Cost{Coins: 3}, "")
	secondOnly := New("Sentry", CategoryCard, []string{"Action"}, base2e, Cost{Coins: 5}, "")

	if !base2e.Contains(editionless) {
		t.Error("Base 2E should contain editionless Base cards")
	}
	if !base1e.Contains(firstOnly) {
		t.Error("Base 1E should contain its own cards")
	}
	if base1e.Contains(secondOnly) {
		t.Error("Base 1E should not contain Base 2E cards")
	}
	if !base.Contains(editionless) {
		t.Error("Base should contain its own cards")
	}
	if seaside.Contains(editionless) {
		t.Error("Seaside should not contain Base cards")
	}
}

func TestCompleteSets(t *testing.T) {
	sets := CompleteSets()

	seen := make(map[string]bool)
	for _, g := range sets {
		if seen[g.FullName()] {
			t.Errorf("duplicate complete set: %s", g.FullName())
		}
		seen[g.FullName()] = true

		if g.Name == g.FullName() && (g.Name == "Base" || g.Name == "Intrigue") {
			t.Errorf("editionless alias %s should not be a complete set", g.Name)
		}
	}
	if seen["Promo"] {
		t.Error("Promo should not be a complete set")
	}
	// 2 editions each of Base and Intrigue plus 13 standalone expansions.
	if len(sets) != 15 {
		t.Errorf("expected 15 complete sets, got %d", len(sets))
	}
}

func TestArgForm(t *testing.T) {
	g, _ := SetForName("Dark Ages")
	if g.Arg() != "darkages" {
		t.Errorf("Arg() = %q, want %q", g.Arg(), "darkages")
	}
	g, _ = SetForName("Base 2E")
	if g.Arg() != "base2e" {
		t.Errorf("Arg() = %q, want %q", g.Arg(), "base2e")
	}
}
