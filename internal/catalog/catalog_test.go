package catalog

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"dominionizer/internal/card"
)

const sampleData = `[
  {
    "name": "Cellar",
    "category": "Card",
    "types": ["Action"],
    "game_set": "Base",
    "cost": {"coins": 2, "potions": 0, "debt": 0, "has_exception": false},
    "text": "+1 Action. Discard any number of cards, then draw that many."
  },
  {
    "name": "Sentry",
    "category": "Card",
    "types": ["Action"],
    "game_set": "Base 2E",
    "cost": {"coins": 5, "potions": 0, "debt": 0, "has_exception": false},
    "text": ""
  },
  {
    "name": "Triumph",
    "category": "Event",
    "types": ["Event"],
    "game_set": "Empires",
    "cost": {"coins": 0, "potions": 0, "debt": 5, "has_exception": false},
    "text": ""
  }
]`

func TestDecode(t *testing.T) {
	cat, err := Decode(strings.NewReader(sampleData))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cat.Len() != 3 {
		t.Fatalf("expected 3 cards, got %d", cat.Len())
	}

	cellar := cat.Cards()[0]
	if cellar.Name != "Cellar" || cellar.Set.FullName() != "Base" || cellar.Cost.Coins != 2 {
		t.Errorf("unexpected card: %v", cellar)
	}
	if !cellar.CanPick {
		t.Error("Cellar should be pickable")
	}

	sentry := cat.Cards()[1]
	if sentry.Set.Edition != 2 {
		t.Errorf("expected Base 2E, got %s", sentry.Set.FullName())
	}

	triumph := cat.Cards()[2]
	if triumph.CanPick || triumph.InSupply {
		t.Error("Events must not be pickable kingdom cards")
	}
	if triumph.Cost.Debt != 5 {
		t.Errorf("expected debt 5, got %d", triumph.Cost.Debt)
	}
}

func TestDecodeDerivedFieldsNotTrusted(t *testing.T) {
	// Persisted derived flags must be ignored and recomputed.
	data := `[{
	  "name": "Copper",
	  "category": "Card",
	  "types": ["Treasure"],
	  "game_set": "Base",
	  "cost": {"coins": 0, "potions": 0, "debt": 0, "has_exception": false},
	  "text": "",
	  "in_supply": false,
	  "can_pick": true
	}]`
	cat, err := Decode(strings.NewReader(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	copper := cat.Cards()[0]
	if !copper.InSupply {
		t.Error("InSupply must be recomputed, not read from the record")
	}
	if copper.CanPick {
		t.Error("CanPick must be recomputed; basic cards are never pickable")
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			"unknown game set",
			`[{"name": "X", "category": "Card", "types": [], "game_set": "Atlantis", "cost": {}, "text": ""}]`,
		},
		{
			"unknown category",
			`[{"name": "X", "category": "Gizmo", "types": [], "game_set": "Base", "cost": {}, "text": ""}]`,
		},
		{
			"negative cost",
			`[{"name": "X", "category": "Card", "types": [], "game_set": "Base", "cost": {"coins": -1}, "text": ""}]`,
		},
		{
			"malformed json",
			`{"not": "a list"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.data))
			var dataErr *DataError
			if !errors.As(err, &dataErr) {
				t.Fatalf("expected DataError, got %v", err)
			}
		})
	}
}

func TestRecordRoundTrip(t *testing.T) {
	cat, err := Decode(strings.NewReader(sampleData))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records := make([]Record, 0, cat.Len())
	for _, c := range cat.Cards() {
		records = append(records, NewRecord(c))
	}
	out, err := json.Marshal(records)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	again, err := Decode(strings.NewReader(string(out)))
	if err != nil {
		t.Fatalf("re-decode: %v", err)
	}
	if again.Len() != cat.Len() {
		t.Fatalf("round trip changed card count: %d != %d", again.Len(), cat.Len())
	}
	for i, c := range cat.Cards() {
		r := again.Cards()[i]
		if c.Name != r.Name || c.Category != r.Category || c.Set != r.Set ||
			c.Cost != r.Cost || c.Text != r.Text {
			t.Errorf("card %d changed in round trip: %v != %v", i, c, r)
		}
	}
}

func TestFindByName(t *testing.T) {
	cat, err := Decode(strings.NewReader(sampleData))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, arg := range []string{"Cellar", "cellar", "CELLAR", " Cellar "} {
		c, ok := cat.FindByName(arg)
		if !ok || c.Name != "Cellar" {
			t.Errorf("FindByName(%q) = %v, %v", arg, c, ok)
		}
	}
	if _, ok := cat.FindByName("Chapel"); ok {
		t.Error("FindByName should miss on absent cards")
	}
}

func TestNewCatalog(t *testing.T) {
	base, _ := card.SetForName("Base")
	c := card.New("Moat", card.CategoryCard, []string{"Action", "Reaction"}, base, card.Cost{Coins: 2}, "")
	cat := New([]*card.Card{c})
	if cat.Len() != 1 {
		t.Fatalf("expected 1 card, got %d", cat.Len())
	}
	if got, ok := cat.FindByName("moat"); !ok || got != c {
		t.Error("expected to find Moat")
	}
}
