package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"dominionizer/internal/card"
)

// DataError reports a malformed catalog record. No partial catalog is returned
// when any record fails to load.
type DataError struct {
	Name   string // card name of the offending record, if known
	Reason string
}

func (e *DataError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("invalid catalog record %q: %s", e.Name, e.Reason)
	}
	return fmt.Sprintf("invalid catalog data: %s", e.Reason)
}

// Record is the persisted form of a card. Derived flags are deliberately absent:
// the loader recomputes them and never trusts persisted values.
type Record struct {
	Name     string     `json:"name"`
	Category string     `json:"category"`
	Types    []string   `json:"types"`
	GameSet  string     `json:"game_set"`
	Cost     CostRecord `json:"cost"`
	Text     string     `json:"text"`
}

// CostRecord is the persisted form of a cost.
type CostRecord struct {
	Coins        int  `json:"coins"`
	Potions      int  `json:"potions"`
	Debt         int  `json:"debt"`
	HasException bool `json:"has_exception"`
}

// Catalog is the full immutable card list loaded once per randomizer run.
type Catalog struct {
	cards []*card.Card
}

// New builds a catalog from already-constructed cards.
func New(cards []*card.Card) *Catalog {
	return &Catalog{cards: cards}
}

// Load reads a catalog from a JSON file.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening catalog: %v", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode parses a catalog from JSON and constructs every card, recomputing the
// derived flags from category, text, and types.
func Decode(r io.Reader) (*Catalog, error) {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, &DataError{Reason: err.Error()}
	}

	cards := make([]*card.Card, 0, len(records))
	for _, rec := range records {
		c, err := rec.Card()
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return &Catalog{cards: cards}, nil
}

// Card resolves the record against the taxonomy and builds the card entity.
func (r Record) Card() (*card.Card, error) {
	set, ok := card.SetForName(r.GameSet)
	if !ok {
		return nil, &DataError{Name: r.Name, Reason: fmt.Sprintf("unknown game set %q", r.GameSet)}
	}
	if !card.KnownCategory(r.Category) {
		return nil, &DataError{Name: r.Name, Reason: fmt.Sprintf("unknown category %q", r.Category)}
	}
	if r.Cost.Coins < 0 || r.Cost.Potions < 0 || r.Cost.Debt < 0 {
		return nil, &DataError{Name: r.Name, Reason: "negative cost component"}
	}
	cost := card.Cost{
		Coins:        r.Cost.Coins,
		Potions:      r.Cost.Potions,
		Debt:         r.Cost.Debt,
		HasException: r.Cost.HasException,
	}
	return card.New(r.Name, card.Category(r.Category), r.Types, set, cost, r.Text), nil
}

// NewRecord converts a card back to its persisted shape.
func NewRecord(c *card.Card) Record {
	return Record{
		Name:     c.Name,
		Category: string(c.Category),
		Types:    c.Types,
		GameSet:  c.Set.FullName(),
		Cost: CostRecord{
			Coins:        c.Cost.Coins,
			Potions:      c.Cost.Potions,
			Debt:         c.Cost.Debt,
			HasException: c.Cost.HasException,
		},
		Text: c.Text,
	}
}

// Cards returns the loaded card list. Callers must not mutate it.
func (c *Catalog) Cards() []*card.Card {
	return c.cards
}

// Len returns the number of cards in the catalog.
func (c *Catalog) Len() int {
	return len(c.cards)
}

// FindByName looks up a card by normalized name.
func (c *Catalog) FindByName(name string) (*card.Card, bool) {
	want := card.Normalize(name)
	for _, cd := range c.cards {
		if card.Normalize(cd.Name) == want {
			return cd, true
		}
	}
	return nil, false
}
