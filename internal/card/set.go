package card

import (
	"fmt"
	"strings"
)

// GameSet identifies a Dominion expansion. Sets with multiple editions have an
// entry per edition plus an editionless alias used for set-name lookups; only
// "complete" sets are presented as user-facing choices.
type GameSet struct {
	Name     string // set name without edition, e.g. "Base"
	Edition  int    // 1 or 2, 0 if the set has no edition
	Complete bool   // true if selectable as a standalone choice
}

// gameSets is the static game set table, in release order.
var gameSets = []GameSet{
	{Name: "Base"},
	{Name: "Base", Edition: 1, Complete: true},
	{Name: "Base", Edition: 2, Complete: true},
	{Name: "Intrigue"},
	{Name: "Intrigue", Edition: 1, Complete: true},
	{Name: "Intrigue", Edition: 2, Complete: true},
	{Name: "Seaside", Complete: true},
	{Name: "Alchemy", Complete: true},
	{Name: "Prosperity", Complete: true},
	{Name: "Cornucopia", Complete: true},
	{Name: "Hinterlands", Complete: true},
	{Name: "Dark Ages", Complete: true},
	{Name: "Guilds", Complete: true},
	{Name: "Adventures", Complete: true},
	{Name: "Empires", Complete: true},
	{Name: "Nocturne", Complete: true},
	{Name: "Renaissance", Complete: true},
	{Name: "Promo"},
}

// FullName returns the set name including the edition suffix, e.g. "Base 2E".
func (g GameSet) FullName() string {
	if g.Edition > 0 {
		return fmt.Sprintf("%s %dE", g.Name, g.Edition)
	}
	return g.Name
}

// Arg returns the set's name in argument form: lowercase, no spaces.
func (g GameSet) Arg() string {
	return strings.ReplaceAll(strings.ToLower(g.FullName()), " ", "")
}

// Contains reports whether this set contains the given card. An edition-specific
// set contains the cards of its editionless parent, so the check is a prefix
// match: this set's full name must start with the card's set's full name.
func (g GameSet) Contains(c *Card) bool {
	return strings.HasPrefix(g.FullName(), c.Set.FullName())
}

func (g GameSet) String() string {
	return g.Name
}

// SetForArg looks up a game set by argument form. The second return value is
// false if no set matches.
func SetForArg(arg string) (GameSet, bool) {
	arg = strings.ReplaceAll(strings.ToLower(arg), " ", "")
	for _, g := range gameSets {
		if g.Arg() == arg {
			return g, true
		}
	}
	return GameSet{}, false
}

// SetForName looks up a game set by full name, including the edition suffix.
func SetForName(name string) (GameSet, bool) {
	for _, g := range gameSets {
		if g.FullName() == name {
			return g, true
		}
	}
	return GameSet{}, false
}

// CompleteSets returns all sets selectable as standalone choices, in release order.
func CompleteSets() []GameSet {
	var sets []GameSet
	for _, g := range gameSets {
		if g.Complete {
			sets = append(sets, g)
		}
	}
	return sets
}
