package randomizer

import (
	"slices"
	"strings"

	"dominionizer/internal/card"
)

// buildPools derives the per-set candidate pools and the eligible Event and
// Landmark lists, then applies include/exclude adjustments. Pools are private
// copies; catalog entities are never mutated.
func (r *Randomizer) buildPools() error {
	filter := make(map[string]bool, len(r.filterTypes))
	for _, t := range r.filterTypes {
		filter[t] = true
	}

	r.pools = make(map[card.GameSet][]*card.Card, len(r.sets))
	for _, set := range r.sets {
		var pool []*card.Card
		// Containment rather than direct set equality, so an editioned set
		// picks up its editionless parent's cards.
		for _, c := range r.catalog.Cards() {
			if set.Contains(c) && c.CanPick && !c.HasAnyType(filter) {
				pool = append(pool, c)
			}
		}
		r.pools[set] = pool
	}

	r.addSpecialTypeCards()
	r.removeSplitPileCards()

	var err error
	if r.possibleEvents, err = r.eligibleNonCards(card.CategoryEvent, "Events", r.events); err != nil {
		return err
	}
	if r.possibleLandmarks, err = r.eligibleNonCards(card.CategoryLandmark, "Landmarks", r.landmarks); err != nil {
		return err
	}

	if err := r.addInclusions(); err != nil {
		return err
	}
	return r.addExclusions()
}

// addSpecialTypeCards injects the type-collapsed stand-ins belonging to a
// requested set into that set's pool.
func (r *Randomizer) addSpecialTypeCards() {
	for _, c := range card.SpecialTypeCards() {
		if pool, ok := r.pools[c.Set]; ok {
			r.pools[c.Set] = append(pool, c)
		}
	}
}

// removeSplitPileCards injects split-pile stand-ins and drops the individual
// member cards they represent, determined by splitting the stand-in's name.
func (r *Randomizer) removeSplitPileCards() {
	for _, split := range card.SplitPileCards() {
		pool, ok := r.pools[split.Set]
		if !ok {
			continue
		}
		members := strings.Split(split.Name, "/")
		kept := pool[:0:0]
		for _, c := range pool {
			if !slices.Contains(members, c.Name) {
				kept = append(kept, c)
			}
		}
		r.pools[split.Set] = append(kept, split)
	}
}

// eligibleNonCards collects catalog cards of the given category belonging to
// any requested set, failing early when fewer exist than requested.
func (r *Randomizer) eligibleNonCards(category card.Category, label string, count int) ([]*card.Card, error) {
	var cards []*card.Card
	for _, c := range r.catalog.Cards() {
		if c.Category == category && r.anySetContains(c) {
			cards = append(cards, c)
		}
	}
	if count > len(cards) {
		return nil, &SamplingError{Pool: label, Requested: count, Available: len(cards)}
	}
	return cards, nil
}

func (r *Randomizer) anySetContains(c *card.Card) bool {
	for _, set := range r.sets {
		if set.Contains(c) {
			return true
		}
	}
	return false
}

// addInclusions resolves the include arguments and pulls each card out of the
// random pool so it cannot be drawn a second time.
func (r *Randomizer) addInclusions() error {
	cards, err := r.resolveNames(r.include, "-i/--include")
	if err != nil {
		return err
	}
	for _, c := range cards {
		r.included = append(r.included, c)
		r.removeFromPool(c)
	}
	return nil
}

// addExclusions resolves the exclude arguments and removes each card from the
// pools. A card named for both inclusion and exclusion is a configuration error.
func (r *Randomizer) addExclusions() error {
	cards, err := r.resolveNames(r.exclude, "-x/--exclude")
	if err != nil {
		return err
	}
	for _, c := range cards {
		for _, inc := range r.included {
			if inc == c {
				return configErrorf("must not have %q specified for both inclusion and exclusion", c.Name)
			}
		}
		r.removeFromPool(c)
	}
	return nil
}

// removeFromPool removes the card from whichever pool holds it. Cards are
// unique, so the search stops at the first match.
func (r *Randomizer) removeFromPool(target *card.Card) {
	for set, pool := range r.pools {
		if !set.Contains(target) {
			continue
		}
		for i, c := range pool {
			if c == target {
				r.pools[set] = append(append(pool[:0:0], pool[:i]...), pool[i+1:]...)
				return
			}
		}
	}
}

// resolveNames matches each argument against the catalog by normalized name,
// reporting which flag an unresolvable argument came from.
func (r *Randomizer) resolveNames(args []string, flag string) ([]*card.Card, error) {
	var cards []*card.Card
	for _, arg := range args {
		c, ok := r.catalog.FindByName(arg)
		if !ok {
			return nil, &LookupError{Flag: flag, Arg: arg}
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// adjustCounts decrements each containing set's pick count per included card so
// the per-set draws plus the includes equal the requested total. Counted mode
// only.
func (r *Randomizer) adjustCounts() {
	for _, c := range r.included {
		for i, set := range r.sets {
			if set.Contains(c) {
				r.dist.Counts[i]--
			}
		}
	}
}
