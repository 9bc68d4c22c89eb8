// Package randomizer generates random Dominion kingdoms from a loaded card
// catalog, honoring set, count, weight, include/exclude, and type-filter
// constraints.
package randomizer

import (
	"sort"
	"strings"

	"dominionizer/internal/card"
	"dominionizer/internal/catalog"
)

// Options is the validated configuration surface consumed from the CLI layer.
type Options struct {
	Sets        []string // set names in argument form, or "all"
	Number      int      // total cards to pick
	Weights     []float64
	Counts      []int
	Include     []string
	Exclude     []string
	FilterTypes []string
	Events      int
	Landmarks   int
}

// Option configures a Randomizer.
type Option func(*Randomizer)

// WithRand injects a random source, letting tests run deterministically.
func WithRand(rng RNG) Option {
	return func(r *Randomizer) { r.rng = rng }
}

// Randomizer narrows the catalog to per-set candidate pools and draws a random
// kingdom. A Randomizer serves a single request; pools are private copies, so
// concurrent instances may share one immutable catalog.
type Randomizer struct {
	catalog     *catalog.Catalog
	sets        []card.GameSet
	number      int
	dist        Distribution
	include     []string
	exclude     []string
	filterTypes []string
	events      int
	landmarks   int
	rng         RNG

	pools             map[card.GameSet][]*card.Card
	possibleEvents    []*card.Card
	possibleLandmarks []*card.Card
	included          []*card.Card
}

// New validates the request and builds the candidate pools. It fails with a
// ConfigError, LookupError, or SamplingError before any random draw happens.
func New(cat *catalog.Catalog, opts Options, options ...Option) (*Randomizer, error) {
	sets, violations := resolveSets(opts.Sets)
	if err := validate(opts, sets, violations); err != nil {
		return nil, err
	}

	r := &Randomizer{
		catalog:     cat,
		sets:        sets,
		number:      opts.Number,
		dist:        newDistribution(opts.Weights, opts.Counts),
		include:     opts.Include,
		exclude:     opts.Exclude,
		filterTypes: lowered(opts.FilterTypes),
		events:      opts.Events,
		landmarks:   opts.Landmarks,
		rng:         defaultRNG{},
	}
	for _, o := range options {
		o(r)
	}

	if err := r.buildPools(); err != nil {
		return nil, err
	}
	if r.dist.Mode == ModeCounted {
		r.adjustCounts()
	}
	return r, nil
}

// Kingdom is the selection result: cards grouped by display set name, plus the
// drawn Events and Landmarks.
type Kingdom struct {
	Sets      []SetSelection
	Events    []*card.Card
	Landmarks []*card.Card
}

// SetSelection holds the cards selected from one set, grouped by the set's
// display name with the edition dropped.
type SetSelection struct {
	Name  string
	Cards []*card.Card
}

// Randomize draws the kingdom. The random draw count is the requested number
// minus the included cards, which are merged into the result afterwards.
func (r *Randomizer) Randomize() (*Kingdom, error) {
	counts, err := r.drawCounts()
	if err != nil {
		return nil, err
	}

	selected := make(map[card.GameSet][]*card.Card, len(counts))
	for i, set := range r.sets {
		k := counts[i]
		pool := r.pools[set]
		if k < 0 || k > len(pool) {
			return nil, &SamplingError{Pool: set.FullName(), Requested: k, Available: len(pool)}
		}
	}
	for i, set := range r.sets {
		if counts[i] > 0 {
			selected[set] = sampleWithout(r.rng, r.pools[set], counts[i])
		}
	}
	for _, c := range r.included {
		selected[c.Set] = append(selected[c.Set], c)
	}

	events := sampleWithout(r.rng, r.possibleEvents, r.events)
	landmarks := sampleWithout(r.rng, r.possibleLandmarks, r.landmarks)

	return groupResult(selected, events, landmarks), nil
}

// drawCounts allocates the random draw across the requested sets according to
// the distribution mode, one count per requested set.
func (r *Randomizer) drawCounts() ([]int, error) {
	if r.dist.Mode == ModeCounted {
		return r.dist.Counts, nil
	}

	counts := make([]int, len(r.sets))
	draws := r.number - len(r.included)
	if draws == 0 {
		return counts, nil
	}

	weights := r.dist.Weights
	if r.dist.Mode == ModeUniform {
		// Weight set picks by pool size so larger sets contribute
		// proportionally and small pools are not exhausted.
		weights = make([]float64, len(r.sets))
		for i, set := range r.sets {
			weights[i] = float64(len(r.pools[set]))
		}
	}
	total := 0.0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return nil, &SamplingError{Pool: "requested sets", Requested: draws, Available: 0}
	}

	for i := 0; i < draws; i++ {
		counts[weightedPick(r.rng, weights, total)]++
	}
	return counts, nil
}

// groupResult regroups selections by display set name for presentation: set
// names sorted lexicographically, cards within a set sorted by name.
func groupResult(selected map[card.GameSet][]*card.Card, events, landmarks []*card.Card) *Kingdom {
	byName := make(map[string][]*card.Card)
	for set, cards := range selected {
		byName[set.Name] = append(byName[set.Name], cards...)
	}
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	k := &Kingdom{Events: events, Landmarks: landmarks}
	for _, name := range names {
		cards := byName[name]
		sort.Slice(cards, func(i, j int) bool { return cards[i].Name < cards[j].Name })
		k.Sets = append(k.Sets, SetSelection{Name: name, Cards: cards})
	}
	return k
}

// Total returns the number of kingdom cards in the result across all sets.
func (k *Kingdom) Total() int {
	n := 0
	for _, s := range k.Sets {
		n += len(s.Cards)
	}
	return n
}

func lowered(list []string) []string {
	out := make([]string, len(list))
	for i, s := range list {
		out[i] = strings.ToLower(s)
	}
	return out
}
