package randomizer

// Mode selects how the total draw is allocated across the requested sets.
type Mode int

const (
	// ModeUniform weights each set by the size of its eligible pool.
	ModeUniform Mode = iota
	// ModeWeighted uses caller-supplied per-set weights.
	ModeWeighted
	// ModeCounted draws a fixed count from each set.
	ModeCounted
)

// Distribution is the tagged distribution variant built once during validation
// and passed down to sampling. Weights is set only in ModeWeighted, Counts only
// in ModeCounted.
type Distribution struct {
	Mode    Mode
	Weights []float64
	Counts  []int
}

func newDistribution(weights []float64, counts []int) Distribution {
	switch {
	case len(weights) > 0:
		return Distribution{Mode: ModeWeighted, Weights: weights}
	case len(counts) > 0:
		return Distribution{Mode: ModeCounted, Counts: append([]int(nil), counts...)}
	default:
		return Distribution{Mode: ModeUniform}
	}
}
