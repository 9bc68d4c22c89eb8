package randomizer

import (
	"fmt"
	"slices"
	"strings"

	"dominionizer/internal/card"
)

// resolveSets converts set arguments into game sets. "all" anywhere in the list
// selects every complete set, keeping only the latest edition of multi-edition
// sets so no card is reachable through two pools at once.
func resolveSets(args []string) ([]card.GameSet, []string) {
	if slices.Contains(args, "all") {
		var sets []card.GameSet
		latest := make(map[string]int)
		for _, g := range card.CompleteSets() {
			latest[g.Name] = max(latest[g.Name], g.Edition)
		}
		for _, g := range card.CompleteSets() {
			if g.Edition == latest[g.Name] {
				sets = append(sets, g)
			}
		}
		return sets, nil
	}
	var sets []card.GameSet
	var violations []string
	for _, arg := range args {
		g, ok := card.SetForArg(arg)
		if !ok {
			violations = append(violations, fmt.Sprintf("unknown game set %q", arg))
			continue
		}
		sets = append(sets, g)
	}
	return sets, violations
}

// validate checks the request for contradictions before any pool is built.
// Every violation found is reported in one ConfigError.
func validate(opts Options, sets []card.GameSet, violations []string) error {
	violations = append(violations, editionConflicts(sets)...)

	if opts.Number < 0 {
		violations = append(violations, "number of cards must not be negative")
	}
	if opts.Events < 0 || opts.Landmarks < 0 {
		violations = append(violations, "event and landmark counts must not be negative")
	}
	if len(opts.Weights) > 0 && len(opts.Counts) > 0 {
		violations = append(violations, "weights and counts are mutually exclusive")
	}
	if v := distributionLength(sets, len(opts.Weights), "weights"); v != "" {
		violations = append(violations, v)
	}
	for _, w := range opts.Weights {
		if w < 0 {
			violations = append(violations, "weights must not be negative")
			break
		}
	}
	if v := distributionLength(sets, len(opts.Counts), "counts"); v != "" {
		violations = append(violations, v)
	}
	if len(opts.Counts) > 0 {
		sum := 0
		for _, n := range opts.Counts {
			sum += n
		}
		if sum != opts.Number {
			violations = append(violations, fmt.Sprintf("counts must add up to %d", opts.Number))
		}
	}
	if len(opts.Include) > opts.Number {
		violations = append(violations, fmt.Sprintf(
			"must not have more cards included (%d) than requested (%d)", len(opts.Include), opts.Number))
	}
	for _, t := range opts.FilterTypes {
		if !slices.Contains(card.FilterableTypes(), strings.ToLower(t)) {
			violations = append(violations, fmt.Sprintf("cannot filter card type %q", t))
		}
	}

	if len(violations) > 0 {
		return &ConfigError{Violations: violations}
	}
	return nil
}

// editionConflicts flags requests naming both editions of the same set.
func editionConflicts(sets []card.GameSet) []string {
	var violations []string
	for _, name := range []string{"Base", "Intrigue"} {
		first, _ := card.SetForName(name + " 1E")
		second, _ := card.SetForName(name + " 2E")
		if slices.Contains(sets, first) && slices.Contains(sets, second) {
			violations = append(violations, fmt.Sprintf(
				"must choose only one of %s, %s", first.FullName(), second.FullName()))
		}
	}
	return violations
}

func distributionLength(sets []card.GameSet, n int, hint string) string {
	if n > 0 && n != len(sets) {
		return fmt.Sprintf("must have equal quantities of sets (%d) and %s (%d)", len(sets), hint, n)
	}
	return ""
}
