package randomizer

import (
	"fmt"
	"strings"
)

// ConfigError reports a contradictory or infeasible request. All violations
// found during validation are collected into a single error so the caller sees
// the full context at once.
type ConfigError struct {
	Violations []string
}

func (e *ConfigError) Error() string {
	return "invalid configuration: " + strings.Join(e.Violations, "; ")
}

func configErrorf(format string, args ...any) *ConfigError {
	return &ConfigError{Violations: []string{fmt.Sprintf(format, args...)}}
}

// LookupError reports an include or exclude argument that matches no card in
// the catalog.
type LookupError struct {
	Flag string // the option the argument came from, e.g. "-i/--include"
	Arg  string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("unable to find card specified via %s: %s", e.Flag, e.Arg)
}

// SamplingError reports a draw request exceeding the available pool. It is
// surfaced before any random draws are committed.
type SamplingError struct {
	Pool      string // what was being drawn from, e.g. a set name or "Events"
	Requested int
	Available int
}

func (e *SamplingError) Error() string {
	return fmt.Sprintf("too few cards available in %s: requested %d, have %d",
		e.Pool, e.Requested, e.Available)
}
