package logging

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// DefaultLevel applies when no spec is given anywhere.
const DefaultLevel = LevelWarn

// Spec is a base level plus per-component overrides, written as
// "<level>[,<component>=<level>]...".
type Spec struct {
	BaseLevel  Level
	Components map[string]Level
}

// ParseSpec parses s. The empty string yields DefaultLevel with no
// overrides. A bare level is only accepted as the first element.
func ParseSpec(s string) (Spec, error) {
	spec := Spec{BaseLevel: DefaultLevel, Components: map[string]Level{}}

	for i, part := range strings.Split(strings.TrimSpace(s), ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		component, levelStr, isOverride := strings.Cut(part, "=")
		if !isOverride {
			if i != 0 {
				return spec, fmt.Errorf("base level %q must be first in spec", part)
			}
			level, err := ParseLevel(part)
			if err != nil {
				return spec, err
			}
			spec.BaseLevel = level
			continue
		}
		component = strings.TrimSpace(component)
		if component == "" {
			return spec, fmt.Errorf("empty component name in %q", part)
		}
		level, err := ParseLevel(levelStr)
		if err != nil {
			return spec, fmt.Errorf("component %q: %w", component, err)
		}
		spec.Components[component] = level
	}
	return spec, nil
}

// LevelFor returns the level in effect for component.
func (s *Spec) LevelFor(component string) Level {
	if l, ok := s.Components[component]; ok {
		return l
	}
	return s.BaseLevel
}

// String renders the spec in parseable form with components sorted.
func (s *Spec) String() string {
	parts := []string{s.BaseLevel.String()}
	for _, c := range slices.Sorted(maps.Keys(s.Components)) {
		parts = append(parts, c+"="+s.Components[c].String())
	}
	return strings.Join(parts, ",")
}
