// Package resolve selects which level's content to show for a verb entry.
//
// A user may reach a verb from a level that is not its primary one (for
// example via a secondary-level browse), so stems and guidance resolve
// against the level in view first, then the entry's primary level, then
// whatever level-keyed content exists at all. Missing content degrades to an
// empty value, never an error.
package resolve

import (
	"github.com/mjelks/bloomdex/internal/model"
)

// Stems resolves the example outcome stems for an entry viewed from
// selectedLevel. Pass an empty selectedLevel when no level is in view.
func Stems(e *model.VerbEntry, selectedLevel string) []string {
	stems, ok := fromLevelMap(e.StemsByLevel, selectedLevel, e.PrimaryLevelID, func(v []string) bool {
		return len(v) > 0
	})
	if !ok {
		return []string{}
	}
	return stems
}

// Guidance resolves the guidance text for an entry viewed from selectedLevel.
func Guidance(e *model.VerbEntry, selectedLevel string) string {
	text, ok := fromLevelMap(e.GuidanceByLevel, selectedLevel, e.PrimaryLevelID, func(v string) bool {
		return v != ""
	})
	if !ok {
		return ""
	}
	return text
}

// SortedMappings returns the entry's format mappings ordered by suitability
// tier, most defensible first, stable within a tier.
func SortedMappings(e *model.VerbEntry) model.FormatMappings {
	return e.FormatMappings.SortedByTier()
}

// fromLevelMap applies the shared three-tier fallback chain over a
// level-keyed map: the selected level's value, then the primary level's,
// then whatever sits under the map's first key (sorted order stands in for
// source key order, which Go maps do not preserve). nonEmpty decides whether
// the first two tiers count as present; the last tier returns its value
// as-is so "no examples yet" stays an empty value rather than a miss.
func fromLevelMap[V any](m map[string]V, selected, primary string, nonEmpty func(V) bool) (V, bool) {
	var zero V
	if len(m) == 0 {
		return zero, false
	}
	if selected != "" {
		if v, ok := m[selected]; ok && nonEmpty(v) {
			return v, true
		}
	}
	if primary != "" {
		if v, ok := m[primary]; ok && nonEmpty(v) {
			return v, true
		}
	}
	first := ""
	for k := range m {
		if first == "" || k < first {
			first = k
		}
	}
	return m[first], true
}
