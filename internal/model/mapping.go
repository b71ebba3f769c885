package model

import "sort"

// SuitabilityTier rates how well a verb entry fits an assessment format.
type SuitabilityTier string

const (
	// TierHigh indicates a strong, defensible fit.
	TierHigh SuitabilityTier = "high"
	// TierContextDependent indicates a fit that depends on task design.
	TierContextDependent SuitabilityTier = "context-dependent"
	// TierMedium is the default when the source declares no tier.
	TierMedium SuitabilityTier = "medium"
	// TierLow indicates a weak fit.
	TierLow SuitabilityTier = "low"
)

// tierRank orders tiers for display, most defensible first.
var tierRank = map[SuitabilityTier]int{
	TierHigh:             0,
	TierContextDependent: 1,
	TierMedium:           2,
	TierLow:              3,
}

// ParseTier normalizes a raw suitability string, defaulting to medium for
// absent or unrecognized values.
func ParseTier(raw string) SuitabilityTier {
	switch SuitabilityTier(raw) {
	case TierHigh, TierContextDependent, TierMedium, TierLow:
		return SuitabilityTier(raw)
	default:
		return TierMedium
	}
}

// Rank returns the display rank of the tier; unknown tiers rank as medium.
func (t SuitabilityTier) Rank() int {
	if r, ok := tierRank[t]; ok {
		return r
	}
	return tierRank[TierMedium]
}

// FormatMapping links a verb entry to an assessment format.
type FormatMapping struct {
	FormatID    string
	FormatName  string
	Suitability SuitabilityTier
	Rationale   string
	DesignNotes []string
}

// FormatMappings is a slice of FormatMapping with sorting helpers.
type FormatMappings []FormatMapping

// SortedByTier returns a copy sorted by suitability tier, stable within a
// tier so source order is preserved among equals.
func (m FormatMappings) SortedByTier() FormatMappings {
	out := make(FormatMappings, len(m))
	copy(out, m)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Suitability.Rank() < out[j].Suitability.Rank()
	})
	return out
}
