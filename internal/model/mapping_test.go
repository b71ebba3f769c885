package model

import "testing"

func TestParseTier(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want SuitabilityTier
	}{
		{name: "high", raw: "high", want: TierHigh},
		{name: "medium", raw: "medium", want: TierMedium},
		{name: "low", raw: "low", want: TierLow},
		{name: "context-dependent", raw: "context-dependent", want: TierContextDependent},
		{name: "absent defaults to medium", raw: "", want: TierMedium},
		{name: "unknown defaults to medium", raw: "excellent", want: TierMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseTier(tt.raw); got != tt.want {
				t.Errorf("ParseTier(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestFormatMappingsSortedByTier(t *testing.T) {
	m := FormatMappings{
		{FormatID: "essay", Suitability: TierLow},
		{FormatID: "viva", Suitability: TierHigh},
		{FormatID: "mcq", Suitability: TierMedium},
		{FormatID: "portfolio", Suitability: TierContextDependent},
		{FormatID: "project", Suitability: TierHigh},
	}

	got := m.SortedByTier()

	wantOrder := []string{"viva", "project", "portfolio", "mcq", "essay"}
	for i, id := range wantOrder {
		if got[i].FormatID != id {
			t.Errorf("position %d = %q, want %q", i, got[i].FormatID, id)
		}
	}

	// Input order untouched.
	if m[0].FormatID != "essay" {
		t.Errorf("SortedByTier mutated its receiver")
	}
}

func TestFormatMappingsSortStableWithinTier(t *testing.T) {
	m := FormatMappings{
		{FormatID: "a", Suitability: TierHigh},
		{FormatID: "b", Suitability: TierHigh},
		{FormatID: "c", Suitability: TierHigh},
	}

	got := m.SortedByTier()
	for i, id := range []string{"a", "b", "c"} {
		if got[i].FormatID != id {
			t.Errorf("stable sort broke source order: position %d = %q", i, got[i].FormatID)
		}
	}
}

func TestColorForLevel(t *testing.T) {
	if got := ColorForLevel("create"); got == DefaultLevelColor {
		t.Errorf("create should have a palette color")
	}
	if got := ColorForLevel("transmogrify"); got != DefaultLevelColor {
		t.Errorf("unknown level should get the default color, got %q", got)
	}
}
