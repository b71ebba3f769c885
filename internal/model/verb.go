package model

// DefaultTaxonomyID is assumed when a verb record names no taxonomy scheme.
const DefaultTaxonomyID = "bloom"

// Meaning holds the short and expanded definitions of a verb.
type Meaning struct {
	Short    string
	Expanded string
}

// TaskIdea is one suggested assessment task for a verb.
type TaskIdea struct {
	Title            string
	Description      string
	EvidenceProduced []string
}

// VerbEntry represents one (verb text, context) pairing. The same verb text
// may appear as multiple distinct entries at different levels; entries are
// never merged by text.
type VerbEntry struct {
	ID                 string
	Verb               string
	TaxonomyID         string
	PrimaryLevelID     string
	DiagnosticStrength string
	Meaning            Meaning
	AlsoFits           []string
	Levels             []string // expanded membership, known level ids only
	LevelNames         []string // display names for Levels, same order
	Synonyms           []string
	SearchKeywords     []string
	Tags               []string
	TaskIdeas          []TaskIdea
	StemsByLevel       map[string][]string
	GuidanceByLevel    map[string]string
	FormatMappings     FormatMappings
}

// HasLevel reports whether the entry's expanded membership includes id.
func (e *VerbEntry) HasLevel(id string) bool {
	for _, l := range e.Levels {
		if l == id {
			return true
		}
	}
	return false
}

// MapsToFormat reports whether any format mapping references formatID.
func (e *VerbEntry) MapsToFormat(formatID string) bool {
	for _, m := range e.FormatMappings {
		if m.FormatID == formatID {
			return true
		}
	}
	return false
}
