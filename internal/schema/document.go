// Package schema describes the raw verb-dataset document as published,
// before normalization. Fields here mirror the source JSON; everything
// optional stays a pointer-free zero value and is coerced to strict
// defaults by the normalize package.
package schema

// Document is the top-level dataset shape.
type Document struct {
	Meta              Meta     `json:"meta"`
	Taxonomies        Taxonomy `json:"taxonomies"`
	AssessmentFormats []Format `json:"assessmentFormats"`
	Verbs             []Verb   `json:"verbs"`
}

// Meta carries dataset-wide free text.
type Meta struct {
	Disclaimer string `json:"disclaimer"`
}

// Taxonomy holds the declared taxonomies; only Bloom is consumed.
type Taxonomy struct {
	Bloom BloomTaxonomy `json:"bloom"`
}

// BloomTaxonomy declares the ordered cognitive levels.
type BloomTaxonomy struct {
	Levels []Level `json:"levels"`
}

// Level is one raw level declaration.
type Level struct {
	ID              string   `json:"id"`
	Label           string   `json:"label"`
	ShortDefinition string   `json:"shortDefinition"`
	VerbGuardrails  string   `json:"verbGuardrails"`
	Prompts         []string `json:"prompts"`
	Order           Order    `json:"order"`
}

// Format is one raw assessment-format declaration.
type Format struct {
	ID              string   `json:"id"`
	Label           string   `json:"label"`
	Category        string   `json:"category"`
	Scalability     string   `json:"scalability"`
	AIRisk          string   `json:"aiRisk"`
	TypicalEvidence []string `json:"typicalEvidence"`
}

// Verb is one raw verb record.
type Verb struct {
	ID                 string              `json:"id"`
	Verb               string              `json:"verb"`
	TaxonomyID         string              `json:"taxonomyId"`
	PrimaryLevelID     string              `json:"primaryLevelId"`
	AlsoFitsLevelIDs   []string            `json:"alsoFitsLevelIds"`
	StemsByLevel       map[string][]string `json:"stemsByLevel"`
	LevelGuidance      map[string]string   `json:"levelGuidance"`
	DiagnosticStrength string              `json:"diagnosticStrength"`
	Meaning            Meaning             `json:"meaning"`
	Synonyms           []string            `json:"synonyms"`
	SearchKeywords     []string            `json:"searchKeywords"`
	TaskIdeas          []TaskIdea          `json:"taskIdeas"`
	Tags               []string            `json:"tags"`
	FormatMappings     []FormatMapping     `json:"formatMappings"`
}

// Meaning is the raw short/expanded definition pair.
type Meaning struct {
	Short    string `json:"short"`
	Expanded string `json:"expanded"`
}

// TaskIdea is one raw task suggestion.
type TaskIdea struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	EvidenceProduced []string `json:"evidenceProduced"`
}

// FormatMapping is one raw verb-to-format reference.
type FormatMapping struct {
	AssessmentFormatID string   `json:"assessmentFormatId"`
	Suitability        string   `json:"suitability"`
	Rationale          string   `json:"rationale"`
	DesignNotes        []string `json:"designNotes"`
}
