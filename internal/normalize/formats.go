package normalize

import (
	"github.com/mjelks/bloomdex/internal/model"
	"github.com/mjelks/bloomdex/internal/schema"
)

// FormatCatalog is the flat assessment-format catalog, in source order.
// Formats are optional; an empty catalog is valid.
type FormatCatalog struct {
	Ordered []model.AssessmentFormat
	names   map[string]string // id -> display name
}

// BuildFormatCatalog builds the format catalog from raw declarations.
func BuildFormatCatalog(raw []schema.Format) *FormatCatalog {
	cat := &FormatCatalog{
		Ordered: make([]model.AssessmentFormat, 0, len(raw)),
		names:   make(map[string]string, len(raw)),
	}

	for _, rf := range raw {
		f := model.AssessmentFormat{
			ID:              rf.ID,
			Name:            rf.Label,
			Category:        rf.Category,
			Scalability:     rf.Scalability,
			AIRisk:          rf.AIRisk,
			TypicalEvidence: rf.TypicalEvidence,
		}
		if f.Name == "" {
			f.Name = rf.ID
		}
		if f.TypicalEvidence == nil {
			f.TypicalEvidence = []string{}
		}
		cat.Ordered = append(cat.Ordered, f)
		cat.names[f.ID] = f.Name
	}

	return cat
}

// Name resolves a format id to its display name. A stale reference should
// not break the caller, so unknown ids echo back verbatim.
func (c *FormatCatalog) Name(id string) string {
	if name, ok := c.names[id]; ok {
		return name
	}
	return id
}

// Known reports whether id is a declared format identifier.
func (c *FormatCatalog) Known(id string) bool {
	_, ok := c.names[id]
	return ok
}

// Len returns the number of declared formats.
func (c *FormatCatalog) Len() int {
	return len(c.Ordered)
}
