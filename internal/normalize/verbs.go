package normalize

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/mjelks/bloomdex/internal/model"
	"github.com/mjelks/bloomdex/internal/schema"
)

// NormalizeVerbs converts raw verb records into VerbEntry values, in source
// order. Records are never merged: two records with the same verb text stay
// two entries, distinguished by explicit or derived identifiers.
func NormalizeVerbs(raw []schema.Verb, levels *LevelCatalog, formats *FormatCatalog) []model.VerbEntry {
	entries := make([]model.VerbEntry, 0, len(raw))

	for i, rv := range raw {
		e := model.VerbEntry{
			ID:                 rv.ID,
			Verb:               rv.Verb,
			TaxonomyID:         rv.TaxonomyID,
			PrimaryLevelID:     rv.PrimaryLevelID,
			DiagnosticStrength: rv.DiagnosticStrength,
			Meaning:            model.Meaning{Short: rv.Meaning.Short, Expanded: rv.Meaning.Expanded},
			AlsoFits:           emptyIfNil(rv.AlsoFitsLevelIDs),
			Synonyms:           emptyIfNil(rv.Synonyms),
			SearchKeywords:     emptyIfNil(rv.SearchKeywords),
			Tags:               emptyIfNil(rv.Tags),
			StemsByLevel:       copyStems(rv.StemsByLevel),
			GuidanceByLevel:    copyGuidance(rv.LevelGuidance),
		}
		if e.ID == "" {
			e.ID = deriveID(rv.PrimaryLevelID, rv.Verb, i)
		}
		if e.TaxonomyID == "" {
			e.TaxonomyID = model.DefaultTaxonomyID
		}

		e.Levels = ExpandMembership(rv.PrimaryLevelID, e.AlsoFits, e.StemsByLevel, e.GuidanceByLevel, levels)
		e.LevelNames = make([]string, len(e.Levels))
		for j, id := range e.Levels {
			e.LevelNames[j] = levels.Name(id)
		}

		e.TaskIdeas = make([]model.TaskIdea, 0, len(rv.TaskIdeas))
		for _, ti := range rv.TaskIdeas {
			e.TaskIdeas = append(e.TaskIdeas, model.TaskIdea{
				Title:            ti.Title,
				Description:      ti.Description,
				EvidenceProduced: emptyIfNil(ti.EvidenceProduced),
			})
		}

		e.FormatMappings = make(model.FormatMappings, 0, len(rv.FormatMappings))
		for _, fm := range rv.FormatMappings {
			e.FormatMappings = append(e.FormatMappings, model.FormatMapping{
				FormatID:    fm.AssessmentFormatID,
				FormatName:  formats.Name(fm.AssessmentFormatID),
				Suitability: model.ParseTier(fm.Suitability),
				Rationale:   fm.Rationale,
				DesignNotes: emptyIfNil(fm.DesignNotes),
			})
		}

		entries = append(entries, e)
	}

	return entries
}

// ExpandMembership unions the four level-membership signals of a verb record:
// the primary level, the also-fits list, the stem map keys, and the guidance
// map keys. The result is de-duplicated and filtered to declared level ids;
// unknown ids are dropped without failing the record. Map keys are visited in
// sorted order so the result is deterministic, but callers get no ordering
// promise beyond that.
func ExpandMembership(primary string, alsoFits []string, stems map[string][]string, guidance map[string]string, levels *LevelCatalog) []string {
	candidates := make([]string, 0, 1+len(alsoFits)+len(stems)+len(guidance))
	if primary != "" {
		candidates = append(candidates, primary)
	}
	candidates = append(candidates, alsoFits...)
	candidates = append(candidates, sortedKeys(stems)...)
	candidates = append(candidates, sortedGuidanceKeys(guidance)...)

	out := make([]string, 0, len(candidates))
	seen := make(map[string]bool, len(candidates))
	for _, id := range candidates {
		if seen[id] {
			continue
		}
		seen[id] = true
		if !levels.Known(id) {
			slog.Debug("Dropping unknown level id from verb membership", "level", id)
			continue
		}
		out = append(out, id)
	}
	return out
}

// deriveID builds a stable identifier for records that declare none. The
// positional index keeps duplicate verb texts distinct without any global
// coordination.
func deriveID(primary, verb string, index int) string {
	return fmt.Sprintf("%s-%s-%d", slug(primary), slug(verb), index)
}

// slug lowercases and reduces a string to hyphen-separated alphanumeric runs.
func slug(s string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedGuidanceKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func copyStems(m map[string][]string) map[string][]string {
	out := make(map[string][]string, len(m))
	for k, v := range m {
		out[k] = emptyIfNil(v)
	}
	return out
}

func copyGuidance(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
