// Package index provides the query surface over a normalized verb set:
// identity and text lookup, level-ordered grouping, and format filtering.
package index

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/mjelks/bloomdex/internal/common"
	"github.com/mjelks/bloomdex/internal/model"
	"github.com/mjelks/bloomdex/internal/normalize"
)

// Index answers queries over one load's verb entries. It holds no mutable
// state; a fresh load builds a fresh index.
type Index struct {
	levels   *normalize.LevelCatalog
	collator *collate.Collator
	entries  []model.VerbEntry
}

// New builds an index over entries against the level catalog they were
// normalized with.
func New(entries []model.VerbEntry, levels *normalize.LevelCatalog) *Index {
	return &Index{
		entries:  entries,
		levels:   levels,
		collator: collate.New(language.English, collate.IgnoreCase),
	}
}

// Entries returns all entries in source order.
func (ix *Index) Entries() []model.VerbEntry {
	return ix.entries
}

// ByID returns the entry with the given identifier. A linear scan is fine at
// this data scale.
func (ix *Index) ByID(id string) (model.VerbEntry, error) {
	for _, e := range ix.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return model.VerbEntry{}, fmt.Errorf("verb entry %q: %w", id, common.ErrNotFound)
}

// ByText returns all entries whose verb text equals the trimmed query,
// case-insensitively, in source order. A blank query matches nothing.
func (ix *Index) ByText(query string) []model.VerbEntry {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil
	}
	var out []model.VerbEntry
	for _, e := range ix.entries {
		if strings.EqualFold(e.Verb, q) {
			out = append(out, e)
		}
	}
	return out
}

// LevelGroup pairs a declared level with the entries belonging to it.
type LevelGroup struct {
	Level   model.Level
	Entries []model.VerbEntry
}

// GroupByLevel partitions entries across the declared levels, with overlap:
// an entry appears under every level in its expanded membership. Each group
// is sorted by verb text using locale-aware collation; duplicate verb texts
// stay distinct rows.
func (ix *Index) GroupByLevel(entries []model.VerbEntry) []LevelGroup {
	groups := make([]LevelGroup, 0, ix.levels.Len())
	for _, lvl := range ix.levels.Ordered {
		var members []model.VerbEntry
		for _, e := range entries {
			if e.HasLevel(lvl.ID) {
				members = append(members, e)
			}
		}
		sort.SliceStable(members, func(i, j int) bool {
			return ix.collator.CompareString(members[i].Verb, members[j].Verb) < 0
		})
		groups = append(groups, LevelGroup{Level: lvl, Entries: members})
	}
	return groups
}

// ByFormat returns all entries whose format mappings reference formatID.
func (ix *Index) ByFormat(formatID string) []model.VerbEntry {
	var out []model.VerbEntry
	for _, e := range ix.entries {
		if e.MapsToFormat(formatID) {
			out = append(out, e)
		}
	}
	return out
}

// RankForLevel returns the declared rank of a level display name, or a
// last-place sentinel when the name is unrecognized.
func (ix *Index) RankForLevel(name string) int {
	return ix.levels.RankByName(name)
}
