// Package normalize turns the raw dataset document into strict, immutable
// catalogs. All looseness in the source (absent fields, unknown references,
// unordered levels) is resolved here; downstream packages only ever see a
// fully-formed model.
package normalize

import (
	"fmt"
	"sort"

	"github.com/mjelks/bloomdex/internal/common"
	"github.com/mjelks/bloomdex/internal/model"
	"github.com/mjelks/bloomdex/internal/schema"
)

// LevelCatalog is the ordered, validated taxonomy built from the raw level
// declarations. Built once per load and read-only thereafter.
type LevelCatalog struct {
	Ordered []model.Level
	names   map[string]string      // id -> display name
	byName  map[string]model.Level // display name -> level
}

// NormalizeLevels builds the level catalog. The dataset is unusable without
// a taxonomy, so zero declared levels aborts the load.
func NormalizeLevels(raw []schema.Level) (*LevelCatalog, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("normalize levels: %w", common.ErrNoLevels)
	}

	cat := &LevelCatalog{
		Ordered: make([]model.Level, 0, len(raw)),
		names:   make(map[string]string, len(raw)),
		byName:  make(map[string]model.Level, len(raw)),
	}

	for _, rl := range raw {
		lvl := model.Level{
			ID:              rl.ID,
			Name:            rl.Label,
			ShortDefinition: rl.ShortDefinition,
			Guardrails:      rl.VerbGuardrails,
			Color:           model.ColorForLevel(rl.ID),
			Prompts:         rl.Prompts,
			Rank:            model.RankLast,
		}
		if lvl.Name == "" {
			lvl.Name = rl.ID
		}
		if lvl.Prompts == nil {
			lvl.Prompts = []string{}
		}
		if rl.Order.Declared {
			lvl.Rank = rl.Order.Value
		}
		cat.Ordered = append(cat.Ordered, lvl)
	}

	// Ascending by rank; ties keep input order.
	sort.SliceStable(cat.Ordered, func(i, j int) bool {
		return cat.Ordered[i].Rank < cat.Ordered[j].Rank
	})

	for _, lvl := range cat.Ordered {
		cat.names[lvl.ID] = lvl.Name
		cat.byName[lvl.Name] = lvl
	}

	return cat, nil
}

// Known reports whether id is a declared level identifier.
func (c *LevelCatalog) Known(id string) bool {
	_, ok := c.names[id]
	return ok
}

// Name returns the display name for a level id, or empty when unknown.
func (c *LevelCatalog) Name(id string) string {
	return c.names[id]
}

// ByName returns the full level record for a display name.
func (c *LevelCatalog) ByName(name string) (model.Level, bool) {
	lvl, ok := c.byName[name]
	return lvl, ok
}

// RankByName returns the declared rank for a level display name, or RankLast
// when the name is unrecognized so callers can still sort with it.
func (c *LevelCatalog) RankByName(name string) int {
	if lvl, ok := c.byName[name]; ok {
		return lvl.Rank
	}
	return model.RankLast
}

// Len returns the number of declared levels.
func (c *LevelCatalog) Len() int {
	return len(c.Ordered)
}
