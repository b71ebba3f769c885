package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mjelks/bloomdex/internal/common"
	"github.com/mjelks/bloomdex/internal/model"
	"github.com/mjelks/bloomdex/internal/normalize"
	"github.com/mjelks/bloomdex/internal/schema"
)

func testIndex(t *testing.T) (*Index, *normalize.LevelCatalog) {
	t.Helper()

	levels, err := normalize.NormalizeLevels([]schema.Level{
		{ID: "understand", Label: "Understand", Order: schema.Order{Value: 2, Declared: true}},
		{ID: "apply", Label: "Apply", Order: schema.Order{Value: 3, Declared: true}},
		{ID: "analyse", Label: "Analyse", Order: schema.Order{Value: 4, Declared: true}},
		{ID: "evaluate", Label: "Evaluate", Order: schema.Order{Value: 5, Declared: true}},
	})
	require.NoError(t, err)

	formats := normalize.BuildFormatCatalog([]schema.Format{
		{ID: "essay", Label: "Essay"},
		{ID: "mcq", Label: "Multiple choice"},
	})

	entries := normalize.NormalizeVerbs([]schema.Verb{
		{
			Verb: "analyse", PrimaryLevelID: "analyse",
			FormatMappings: []schema.FormatMapping{{AssessmentFormatID: "essay", Suitability: "high"}},
		},
		{
			Verb: "analyse", PrimaryLevelID: "evaluate",
			FormatMappings: []schema.FormatMapping{{AssessmentFormatID: "mcq"}},
		},
		{
			Verb: "explain", PrimaryLevelID: "understand",
			StemsByLevel: map[string][]string{"apply": {"Use the idea to..."}},
		},
		{Verb: "Örtlich", PrimaryLevelID: "apply"},
		{Verb: "zone", PrimaryLevelID: "apply"},
	}, levels, formats)

	return New(entries, levels), levels
}

func TestByID(t *testing.T) {
	ix, _ := testIndex(t)

	e, err := ix.ByID("analyse-analyse-0")
	require.NoError(t, err)
	assert.Equal(t, "analyse", e.Verb)

	_, err = ix.ByID("nope")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestByTextMatchesAllDuplicates(t *testing.T) {
	ix, _ := testIndex(t)

	got := ix.ByText("analyse")
	require.Len(t, got, 2)
	assert.Equal(t, "analyse", got[0].PrimaryLevelID)
	assert.Equal(t, "evaluate", got[1].PrimaryLevelID)
	assert.NotEqual(t, got[0].ID, got[1].ID)
}

func TestByTextTrimsAndIgnoresCase(t *testing.T) {
	ix, _ := testIndex(t)

	assert.Len(t, ix.ByText("  ANALYSE  "), 2)
	assert.Len(t, ix.ByText("Explain"), 1)
}

func TestByTextBlankQueryMatchesNothing(t *testing.T) {
	ix, _ := testIndex(t)

	assert.Empty(t, ix.ByText(""))
	assert.Empty(t, ix.ByText("   "))
}

func TestGroupByLevelPartitionWithOverlap(t *testing.T) {
	ix, levels := testIndex(t)
	groups := ix.GroupByLevel(ix.Entries())

	require.Len(t, groups, levels.Len())

	byID := make(map[string]LevelGroup, len(groups))
	for _, g := range groups {
		byID[g.Level.ID] = g
	}

	// explain has stems under apply, so it shows under both levels.
	assert.Len(t, byID["understand"].Entries, 1)
	require.Len(t, byID["apply"].Entries, 3)

	// Every group member really carries that level; no entry leaks into a
	// group outside its membership.
	for _, g := range groups {
		for _, e := range g.Entries {
			assert.True(t, e.HasLevel(g.Level.ID),
				"%q grouped under %q without membership", e.Verb, g.Level.ID)
		}
	}
	for _, e := range ix.Entries() {
		for _, id := range e.Levels {
			found := false
			for _, member := range byID[id].Entries {
				if member.ID == e.ID {
					found = true
				}
			}
			assert.True(t, found, "%q missing from group %q", e.Verb, id)
		}
	}
}

func TestGroupByLevelKeepsDuplicateTexts(t *testing.T) {
	ix, _ := testIndex(t)
	groups := ix.GroupByLevel(ix.Entries())

	total := 0
	for _, g := range groups {
		for _, e := range g.Entries {
			if e.Verb == "analyse" {
				total++
			}
		}
	}
	assert.Equal(t, 2, total, "duplicate verb texts must stay distinct rows")
}

func TestGroupByLevelSortsWithinGroup(t *testing.T) {
	ix, _ := testIndex(t)
	groups := ix.GroupByLevel(ix.Entries())

	for _, g := range groups {
		if g.Level.ID != "apply" {
			continue
		}
		require.Len(t, g.Entries, 3)
		// Collated order, not byte order: Ö sorts with O, ahead of z.
		assert.Equal(t, "explain", g.Entries[0].Verb)
		assert.Equal(t, "Örtlich", g.Entries[1].Verb)
		assert.Equal(t, "zone", g.Entries[2].Verb)
	}
}

func TestByFormat(t *testing.T) {
	ix, _ := testIndex(t)

	essay := ix.ByFormat("essay")
	require.Len(t, essay, 1)
	assert.Equal(t, "analyse", essay[0].PrimaryLevelID)

	assert.Empty(t, ix.ByFormat("viva"))
}

func TestRankForLevel(t *testing.T) {
	ix, _ := testIndex(t)

	assert.Equal(t, 4, ix.RankForLevel("Analyse"))
	assert.Equal(t, model.RankLast, ix.RankForLevel("Imaginary"))
}
