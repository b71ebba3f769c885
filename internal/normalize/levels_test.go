package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mjelks/bloomdex/internal/common"
	"github.com/mjelks/bloomdex/internal/model"
	"github.com/mjelks/bloomdex/internal/schema"
)

func rawLevel(id string, order int) schema.Level {
	return schema.Level{ID: id, Label: id, Order: schema.Order{Value: order, Declared: true}}
}

func TestNormalizeLevelsOrdering(t *testing.T) {
	cat, err := NormalizeLevels([]schema.Level{
		rawLevel("create", 6),
		rawLevel("remember", 1),
		rawLevel("apply", 3),
	})
	require.NoError(t, err)

	var ids []string
	for _, lvl := range cat.Ordered {
		ids = append(ids, lvl.ID)
	}
	assert.Equal(t, []string{"remember", "apply", "create"}, ids)
}

func TestNormalizeLevelsUndeclaredOrderSortsLast(t *testing.T) {
	cat, err := NormalizeLevels([]schema.Level{
		{ID: "mystery", Label: "Mystery"},
		rawLevel("remember", 1),
	})
	require.NoError(t, err)

	assert.Equal(t, "remember", cat.Ordered[0].ID)
	assert.Equal(t, "mystery", cat.Ordered[1].ID)
	assert.Equal(t, model.RankLast, cat.Ordered[1].Rank)
}

func TestNormalizeLevelsTiesKeepInputOrder(t *testing.T) {
	cat, err := NormalizeLevels([]schema.Level{
		rawLevel("b", 2),
		rawLevel("a", 2),
		rawLevel("c", 2),
	})
	require.NoError(t, err)

	var ids []string
	for _, lvl := range cat.Ordered {
		ids = append(ids, lvl.ID)
	}
	assert.Equal(t, []string{"b", "a", "c"}, ids)
}

func TestNormalizeLevelsEmptyIsFatal(t *testing.T) {
	_, err := NormalizeLevels(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNoLevels)
}

func TestNormalizeLevelsDefaults(t *testing.T) {
	cat, err := NormalizeLevels([]schema.Level{{ID: "evaluate"}})
	require.NoError(t, err)

	lvl := cat.Ordered[0]
	assert.Equal(t, "evaluate", lvl.Name, "name defaults to id when label is absent")
	assert.NotNil(t, lvl.Prompts)
	assert.Empty(t, lvl.Prompts)
	assert.NotEqual(t, model.DefaultLevelColor, lvl.Color, "evaluate is in the palette")
}

func TestLevelCatalogLookups(t *testing.T) {
	cat, err := NormalizeLevels([]schema.Level{
		{ID: "understand", Label: "Understand", Order: schema.Order{Value: 2, Declared: true}},
	})
	require.NoError(t, err)

	assert.True(t, cat.Known("understand"))
	assert.False(t, cat.Known("overstand"))
	assert.Equal(t, "Understand", cat.Name("understand"))

	lvl, ok := cat.ByName("Understand")
	require.True(t, ok)
	assert.Equal(t, "understand", lvl.ID)

	assert.Equal(t, 2, cat.RankByName("Understand"))
	assert.Equal(t, model.RankLast, cat.RankByName("No Such Level"))
}
