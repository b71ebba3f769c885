package storage

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mjelks/bloomdex/internal/loader"
)

const exportFixture = `{
	"taxonomies": {"bloom": {"levels": [
		{"id": "remember", "label": "Remember", "order": 1},
		{"id": "apply", "label": "Apply", "order": 3}
	]}},
	"assessmentFormats": [{"id": "mcq", "label": "Multiple choice"}],
	"verbs": [
		{"verb": "define", "primaryLevelId": "remember",
		 "formatMappings": [{"assessmentFormatId": "mcq", "suitability": "high"}]},
		{"verb": "use", "primaryLevelId": "apply",
		 "stemsByLevel": {"remember": ["Recall before using"]}}
	]
}`

func openTestStore(t *testing.T) (*SQLiteStorage, *loader.Catalog) {
	t.Helper()

	cat, err := loader.FromReader(strings.NewReader(exportFixture))
	require.NoError(t, err)

	store, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "snapshot.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(context.Background()))
	return store, cat
}

func TestSaveCatalogRowCounts(t *testing.T) {
	store, cat := openTestStore(t)
	ctx := context.Background()

	var calls int
	require.NoError(t, store.SaveCatalog(ctx, cat, func(completed, total int) {
		calls++
		assert.Equal(t, 2, total)
	}))
	assert.Equal(t, 2, calls)

	assert.Equal(t, 2, countRows(t, store, "levels"))
	assert.Equal(t, 1, countRows(t, store, "assessment_formats"))
	assert.Equal(t, 2, countRows(t, store, "verbs"))
	// define -> remember; use -> apply + remember (stem key).
	assert.Equal(t, 3, countRows(t, store, "verb_levels"))
	assert.Equal(t, 1, countRows(t, store, "format_mappings"))
}

func TestSaveCatalogReplacesPreviousSnapshot(t *testing.T) {
	store, cat := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveCatalog(ctx, cat, nil))
	require.NoError(t, store.SaveCatalog(ctx, cat, nil))

	assert.Equal(t, 2, countRows(t, store, "verbs"))
	assert.Equal(t, 2, countRows(t, store, "levels"))
}

func TestNewSQLiteStorageRequiresPath(t *testing.T) {
	_, err := NewSQLiteStorage("")
	require.Error(t, err)
}

func countRows(t *testing.T, store *SQLiteStorage, table string) int {
	t.Helper()
	var n int
	require.NoError(t, store.db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}
