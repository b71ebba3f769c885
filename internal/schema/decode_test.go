package schema

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeFullDocument(t *testing.T) {
	doc, err := Decode(strings.NewReader(`{
		"meta": {"disclaimer": "Suitability ratings are guidance, not rules."},
		"taxonomies": {"bloom": {"levels": [
			{"id": "remember", "label": "Remember", "order": 1},
			{"id": "understand", "label": "Understand", "order": 2, "prompts": ["What is...?"]}
		]}},
		"assessmentFormats": [
			{"id": "mcq", "label": "Multiple choice", "category": "closed", "typicalEvidence": ["selected answers"]}
		],
		"verbs": [
			{"verb": "define", "primaryLevelId": "remember",
			 "stemsByLevel": {"remember": ["Define the term X"]},
			 "formatMappings": [{"assessmentFormatId": "mcq", "suitability": "high"}]}
		]
	}`))
	require.NoError(t, err)

	assert.Equal(t, "Suitability ratings are guidance, not rules.", doc.Meta.Disclaimer)
	require.Len(t, doc.Taxonomies.Bloom.Levels, 2)
	assert.True(t, doc.Taxonomies.Bloom.Levels[0].Order.Declared)
	assert.Equal(t, 1, doc.Taxonomies.Bloom.Levels[0].Order.Value)
	require.Len(t, doc.Verbs, 1)
	assert.Equal(t, "define", doc.Verbs[0].Verb)
	assert.Equal(t, []string{"Define the term X"}, doc.Verbs[0].StemsByLevel["remember"])
}

func TestDecodeOrderTolerance(t *testing.T) {
	tests := []struct {
		name         string
		json         string
		wantDeclared bool
		wantValue    int
	}{
		{name: "numeric", json: `{"id": "x", "order": 3}`, wantDeclared: true, wantValue: 3},
		{name: "float truncates", json: `{"id": "x", "order": 2.9}`, wantDeclared: true, wantValue: 2},
		{name: "absent", json: `{"id": "x"}`, wantDeclared: false},
		{name: "string junk", json: `{"id": "x", "order": "first"}`, wantDeclared: false},
		{name: "null", json: `{"id": "x", "order": null}`, wantDeclared: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var lvl Level
			require.NoError(t, json.Unmarshal([]byte(tt.json), &lvl))
			assert.Equal(t, tt.wantDeclared, lvl.Order.Declared)
			if tt.wantDeclared {
				assert.Equal(t, tt.wantValue, lvl.Order.Value)
			}
		})
	}
}

func TestDecodeStructuralFailure(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"verbs": "not an array"`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse dataset document")
}

func TestDecodeEmptyDocument(t *testing.T) {
	doc, err := Decode(strings.NewReader(`{}`))
	require.NoError(t, err)
	assert.Empty(t, doc.Taxonomies.Bloom.Levels)
	assert.Empty(t, doc.AssessmentFormats)
	assert.Empty(t, doc.Verbs)
}
