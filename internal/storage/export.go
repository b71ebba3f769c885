package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/mjelks/bloomdex/internal/loader"
	"github.com/mjelks/bloomdex/internal/model"
)

const exportSchema = `
CREATE TABLE IF NOT EXISTS levels (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	rank INTEGER NOT NULL,
	color TEXT NOT NULL,
	short_definition TEXT,
	guardrails TEXT
);

CREATE TABLE IF NOT EXISTS assessment_formats (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	category TEXT,
	scalability TEXT,
	ai_risk TEXT
);

CREATE TABLE IF NOT EXISTS verbs (
	id TEXT PRIMARY KEY,
	verb TEXT NOT NULL,
	taxonomy_id TEXT NOT NULL,
	primary_level_id TEXT,
	diagnostic_strength TEXT,
	meaning_short TEXT,
	meaning_expanded TEXT,
	synonyms TEXT,
	tags TEXT
);

CREATE TABLE IF NOT EXISTS verb_levels (
	verb_id TEXT NOT NULL REFERENCES verbs(id),
	level_id TEXT NOT NULL REFERENCES levels(id),
	PRIMARY KEY (verb_id, level_id)
);

CREATE TABLE IF NOT EXISTS format_mappings (
	verb_id TEXT NOT NULL REFERENCES verbs(id),
	format_id TEXT NOT NULL,
	format_name TEXT NOT NULL,
	suitability TEXT NOT NULL,
	rationale TEXT
);
`

// Migrate creates the snapshot tables if they do not exist.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, exportSchema); err != nil {
		return fmt.Errorf("failed to create snapshot schema: %w", err)
	}
	return nil
}

// SaveCatalog writes a full catalog snapshot in one transaction, replacing
// any previous snapshot. progress, if non-nil, is called after each verb
// entry with (completed, total).
func (s *SQLiteStorage) SaveCatalog(ctx context.Context, cat *loader.Catalog, progress func(completed, total int)) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"format_mappings", "verb_levels", "verbs", "assessment_formats", "levels"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for _, lvl := range cat.Levels.Ordered {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO levels (id, name, rank, color, short_definition, guardrails) VALUES (?, ?, ?, ?, ?, ?)`,
			lvl.ID, lvl.Name, lvl.Rank, lvl.Color, lvl.ShortDefinition, lvl.Guardrails)
		if err != nil {
			return fmt.Errorf("failed to insert level %s: %w", lvl.ID, err)
		}
	}

	for _, f := range cat.Formats.Ordered {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO assessment_formats (id, name, category, scalability, ai_risk) VALUES (?, ?, ?, ?, ?)`,
			f.ID, f.Name, f.Category, f.Scalability, f.AIRisk)
		if err != nil {
			return fmt.Errorf("failed to insert format %s: %w", f.ID, err)
		}
	}

	total := len(cat.Verbs)
	for i, e := range cat.Verbs {
		if err := insertVerb(ctx, tx, &e); err != nil {
			return err
		}
		if progress != nil {
			progress(i+1, total)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return nil
}

func insertVerb(ctx context.Context, tx *sql.Tx, e *model.VerbEntry) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO verbs (id, verb, taxonomy_id, primary_level_id, diagnostic_strength,
			meaning_short, meaning_expanded, synonyms, tags)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Verb, e.TaxonomyID, e.PrimaryLevelID, e.DiagnosticStrength,
		e.Meaning.Short, e.Meaning.Expanded,
		strings.Join(e.Synonyms, ","), strings.Join(e.Tags, ","))
	if err != nil {
		return fmt.Errorf("failed to insert verb %s: %w", e.ID, err)
	}

	for _, levelID := range e.Levels {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO verb_levels (verb_id, level_id) VALUES (?, ?)`, e.ID, levelID)
		if err != nil {
			return fmt.Errorf("failed to insert verb level %s/%s: %w", e.ID, levelID, err)
		}
	}

	for _, m := range e.FormatMappings {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO format_mappings (verb_id, format_id, format_name, suitability, rationale)
			 VALUES (?, ?, ?, ?, ?)`,
			e.ID, m.FormatID, m.FormatName, string(m.Suitability), m.Rationale)
		if err != nil {
			return fmt.Errorf("failed to insert format mapping %s/%s: %w", e.ID, m.FormatID, err)
		}
	}

	return nil
}
