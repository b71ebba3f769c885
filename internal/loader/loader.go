// Package loader builds a complete, immutable catalog from one raw dataset
// document. A load either produces a fully-formed catalog or an error;
// nothing partial is ever handed out, so consumers can never observe a mix
// of stale and fresh data.
package loader

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mjelks/bloomdex/internal/common"
	"github.com/mjelks/bloomdex/internal/index"
	"github.com/mjelks/bloomdex/internal/model"
	"github.com/mjelks/bloomdex/internal/normalize"
	"github.com/mjelks/bloomdex/internal/schema"
)

// Catalog is one load's normalized view of the dataset. It is read-only;
// reloading produces a new Catalog rather than mutating this one.
type Catalog struct {
	Levels     *normalize.LevelCatalog
	Formats    *normalize.FormatCatalog
	Verbs      []model.VerbEntry
	Disclaimer string
	idx        *index.Index
}

// Load reads and normalizes the dataset at path.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return FromReader(f)
}

// FromReader decodes and normalizes a dataset document from r.
func FromReader(r io.Reader) (*Catalog, error) {
	doc, err := schema.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrDatasetUnusable, err)
	}
	return FromDocument(doc)
}

// FromDocument normalizes an already-decoded document.
func FromDocument(doc *schema.Document) (*Catalog, error) {
	levels, err := normalize.NormalizeLevels(doc.Taxonomies.Bloom.Levels)
	if err != nil {
		return nil, err
	}
	formats := normalize.BuildFormatCatalog(doc.AssessmentFormats)
	verbs := normalize.NormalizeVerbs(doc.Verbs, levels, formats)

	slog.Debug("Dataset normalized",
		"levels", levels.Len(),
		"formats", formats.Len(),
		"verbs", len(verbs))

	return &Catalog{
		Levels:     levels,
		Formats:    formats,
		Verbs:      verbs,
		Disclaimer: doc.Meta.Disclaimer,
		idx:        index.New(verbs, levels),
	}, nil
}

// Index returns the query surface over this catalog's verbs.
func (c *Catalog) Index() *index.Index {
	return c.idx
}
