package main

import (
	"fmt"

	"github.com/mjelks/bloomdex/internal/common"
	"github.com/mjelks/bloomdex/internal/config"
	"github.com/mjelks/bloomdex/internal/loader"
)

// loadCatalog loads the configured dataset into a fresh catalog.
func loadCatalog() (*loader.Catalog, error) {
	path, err := config.DatasetPath()
	if err != nil {
		return nil, common.NewUserError(
			"no dataset configured; set dataset.path in config or pass --dataset", err)
	}

	cat, err := loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}
	return cat, nil
}
