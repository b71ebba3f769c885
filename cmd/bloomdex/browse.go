package main

import (
	"github.com/spf13/cobra"

	"github.com/mjelks/bloomdex/internal/tui"
)

func browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse levels and verbs interactively",
		Long:  `Open an interactive browser: pick a level, pick a verb, and see its stems, guidance, and assessment-format fit for that level.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			cat, err := loadCatalog()
			if err != nil {
				return err
			}
			return tui.Run(cat)
		},
	}
}
