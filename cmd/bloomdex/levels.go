package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mjelks/bloomdex/internal/cli"
	"github.com/mjelks/bloomdex/internal/model"
)

func levelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "List the taxonomy levels",
		Long:  `Display the declared cognitive levels in rank order, with definitions and guardrails.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			cat, err := loadCatalog()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("Rank"),
				cli.BoldStyle.Render("Level"),
				cli.BoldStyle.Render("ID"),
				cli.BoldStyle.Render("Definition"))

			for _, lvl := range cat.Levels.Ordered {
				rank := fmt.Sprintf("%d", lvl.Rank)
				if lvl.Rank == model.RankLast {
					rank = "-"
				}
				def := lvl.ShortDefinition
				if def == "" {
					def = cli.SubtleStyle.Render("(no definition)")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					rank, cli.LevelStyle(lvl).Render(lvl.Name), lvl.ID, def)
			}

			for _, lvl := range cat.Levels.Ordered {
				if lvl.Guardrails == "" {
					continue
				}
				fmt.Fprintf(w, "\n%s\t%s\n",
					cli.LevelStyle(lvl).Render(lvl.Name),
					cli.SubtleStyle.Render(strings.TrimSpace(lvl.Guardrails)))
			}

			return nil
		},
	}
}
