package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mjelks/bloomdex/internal/cli"
	"github.com/mjelks/bloomdex/internal/model"
)

func verbsCmd() *cobra.Command {
	var (
		levelID  string
		formatID string
	)

	cmd := &cobra.Command{
		Use:   "verbs",
		Short: "List verbs grouped by level",
		Long: `Display all verb entries grouped under each taxonomy level they belong to.
A verb spanning several levels appears under each of them. Use --level to
show one group, or --format to list verbs mapped to an assessment format.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			cat, err := loadCatalog()
			if err != nil {
				return err
			}
			ix := cat.Index()

			if formatID != "" {
				entries := ix.ByFormat(formatID)
				if len(entries) == 0 {
					fmt.Println(cli.InfoStyle.Render(fmt.Sprintf("No verbs map to format %q.", formatID)))
					return nil
				}
				name := cat.Formats.Name(formatID)
				fmt.Println(cli.TitleStyle.Render("Verbs mapped to " + name))
				for _, e := range entries {
					printVerbLine(e)
				}
				return nil
			}

			for _, group := range ix.GroupByLevel(cat.Verbs) {
				if levelID != "" && group.Level.ID != levelID {
					continue
				}
				header := fmt.Sprintf("%s (%d)", group.Level.Name, len(group.Entries))
				fmt.Println(cli.LevelStyle(group.Level).Render(header))
				if len(group.Entries) == 0 {
					fmt.Println(cli.SubtleStyle.Render("  (no verbs)"))
				}
				for _, e := range group.Entries {
					printVerbLine(e)
				}
				fmt.Println()
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&levelID, "level", "", "only show the group for this level id")
	cmd.Flags().StringVar(&formatID, "format", "", "list verbs mapped to this assessment format id")

	return cmd
}

func printVerbLine(e model.VerbEntry) {
	extra := ""
	if len(e.LevelNames) > 1 {
		extra = cli.SubtleStyle.Render(" [" + strings.Join(e.LevelNames, ", ") + "]")
	}
	meaning := ""
	if e.Meaning.Short != "" {
		meaning = cli.SubtleStyle.Render(" — " + e.Meaning.Short)
	}
	fmt.Printf("  %s%s%s\n", cli.BoldStyle.Render(e.Verb), extra, meaning)
}
