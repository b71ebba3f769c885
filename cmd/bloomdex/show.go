package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mjelks/bloomdex/internal/cli"
	"github.com/mjelks/bloomdex/internal/model"
	"github.com/mjelks/bloomdex/internal/resolve"
)

func showCmd() *cobra.Command {
	var levelID string

	cmd := &cobra.Command{
		Use:   "show <verb>",
		Short: "Show one verb in detail",
		Long: `Display every entry matching the given verb text, with example stems and
guidance resolved for the viewing level (--level), the entry's primary level
otherwise, and format mappings sorted by suitability.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cat, err := loadCatalog()
			if err != nil {
				return err
			}

			entries := cat.Index().ByText(args[0])
			if len(entries) == 0 {
				fmt.Println(cli.InfoStyle.Render(fmt.Sprintf("No entries for %q.", args[0])))
				return nil
			}

			for i, e := range entries {
				if i > 0 {
					fmt.Println(cli.SubtleStyle.Render(strings.Repeat("─", 60)))
				}
				printEntry(cat.Levels.Name(e.PrimaryLevelID), e, levelID)
			}

			if cat.Disclaimer != "" {
				fmt.Println(cli.DisclaimerStyle.Render(cat.Disclaimer))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&levelID, "level", "", "resolve stems and guidance for this level id")

	return cmd
}

func printEntry(primaryName string, e model.VerbEntry, selectedLevel string) {
	fmt.Println(cli.TitleStyle.Render(e.Verb) + cli.SubtleStyle.Render("  ("+e.ID+")"))

	if primaryName != "" {
		fmt.Printf("%s %s\n", cli.BoldStyle.Render("Primary level:"), primaryName)
	}
	if len(e.LevelNames) > 0 {
		fmt.Printf("%s %s\n", cli.BoldStyle.Render("Fits levels:"), strings.Join(e.LevelNames, ", "))
	}
	if e.DiagnosticStrength != "" {
		fmt.Printf("%s %s\n", cli.BoldStyle.Render("Diagnostic strength:"), e.DiagnosticStrength)
	}
	if e.Meaning.Short != "" {
		fmt.Printf("\n%s\n", e.Meaning.Short)
	}
	if e.Meaning.Expanded != "" {
		fmt.Printf("%s\n", cli.SubtleStyle.Render(e.Meaning.Expanded))
	}
	if len(e.Synonyms) > 0 {
		fmt.Printf("%s %s\n", cli.BoldStyle.Render("Synonyms:"), strings.Join(e.Synonyms, ", "))
	}

	if stems := resolve.Stems(&e, selectedLevel); len(stems) > 0 {
		fmt.Println()
		fmt.Println(cli.BoldStyle.Render("Example stems"))
		for _, s := range stems {
			fmt.Printf("  • %s\n", s)
		}
	}

	if g := resolve.Guidance(&e, selectedLevel); g != "" {
		fmt.Println()
		fmt.Println(cli.BoldStyle.Render("Guidance"))
		fmt.Printf("  %s\n", g)
	}

	for _, ti := range e.TaskIdeas {
		fmt.Println()
		fmt.Printf("%s %s\n", cli.BoldStyle.Render("Task idea:"), ti.Title)
		if ti.Description != "" {
			fmt.Printf("  %s\n", ti.Description)
		}
		if len(ti.EvidenceProduced) > 0 {
			fmt.Printf("  %s %s\n", cli.SubtleStyle.Render("evidence:"), strings.Join(ti.EvidenceProduced, ", "))
		}
	}

	if mappings := resolve.SortedMappings(&e); len(mappings) > 0 {
		fmt.Println()
		fmt.Println(cli.BoldStyle.Render("Assessment formats"))
		for _, m := range mappings {
			tier := cli.TierStyle(m.Suitability).Render(fmt.Sprintf("%-17s", m.Suitability))
			fmt.Printf("  %s %s", tier, m.FormatName)
			if m.Rationale != "" {
				fmt.Printf("  %s", cli.SubtleStyle.Render(m.Rationale))
			}
			fmt.Println()
			for _, note := range m.DesignNotes {
				fmt.Printf("      %s\n", cli.SubtleStyle.Render("· "+note))
			}
		}
	}

	fmt.Println()
}
