package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mjelks/bloomdex/internal/cli"
)

func formatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the assessment formats",
		Long:  `Display the declared assessment formats with their category and typical evidence.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			cat, err := loadCatalog()
			if err != nil {
				return err
			}

			if cat.Formats.Len() == 0 {
				fmt.Println(cli.InfoStyle.Render("The dataset declares no assessment formats."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("ID"),
				cli.BoldStyle.Render("Format"),
				cli.BoldStyle.Render("Category"),
				cli.BoldStyle.Render("Typical evidence"))

			for _, f := range cat.Formats.Ordered {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					f.ID, f.Name, f.Category, strings.Join(f.TypicalEvidence, "; "))
			}
			_ = w.Flush()

			if cat.Disclaimer != "" {
				fmt.Println()
				fmt.Println(cli.DisclaimerStyle.Render(cat.Disclaimer))
			}

			return nil
		},
	}
}
