package main

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/mjelks/bloomdex/internal/cli"
	"github.com/mjelks/bloomdex/internal/config"
	"github.com/mjelks/bloomdex/internal/storage"
)

func exportCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the normalized dataset to SQLite",
		Long: `Write the normalized levels, formats, verbs, level memberships, and format
mappings to a local SQLite database for querying with plain SQL.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cat, err := loadCatalog()
			if err != nil {
				return err
			}

			if dbPath == "" {
				dbPath = config.DatabasePath()
			}

			store, err := storage.NewSQLiteStorage(dbPath)
			if err != nil {
				return fmt.Errorf("failed to open snapshot database: %w", err)
			}
			defer func() { _ = store.Close() }()

			if err := store.Migrate(ctx); err != nil {
				return err
			}

			bar := progressbar.NewOptions(len(cat.Verbs),
				progressbar.OptionSetDescription("Exporting verbs..."),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
			)

			err = store.SaveCatalog(ctx, cat, func(completed, _ int) {
				_ = bar.Set(completed)
			})
			if err != nil {
				return fmt.Errorf("export failed: %w", err)
			}
			_ = bar.Finish()

			fmt.Println()
			fmt.Println(cli.InfoStyle.Render(fmt.Sprintf(
				"Exported %d levels, %d formats, %d verbs to %s",
				cat.Levels.Len(), cat.Formats.Len(), len(cat.Verbs), dbPath)))

			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "snapshot database path")

	return cmd
}
