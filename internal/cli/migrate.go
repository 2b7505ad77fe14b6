package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMigrateCmd(current func() (*App, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply schema migrations and seed default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := current()
			if err != nil {
				return err
			}
			seeded, err := app.Settings.EnsureDefaults(cmd.Context())
			if err != nil {
				return err
			}
			version, err := app.MigrationVersion()
			if err != nil {
				return fmt.Errorf("failed to read schema version: %w", err)
			}
			printf(cmd, "Schema version: %d\n", version)
			if seeded {
				printLine(cmd, "Default settings seeded.")
			}
			return nil
		},
	}
}
