package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

const dbFlag = "db"

// NewRootCmd builds the connectorctl command tree. The database is opened
// once per invocation, before any subcommand runs.
func NewRootCmd(open Opener, defaultDBPath string) *cobra.Command {
	var app *App

	root := &cobra.Command{
		Use:           "connectorctl",
		Short:         "Administer the content connector",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			dbPath, err := cmd.Flags().GetString(dbFlag)
			if err != nil {
				return err
			}
			opened, err := open(dbPath)
			if err != nil {
				return err
			}
			app = opened
			return nil
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if app == nil || app.Close == nil {
				return nil
			}
			return app.Close()
		},
	}
	root.PersistentFlags().String(dbFlag, defaultDBPath, "database path without the .sqlite suffix")

	current := func() (*App, error) {
		if app == nil {
			return nil, errors.New("database not opened")
		}
		return app, nil
	}

	root.AddCommand(newSettingsCmd(current))
	root.AddCommand(newPostCmd(current))
	root.AddCommand(newTermsCmd(current))
	root.AddCommand(newMigrateCmd(current))
	return root
}

// printf writes to the command's stdout; cobra's Printf defaults to stderr.
func printf(cmd *cobra.Command, format string, args ...any) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}

func printLine(cmd *cobra.Command, text string) {
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), text)
}
