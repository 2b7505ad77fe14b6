package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSettingsCmd(current func() (*App, error)) *cobra.Command {
	settingsCmd := &cobra.Command{
		Use:   "settings",
		Short: "Manage connector settings",
		Long: `View and change the connector's active flag and API key.

Callers must present the API key as a bearer token or api_key field.`,
	}

	var reveal bool
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := current()
			if err != nil {
				return err
			}
			cfg, err := app.Settings.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load settings: %w", err)
			}
			printf(cmd, "Active: %s\n", yesNo(cfg.Active))
			switch {
			case cfg.APIKey == "":
				printLine(cmd, "API Key: (not set)")
			case reveal:
				printf(cmd, "API Key: %s\n", cfg.APIKey)
			default:
				printf(cmd, "API Key: %s\n", maskAPIKey(cfg.APIKey))
			}
			return nil
		},
	}
	showCmd.Flags().BoolVar(&reveal, "reveal", false, "print the full API key")

	setKeyCmd := &cobra.Command{
		Use:   "set-key <key>",
		Short: "Set the API key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := current()
			if err != nil {
				return err
			}
			if err := app.Settings.SetAPIKey(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("failed to set api key: %w", err)
			}
			printLine(cmd, "API key updated.")
			return nil
		},
	}

	rotateCmd := &cobra.Command{
		Use:   "rotate-key",
		Short: "Generate and store a new random API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := current()
			if err != nil {
				return err
			}
			key, err := app.Settings.RotateAPIKey(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to rotate api key: %w", err)
			}
			printLine(cmd, key)
			return nil
		},
	}

	settingsCmd.AddCommand(
		showCmd,
		setKeyCmd,
		rotateCmd,
		newToggleCmd(current, "activate", "Accept submissions", true),
		newToggleCmd(current, "deactivate", "Reject all submissions", false),
	)
	return settingsCmd
}

func newToggleCmd(current func() (*App, error), use, short string, active bool) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := current()
			if err != nil {
				return err
			}
			if err := app.Settings.SetActive(cmd.Context(), active); err != nil {
				return fmt.Errorf("failed to update active flag: %w", err)
			}
			printf(cmd, "Connector %sd.\n", use)
			return nil
		},
	}
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

// maskAPIKey shows only the first and last four characters of long keys.
func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
