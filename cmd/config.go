package cmd

import (
	"github.com/spf13/cobra"

	"github.com/y0ung3r/vk/internal/app"
)

var (
	//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Configuration management commands",
		Long: `Manage the configuration file.

Use 'config set-token' to store your access token.`,
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
	configSetTokenCmd = &cobra.Command{
		Use:   "set-token {token}",
		Short: "Store the access token in the configuration file",
		Long: `Store the access token in the configuration file, keeping the rest
of the file exactly as it was. A missing file is created.

Obtain a token through the OAuth flow with the audio scope, then:
vk config set-token "d51aef55021d0f34..."`,
		Args:             cobra.ExactArgs(1),
		PersistentPreRun: initConfigTolerant,
		Run: func(cmd *cobra.Command, args []string) {
			app.ExecuteConfigSetTokenCommand(cmd.Context(), appConfig, args[0])
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	// Add set-token subcommand to config command.
	configCmd.AddCommand(configSetTokenCmd)

	// Add config command to root command.
	rootCmd.AddCommand(configCmd)
}
