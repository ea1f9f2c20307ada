package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/y0ung3r/vk/internal/app"
	"github.com/y0ung3r/vk/internal/logger"
)

//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
var countCmd = &cobra.Command{
	Use:   "count {owner_id}",
	Short: "Count the audios on an owner's list",
	Long: `Print the total number of audios on an owner's list. A positive id
addresses a user, a negative id addresses a community.

Examples:
vk count 1
vk count -- -12345`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ownerID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			logger.Fatalf(cmd.Context(), "Invalid owner id %q: %v", args[0], err)
		}

		if err = bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
			logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
		}

		app.ExecuteCountCommand(cmd.Context(), appConfig, ownerID)
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	rootCmd.AddCommand(countCmd)
}
