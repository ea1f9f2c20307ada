package cmd

import (
	"github.com/spf13/cobra"

	"github.com/y0ung3r/vk/internal/app"
	"github.com/y0ung3r/vk/internal/logger"
)

//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
var searchCmd = &cobra.Command{
	Use:   "search {query}",
	Short: "Search tracks by artist, title, or lyrics",
	Long: `Search the audio catalog and print the first page of matches
together with the total match count.

Examples:
vk search "Bohemian Rhapsody"
vk search --lyrics "is this the real life" --count 5`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
			logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
		}

		opts := &app.SearchCommandOptions{}
		opts.Count, _ = cmd.Flags().GetUint32("count")
		opts.Offset, _ = cmd.Flags().GetUint32("offset")
		opts.Lyrics, _ = cmd.Flags().GetBool("lyrics")

		app.ExecuteSearchCommand(cmd.Context(), appConfig, args[0], opts)
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	searchCmdFlags := searchCmd.Flags()

	searchCmdFlags.Uint32P(
		"count",
		"n",
		30,
		"number of matches to print, up to 200.")

	searchCmdFlags.Uint32(
		"offset",
		0,
		"number of matches to skip.")

	searchCmdFlags.BoolP(
		"lyrics",
		"l",
		false,
		"search in lyrics instead of artist and title only.")

	rootCmd.AddCommand(searchCmd)
}
