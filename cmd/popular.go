package cmd

import (
	"github.com/spf13/cobra"

	"github.com/y0ung3r/vk/internal/app"
	"github.com/y0ung3r/vk/internal/logger"
)

//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
var popularCmd = &cobra.Command{
	Use:   "popular",
	Short: "List tracks popular across the service",
	Long: `Print the popular chart, optionally narrowed to one genre
or to foreign tracks only.

Examples:
vk popular --count 10
vk popular --genre 7 --only-eng`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		if err := bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
			logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
		}

		opts := &app.PopularCommandOptions{}
		opts.GenreID, _ = cmd.Flags().GetUint32("genre")
		opts.OnlyEng, _ = cmd.Flags().GetBool("only-eng")
		opts.Count, _ = cmd.Flags().GetUint32("count")
		opts.Offset, _ = cmd.Flags().GetUint32("offset")

		app.ExecutePopularCommand(cmd.Context(), appConfig, opts)
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	popularCmdFlags := popularCmd.Flags()

	popularCmdFlags.Uint32P(
		"genre",
		"g",
		0,
		"genre id to narrow the chart, for example: 1 = rock, 2 = pop, 7 = metal.")

	popularCmdFlags.Bool(
		"only-eng",
		false,
		"foreign tracks only.")

	popularCmdFlags.Uint32P(
		"count",
		"n",
		30,
		"number of tracks to print, up to 1000.")

	popularCmdFlags.Uint32(
		"offset",
		0,
		"number of tracks to skip.")

	rootCmd.AddCommand(popularCmd)
}
