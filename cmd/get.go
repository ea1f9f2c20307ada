package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/y0ung3r/vk/internal/app"
	"github.com/y0ung3r/vk/internal/logger"
)

//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
var getCmd = &cobra.Command{
	Use:   "get {owner_id}",
	Short: "List the audios of a user or community",
	Long: `List the audios on an owner's list. A positive id addresses a user,
a negative id addresses a community.

Examples:
vk get 6
vk get -- -12345
vk get 6 --album 55 --count 10`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ownerID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			logger.Fatalf(cmd.Context(), "Invalid owner id %q: %v", args[0], err)
		}

		if err = bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
			logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
		}

		opts := &app.GetCommandOptions{}
		opts.AlbumID, _ = cmd.Flags().GetUint64("album")
		opts.Count, _ = cmd.Flags().GetUint32("count")
		opts.Offset, _ = cmd.Flags().GetUint32("offset")

		app.ExecuteGetCommand(cmd.Context(), appConfig, ownerID, opts)
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	getCmdFlags := getCmd.Flags()

	getCmdFlags.Uint64P(
		"album",
		"a",
		0,
		"restrict the listing to one album id.")

	getCmdFlags.Uint32P(
		"count",
		"n",
		0,
		"number of audios to print, up to 6000.")

	getCmdFlags.Uint32(
		"offset",
		0,
		"number of audios to skip.")

	rootCmd.AddCommand(getCmd)
}
