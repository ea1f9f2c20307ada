package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/y0ung3r/vk/internal/config"
	"github.com/y0ung3r/vk/internal/logger"
	"github.com/y0ung3r/vk/internal/version"
)

var (
	//nolint:gochecknoglobals // It is required for configuration initialization before the application starts.
	configFilenameFromFlag string

	//nolint:gochecknoglobals,lll // It is initialized once during the application's startup and shared across the command execution logic.
	appConfig *config.Config

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	rootCmd = &cobra.Command{
		Use:   "vk {command}",
		Short: "Work with the audio section of the VK API from the command line.",
		Long: `vk is a CLI tool for the audio section of the VK API.
It supports:
- Searching tracks by artist, title, or lyrics
- Listing the audios of users and communities
- Popular charts
- Counting the audios on a list

The access token, API version, and response language come from the configuration
file and can be overridden with flags.`,
		Version:          version.Full(),
		PersistentPreRun: initConfig,
	}
)

// Execute executes the root command.
func Execute() {
	signals := []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}
	ctx, stop := signal.NotifyContext(context.Background(), signals...)

	defer func() {
		_ = logger.Logger().Sync()
	}()

	defer stop()

	go func() {
		defer stop()

		err := rootCmd.ExecuteContext(ctx)
		cobra.CheckErr(err)
	}()

	<-ctx.Done()
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	rootCmd.PersistentFlags().StringVarP(
		&configFilenameFromFlag,
		"config",
		"c",
		"",
		fmt.Sprintf("path to the configuration file (default is '%s')",
			config.DefaultConfigFilename))

	persistentFlags := rootCmd.PersistentFlags()

	persistentFlags.StringP(
		"token",
		"t",
		"",
		"access token used instead of the one from the configuration file.")

	persistentFlags.String(
		"api-version",
		"",
		"API version sent with every request.")

	persistentFlags.String(
		"language",
		"",
		"language of localized response fields, for example: ru, en, ua.")

	persistentFlags.String(
		"log-level",
		"",
		"logging verbosity: debug, info, warn, error.")

	persistentFlags.String(
		"timeout",
		"",
		"API request timeout, for example: 30s, 1m.")
}

func initConfig(cmd *cobra.Command, _ []string) {
	var err error

	appConfig, err = config.LoadConfig(configFilenameFromFlag)
	if err != nil {
		logger.Fatalf(cmd.Context(), "Failed to load configuration: %v", err)
	}
}

// initConfigTolerant loads the configuration but treats a missing file as an
// empty one. Commands that write the file use it so they can run first.
func initConfigTolerant(cmd *cobra.Command, _ []string) {
	var err error

	appConfig, err = config.LoadConfig(configFilenameFromFlag)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Fatalf(cmd.Context(), "Failed to load configuration: %v", err)
		}

		appConfig = &config.Config{}
	}
}

func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	if flag := flags.Lookup("token"); flag != nil && flag.Changed {
		cfg.AccessToken, _ = flags.GetString("token")
	}

	if flag := flags.Lookup("api-version"); flag != nil && flag.Changed {
		cfg.APIVersion, _ = flags.GetString("api-version")
	}

	if flag := flags.Lookup("language"); flag != nil && flag.Changed {
		cfg.Language, _ = flags.GetString("language")
	}

	if flag := flags.Lookup("log-level"); flag != nil && flag.Changed {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}

	if flag := flags.Lookup("timeout"); flag != nil && flag.Changed {
		cfg.RequestTimeout, _ = flags.GetString("timeout")
	}

	if err := config.ValidateConfig(cfg); err != nil {
		return err
	}

	logger.SetLevel(cfg.ParsedLogLevel)

	return nil
}
