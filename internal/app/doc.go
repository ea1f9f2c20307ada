// Package app provides the application logic behind the CLI commands.
// It assembles the audio API client from the configuration, runs the
// requested operation, and reports the outcome through the logger.
package app
