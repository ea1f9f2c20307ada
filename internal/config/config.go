package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/y0ung3r/vk/internal/constants"
	"github.com/y0ung3r/vk/internal/logger"
	"github.com/y0ung3r/vk/pkg/vk"
)

// Config holds all configuration settings.
type Config struct {
	// AccessToken is the authorization token attached to every API call.
	AccessToken string `mapstructure:"access_token"`
	// APIVersion is the API version sent with every request.
	APIVersion string `mapstructure:"api_version"`
	// Language selects the language of localized fields in API responses (e.g., "ru", "en").
	// Empty means the account default.
	Language string `mapstructure:"language"`
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level"`
	// RequestTimeout bounds a single API round trip (e.g., "30s", "1m").
	// Empty string selects the built-in default.
	RequestTimeout string `mapstructure:"request_timeout"`
	// APIBaseURL is the method endpoint prefix of the API (set automatically).
	APIBaseURL string
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level
	// ParsedRequestTimeout is the parsed request timeout, zero when unset.
	ParsedRequestTimeout time.Duration
}

const (
	// APIBaseURL is the endpoint prefix every method name is appended to.
	APIBaseURL = vk.DefaultBaseURL

	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".vk-audio.yaml"

	// DefaultAPIVersion is the API version used when the config does not pin one.
	DefaultAPIVersion = vk.DefaultAPIVersion

	// DefaultMaxLogLength is the default maximum size (in bytes) for logged HTTP dumps.
	DefaultMaxLogLength = 1 * 1024 * 1024 // 1 MB
)

// Static error definitions for better error handling.
var (
	// ErrEmptyAccessToken indicates that the access token is missing.
	ErrEmptyAccessToken = errors.New("access token cannot be empty")
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrInvalidRequestTimeout indicates that the request timeout is invalid.
	ErrInvalidRequestTimeout = errors.New("request_timeout must be positive")
)

// LoadConfig loads configuration settings from a YAML file.
func LoadConfig(configFilename string) (*Config, error) {
	if configFilename == "" {
		configFilename = DefaultConfigFilename
	}

	viper.SetConfigFile(configFilename)

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config from file: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// ValidateConfig checks the configuration for validity and sets derived fields.
func ValidateConfig(cfg *Config) error {
	cfg.AccessToken = strings.TrimSpace(cfg.AccessToken)
	if cfg.AccessToken == "" {
		return ErrEmptyAccessToken
	}

	cfg.APIBaseURL = APIBaseURL

	cfg.APIVersion = strings.TrimSpace(cfg.APIVersion)
	if cfg.APIVersion == "" {
		cfg.APIVersion = DefaultAPIVersion
	}

	cfg.Language = strings.TrimSpace(cfg.Language)

	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	// Parse request_timeout if set (empty string means the built-in default).
	if timeout := strings.TrimSpace(cfg.RequestTimeout); timeout != "" {
		parsedTimeout, err := time.ParseDuration(timeout)
		if err != nil {
			return fmt.Errorf("failed to parse request timeout: %w", err)
		}

		if parsedTimeout <= 0 {
			return ErrInvalidRequestTimeout
		}

		cfg.ParsedRequestTimeout = parsedTimeout
	}

	return nil
}

// SaveConfig saves the configuration to the file while preserving the original format and order.
func SaveConfig(cfg *Config) error {
	configFile := getConfigFilePath()

	// Read the original file content.
	originalContent, err := os.ReadFile(configFile)
	if err != nil {
		return handleMissingConfigFile(configFile, cfg.AccessToken, err)
	}

	// Parse YAML while preserving order using yaml.Node.
	var node yaml.Node
	if err = yaml.Unmarshal(originalContent, &node); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Update the access_token value in the node tree.
	updateAccessTokenInNode(&node, cfg.AccessToken)

	// Marshal back to YAML (preserves order).
	newContent, err := yaml.Marshal(&node)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	// Write the file back with preserved order.
	if err = os.WriteFile(configFile, newContent, constants.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// getConfigFilePath returns the config file path from viper or the default.
func getConfigFilePath() string {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		return DefaultConfigFilename
	}

	return configFile
}

// handleMissingConfigFile creates a new config file if it doesn't exist.
func handleMissingConfigFile(configFile, accessToken string, err error) error {
	if !os.IsNotExist(err) {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// File doesn't exist, create it with viper.
	viper.Set("access_token", accessToken)

	if err = viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	return nil
}

// updateAccessTokenInNode updates the access_token value in the YAML node tree.
func updateAccessTokenInNode(node *yaml.Node, accessToken string) {
	// The root node is a document node, content[0] is the actual map.
	if len(node.Content) == 0 || node.Content[0].Kind != yaml.MappingNode {
		return
	}

	mapNode := node.Content[0]

	// Iterate through key-value pairs (stored as alternating nodes).
	for i := 0; i < len(mapNode.Content); i += 2 {
		keyNode := mapNode.Content[i]
		valueNode := mapNode.Content[i+1]

		if keyNode.Value == "access_token" {
			// Update the value while preserving style.
			valueNode.Value = accessToken

			// Ensure it's quoted if it contains special characters.
			if valueNode.Style == 0 {
				valueNode.Style = yaml.DoubleQuotedStyle
			}

			break
		}
	}
}
