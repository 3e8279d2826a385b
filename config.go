package postfix

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// DefaultPrompt is printed before the expression is read.
const DefaultPrompt = "please input an infix expression"

// reservedSeparatorChars may appear inside a number or as an operator, so a
// separator containing them would make the output ambiguous.
const reservedSeparatorChars = "0123456789.eE+-*/()"

// Config represents the translator configuration
type Config struct {
	Separator      string `yaml:"separator"`
	Prompt         string `yaml:"prompt"`
	NormalizeWidth bool   `yaml:"normalize_width"`
}

// LoadConfig loads configuration from the given path. A missing file yields
// the defaults.
func LoadConfig(configPath string) (*Config, error) {
	// Load .env files first
	err := loadEnvFiles()
	if err != nil {
		return nil, fmt.Errorf("failed to load environment files: %w", err)
	}

	_, err = os.Stat(configPath)
	if os.IsNotExist(err) {
		config := getDefaultConfig()
		expandConfigEnvVars(config)

		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML with strict mode to detect unknown fields
	var config Config

	err = yaml.UnmarshalWithOptions(data, &config, yaml.Strict())
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&config)
	expandConfigEnvVars(&config)

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Options converts the configuration into driver options.
func (c *Config) Options() Options {
	return Options{
		Prompt:         c.Prompt,
		Separator:      c.Separator,
		NormalizeWidth: c.NormalizeWidth,
	}
}

// Validate checks a configuration that was assembled outside LoadConfig,
// e.g. after command line overrides.
func (c *Config) Validate() error {
	return validateConfig(c)
}

func validateConfig(config *Config) error {
	if i := strings.IndexAny(config.Separator, reservedSeparatorChars); i >= 0 {
		return fmt.Errorf("%w: separator %q must not contain '%c'", ErrConfigValidation, config.Separator, config.Separator[i])
	}

	return nil
}

func getDefaultConfig() *Config {
	return &Config{
		Prompt: DefaultPrompt,
	}
}

func applyDefaults(config *Config) {
	if config.Prompt == "" {
		config.Prompt = DefaultPrompt
	}
}

// loadEnvFiles loads .env files if they exist
func loadEnvFiles() error {
	if fileExists(".env") {
		err := godotenv.Load(".env")
		if err != nil {
			return fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	return nil
}

var (
	bracedEnvVar = regexp.MustCompile(`\$\{([^}]+)\}`)
	bareEnvVar   = regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
)

// expandEnvVars expands environment variables in the format ${VAR} or $VAR
func expandEnvVars(s string) string {
	s = bracedEnvVar.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[2 : len(match)-1])
	})

	return bareEnvVar.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[1:])
	})
}

func expandConfigEnvVars(config *Config) {
	config.Prompt = expandEnvVars(config.Prompt)
	config.Separator = expandEnvVars(config.Separator)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
