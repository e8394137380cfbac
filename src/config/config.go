package config

import (
	"fmt"
	"os"
	"strings"

	"etf-matcher-loader/src/models"

	"gopkg.in/yaml.v3"
)

// Production defaults for the ETF Matcher data site. The remote section of
// the YAML config may override any of them (e.g. to point at a local fixture
// server), but default behavior is unchanged.
const (
	DefaultBaseURL       = "https://etfmatcher.com/data/"
	DefaultManifestFile  = "ticker_vector_configs.toml"
	DefaultSymbolMapFile = "ticker_symbol_map.flatbuffers.bin"

	defaultRequestTimeout = 30
)

// -----------------------------------------------------------------------------

// Config wraps models.MConfig and provides business logic methods
type Config struct {
	*models.MConfig
}

// -----------------------------------------------------------------------------

// DefaultConfig returns a configuration pointing at the production data site.
// The library surface works without any config file on disk.
func DefaultConfig() *Config {
	c := &Config{MConfig: &models.MConfig{
		Name:     "etf-matcher-loader",
		Host:     "127.0.0.1",
		Port:     8080,
		LogLevel: "INFO",
	}}
	c.applyRemoteDefaults()
	return c
}

// -----------------------------------------------------------------------------

// NewConfig creates a new MConfig instance from YAML file
func NewConfig(configPath string) (*Config, error) {
	// 1. Read the YAML file content
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", configPath, err)
	}

	// 2. Unmarshal data into the models struct
	var modelConfig models.MConfig
	if err := yaml.Unmarshal(data, &modelConfig); err != nil {
		return nil, fmt.Errorf("failed to parse config from YAML: %w", err)
	}

	config := &Config{MConfig: &modelConfig}

	// 3. Fill in remote defaults for fields the file omits
	config.applyRemoteDefaults()

	// 4. Validate the loaded configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// -----------------------------------------------------------------------------

func (c *Config) applyRemoteDefaults() {
	if c.Remote.BaseURL == "" {
		c.Remote.BaseURL = DefaultBaseURL
	}
	if c.Remote.ManifestFile == "" {
		c.Remote.ManifestFile = DefaultManifestFile
	}
	if c.Remote.SymbolMapFile == "" {
		c.Remote.SymbolMapFile = DefaultSymbolMapFile
	}
	if c.Remote.RequestTimeout == 0 {
		c.Remote.RequestTimeout = defaultRequestTimeout
	}
}

// -----------------------------------------------------------------------------

// Validate performs basic configuration validation
func (c *Config) Validate() error {
	// Validate App configuration (Flattened)
	if c.Name == "" {
		return fmt.Errorf("application name cannot be empty")
	}

	// Validate Server configuration (Flattened)
	if c.Host == "" {
		return fmt.Errorf("server host cannot be empty")
	}
	if c.Port <= 1024 || c.Port > 65535 {
		return fmt.Errorf("invalid server port number: %d (must be between 1025 and 65535)", c.Port)
	}

	// Validate Remote configuration
	if !strings.HasPrefix(c.Remote.BaseURL, "http://") && !strings.HasPrefix(c.Remote.BaseURL, "https://") {
		return fmt.Errorf("base URL must start with http:// or https://, got '%s'", c.Remote.BaseURL)
	}
	// Resource resolution is plain concatenation, so the base must carry its
	// trailing slash itself.
	if !strings.HasSuffix(c.Remote.BaseURL, "/") {
		return fmt.Errorf("base URL must end with '/', got '%s'", c.Remote.BaseURL)
	}
	if c.Remote.ManifestFile == "" {
		return fmt.Errorf("manifest filename cannot be empty")
	}
	if c.Remote.SymbolMapFile == "" {
		return fmt.Errorf("symbol map filename cannot be empty")
	}
	if c.Remote.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be greater than 0")
	}

	return nil
}

// -----------------------------------------------------------------------------

// Save persists the current configuration to the specified YAML file path
func (c *Config) Save(configPath string) error {
	// 1. Marshal the struct to YAML
	data, err := yaml.Marshal(c.MConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	// 2. Write to file (0644 permissions)
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config to file '%s': %w", configPath, err)
	}

	return nil
}
