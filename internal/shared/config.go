package shared

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
)

//go:embed config.example.toml
var exampleConf []byte

// EnvPrefix is the prefix for environment variable overrides (e.g. BSDL_CDN_BASE_URL).
const EnvPrefix = "bsdl"

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	CDN    CDNConfig    `toml:"cdn"`
	Output OutputConfig `toml:"output"`
}

// CDNConfig contains settings for the BeatSaver content delivery network.
type CDNConfig struct {
	BaseURL           string  `toml:"base_url" envconfig:"BASE_URL"`
	UserAgent         string  `toml:"user_agent" envconfig:"USER_AGENT"`
	TimeoutSeconds    int     `toml:"timeout_seconds" envconfig:"TIMEOUT_SECONDS"`
	MaxRetries        int     `toml:"max_retries" envconfig:"MAX_RETRIES"`
	RetryDelaySeconds float64 `toml:"retry_delay_seconds" envconfig:"RETRY_DELAY_SECONDS"`
}

// OutputConfig contains destination directory settings.
type OutputConfig struct {
	Directory string `toml:"directory" envconfig:"DIRECTORY"`
}

// Timeout returns the per-request timeout as a [time.Duration].
func (c CDNConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// RetryDelay returns the base backoff delay as a [time.Duration].
func (c CDNConfig) RetryDelay() time.Duration {
	return time.Duration(c.RetryDelaySeconds * float64(time.Second))
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// ResolveConfig builds the effective configuration: embedded defaults, then
// the TOML file at path when it exists, then BSDL_* environment overrides.
func ResolveConfig(path string) (*Config, error) {
	config := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
			// Decode over the defaults so omitted keys keep their values.
			if err := toml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := envconfig.Process(EnvPrefix, config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return config, nil
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	// Check if file already exists
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	// Write the embedded example config to the file
	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
