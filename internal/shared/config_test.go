package shared

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.CDN.BaseURL != "https://r2cdn.beatsaver.com" {
			t.Errorf("unexpected base URL: %s", config.CDN.BaseURL)
		}

		if config.CDN.TimeoutSeconds != 30 {
			t.Errorf("expected timeout 30s, got %d", config.CDN.TimeoutSeconds)
		}

		if config.CDN.MaxRetries != 3 {
			t.Errorf("expected 3 retries, got %d", config.CDN.MaxRetries)
		}

		if config.CDN.RetryDelaySeconds != 1.0 {
			t.Errorf("expected retry delay 1.0s, got %f", config.CDN.RetryDelaySeconds)
		}

		if config.CDN.UserAgent == "" {
			t.Error("expected a browser-like user agent")
		}

		if config.Output.Directory != "" {
			t.Errorf("expected empty output directory, got %s", config.Output.Directory)
		}
	})

	t.Run("duration accessors", func(t *testing.T) {
		cfg := CDNConfig{TimeoutSeconds: 30, RetryDelaySeconds: 0.5}

		if cfg.Timeout() != 30*time.Second {
			t.Errorf("unexpected timeout: %v", cfg.Timeout())
		}
		if cfg.RetryDelay() != 500*time.Millisecond {
			t.Errorf("unexpected retry delay: %v", cfg.RetryDelay())
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[cdn]
base_url = "https://mirror.example.test"
user_agent = "test-agent"
timeout_seconds = 5
max_retries = 1
retry_delay_seconds = 0.1

[output]
directory = "/tmp/songs"
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.CDN.BaseURL != "https://mirror.example.test" {
			t.Errorf("unexpected base URL: %s", config.CDN.BaseURL)
		}
		if config.CDN.MaxRetries != 1 {
			t.Errorf("expected 1 retry, got %d", config.CDN.MaxRetries)
		}
		if config.Output.Directory != "/tmp/songs" {
			t.Errorf("unexpected output directory: %s", config.Output.Directory)
		}
	})

	t.Run("LoadConfig missing file", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("ResolveConfig falls back to defaults", func(t *testing.T) {
		config, err := ResolveConfig(filepath.Join(t.TempDir(), "absent.toml"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if config.CDN.BaseURL != DefaultConfig().CDN.BaseURL {
			t.Errorf("expected default base URL, got %s", config.CDN.BaseURL)
		}
	})

	t.Run("ResolveConfig merges partial file over defaults", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")
		partial := `[cdn]
base_url = "https://mirror.example.test"
`
		if err := os.WriteFile(configPath, []byte(partial), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		config, err := ResolveConfig(configPath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if config.CDN.BaseURL != "https://mirror.example.test" {
			t.Errorf("expected file override, got %s", config.CDN.BaseURL)
		}
		if config.CDN.MaxRetries != 3 {
			t.Errorf("omitted keys should keep defaults, got %d retries", config.CDN.MaxRetries)
		}
	})

	t.Run("ResolveConfig applies environment overrides", func(t *testing.T) {
		t.Setenv("BSDL_CDN_BASE_URL", "https://env.example.test")
		t.Setenv("BSDL_OUTPUT_DIRECTORY", "/env/songs")

		config, err := ResolveConfig("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if config.CDN.BaseURL != "https://env.example.test" {
			t.Errorf("expected env override, got %s", config.CDN.BaseURL)
		}
		if config.Output.Directory != "/env/songs" {
			t.Errorf("expected env override, got %s", config.Output.Directory)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		if config.CDN.BaseURL != DefaultConfig().CDN.BaseURL {
			t.Errorf("created config base URL doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})
}
