package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	appName = "newscheck"

	// DefaultBaseURL is the news resource of a locally running classification server.
	DefaultBaseURL = "http://localhost:8080/api/news"

	mlPath = "/api/ml"
)

// Config represents the configuration from config.toml, the environment and .env
type Config struct {
	API APIConfig `toml:"api"`
	TUI TUIConfig `toml:"tui"`
	Log LogConfig `toml:"log"`
}

// APIConfig locates the classification service
type APIConfig struct {
	BaseURL        string `toml:"base_url"`        // News collection endpoint
	MLURL          string `toml:"ml_url"`          // Model endpoints; derived from BaseURL when empty
	TimeoutSeconds int    `toml:"timeout_seconds"` // Per-request timeout, 0 disables
}

// TUIConfig holds terminal UI settings
type TUIConfig struct {
	RefreshInterval int    `toml:"refresh_interval"` // Auto-refresh interval in seconds, 0 disables
	Theme           string `toml:"theme"`            // clean_cyber, monokai_pro or light
}

// LogConfig holds operator log settings
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"` // TUI log file; defaults to the state directory
}

// Default returns the configuration used when no file or environment overrides exist
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: DefaultBaseURL,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from the standard XDG config path, then applies
// .env and environment overrides on top of the file and defaults
func LoadConfig() (*Config, error) {
	// A missing .env is the common case
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	configPath, err := Path()
	if err != nil {
		return nil, err
	}

	config := Default()

	if _, err := os.Stat(configPath); err == nil {
		configData, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		// Parse TOML config, merging with defaults
		if err := toml.Unmarshal(configData, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := config.applyEnv(); err != nil {
		return nil, err
	}

	return config, nil
}

// Path returns the location of config.toml
func Path() (string, error) {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, appName, "config.toml"), nil
}

func (c *Config) applyEnv() error {
	if v := strings.TrimSpace(os.Getenv("NEWSCHECK_BASE_URL")); v != "" {
		c.API.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv("NEWSCHECK_ML_URL")); v != "" {
		c.API.MLURL = v
	}
	if v := strings.TrimSpace(os.Getenv("NEWSCHECK_TIMEOUT")); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil || seconds < 0 {
			return fmt.Errorf("invalid NEWSCHECK_TIMEOUT %q: want a non-negative number of seconds", v)
		}
		c.API.TimeoutSeconds = seconds
	}
	if v := strings.TrimSpace(os.Getenv("LOG_LEVEL")); v != "" {
		c.Log.Level = v
	}
	return nil
}

// GetRefreshInterval returns the configured refresh interval in seconds
// Returns 0 if auto-refresh is disabled
func (c *Config) GetRefreshInterval() int {
	if c.TUI.RefreshInterval < 0 {
		return 0
	}
	return c.TUI.RefreshInterval
}

// GetTimeout returns the per-request timeout, 0 when disabled
func (c *Config) GetTimeout() time.Duration {
	if c.API.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}

// GetMLURL returns the model endpoint base. Without an explicit value it is the
// origin of the news endpoint plus /api/ml.
func (c *Config) GetMLURL() (string, error) {
	if c.API.MLURL != "" {
		return strings.TrimRight(c.API.MLURL, "/"), nil
	}
	u, err := url.Parse(c.API.BaseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL %q: %w", c.API.BaseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("invalid base URL %q: missing scheme or host", c.API.BaseURL)
	}
	return u.Scheme + "://" + u.Host + mlPath, nil
}

// GetLogFile returns the TUI log file path, defaulting to $XDG_STATE_HOME/newscheck
func (c *Config) GetLogFile() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		stateDir = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateDir, appName, appName+".log"), nil
}
