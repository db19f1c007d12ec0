package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment overrides.
const (
	EnvAPIURL    = "TABLERO_API_URL"
	EnvSession   = "TABLERO_SESSION"
	EnvThemeFile = "TABLERO_THEME_FILE"
)

const (
	DefaultBaseURL       = "http://localhost:8000/api/v1/tasks/"
	DefaultSessionCookie = "session"
	DefaultReloadDelay   = 1300 * time.Millisecond
)

// Config represents the application configuration
type Config struct {
	API         APIConfig   `yaml:"api"`
	KeyMappings KeyMappings `yaml:"key_mappings"`
	ColorScheme ColorScheme `yaml:"theme"`
	Toast       ToastConfig `yaml:"toast"`

	// ReloadDelay is how long the board waits after a create before reloading.
	ReloadDelay time.Duration `yaml:"reload_delay"`

	// JournalPath overrides ~/.tablero/journal.db. "off" disables the journal.
	JournalPath string `yaml:"journal_path"`
}

// APIConfig locates the tasks collection and the session credential.
type APIConfig struct {
	BaseURL       string `yaml:"base_url"`
	SessionCookie string `yaml:"session_cookie"`
	Session       string `yaml:"session"`
}

// ToastConfig holds how long each kind of notification stays on screen.
type ToastConfig struct {
	Default time.Duration `yaml:"default"`
	Brief   time.Duration `yaml:"brief"`
	Error   time.Duration `yaml:"error"`
}

// DefaultToastConfig returns the notification delays.
func DefaultToastConfig() ToastConfig {
	return ToastConfig{
		Default: 1500 * time.Millisecond,
		Brief:   1200 * time.Millisecond,
		Error:   2500 * time.Millisecond,
	}
}

// Default returns a config with every field set to its default.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// JournalDisabled reports whether the move journal is turned off.
func (c *Config) JournalDisabled() bool {
	return c.JournalPath == "off"
}

// loadThemeFile loads and merges theme from TABLERO_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// loadEnv applies environment overrides. A .env file in the working
// directory is read first; variables already set in the environment win.
func loadEnv(config *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(EnvAPIURL); v != "" {
		config.API.BaseURL = v
	}
	if v := os.Getenv(EnvSession); v != "" {
		config.API.Session = v
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	var config Config

	configPath, err := getConfigPath()
	if err == nil {
		data, readErr := os.ReadFile(configPath)
		switch {
		case errors.Is(readErr, fs.ErrNotExist):
		case readErr != nil:
			return nil, readErr
		default:
			if err := yaml.Unmarshal(data, &config); err != nil {
				return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
			}
		}
	}

	loadEnv(&config)
	loadThemeFile(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o600)
}

// Path returns the config file location, whether or not it exists.
func Path() (string, error) {
	return getConfigPath()
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "tablero", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "tablero", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	if c.API.SessionCookie == "" {
		c.API.SessionCookie = DefaultSessionCookie
	}

	toast := DefaultToastConfig()
	if c.Toast.Default <= 0 {
		c.Toast.Default = toast.Default
	}
	if c.Toast.Brief <= 0 {
		c.Toast.Brief = toast.Brief
	}
	if c.Toast.Error <= 0 {
		c.Toast.Error = toast.Error
	}
	if c.ReloadDelay <= 0 {
		c.ReloadDelay = DefaultReloadDelay
	}

	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
