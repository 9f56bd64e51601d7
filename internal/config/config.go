package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"recipefinder/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Version  int            `toml:"version"`
	API      APIConfig      `toml:"api"`
	Provider ProviderConfig `toml:"provider"`
	Server   ServerConfig   `toml:"server"`
	Suggest  SuggestConfig  `toml:"suggest"`
	Log      LogConfig      `toml:"log"`
}

// APIConfig points the terminal client at the proxy
type APIConfig struct {
	Endpoint string `toml:"endpoint"` // base URL serving /api/...
	Timeout  string `toml:"timeout"`
}

// ProviderConfig configures the upstream recipe provider
type ProviderConfig struct {
	BaseURL         string `toml:"base_url"`
	APIKey          string `toml:"api_key"`
	PageSize        int    `toml:"page_size"`
	SuggestionCount int    `toml:"suggestion_count"`
	Timeout         string `toml:"timeout"`
}

// ServerConfig configures the proxy server
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// SuggestConfig configures the autocomplete field
type SuggestConfig struct {
	Debounce         string `toml:"debounce"`
	ThresholdColumns int    `toml:"threshold_columns"`
	OverlayMode      string `toml:"overlay_mode"` // "fixed" or "flow"
	MaxVisible       int    `toml:"max_visible"`
}

// LogConfig configures logging
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Defaults
const (
	DefaultEndpoint         = "http://localhost:3000"
	DefaultProviderURL      = "https://api.spoonacular.com"
	DefaultAddr             = ":3000"
	DefaultPageSize         = 12
	DefaultSuggestionCount  = 8
	DefaultThresholdColumns = 76
	DefaultMaxVisible       = 8
	DefaultLogFile          = "recipefinder.log"
)

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the default location of config.toml
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "recipefinder", "config.toml")
}

// NewConfigService creates a config service for path, or the default path when empty
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration file, falling back to defaults when it does not exist
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		cfg, err = DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. Missing keys keep their defaults.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		API: APIConfig{
			Endpoint: DefaultEndpoint,
			Timeout:  "5s",
		},
		Provider: ProviderConfig{
			BaseURL:         DefaultProviderURL,
			PageSize:        DefaultPageSize,
			SuggestionCount: DefaultSuggestionCount,
			Timeout:         "10s",
		},
		Server: ServerConfig{
			Addr: DefaultAddr,
		},
		Suggest: SuggestConfig{
			Debounce:         "0s",
			ThresholdColumns: DefaultThresholdColumns,
			OverlayMode:      "fixed",
			MaxVisible:       DefaultMaxVisible,
		},
		Log: LogConfig{
			Level: "info",
			File:  DefaultLogFile,
		},
	}
}

// LoadEnv reads .env files into the process environment. Missing files are ignored.
func LoadEnv(files ...string) {
	_ = godotenv.Load(files...)
}

// ApplyEnv overrides configuration values from the environment
func (c *Config) ApplyEnv() {
	if v := os.Getenv("SPOONACULAR_API_KEY"); v != "" {
		c.Provider.APIKey = v
	}
	if v := os.Getenv("RECIPEFINDER_ENDPOINT"); v != "" {
		c.API.Endpoint = v
	}
	if v := os.Getenv("RECIPEFINDER_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("RECIPEFINDER_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("RECIPEFINDER_THRESHOLD_COLUMNS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Suggest.ThresholdColumns = n
		}
	}
}

// DebounceDuration parses Suggest.Debounce; invalid values mean no debounce
func (c *Config) DebounceDuration() time.Duration {
	return parseDuration(c.Suggest.Debounce, 0)
}

// APITimeout parses API.Timeout
func (c *Config) APITimeout() time.Duration {
	return parseDuration(c.API.Timeout, 5*time.Second)
}

// ProviderTimeout parses Provider.Timeout
func (c *Config) ProviderTimeout() time.Duration {
	return parseDuration(c.Provider.Timeout, 10*time.Second)
}

func parseDuration(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil || d < 0 {
		return def
	}
	return d
}
