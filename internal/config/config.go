package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"bookshelf/internal/eventbus"
)

// FileName is the name of the config file looked up by default
const FileName = "bookshelf.toml"

// EnvPrefix prefixes environment overrides, e.g. BOOKSHELF_SEARCH_DELAY
const EnvPrefix = "BOOKSHELF"

// Tabs the UI can start on
const (
	TabSearch    = "search"
	TabFizzBuzz  = "fizzbuzz"
	TabDashboard = "dashboard"
)

// Config represents the application configuration
type Config struct {
	Version int            `mapstructure:"version"`
	Search  SearchSettings `mapstructure:"search"`
	UI      UISettings     `mapstructure:"ui"`
	Log     LogSettings    `mapstructure:"log"`
}

// SearchSettings controls the request state machine
type SearchSettings struct {
	Delay        time.Duration `mapstructure:"delay"`         // simulated latency
	DiscardStale bool          `mapstructure:"discard_stale"` // drop superseded resolutions
}

// UISettings represents UI-related configuration
type UISettings struct {
	StartTab      string `mapstructure:"start_tab"`
	FizzBuzzLimit int    `mapstructure:"fizzbuzz_limit"`
	AltScreen     bool   `mapstructure:"alt_screen"`
}

// LogSettings controls the log file
type LogSettings struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

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

// NewConfigService creates a config service reading from DefaultPath
func NewConfigService() ConfigService {
	return &configService{filePath: DefaultPath()}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus, path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{bus: bus, filePath: path}
}

// DefaultPath prefers ./bookshelf.toml and falls back to the user config dir
func DefaultPath() string {
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			return FileName
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "bookshelf", FileName)
}

// Path returns the file the service loads from and saves to
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from the service's file
func (cs *configService) Load() (*Config, error) {
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath layers defaults, the TOML file at path (if it exists) and
// BOOKSHELF_* environment variables, then validates the result
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	v := newViper()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to stat config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: v.ConfigFileUsed()})
	}

	return &cfg, nil
}

// SaveToPath writes configuration to a specific path as TOML
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := Marshal(config)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: path})
	}

	return nil
}

// Marshal encodes the config in the on-disk TOML layout
func Marshal(config *Config) ([]byte, error) {
	data, err := toml.Marshal(toFile(config))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// Validate checks value ranges and enumerations
func (c *Config) Validate() error {
	if c.Search.Delay < 0 {
		return fmt.Errorf("search.delay must not be negative, got %s", c.Search.Delay)
	}
	switch c.UI.StartTab {
	case TabSearch, TabFizzBuzz, TabDashboard:
	default:
		return fmt.Errorf("ui.start_tab must be one of %s, %s, %s; got %q", TabSearch, TabFizzBuzz, TabDashboard, c.UI.StartTab)
	}
	if c.UI.FizzBuzzLimit <= 0 {
		return fmt.Errorf("ui.fizzbuzz_limit must be positive, got %d", c.UI.FizzBuzzLimit)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Search: SearchSettings{
			Delay:        100 * time.Millisecond,
			DiscardStale: true,
		},
		UI: UISettings{
			StartTab:      TabSearch,
			FizzBuzzLimit: 100,
			AltScreen:     true,
		},
		Log: LogSettings{
			File:  "bookshelf.log",
			Level: "info",
		},
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	d := DefaultConfig()
	v.SetDefault("version", d.Version)
	v.SetDefault("search.delay", d.Search.Delay)
	v.SetDefault("search.discard_stale", d.Search.DiscardStale)
	v.SetDefault("ui.start_tab", d.UI.StartTab)
	v.SetDefault("ui.fizzbuzz_limit", d.UI.FizzBuzzLimit)
	v.SetDefault("ui.alt_screen", d.UI.AltScreen)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.level", d.Log.Level)
	return v
}

// fileConfig is the on-disk shape; durations are written as strings like "100ms"
type fileConfig struct {
	Version int        `toml:"version"`
	Search  fileSearch `toml:"search"`
	UI      fileUI     `toml:"ui"`
	Log     fileLog    `toml:"log"`
}

type fileSearch struct {
	Delay        string `toml:"delay"`
	DiscardStale bool   `toml:"discard_stale"`
}

type fileUI struct {
	StartTab      string `toml:"start_tab"`
	FizzBuzzLimit int    `toml:"fizzbuzz_limit"`
	AltScreen     bool   `toml:"alt_screen"`
}

type fileLog struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

func toFile(c *Config) fileConfig {
	return fileConfig{
		Version: c.Version,
		Search: fileSearch{
			Delay:        c.Search.Delay.String(),
			DiscardStale: c.Search.DiscardStale,
		},
		UI: fileUI{
			StartTab:      c.UI.StartTab,
			FizzBuzzLimit: c.UI.FizzBuzzLimit,
			AltScreen:     c.UI.AltScreen,
		},
		Log: fileLog{
			File:  c.Log.File,
			Level: c.Log.Level,
		},
	}
}
