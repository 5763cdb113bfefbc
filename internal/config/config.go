package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Catalog source names accepted by catalog.source.
const (
	SourceBuiltin = "builtin"
	SourceYAML    = "yaml"
	SourceSQLite  = "sqlite"
)

// Config holds application configuration.
type Config struct {
	Catalog  CatalogConfig
	Database DatabaseConfig
	UI       UIConfig
	Log      LogConfig
}

// CatalogConfig selects where sitters and pulse events come from.
type CatalogConfig struct {
	Source string
	Path   string
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	CurrencySymbol string        `mapstructure:"currency_symbol"`
	PulseInterval  time.Duration `mapstructure:"pulse_interval"`
	FrameWidth     int           `mapstructure:"frame_width"`
}

// LogConfig holds zap settings. Logs go to a file; the terminal belongs to the UI.
type LogConfig struct {
	Level string
	File  string
}

func home() string {
	return os.Getenv("HOME")
}

// DefaultPath is where Load looks when neither an explicit path nor
// TACOSTAY_CONFIG is set.
func DefaultPath() string {
	return filepath.Join(home(), ".config", "tacostay", "config.toml")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("catalog.source", SourceBuiltin)
	v.SetDefault("catalog.path", filepath.Join(home(), ".config", "tacostay", "catalog.yaml"))
	v.SetDefault("database.path", filepath.Join(home(), ".local", "share", "tacostay", "catalog.db"))
	v.SetDefault("ui.currency_symbol", "₹")
	v.SetDefault("ui.pulse_interval", "1.5s")
	v.SetDefault("ui.frame_width", 46)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", filepath.Join(home(), ".local", "state", "tacostay", "tacostay.log"))
}

// Default returns the configuration used when no file or env overrides exist.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	_ = v.Unmarshal(&c)
	return c
}

// ResolvePath picks the config file: explicit path, then TACOSTAY_CONFIG, then DefaultPath.
func ResolvePath(path string) string {
	if path != "" {
		return path
	}
	if p := os.Getenv("TACOSTAY_CONFIG"); p != "" {
		return p
	}
	return DefaultPath()
}

// Load reads configuration from file and env. Env var overrides use prefix TACOSTAY_.
// A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	v.SetConfigFile(ResolvePath(path))

	v.SetEnvPrefix("TACOSTAY")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func isNotExist(err error) bool {
	var nf viper.ConfigFileNotFoundError
	return errors.As(err, &nf) || errors.Is(err, fs.ErrNotExist)
}

// Validate rejects values the app cannot run with.
func (c Config) Validate() error {
	switch c.Catalog.Source {
	case SourceBuiltin, SourceYAML, SourceSQLite:
	default:
		return fmt.Errorf("config: unknown catalog.source %q", c.Catalog.Source)
	}
	if c.Catalog.Source == SourceYAML && c.Catalog.Path == "" {
		return fmt.Errorf("config: catalog.path required for yaml source")
	}
	if c.Catalog.Source == SourceSQLite && c.Database.Path == "" {
		return fmt.Errorf("config: database.path required for sqlite source")
	}
	if c.UI.PulseInterval <= 0 {
		return fmt.Errorf("config: ui.pulse_interval must be positive")
	}
	if c.UI.FrameWidth < 30 {
		return fmt.Errorf("config: ui.frame_width must be at least 30")
	}
	return nil
}

// Save writes the provided config to path (see Load for resolution), creating
// the config directory if needed.
func Save(path string, cfg Config) (string, error) {
	path = ResolvePath(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("catalog.source", cfg.Catalog.Source)
	v.Set("catalog.path", cfg.Catalog.Path)
	v.Set("database.path", cfg.Database.Path)
	v.Set("ui.currency_symbol", cfg.UI.CurrencySymbol)
	v.Set("ui.pulse_interval", cfg.UI.PulseInterval.String())
	v.Set("ui.frame_width", cfg.UI.FrameWidth)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.file", cfg.Log.File)

	if err := v.WriteConfigAs(path); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}
	return path, nil
}
