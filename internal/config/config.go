package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"aelist/internal/domain"
)

// ModeRandom picks one of the display modes at startup
const ModeRandom = "random"

// Config represents the application configuration. It is read from a TOML
// file and then overridden by command line flags.
type Config struct {
	Mode        string   `toml:"mode"`         // short, line, long or random
	MaxPrompts  int      `toml:"max_prompts"`  // display cap
	SkipBanner  bool     `toml:"skip_banner"`  // hide the "loaded N files" line
	IncludePath bool     `toml:"include_path"` // scan PathEnv even with explicit paths
	PathEnv     string   `toml:"path_env"`     // variable holding the path list
	Paths       []string `toml:"paths"`        // directories scanned before PathEnv
	LogLevel    string   `toml:"log_level"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service using the default file location
func NewConfigService() ConfigService {
	return &configService{filePath: DefaultPath()}
}

// NewConfigServiceAt creates a config service reading from path
func NewConfigServiceAt(path string) ConfigService {
	if path == "" {
		return NewConfigService()
	}
	return &configService{filePath: path}
}

// DefaultPath returns $XDG_CONFIG_HOME/aelist/config.toml or its fallback
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "aelist", "config.toml")
}

// Path returns the file this service reads
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration, returning defaults if the file is missing
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Mode:       domain.ModeShort.String(),
		MaxPrompts: 30,
		PathEnv:    "PATH",
		LogLevel:   "info",
	}
}

// Validate checks the values that can't be checked by the TOML decoder
func (c *Config) Validate() error {
	if c.Mode != ModeRandom {
		if _, err := ParseMode(c.Mode); err != nil {
			return err
		}
	}
	if c.MaxPrompts < 1 || c.MaxPrompts > math.MaxInt32 {
		return fmt.Errorf("%w: %d is outside [1, %d]", domain.ErrInvalidDisplayCap, c.MaxPrompts, math.MaxInt32)
	}
	return nil
}

// DisplayMode resolves the configured mode. "random" is resolved with pick,
// which must return a value in [0, n).
func (c *Config) DisplayMode(pick func(n int) int) (domain.Mode, error) {
	if c.Mode == ModeRandom {
		return domain.Mode(pick(3)), nil
	}
	return ParseMode(c.Mode)
}

// ParseMode parses a display mode name
func ParseMode(name string) (domain.Mode, error) {
	switch strings.ToLower(name) {
	case "short":
		return domain.ModeShort, nil
	case "line":
		return domain.ModeLine, nil
	case "long":
		return domain.ModeLong, nil
	default:
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidMode, name)
	}
}

// ParseDisplayCap parses the value of -n. It must be an integer in
// [1, INT_MAX]; surrounding whitespace is ignored.
func ParseDisplayCap(s string) (int, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil || v < 1 || v > math.MaxInt32 {
		return 0, fmt.Errorf("%w: failed to convert %q to a number in [1, %d]", domain.ErrInvalidDisplayCap, s, math.MaxInt32)
	}
	return int(v), nil
}
