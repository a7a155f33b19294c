package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the full finboard configuration
type Config struct {
	Locale        LocaleConfig  `json:"locale"`
	Data          DataConfig    `json:"data"`
	Toast         ToastConfig   `json:"toast"`
	Search        SearchConfig  `json:"search"`
	Export        ExportConfig  `json:"export"`
	Notifications NotifyConfig  `json:"notifications"`
	Logging       LoggingConfig `json:"logging"`

	// SourcePath is the file the config was loaded from, empty for defaults
	SourcePath string `json:"-"`
}

// LocaleConfig contains date and time settings
type LocaleConfig struct {
	Timezone string `json:"timezone"`
}

// DataConfig locates the transactions file
type DataConfig struct {
	Transactions string `json:"transactions"`
}

// ToastConfig contains toast settings
type ToastConfig struct {
	DurationMs int `json:"durationMs"`
}

// SearchConfig contains search box settings
type SearchConfig struct {
	DebounceMs int `json:"debounceMs"`
}

// ExportConfig contains CSV export settings
type ExportConfig struct {
	Dir      string `json:"dir"`
	Filename string `json:"filename"`
}

// NotifyConfig contains desktop notification settings
type NotifyConfig struct {
	Enabled    bool   `json:"enabled"`
	Permission string `json:"permission"`
}

// LoggingConfig contains log output settings
type LoggingConfig struct {
	Level string `json:"level"`
	File  string `json:"file"`
}

// File names searched in the project directory, in order
var configFiles = []string{".finboard.json", ".finboard.yaml", ".finboard.yml"}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Locale: LocaleConfig{
			Timezone: "Asia/Jakarta",
		},
		Data: DataConfig{
			Transactions: "transactions.json",
		},
		Toast: ToastConfig{
			DurationMs: 3000,
		},
		Search: SearchConfig{
			DebounceMs: 300,
		},
		Export: ExportConfig{
			Dir:      filepath.Join(homeDir, "Downloads"),
			Filename: "export.csv",
		},
		Notifications: NotifyConfig{
			Enabled:    true,
			Permission: "default",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration with priority:
// 1. explicitPath (the --config flag), which must exist
// 2. .finboard.json in projectPath
// 3. .finboard.yaml / .finboard.yml in projectPath
// 4. Defaults
func LoadConfig(projectPath, explicitPath string) (*Config, error) {
	if explicitPath != "" {
		data, err := os.ReadFile(explicitPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", explicitPath, err)
		}
		return parseFile(explicitPath, data)
	}

	for _, name := range configFiles {
		path := filepath.Join(projectPath, name)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		return parseFile(path, data)
	}

	return DefaultConfig(), nil
}

func parseFile(path string, data []byte) (*Config, error) {
	if isYAML(path) {
		converted, err := yamlToJSON(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
		data = converted
	}

	cfg, err := ParseVersionedConfig(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	cfg.SourcePath = path
	return MergeWithDefaults(cfg), nil
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// yamlToJSON decodes YAML into a generic map and re-encodes it as JSON so
// both formats share the migration path
func yamlToJSON(data []byte) ([]byte, error) {
	raw := make(map[string]interface{})
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return json.Marshal(raw)
}

// SaveConfig saves configuration to the specified path with version information.
// Paths ending in .yaml or .yml are written as YAML.
func SaveConfig(cfg *Config, path string) error {
	data, err := MarshalVersionedConfig(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if isYAML(path) {
		var raw map[string]interface{}
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		if data, err = yaml.Marshal(raw); err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MergeWithDefaults fills in missing values with defaults
func MergeWithDefaults(cfg *Config) *Config {
	defaults := DefaultConfig()

	if cfg.Locale.Timezone == "" {
		cfg.Locale.Timezone = defaults.Locale.Timezone
	}

	if cfg.Data.Transactions == "" {
		cfg.Data.Transactions = defaults.Data.Transactions
	}

	if cfg.Toast.DurationMs <= 0 {
		cfg.Toast.DurationMs = defaults.Toast.DurationMs
	}

	if cfg.Search.DebounceMs <= 0 {
		cfg.Search.DebounceMs = defaults.Search.DebounceMs
	}

	if cfg.Export.Dir == "" {
		cfg.Export.Dir = defaults.Export.Dir
	}
	if cfg.Export.Filename == "" {
		cfg.Export.Filename = defaults.Export.Filename
	}

	if cfg.Notifications.Permission == "" {
		cfg.Notifications.Permission = defaults.Notifications.Permission
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaults.Logging.Level
	}

	return cfg
}

// Location returns the configured time zone, or time.Local if it cannot be loaded
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Locale.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// ToastDuration returns the toast auto-hide delay
func (c *Config) ToastDuration() time.Duration {
	return time.Duration(c.Toast.DurationMs) * time.Millisecond
}

// SearchDebounce returns the search debounce delay
func (c *Config) SearchDebounce() time.Duration {
	return time.Duration(c.Search.DebounceMs) * time.Millisecond
}

// LogLevel parses logging.level, defaulting to info
func (c *Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Logging.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ResolvePath resolves p relative to the directory of the config file.
// Absolute paths and configs without a source file are returned unchanged.
func (c *Config) ResolvePath(p string) string {
	if p == "" || filepath.IsAbs(p) || c.SourcePath == "" {
		return p
	}
	return filepath.Join(filepath.Dir(c.SourcePath), p)
}

// Load is a convenience function that loads config from current directory
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return LoadConfig(cwd, "")
}
