// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/quill/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"`
	Editor EditorConfig  `toml:"editor"`

	// Undecoded lists keys in the file that matched no setting.
	Undecoded []string `toml:"-"`
}

// EditorConfig holds editor-specific settings.
type EditorConfig struct {
	TabWidth        int    `toml:"tab_width"`
	ScrollOff       int    `toml:"scroll_off"`
	SystemClipboard bool   `toml:"system_clipboard"`
	Theme           string `toml:"theme"`
	MaxHistory      int    `toml:"max_history"`
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Editor: EditorConfig{
			TabWidth:        DefaultTabWidth,
			ScrollOff:       DefaultScrollOff,
			SystemClipboard: SystemClipboard,
			Theme:           DefaultTheme,
			MaxHistory:      DefaultMaxHistory,
		},
	}
}

// DefaultConfigPath is <user config dir>/quill/config.toml, or "" if the
// config dir is unknown.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName, DefaultConfigFileName)
}

// DefaultThemesDir is <user config dir>/quill/themes, or "" if unknown.
func DefaultThemesDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName, ThemesDirName)
}

// loadFromFile decodes filePath over cfg. A missing file is not an error.
func loadFromFile(filePath string, cfg *Config) error {
	if _, err := os.Stat(filePath); errors.Is(err, os.ErrNotExist) {
		return nil
	} else if err != nil {
		return fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	for _, key := range metadata.Undecoded() {
		cfg.Undecoded = append(cfg.Undecoded, key.String())
	}
	return nil
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.TabWidth < MinTabWidth || c.Editor.TabWidth > MaxTabWidth {
		c.Editor.TabWidth = defaults.Editor.TabWidth
	}
	if c.Editor.ScrollOff < 0 { // Allow 0
		c.Editor.ScrollOff = defaults.Editor.ScrollOff
	}
	if c.Editor.MaxHistory <= 0 {
		c.Editor.MaxHistory = defaults.Editor.MaxHistory
	}
	if c.Editor.Theme == "" {
		c.Editor.Theme = defaults.Editor.Theme
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
}

// Load builds the effective configuration: defaults, then the TOML file, then
// flags that were explicitly set. configFilePath "" means DefaultConfigPath.
// The returned config is always usable; a file error is returned alongside it.
func Load(configFilePath string, flags *Flags) (*Config, error) {
	cfg := NewDefaultConfig()

	effectivePath := configFilePath
	if effectivePath == "" {
		effectivePath = DefaultConfigPath()
	}

	var loadErr error
	if effectivePath != "" {
		if err := loadFromFile(effectivePath, cfg); err != nil {
			loadErr = err
			cfg = NewDefaultConfig()
		}
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}

	cfg.validate()
	return cfg, loadErr
}
