// internal/config/flags.go
package config

import (
	"flag"
	"fmt"

	"github.com/bethropolis/quill/internal/utils"
)

// Flags holds values parsed from command-line flags.
type Flags struct {
	set *flag.FlagSet

	ConfigFilePath  *string
	Version         *bool
	LogLevel        *string
	LogFilePath     *string
	TabWidth        *int
	ScrollOff       *int
	Theme           *string
	SystemClipboard *bool
	EnableTags      *string
	DisableTags     *string
}

// NewFlags defines the command-line flags on fs.
func NewFlags(fs *flag.FlagSet) *Flags {
	return &Flags{
		set:             fs,
		ConfigFilePath:  fs.String("config", "", fmt.Sprintf("Path to TOML configuration file (default <config dir>/%s/%s)", AppName, DefaultConfigFileName)),
		Version:         fs.Bool("version", false, "Show version information and exit"),
		LogLevel:        fs.String("loglevel", "", "Log level (debug, info, warn, error) - Overrides config file"),
		LogFilePath:     fs.String("logfile", "", "Path to write log file (use '-' for stderr) - Overrides config file"),
		TabWidth:        fs.Int("tabwidth", 0, "Number of columns per tab - Overrides config file"),
		ScrollOff:       fs.Int("scrolloff", -1, "Lines of context above/below cursor - Overrides config file"),
		Theme:           fs.String("theme", "", "Theme name - Overrides config file"),
		SystemClipboard: fs.Bool("system-clipboard", false, "Use system clipboard instead of internal clipboard"),
		EnableTags:      fs.String("log-tags", "", "Comma-separated list of log tags to enable"),
		DisableTags:     fs.String("log-disable-tags", "", "Comma-separated list of log tags to disable"),
	}
}

// Parse parses args and returns the remaining non-flag arguments.
func (f *Flags) Parse(args []string) ([]string, error) {
	if err := f.set.Parse(args); err != nil {
		return nil, err
	}
	return f.set.Args(), nil
}

// ApplyOverrides updates cfg with values from flags that were explicitly set.
func (f *Flags) ApplyOverrides(cfg *Config) {
	f.set.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "loglevel":
			if *f.LogLevel != "" {
				cfg.Logger.LogLevel = *f.LogLevel
			}
		case "logfile":
			cfg.Logger.LogFilePath = *f.LogFilePath
		case "tabwidth":
			if *f.TabWidth > 0 {
				cfg.Editor.TabWidth = *f.TabWidth
			}
		case "scrolloff":
			if *f.ScrollOff >= 0 {
				cfg.Editor.ScrollOff = *f.ScrollOff
			}
		case "theme":
			if *f.Theme != "" {
				cfg.Editor.Theme = *f.Theme
			}
		case "system-clipboard":
			cfg.Editor.SystemClipboard = *f.SystemClipboard
		case "log-tags":
			cfg.Logger.EnabledTags = utils.SplitCommaList(*f.EnableTags)
		case "log-disable-tags":
			cfg.Logger.DisabledTags = utils.SplitCommaList(*f.DisableTags)
		}
	})
}
