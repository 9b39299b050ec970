package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	EngineBuiltin    = "builtin"
	EngineCommonMark = "commonmark"
)

type Config struct {
	Engine   string      `mapstructure:"engine" yaml:"engine"`     // "builtin" (default) or "commonmark"
	Indent   int         `mapstructure:"indent" yaml:"indent"`     // spaces before list items and paragraph text
	Headings bool        `mapstructure:"headings" yaml:"headings"` // render "# Title" lines as <hN>
	Verify   bool        `mapstructure:"verify" yaml:"verify"`     // check tag nesting before writing output
	Batch    BatchConfig `mapstructure:"batch" yaml:"batch"`
	Theme    ThemeConfig `mapstructure:"theme" yaml:"theme"`
}

// BatchConfig configures the batch command
type BatchConfig struct {
	OutDir    string `mapstructure:"out_dir" yaml:"out_dir"`     // empty writes next to each source file
	Extension string `mapstructure:"extension" yaml:"extension"` // output extension, default ".html"
}

// ThemeConfig allows customization of UI colors
// Colors can be ANSI color numbers (0-255) or hex codes (#RRGGBB)
type ThemeConfig struct {
	Primary   string `mapstructure:"primary" yaml:"primary,omitempty"`     // main accent (file names, highlights)
	Secondary string `mapstructure:"secondary" yaml:"secondary,omitempty"` // headers, diff hunks
	Success   string `mapstructure:"success" yaml:"success,omitempty"`
	Error     string `mapstructure:"error" yaml:"error,omitempty"`
	Muted     string `mapstructure:"muted" yaml:"muted,omitempty"` // dimmed text
}

func Load() (*Config, error) {
	configPath, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	setDefaults(v)

	// Read config file (optional - won't error if missing)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Engine:   EngineBuiltin,
		Indent:   4,
		Headings: true,
		Batch:    BatchConfig{Extension: ".html"},
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("engine", EngineBuiltin)
	v.SetDefault("indent", 4)
	v.SetDefault("headings", true)
	v.SetDefault("verify", false)
	// batch.out_dir defaults to empty, writing next to the source
	v.SetDefault("batch.extension", ".html")
}

// Validate rejects values the converter cannot honor.
func (c *Config) Validate() error {
	switch c.Engine {
	case EngineBuiltin, EngineCommonMark:
	default:
		return fmt.Errorf("config: unknown engine %q (want %s or %s)", c.Engine, EngineBuiltin, EngineCommonMark)
	}
	if c.Indent < 1 {
		return fmt.Errorf("config: indent must be at least 1, got %d", c.Indent)
	}
	if c.Batch.Extension != "" && !strings.HasPrefix(c.Batch.Extension, ".") {
		return fmt.Errorf("config: batch.extension must start with '.', got %q", c.Batch.Extension)
	}
	return nil
}

// ApplyOverrides applies command-line overrides to the config.
// Empty engine and non-positive indent leave the configured values alone.
func (c *Config) ApplyOverrides(engine string, indent int, noHeadings, verify bool) {
	if engine != "" {
		c.Engine = strings.ToLower(strings.TrimSpace(engine))
	}
	if indent > 0 {
		c.Indent = indent
	}
	if noHeadings {
		c.Headings = false
	}
	if verify {
		c.Verify = true
	}
}

// IndentString returns the configured indent as spaces.
func (c *Config) IndentString() string {
	return strings.Repeat(" ", c.Indent)
}

// GetConfigDir returns the XDG config directory for md2html.
// Uses $XDG_CONFIG_HOME if set, otherwise ~/.config
func GetConfigDir() (string, error) {
	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		return filepath.Join(xdgHome, "md2html"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "md2html"), nil
}

// GetConfigPath returns the path where the config file should be located
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.yaml"), nil
}

// Exists returns true if a config file exists
func Exists() bool {
	path, err := GetConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}
