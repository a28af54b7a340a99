package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	mdwerror "github.com/msto63/fnkit/foundation/core/error"
	mdwerrors "github.com/msto63/fnkit/foundation/core/errors"
	mdwlog "github.com/msto63/fnkit/foundation/core/log"
	"github.com/msto63/fnkit/foundation/utils/fieldx"
	"github.com/msto63/fnkit/foundation/utils/stringx"
)

// Environment variables read by LoadFromEnv
const (
	EnvConfig   = "FNKIT_CONFIG"
	EnvLogLevel = "FNKIT_LOG_LEVEL"
)

// Config holds the complete fnkit configuration
type Config struct {
	General GeneralConfig `toml:"general"`
	Text    TextConfig    `toml:"text"`
	Fields  FieldsConfig  `toml:"fields"`
}

// GeneralConfig holds general settings
type GeneralConfig struct {
	Name      string `toml:"name"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
}

// TextConfig holds the defaults of the text commands
type TextConfig struct {
	Width      int               `toml:"width"`
	Marker     string            `toml:"marker"`
	HTMLMarker string            `toml:"html_marker"`
	Pad        string            `toml:"pad"`
	Align      string            `toml:"align"`
	Styles     map[string]string `toml:"styles"`
}

// FieldsConfig holds the defaults of the field commands
type FieldsConfig struct {
	Output string `toml:"output"`
	Assoc  bool   `toml:"assoc"`
}

// Default returns the configuration used when no file is found
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML file
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, mdwerrors.NewErrorBuilder(mdwerrors.ModuleConfig).
			Operation("load").
			Messagef("config file not found: %s", path).
			Code(string(mdwerror.CodeMissingConfig)).
			Detail("path", path).
			Build()
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, mdwerrors.NewErrorBuilder(mdwerrors.ModuleConfig).
			Operation("load").
			Message("failed to parse config").
			Cause(err).
			Code(string(mdwerror.CodeInvalidConfig)).
			Detail("path", path).
			Build()
	}

	cfg.applyDefaults()
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv loads the file named by FNKIT_CONFIG, or the first file found
// in the default locations. Without any file the defaults are returned.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfig)
	if path == "" {
		path = findDefault()
	}
	if path == "" {
		cfg := Default()
		cfg.applyEnv()
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return Load(path)
}

// SearchPaths lists the locations LoadFromEnv tries in order
func SearchPaths() []string {
	paths := []string{"./fnkit.toml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "fnkit", "config.toml"))
	}
	return paths
}

func findDefault() string {
	for _, p := range SearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.Name == "" {
		c.General.Name = "fnkit"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "console"
	}

	// Text
	if c.Text.Width == 0 {
		c.Text.Width = 80
	}
	if c.Text.Marker == "" {
		c.Text.Marker = "…"
	}
	if c.Text.HTMLMarker == "" {
		c.Text.HTMLMarker = "..."
	}
	if c.Text.Pad == "" {
		c.Text.Pad = " "
	}
	if c.Text.Align == "" {
		c.Text.Align = stringx.AlignEnd.String()
	}
}

// applyEnv lets the environment override file settings
func (c *Config) applyEnv() {
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.General.LogLevel = level
	}
}

// Validate checks the values that are parsed later on
func (c *Config) Validate() error {
	if _, err := mdwlog.ParseLevel(c.General.LogLevel); err != nil {
		return invalid("general.log_level", c.General.LogLevel, err)
	}
	if _, err := mdwlog.ParseFormat(c.General.LogFormat); err != nil {
		return invalid("general.log_format", c.General.LogFormat, err)
	}
	if _, err := stringx.ParseAlign(c.Text.Align); err != nil {
		return invalid("text.align", c.Text.Align, err)
	}
	if c.Text.Width < 0 {
		return invalid("text.width", c.Text.Width, mdwerrors.OutOfRange(mdwerrors.ModuleConfig, "validate", c.Text.Width, 0, nil))
	}
	if c.Fields.Output != "" {
		if _, err := fieldx.ParseFormat(c.Fields.Output); err != nil {
			return invalid("fields.output", c.Fields.Output, err)
		}
	}
	return nil
}

func invalid(key string, value any, cause error) error {
	return mdwerrors.NewErrorBuilder(mdwerrors.ModuleConfig).
		Operation("validate").
		Messagef("invalid value for %s: %v", key, value).
		Cause(cause).
		Code(string(mdwerror.CodeInvalidConfig)).
		Detail("key", key).
		Detail("value", value).
		Severity(mdwerror.SeverityLow).
		Build()
}

// LogLevel returns the parsed log level
func (c *Config) LogLevel() mdwlog.Level {
	level, _ := mdwlog.ParseLevel(c.General.LogLevel)
	return level
}

// Align returns the parsed default alignment
func (c *Config) Align() stringx.Align {
	align, _ := stringx.ParseAlign(c.Text.Align)
	return align
}

// StyleColors returns the configured tag colors keyed by lower-cased tag name
func (c *Config) StyleColors() map[string]string {
	out := make(map[string]string, len(c.Text.Styles))
	for name, color := range c.Text.Styles {
		out[strings.ToLower(name)] = color
	}
	return out
}
