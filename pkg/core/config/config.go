package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	qerr "github.com/msto63/trinom/pkg/core/error"
)

// EnvPrefix is the prefix of environment variables overriding file values
const EnvPrefix = "TRINOM_"

// MaxPoints is the largest graph.points accepted, the limit of the sampler
const MaxPoints = 10_000_000

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general"`
	Graph   GraphConfig   `toml:"graph"`
	Export  ExportConfig  `toml:"export"`

	// path of the file the configuration was read from, empty for defaults
	source string
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Locale    string `toml:"locale"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
	LogFile   string `toml:"log_file"`
}

// GraphConfig holds the default plotting window and display sizes
type GraphConfig struct {
	XMin           float64 `toml:"xmin"`
	XMax           float64 `toml:"xmax"`
	Points         int     `toml:"points"`
	TerminalWidth  int     `toml:"terminal_width"`
	TerminalHeight int     `toml:"terminal_height"`
	WindowWidth    int     `toml:"window_width"`
	WindowHeight   int     `toml:"window_height"`
}

// ExportConfig holds settings for PDF and XLSX exports
type ExportConfig struct {
	Dir string `toml:"dir"`
}

// Default returns the configuration used when no file is present. The graph
// defaults reproduce the automatic mode of the study: [-100;100], 10⁶ points.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults(nil)
	return cfg
}

// Load loads configuration from a TOML file
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, qerr.New("config file not found").
			WithCode(qerr.CodeNotFound).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, qerr.Wrap(err, "failed to parse config").
			WithCode(qerr.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	cfg.source = path
	cfg.applyDefaults(meta.IsDefined)
	return &cfg, nil
}

// LoadFromEnv resolves the configuration the way the CLI does: an explicit
// path wins, then TRINOM_CONFIG, then the default locations. Missing files
// are not an error; the defaults are used instead. A .env file in the working
// directory is loaded first and TRINOM_* variables are applied last.
func LoadFromEnv(explicit string) (*Config, error) {
	// godotenv never overrides variables that are already set
	_ = godotenv.Load()

	path := explicit
	if path == "" {
		path = os.Getenv(EnvPrefix + "CONFIG")
	}
	if path == "" {
		for _, p := range defaultPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	var cfg *Config
	if path == "" {
		cfg = Default()
	} else {
		var err error
		if cfg, err = Load(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

func defaultPaths() []string {
	paths := []string{"./trinom.toml", "./configs/trinom.toml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "trinom", "trinom.toml"))
	}
	return paths
}

// applyDefaults sets default values for missing configuration. defined
// reports whether a key was present in the file, so that an explicit zero
// bound is kept; nil means no file was read.
func (c *Config) applyDefaults(defined func(key ...string) bool) {
	if defined == nil {
		defined = func(...string) bool { return false }
	}

	if c.General.Locale == "" {
		c.General.Locale = "fr"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "info"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	if !defined("graph", "xmin") {
		c.Graph.XMin = -100
	}
	if !defined("graph", "xmax") {
		c.Graph.XMax = 100
	}
	if c.Graph.Points == 0 {
		c.Graph.Points = 1_000_000
	}
	if c.Graph.TerminalWidth == 0 {
		c.Graph.TerminalWidth = 72
	}
	if c.Graph.TerminalHeight == 0 {
		c.Graph.TerminalHeight = 20
	}
	if c.Graph.WindowWidth == 0 {
		c.Graph.WindowWidth = 800
	}
	if c.Graph.WindowHeight == 0 {
		c.Graph.WindowHeight = 600
	}

	if c.Export.Dir == "" {
		c.Export.Dir = "."
	}
	c.Export.Dir = os.ExpandEnv(c.Export.Dir)
	c.General.LogFile = os.ExpandEnv(c.General.LogFile)
}

// applyEnv overrides file values with TRINOM_* variables
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok && v != "" {
			*dst = v
		}
	}
	float := func(key string, dst *float64) error {
		v, ok := lookup(EnvPrefix + key)
		if !ok || v == "" {
			return nil
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return envError(key, v, err)
		}
		*dst = f
		return nil
	}
	integer := func(key string, dst *int) error {
		v, ok := lookup(EnvPrefix + key)
		if !ok || v == "" {
			return nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(strings.ReplaceAll(v, "_", "")))
		if err != nil {
			return envError(key, v, err)
		}
		*dst = n
		return nil
	}

	str("LOCALE", &c.General.Locale)
	str("LOG_LEVEL", &c.General.LogLevel)
	str("LOG_FORMAT", &c.General.LogFormat)
	str("LOG_FILE", &c.General.LogFile)
	str("EXPORT_DIR", &c.Export.Dir)

	for key, dst := range map[string]*float64{"XMIN": &c.Graph.XMin, "XMAX": &c.Graph.XMax} {
		if err := float(key, dst); err != nil {
			return err
		}
	}
	for key, dst := range map[string]*int{
		"POINTS":          &c.Graph.Points,
		"TERMINAL_WIDTH":  &c.Graph.TerminalWidth,
		"TERMINAL_HEIGHT": &c.Graph.TerminalHeight,
		"WINDOW_WIDTH":    &c.Graph.WindowWidth,
		"WINDOW_HEIGHT":   &c.Graph.WindowHeight,
	} {
		if err := integer(key, dst); err != nil {
			return err
		}
	}
	return nil
}

func envError(key, value string, cause error) error {
	return qerr.Wrap(cause, "invalid environment override").
		WithCode(qerr.CodeInvalidConfig).
		WithOperation("config.applyEnv").
		WithDetail("variable", EnvPrefix+key).
		WithDetail("value", value)
}

// Validate checks the values the sampler and the renderers depend on
func (c *Config) Validate() error {
	invalid := func(field string, value interface{}) error {
		return qerr.New(fmt.Sprintf("invalid %s", field)).
			WithCode(qerr.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("field", field).
			WithDetail("value", value)
	}

	if c.Graph.Points < 2 || c.Graph.Points > MaxPoints {
		return invalid("graph.points", c.Graph.Points)
	}
	if c.Graph.XMin >= c.Graph.XMax {
		return invalid("graph.xmin", c.Graph.XMin)
	}
	if c.Graph.TerminalWidth < 8 || c.Graph.TerminalHeight < 4 {
		return invalid("graph.terminal_width", c.Graph.TerminalWidth)
	}
	if c.Graph.WindowWidth < 1 || c.Graph.WindowHeight < 1 {
		return invalid("graph.window_width", c.Graph.WindowWidth)
	}
	switch c.General.LogFormat {
	case "json", "text", "console", "logfmt":
	default:
		return invalid("general.log_format", c.General.LogFormat)
	}
	return nil
}

// Source returns the file the configuration was read from
func (c *Config) Source() string {
	return c.source
}
