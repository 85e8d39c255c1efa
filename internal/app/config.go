package app

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/vk/gridcalc/internal/cellid"
)

// Accepted values for the logging options.
var (
	LogLevels  = []string{"debug", "info", "warn", "error"}
	LogFormats = []string{"text", "json"}
)

// MinWidth is the narrowest column that still shows a value next to the
// separating space.
const MinWidth = 3

// Config holds everything an App instance needs to run.
type Config struct {
	SheetPaths   []string // .hcl files or directories
	SettingsPath string   // optional TOML settings file

	LogFormat string
	LogLevel  string

	Columns int
	Rows    int
	Width   int
	Recalc  bool

	Interactive bool
	Eval        string
	ExportPath  string // "-" writes to the output writer

	PublishURL       string
	PublishNamespace string
	PublishInsecure  bool          // skip TLS certificate verification
	PublishTimeout   time.Duration // 0 uses the publisher default
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.SheetPaths) == 0 && cfg.Eval == "" && !cfg.Interactive {
		return nil, errors.New("nothing to do: provide a sheet path, an expression to evaluate or interactive mode")
	}
	if cfg.Columns < 1 || cfg.Columns > cellid.MaxColumns {
		return nil, fmt.Errorf("columns must be between 1 and %d, got %d", cellid.MaxColumns, cfg.Columns)
	}
	if cfg.Rows < 1 {
		return nil, fmt.Errorf("rows must be at least 1, got %d", cfg.Rows)
	}
	if cfg.Width < MinWidth {
		return nil, fmt.Errorf("width must be at least %d, got %d", MinWidth, cfg.Width)
	}
	if !slices.Contains(LogLevels, cfg.LogLevel) {
		return nil, fmt.Errorf("invalid log level %q", cfg.LogLevel)
	}
	if !slices.Contains(LogFormats, cfg.LogFormat) {
		return nil, fmt.Errorf("invalid log format %q", cfg.LogFormat)
	}
	if cfg.PublishTimeout < 0 {
		return nil, fmt.Errorf("publish timeout must not be negative, got %s", cfg.PublishTimeout)
	}
	if cfg.Interactive && cfg.ExportPath == "-" {
		return nil, errors.New("cannot export to standard output in interactive mode")
	}

	cfg.SheetPaths = slices.Clone(cfg.SheetPaths)
	return &cfg, nil
}
