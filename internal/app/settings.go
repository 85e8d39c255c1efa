package app

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Settings is the optional TOML settings file:
//
//	[grid]
//	columns = 8
//	rows    = 50
//	width   = 9
//	recalc  = true
//
//	[log]
//	level  = "debug"
//	format = "json"
type Settings struct {
	Grid GridSettings `toml:"grid"`
	Log  LogSettings  `toml:"log"`
}

// GridSettings are nil when the key is absent from the file.
type GridSettings struct {
	Columns *int  `toml:"columns"`
	Rows    *int  `toml:"rows"`
	Width   *int  `toml:"width"`
	Recalc  *bool `toml:"recalc"`
}

// LogSettings are empty when the key is absent from the file.
type LogSettings struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Setting names shared with the command line flags that override them.
const (
	SettingColumns   = "columns"
	SettingRows      = "rows"
	SettingWidth     = "width"
	SettingRecalc    = "recalc"
	SettingLogLevel  = "log-level"
	SettingLogFormat = "log-format"
)

// LoadSettings reads a settings file. Unknown keys are an error.
func LoadSettings(path string) (*Settings, error) {
	var s Settings
	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("settings %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return &s, nil
}

// ApplyTo copies every value present in s into cfg, except the settings
// named in explicit, which were set on the command line and win.
func (s *Settings) ApplyTo(cfg *Config, explicit map[string]bool) {
	if s.Grid.Columns != nil && !explicit[SettingColumns] {
		cfg.Columns = *s.Grid.Columns
	}
	if s.Grid.Rows != nil && !explicit[SettingRows] {
		cfg.Rows = *s.Grid.Rows
	}
	if s.Grid.Width != nil && !explicit[SettingWidth] {
		cfg.Width = *s.Grid.Width
	}
	if s.Grid.Recalc != nil && !explicit[SettingRecalc] {
		cfg.Recalc = *s.Grid.Recalc
	}
	if s.Log.Level != "" && !explicit[SettingLogLevel] {
		cfg.LogLevel = strings.ToLower(s.Log.Level)
	}
	if s.Log.Format != "" && !explicit[SettingLogFormat] {
		cfg.LogFormat = strings.ToLower(s.Log.Format)
	}
}
