package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/vk/gridcalc/internal/app"
	"github.com/vk/gridcalc/internal/publish"
	"github.com/vk/gridcalc/internal/sheet"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("gridcalc", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
gridcalc - a small spreadsheet engine with integer formulas.

Usage:
  gridcalc [options] [SHEET_PATH...]

Arguments:
  SHEET_PATH
    Path to a .hcl sheet file or a directory containing .hcl files.

Examples:
  gridcalc budget.hcl
  gridcalc -e "=A1*2" budget.hcl
  gridcalc -i -export budget.hcl budget.hcl

Options:
`)
		flagSet.PrintDefaults()
	}

	sheetFlag := flagSet.String("sheet", "", "Path to the sheet file or directory.")
	sFlag := flagSet.String("s", "", "Path to the sheet file or directory (shorthand).")
	configFlag := flagSet.String("config", "", "Path to a TOML settings file.")
	logFormatFlag := flagSet.String(app.SettingLogFormat, "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String(app.SettingLogLevel, "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	columnsFlag := flagSet.Int(app.SettingColumns, sheet.DefaultColumns, "Number of columns (1-26).")
	rowsFlag := flagSet.Int(app.SettingRows, sheet.DefaultRows, "Number of rows.")
	widthFlag := flagSet.Int(app.SettingWidth, sheet.DefaultWidth, "Default column display width.")
	recalcFlag := flagSet.Bool(app.SettingRecalc, true, "Re-evaluate dependent formulas after every change.")
	interactiveFlag := flagSet.Bool("interactive", false, "Open the interactive editor.")
	iFlag := flagSet.Bool("i", false, "Open the interactive editor (shorthand).")
	evalFlag := flagSet.String("eval", "", "Evaluate a formula against the sheet and print the result.")
	eFlag := flagSet.String("e", "", "Evaluate a formula (shorthand).")
	exportFlag := flagSet.String("export", "", "Write the sheet as HCL to this path ('-' for standard output).")
	publishURLFlag := flagSet.String("publish-url", "", "socket.io server that receives a 'cell' event for every stored cell.")
	publishNSFlag := flagSet.String("publish-namespace", "/", "socket.io namespace used for publishing.")
	publishInsecureFlag := flagSet.Bool("publish-insecure", false, "Skip TLS certificate verification for the publish connection.")
	publishTimeoutFlag := flagSet.Duration("publish-timeout", publish.DefaultTimeout, "How long to wait for the publish connection.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	var paths []string
	for _, p := range []string{*sheetFlag, *sFlag} {
		if p != "" {
			paths = append(paths, p)
		}
	}
	paths = append(paths, flagSet.Args()...)
	slog.Debug("Sheet paths determined.", "paths", paths)

	eval := *evalFlag
	if eval == "" {
		eval = *eFlag
	}
	interactive := *interactiveFlag || *iFlag

	if len(paths) == 0 && eval == "" && !interactive {
		slog.Debug("Nothing to do, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	cfg := app.Config{
		SheetPaths:       paths,
		SettingsPath:     *configFlag,
		LogFormat:        strings.ToLower(*logFormatFlag),
		LogLevel:         strings.ToLower(*logLevelFlag),
		Columns:          *columnsFlag,
		Rows:             *rowsFlag,
		Width:            *widthFlag,
		Recalc:           *recalcFlag,
		Interactive:      interactive,
		Eval:             eval,
		ExportPath:       *exportFlag,
		PublishURL:       *publishURLFlag,
		PublishNamespace: *publishNSFlag,
		PublishInsecure:  *publishInsecureFlag,
		PublishTimeout:   *publishTimeoutFlag,
	}

	if cfg.SettingsPath != "" {
		settings, err := app.LoadSettings(cfg.SettingsPath)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		explicit := make(map[string]bool)
		flagSet.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
		settings.ApplyTo(&cfg, explicit)
		slog.Debug("Settings file merged.", "path", cfg.SettingsPath, "explicit", len(explicit))
	}

	if !slices.Contains(app.LogFormats, cfg.LogFormat) {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}
	if !slices.Contains(app.LogLevels, cfg.LogLevel) {
		return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
