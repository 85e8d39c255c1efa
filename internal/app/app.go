package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/gridcalc/internal/config"
	"github.com/vk/gridcalc/internal/ctxlog"
	"github.com/vk/gridcalc/internal/sheet"
)

// App encapsulates the application's dependencies, configuration and
// lifecycle.
type App struct {
	outW     io.Writer
	inR      io.Reader
	logger   *slog.Logger
	config   *Config
	model    *config.Model
	exporter config.Exporter
	sheet    *sheet.Sheet
	width    int
}

// NewApp builds the logger, loads the configured sheet files through loader
// and creates the sheet they describe. Results are written to outW and logs
// to logW; interactive sessions own the terminal, so their logs are dropped.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader, exporter config.Exporter) (*App, error) {
	if cfg.Interactive {
		logW = io.Discard
	}
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model := &config.Model{}
	if len(cfg.SheetPaths) > 0 {
		m, err := loader.Load(ctx, cfg.SheetPaths...)
		if err != nil {
			return nil, fmt.Errorf("failed to load sheet: %w", err)
		}
		model = m
		logger.Debug("Sheet files loaded.", "model", model.String())
	}

	width := cfg.Width
	if model.Grid.Width > 0 {
		width = model.Grid.Width
	}
	opts := append(model.SheetOptions(cfg.Columns, cfg.Rows),
		sheet.WithWidth(width),
		sheet.WithRecalc(cfg.Recalc),
		sheet.WithLogger(logger),
	)

	return &App{
		outW:     outW,
		inR:      os.Stdin,
		logger:   logger,
		config:   cfg,
		model:    model,
		exporter: exporter,
		sheet:    sheet.New(opts...),
		width:    width,
	}, nil
}

// Sheet returns the application's sheet. This is primarily for testing.
func (a *App) Sheet() *sheet.Sheet {
	return a.sheet
}
