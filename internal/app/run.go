package app

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/vk/gridcalc/internal/config"
	"github.com/vk/gridcalc/internal/ctxlog"
	"github.com/vk/gridcalc/internal/formula"
	"github.com/vk/gridcalc/internal/publish"
	"github.com/vk/gridcalc/internal/render"
	"github.com/vk/gridcalc/internal/tui"
)

// Run fills the sheet and then, in order: runs the editor, evaluates the
// one-shot expression or prints the grid, and exports the result.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.PublishURL != "" {
		p, err := publish.Dial(ctx, publish.DialOptions{
			URL:                a.config.PublishURL,
			Namespace:          a.config.PublishNamespace,
			InsecureSkipVerify: a.config.PublishInsecure,
			Timeout:            a.config.PublishTimeout,
		})
		if err != nil {
			return fmt.Errorf("failed to connect publisher: %w", err)
		}
		defer p.Close()
		a.sheet.Observe(p.Observe)
	}

	if skipped := a.model.Apply(ctx, a.sheet); skipped > 0 {
		a.logger.Warn("Some sheet entries did not fit the grid.", "skipped", skipped)
	}
	a.logger.Info("Sheet ready.", "columns", a.sheet.Columns(), "rows", a.sheet.Rows(), "cells", len(a.model.Cells))

	if a.config.Interactive {
		a.logger.Debug("Starting editor.")
		if err := tui.Run(ctx, a.sheet, a.inR, a.outW); err != nil {
			return fmt.Errorf("editor failed: %w", err)
		}
	}

	switch {
	case a.config.Eval != "":
		if err := a.eval(a.config.Eval); err != nil {
			return err
		}
	case !a.config.Interactive:
		if err := render.Write(a.outW, a.sheet); err != nil {
			return fmt.Errorf("failed to render sheet: %w", err)
		}
	}

	if a.config.ExportPath != "" {
		if err := a.export(a.config.ExportPath); err != nil {
			return err
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// eval evaluates text against the sheet and prints the value.
func (a *App) eval(text string) error {
	if !strings.HasPrefix(text, formula.Marker) {
		text = formula.Marker + text
	}
	expr := formula.NewExpression(text)
	v, err := expr.Execute(a.sheet)
	if err != nil {
		return fmt.Errorf("evaluating %q: %w", text, err)
	}
	a.logger.Debug("Expression evaluated.", "formula", text, "program", expr.Program().String(), "value", v)
	_, err = fmt.Fprintln(a.outW, v)
	return err
}

func (a *App) export(path string) error {
	model := config.Snapshot(a.sheet, a.width)

	if path == "-" {
		return a.exporter.Export(a.outW, model)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	if err := a.exporter.Export(f, model); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	a.logger.Info("Sheet exported.", "path", path, "cells", len(model.Cells))
	return nil
}
