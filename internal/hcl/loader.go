package hcl

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/gridcalc/internal/cellid"
	"github.com/vk/gridcalc/internal/config"
	"github.com/vk/gridcalc/internal/ctxlog"
	"github.com/vk/gridcalc/internal/fsutil"
)

// Loader is the HCL implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new HCL sheet loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file under paths and merges them into one model.
// Files are read in the order given, directories in lexical order. A cell
// declared twice keeps its last value.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := findHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl files found in %v", paths)
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	model := &config.Model{}
	seen := make(map[cellid.Position]string)
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		if root.Sheet != nil {
			translateSheet(root.Sheet, &model.Grid)
		}
		for _, c := range root.Columns {
			col, err := translateColumn(c)
			if err != nil {
				return nil, err
			}
			model.Columns = append(model.Columns, col)
		}
		for _, c := range root.Cells {
			entry, err := translateCell(c)
			if err != nil {
				return nil, err
			}
			if prev, ok := seen[entry.Pos]; ok {
				logger.Warn("Duplicate cell overrides earlier declaration.", "cell", entry.Pos.String(), "previous", prev, "current", entry.Source)
			}
			seen[entry.Pos] = entry.Source
			model.Cells = append(model.Cells, entry)
		}
	}

	logger.Debug("HCL loading complete.", "model", model.String())
	return model, nil
}

func translateSheet(b *sheetBlock, grid *config.Grid) {
	if b.Columns != nil {
		grid.Columns = *b.Columns
	}
	if b.Rows != nil {
		grid.Rows = *b.Rows
	}
	if b.Width != nil {
		grid.Width = *b.Width
	}
}

func translateColumn(b *columnBlock) (config.Column, error) {
	col, err := cellid.ParseColumn(b.Label)
	if err != nil {
		return config.Column{}, fmt.Errorf("%s: %w", b.DeclRange, err)
	}
	if b.Width < 1 {
		return config.Column{}, fmt.Errorf("%s: column %s: width must be positive, got %d", b.DeclRange, b.Label, b.Width)
	}
	return config.Column{Col: col, Width: b.Width}, nil
}

func translateCell(b *cellBlock) (config.CellEntry, error) {
	pos, err := cellid.Parse(b.Address)
	if err != nil {
		return config.CellEntry{}, fmt.Errorf("%s: %w", b.DeclRange, err)
	}
	if isMissing(b.Value) {
		return config.CellEntry{}, fmt.Errorf("cell %s: %w", pos, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Missing required argument",
			Detail:   `The argument "value" is required, but no definition was found.`,
			Subject:  b.DeclRange.Ptr(),
		}})
	}
	text, diags := entryText(b.Value)
	if diags.HasErrors() {
		return config.CellEntry{}, fmt.Errorf("cell %s: %w", pos, diags)
	}
	return config.CellEntry{Pos: pos, Entry: text, Source: b.DeclRange.String()}, nil
}

// isMissing reports whether gohcl synthesized expr for an absent attribute.
// The placeholder it substitutes is a null with an empty source range, while
// a written `null` always spans its keyword.
func isMissing(expr hcl.Expression) bool {
	r := expr.Range()
	return r.Start.Byte == r.End.Byte
}

// entryText turns a cell value into the text a user would have typed. Whole
// numbers keep their integer form; other numbers become their decimal text,
// which the sheet stores as text.
func entryText(expr hcl.Expression) (string, hcl.Diagnostics) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return "", diags
	}
	if val.IsNull() {
		return "", nil
	}

	switch val.Type() {
	case cty.String:
		return val.AsString(), nil
	case cty.Number:
		var n int64
		if err := gocty.FromCtyValue(val, &n); err == nil {
			return strconv.FormatInt(n, 10), nil
		}
		return val.AsBigFloat().Text('f', -1), nil
	}

	return "", hcl.Diagnostics{{
		Severity: hcl.DiagError,
		Summary:  "Unsupported cell value",
		Detail:   fmt.Sprintf("A cell value must be a number or a string, not %s.", val.Type().FriendlyName()),
		Subject:  expr.Range().Ptr(),
	}}
}

// findHCLFiles expands paths into a flat, duplicate-free list of .hcl files.
// A path naming a file is used whatever its extension.
func findHCLFiles(paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		found := []string{path}
		if info.IsDir() {
			found, err = fsutil.FindFilesByExtension(path, ".hcl")
			if err != nil {
				return nil, err
			}
		}
		for _, f := range found {
			if _, ok := seen[f]; !ok {
				seen[f] = struct{}{}
				files = append(files, f)
			}
		}
	}
	return files, nil
}
