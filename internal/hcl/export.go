package hcl

import (
	"fmt"
	"io"
	"strconv"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/gridcalc/internal/cellid"
	"github.com/vk/gridcalc/internal/config"
)

// Exporter is the HCL implementation of config.Exporter.
type Exporter struct{}

// NewExporter creates a new HCL sheet exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export writes m as a sheet file that Load reads back into the same model.
func (e *Exporter) Export(w io.Writer, m *config.Model) error {
	f := hclwrite.NewEmptyFile()
	body := f.Body()

	sheet := body.AppendNewBlock("sheet", nil).Body()
	setInt(sheet, "columns", m.Grid.Columns)
	setInt(sheet, "rows", m.Grid.Rows)
	setInt(sheet, "width", m.Grid.Width)

	for _, c := range m.Columns {
		body.AppendNewline()
		block := body.AppendNewBlock("column", []string{cellid.ColumnLabel(c.Col)})
		block.Body().SetAttributeValue("width", cty.NumberIntVal(int64(c.Width)))
	}

	for _, c := range m.Cells {
		body.AppendNewline()
		block := body.AppendNewBlock("cell", []string{c.Pos.String()})
		block.Body().SetAttributeValue("value", entryValue(c.Entry))
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write HCL: %w", err)
	}
	return nil
}

func setInt(body *hclwrite.Body, name string, v int) {
	if v > 0 {
		body.SetAttributeValue(name, cty.NumberIntVal(int64(v)))
	}
}

// entryValue writes integer entries as numbers and everything else as
// strings, mirroring how entries are parsed.
func entryValue(entry string) cty.Value {
	if n, err := strconv.ParseInt(entry, 10, 64); err == nil {
		return cty.NumberIntVal(n)
	}
	return cty.StringVal(entry)
}
