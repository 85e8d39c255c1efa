package config

import (
	"context"
	"io"
)

// Loader reads sheet files and translates them into a Model.
type Loader interface {
	// Load reads every sheet file found under paths. Files are processed in a
	// stable order and cells keep the order in which they were declared.
	Load(ctx context.Context, paths ...string) (*Model, error)
}

// Exporter writes a Model in a format-specific syntax.
type Exporter interface {
	Export(w io.Writer, m *Model) error
}
