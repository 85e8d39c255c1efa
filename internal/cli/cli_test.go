package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/vk/gridcalc/internal/app"
	"github.com/vk/gridcalc/internal/publish"
)

func defaults(mutate func(*app.Config)) *app.Config {
	cfg := &app.Config{
		LogFormat:        "text",
		LogLevel:         "info",
		Columns:          10,
		Rows:             30,
		Width:            7,
		Recalc:           true,
		PublishNamespace: "/",
		PublishTimeout:   publish.DefaultTimeout,
	}
	mutate(cfg)
	return cfg
}

func TestParse(t *testing.T) {
	t.Parallel()

	settingsPath := filepath.Join(t.TempDir(), "gridcalc.toml")
	require.NoError(t, os.WriteFile(settingsPath, []byte(`
[grid]
columns = 5
width = 12
recalc = false

[log]
level = "debug"
`), 0o600))

	testCases := []struct {
		name           string
		args           []string
		expectExit     bool
		expectErr      string
		expectedConfig *app.Config
		checkOutput    func(t *testing.T, output string)
	}{
		{
			name: "Happy path with all flags",
			args: []string{
				"-sheet", "/test/sheet.hcl",
				"--log-level=debug",
				"--log-format=json",
				"--columns=5", "--rows=8", "--width=9",
				"--recalc=false",
				"--export=out.hcl",
				"--publish-url=http://localhost:3000",
				"--publish-namespace=/cells",
				"--publish-insecure",
				"--publish-timeout=2s",
			},
			expectedConfig: defaults(func(c *app.Config) {
				c.SheetPaths = []string{"/test/sheet.hcl"}
				c.LogLevel, c.LogFormat = "debug", "json"
				c.Columns, c.Rows, c.Width = 5, 8, 9
				c.Recalc = false
				c.ExportPath = "out.hcl"
				c.PublishURL = "http://localhost:3000"
				c.PublishNamespace = "/cells"
				c.PublishInsecure = true
				c.PublishTimeout = 2 * time.Second
			}),
		},
		{
			name: "Shorthand and positional paths",
			args: []string{"-s", "/a.hcl", "/b", "/c.hcl"},
			expectedConfig: defaults(func(c *app.Config) {
				c.SheetPaths = []string{"/a.hcl", "/b", "/c.hcl"}
			}),
		},
		{
			name: "Eval without a sheet",
			args: []string{"-e", "=1+2"},
			expectedConfig: defaults(func(c *app.Config) {
				c.Eval = "=1+2"
			}),
		},
		{
			name: "Interactive shorthand",
			args: []string{"-i"},
			expectedConfig: defaults(func(c *app.Config) {
				c.Interactive = true
			}),
		},
		{
			name: "Settings file fills unset flags",
			args: []string{"-config", settingsPath, "-width=4", "/s.hcl"},
			expectedConfig: defaults(func(c *app.Config) {
				c.SheetPaths = []string{"/s.hcl"}
				c.SettingsPath = settingsPath
				c.Columns = 5
				c.Width = 4
				c.Recalc = false
				c.LogLevel = "debug"
			}),
		},
		{
			name:       "Help flag triggers clean exit",
			args:       []string{"-h"},
			expectExit: true,
			checkOutput: func(t *testing.T, output string) {
				require.Contains(t, output, "Usage:")
			},
		},
		{
			name:       "Nothing to do triggers clean exit with usage",
			args:       []string{},
			expectExit: true,
			checkOutput: func(t *testing.T, output string) {
				require.Contains(t, output, "SHEET_PATH")
			},
		},
		{name: "Invalid log level", args: []string{"--log-level=foo", "/p"}, expectErr: "invalid log-level"},
		{name: "Invalid log format", args: []string{"--log-format=yaml", "/p"}, expectErr: "invalid log-format"},
		{name: "Too many columns", args: []string{"--columns=30", "/p"}, expectErr: "columns must be between"},
		{name: "Negative publish timeout", args: []string{"--publish-timeout=-1s", "/p"}, expectErr: "publish timeout must not be negative"},
		{name: "Unknown flag", args: []string{"--bogus"}, expectErr: "flag provided but not defined"},
		{name: "Missing settings file", args: []string{"-config", "/nope.toml", "/p"}, expectErr: "parse settings"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			out := &bytes.Buffer{}

			// --- Act ---
			cfg, shouldExit, err := Parse(tc.args, out)

			// --- Assert ---
			if tc.expectErr != "" {
				require.Error(t, err)
				var exitErr *ExitError
				require.True(t, errors.As(err, &exitErr), "expected an ExitError")
				require.Equal(t, 2, exitErr.Code)
				require.Contains(t, exitErr.Message, tc.expectErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expectExit, shouldExit)

			if tc.checkOutput != nil {
				tc.checkOutput(t, out.String())
			}
			if tc.expectedConfig != nil {
				if diff := cmp.Diff(tc.expectedConfig, cfg); diff != "" {
					t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}
