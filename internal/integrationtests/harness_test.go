package integrationtests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/gridcalc/internal/app"
	"github.com/vk/gridcalc/internal/cli"
	"github.com/vk/gridcalc/internal/hcl"
	"github.com/vk/gridcalc/internal/testutil"
)

// harnessResult holds the outcomes of an end-to-end run.
type harnessResult struct {
	Output    string
	LogOutput string
	Err       error
	App       *app.App
}

// runSheet writes files into a temporary directory, parses args as the
// command line with that directory appended as the sheet path, and runs
// the application.
func runSheet(t *testing.T, files map[string]string, args ...string) *harnessResult {
	t.Helper()

	dir := testutil.WriteFiles(t, files)
	args = append(args, "--log-level=debug", dir)

	out, logs := &testutil.SafeBuffer{}, &testutil.SafeBuffer{}
	cfg, shouldExit, err := cli.Parse(args, out)
	require.NoError(t, err)
	require.False(t, shouldExit)

	a, err := app.NewApp(out, logs, cfg, hcl.NewLoader(), hcl.NewExporter())
	if err != nil {
		return &harnessResult{Err: err, LogOutput: logs.String()}
	}
	err = a.Run(context.Background())
	return &harnessResult{Output: out.String(), LogOutput: logs.String(), Err: err, App: a}
}
