package app

import (
	"os"
	"testing"

	"github.com/vk/gridcalc/internal/config"
	"github.com/vk/gridcalc/internal/testutil"
)

// SetupAppTest creates an App with debug logging and returns it together
// with the buffers capturing its output and its logs.
func SetupAppTest(t *testing.T, cfg *Config, loader config.Loader, exporter config.Exporter) (*App, *testutil.SafeBuffer, *testutil.SafeBuffer) {
	t.Helper()

	out, logs := &testutil.SafeBuffer{}, &testutil.SafeBuffer{}
	cfg.LogLevel = "debug"
	testApp, err := NewApp(out, logs, cfg, loader, exporter)
	if err != nil {
		t.Fatalf("NewApp() failed: %v", err)
	}

	t.Cleanup(func() {
		if os.Getenv("GRIDCALC_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})

	return testApp, out, logs
}
