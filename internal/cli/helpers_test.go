package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rshade/esgfocus/internal/cli"
	"github.com/rshade/esgfocus/internal/config"
)

const sampleInput = `company: Acme Seating
period: FY26
topics:
  - topic: Climate Action
    risks: Carbon pricing
    kpis: Scope 1 intensity, Renewable share
generate_narratives: true
scope1:
  Diesel (litres): 100
scope2_kwh: 100000
scope3:
  - category: Waste Generated (t)
    quantity: 10
  - category: Business Travel (passenger-km)
    quantity: 50000
    factor: 0.0002
social:
  employees: 420
governance:
  board_size: 9
`

// setupCLITest isolates the config directory and resets global state.
func setupCLITest(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("ESGFOCUS_HOME", home)
	t.Setenv("ESGFOCUS_LOG_LEVEL", "error")
	t.Setenv("ESGFOCUS_LOG_FORMAT", "")
	t.Setenv("ESGFOCUS_TRACE_ID", "")
	t.Setenv("NO_COLOR", "1")
	config.ResetGlobalConfigForTest()
	t.Cleanup(config.ResetGlobalConfigForTest)
	return home
}

// runCLI executes the root command with args and returns combined output.
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetIn(bytes.NewBufferString(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func writeFileMkdir(t *testing.T, dir, name, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o700))
	return writeFile(t, dir, name, content)
}
