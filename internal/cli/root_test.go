// Package cli_test tests flag layering, exit-code propagation, and title
// derivation for the root command.
// Related: internal/cli/root.go
package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariel-frischer/growlme/internal/config"
)

// isolateEnv keeps real user config and password files out of CLI tests.
// NO t.Parallel() in tests using it because t.Setenv forbids it.
func isolateEnv(t *testing.T) {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, ".config"))
	t.Setenv("SSH_CLIENT", "")
	t.Setenv("SSH_CONNECTION", "")
	xdg.Reload()
	t.Cleanup(xdg.Reload)
}

// execute runs a fresh root command with the given argv.
func execute(args ...string) error {
	cmd := NewRootCmd()
	if args == nil {
		args = []string{} // nil would make cobra fall back to os.Args
	}
	cmd.SetArgs(args)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	return cmd.Execute()
}

func TestExitCodeRoundTrip(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, 3, ExitCode(NewExitError(3)))
	assert.Equal(t, ExitFailure, ExitCode(assert.AnError))
}

func TestExecuteSuccessfulCommand(t *testing.T) {
	isolateEnv(t)

	err := execute("-n", "-q", "--", "sh", "-c", "exit 0")
	require.NoError(t, err)
}

func TestExecutePropagatesChildExitCode(t *testing.T) {
	isolateEnv(t)

	err := execute("-n", "-q", "--", "sh", "-c", "exit 4")
	require.Error(t, err)
	assert.Equal(t, 4, ExitCode(err))
}

func TestExecuteCommandNotFound(t *testing.T) {
	isolateEnv(t)

	err := execute("-n", "--", "definitely-not-a-real-binary-42")
	require.Error(t, err)
	assert.Equal(t, 127, ExitCode(err))
}

func TestExecuteNoCommand(t *testing.T) {
	isolateEnv(t)

	err := execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, ExitCode(err))
}

func TestWrappedCommandFlagsNotParsed(t *testing.T) {
	isolateEnv(t)

	// -c belongs to the wrapped sh, not to growlme, because flag parsing
	// stops at the first positional argument.
	err := execute("-n", "-q", "sh", "-c", "exit 0")
	require.NoError(t, err)
}

func TestApplyFlagOverrides(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()
	require.NoError(t, cmd.Flags().Parse([]string{
		"-H", "deskside", "-m", "done", "--fail", "broke", "--sticky",
	}))

	cfg := &config.Config{
		Host:        "localhost",
		SuccessText: "Succeeded",
		FailText:    "FAILED",
	}
	applyFlagOverrides(cmd, cfg)
	assert.Equal(t, "deskside", cfg.Host)
	assert.Equal(t, "done", cfg.SuccessText)
	assert.Equal(t, "broke", cfg.FailText)
	assert.True(t, cfg.Sticky)
	assert.False(t, cfg.Quiet, "unset flags leave config untouched")
}

func TestDefaultTitle(t *testing.T) {
	t.Parallel()

	title := defaultTitle([]string{"make", "-j8"})
	hostname, err := os.Hostname()
	require.NoError(t, err)
	assert.Equal(t, hostname+": make -j8", title)
	assert.True(t, strings.HasSuffix(title, ": make -j8"))
}
