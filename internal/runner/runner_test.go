package runner

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSuccess(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	r := &Runner{Stdout: &out, Stderr: &out}
	res, err := r.Run([]string{"sh", "-c", "echo hello"})
	require.NoError(t, err)
	assert.Equal(t, 0, res.ExitCode)
	assert.Nil(t, res.Output, "pass-through mode does not capture")
	assert.Equal(t, "hello\n", out.String())
}

func TestRunNonZeroExit(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	r := &Runner{Stdout: &out, Stderr: &out}
	res, err := r.Run([]string{"sh", "-c", "exit 3"})
	require.NoError(t, err, "a command that ran and failed is not a start error")
	assert.Equal(t, 3, res.ExitCode)
}

func TestRunQuietCapturesCombinedOutput(t *testing.T) {
	t.Parallel()

	r := &Runner{Quiet: true}
	res, err := r.Run([]string{"sh", "-c", "echo out; echo err 1>&2; exit 1"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.ExitCode)
	assert.Contains(t, string(res.Output), "out")
	assert.Contains(t, string(res.Output), "err")
}

func TestRunCommandNotFound(t *testing.T) {
	t.Parallel()

	r := &Runner{}
	_, err := r.Run([]string{"definitely-not-a-real-binary-42"})
	var startErr *StartError
	require.ErrorAs(t, err, &startErr)
	assert.Equal(t, ExitNotFound, startErr.ExitCode())
}

func TestRunEmptyArgv(t *testing.T) {
	t.Parallel()

	r := &Runner{}
	_, err := r.Run(nil)
	var startErr *StartError
	require.ErrorAs(t, err, &startErr)
	assert.Equal(t, ExitNotRunnable, startErr.ExitCode())
}
