// Package runner executes the wrapped command and reports how it ended.
//
// The child runs to completion synchronously. In pass-through mode its
// stdout and stderr are wired straight to the parent's, so output is drained
// as it is produced. In quiet mode the combined output is captured instead,
// for callers that only want it on failure. A command that starts but exits
// non-zero is a normal outcome, not a Go error; only failure to start at all
// is an error.
package runner

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Shell-convention exit codes for commands that never ran.
const (
	// ExitNotFound is reported when the command binary cannot be found.
	ExitNotFound = 127
	// ExitNotRunnable is reported when the command exists but cannot start.
	ExitNotRunnable = 126
)

// StartError means the command could not be started at all. No notification
// should be attempted for it.
type StartError struct {
	Name string
	Err  error
}

func (e *StartError) Error() string {
	return fmt.Sprintf("cannot run %q: %v", e.Name, e.Err)
}

func (e *StartError) Unwrap() error { return e.Err }

// ExitCode maps the start failure onto the shell convention: 127 for a
// missing binary, 126 otherwise.
func (e *StartError) ExitCode() int {
	if errors.Is(e.Err, exec.ErrNotFound) || errors.Is(e.Err, os.ErrNotExist) {
		return ExitNotFound
	}
	return ExitNotRunnable
}

// Result describes a command that ran to completion.
type Result struct {
	// ExitCode is the command's exit status; zero means success.
	ExitCode int
	// Output holds the combined stdout/stderr when captured in quiet mode,
	// nil in pass-through mode.
	Output []byte
}

// Runner runs one command synchronously. The zero value streams output to
// the process's own stdout/stderr.
type Runner struct {
	// Quiet captures combined output instead of streaming it.
	Quiet bool

	// Stdout and Stderr receive the child's output in pass-through mode.
	// They default to os.Stdout and os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes argv and waits for it to terminate. It returns a *StartError
// when the command cannot be started; a non-zero exit is reported through
// Result.ExitCode with a nil error.
func (r *Runner) Run(argv []string) (Result, error) {
	if len(argv) == 0 {
		return Result{}, &StartError{Name: "", Err: errors.New("empty command")}
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Env = os.Environ()
	cmd.Stdin = os.Stdin

	var captured bytes.Buffer
	if r.Quiet {
		cmd.Stdout = &captured
		cmd.Stderr = &captured
	} else {
		cmd.Stdout = r.stdout()
		cmd.Stderr = r.stderr()
	}

	err := cmd.Run()

	res := Result{}
	if r.Quiet {
		res.Output = captured.Bytes()
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return res, nil
	case errors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	default:
		return Result{}, &StartError{Name: argv[0], Err: err}
	}
}

func (r *Runner) stdout() io.Writer {
	if r.Stdout != nil {
		return r.Stdout
	}
	return os.Stdout
}

func (r *Runner) stderr() io.Writer {
	if r.Stderr != nil {
		return r.Stderr
	}
	return os.Stderr
}
