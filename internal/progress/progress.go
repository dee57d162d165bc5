// Package progress shows a spinner while the wrapped command runs in quiet
// mode. On a non-interactive terminal it degrades to a single printed line.
package progress

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"golang.org/x/term"
)

// Indicator is a running progress display. Stop must be called before
// printing anything else to stderr.
type Indicator struct {
	spinner *spinner.Spinner
}

// Start begins showing progress for the given command line. On a TTY this is
// an animated spinner on stderr; otherwise a one-line message.
func Start(command string) *Indicator {
	msg := fmt.Sprintf("running %s", command)

	if !Interactive() {
		fmt.Fprintln(os.Stderr, msg)
		return &Indicator{}
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Writer = os.Stderr // keep stdout clean for the command's own output
	s.Suffix = " " + msg
	s.Start()
	return &Indicator{spinner: s}
}

// Stop halts the spinner, erasing it from the terminal.
func (i *Indicator) Stop() {
	if i.spinner != nil {
		i.spinner.Stop()
		i.spinner = nil
	}
}

// Interactive reports whether the session has a terminal to animate on.
// Stderr is checked first since that is where the spinner draws.
func Interactive() bool {
	if term.IsTerminal(int(os.Stderr.Fd())) {
		return true
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
