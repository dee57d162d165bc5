// Package notify ties the packet encoders to the transport: one registration
// and one notification per run, registration always first.
//
// No registration state is cached between runs; the daemon tolerates
// re-registration, so every invocation announces the application before
// delivering its message. Delivery failures are returned for reporting but
// are expected to be non-fatal to the caller, since the wrapped command has
// already finished by the time anything is sent.
package notify

import (
	"fmt"

	"github.com/ariel-frischer/growlme/internal/growl"
	"github.com/ariel-frischer/growlme/internal/transport"
)

// Application is the identity growlme announces to the daemon.
const Application = "growlme"

// TypeCommandFinished is the single notification type growlme registers,
// enabled by default.
const TypeCommandFinished = "Command finished"

// defaultPriority is non-zero so the daemon treats the message as worth
// showing even under conservative display settings.
const defaultPriority = 1

// Notifier sends command-outcome notifications through a transport.
type Notifier struct {
	sender   transport.Sender
	password string
}

// New returns a Notifier delivering through sender, authenticating with
// password when it is non-empty.
func New(sender transport.Sender, password string) *Notifier {
	return &Notifier{sender: sender, password: password}
}

// Notify announces the application and delivers one notification with the
// given title and message. Encoding errors and transport errors are both
// returned for reporting; the caller decides whether they are fatal.
func (n *Notifier) Notify(title, message string, sticky bool) error {
	reg := growl.Registration{
		Application: Application,
		Types:       []growl.NotificationType{{Name: TypeCommandFinished, Enabled: true}},
		Password:    n.password,
	}
	regPkt, err := reg.MarshalBinary()
	if err != nil {
		return fmt.Errorf("encode registration: %w", err)
	}

	note := growl.Notification{
		Application: Application,
		Name:        TypeCommandFinished,
		Title:       title,
		Description: message,
		Priority:    defaultPriority,
		Sticky:      sticky,
		Password:    n.password,
	}
	notePkt, err := note.MarshalBinary()
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}

	if err := n.sender.Send(regPkt); err != nil {
		return fmt.Errorf("send registration: %w", err)
	}
	if err := n.sender.Send(notePkt); err != nil {
		return fmt.Errorf("send notification: %w", err)
	}
	return nil
}
