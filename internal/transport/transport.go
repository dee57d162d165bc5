// Package transport delivers encoded packets to the Growl daemon.
//
// Delivery is one-way UDP: each packet is a single best-effort datagram with
// no acknowledgment, retry, or timeout. A noop sender stands in when
// delivery is disabled, so callers never branch on configuration.
package transport

import (
	"fmt"
	"net"
	"strconv"

	"github.com/ariel-frischer/growlme/internal/growl"
)

// Sender transmits one encoded packet per call.
type Sender interface {
	Send(packet []byte) error
}

// udpSender sends each packet as one datagram to a fixed host.
type udpSender struct {
	addr string
}

// NewUDPSender returns a Sender that delivers packets to the Growl daemon on
// host at the fixed protocol port.
func NewUDPSender(host string) Sender {
	return &udpSender{addr: net.JoinHostPort(host, strconv.Itoa(growl.Port))}
}

func (s *udpSender) Send(packet []byte) error {
	conn, err := net.Dial("udp", s.addr)
	if err != nil {
		return fmt.Errorf("transport: dial %s: %w", s.addr, err)
	}
	defer conn.Close()

	if _, err := conn.Write(packet); err != nil {
		return fmt.Errorf("transport: send to %s: %w", s.addr, err)
	}
	return nil
}

// noopSender discards packets (used with --no-growl).
type noopSender struct{}

// NewNoopSender returns a Sender that silently discards every packet.
func NewNoopSender() Sender { return noopSender{} }

func (noopSender) Send([]byte) error { return nil }
