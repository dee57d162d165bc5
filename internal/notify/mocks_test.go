// Package notify_test mock transport for notifier testing.
// Related: internal/transport/transport.go
package notify

import "sync"

// MockSender records every packet handed to it and can be configured to fail
// on a given call.
type MockSender struct {
	mu sync.Mutex

	// FailOn makes the nth Send call (1-based) return Err.
	FailOn int
	Err    error

	Packets [][]byte
}

func NewMockSender() *MockSender {
	return &MockSender{}
}

func (m *MockSender) Send(packet []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p := make([]byte, len(packet))
	copy(p, packet)
	m.Packets = append(m.Packets, p)

	if m.FailOn != 0 && len(m.Packets) == m.FailOn {
		return m.Err
	}
	return nil
}
