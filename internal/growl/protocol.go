package growl

import (
	"bytes"
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"io"
)

// Fixed wire constants shared with the receiving daemon. Changing any of
// these breaks interoperability.
const (
	// ProtocolVersion is the only protocol revision this package speaks.
	ProtocolVersion uint8 = 1

	// TypeRegistration identifies an application announcement packet.
	TypeRegistration uint8 = 0
	// TypeNotification identifies a displayable notification packet.
	TypeNotification uint8 = 1

	// Port is the UDP port the daemon listens on.
	Port = 9887
)

// Field capacity limits imposed by the wire format. Exceeding them is an
// error at encode time, never a silent truncation.
const (
	maxTextBytes = 0xFFFF // 2-byte length fields
	maxCatalog   = 0xFF   // 1-byte notification/default counts
)

// EncodingError reports an input that cannot be represented in the wire
// format's fixed-width length and count fields.
type EncodingError struct {
	Field string
	Size  int
	Limit int
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("growl: %s too large for wire format: %d exceeds %d", e.Field, e.Size, e.Limit)
}

// checkText verifies that a text field's UTF-8 byte length fits a 2-byte
// length field.
func checkText(field, s string) error {
	if len(s) > maxTextBytes {
		return &EncodingError{Field: field, Size: len(s), Limit: maxTextBytes}
	}
	return nil
}

// flagWord packs priority and stickiness into the notification flags field:
// a 3-bit priority magnitude shifted left one, bit 0x08 for negative
// priority, and bit 0x0100 for sticky.
func flagWord(priority int, sticky bool) uint16 {
	mag := priority
	if mag < 0 {
		mag = -mag
	}
	flags := uint16(mag&0x07) << 1
	if priority < 0 {
		flags |= 0x08
	}
	if sticky {
		flags |= 0x0100
	}
	return flags
}

// putUint16 writes v big-endian, the byte order of every multi-byte field.
func putUint16(buf *bytes.Buffer, v uint16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	buf.Write(b[:])
}

// seal appends the authenticating digest to a finished packet body: MD5 over
// the body bytes, then over the password if one is set. The password itself
// is never part of the packet.
func seal(body []byte, password string) []byte {
	h := md5.New()
	h.Write(body)
	if password != "" {
		io.WriteString(h, password)
	}
	return h.Sum(body)
}
