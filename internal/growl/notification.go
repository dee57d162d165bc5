package growl

import "bytes"

// Notification is a single displayable message attributed to a registered
// application/notification-name pair. Priority conventionally ranges -2..2;
// only its sign and low three magnitude bits reach the wire.
//
// Wire layout, all integers big-endian:
//
//	version(1) type(1) flags(2)
//	nameLen(2) titleLen(2) descriptionLen(2) appNameLen(2)
//	name title description appName
//	md5(16)
type Notification struct {
	Application string
	Name        string
	Title       string
	Description string
	Priority    int
	Sticky      bool
	Password    string
}

// MarshalBinary encodes the notification packet. It fails with an
// *EncodingError when any text field exceeds 65535 bytes.
func (n Notification) MarshalBinary() ([]byte, error) {
	fields := []struct {
		label, value string
	}{
		{"notification name", n.Name},
		{"title", n.Title},
		{"description", n.Description},
		{"application name", n.Application},
	}
	for _, f := range fields {
		if err := checkText(f.label, f.value); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	buf.WriteByte(ProtocolVersion)
	buf.WriteByte(TypeNotification)
	putUint16(&buf, flagWord(n.Priority, n.Sticky))
	for _, f := range fields {
		putUint16(&buf, uint16(len(f.value)))
	}
	for _, f := range fields {
		buf.WriteString(f.value)
	}

	return seal(buf.Bytes(), n.Password), nil
}
