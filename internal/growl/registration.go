package growl

import "bytes"

// NotificationType is one entry in an application's notification catalog.
// Enabled marks the entry as on by default in the daemon's preferences.
type NotificationType struct {
	Name    string
	Enabled bool
}

// Registration announces an application and the notification types it may
// emit. Catalog order is the wire order and is preserved verbatim.
//
// Wire layout, all integers big-endian:
//
//	version(1) type(1) appNameLen(2) typeCount(1) defaultCount(1)
//	appName
//	{ nameLen(2) name } per catalog entry, in order
//	{ index(1) } per default-enabled entry, in catalog order
//	md5(16)
type Registration struct {
	Application string
	Types       []NotificationType
	Password    string
}

// MarshalBinary encodes the registration packet. It fails with an
// *EncodingError when the application name or a notification name exceeds
// 65535 bytes, or when the catalog holds more than 255 entries.
func (r Registration) MarshalBinary() ([]byte, error) {
	if err := checkText("application name", r.Application); err != nil {
		return nil, err
	}
	if len(r.Types) > maxCatalog {
		return nil, &EncodingError{Field: "notification catalog", Size: len(r.Types), Limit: maxCatalog}
	}

	var defaults []uint8
	for i, t := range r.Types {
		if err := checkText("notification name", t.Name); err != nil {
			return nil, err
		}
		if t.Enabled {
			defaults = append(defaults, uint8(i))
		}
	}

	var buf bytes.Buffer
	buf.WriteByte(ProtocolVersion)
	buf.WriteByte(TypeRegistration)
	putUint16(&buf, uint16(len(r.Application)))
	buf.WriteByte(uint8(len(r.Types)))
	buf.WriteByte(uint8(len(defaults)))
	buf.WriteString(r.Application)
	for _, t := range r.Types {
		putUint16(&buf, uint16(len(t.Name)))
		buf.WriteString(t.Name)
	}
	buf.Write(defaults)

	return seal(buf.Bytes(), r.Password), nil
}
