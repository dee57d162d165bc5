// Package growl encodes the two packet types of the legacy Growl UDP
// protocol (version 1): application registration and notification delivery.
//
// The wire format is an external compatibility contract with the receiving
// daemon. All multi-byte integers are big-endian, every length field counts
// UTF-8 bytes (never characters), and each packet carries a trailing MD5
// digest computed over the packet body followed by an optional shared
// password. MD5 here is a format requirement, not a security choice; the
// daemon recomputes the same digest to authenticate the sender.
//
// Packets are pure values: building one has no side effects and encoding the
// same inputs always yields identical bytes. Transmission is someone else's
// job (see internal/transport).
package growl
