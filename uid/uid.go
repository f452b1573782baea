// Package uid implements RDM UIDs: the 48-bit manufacturer/device
// identifiers used to address responders, plus the binary-search
// Discovery Unique Branch (DUB) response encoding from ANSI E1.20 §6.3.
package uid

import (
	"encoding/binary"
	"fmt"
)

// Size is the length of a UID on the wire: a 2-byte manufacturer ID
// followed by a 4-byte device ID.
const Size = 6

// UID is a 48-bit RDM responder identifier.
type UID struct {
	Manufacturer uint16
	Device       uint32
}

// Broadcast addresses every responder regardless of manufacturer.
var Broadcast = UID{Manufacturer: 0xffff, Device: 0xffffffff}

// ManufacturerBroadcast addresses every responder from the given
// manufacturer.
func ManufacturerBroadcast(manufacturer uint16) UID {
	return UID{Manufacturer: manufacturer, Device: 0xffffffff}
}

// IsBroadcast reports whether u is the all-manufacturer broadcast UID.
func (u UID) IsBroadcast() bool {
	return u == Broadcast
}

// IsManufacturerBroadcast reports whether u broadcasts to every device of
// some manufacturer.
func (u UID) IsManufacturerBroadcast() bool {
	return u.Device == 0xffffffff && u.Manufacturer != 0xffff
}

// Less reports whether u sorts strictly before v, treating a UID as a
// 48-bit unsigned integer. Used by DISC_UNIQUE_BRANCH range tests.
func (u UID) Less(v UID) bool {
	if u.Manufacturer != v.Manufacturer {
		return u.Manufacturer < v.Manufacturer
	}
	return u.Device < v.Device
}

// Within reports whether u falls in the inclusive range [lower, upper],
// as used by DISC_UNIQUE_BRANCH.
func (u UID) Within(lower, upper UID) bool {
	return !u.Less(lower) && !upper.Less(u)
}

// RequiresAction reports whether a responder with UID ours must act on a
// frame addressed to dest: an exact match, the global broadcast, or a
// manufacturer broadcast matching ours.
func RequiresAction(ours, dest UID) bool {
	if ours == dest {
		return true
	}
	if dest.IsBroadcast() {
		return true
	}
	return dest.IsManufacturerBroadcast() && dest.Manufacturer == ours.Manufacturer
}

// Encode writes u to dst in the 6-byte big-endian wire format. dst must
// be at least Size bytes long.
func Encode(dst []byte, u UID) {
	binary.BigEndian.PutUint16(dst[0:2], u.Manufacturer)
	binary.BigEndian.PutUint32(dst[2:6], u.Device)
}

// Decode reads a UID from the first Size bytes of src.
func Decode(src []byte) (UID, error) {
	if len(src) < Size {
		return UID{}, fmt.Errorf("uid: short buffer: %d bytes", len(src))
	}
	return UID{
		Manufacturer: binary.BigEndian.Uint16(src[0:2]),
		Device:       binary.BigEndian.Uint32(src[2:6]),
	}, nil
}

// String renders u as colon-separated hex, e.g. "7a70:12345678".
func (u UID) String() string {
	return fmt.Sprintf("%04x:%08x", u.Manufacturer, u.Device)
}

// DUBResponseSize is the length in bytes of an encoded DUB response.
const DUBResponseSize = 7 + 1 + 12 + 4

// EncodeDUBResponse writes a header-less Discovery Unique Branch response
// for u into dst, which must be at least DUBResponseSize bytes. The format
// is 7 preamble bytes of 0xFE, one 0xAA separator, then the UID and its
// 16-bit additive checksum, each byte doubled into two mask-encoded bytes:
// the even one OR'd with 0xAA, the odd one OR'd with 0x55. Per E1.20
// §7.6.2, the checksum sums the 12 masked EUID bytes as they appear on
// the wire, not the 6 raw UID bytes.
func EncodeDUBResponse(dst []byte, u UID) {
	for i := 0; i < 7; i++ {
		dst[i] = 0xfe
	}
	dst[7] = 0xaa

	out := dst[8:]
	var raw [Size]byte
	Encode(raw[:], u)
	encodeMasked(out[0:12], raw[:])

	var checksum uint16
	for _, b := range out[0:12] {
		checksum += uint16(b)
	}
	var checksumBytes [2]byte
	binary.BigEndian.PutUint16(checksumBytes[:], checksum)
	encodeMasked(out[12:16], checksumBytes[:])
}

// encodeMasked doubles each byte of src into dst as {b|0xAA, b|0x55}.
func encodeMasked(dst, src []byte) {
	for i, b := range src {
		dst[2*i] = b | 0xaa
		dst[2*i+1] = b | 0x55
	}
}

// DecodeDUBResponse is the inverse of EncodeDUBResponse, used by tests and
// by any future controller-side tooling. It tolerates a variable number of
// leading 0xFE preamble bytes followed by the 0xAA separator.
func DecodeDUBResponse(src []byte) (UID, error) {
	i := 0
	for i < len(src) && src[i] == 0xfe {
		i++
	}
	if i == 0 || i >= len(src) || src[i] != 0xaa {
		return UID{}, fmt.Errorf("uid: missing DUB separator")
	}
	i++
	if len(src)-i < 16 {
		return UID{}, fmt.Errorf("uid: short DUB response")
	}
	var raw [Size]byte
	if err := decodeMasked(raw[:], src[i:i+12]); err != nil {
		return UID{}, err
	}
	var checksumBytes [2]byte
	if err := decodeMasked(checksumBytes[:], src[i+12:i+16]); err != nil {
		return UID{}, err
	}
	var want uint16
	for _, b := range src[i : i+12] {
		want += uint16(b)
	}
	if got := binary.BigEndian.Uint16(checksumBytes[:]); got != want {
		return UID{}, fmt.Errorf("uid: DUB checksum mismatch: got %04x want %04x", got, want)
	}
	return Decode(raw[:])
}

func decodeMasked(dst, src []byte) error {
	for i := 0; i < len(dst); i++ {
		even := src[2*i]
		odd := src[2*i+1]
		if even&0xaa != 0xaa || odd&0x55 != 0x55 {
			return fmt.Errorf("uid: malformed DUB mask byte %d", i)
		}
		// even carries the real bits at the 0x55 positions, odd carries
		// them at the 0xAA positions.
		dst[i] = (even & 0x55) | (odd & 0xaa)
	}
	return nil
}
