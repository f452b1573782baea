package rdm

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/jarule/responder/uid"
)

// ErrFraming is returned by Decode when a buffer is not a well-formed RDM
// frame: bad start codes, an out-of-range length, or a checksum mismatch.
var ErrFraming = errors.New("rdm: framing error")

// Header is the fixed 24-byte RDM frame header (E1.20 §6.2.2), decoded
// into host fields. MessageLength and the trailing checksum are
// recomputed by Encode rather than trusted from a caller-built Header.
type Header struct {
	DestUID         uid.UID
	SrcUID          uid.UID
	TransactionNum  uint8
	PortID          uint8 // ResponseType on a response.
	MessageCount    uint8
	SubDevice       uint16
	CommandClass    CommandClass
	PID             PID
	ParamDataLength uint8
}

// Encode stamps header and payload into a complete RDM frame: start
// codes, message length, the header fields, payload, and the trailing
// 16-bit additive checksum. The returned slice length is
// HeaderSize+len(payload)+2.
func Encode(h Header, payload []byte) ([]byte, error) {
	if len(payload) > MaxParamDataSize {
		return nil, fmt.Errorf("rdm: payload too large: %d bytes", len(payload))
	}
	h.ParamDataLength = uint8(len(payload))
	total := HeaderSize + len(payload) + 2
	buf := make([]byte, total)

	buf[0] = StartCode
	buf[1] = SubStartCode
	buf[2] = uint8(total - 2)
	uid.Encode(buf[3:9], h.DestUID)
	uid.Encode(buf[9:15], h.SrcUID)
	buf[15] = h.TransactionNum
	buf[16] = h.PortID
	buf[17] = h.MessageCount
	binary.BigEndian.PutUint16(buf[18:20], h.SubDevice)
	buf[20] = uint8(h.CommandClass)
	binary.BigEndian.PutUint16(buf[21:23], uint16(h.PID))
	buf[23] = h.ParamDataLength
	copy(buf[HeaderSize:HeaderSize+len(payload)], payload)

	checksum := additiveChecksum(buf[:total-2])
	binary.BigEndian.PutUint16(buf[total-2:total], checksum)
	return buf, nil
}

// Decode parses a complete RDM frame, verifying start codes, declared
// length, and checksum. It returns ErrFraming (wrapped with detail) for
// any malformed input; per E1.20, frame-level errors are silently
// dropped by callers, never NACKed.
func Decode(buf []byte) (Header, []byte, error) {
	if len(buf) < MinFrameSize {
		return Header{}, nil, fmt.Errorf("%w: short frame: %d bytes", ErrFraming, len(buf))
	}
	if buf[0] != StartCode {
		return Header{}, nil, fmt.Errorf("%w: bad start code %#x", ErrFraming, buf[0])
	}
	if buf[1] != SubStartCode {
		return Header{}, nil, fmt.Errorf("%w: bad sub-start code %#x", ErrFraming, buf[1])
	}
	length := int(buf[2])
	if length < HeaderSize || length > 255 || length > len(buf) {
		return Header{}, nil, fmt.Errorf("%w: bad message length %d", ErrFraming, length)
	}
	if length+2 > len(buf) {
		return Header{}, nil, fmt.Errorf("%w: truncated frame", ErrFraming)
	}

	want := additiveChecksum(buf[:length])
	got := binary.BigEndian.Uint16(buf[length : length+2])
	if got != want {
		return Header{}, nil, fmt.Errorf("%w: checksum mismatch: got %04x want %04x", ErrFraming, got, want)
	}

	destUID, err := uid.Decode(buf[3:9])
	if err != nil {
		return Header{}, nil, fmt.Errorf("%w: %v", ErrFraming, err)
	}
	srcUID, err := uid.Decode(buf[9:15])
	if err != nil {
		return Header{}, nil, fmt.Errorf("%w: %v", ErrFraming, err)
	}

	pdl := length - HeaderSize
	h := Header{
		DestUID:         destUID,
		SrcUID:          srcUID,
		TransactionNum:  buf[15],
		PortID:          buf[16],
		MessageCount:    buf[17],
		SubDevice:       binary.BigEndian.Uint16(buf[18:20]),
		CommandClass:    CommandClass(buf[20]),
		PID:             PID(binary.BigEndian.Uint16(buf[21:23])),
		ParamDataLength: uint8(pdl),
	}
	if int(h.ParamDataLength) != pdl {
		return Header{}, nil, fmt.Errorf("%w: pdl mismatch", ErrFraming)
	}
	return h, buf[HeaderSize:length], nil
}

func additiveChecksum(buf []byte) uint16 {
	var sum uint16
	for _, b := range buf {
		sum += uint16(b)
	}
	return sum
}

// PushUint16 appends v to dst in big-endian order, returning the
// extended slice. Mirrors the firmware's PushUInt16 helper.
func PushUint16(dst []byte, v uint16) []byte {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	return append(dst, b[:]...)
}

// PushUint32 appends v to dst in big-endian order.
func PushUint32(dst []byte, v uint32) []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return append(dst, b[:]...)
}

// ExtractUint16 reads a big-endian uint16 from the start of src.
func ExtractUint16(src []byte) uint16 {
	return binary.BigEndian.Uint16(src)
}

// ExtractUint32 reads a big-endian uint32 from the start of src.
func ExtractUint32(src []byte) uint32 {
	return binary.BigEndian.Uint32(src)
}

// PushString appends s to dst, truncated to at most maxLen bytes, with no
// NUL terminator: RDM string fields are fixed-width and not
// NUL-terminated on the wire.
func PushString(dst []byte, s string, maxLen int) []byte {
	if len(s) > maxLen {
		s = s[:maxLen]
	}
	return append(dst, s...)
}
