//go:build !linux

package transceiver

import (
	"io"

	"github.com/tarm/serial"
)

// openPort on non-Linux platforms goes through tarm/serial, the same
// library the teacher's device driver used. These platforms don't get
// a real break condition (see WriteReply's fallback path); tarm/serial's
// public API has no break control.
func openPort(dev string, baud uint32) (io.ReadWriteCloser, error) {
	cfg := &serial.Config{Name: dev, Baud: int(baud), Size: 8, StopBits: 2}
	return serial.OpenPort(cfg)
}
