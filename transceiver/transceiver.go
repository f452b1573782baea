// Package transceiver implements the half-duplex RS-485 serial
// collaborator that assembles RDM frames off the wire and transmits
// replies: the "out of scope" hardware layer of spec.md §6, here given
// a real implementation so the responder core has something to run
// against outside of unit tests.
package transceiver

import (
	"bufio"
	"fmt"
	"io"
	"runtime"
	"time"
)

// Break and mark-after-break timing bounds from ANSI E1.20 §6.2.1. On
// Linux, openPort returns a port that generates a real break condition
// via the TIOCSBRK/TIOCCBRK ioctls (see port_linux.go); elsewhere WriteReply falls
// back to waiting out the minimum spacing and lets the USB-serial
// adaptor's own framing stand in for the break.
const (
	MinBreak          = 176 * time.Microsecond
	MinMarkAfterBreak = 12 * time.Microsecond
	MaxMarkAfterBreak = 88 * time.Microsecond
	interFrameSpacing = MinBreak + MinMarkAfterBreak
)

// breakSender is implemented by ports that can toggle a real RS-485
// break condition (port_linux.go's termios-backed port).
type breakSender interface {
	sendBreak(d time.Duration) error
}

// Frame is a complete RDM frame read off the wire, or a DMX512 data
// packet destined for the main loop's DMX handling (start code 0x00).
type Frame struct {
	StartCode byte
	Data      []byte
}

// Transceiver reads complete frames from a half-duplex serial line and
// queues replies for transmission, respecting the minimum inter-frame
// spacing the standard requires.
type Transceiver struct {
	port       io.ReadWriteCloser
	reader     *bufio.Reader
	lastTX     time.Time
}

// Open opens dev (or tries a platform-appropriate default if dev is
// empty) at RDM's required 250kbaud/8N2 framing.
func Open(dev string) (*Transceiver, error) {
	const baudRate = 250000

	var devices []string
	if dev != "" {
		devices = append(devices, dev)
	} else {
		switch runtime.GOOS {
		case "windows":
			devices = append(devices, "COM3")
		case "linux":
			devices = append(devices, "/dev/ttyUSB0", "/dev/ttyUSB1")
		case "darwin":
			devices = append(devices, "/dev/tty.usbserial-0")
		}
	}
	if len(devices) == 0 {
		return nil, fmt.Errorf("transceiver: no device specified")
	}

	var firstErr error
	for _, d := range devices {
		port, err := openPort(d, baudRate)
		if err == nil {
			return New(port), nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return nil, firstErr
}

// New wraps an already-open serial port (or any ReadWriteCloser, for
// tests and the Simulator) as a Transceiver.
func New(port io.ReadWriteCloser) *Transceiver {
	return &Transceiver{port: port, reader: bufio.NewReaderSize(port, 512)}
}

// ReadFrame blocks until a complete frame arrives: a start code byte
// followed by the RDM message-length-prefixed body, or a raw DMX512
// data packet (start code 0x00, read until the caller-provided buffer
// is full or the line goes idle — approximated here as a 513-byte
// read).
func (t *Transceiver) ReadFrame() (Frame, error) {
	startCode, err := t.reader.ReadByte()
	if err != nil {
		return Frame{}, err
	}

	const rdmStartCode = 0xcc
	if startCode != rdmStartCode {
		data := make([]byte, 0, 512)
		for len(data) < 512 {
			b, err := t.reader.ReadByte()
			if err != nil {
				break
			}
			data = append(data, b)
		}
		return Frame{StartCode: startCode, Data: data}, nil
	}

	header := make([]byte, 2)
	if _, err := io.ReadFull(t.reader, header); err != nil {
		return Frame{}, err
	}
	length := int(header[1])
	if length < 24 {
		return Frame{}, fmt.Errorf("transceiver: bad message length %d", length)
	}
	// length counts the start code, sub-start code and length byte
	// already read; the checksum adds 2 more.
	rest := make([]byte, length+2-3)
	if _, err := io.ReadFull(t.reader, rest); err != nil {
		return Frame{}, err
	}

	frame := make([]byte, 0, 1+2+len(rest))
	frame = append(frame, startCode)
	frame = append(frame, header...)
	frame = append(frame, rest...)
	return Frame{StartCode: startCode, Data: frame}, nil
}

// WriteReply transmits a fully framed response. If the underlying port
// can generate a real break condition, it does so and waits out the
// minimum mark-after-break; otherwise it waits out the minimum
// inter-frame spacing since the last transmission.
func (t *Transceiver) WriteReply(frame []byte) error {
	if b, ok := t.port.(breakSender); ok {
		if err := b.sendBreak(MinBreak); err != nil {
			return fmt.Errorf("transceiver: sending break: %w", err)
		}
		time.Sleep(MinMarkAfterBreak)
	} else if wait := interFrameSpacing - time.Since(t.lastTX); wait > 0 {
		time.Sleep(wait)
	}
	_, err := t.port.Write(frame)
	t.lastTX = time.Now()
	return err
}

// Close releases the underlying serial port.
func (t *Transceiver) Close() error {
	return t.port.Close()
}
