package transceiver

import (
	"bytes"
	"io"
)

// Simulator is an in-memory io.ReadWriteCloser standing in for a real
// RS-485 line in tests: requests queued with QueueFrame are handed
// back byte-for-byte on Read, and every Write is captured for
// inspection via Written. Modeled on driver/mjolnir's request/response
// Simulator, simplified to a single in/out byte queue since there is
// no device-state machine to emulate here.
type Simulator struct {
	pending bytes.Buffer
	written [][]byte
	closed  bool
}

// NewSimulator returns an empty Simulator.
func NewSimulator() *Simulator {
	return &Simulator{}
}

// QueueFrame appends frame to the bytes the next Read calls will
// return, simulating an inbound RDM frame (or raw DMX packet) arriving
// on the wire.
func (s *Simulator) QueueFrame(frame []byte) {
	s.pending.Write(frame)
}

// Written returns every byte slice passed to Write so far, in order.
func (s *Simulator) Written() [][]byte {
	return s.written
}

func (s *Simulator) Read(p []byte) (int, error) {
	if s.pending.Len() == 0 {
		return 0, io.EOF
	}
	return s.pending.Read(p)
}

func (s *Simulator) Write(p []byte) (int, error) {
	cp := make([]byte, len(p))
	copy(cp, p)
	s.written = append(s.written, cp)
	return len(p), nil
}

func (s *Simulator) Close() error {
	s.closed = true
	return nil
}
