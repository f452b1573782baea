package transceiver

import (
	"bytes"
	"testing"

	"github.com/jarule/responder/rdm"
	"github.com/jarule/responder/uid"
)

func TestReadFrameRDM(t *testing.T) {
	h := rdm.Header{
		DestUID:      uid.UID{Manufacturer: 0x7a70, Device: 1},
		SrcUID:       uid.UID{Manufacturer: 1},
		CommandClass: rdm.GetCommand,
		PID:          rdm.PIDDeviceInfo,
	}
	want, err := rdm.Encode(h, nil)
	if err != nil {
		t.Fatal(err)
	}

	sim := NewSimulator()
	sim.QueueFrame(want)
	tc := New(sim)

	frame, err := tc.ReadFrame()
	if err != nil {
		t.Fatal(err)
	}
	if frame.StartCode != rdm.StartCode {
		t.Errorf("start code = %#x, want %#x", frame.StartCode, rdm.StartCode)
	}
	if !bytes.Equal(frame.Data, want) {
		t.Errorf("frame = %x, want %x", frame.Data, want)
	}
}

func TestWriteReply(t *testing.T) {
	sim := NewSimulator()
	tc := New(sim)
	reply := []byte{1, 2, 3}
	if err := tc.WriteReply(reply); err != nil {
		t.Fatal(err)
	}
	written := sim.Written()
	if len(written) != 1 || !bytes.Equal(written[0], reply) {
		t.Fatalf("written = %v, want [%v]", written, reply)
	}
}
