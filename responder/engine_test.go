package responder

import (
	"bytes"
	"testing"

	"github.com/jarule/responder/rdm"
	"github.com/jarule/responder/uid"
)

type fakeIndicator struct {
	identify, mute bool
	calls          int
}

func (f *fakeIndicator) Set(identify, mute bool) error {
	f.identify, f.mute = identify, mute
	f.calls++
	return nil
}

// fakeModel installs one root and a fixed number of sub-devices built
// from testDefinition, without any model-specific state.
type fakeModel struct {
	rootUID    uid.UID
	subCount   int
	lockedAll  bool
	deactivated bool
}

func (m *fakeModel) ID() uint16 { return 0xffff }

func (m *fakeModel) Activate(e *Engine) {
	root := NewResponder(testDefinition(), m.rootUID, rdm.SubDeviceRoot, false)
	subs := make([]*Responder, 0, m.subCount)
	for i := 1; i <= m.subCount; i++ {
		sd := NewResponder(testDefinition(), m.rootUID, uint16(i), true)
		subs = append(subs, sd)
	}
	e.SetResponders(root, subs)
}

func (m *fakeModel) Deactivate(e *Engine) { m.deactivated = true }
func (m *fakeModel) Locked(subDevice uint16) bool { return m.lockedAll }
func (m *fakeModel) Tasks(e *Engine) {}

func newTestEngine(t *testing.T, subCount int) (*Engine, uid.UID) {
	t.Helper()
	root := uid.UID{Manufacturer: 0x7a70, Device: 1}
	e := NewEngine(NewSystemClock(), nil)
	e.SetModel(&fakeModel{rootUID: root, subCount: subCount})
	return e, root
}

func TestEngineReceiveDropsMalformedFrame(t *testing.T) {
	e, _ := newTestEngine(t, 0)
	if got := e.Receive([]byte{0, 1, 2}); got != nil {
		t.Fatalf("got %v, want nil", got)
	}
}

func TestEngineReceiveDropsUIDMismatch(t *testing.T) {
	e, root := newTestEngine(t, 0)
	other := root
	other.Device++
	h := rdm.Header{DestUID: other, SrcUID: uid.UID{Manufacturer: 1, Device: 1}, CommandClass: rdm.GetCommand, PID: rdm.PIDDeviceInfo}
	frame, _ := rdm.Encode(h, nil)
	if got := e.Receive(frame); got != nil {
		t.Fatalf("got %v, want nil", got)
	}
}

func TestEngineReceiveGetDeviceInfo(t *testing.T) {
	e, root := newTestEngine(t, 0)
	src := uid.UID{Manufacturer: 1, Device: 1}
	h := rdm.Header{DestUID: root, SrcUID: src, CommandClass: rdm.GetCommand, PID: rdm.PIDDeviceInfo}
	frame, _ := rdm.Encode(h, nil)

	reply := e.Receive(frame)
	if reply == nil {
		t.Fatal("got nil reply")
	}
	gotHeader, payload, err := rdm.Decode(reply)
	if err != nil {
		t.Fatal(err)
	}
	if gotHeader.CommandClass != rdm.GetCommandResponse {
		t.Errorf("command class = %#x", gotHeader.CommandClass)
	}
	if gotHeader.DestUID != src || gotHeader.SrcUID != root {
		t.Errorf("UIDs not swapped: %+v", gotHeader)
	}
	if len(payload) != 19 {
		t.Errorf("payload length = %d, want 19", len(payload))
	}
}

func TestEngineReceiveBroadcastGetIsDropped(t *testing.T) {
	e, _ := newTestEngine(t, 0)
	h := rdm.Header{DestUID: uid.Broadcast, SrcUID: uid.UID{Manufacturer: 1}, CommandClass: rdm.GetCommand, PID: rdm.PIDDeviceInfo}
	frame, _ := rdm.Encode(h, nil)
	if got := e.Receive(frame); got != nil {
		t.Fatalf("got %v, want nil", got)
	}
}

func TestEngineReceiveBroadcastSetReturnsNoResponse(t *testing.T) {
	e, _ := newTestEngine(t, 0)
	h := rdm.Header{DestUID: uid.Broadcast, SrcUID: uid.UID{Manufacturer: 1}, CommandClass: rdm.SetCommand, PID: rdm.PIDDeviceLabel}
	frame, _ := rdm.Encode(h, []byte("x"))
	if got := e.Receive(frame); got != nil {
		t.Fatalf("got %v, want nil", got)
	}
}

func TestEngineRouteToSubDevice(t *testing.T) {
	e, root := newTestEngine(t, 2)
	src := uid.UID{Manufacturer: 1}
	h := rdm.Header{DestUID: root, SrcUID: src, SubDevice: 2, CommandClass: rdm.GetCommand, PID: rdm.PIDDeviceInfo}
	frame, _ := rdm.Encode(h, nil)
	reply := e.Receive(frame)
	if reply == nil {
		t.Fatal("expected a reply from sub-device 2")
	}
}

func TestEngineRouteUnknownSubDevice(t *testing.T) {
	e, root := newTestEngine(t, 2)
	src := uid.UID{Manufacturer: 1}
	h := rdm.Header{DestUID: root, SrcUID: src, SubDevice: 99, CommandClass: rdm.GetCommand, PID: rdm.PIDDeviceInfo}
	frame, _ := rdm.Encode(h, nil)
	reply := e.Receive(frame)
	_, payload, err := rdm.Decode(reply)
	if err != nil {
		t.Fatal(err)
	}
	if rdm.NackReason(rdm.ExtractUint16(payload)) != rdm.NRSubDeviceOutOfRange {
		t.Fatalf("payload = %v, want SUB_DEVICE_OUT_OF_RANGE", payload)
	}
}

func TestEngineRouteAllGetInvalid(t *testing.T) {
	e, root := newTestEngine(t, 2)
	src := uid.UID{Manufacturer: 1}
	h := rdm.Header{DestUID: root, SrcUID: src, SubDevice: rdm.SubDeviceAll, CommandClass: rdm.GetCommand, PID: rdm.PIDDeviceInfo}
	frame, _ := rdm.Encode(h, nil)
	reply := e.Receive(frame)
	_, payload, err := rdm.Decode(reply)
	if err != nil {
		t.Fatal(err)
	}
	if rdm.NackReason(rdm.ExtractUint16(payload)) != rdm.NRSubDeviceOutOfRange {
		t.Fatalf("payload = %v, want SUB_DEVICE_OUT_OF_RANGE", payload)
	}
}

func TestEngineDiscoveryMuteUnmute(t *testing.T) {
	e, root := newTestEngine(t, 0)
	src := uid.UID{Manufacturer: 1}

	h := rdm.Header{DestUID: root, SrcUID: src, CommandClass: rdm.DiscoveryCommand, PID: rdm.PIDDiscMute}
	frame, _ := rdm.Encode(h, nil)
	reply := e.Receive(frame)
	if reply == nil {
		t.Fatal("expected DISC_MUTE ack")
	}
	if !e.isMuted {
		t.Fatal("expected isMuted after DISC_MUTE")
	}

	dubHeader := rdm.Header{DestUID: root, SrcUID: src, CommandClass: rdm.DiscoveryCommand, PID: rdm.PIDDiscUniqueBranch}
	dubParam := make([]byte, 2*uid.Size)
	uid.Encode(dubParam[:uid.Size], uid.UID{})
	uid.Encode(dubParam[uid.Size:], uid.Broadcast)
	dubFrame, _ := rdm.Encode(dubHeader, dubParam)
	if got := e.Receive(dubFrame); got != nil {
		t.Fatal("expected no DUB response while muted")
	}

	unmuteHeader := rdm.Header{DestUID: root, SrcUID: src, CommandClass: rdm.DiscoveryCommand, PID: rdm.PIDDiscUnMute}
	unmuteFrame, _ := rdm.Encode(unmuteHeader, nil)
	e.Receive(unmuteFrame)
	if e.isMuted {
		t.Fatal("expected not muted after DISC_UN_MUTE")
	}

	if got := e.Receive(dubFrame); got == nil {
		t.Fatal("expected a DUB response once unmuted")
	} else if !bytes.HasPrefix(got, []byte{0xfe, 0xfe, 0xfe, 0xfe, 0xfe, 0xfe, 0xfe, 0xaa}) {
		t.Fatalf("DUB response missing preamble: %x", got)
	}
}

func TestEngineUpdatesIndicatorOnMuteAndIdentify(t *testing.T) {
	e, root := newTestEngine(t, 0)
	ind := &fakeIndicator{}
	e.SetIndicator(ind)
	src := uid.UID{Manufacturer: 1}

	muteHeader := rdm.Header{DestUID: root, SrcUID: src, CommandClass: rdm.DiscoveryCommand, PID: rdm.PIDDiscMute}
	muteFrame, _ := rdm.Encode(muteHeader, nil)
	e.Receive(muteFrame)
	if !ind.mute {
		t.Fatal("expected indicator mute=true after DISC_MUTE")
	}

	identifyHeader := rdm.Header{DestUID: root, SrcUID: src, CommandClass: rdm.SetCommand, PID: rdm.PIDIdentifyDevice}
	identifyFrame, _ := rdm.Encode(identifyHeader, []byte{1})
	e.Receive(identifyFrame)
	if !ind.identify {
		t.Fatal("expected indicator identify=true after SET IDENTIFY_DEVICE 1")
	}
}
