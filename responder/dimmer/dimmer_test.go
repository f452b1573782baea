package dimmer

import (
	"testing"

	"github.com/jarule/responder/rdm"
	"github.com/jarule/responder/responder"
	"github.com/jarule/responder/uid"
)

func newTestEngine(t *testing.T) (*responder.Engine, uid.UID) {
	t.Helper()
	rootUID := uid.UID{Manufacturer: 0x7a70, Device: 1}
	e := responder.NewEngine(responder.NewSystemClock(), nil)
	e.SetModel(New(rootUID))
	return e, rootUID
}

func TestActivateAssignsNonContiguousSubDeviceIndices(t *testing.T) {
	e, _ := newTestEngine(t)
	if len(e.SubDevices) != NumberOfSubDevices {
		t.Fatalf("got %d sub-devices, want %d", len(e.SubDevices), NumberOfSubDevices)
	}
	var indices []uint16
	for _, sd := range e.SubDevices {
		indices = append(indices, sd.Index)
	}
	want := []uint16{1, 3, 4, 5}
	for i, idx := range indices {
		if idx != want[i] {
			t.Errorf("sub-device %d index = %d, want %d", i, idx, want[i])
		}
	}
}

func TestActivateFirstSceneIsReadOnly(t *testing.T) {
	e, _ := newTestEngine(t)
	state := e.Root.ModelState.(*rootState)
	if state.scenes[0].state != presetProgrammedReadOnly {
		t.Errorf("scene 1 state = %d, want read-only", state.scenes[0].state)
	}
	if state.scenes[1].state != presetNotProgrammed || state.scenes[2].state != presetNotProgrammed {
		t.Errorf("scenes 2/3 should start not-programmed")
	}
}

func TestCapturePresetReadOnlyRejected(t *testing.T) {
	e, _ := newTestEngine(t)
	header := &rdm.Header{CommandClass: rdm.SetCommand, PID: rdm.PIDCapturePreset}
	param := rdm.PushUint16(nil, 1)
	param = rdm.PushUint16(param, 10)
	param = rdm.PushUint16(param, 20)
	param = rdm.PushUint16(param, 30)
	result := responder.Dispatch(e.Root, header, param)
	assertNack(t, result, rdm.NRWriteProtect)
}

func TestCapturePresetScene2(t *testing.T) {
	e, _ := newTestEngine(t)
	header := &rdm.Header{CommandClass: rdm.SetCommand, PID: rdm.PIDCapturePreset}
	param := rdm.PushUint16(nil, 2)
	param = rdm.PushUint16(param, 10)
	param = rdm.PushUint16(param, 20)
	param = rdm.PushUint16(param, 30)
	result := responder.Dispatch(e.Root, header, param)
	assertAck(t, result)

	state := e.Root.ModelState.(*rootState)
	sc := state.scenes[1]
	if sc.upFadeTime != 10 || sc.downFadeTime != 20 || sc.waitTime != 30 || sc.state != presetProgrammed {
		t.Fatalf("scene 2 = %+v", sc)
	}
}

func TestCurveOddRejectedOnEvenIndexSubDevice(t *testing.T) {
	e, _ := newTestEngine(t)
	var evenIndexSub *responder.Responder
	for _, sd := range e.SubDevices {
		if sd.Index%2 == 0 {
			evenIndexSub = sd
		}
	}
	if evenIndexSub == nil {
		t.Fatal("no even-indexed sub-device found")
	}
	header := &rdm.Header{CommandClass: rdm.SetCommand, PID: rdm.PIDCurve}
	result := responder.Dispatch(evenIndexSub, header, []byte{1}) // curve 1 is odd
	assertNack(t, result, rdm.NRDataOutOfRange)

	result = responder.Dispatch(evenIndexSub, header, []byte{2}) // curve 2 is even, allowed
	assertAck(t, result)
}

func TestLockStateWriteProtectsSubDevices(t *testing.T) {
	e, root := newTestEngine(t)
	src := uid.UID{Manufacturer: 1}

	setLock := rdm.Header{DestUID: root, SrcUID: src, CommandClass: rdm.SetCommand, PID: rdm.PIDLockState}
	param := rdm.PushUint16(nil, 0) // pin 0 matches default
	param = append(param, lockStateSubDevicesLocked)
	frame, _ := rdm.Encode(setLock, param)
	reply := e.Receive(frame)
	if reply == nil {
		t.Fatal("expected ack for SET LOCK_STATE")
	}

	labelSet := rdm.Header{DestUID: root, SrcUID: src, SubDevice: e.SubDevices[0].Index, CommandClass: rdm.SetCommand, PID: rdm.PIDDeviceLabel}
	labelFrame, _ := rdm.Encode(labelSet, []byte("x"))
	labelReply := e.Receive(labelFrame)
	_, payload, err := rdm.Decode(labelReply)
	if err != nil {
		t.Fatal(err)
	}
	if rdm.NackReason(rdm.ExtractUint16(payload)) != rdm.NRWriteProtect {
		t.Fatalf("expected WRITE_PROTECT, got payload %v", payload)
	}

	rootLabelSet := rdm.Header{DestUID: root, SrcUID: src, CommandClass: rdm.SetCommand, PID: rdm.PIDDeviceLabel}
	rootLabelFrame, _ := rdm.Encode(rootLabelSet, []byte("y"))
	rootReply := e.Receive(rootLabelFrame)
	rootHeader, _, err := rdm.Decode(rootReply)
	if err != nil {
		t.Fatal(err)
	}
	if rootHeader.PortID != uint8(rdm.ResponseAck) {
		t.Fatalf("expected root SET to succeed while only sub-devices are locked")
	}
}

func TestDMXBlockAddressRoundtrip(t *testing.T) {
	e, root := newTestEngine(t)
	src := uid.UID{Manufacturer: 1}

	setAddr := rdm.Header{DestUID: root, SrcUID: src, CommandClass: rdm.SetCommand, PID: rdm.PIDDMXBlockAddress}
	frame, _ := rdm.Encode(setAddr, rdm.PushUint16(nil, 10))
	reply := e.Receive(frame)
	if reply == nil {
		t.Fatal("expected ack")
	}

	getAddr := rdm.Header{DestUID: root, SrcUID: src, CommandClass: rdm.GetCommand, PID: rdm.PIDDMXBlockAddress}
	getFrame, _ := rdm.Encode(getAddr, nil)
	getReply := e.Receive(getFrame)
	_, payload, err := rdm.Decode(getReply)
	if err != nil {
		t.Fatal(err)
	}
	totalFootprint := rdm.ExtractUint16(payload[0:2])
	startAddr := rdm.ExtractUint16(payload[2:4])
	if totalFootprint != NumberOfSubDevices {
		t.Errorf("total footprint = %d, want %d", totalFootprint, NumberOfSubDevices)
	}
	if startAddr != 10 {
		t.Errorf("start address = %d, want 10", startAddr)
	}
	if e.SubDevices[1].DMXStartAddress != 11 {
		t.Errorf("sub-device 2 start address = %d, want 11", e.SubDevices[1].DMXStartAddress)
	}
}

func assertAck(t *testing.T, result responder.Result) {
	t.Helper()
	if !result.IsAck() {
		t.Fatalf("result = %+v, want ACK", result)
	}
}

func assertNack(t *testing.T, result responder.Result, reason rdm.NackReason) {
	t.Helper()
	got, ok := result.NackReason()
	if !ok || got != reason {
		t.Fatalf("result = %+v, want NACK %#x", result, reason)
	}
}
