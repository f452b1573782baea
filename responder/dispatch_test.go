package responder

import (
	"testing"

	"github.com/jarule/responder/rdm"
	"github.com/jarule/responder/uid"
)

func testDefinition() *Definition {
	return &Definition{
		PIDs:                 CommonPIDs(),
		DefaultDeviceLabel:   "test device",
		ManufacturerLabel:    "Test Manufacturer",
		ModelDescription:     "Test Model",
		SoftwareVersionLabel: "1.0.0",
		SoftwareVersion:      1,
		ModelID:              0x0001,
		ProductCategory:      rdm.ProductCategoryTestEquipment,
		Personalities: []Personality{
			{Description: "Default", DMXFootprint: 1},
		},
	}
}

func testGetHeader(pid rdm.PID) *rdm.Header {
	return &rdm.Header{
		DestUID:      uid.UID{Manufacturer: 0x7a70, Device: 1},
		SrcUID:       uid.UID{Manufacturer: 0x1234, Device: 1},
		CommandClass: rdm.GetCommand,
		PID:          pid,
	}
}

func TestDispatchUnknownPID(t *testing.T) {
	r := NewResponder(testDefinition(), uid.UID{}, 0, false)
	result := Dispatch(r, testGetHeader(0x7fff), nil)
	if result.kind != kindNack || result.reason != rdm.NRUnknownPID {
		t.Fatalf("got %+v, want NACK UNKNOWN_PID", result)
	}
}

func TestDispatchUnsupportedCommandClass(t *testing.T) {
	r := NewResponder(testDefinition(), uid.UID{}, 0, false)
	h := testGetHeader(rdm.PIDDeviceInfo)
	h.CommandClass = rdm.SetCommand
	result := Dispatch(r, h, nil)
	if result.kind != kindNack || result.reason != rdm.NRUnsupportedCommandClass {
		t.Fatalf("got %+v, want NACK UNSUPPORTED_COMMAND_CLASS", result)
	}
}

func TestDispatchFormatErrorOnShortGet(t *testing.T) {
	r := NewResponder(testDefinition(), uid.UID{}, 0, false)
	result := Dispatch(r, testGetHeader(rdm.PIDSensorDefinition), nil)
	if result.kind != kindNack || result.reason != rdm.NRFormatError {
		t.Fatalf("got %+v, want NACK FORMAT_ERROR", result)
	}
}

func TestDispatchDeviceInfo(t *testing.T) {
	r := NewResponder(testDefinition(), uid.UID{}, 0, false)
	result := Dispatch(r, testGetHeader(rdm.PIDDeviceInfo), nil)
	if result.kind != kindAck {
		t.Fatalf("got %+v, want ACK", result)
	}
	if len(result.payload) != 19 {
		t.Fatalf("DEVICE_INFO payload length = %d, want 19", len(result.payload))
	}
}

func TestSupportedParametersExcludesAlwaysRequired(t *testing.T) {
	r := NewResponder(testDefinition(), uid.UID{}, 0, false)
	result := GetSupportedParameters(r, testGetHeader(rdm.PIDSupportedParameters), nil)
	for i := 0; i+1 < len(result.payload); i += 2 {
		pid := rdm.PID(rdm.ExtractUint16(result.payload[i:]))
		if alwaysRequiredPIDs[pid] {
			t.Errorf("SUPPORTED_PARAMETERS listed always-required PID %#x", pid)
		}
	}
}

func TestDeviceLabelRoundtrip(t *testing.T) {
	r := NewResponder(testDefinition(), uid.UID{}, 0, false)
	setResult := Dispatch(r, &rdm.Header{CommandClass: rdm.SetCommand, PID: rdm.PIDDeviceLabel}, []byte("new label"))
	if setResult.kind != kindAck {
		t.Fatalf("SET device label: %+v", setResult)
	}
	if r.DeviceLabel != "new label" {
		t.Fatalf("DeviceLabel = %q", r.DeviceLabel)
	}
	getResult := Dispatch(r, testGetHeader(rdm.PIDDeviceLabel), nil)
	if string(getResult.payload) != "new label" {
		t.Fatalf("GET device label = %q", getResult.payload)
	}
}

func TestSetDMXStartAddressOutOfRange(t *testing.T) {
	r := NewResponder(testDefinition(), uid.UID{}, 0, false)
	result := Dispatch(r, &rdm.Header{CommandClass: rdm.SetCommand, PID: rdm.PIDDMXStartAddress}, rdm.PushUint16(nil, 513))
	if result.kind != kindNack || result.reason != rdm.NRDataOutOfRange {
		t.Fatalf("got %+v, want NACK DATA_OUT_OF_RANGE", result)
	}
}
