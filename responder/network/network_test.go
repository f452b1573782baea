package network

import (
	"bytes"
	"testing"

	"github.com/jarule/responder/rdm"
	"github.com/jarule/responder/responder"
	"github.com/jarule/responder/uid"
)

func newTestEngine(t *testing.T) *responder.Engine {
	t.Helper()
	rootUID := uid.UID{Manufacturer: 0x7a70, Device: 1}
	e := responder.NewEngine(responder.NewSystemClock(), nil)
	e.SetModel(New(rootUID))
	return e
}

func dispatchGet(r *responder.Responder, pid rdm.PID, paramData []byte) responder.Result {
	h := &rdm.Header{CommandClass: rdm.GetCommand, PID: pid}
	return responder.Dispatch(r, h, paramData)
}

func dispatchSet(r *responder.Responder, pid rdm.PID, paramData []byte) responder.Result {
	h := &rdm.Header{CommandClass: rdm.SetCommand, PID: pid}
	return responder.Dispatch(r, h, paramData)
}

func assertAckPayload(t *testing.T, result responder.Result, want []byte) {
	t.Helper()
	if !result.IsAck() {
		t.Fatalf("result = %+v, want ACK", result)
	}
	if !bytes.Equal(result.Payload(), want) {
		t.Fatalf("payload = %x, want %x", result.Payload(), want)
	}
}

func assertNack(t *testing.T, result responder.Result, reason rdm.NackReason) {
	t.Helper()
	got, ok := result.NackReason()
	if !ok || got != reason {
		t.Fatalf("result = %+v, want NACK %#x", result, reason)
	}
}

func TestListInterfaces(t *testing.T) {
	e := newTestEngine(t)
	result := dispatchGet(e.Root, rdm.PIDListInterfaces, nil)
	want := []byte{
		0x00, 0x00, 0x00, 0x01, 0x00, 0x01,
		0x00, 0x00, 0x00, 0x03, 0x00, 0x1f,
		0x00, 0x00, 0x00, 0x04, 0x00, 0x01,
	}
	assertAckPayload(t, result, want)
}

func TestGetInterfaceLabel(t *testing.T) {
	e := newTestEngine(t)
	result := dispatchGet(e.Root, rdm.PIDInterfaceLabel, pushUint32(nil, 1))
	assertAckPayload(t, result, append(pushUint32(nil, 1), "eth0"...))

	result = dispatchGet(e.Root, rdm.PIDInterfaceLabel, pushUint32(nil, 2))
	assertNack(t, result, rdm.NRDataOutOfRange)
}

func TestGetHardwareAddress(t *testing.T) {
	e := newTestEngine(t)
	result := dispatchGet(e.Root, rdm.PIDInterfaceHardwareAddressType1, pushUint32(nil, 1))
	want := append(pushUint32(nil, 1), 0x52, 0x12, 0x34, 0x56, 0x78, 0x9a)
	assertAckPayload(t, result, want)

	result = dispatchGet(e.Root, rdm.PIDInterfaceHardwareAddressType1, pushUint32(nil, 5))
	assertNack(t, result, rdm.NRDataOutOfRange)
}

func TestGetDHCPMode(t *testing.T) {
	e := newTestEngine(t)
	result := dispatchGet(e.Root, rdm.PIDIPv4DHCPMode, pushUint32(nil, 1))
	assertAckPayload(t, result, append(pushUint32(nil, 1), 0x00))

	result = dispatchGet(e.Root, rdm.PIDIPv4DHCPMode, pushUint32(nil, 4))
	assertAckPayload(t, result, append(pushUint32(nil, 4), 0x01))
}

func TestGetZeroconfMode(t *testing.T) {
	e := newTestEngine(t)
	result := dispatchGet(e.Root, rdm.PIDIPv4ZeroconfMode, pushUint32(nil, 1))
	assertAckPayload(t, result, append(pushUint32(nil, 1), 0x00))

	result = dispatchGet(e.Root, rdm.PIDIPv4ZeroconfMode, pushUint32(nil, 4))
	assertAckPayload(t, result, append(pushUint32(nil, 4), 0x01))
}

func TestDefaultRouteRoundtrip(t *testing.T) {
	e := newTestEngine(t)
	param := []byte{0x00, 0x00, 0x00, 0x00, 0x0a, 0x0a, 0x1, 0x2}

	setResult := dispatchSet(e.Root, rdm.PIDIPv4DefaultRoute, param)
	if !setResult.IsAck() {
		t.Fatalf("SET result = %+v, want ACK", setResult)
	}

	getResult := dispatchGet(e.Root, rdm.PIDIPv4DefaultRoute, nil)
	assertAckPayload(t, getResult, param)
}

func TestDNSNameServerRoundtrip(t *testing.T) {
	e := newTestEngine(t)
	ip := []byte{0x1, 0x0a, 0x0a, 0x1, 0x2}

	setResult := dispatchSet(e.Root, rdm.PIDDNSNameServer, ip)
	if !setResult.IsAck() {
		t.Fatalf("SET result = %+v, want ACK", setResult)
	}

	getResult := dispatchGet(e.Root, rdm.PIDDNSNameServer, []byte{1})
	assertAckPayload(t, getResult, ip)

	outOfRange := dispatchGet(e.Root, rdm.PIDDNSNameServer, []byte{3})
	assertNack(t, outOfRange, rdm.NRDataOutOfRange)
}

func TestDNSHostnameRoundtrip(t *testing.T) {
	e := newTestEngine(t)
	setResult := dispatchSet(e.Root, rdm.PIDDNSHostname, []byte("foo"))
	if !setResult.IsAck() {
		t.Fatalf("SET result = %+v, want ACK", setResult)
	}
	getResult := dispatchGet(e.Root, rdm.PIDDNSHostname, nil)
	assertAckPayload(t, getResult, []byte("foo"))
}

func TestDNSDomainNameRoundtrip(t *testing.T) {
	e := newTestEngine(t)
	setResult := dispatchSet(e.Root, rdm.PIDDNSDomainName, []byte("myco.co.nz"))
	if !setResult.IsAck() {
		t.Fatalf("SET result = %+v, want ACK", setResult)
	}
	getResult := dispatchGet(e.Root, rdm.PIDDNSDomainName, nil)
	assertAckPayload(t, getResult, []byte("myco.co.nz"))
}
