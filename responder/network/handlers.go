package network

import (
	"net/netip"

	"github.com/jarule/responder/rdm"
	"github.com/jarule/responder/responder"
)

func getListInterfaces(r *responder.Responder, header *rdm.Header, paramData []byte) responder.Result {
	var payload []byte
	for _, iface := range rootOf(r).interfaces {
		payload = append(payload, pushUint32(nil, iface.id)...)
		payload = rdm.PushUint16(payload, iface.hardwareType)
	}
	return responder.Ack(payload)
}

func getInterfaceLabel(r *responder.Responder, header *rdm.Header, paramData []byte) responder.Result {
	iface := findInterface(r, extractUint32(paramData))
	if iface == nil {
		return responder.Nack(rdm.NRDataOutOfRange)
	}
	payload := pushUint32(nil, iface.id)
	payload = append(payload, iface.label...)
	return responder.Ack(payload)
}

func getHardwareAddress(r *responder.Responder, header *rdm.Header, paramData []byte) responder.Result {
	iface := findInterface(r, extractUint32(paramData))
	if iface == nil {
		return responder.Nack(rdm.NRDataOutOfRange)
	}
	payload := pushUint32(nil, iface.id)
	payload = append(payload, iface.hardwareAddress[:]...)
	return responder.Ack(payload)
}

func getDHCPMode(r *responder.Responder, header *rdm.Header, paramData []byte) responder.Result {
	iface := findInterface(r, extractUint32(paramData))
	if iface == nil {
		return responder.Nack(rdm.NRDataOutOfRange)
	}
	payload := pushUint32(nil, iface.id)
	payload = append(payload, boolByte(iface.dhcpMode))
	return responder.Ack(payload)
}

func setDHCPMode(r *responder.Responder, header *rdm.Header, paramData []byte) responder.Result {
	if len(paramData) != 5 {
		return responder.Nack(rdm.NRFormatError)
	}
	iface := findInterface(r, extractUint32(paramData))
	if iface == nil {
		return responder.Nack(rdm.NRDataOutOfRange)
	}
	if !iface.dhcpCapable {
		return responder.Nack(rdm.NRUnsupportedCommandClass)
	}
	iface.dhcpMode = paramData[4] != 0
	return responder.Ack(nil)
}

func getZeroconfMode(r *responder.Responder, header *rdm.Header, paramData []byte) responder.Result {
	iface := findInterface(r, extractUint32(paramData))
	if iface == nil {
		return responder.Nack(rdm.NRDataOutOfRange)
	}
	payload := pushUint32(nil, iface.id)
	payload = append(payload, boolByte(iface.zeroconfMode))
	return responder.Ack(payload)
}

func setZeroconfMode(r *responder.Responder, header *rdm.Header, paramData []byte) responder.Result {
	if len(paramData) != 5 {
		return responder.Nack(rdm.NRFormatError)
	}
	iface := findInterface(r, extractUint32(paramData))
	if iface == nil {
		return responder.Nack(rdm.NRDataOutOfRange)
	}
	if !iface.zeroconfCapable {
		return responder.Nack(rdm.NRUnsupportedCommandClass)
	}
	iface.zeroconfMode = paramData[4] != 0
	return responder.Ack(nil)
}

func getCurrentAddress(r *responder.Responder, header *rdm.Header, paramData []byte) responder.Result {
	iface := findInterface(r, extractUint32(paramData))
	if iface == nil {
		return responder.Nack(rdm.NRDataOutOfRange)
	}
	payload := pushUint32(nil, iface.id)
	payload = append(payload, addr4Bytes(iface.currentAddress.Addr())...)
	bits := iface.currentAddress.Bits()
	if bits < 0 {
		bits = 0
	}
	payload = append(payload, byte(bits))
	return responder.Ack(payload)
}

func getStaticAddress(r *responder.Responder, header *rdm.Header, paramData []byte) responder.Result {
	iface := findInterface(r, extractUint32(paramData))
	if iface == nil {
		return responder.Nack(rdm.NRDataOutOfRange)
	}
	payload := pushUint32(nil, iface.id)
	payload = append(payload, addr4Bytes(iface.staticAddress.Addr())...)
	bits := iface.staticAddress.Bits()
	if bits < 0 {
		bits = 0
	}
	payload = append(payload, byte(bits))
	return responder.Ack(payload)
}

func setStaticAddress(r *responder.Responder, header *rdm.Header, paramData []byte) responder.Result {
	if len(paramData) != 9 {
		return responder.Nack(rdm.NRFormatError)
	}
	iface := findInterface(r, extractUint32(paramData))
	if iface == nil {
		return responder.Nack(rdm.NRDataOutOfRange)
	}
	prefixLen := int(paramData[8])
	if prefixLen > 32 {
		return responder.Nack(rdm.NRDataOutOfRange)
	}
	ip := netip.AddrFrom4([4]byte{paramData[4], paramData[5], paramData[6], paramData[7]})
	iface.staticAddress = netip.PrefixFrom(ip, prefixLen)
	return responder.Ack(nil)
}

func setRenewDHCP(r *responder.Responder, header *rdm.Header, paramData []byte) responder.Result {
	iface := findInterface(r, extractUint32(paramData))
	if iface == nil {
		return responder.Nack(rdm.NRDataOutOfRange)
	}
	if !iface.dhcpCapable {
		return responder.Nack(rdm.NRUnsupportedCommandClass)
	}
	return responder.Ack(nil)
}

func setReleaseDHCP(r *responder.Responder, header *rdm.Header, paramData []byte) responder.Result {
	iface := findInterface(r, extractUint32(paramData))
	if iface == nil {
		return responder.Nack(rdm.NRDataOutOfRange)
	}
	if !iface.dhcpCapable {
		return responder.Nack(rdm.NRUnsupportedCommandClass)
	}
	return responder.Ack(nil)
}

func setApplyConfiguration(r *responder.Responder, header *rdm.Header, paramData []byte) responder.Result {
	if findInterface(r, extractUint32(paramData)) == nil {
		return responder.Nack(rdm.NRDataOutOfRange)
	}
	return responder.Ack(nil)
}

// getDefaultRoute/setDefaultRoute store and return the route verbatim,
// with no validation of the interface ID field: the fixture
// (NetworkModelTest.cpp's defaultRoute case) sets and reads back
// interface 0 untouched, so this mirrors the original's behaviour of
// treating the default route as one flat piece of state rather than
// per-interface configuration.
func getDefaultRoute(r *responder.Responder, header *rdm.Header, paramData []byte) responder.Result {
	rt := rootOf(r).defaultRoute
	payload := pushUint32(nil, rt.interfaceID)
	payload = append(payload, addr4Bytes(rt.gateway)...)
	return responder.Ack(payload)
}

func setDefaultRoute(r *responder.Responder, header *rdm.Header, paramData []byte) responder.Result {
	if len(paramData) != 8 {
		return responder.Nack(rdm.NRFormatError)
	}
	state := rootOf(r)
	state.defaultRoute = route{
		interfaceID: extractUint32(paramData),
		gateway:     netip.AddrFrom4([4]byte{paramData[4], paramData[5], paramData[6], paramData[7]}),
	}
	return responder.Ack(nil)
}

func getDNSNameServer(r *responder.Responder, header *rdm.Header, paramData []byte) responder.Result {
	if len(paramData) != 1 {
		return responder.Nack(rdm.NRFormatError)
	}
	index := paramData[0]
	if index == 0 || int(index) > NumberOfDNSServers {
		return responder.Nack(rdm.NRDataOutOfRange)
	}
	state := rootOf(r)
	if !state.dnsSet[index-1] {
		return responder.Nack(rdm.NRDataOutOfRange)
	}
	payload := []byte{index}
	payload = append(payload, addr4Bytes(state.dnsServers[index-1])...)
	return responder.Ack(payload)
}

func setDNSNameServer(r *responder.Responder, header *rdm.Header, paramData []byte) responder.Result {
	if len(paramData) != 5 {
		return responder.Nack(rdm.NRFormatError)
	}
	index := paramData[0]
	if index == 0 || int(index) > NumberOfDNSServers {
		return responder.Nack(rdm.NRDataOutOfRange)
	}
	state := rootOf(r)
	state.dnsServers[index-1] = netip.AddrFrom4([4]byte{paramData[1], paramData[2], paramData[3], paramData[4]})
	state.dnsSet[index-1] = true
	return responder.Ack(nil)
}

func getDNSHostname(r *responder.Responder, header *rdm.Header, paramData []byte) responder.Result {
	return responder.Ack([]byte(rootOf(r).hostname))
}

func setDNSHostname(r *responder.Responder, header *rdm.Header, paramData []byte) responder.Result {
	if len(paramData) > maxHostnameLength {
		return responder.Nack(rdm.NRFormatError)
	}
	rootOf(r).hostname = string(paramData)
	return responder.Ack(nil)
}

func getDNSDomainName(r *responder.Responder, header *rdm.Header, paramData []byte) responder.Result {
	return responder.Ack([]byte(rootOf(r).domainName))
}

func setDNSDomainName(r *responder.Responder, header *rdm.Header, paramData []byte) responder.Result {
	if len(paramData) > maxDomainNameLength {
		return responder.Nack(rdm.NRFormatError)
	}
	rootOf(r).domainName = string(paramData)
	return responder.Ack(nil)
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

func addr4Bytes(a netip.Addr) []byte {
	if !a.Is4() {
		return []byte{0, 0, 0, 0}
	}
	b := a.As4()
	return b[:]
}

func pushUint32(dst []byte, v uint32) []byte {
	return append(dst, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

func extractUint32(src []byte) uint32 {
	if len(src) < 4 {
		return 0
	}
	return uint32(src[0])<<24 | uint32(src[1])<<16 | uint32(src[2])<<8 | uint32(src[3])
}
