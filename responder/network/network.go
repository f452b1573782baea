// Package network implements the E1.37-2 network interface model: a
// root-only responder (no sub-devices) exposing the host's network
// interfaces, their DHCP/Zeroconf/static IPv4 configuration, the
// default route, and DNS settings over RDM.
package network

import (
	"net/netip"

	"github.com/jarule/responder/responder"
	"github.com/jarule/responder/uid"
)

// ModelID identifies this model; it is the value Model.ID returns and
// the model ID reported in DEVICE_INFO.
const ModelID = 0x0002

// NumberOfDNSServers is the number of DNS_NAME_SERVER slots exposed;
// index 0 is reserved (1-based addressing), so valid indices are 1 and 2.
const NumberOfDNSServers = 2

const (
	maxHostnameLength   = 63
	maxDomainNameLength = 128
)

// interfaceState holds one network interface's configuration.
type interfaceState struct {
	id               uint32
	label            string
	hardwareType     uint16
	hardwareAddress  [6]byte
	dhcpCapable      bool
	zeroconfCapable  bool
	dhcpMode         bool
	zeroconfMode     bool
	currentAddress   netip.Prefix
	staticAddress    netip.Prefix
}

type route struct {
	interfaceID uint32
	gateway     netip.Addr
}

// rootState is the model-specific state attached to the root
// responder's ModelState field.
type rootState struct {
	interfaces   []*interfaceState
	defaultRoute route
	dnsServers   [NumberOfDNSServers]netip.Addr
	dnsSet       [NumberOfDNSServers]bool
	hostname     string
	domainName   string
}

// Model is the network interface RDM model (spec.md §4.H).
type Model struct {
	rootUID uid.UID
	root    *responder.Responder
}

// New returns a network Model that will present the given root UID
// once activated.
func New(rootUID uid.UID) *Model {
	return &Model{rootUID: rootUID}
}

// ID implements responder.Model.
func (m *Model) ID() uint16 { return ModelID }

// Activate implements responder.Model: it builds the root responder
// and its fixture interface table, then installs it on the engine.
// There are no sub-devices in the network model.
func (m *Model) Activate(e *responder.Engine) {
	root := responder.NewResponder(rootResponderDefinition, m.rootUID, 0, false)
	root.ModelState = &rootState{interfaces: fixtureInterfaces()}
	m.root = root
	e.SetResponders(root, nil)
}

// Deactivate implements responder.Model; the network model has no
// resources to release.
func (m *Model) Deactivate(e *responder.Engine) {}

// Locked implements responder.Model; the network model has no
// lock/write-protect concept, so nothing is ever locked.
func (m *Model) Locked(subDevice uint16) bool { return false }

// Tasks implements responder.Model; there is no periodic housekeeping.
func (m *Model) Tasks(e *responder.Engine) {}

// fixtureInterfaces returns the three-interface table reproduced from
// original_source/tests/tests/NetworkModelTest.cpp: interface 1 is a
// DHCP-capable eth0, interface 3 only exercises hardware-type
// discovery, and interface 4 is DHCP/Zeroconf-incapable but always
// reports both modes enabled.
func fixtureInterfaces() []*interfaceState {
	return []*interfaceState{
		{
			id:              1,
			label:           "eth0",
			hardwareType:    1,
			hardwareAddress: [6]byte{0x52, 0x12, 0x34, 0x56, 0x78, 0x9a},
			dhcpCapable:     true,
			zeroconfCapable: true,
		},
		{
			id:           3,
			label:        "if3",
			hardwareType: 0x1f,
		},
		{
			id:           4,
			label:        "if4",
			hardwareType: 1,
			dhcpMode:     true,
			zeroconfMode: true,
		},
	}
}

func rootOf(r *responder.Responder) *rootState {
	return r.ModelState.(*rootState)
}

func findInterface(r *responder.Responder, id uint32) *interfaceState {
	for _, iface := range rootOf(r).interfaces {
		if iface.id == id {
			return iface
		}
	}
	return nil
}
