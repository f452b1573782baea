package network

import (
	"github.com/jarule/responder/rdm"
	"github.com/jarule/responder/responder"
)

var rootResponderDefinition = &responder.Definition{
	PIDs: responder.WithPIDs(responder.CommonPIDs(),
		responder.PIDDescriptor{PID: rdm.PIDListInterfaces, Get: getListInterfaces},
		responder.PIDDescriptor{PID: rdm.PIDInterfaceLabel, Get: getInterfaceLabel, MinGetPDL: 4},
		responder.PIDDescriptor{PID: rdm.PIDInterfaceHardwareAddressType1, Get: getHardwareAddress, MinGetPDL: 4},
		responder.PIDDescriptor{PID: rdm.PIDIPv4DHCPMode, Get: getDHCPMode, MinGetPDL: 4, Set: setDHCPMode},
		responder.PIDDescriptor{PID: rdm.PIDIPv4ZeroconfMode, Get: getZeroconfMode, MinGetPDL: 4, Set: setZeroconfMode},
		responder.PIDDescriptor{PID: rdm.PIDIPv4CurrentAddress, Get: getCurrentAddress, MinGetPDL: 4},
		responder.PIDDescriptor{PID: rdm.PIDIPv4StaticAddress, Get: getStaticAddress, MinGetPDL: 4, Set: setStaticAddress},
		responder.PIDDescriptor{PID: rdm.PIDInterfaceRenewDHCP, Set: setRenewDHCP},
		responder.PIDDescriptor{PID: rdm.PIDInterfaceReleaseDHCP, Set: setReleaseDHCP},
		responder.PIDDescriptor{PID: rdm.PIDInterfaceApplyConfiguration, Set: setApplyConfiguration},
		responder.PIDDescriptor{PID: rdm.PIDIPv4DefaultRoute, Get: getDefaultRoute, Set: setDefaultRoute},
		responder.PIDDescriptor{PID: rdm.PIDDNSNameServer, Get: getDNSNameServer, MinGetPDL: 1, Set: setDNSNameServer},
		responder.PIDDescriptor{PID: rdm.PIDDNSHostname, Get: getDNSHostname, Set: setDNSHostname},
		responder.PIDDescriptor{PID: rdm.PIDDNSDomainName, Get: getDNSDomainName, Set: setDNSDomainName},
	),
	SoftwareVersionLabel: "ja-rule-network-1.0",
	ManufacturerLabel:    "OLA",
	ModelDescription:     "Ja Rule Network Interface",
	ProductDetailIDs:     []uint16{0x0001},
	DefaultDeviceLabel:   "Network",
	SoftwareVersion:      1,
	ModelID:              ModelID,
	ProductCategory:      rdm.ProductCategoryOther,
}
