package responder

import "github.com/jarule/responder/rdm"

// BasePIDs returns the PIDDescriptor entries every responder in this
// module shares, regardless of model: the handful of generic PIDs
// (handled in handlers.go) that apply to any device or sub-device.
// Notably absent are DEVICE_LABEL and DMX_START_ADDRESS, which a
// dimmer root and sub-device each expose on only one side of the
// root/sub-device split (see dimmer's definitions.go) — a model adds
// those, and any other PID-specific entries, on top of this slice.
func BasePIDs() []PIDDescriptor {
	return []PIDDescriptor{
		{PID: rdm.PIDSupportedParameters, Get: GetSupportedParameters},
		{PID: rdm.PIDDeviceInfo, Get: GetDeviceInfo},
		{PID: rdm.PIDDeviceModelDescription, Get: GetDeviceModelDescription},
		{PID: rdm.PIDManufacturerLabel, Get: GetManufacturerLabel},
		{PID: rdm.PIDSoftwareVersionLabel, Get: GetSoftwareVersionLabel},
		{PID: rdm.PIDIdentifyDevice, Get: GetIdentifyDevice, MinGetPDL: 0, Set: SetIdentifyDevice},
		{PID: rdm.PIDProductDetailIDList, Get: GetProductDetailIDList},
	}
}

// CommonPIDs returns BasePIDs() plus the fuller set of generic PIDs a
// model with personalities, sensors, and a writable device label wants
// on every responder it has — the network model's shape, which (unlike
// the dimmer) doesn't split DEVICE_LABEL/DMX_START_ADDRESS across a
// root/sub-device boundary.
func CommonPIDs() []PIDDescriptor {
	return WithPIDs(BasePIDs(),
		PIDDescriptor{PID: rdm.PIDDeviceLabel, Get: GetDeviceLabel, Set: SetDeviceLabel},
		PIDDescriptor{PID: rdm.PIDDMXPersonality, Get: GetDMXPersonality, Set: SetDMXPersonality},
		PIDDescriptor{PID: rdm.PIDDMXPersonalityDescription, Get: GetDMXPersonalityDescription, MinGetPDL: 1},
		PIDDescriptor{PID: rdm.PIDDMXStartAddress, Get: GetDMXStartAddress, Set: SetDMXStartAddress},
		PIDDescriptor{PID: rdm.PIDSensorDefinition, Get: GetSensorDefinition, MinGetPDL: 1},
		PIDDescriptor{PID: rdm.PIDSensorValue, Get: GetSensorValue, MinGetPDL: 1},
		PIDDescriptor{PID: rdm.PIDFactoryDefaults, Get: GetFactoryDefaults, Set: SetFactoryDefaults},
		PIDDescriptor{PID: rdm.PIDParameterDescription, Get: GetParameterDescription, MinGetPDL: 2},
	)
}

// WithPIDs appends additional descriptors to a copy of base, letting a
// model start from CommonPIDs() without mutating a shared slice.
func WithPIDs(base []PIDDescriptor, extra ...PIDDescriptor) []PIDDescriptor {
	out := make([]PIDDescriptor, 0, len(base)+len(extra))
	out = append(out, base...)
	out = append(out, extra...)
	return out
}
