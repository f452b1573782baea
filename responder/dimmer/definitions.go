package dimmer

import (
	"github.com/jarule/responder/rdm"
	"github.com/jarule/responder/responder"
)

var rootResponderDefinition = &responder.Definition{
	PIDs: responder.WithPIDs(responder.BasePIDs(),
		responder.PIDDescriptor{PID: rdm.PIDDeviceLabel, Get: responder.GetDeviceLabel, Set: responder.SetDeviceLabel},
		responder.PIDDescriptor{PID: rdm.PIDCapturePreset, Set: capturePreset},
		responder.PIDDescriptor{PID: rdm.PIDPresetPlayback, Get: getPresetPlayback, Set: setPresetPlayback},
		responder.PIDDescriptor{PID: rdm.PIDDMXBlockAddress, Get: getDMXBlockAddress, Set: setDMXBlockAddress},
		responder.PIDDescriptor{PID: rdm.PIDDMXFailMode, Get: getDMXFailMode, Set: setDMXFailMode},
		responder.PIDDescriptor{PID: rdm.PIDDMXStartupMode, Get: getDMXStartupMode, Set: setDMXStartupMode},
		responder.PIDDescriptor{PID: rdm.PIDLockPin, Get: getLockPin, Set: setLockPin},
		responder.PIDDescriptor{PID: rdm.PIDLockState, Get: getLockState, Set: setLockState},
		responder.PIDDescriptor{PID: rdm.PIDLockStateDescription, Get: getLockStateDescription, MinGetPDL: 1},
		responder.PIDDescriptor{PID: rdm.PIDPresetInfo, Get: getPresetInfo},
		responder.PIDDescriptor{PID: rdm.PIDPresetStatus, Get: getPresetStatus, MinGetPDL: 2, Set: setPresetStatus},
		responder.PIDDescriptor{PID: rdm.PIDPresetMergeMode, Get: getPresetMergeMode, Set: setPresetMergeMode},
		responder.PIDDescriptor{PID: rdm.PIDPowerOnSelfTest, Get: getPowerOnSelfTest, Set: setPowerOnSelfTest},
	),
	SoftwareVersionLabel: "Alpha",
	ManufacturerLabel:    "Ja Rule",
	ModelDescription:     "Ja Rule Dimmer Device",
	ProductDetailIDs:     []uint16{0x0001, 0x0002}, // TEST, CHANGEOVER_MANUAL
	DefaultDeviceLabel:   "Ja Rule",
	SoftwareVersion:      0,
	ModelID:              ModelID,
	ProductCategory:      rdm.ProductCategoryTestEquipment,
}

var subDeviceResponderDefinition = &responder.Definition{
	PIDs: responder.WithPIDs(responder.BasePIDs(),
		responder.PIDDescriptor{PID: rdm.PIDDMXStartAddress, Get: responder.GetDMXStartAddress, Set: responder.SetDMXStartAddress},
		responder.PIDDescriptor{PID: rdm.PIDBurnIn, Get: getBurnIn, Set: setBurnIn},
		responder.PIDDescriptor{PID: rdm.PIDIdentifyMode, Get: getIdentifyMode, Set: setIdentifyMode},
		responder.PIDDescriptor{PID: rdm.PIDDimmerInfo, Get: getDimmerInfo},
		responder.PIDDescriptor{PID: rdm.PIDMinimumLevel, Get: getMinimumLevel, Set: setMinimumLevel},
		responder.PIDDescriptor{PID: rdm.PIDMaximumLevel, Get: getMaximumLevel, Set: setMaximumLevel},
		responder.PIDDescriptor{PID: rdm.PIDCurve, Get: getCurve, Set: setCurve},
		responder.PIDDescriptor{PID: rdm.PIDCurveDescription, Get: getCurveDescription, MinGetPDL: 1},
		responder.PIDDescriptor{PID: rdm.PIDOutputResponseTime, Get: getOutputResponseTime, Set: setOutputResponseTime},
		responder.PIDDescriptor{PID: rdm.PIDOutputResponseTimeDescription, Get: getOutputResponseDescription, MinGetPDL: 1},
		responder.PIDDescriptor{PID: rdm.PIDModulationFrequency, Get: getModulationFrequency, Set: setModulationFrequency},
		responder.PIDDescriptor{PID: rdm.PIDModulationFrequencyDescription, Get: getModulationFrequencyDescription, MinGetPDL: 1},
	),
	Personalities: []responder.Personality{
		{
			Description:  "Dimmer",
			DMXFootprint: 1,
			Slots: []responder.SlotDefinition{
				{Description: "Dimmer", SlotLabelID: 0x0000, SlotType: 0x00},
			},
		},
	},
	SoftwareVersionLabel: "Alpha",
	ManufacturerLabel:    "Ja Rule",
	ModelDescription:     "Ja Rule Dimmer Device",
	ProductDetailIDs:     []uint16{0x0001, 0x0002},
	DefaultDeviceLabel:   "Ja Rule",
	SoftwareVersion:      0,
	ModelID:              ModelID,
	ProductCategory:      rdm.ProductCategoryTestEquipment,
}
