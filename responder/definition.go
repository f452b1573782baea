package responder

import "github.com/jarule/responder/rdm"

// Handler implements one direction (GET or SET) of a PID for a
// responder. header.ParamDataLength/CommandClass are informational;
// the dispatcher has already checked command-class support and, for a
// GET, the MinGetPDL lower bound before calling. Any other length
// check is the handler's own.
type Handler func(r *Responder, header *rdm.Header, paramData []byte) Result

// PIDDescriptor names a parameter and the handlers it supports. A nil
// Get or Set means that command class is unsupported for this PID, per
// spec.md §3's PIDDescriptor contract.
type PIDDescriptor struct {
	PID       rdm.PID
	Get       Handler
	MinGetPDL uint8
	Set       Handler
}

// SlotDefinition describes one DMX512 slot (channel) within a
// personality's footprint.
type SlotDefinition struct {
	Description string
	SlotLabelID uint16
	SlotType    uint8
	DefaultValue uint16
}

// Personality is one DMX512 operating mode a responder (or
// sub-device) can be switched to: a footprint and the slots within it.
type Personality struct {
	Description  string
	DMXFootprint uint16
	Slots        []SlotDefinition
}

// Sensor describes one E1.20 sensor definition. Definitions in this
// module have no sensors (Sensors is nil in both shipped models), but
// the generic SENSOR_DEFINITION/SENSOR_VALUE handlers support them so a
// future model can add some without touching responder/handlers.go.
type Sensor struct {
	Type        uint8
	Unit        uint8
	Prefix      uint8
	RangeMin    int16
	RangeMax    int16
	NormalMin   int16
	NormalMax   int16
	Recorded    bool
	Description string
}

// Definition is the static, read-only description of a responder
// model (root or sub-device): its PID table, personalities, sensors,
// and identity strings. A *Definition is shared by every Responder
// activated with that model; Responder state holds only a pointer to
// it, never a copy (spec.md §9's "state holds only a borrow... of the
// constant definition").
type Definition struct {
	PIDs                 []PIDDescriptor
	Personalities        []Personality
	Sensors              []Sensor
	SoftwareVersionLabel string
	ManufacturerLabel    string
	ModelDescription     string
	ProductDetailIDs     []uint16
	DefaultDeviceLabel   string
	SoftwareVersion      uint32
	ModelID              uint16
	ProductCategory      rdm.ProductCategory
}

func (d *Definition) findPID(pid rdm.PID) (PIDDescriptor, bool) {
	for _, desc := range d.PIDs {
		if desc.PID == pid {
			return desc, true
		}
	}
	return PIDDescriptor{}, false
}

// alwaysRequiredPIDs are the E1.20 §10 mandatory PIDs every responder
// implements; SUPPORTED_PARAMETERS excludes them from its listing.
var alwaysRequiredPIDs = map[rdm.PID]bool{
	rdm.PIDSupportedParameters: true,
	rdm.PIDDeviceInfo:          true,
	rdm.PIDSoftwareVersionLabel: true,
	rdm.PIDIdentifyDevice:      true,
	rdm.PIDDMXStartAddress:     true,
}
