package responder

import (
	"sort"

	"github.com/jarule/responder/rdm"
)

// GetSupportedParameters lists every PID in r's descriptor table except
// the E1.20 §10 always-required set, sorted ascending as most
// controllers expect.
func GetSupportedParameters(r *Responder, header *rdm.Header, paramData []byte) Result {
	var pids []uint16
	for _, desc := range r.def.PIDs {
		if alwaysRequiredPIDs[desc.PID] {
			continue
		}
		pids = append(pids, uint16(desc.PID))
	}
	sort.Slice(pids, func(i, j int) bool { return pids[i] < pids[j] })

	payload := make([]byte, 0, 2*len(pids))
	for _, pid := range pids {
		payload = rdm.PushUint16(payload, pid)
	}
	return Ack(payload)
}

// GetDeviceInfo returns the fixed-layout DEVICE_INFO block: protocol
// version, model/category/software version, DMX footprint and
// personality info, start address, sub-device count, sensor count.
func GetDeviceInfo(r *Responder, header *rdm.Header, paramData []byte) Result {
	payload := make([]byte, 0, 19)
	payload = rdm.PushUint16(payload, rdm.Version)
	payload = rdm.PushUint16(payload, r.def.ModelID)
	payload = rdm.PushUint16(payload, uint16(r.def.ProductCategory))
	payload = rdm.PushUint32(payload, r.def.SoftwareVersion)
	payload = rdm.PushUint16(payload, r.CurrentFootprint())
	payload = append(payload, r.CurrentPersonality, uint8(len(r.def.Personalities)))
	payload = rdm.PushUint16(payload, r.DMXStartAddress)
	payload = rdm.PushUint16(payload, r.SubDeviceCount)
	payload = append(payload, uint8(len(r.def.Sensors)))
	return Ack(payload)
}

// GetDeviceModelDescription returns the definition's model description
// string.
func GetDeviceModelDescription(r *Responder, header *rdm.Header, paramData []byte) Result {
	return Ack(rdm.PushString(nil, r.def.ModelDescription, 32))
}

// GetManufacturerLabel returns the definition's manufacturer label.
func GetManufacturerLabel(r *Responder, header *rdm.Header, paramData []byte) Result {
	return Ack(rdm.PushString(nil, r.def.ManufacturerLabel, 32))
}

// GetSoftwareVersionLabel returns the definition's software version
// label string.
func GetSoftwareVersionLabel(r *Responder, header *rdm.Header, paramData []byte) Result {
	return Ack(rdm.PushString(nil, r.def.SoftwareVersionLabel, 32))
}

// GetDeviceLabel returns the responder's current device label.
func GetDeviceLabel(r *Responder, header *rdm.Header, paramData []byte) Result {
	return Ack(rdm.PushString(nil, r.DeviceLabel, 32))
}

// SetDeviceLabel stores a new device label; a label longer than 32
// bytes is rejected with NACK FORMAT_ERROR.
func SetDeviceLabel(r *Responder, header *rdm.Header, paramData []byte) Result {
	if len(paramData) > 32 {
		return Nack(rdm.NRFormatError)
	}
	r.DeviceLabel = string(paramData)
	return Ack(nil)
}

// GetIdentifyDevice returns whether identify mode is on.
func GetIdentifyDevice(r *Responder, header *rdm.Header, paramData []byte) Result {
	return Ack([]byte{boolByte(r.IdentifyOn)})
}

// SetIdentifyDevice toggles identify mode; pdl must be exactly 1 and
// the value must be 0 or 1.
func SetIdentifyDevice(r *Responder, header *rdm.Header, paramData []byte) Result {
	if len(paramData) != 1 {
		return Nack(rdm.NRFormatError)
	}
	if paramData[0] > 1 {
		return Nack(rdm.NRDataOutOfRange)
	}
	r.IdentifyOn = paramData[0] == 1
	return Ack(nil)
}

// GetDMXPersonality returns the current personality index and count.
func GetDMXPersonality(r *Responder, header *rdm.Header, paramData []byte) Result {
	return Ack([]byte{r.CurrentPersonality, uint8(len(r.def.Personalities))})
}

// SetDMXPersonality switches personality, 1-based, rejecting anything
// outside [1, len(Personalities)].
func SetDMXPersonality(r *Responder, header *rdm.Header, paramData []byte) Result {
	if len(paramData) != 1 {
		return Nack(rdm.NRFormatError)
	}
	p := paramData[0]
	if p == 0 || int(p) > len(r.def.Personalities) {
		return Nack(rdm.NRDataOutOfRange)
	}
	r.CurrentPersonality = p
	return Ack(nil)
}

// GetDMXPersonalityDescription requires a 1-byte personality index and
// returns it, its footprint, and its description string.
func GetDMXPersonalityDescription(r *Responder, header *rdm.Header, paramData []byte) Result {
	if len(paramData) != 1 {
		return Nack(rdm.NRFormatError)
	}
	p := paramData[0]
	if p == 0 || int(p) > len(r.def.Personalities) {
		return Nack(rdm.NRDataOutOfRange)
	}
	pers := r.def.Personalities[p-1]
	payload := append([]byte{p}, 0, 0)
	payload[1] = byte(pers.DMXFootprint >> 8)
	payload[2] = byte(pers.DMXFootprint)
	payload = append(payload, rdm.PushString(nil, pers.Description, 32)...)
	return Ack(payload)
}

// GetDMXStartAddress returns the responder's current start address.
func GetDMXStartAddress(r *Responder, header *rdm.Header, paramData []byte) Result {
	return Ack(rdm.PushUint16(nil, r.DMXStartAddress))
}

// SetDMXStartAddress assigns a new start address, 1..512.
func SetDMXStartAddress(r *Responder, header *rdm.Header, paramData []byte) Result {
	if len(paramData) != 2 {
		return Nack(rdm.NRFormatError)
	}
	addr := rdm.ExtractUint16(paramData)
	if addr == 0 || addr > 512 {
		return Nack(rdm.NRDataOutOfRange)
	}
	r.DMXStartAddress = addr
	return Ack(nil)
}

// GetProductDetailIDList returns up to 6 product detail IDs, per
// E1.20's cap on this PID's response size.
func GetProductDetailIDList(r *Responder, header *rdm.Header, paramData []byte) Result {
	ids := r.def.ProductDetailIDs
	if len(ids) > 6 {
		ids = ids[:6]
	}
	payload := make([]byte, 0, 2*len(ids))
	for _, id := range ids {
		payload = rdm.PushUint16(payload, id)
	}
	return Ack(payload)
}

// GetSensorDefinition requires a 1-byte sensor number and returns its
// static definition.
func GetSensorDefinition(r *Responder, header *rdm.Header, paramData []byte) Result {
	if len(paramData) != 1 {
		return Nack(rdm.NRFormatError)
	}
	idx := int(paramData[0])
	if idx < 0 || idx >= len(r.def.Sensors) {
		return Nack(rdm.NRDataOutOfRange)
	}
	s := r.def.Sensors[idx]
	payload := []byte{paramData[0], s.Type, s.Unit, s.Prefix}
	payload = rdm.PushUint16(payload, uint16(s.RangeMin))
	payload = rdm.PushUint16(payload, uint16(s.RangeMax))
	payload = rdm.PushUint16(payload, uint16(s.NormalMin))
	payload = rdm.PushUint16(payload, uint16(s.NormalMax))
	payload = append(payload, boolByte(s.Recorded))
	payload = append(payload, rdm.PushString(nil, s.Description, 32)...)
	return Ack(payload)
}

// GetSensorValue requires a 1-byte sensor number; this module's models
// carry no live sensor readings, so the reply always reports zero for
// present/lowest/highest with a reading count of zero.
func GetSensorValue(r *Responder, header *rdm.Header, paramData []byte) Result {
	if len(paramData) != 1 {
		return Nack(rdm.NRFormatError)
	}
	idx := int(paramData[0])
	if idx < 0 || idx >= len(r.def.Sensors) {
		return Nack(rdm.NRDataOutOfRange)
	}
	payload := []byte{paramData[0]}
	payload = rdm.PushUint16(payload, 0)
	payload = rdm.PushUint16(payload, 0)
	payload = rdm.PushUint16(payload, 0)
	payload = rdm.PushUint16(payload, 0)
	return Ack(payload)
}

// SetFactoryDefaults resets the responder's generic state via
// ResetToFactoryDefaults. Model-specific state (ModelState) is not
// touched. Of the shipped models only the network model lists
// FACTORY_DEFAULTS (through CommonPIDs); the dimmer tables do not.
func SetFactoryDefaults(r *Responder, header *rdm.Header, paramData []byte) Result {
	if len(paramData) != 0 {
		return Nack(rdm.NRFormatError)
	}
	r.ResetToFactoryDefaults()
	return Ack(nil)
}

// GetFactoryDefaults reports whether the responder currently has its
// factory-default device label with identify off; it is a coarse
// approximation that does not look at personality, start address or
// model-specific state.
func GetFactoryDefaults(r *Responder, header *rdm.Header, paramData []byte) Result {
	isDefault := r.DeviceLabel == r.def.DefaultDeviceLabel && !r.IdentifyOn
	return Ack([]byte{boolByte(isDefault)})
}

// GetParameterDescription always NACKs DATA_OUT_OF_RANGE: this module
// defines no manufacturer-specific PIDs, so there is never a PID in
// the valid 0x8000-0xFFDF range to describe.
func GetParameterDescription(r *Responder, header *rdm.Header, paramData []byte) Result {
	return Nack(rdm.NRDataOutOfRange)
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
