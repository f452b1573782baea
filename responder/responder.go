package responder

import "github.com/jarule/responder/uid"

// UnpatchedStartAddress is the sentinel DMX_START_ADDRESS value for a
// sub-device that has not been assigned a slot range.
const UnpatchedStartAddress = 0xffff

// Responder holds the mutable, per-device state shared by every PID:
// the root device or one sub-device. It borrows its Definition rather
// than copying it (spec.md §9's cyclic-reference resolution).
type Responder struct {
	def *Definition

	UID                uid.UID
	Index              uint16 // sub-device number this responder answers to; 0 for root.
	IsSubDevice         bool
	DMXStartAddress    uint16 // 1..512, or UnpatchedStartAddress.
	CurrentPersonality uint8  // 1-based index into def.Personalities.
	DeviceLabel        string
	IsMuted            bool
	IdentifyOn         bool
	SubDeviceCount     uint16
	QueuedMessageCount uint8

	// ModelState holds whatever per-responder state a Model needs beyond
	// the generic fields above (e.g. the dimmer model's scene table or
	// per-sub-device curve/level settings). Generic handlers never read
	// it; model-specific handlers type-assert it to their own type.
	ModelState interface{}
}

// NewResponder creates a responder bound to def, already reset to its
// factory defaults.
func NewResponder(def *Definition, u uid.UID, index uint16, isSubDevice bool) *Responder {
	r := &Responder{
		def:         def,
		UID:         u,
		Index:       index,
		IsSubDevice: isSubDevice,
	}
	r.ResetToFactoryDefaults()
	return r
}

// Definition returns the responder's static definition.
func (r *Responder) Definition() *Definition {
	return r.def
}

// SetDefinition rebinds the responder to a new definition. The shipped
// models do not call it; their Activate builds fresh responders.
func (r *Responder) SetDefinition(def *Definition) {
	r.def = def
}

// ResetToFactoryDefaults restores the fields the generic PID handlers
// own to their definition-supplied defaults. Model-specific state
// (scenes, lock, network config, ...) is reset separately by each
// model's own Activate.
func (r *Responder) ResetToFactoryDefaults() {
	r.DeviceLabel = r.def.DefaultDeviceLabel
	r.IsMuted = false
	r.IdentifyOn = false
	r.QueuedMessageCount = 0
	if len(r.def.Personalities) > 0 {
		r.CurrentPersonality = 1
	} else {
		r.CurrentPersonality = 0
	}
	r.DMXStartAddress = UnpatchedStartAddress
}

// CurrentFootprint returns the DMX footprint of the active personality,
// or 0 if the responder has none (e.g. the dimmer root device).
func (r *Responder) CurrentFootprint() uint16 {
	if r.CurrentPersonality == 0 || int(r.CurrentPersonality) > len(r.def.Personalities) {
		return 0
	}
	return r.def.Personalities[r.CurrentPersonality-1].DMXFootprint
}
