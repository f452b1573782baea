package responder

// Model is a pluggable personality for the whole responder: the thing
// that owns the root Definition, any sub-devices, and whatever
// background behavior (lamp aging, network polling) the device needs.
// Engine.SetModel deactivates the current Model before activating the
// replacement, so a Model only ever sees one Engine at a time.
type Model interface {
	// ID is the model's identifier. It is not sent on the wire, and
	// neither the Engine nor the daemon reads it.
	ID() uint16

	// Activate is called by Engine.SetModel. It creates the root and
	// sub-device responders from this model's definitions and installs
	// them with e.SetResponders.
	Activate(e *Engine)

	// Deactivate is called before the Engine switches to a different
	// Model, so the outgoing model can release anything it owns.
	Deactivate(e *Engine)

	// Locked reports whether subDevice (rdm.SubDeviceRoot for the root
	// device) currently rejects SET requests with NACK WRITE_PROTECT,
	// independent of per-PID write support. The dimmer model's lock
	// PIN/state mechanism is the only current user of this hook.
	Locked(subDevice uint16) bool

	// Tasks runs periodic, non-RDM work: polling hardware, aging
	// counters, and the like. Engine.Tasks calls it; the daemon calls
	// Engine.Tasks once per RDM frame it reads, not on any fixed
	// schedule.
	Tasks(e *Engine)
}
