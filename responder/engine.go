package responder

import (
	"log/slog"

	"github.com/jarule/responder/gpio"
	"github.com/jarule/responder/rdm"
	"github.com/jarule/responder/uid"
)

// Engine owns the root responder, its sub-devices, the active Model,
// and the collaborators (Clock, logger) every PID handler needs
// indirectly. It is the only thing transceiver frame bytes pass
// through: Receive is the entire responder side of the wire.
type Engine struct {
	Root       *Responder
	SubDevices []*Responder

	model  Model
	clock  Clock
	logger *slog.Logger

	indicator gpio.Indicator
	isMuted   bool
}

// NewEngine builds an Engine for a single root responder and no
// sub-devices yet; SetModel populates Root/SubDevices and activates m.
func NewEngine(clock Clock, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{clock: clock, logger: logger, indicator: gpio.Null}
}

// Clock returns the engine's time source, for handlers that need it.
func (e *Engine) Clock() Clock { return e.clock }

// Logger returns the engine's structured logger.
func (e *Engine) Logger() *slog.Logger { return e.logger }

// SetIndicator installs the collaborator driving the identify/mute
// status LEDs (spec.md §6 GPIO_Set). Defaults to gpio.Null.
func (e *Engine) SetIndicator(ind gpio.Indicator) {
	if ind == nil {
		ind = gpio.Null
	}
	e.indicator = ind
}

// updateIndicator reflects current identify/mute state onto the
// indicator LEDs: identify is lit if any responder (root or
// sub-device) has identify mode on.
func (e *Engine) updateIndicator() {
	identify := e.Root != nil && e.Root.IdentifyOn
	for _, sd := range e.SubDevices {
		identify = identify || sd.IdentifyOn
	}
	if err := e.indicator.Set(identify, e.isMuted); err != nil {
		e.logger.Error("failed to set indicator", "error", err)
	}
}

// SetModel deactivates the current model (if any), lets m populate
// Root/SubDevices via its own construction logic, and activates it.
// Model implementations call e.SetResponders from within Activate.
func (e *Engine) SetModel(m Model) {
	if e.model != nil {
		e.model.Deactivate(e)
	}
	e.model = m
	e.isMuted = false
	m.Activate(e)
	e.updateIndicator()
}

// SetResponders is called by a Model's Activate to install the root
// and sub-device responders it just built.
func (e *Engine) SetResponders(root *Responder, subDevices []*Responder) {
	e.Root = root
	e.SubDevices = subDevices
	e.Root.SubDeviceCount = uint16(len(subDevices))
}

// Tasks runs the active model's periodic work, if any.
func (e *Engine) Tasks() {
	if e.model != nil {
		e.model.Tasks(e)
	}
}

// Receive decodes and processes one incoming RDM frame, returning the
// bytes to transmit in reply, or nil if no reply should be sent
// (malformed frame, broadcast request, unanswered discovery, muted
// DUB). Receive never panics: malformed input is always dropped
// silently, matching E1.20's frame-level error handling.
func (e *Engine) Receive(frame []byte) []byte {
	header, paramData, err := rdm.Decode(frame)
	if err != nil {
		e.logger.Debug("dropping malformed frame", "error", err)
		return nil
	}

	if !uid.RequiresAction(e.Root.UID, header.DestUID) {
		return nil
	}

	if header.CommandClass == rdm.DiscoveryCommand {
		return e.handleDiscovery(&header, paramData)
	}

	broadcast := header.DestUID.IsBroadcast() || header.DestUID.IsManufacturerBroadcast()
	if broadcast && header.CommandClass == rdm.GetCommand {
		// GET is never meaningful as a broadcast; E1.20 requires silent drop.
		return nil
	}

	result := e.route(&header, paramData)
	e.updateIndicator()
	if broadcast {
		return nil
	}
	return e.respond(&header, result)
}

// route dispatches header to the root responder, one sub-device, or
// (for SUBDEVICE_ALL on a SET) every sub-device in turn, per spec.md
// §4.E's sub-device addressing rules.
func (e *Engine) route(header *rdm.Header, paramData []byte) Result {
	switch header.SubDevice {
	case rdm.SubDeviceRoot:
		return e.dispatchTo(e.Root, header, paramData)

	case rdm.SubDeviceAll:
		if header.CommandClass == rdm.GetCommand {
			// GET to SUBDEVICE_ALL is invalid; there is no single
			// reply body that could represent every sub-device.
			return Nack(rdm.NRSubDeviceOutOfRange)
		}
		var last Result
		any := false
		for _, sd := range e.SubDevices {
			last = e.dispatchTo(sd, header, paramData)
			any = true
		}
		if !any {
			return Nack(rdm.NRSubDeviceOutOfRange)
		}
		// The original firmware's own comment concedes there is no
		// well-defined single reply for a broadcast SET; it returns
		// the last sub-device's result, and so do we.
		return last

	default:
		idx := int(header.SubDevice)
		for _, sd := range e.SubDevices {
			if sd.Index == uint16(idx) {
				return e.dispatchTo(sd, header, paramData)
			}
		}
		return Nack(rdm.NRSubDeviceOutOfRange)
	}
}

func (e *Engine) dispatchTo(r *Responder, header *rdm.Header, paramData []byte) Result {
	if header.CommandClass == rdm.SetCommand && e.model != nil && e.model.Locked(header.SubDevice) {
		return Nack(rdm.NRWriteProtect)
	}
	return Dispatch(r, header, paramData)
}

// respond turns a handler Result into a wire-ready response frame
// addressed back to the requester, or nil for NoResponseResult.
func (e *Engine) respond(header *rdm.Header, result Result) []byte {
	reply := rdm.Header{
		DestUID:        header.SrcUID,
		SrcUID:         e.Root.UID,
		TransactionNum: header.TransactionNum,
		PortID:         uint8(rdm.ResponseAck),
		SubDevice:      header.SubDevice,
		CommandClass:   responseClass(header.CommandClass),
		PID:            header.PID,
	}

	var payload []byte
	switch result.kind {
	case kindAck:
		reply.PortID = uint8(rdm.ResponseAck)
		payload = result.payload
	case kindNack:
		reply.PortID = uint8(rdm.ResponseNackReason)
		payload = rdm.PushUint16(nil, uint16(result.reason))
	case kindNoResponse:
		return nil
	}

	buf, err := rdm.Encode(reply, payload)
	if err != nil {
		e.logger.Error("failed to encode response", "error", err)
		return nil
	}
	return buf
}

func responseClass(cc rdm.CommandClass) rdm.CommandClass {
	switch cc {
	case rdm.GetCommand:
		return rdm.GetCommandResponse
	case rdm.SetCommand:
		return rdm.SetCommandResponse
	default:
		return cc
	}
}

// handleDiscovery answers DISC_UNIQUE_BRANCH/DISC_MUTE/DISC_UN_MUTE at
// the root responder only; sub-device field is ignored for every
// discovery message (spec.md §4.B).
func (e *Engine) handleDiscovery(header *rdm.Header, paramData []byte) []byte {
	switch header.PID {
	case rdm.PIDDiscUniqueBranch:
		if e.isMuted || len(paramData) < 2*uid.Size {
			return nil
		}
		lower, err := uid.Decode(paramData[:uid.Size])
		if err != nil {
			return nil
		}
		upper, err := uid.Decode(paramData[uid.Size : 2*uid.Size])
		if err != nil {
			return nil
		}
		if !e.Root.UID.Within(lower, upper) {
			return nil
		}
		dub := make([]byte, uid.DUBResponseSize)
		uid.EncodeDUBResponse(dub, e.Root.UID)
		return dub

	case rdm.PIDDiscMute, rdm.PIDDiscUnMute:
		e.isMuted = header.PID == rdm.PIDDiscMute
		e.updateIndicator()
		reply := rdm.Header{
			DestUID:        header.SrcUID,
			SrcUID:         e.Root.UID,
			TransactionNum: header.TransactionNum,
			PortID:         uint8(rdm.ResponseAck),
			SubDevice:      rdm.SubDeviceRoot,
			CommandClass:   rdm.DiscoveryCommandResponse,
			PID:            header.PID,
		}
		// Control field: managed_proxy=0, disc_responder=0,
		// boot_loader=0, proxied_device=0; we are not a proxy.
		payload := rdm.PushUint16(nil, 0x0000)
		buf, err := rdm.Encode(reply, payload)
		if err != nil {
			return nil
		}
		return buf

	default:
		return nil
	}
}
