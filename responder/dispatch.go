package responder

import "github.com/jarule/responder/rdm"

// Dispatch resolves header.PID against r's definition and invokes the
// matching handler, applying E1.20 §10's generic PID-handling rules
// before the handler ever sees the request:
//
//   - unknown PID                              -> NACK UNKNOWN_PID
//   - command class unsupported for this PID   -> NACK UNSUPPORTED_COMMAND_CLASS
//   - GET with fewer than MinGetPDL param bytes -> NACK FORMAT_ERROR
//
// Discovery command class and sub-device routing are handled by the
// Engine before Dispatch is ever called; Dispatch only ever sees
// GET_COMMAND or SET_COMMAND.
func Dispatch(r *Responder, header *rdm.Header, paramData []byte) Result {
	desc, ok := r.def.findPID(header.PID)
	if !ok {
		return Nack(rdm.NRUnknownPID)
	}

	switch header.CommandClass {
	case rdm.GetCommand:
		if desc.Get == nil {
			return Nack(rdm.NRUnsupportedCommandClass)
		}
		if uint8(len(paramData)) < desc.MinGetPDL {
			return Nack(rdm.NRFormatError)
		}
		return desc.Get(r, header, paramData)
	case rdm.SetCommand:
		if desc.Set == nil {
			return Nack(rdm.NRUnsupportedCommandClass)
		}
		return desc.Set(r, header, paramData)
	default:
		return Nack(rdm.NRUnsupportedCommandClass)
	}
}
