package responder

import "github.com/jarule/responder/rdm"

// Result is a handler's outcome: an ACK with payload, a NACK with
// reason, or no response at all. Handlers never return a Go error;
// error is reserved for responder-definition programming mistakes
// detected at startup, not wire-level failures.
type Result struct {
	kind    resultKind
	payload []byte
	reason  rdm.NackReason
}

type resultKind int

const (
	kindAck resultKind = iota
	kindNack
	kindNoResponse
)

// Ack builds a successful result carrying the given response payload.
func Ack(payload []byte) Result {
	return Result{kind: kindAck, payload: payload}
}

// Nack builds a NACK result with the given reason.
func Nack(reason rdm.NackReason) Result {
	return Result{kind: kindNack, reason: reason}
}

// NoResponseResult is a Result for which the Engine sends no reply. No
// handler in this module returns it; broadcasts and unmatched DUB frames
// are silenced by Engine.Receive itself.
var NoResponseResult = Result{kind: kindNoResponse}

// IsAck reports whether the result is a successful ACK.
func (r Result) IsAck() bool { return r.kind == kindAck }

// Payload returns the ACK payload, or nil for a NACK or no-response
// result.
func (r Result) Payload() []byte { return r.payload }

// NackReason returns the NACK reason and true, or (0, false) if the
// result is not a NACK.
func (r Result) NackReason() (rdm.NackReason, bool) {
	if r.kind != kindNack {
		return 0, false
	}
	return r.reason, true
}
