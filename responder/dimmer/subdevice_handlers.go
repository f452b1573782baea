package dimmer

import (
	"github.com/jarule/responder/rdm"
	"github.com/jarule/responder/responder"
)

func subOf(r *responder.Responder) *subDeviceState {
	return r.ModelState.(*subDeviceState)
}

func getIdentifyMode(r *responder.Responder, header *rdm.Header, paramData []byte) responder.Result {
	return responder.Ack([]byte{subOf(r).identifyMode})
}

func setIdentifyMode(r *responder.Responder, header *rdm.Header, paramData []byte) responder.Result {
	if len(paramData) != 1 {
		return responder.Nack(rdm.NRFormatError)
	}
	mode := paramData[0]
	if mode != identifyModeQuiet && mode != identifyModeLoud {
		return responder.Nack(rdm.NRDataOutOfRange)
	}
	subOf(r).identifyMode = mode
	return responder.Ack(nil)
}

func getBurnIn(r *responder.Responder, header *rdm.Header, paramData []byte) responder.Result {
	return responder.Ack([]byte{subOf(r).burnIn})
}

func setBurnIn(r *responder.Responder, header *rdm.Header, paramData []byte) responder.Result {
	if len(paramData) != 1 {
		return responder.Nack(rdm.NRFormatError)
	}
	subOf(r).burnIn = paramData[0]
	return responder.Ack(nil)
}

func getDimmerInfo(r *responder.Responder, header *rdm.Header, paramData []byte) responder.Result {
	payload := rdm.PushUint16(nil, 0)      // min level lower
	payload = rdm.PushUint16(payload, 0xfffe) // min level upper
	payload = rdm.PushUint16(payload, 0)      // max level lower
	payload = rdm.PushUint16(payload, 0xfffe) // max level upper
	payload = append(payload, NumberOfCurves, 8, 1)
	return responder.Ack(payload)
}

func getMinimumLevel(r *responder.Responder, header *rdm.Header, paramData []byte) responder.Result {
	s := subOf(r)
	payload := rdm.PushUint16(nil, s.minLevelIncreasing)
	payload = rdm.PushUint16(payload, s.minLevelDecreasing)
	payload = append(payload, s.onBelowMin)
	return responder.Ack(payload)
}

func setMinimumLevel(r *responder.Responder, header *rdm.Header, paramData []byte) responder.Result {
	if len(paramData) != 5 {
		return responder.Nack(rdm.NRFormatError)
	}
	increasing := rdm.ExtractUint16(paramData[0:2])
	decreasing := rdm.ExtractUint16(paramData[2:4])
	onBelowMin := paramData[4]
	if onBelowMin > 1 {
		return responder.Nack(rdm.NRDataOutOfRange)
	}
	s := subOf(r)
	s.minLevelIncreasing = increasing
	s.minLevelDecreasing = decreasing
	s.onBelowMin = onBelowMin
	return responder.Ack(nil)
}

func getMaximumLevel(r *responder.Responder, header *rdm.Header, paramData []byte) responder.Result {
	return responder.Ack(rdm.PushUint16(nil, subOf(r).maxLevel))
}

func setMaximumLevel(r *responder.Responder, header *rdm.Header, paramData []byte) responder.Result {
	if len(paramData) != 2 {
		return responder.Nack(rdm.NRFormatError)
	}
	subOf(r).maxLevel = rdm.ExtractUint16(paramData)
	return responder.Ack(nil)
}

func getCurve(r *responder.Responder, header *rdm.Header, paramData []byte) responder.Result {
	return responder.Ack([]byte{subOf(r).curve, NumberOfCurves})
}

// setCurve rejects odd curve numbers on sub-devices whose zero-based
// index is even: a deliberate, documented quirk in the source firmware
// to exercise controllers' handling of per-sub-device capability
// variation.
func setCurve(r *responder.Responder, header *rdm.Header, paramData []byte) responder.Result {
	if len(paramData) != 1 {
		return responder.Nack(rdm.NRFormatError)
	}
	curve := paramData[0]
	if curve == 0 || curve > NumberOfCurves {
		return responder.Nack(rdm.NRDataOutOfRange)
	}
	if curve%2 == 1 && r.Index%2 == 0 {
		return responder.Nack(rdm.NRDataOutOfRange)
	}
	subOf(r).curve = curve
	return responder.Ack(nil)
}

func getCurveDescription(r *responder.Responder, header *rdm.Header, paramData []byte) responder.Result {
	curve := paramData[0]
	if curve == 0 || curve > NumberOfCurves {
		return responder.Nack(rdm.NRDataOutOfRange)
	}
	payload := append([]byte{curve}, rdm.PushString(nil, curveDescriptions[curve-1], 32)...)
	return responder.Ack(payload)
}

func getOutputResponseTime(r *responder.Responder, header *rdm.Header, paramData []byte) responder.Result {
	return responder.Ack([]byte{subOf(r).outputResponseTime, NumberOfOutputResponseTimes})
}

func setOutputResponseTime(r *responder.Responder, header *rdm.Header, paramData []byte) responder.Result {
	if len(paramData) != 1 {
		return responder.Nack(rdm.NRFormatError)
	}
	setting := paramData[0]
	if setting == 0 || setting > NumberOfOutputResponseTimes {
		return responder.Nack(rdm.NRDataOutOfRange)
	}
	subOf(r).outputResponseTime = setting
	return responder.Ack(nil)
}

func getOutputResponseDescription(r *responder.Responder, header *rdm.Header, paramData []byte) responder.Result {
	setting := paramData[0]
	if setting == 0 || setting > NumberOfOutputResponseTimes {
		return responder.Nack(rdm.NRDataOutOfRange)
	}
	payload := append([]byte{setting}, rdm.PushString(nil, outputResponseDescriptions[setting-1], 32)...)
	return responder.Ack(payload)
}

func getModulationFrequency(r *responder.Responder, header *rdm.Header, paramData []byte) responder.Result {
	return responder.Ack([]byte{subOf(r).modulationFrequency, NumberOfModulationFrequencies})
}

func setModulationFrequency(r *responder.Responder, header *rdm.Header, paramData []byte) responder.Result {
	if len(paramData) != 1 {
		return responder.Nack(rdm.NRFormatError)
	}
	setting := paramData[0]
	if setting == 0 || setting > NumberOfModulationFrequencies {
		return responder.Nack(rdm.NRDataOutOfRange)
	}
	subOf(r).modulationFrequency = setting
	return responder.Ack(nil)
}

func getModulationFrequencyDescription(r *responder.Responder, header *rdm.Header, paramData []byte) responder.Result {
	setting := paramData[0]
	if setting == 0 || setting > NumberOfModulationFrequencies {
		return responder.Nack(rdm.NRDataOutOfRange)
	}
	freq := modulationFrequencies[setting-1]
	payload := append([]byte{setting}, rdm.PushUint32(nil, freq.hz)...)
	payload = append(payload, rdm.PushString(nil, freq.description, 32)...)
	return responder.Ack(payload)
}
