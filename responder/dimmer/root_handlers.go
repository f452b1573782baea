package dimmer

import (
	"github.com/jarule/responder/rdm"
	"github.com/jarule/responder/responder"
)

func rootOf(r *responder.Responder) *rootState {
	return r.ModelState.(*rootState)
}

func capturePreset(r *responder.Responder, header *rdm.Header, paramData []byte) responder.Result {
	if len(paramData) != 8 {
		return responder.Nack(rdm.NRFormatError)
	}
	sceneIndex := rdm.ExtractUint16(paramData[0:2])
	upFade := rdm.ExtractUint16(paramData[2:4])
	downFade := rdm.ExtractUint16(paramData[4:6])
	wait := rdm.ExtractUint16(paramData[6:8])

	if sceneIndex == 0 || sceneIndex > NumberOfScenes {
		return responder.Nack(rdm.NRDataOutOfRange)
	}

	state := rootOf(r)
	sc := &state.scenes[sceneIndex-1]
	if sc.state == presetProgrammedReadOnly {
		return responder.Nack(rdm.NRWriteProtect)
	}
	sc.upFadeTime = upFade
	sc.downFadeTime = downFade
	sc.waitTime = wait
	sc.state = presetProgrammed
	return responder.Ack(nil)
}

func getPresetPlayback(r *responder.Responder, header *rdm.Header, paramData []byte) responder.Result {
	state := rootOf(r)
	payload := rdm.PushUint16(nil, state.playbackMode)
	payload = append(payload, state.playbackLevel)
	return responder.Ack(payload)
}

func setPresetPlayback(r *responder.Responder, header *rdm.Header, paramData []byte) responder.Result {
	if len(paramData) != 3 {
		return responder.Nack(rdm.NRFormatError)
	}
	mode := rdm.ExtractUint16(paramData[0:2])
	if mode > NumberOfScenes && mode != playbackAll {
		return responder.Nack(rdm.NRDataOutOfRange)
	}
	state := rootOf(r)
	state.playbackMode = mode
	state.playbackLevel = paramData[2]
	return responder.Ack(nil)
}

func activeSubDevices(r *responder.Responder) []*responder.Responder {
	return rootOf(r).subs
}

func getDMXBlockAddress(r *responder.Responder, header *rdm.Header, paramData []byte) responder.Result {
	subs := activeSubDevices(r)

	var totalFootprint uint16
	var expected uint16
	contiguous := true
	for _, sd := range subs {
		fp := sd.CurrentFootprint()
		totalFootprint += fp
		if expected != 0 {
			if expected != sd.DMXStartAddress {
				contiguous = false
			} else {
				expected += fp
			}
		} else {
			expected = sd.DMXStartAddress + fp
		}
	}

	payload := rdm.PushUint16(nil, totalFootprint)
	startAddr := uint16(invalidDMXStartAddress)
	if contiguous && len(subs) > 0 {
		startAddr = subs[0].DMXStartAddress
	}
	payload = rdm.PushUint16(payload, startAddr)
	return responder.Ack(payload)
}

func setDMXBlockAddress(r *responder.Responder, header *rdm.Header, paramData []byte) responder.Result {
	if len(paramData) != 2 {
		return responder.Nack(rdm.NRFormatError)
	}
	startAddress := rdm.ExtractUint16(paramData)
	if startAddress == 0 || startAddress > maxDMXStartAddress {
		return responder.Nack(rdm.NRDataOutOfRange)
	}
	subs := activeSubDevices(r)
	if !resetToBlockAddress(subs, startAddress) {
		return responder.Nack(rdm.NRDataOutOfRange)
	}
	return responder.Ack(nil)
}

func getDMXFailMode(r *responder.Responder, header *rdm.Header, paramData []byte) responder.Result {
	state := rootOf(r)
	payload := rdm.PushUint16(nil, state.failScene)
	payload = rdm.PushUint16(payload, state.failLossOfSignalDelay)
	payload = rdm.PushUint16(payload, state.failHoldTime)
	payload = append(payload, state.failLevel)
	return responder.Ack(payload)
}

func setDMXFailMode(r *responder.Responder, header *rdm.Header, paramData []byte) responder.Result {
	if len(paramData) != 7 {
		return responder.Nack(rdm.NRFormatError)
	}
	sceneIndex := rdm.ExtractUint16(paramData[0:2])
	delay := rdm.ExtractUint16(paramData[2:4])
	hold := rdm.ExtractUint16(paramData[4:6])
	if sceneIndex > NumberOfScenes && sceneIndex != playbackAll {
		return responder.Nack(rdm.NRDataOutOfRange)
	}
	state := rootOf(r)
	state.failScene = sceneIndex
	state.failLossOfSignalDelay = delay
	state.failHoldTime = hold
	state.failLevel = paramData[6]
	return responder.Ack(nil)
}

func getDMXStartupMode(r *responder.Responder, header *rdm.Header, paramData []byte) responder.Result {
	state := rootOf(r)
	payload := rdm.PushUint16(nil, state.startupScene)
	payload = rdm.PushUint16(payload, state.startupDelay)
	payload = rdm.PushUint16(payload, state.startupHold)
	payload = append(payload, state.startupLevel)
	return responder.Ack(payload)
}

func setDMXStartupMode(r *responder.Responder, header *rdm.Header, paramData []byte) responder.Result {
	if len(paramData) != 7 {
		return responder.Nack(rdm.NRFormatError)
	}
	sceneIndex := rdm.ExtractUint16(paramData[0:2])
	delay := rdm.ExtractUint16(paramData[2:4])
	hold := rdm.ExtractUint16(paramData[4:6])
	if sceneIndex > NumberOfScenes && sceneIndex != playbackAll {
		return responder.Nack(rdm.NRDataOutOfRange)
	}
	state := rootOf(r)
	state.startupScene = sceneIndex
	state.startupDelay = delay
	state.startupHold = hold
	state.startupLevel = paramData[6]
	return responder.Ack(nil)
}

func getPowerOnSelfTest(r *responder.Responder, header *rdm.Header, paramData []byte) responder.Result {
	return responder.Ack([]byte{boolByte(rootOf(r).powerOnSelfTest)})
}

func setPowerOnSelfTest(r *responder.Responder, header *rdm.Header, paramData []byte) responder.Result {
	if len(paramData) != 1 {
		return responder.Nack(rdm.NRFormatError)
	}
	if paramData[0] > 1 {
		return responder.Nack(rdm.NRDataOutOfRange)
	}
	rootOf(r).powerOnSelfTest = paramData[0] == 1
	return responder.Ack(nil)
}

func getLockPin(r *responder.Responder, header *rdm.Header, paramData []byte) responder.Result {
	return responder.Ack(rdm.PushUint16(nil, rootOf(r).pinCode))
}

func setLockPin(r *responder.Responder, header *rdm.Header, paramData []byte) responder.Result {
	if len(paramData) != 4 {
		return responder.Nack(rdm.NRFormatError)
	}
	newPin := rdm.ExtractUint16(paramData[0:2])
	oldPin := rdm.ExtractUint16(paramData[2:4])
	if newPin > maxPinCode {
		return responder.Nack(rdm.NRFormatError)
	}
	state := rootOf(r)
	if oldPin != state.pinCode {
		return responder.Nack(rdm.NRDataOutOfRange)
	}
	state.pinCode = newPin
	return responder.Ack(nil)
}

func getLockState(r *responder.Responder, header *rdm.Header, paramData []byte) responder.Result {
	state := rootOf(r)
	// We don't include the unlocked state in the reported count.
	return responder.Ack([]byte{state.lockState, NumberOfLockStates - 1})
}

func setLockState(r *responder.Responder, header *rdm.Header, paramData []byte) responder.Result {
	if len(paramData) != 3 {
		return responder.Nack(rdm.NRFormatError)
	}
	pin := rdm.ExtractUint16(paramData[0:2])
	lockState := paramData[2]
	state := rootOf(r)
	if pin != state.pinCode || lockState >= NumberOfLockStates {
		return responder.Nack(rdm.NRDataOutOfRange)
	}
	state.lockState = lockState
	return responder.Ack(nil)
}

func getLockStateDescription(r *responder.Responder, header *rdm.Header, paramData []byte) responder.Result {
	lockState := paramData[0]
	if lockState == 0 || lockState >= NumberOfLockStates {
		return responder.Nack(rdm.NRDataOutOfRange)
	}
	payload := append([]byte{lockState}, rdm.PushString(nil, lockStateDescriptions[lockState], 32)...)
	return responder.Ack(payload)
}

func getPresetInfo(r *responder.Responder, header *rdm.Header, paramData []byte) responder.Result {
	payload := []byte{1, 1, 1, 1, 1, 1} // level, sequence, split times, fail-infinite-delay, fail-infinite-hold, startup-infinite-hold
	payload = rdm.PushUint16(payload, NumberOfScenes)
	payload = rdm.PushUint16(payload, 0)      // min fade time
	payload = rdm.PushUint16(payload, 0xfffe) // max fade time
	payload = rdm.PushUint16(payload, 0)      // min wait time
	payload = rdm.PushUint16(payload, 0xfffe) // max wait time
	payload = rdm.PushUint16(payload, 0)      // min fail delay time
	payload = rdm.PushUint16(payload, 0xfffe) // max fail delay time
	payload = rdm.PushUint16(payload, 0)      // min fail hold time
	payload = rdm.PushUint16(payload, 0xfffe) // max fail hold time
	payload = rdm.PushUint16(payload, 0)      // min startup delay time
	payload = rdm.PushUint16(payload, 0xfffe) // max startup delay time
	payload = rdm.PushUint16(payload, 0)      // min startup hold time
	payload = rdm.PushUint16(payload, 0xfffe) // max startup hold time
	return responder.Ack(payload)
}

func getPresetStatus(r *responder.Responder, header *rdm.Header, paramData []byte) responder.Result {
	sceneIndex := rdm.ExtractUint16(paramData[0:2])
	if sceneIndex == 0 || sceneIndex > NumberOfScenes {
		return responder.Nack(rdm.NRDataOutOfRange)
	}
	sc := rootOf(r).scenes[sceneIndex-1]
	payload := rdm.PushUint16(nil, sceneIndex)
	payload = rdm.PushUint16(payload, sc.upFadeTime)
	payload = rdm.PushUint16(payload, sc.downFadeTime)
	payload = rdm.PushUint16(payload, sc.waitTime)
	payload = append(payload, sc.state)
	return responder.Ack(payload)
}

func setPresetStatus(r *responder.Responder, header *rdm.Header, paramData []byte) responder.Result {
	if len(paramData) != 9 {
		return responder.Nack(rdm.NRFormatError)
	}
	sceneIndex := rdm.ExtractUint16(paramData[0:2])
	upFade := rdm.ExtractUint16(paramData[2:4])
	downFade := rdm.ExtractUint16(paramData[4:6])
	wait := rdm.ExtractUint16(paramData[6:8])
	clearPreset := paramData[8]

	if sceneIndex == 0 || sceneIndex > NumberOfScenes {
		return responder.Nack(rdm.NRDataOutOfRange)
	}

	state := rootOf(r)
	sc := &state.scenes[sceneIndex-1]
	if sc.state == presetProgrammedReadOnly {
		return responder.Nack(rdm.NRWriteProtect)
	}
	if clearPreset > 1 {
		return responder.Nack(rdm.NRDataOutOfRange)
	}

	if clearPreset == 1 {
		sc.upFadeTime = 0
		sc.downFadeTime = 0
		sc.waitTime = 0
		sc.state = presetNotProgrammed
	} else {
		// Timing-only update: leave programmed_state untouched.
		sc.upFadeTime = upFade
		sc.downFadeTime = downFade
		sc.waitTime = wait
	}
	return responder.Ack(nil)
}

func getPresetMergeMode(r *responder.Responder, header *rdm.Header, paramData []byte) responder.Result {
	return responder.Ack([]byte{rootOf(r).mergeMode})
}

func setPresetMergeMode(r *responder.Responder, header *rdm.Header, paramData []byte) responder.Result {
	if len(paramData) != 1 {
		return responder.Nack(rdm.NRFormatError)
	}
	mode := paramData[0]
	if mode > mergeModeDMXOnly {
		return responder.Nack(rdm.NRDataOutOfRange)
	}
	rootOf(r).mergeMode = mode
	return responder.Ack(nil)
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
