// Package dimmer implements the Ja Rule dimmer model: a root device
// exposing E1.37-1 preset/scene and lock PIDs, plus four sub-devices
// (deliberately indexed 1, 3, 4, 5) exposing per-channel level, curve,
// response-time, and modulation-frequency PIDs.
package dimmer

import (
	"github.com/jarule/responder/rdm"
	"github.com/jarule/responder/responder"
	"github.com/jarule/responder/uid"
)

const (
	NumberOfSubDevices           = 4
	NumberOfScenes               = 3
	NumberOfLockStates           = 3
	NumberOfCurves               = 4
	NumberOfOutputResponseTimes  = 2
	NumberOfModulationFrequencies = 4
	ModelID                      = 0x0001
	initialStartAddress          = 1
	maxPinCode                   = 9999
	maxDMXStartAddress           = 512
	invalidDMXStartAddress       = 0xffff

	playbackOff = 0
	playbackAll = 0xffff

	presetNotProgrammed      = 0
	presetProgrammed         = 1
	presetProgrammedReadOnly = 2

	lockStateUnlocked           = 0
	lockStateSubDevicesLocked   = 1
	lockStateAllLocked          = 2

	identifyModeQuiet = 0
	identifyModeLoud  = 1

	mergeModeDefault = 0
	mergeModeDMXOnly = 3
)

var lockStateDescriptions = [NumberOfLockStates]string{
	"Unlocked",
	"Subdevices locked",
	"Root & subdevices locked",
}

var curveDescriptions = [NumberOfCurves]string{
	"Linear",
	"Modified Linear",
	"Square",
	"Modified Square",
}

var outputResponseDescriptions = [NumberOfOutputResponseTimes]string{
	"Fast",
	"Slow",
}

type modulationFrequency struct {
	hz          uint32
	description string
}

var modulationFrequencies = [NumberOfModulationFrequencies]modulationFrequency{
	{50, "50 Hz"},
	{60, "60 Hz"},
	{1000, "1000 Hz"},
	{2000, "2000 Hz"},
}

// scene is one CAPTURE_PRESET/PRESET_STATUS slot.
type scene struct {
	upFadeTime   uint16
	downFadeTime uint16
	waitTime     uint16
	state        uint8
}

// rootState is the dimmer root's ModelState: presets, fail/startup
// modes, lock, and self-test.
type rootState struct {
	// subs lets root-level handlers (DMX_BLOCK_ADDRESS) see every
	// channel's footprint and start address without threading the
	// Engine through Dispatch.
	subs []*responder.Responder

	scenes [NumberOfScenes]scene

	playbackMode  uint16
	playbackLevel uint8

	startupScene uint16
	startupDelay uint16
	startupHold  uint16
	startupLevel uint8

	failScene            uint16
	failLossOfSignalDelay uint16
	failHoldTime         uint16
	failLevel            uint8

	pinCode   uint16
	lockState uint8
	mergeMode uint8

	powerOnSelfTest bool
}

// subDeviceState is one dimmer channel's ModelState.
type subDeviceState struct {
	minLevelIncreasing uint16
	minLevelDecreasing uint16
	maxLevel           uint16
	onBelowMin         uint8
	identifyMode       uint8
	burnIn             uint8
	curve              uint8
	outputResponseTime uint8
	modulationFrequency uint8
}

// Model is the dimmer responder.Model: one root plus
// NumberOfSubDevices channels.
type Model struct {
	rootUID uid.UID
	root    *responder.Responder
	subs    []*responder.Responder
}

// New constructs an un-activated dimmer Model addressed as rootUID.
// Call Engine.SetModel to wire it up.
func New(rootUID uid.UID) *Model {
	return &Model{rootUID: rootUID}
}

func (m *Model) ID() uint16 { return ModelID }

func (m *Model) Activate(e *responder.Engine) {
	root := responder.NewResponder(rootResponderDefinition, m.rootUID, rdm.SubDeviceRoot, false)
	root.ModelState = freshRootState()

	subs := make([]*responder.Responder, 0, NumberOfSubDevices)
	index := uint16(1)
	for i := 0; i < NumberOfSubDevices; i++ {
		if i == 1 {
			// Deliberate gap at sub-device 2: sub-devices need not be
			// contiguous.
			index++
		}
		sd := responder.NewResponder(subDeviceResponderDefinition, m.rootUID, index, true)
		sd.ModelState = freshSubDeviceState()
		subs = append(subs, sd)
		index++
	}
	root.SubDeviceCount = uint16(len(subs))
	root.ModelState.(*rootState).subs = subs

	if !resetToBlockAddress(subs, initialStartAddress) {
		for _, sd := range subs {
			sd.DMXStartAddress = initialStartAddress
		}
	}

	m.root = root
	m.subs = subs
	e.SetResponders(root, subs)
}

// RootState exposes the root's dimmer-specific state (the root
// responder's ModelState).
func (m *Model) RootState() interface{} {
	return m.root.ModelState
}

func (m *Model) Deactivate(e *responder.Engine) {}

func (m *Model) Locked(subDevice uint16) bool {
	state := m.root.ModelState.(*rootState)
	switch state.lockState {
	case lockStateAllLocked:
		return true
	case lockStateSubDevicesLocked:
		return subDevice != rdm.SubDeviceRoot
	default:
		return false
	}
}

func (m *Model) Tasks(e *responder.Engine) {}

func freshRootState() *rootState {
	s := &rootState{
		playbackMode: playbackOff,
		startupScene: playbackOff,
		failScene:    playbackOff,
		mergeMode:    mergeModeDefault,
	}
	s.scenes[0].state = presetProgrammedReadOnly
	s.scenes[1].state = presetNotProgrammed
	s.scenes[2].state = presetNotProgrammed
	return s
}

func freshSubDeviceState() *subDeviceState {
	return &subDeviceState{
		identifyMode:        identifyModeQuiet,
		curve:               1,
		outputResponseTime:  1,
		modulationFrequency: 1,
	}
}

// resetToBlockAddress assigns consecutive start addresses to subs
// beginning at startAddress, provided the combined footprint fits
// within the 512-slot universe; it leaves subs untouched and returns
// false otherwise.
func resetToBlockAddress(subs []*responder.Responder, startAddress uint16) bool {
	var footprint uint16
	for _, sd := range subs {
		footprint += sd.CurrentFootprint()
	}
	if maxDMXStartAddress-startAddress+1 < footprint {
		return false
	}
	addr := startAddress
	for _, sd := range subs {
		sd.DMXStartAddress = addr
		addr += sd.CurrentFootprint()
	}
	return true
}
