// Package rdm implements the wire-level pieces of ANSI E1.20 Remote
// Device Management: frame headers, the additive checksum, and the
// Parameter ID / NACK reason / product category constants defined by
// E1.20 and its E1.37-x addenda.
package rdm

// Root and special sub-device addresses (E1.20 §6.2.3).
const (
	SubDeviceRoot = 0x0000
	SubDeviceAll  = 0xffff
	SubDeviceMax  = 0x0200
)

// Version is the RDM protocol version this responder implements.
const Version = 0x0100

// StartCode and SubStartCode identify an RDM frame on the DMX line.
const (
	StartCode    = 0xcc
	SubStartCode = 0x01
)

// MinFrameSize is the smallest legal RDM frame: a 24-byte header plus a
// 2-byte checksum, no parameter data.
const MinFrameSize = 26

// HeaderSize is the fixed size of an RDM header, before parameter data.
const HeaderSize = 24

// MaxParamDataSize is the largest parameter data block E1.20 allows.
const MaxParamDataSize = 231

// CommandClass identifies the kind of RDM message (E1.20 §6.2.10, Table A-3).
type CommandClass uint8

const (
	DiscoveryCommand         CommandClass = 0x10
	DiscoveryCommandResponse CommandClass = 0x11
	GetCommand               CommandClass = 0x20
	GetCommandResponse       CommandClass = 0x21
	SetCommand               CommandClass = 0x30
	SetCommandResponse       CommandClass = 0x31
)

// ResponseType is the value carried in the port-ID/response-type header
// field of a response (E1.20 Table A-4).
type ResponseType uint8

const (
	ResponseAck         ResponseType = 0x00
	ResponseAckTimer    ResponseType = 0x01
	ResponseNackReason  ResponseType = 0x02
	ResponseAckOverflow ResponseType = 0x03
)

// NoResponse is the firmware's "no reply" sentinel in place of a
// response length. The Go responder does not use it: handlers return a
// responder.Result, and Engine.Receive returns nil when no reply is sent.
const NoResponse = -1

// PID is an RDM Parameter ID (E1.20, E1.37-1, E1.37-2).
type PID uint16

const (
	// Discovery.
	PIDDiscUniqueBranch PID = 0x0001
	PIDDiscMute         PID = 0x0002
	PIDDiscUnMute       PID = 0x0003

	// Network management.
	PIDProxiedDevices     PID = 0x0010
	PIDProxiedDeviceCount PID = 0x0011
	PIDCommsStatus        PID = 0x0015

	// Status collection.
	PIDQueuedMessage                  PID = 0x0020
	PIDStatusMessages                 PID = 0x0030
	PIDStatusIDDescription            PID = 0x0031
	PIDClearStatusID                  PID = 0x0032
	PIDSubDeviceStatusReportThreshold PID = 0x0033

	// RDM information.
	PIDSupportedParameters PID = 0x0050
	PIDParameterDescription PID = 0x0051

	// Production information.
	PIDDeviceInfo             PID = 0x0060
	PIDProductDetailIDList    PID = 0x0070
	PIDDeviceModelDescription PID = 0x0080
	PIDManufacturerLabel      PID = 0x0081
	PIDDeviceLabel            PID = 0x0082
	PIDFactoryDefaults        PID = 0x0090
	PIDLanguageCapabilities   PID = 0x00a0
	PIDLanguage               PID = 0x00b0
	PIDSoftwareVersionLabel   PID = 0x00c0
	PIDBootSoftwareVersionID  PID = 0x00c1
	PIDBootSoftwareVersionLabel PID = 0x00c2

	// DMX512.
	PIDDMXPersonality            PID = 0x00e0
	PIDDMXPersonalityDescription PID = 0x00e1
	PIDDMXStartAddress           PID = 0x00f0
	PIDSlotInfo                  PID = 0x0120
	PIDSlotDescription           PID = 0x0121
	PIDDefaultSlotValue          PID = 0x0122

	// Sensors.
	PIDSensorDefinition PID = 0x0200
	PIDSensorValue      PID = 0x0201
	PIDRecordSensors    PID = 0x0202

	// Power/lamp settings.
	PIDDeviceHours       PID = 0x0400
	PIDLampHours         PID = 0x0401
	PIDLampStrikes       PID = 0x0402
	PIDLampState         PID = 0x0403
	PIDLampOnMode        PID = 0x0404
	PIDDevicePowerCycles PID = 0x0405

	// Control.
	PIDIdentifyDevice   PID = 0x1000
	PIDResetDevice      PID = 0x1001
	PIDPowerState       PID = 0x1010
	PIDPerformSelfTest  PID = 0x1020
	PIDSelfTestDescription PID = 0x1021
	PIDCapturePreset    PID = 0x1030
	PIDPresetPlayback   PID = 0x1031

	// E1.37-1: DMX512 setup.
	PIDDMXBlockAddress PID = 0x0140
	PIDDMXFailMode     PID = 0x0141
	PIDDMXStartupMode  PID = 0x0142

	// E1.37-1: dimmer settings.
	PIDDimmerInfo      PID = 0x0340
	PIDMinimumLevel    PID = 0x0341
	PIDMaximumLevel    PID = 0x0342
	PIDCurve           PID = 0x0343
	PIDCurveDescription PID = 0x0344

	// E1.37-1: output control.
	PIDOutputResponseTime            PID = 0x0345
	PIDOutputResponseTimeDescription PID = 0x0346
	PIDModulationFrequency           PID = 0x0347
	PIDModulationFrequencyDescription PID = 0x0348

	// E1.37-1: power/lamp settings.
	PIDBurnIn PID = 0x0440

	// E1.37-1: configuration.
	PIDLockPin             PID = 0x0640
	PIDLockState           PID = 0x0641
	PIDLockStateDescription PID = 0x0642
	PIDIdentifyMode        PID = 0x1040
	PIDPresetInfo          PID = 0x1041
	PIDPresetStatus        PID = 0x1042
	PIDPresetMergeMode     PID = 0x1043
	PIDPowerOnSelfTest     PID = 0x1044

	// E1.37-2: network interfaces.
	PIDListInterfaces                  PID = 0x0700
	PIDInterfaceLabel                  PID = 0x0701
	PIDInterfaceHardwareAddressType1   PID = 0x0702
	PIDIPv4DHCPMode                    PID = 0x0703
	PIDIPv4ZeroconfMode                PID = 0x0704
	PIDIPv4CurrentAddress              PID = 0x0705
	PIDIPv4StaticAddress               PID = 0x0706
	PIDInterfaceRenewDHCP              PID = 0x0707
	PIDInterfaceReleaseDHCP            PID = 0x0708
	PIDInterfaceApplyConfiguration     PID = 0x0709
	PIDIPv4DefaultRoute                PID = 0x070a
	PIDDNSNameServer                   PID = 0x070b
	PIDDNSHostname                     PID = 0x070c
	PIDDNSDomainName                   PID = 0x070d
)

// NackReason is an RDM NACK reason code (E1.20 Table A-17).
type NackReason uint16

const (
	NRUnknownPID              NackReason = 0x0000
	NRFormatError             NackReason = 0x0001
	NRHardwareFault           NackReason = 0x0002
	NRProxyReject             NackReason = 0x0003
	NRWriteProtect            NackReason = 0x0004
	NRUnsupportedCommandClass NackReason = 0x0005
	NRDataOutOfRange          NackReason = 0x0006
	NRBufferFull              NackReason = 0x0007
	NRPacketSizeUnsupported   NackReason = 0x0008
	NRSubDeviceOutOfRange     NackReason = 0x0009
	NRProxyBufferFull         NackReason = 0x000a
	NRActionNotSupported      NackReason = 0x000b
	NREndpointNumberInvalid   NackReason = 0x0011
)

// ProductCategory values a responder may advertise in DEVICE_INFO
// (E1.20 Table A-5). Only the ones this module's models use are named;
// others may be constructed directly as ProductCategory values.
type ProductCategory uint16

const (
	ProductCategoryNotDeclared   ProductCategory = 0x0000
	ProductCategoryDimmer        ProductCategory = 0x0500
	ProductCategoryTest          ProductCategory = 0x7100
	ProductCategoryTestEquipment ProductCategory = 0x7101
	ProductCategoryOther         ProductCategory = 0x7fff
)
