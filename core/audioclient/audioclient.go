// Package audioclient defines the raw boundary to the native audio engine.
//
// Everything in this package mirrors what the engine emits: integer-coded
// states, statuses and levels, flat attendee update records, and the raw
// transcript payload variants. Nothing here is canonical; the session core
// owns the translation into its own enumerations and models.
package audioclient

// SessionState is a raw engine connection state code.
type SessionState int

const (
	StateUnknown SessionState = iota
	StateInit
	StateConnecting
	StateConnected
	StateReconnecting
	StateDisconnecting
	StateDisconnectedNormal
	StateDisconnectedAbnormal
	StateServerHungup
	StateFailedToConnect
)

// SessionStatus is a raw engine status code accompanying a state change.
type SessionStatus int

const (
	StatusOK SessionStatus = iota
	StatusNetworkBecamePoor
	StatusAudioDisconnected
	StatusJoinedFromAnotherDevice
	StatusAuthenticationRejected
	StatusCallAtCapacity
	StatusInternalServerError
	StatusServiceUnavailable
	StatusDisconnectAudio
	StatusCallEnded
)

// SignalStrength and VolumeLevel raw codes as reported by the engine meters.
const (
	SignalNone = 0
	SignalLow  = 1
	SignalHigh = 2

	VolumeMuted       = -1
	VolumeNotSpeaking = 0
	VolumeLow         = 1
	VolumeMedium      = 2
	VolumeHigh        = 3
)

// Presence transition codes carried by presence updates.
const (
	PresenceJoined  = 1
	PresenceLeft    = 2
	PresenceDropped = 3
)

// AttendeeUpdate is one per-attendee record in a signal, volume or presence
// callback. Value carries the raw code whose meaning depends on the callback
// it arrived through.
type AttendeeUpdate struct {
	ProfileID      string
	ExternalUserID string
	Value          int
}

// MetricKind identifies one raw engine metric in a metrics callback payload.
type MetricKind int

const (
	MetricAudioSendPacketLossPercent MetricKind = iota
	MetricAudioReceivePacketLossPercent
	MetricAudioSendBitrate
	MetricAudioReceiveBitrate
	MetricAudioSpeakerDelayMs
)

// Controller is the slice of the engine the core is allowed to drive: it can
// only tear the underlying session down, never start or reconfigure it.
type Controller interface {
	StopSession() error
}
