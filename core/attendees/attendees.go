// Package attendees holds the canonical per-attendee value types and the pure
// reconciliation helpers the session core runs over them.
package attendees

import "github.com/voxmeet/meet-core/core/audioclient"

// AttendeeInfo is the stable identity of one meeting participant. It is an
// immutable value and is used directly as a map and set key.
type AttendeeInfo struct {
	AttendeeID     string
	ExternalUserID string
}

// SignalStrength is the discretized connection quality level for an attendee.
type SignalStrength int

const (
	SignalStrengthNone SignalStrength = iota
	SignalStrengthLow
	SignalStrengthHigh
)

func (s SignalStrength) String() string {
	switch s {
	case SignalStrengthNone:
		return "none"
	case SignalStrengthLow:
		return "low"
	case SignalStrengthHigh:
		return "high"
	}
	return "unknown"
}

// VolumeLevel is the discretized speaking volume for an attendee. Muted is a
// level of its own rather than a separate flag, matching the engine meter.
type VolumeLevel int

const (
	VolumeLevelMuted VolumeLevel = iota - 1
	VolumeLevelNotSpeaking
	VolumeLevelLow
	VolumeLevelMedium
	VolumeLevelHigh
)

func (v VolumeLevel) String() string {
	switch v {
	case VolumeLevelMuted:
		return "muted"
	case VolumeLevelNotSpeaking:
		return "notSpeaking"
	case VolumeLevelLow:
		return "low"
	case VolumeLevelMedium:
		return "medium"
	case VolumeLevelHigh:
		return "high"
	}
	return "unknown"
}

// AttendeeStatus describes a presence transition, not a resident state.
type AttendeeStatus int

const (
	AttendeeStatusJoined AttendeeStatus = iota
	AttendeeStatusLeft
	AttendeeStatusDropped
)

// SignalUpdate pairs an attendee with its freshly reported signal strength.
type SignalUpdate struct {
	Attendee AttendeeInfo
	Level    SignalStrength
}

// VolumeUpdate pairs an attendee with its freshly reported volume level.
type VolumeUpdate struct {
	Attendee AttendeeInfo
	Level    VolumeLevel
}

// SignalStrengthFromRaw maps a raw engine signal code to its canonical level.
// Unknown codes report ok=false and must be skipped by the caller.
func SignalStrengthFromRaw(raw int) (SignalStrength, bool) {
	switch raw {
	case audioclient.SignalNone:
		return SignalStrengthNone, true
	case audioclient.SignalLow:
		return SignalStrengthLow, true
	case audioclient.SignalHigh:
		return SignalStrengthHigh, true
	}
	return SignalStrengthNone, false
}

// VolumeLevelFromRaw maps a raw engine volume code to its canonical level.
func VolumeLevelFromRaw(raw int) (VolumeLevel, bool) {
	switch raw {
	case audioclient.VolumeMuted:
		return VolumeLevelMuted, true
	case audioclient.VolumeNotSpeaking:
		return VolumeLevelNotSpeaking, true
	case audioclient.VolumeLow:
		return VolumeLevelLow, true
	case audioclient.VolumeMedium:
		return VolumeLevelMedium, true
	case audioclient.VolumeHigh:
		return VolumeLevelHigh, true
	}
	return VolumeLevelNotSpeaking, false
}

// AttendeeStatusFromRaw maps a raw presence transition code.
func AttendeeStatusFromRaw(raw int) (AttendeeStatus, bool) {
	switch raw {
	case audioclient.PresenceJoined:
		return AttendeeStatusJoined, true
	case audioclient.PresenceLeft:
		return AttendeeStatusLeft, true
	case audioclient.PresenceDropped:
		return AttendeeStatusDropped, true
	}
	return AttendeeStatusJoined, false
}
