package session

import "github.com/voxmeet/meet-core/core/audioclient"

// SessionState is the canonical connection state, decoupled from the raw
// engine codes.
type SessionState int

const (
	SessionStateUninitialized SessionState = iota
	SessionStateConnecting
	SessionStateFinishConnecting
	SessionStateReconnecting
	SessionStateFinishDisconnecting
	SessionStateFail
	SessionStateUnknown
)

func (s SessionState) String() string {
	switch s {
	case SessionStateUninitialized:
		return "uninitialized"
	case SessionStateConnecting:
		return "connecting"
	case SessionStateFinishConnecting:
		return "finishConnecting"
	case SessionStateReconnecting:
		return "reconnecting"
	case SessionStateFinishDisconnecting:
		return "finishDisconnecting"
	case SessionStateFail:
		return "fail"
	}
	return "unknown"
}

// SessionStatus is the canonical status accompanying a connection state.
type SessionStatus int

const (
	SessionStatusOK SessionStatus = iota
	SessionStatusNetworkBecamePoor
	SessionStatusAudioDisconnected
	SessionStatusJoinedFromAnotherDevice
	SessionStatusAuthenticationRejected
	SessionStatusCallAtCapacity
	SessionStatusInternalServerError
	SessionStatusServiceUnavailable
	SessionStatusDisconnectedAudio
	SessionStatusCallEnded
	SessionStatusUnknown
)

func (s SessionStatus) String() string {
	switch s {
	case SessionStatusOK:
		return "ok"
	case SessionStatusNetworkBecamePoor:
		return "networkBecamePoor"
	case SessionStatusAudioDisconnected:
		return "audioDisconnected"
	case SessionStatusJoinedFromAnotherDevice:
		return "joinedFromAnotherDevice"
	case SessionStatusAuthenticationRejected:
		return "authenticationRejected"
	case SessionStatusCallAtCapacity:
		return "callAtCapacity"
	case SessionStatusInternalServerError:
		return "internalServerError"
	case SessionStatusServiceUnavailable:
		return "serviceUnavailable"
	case SessionStatusDisconnectedAudio:
		return "disconnectedAudio"
	case SessionStatusCallEnded:
		return "callEnded"
	}
	return "unknown"
}

// Description returns the human-readable text attached to failure analytics.
func (s SessionStatus) Description() string {
	switch s {
	case SessionStatusOK:
		return "The session is healthy"
	case SessionStatusNetworkBecamePoor:
		return "The network connection became poor"
	case SessionStatusAudioDisconnected:
		return "The audio connection was lost"
	case SessionStatusJoinedFromAnotherDevice:
		return "The attendee joined the meeting from another device"
	case SessionStatusAuthenticationRejected:
		return "The attendee's credentials were rejected"
	case SessionStatusCallAtCapacity:
		return "The meeting is at capacity"
	case SessionStatusInternalServerError:
		return "The audio service reported an internal error"
	case SessionStatusServiceUnavailable:
		return "The audio service is unavailable"
	case SessionStatusDisconnectedAudio:
		return "Audio was intentionally disconnected"
	case SessionStatusCallEnded:
		return "The meeting ended"
	}
	return "The session reported an unrecognized status"
}

// Partial raw-to-canonical mapping tables. Every code the engine can emit has
// an entry; anything else resolves to the unknown value and is handled by the
// state machine's ignore rule.
var sessionStateFromRaw = map[audioclient.SessionState]SessionState{
	audioclient.StateInit:                 SessionStateUninitialized,
	audioclient.StateConnecting:           SessionStateConnecting,
	audioclient.StateConnected:            SessionStateFinishConnecting,
	audioclient.StateReconnecting:         SessionStateReconnecting,
	audioclient.StateDisconnectedNormal:   SessionStateFinishDisconnecting,
	audioclient.StateDisconnectedAbnormal: SessionStateFail,
	audioclient.StateServerHungup:         SessionStateFail,
	audioclient.StateFailedToConnect:      SessionStateFail,
}

var sessionStatusFromRaw = map[audioclient.SessionStatus]SessionStatus{
	audioclient.StatusOK:                      SessionStatusOK,
	audioclient.StatusNetworkBecamePoor:       SessionStatusNetworkBecamePoor,
	audioclient.StatusAudioDisconnected:       SessionStatusAudioDisconnected,
	audioclient.StatusJoinedFromAnotherDevice: SessionStatusJoinedFromAnotherDevice,
	audioclient.StatusAuthenticationRejected:  SessionStatusAuthenticationRejected,
	audioclient.StatusCallAtCapacity:          SessionStatusCallAtCapacity,
	audioclient.StatusInternalServerError:     SessionStatusInternalServerError,
	audioclient.StatusServiceUnavailable:      SessionStatusServiceUnavailable,
	audioclient.StatusDisconnectAudio:         SessionStatusDisconnectedAudio,
	audioclient.StatusCallEnded:               SessionStatusCallEnded,
}

func sessionStateFrom(raw audioclient.SessionState) SessionState {
	if state, ok := sessionStateFromRaw[raw]; ok {
		return state
	}
	return SessionStateUnknown
}

func sessionStatusFrom(raw audioclient.SessionStatus) SessionStatus {
	if status, ok := sessionStatusFromRaw[raw]; ok {
		return status
	}
	return SessionStatusUnknown
}
