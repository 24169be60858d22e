package session

import (
	"time"

	"github.com/voxmeet/meet-core/core/audioclient"
)

// StateChanged classifies one raw engine (state, status) transition and
// dispatches the resulting session events. The engine may repeat identical
// callbacks; a transition to the current (state, status) pair, or to an
// unrecognized state, has no effect.
func (s *Session) StateChanged(rawState audioclient.SessionState, rawStatus audioclient.SessionStatus) {
	state := sessionStateFrom(rawState)
	status := sessionStatusFrom(rawStatus)
	logger.Debug("engine state transition",
		"rawState", int(rawState), "state", state.String(),
		"rawStatus", int(rawStatus), "status", status.String())

	if status == SessionStatusUnknown {
		logger.Warn("unrecognized engine status code", "rawStatus", int(rawStatus))
	}
	if state == SessionStateUnknown {
		return
	}
	if state == s.currentState && status == s.currentStatus {
		return
	}

	switch state {
	case SessionStateFinishConnecting:
		s.handleFinishConnecting(status)
	case SessionStateReconnecting:
		s.handleReconnecting()
	case SessionStateFinishDisconnecting:
		s.handleFinishDisconnecting()
	case SessionStateFail:
		s.handleFail(status)
	}

	s.currentState = state
	s.currentStatus = status
}

func (s *Session) handleFinishConnecting(status SessionStatus) {
	switch s.currentState {
	case SessionStateConnecting:
		s.stats.updateMeetingStartTime(time.Now())
		s.analytics.publish(EventMeetingStartSucceeded, nil)
		s.sessionObservers.forEach(func(observer SessionObserver) {
			observer.SessionStarted(false)
		})
	case SessionStateReconnecting:
		s.stats.incrementRetryCount()
		s.analytics.publish(EventMeetingReconnected, nil)
		s.sessionObservers.forEach(func(observer SessionObserver) {
			observer.SessionStarted(true)
		})
	case SessionStateFinishConnecting:
		s.handleConnectionHealthChange(status)
	}
}

// handleConnectionHealthChange covers finishConnecting-to-finishConnecting
// transitions, where only the status moved.
func (s *Session) handleConnectionHealthChange(status SessionStatus) {
	switch {
	case status == SessionStatusOK && s.currentStatus == SessionStatusNetworkBecamePoor:
		s.sessionObservers.forEach(func(observer SessionObserver) {
			observer.ConnectionRecovered()
		})
	case status == SessionStatusNetworkBecamePoor && s.currentStatus == SessionStatusOK:
		s.stats.incrementPoorConnectionCount()
		s.sessionObservers.forEach(func(observer SessionObserver) {
			observer.ConnectionBecamePoor()
		})
	}
}

func (s *Session) handleReconnecting() {
	if s.currentState == SessionStateFinishConnecting {
		s.sessionObservers.forEach(func(observer SessionObserver) {
			observer.SessionDropped()
		})
	}
}

// handleFinishDisconnecting only owns the reconnect-cancelled case; a normal
// disconnect out of connecting or finishConnecting belongs to the explicit
// stop path driven by the session controller.
func (s *Session) handleFinishDisconnecting() {
	if s.currentState == SessionStateReconnecting {
		s.sessionObservers.forEach(func(observer SessionObserver) {
			observer.ReconnectCancelled()
		})
	}
}

func (s *Session) handleFail(status SessionStatus) {
	switch s.currentState {
	case SessionStateConnecting, SessionStateFinishConnecting:
		s.handleSessionFailure(status)
	case SessionStateReconnecting:
		s.sessionObservers.forEach(func(observer SessionObserver) {
			observer.ReconnectCancelled()
		})
		s.handleSessionFailure(status)
	}
}
