package session

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Lifecycle is the session lifecycle flag shared between the state machine
// and the external session controller. Both stop paths, user-initiated and
// engine-initiated, run under its lock so only one of them tears the engine
// session down.
type Lifecycle struct {
	mu      sync.Mutex
	stopped bool
}

func NewLifecycle() *Lifecycle {
	return &Lifecycle{}
}

// IsStopped reports whether the session has been stopped by either path.
func (l *Lifecycle) IsStopped() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.stopped
}

// StopWith runs stop and marks the lifecycle stopped as one atomic unit. It
// reports false without running stop when the session was already stopped.
func (l *Lifecycle) StopWith(stop func()) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.stopped {
		return false
	}

	stop()
	l.stopped = true
	return true
}

// handleSessionFailure reports a terminal engine failure and schedules the
// engine teardown. It is a no-op when the session was already stopped by the
// controller.
func (s *Session) handleSessionFailure(status SessionStatus) {
	if s.lifecycle.IsStopped() {
		return
	}

	s.analytics.publish(EventMeetingFailed, map[string]string{
		AttributeMeetingStatus:       status.String(),
		AttributeMeetingErrorMessage: status.Description(),
	})
	s.stats.reset()

	go s.stopFailedSession(status)
}

// stopFailedSession stops the engine session, marks the shared lifecycle
// stopped and notifies session observers, all under the lifecycle lock so a
// concurrent user-initiated stop cannot interleave.
func (s *Session) stopFailedSession(status SessionStatus) {
	_, span := tracer.Start(context.Background(), "session.stopFailedSession")
	defer span.End()
	span.SetAttributes(attribute.String("meeting.status", status.String()))

	stopped := s.lifecycle.StopWith(func() {
		if err := s.engine.stopSession(); err != nil {
			recordedErr := fmt.Errorf("failed to stop engine session: %w", err)
			span.RecordError(recordedErr)
			span.SetStatus(codes.Error, recordedErr.Error())
		}

		s.sessionObservers.forEach(func(observer SessionObserver) {
			observer.SessionStoppedWithStatus(status)
		})
	})

	if !stopped {
		logger.Debug("session already stopped before failure teardown", "status", status.String())
	}
}
