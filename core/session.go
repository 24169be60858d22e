// Package session reconciles raw audio engine notifications into a canonical
// session state machine and fans well-formed, de-duplicated events out to
// application observers.
//
// One Session instance assumes the engine delivers callbacks one at a time;
// observer subscription is safe from any goroutine, including from inside a
// dispatched callback.
package session

import (
	"sync"

	"github.com/jinzhu/copier"
	"github.com/voxmeet/meet-core/core/attendees"
	"github.com/voxmeet/meet-core/core/audioclient"
	"github.com/voxmeet/meet-core/core/transcript"
)

// Session is the reconciliation core between the native audio engine and the
// application observers.
type Session struct {
	resolver  attendees.IdentityResolver
	lifecycle *Lifecycle

	engine    engineController
	analytics analyticsPublisher
	metrics   metricsSink
	stats     statsCollector

	sessionObservers    observerSet[SessionObserver]
	realtimeObservers   observerSet[RealtimeObserver]
	transcriptObservers observerSet[TranscriptObserver]

	currentState  SessionState
	currentStatus SessionStatus

	// rosterMu guards the three roster structures against concurrent
	// snapshot reads; the engine callback itself is single-threaded.
	rosterMu            sync.Mutex
	currentAttendees    map[attendees.AttendeeInfo]struct{}
	currentSignalLevels map[attendees.AttendeeInfo]attendees.SignalStrength
	currentVolumeLevels map[attendees.AttendeeInfo]attendees.VolumeLevel
}

func NewSession(opts ...SessionOption) *Session {
	s := &Session{
		lifecycle:           NewLifecycle(),
		currentState:        SessionStateUninitialized,
		currentStatus:       SessionStatusOK,
		currentAttendees:    map[attendees.AttendeeInfo]struct{}{},
		currentSignalLevels: map[attendees.AttendeeInfo]attendees.SignalStrength{},
		currentVolumeLevels: map[attendees.AttendeeInfo]attendees.VolumeLevel{},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Lifecycle returns the lifecycle handle shared with the session controller.
func (s *Session) Lifecycle() *Lifecycle {
	return s.lifecycle
}

// MetricsChanged forwards a raw engine metrics payload verbatim to the
// metrics collaborator.
func (s *Session) MetricsChanged(metrics map[audioclient.MetricKind]float64) {
	s.metrics.process(metrics)
}

// TranscriptEventsReceived translates each raw transcript payload and
// dispatches it individually, in arrival order. A payload that fails to
// translate is logged and skipped without aborting the batch.
func (s *Session) TranscriptEventsReceived(rawEvents []audioclient.TranscriptEvent) {
	for _, raw := range rawEvents {
		event, err := transcript.Translate(raw, s.resolver)
		if err != nil {
			logger.Error("failed to translate transcript payload", "error", err)
			continue
		}

		s.transcriptObservers.forEach(func(observer TranscriptObserver) {
			observer.TranscriptEventReceived(event)
		})
	}
}

// RosterSnapshot is a deep-copied point-in-time view of the attendee roster
// and the per-attendee signal and volume levels.
type RosterSnapshot struct {
	Attendees    []attendees.AttendeeInfo
	SignalLevels map[attendees.AttendeeInfo]attendees.SignalStrength
	VolumeLevels map[attendees.AttendeeInfo]attendees.VolumeLevel
}

// RosterSnapshot may be called from any goroutine.
func (s *Session) RosterSnapshot() (RosterSnapshot, error) {
	s.rosterMu.Lock()
	defer s.rosterMu.Unlock()

	snapshot := RosterSnapshot{
		Attendees: make([]attendees.AttendeeInfo, 0, len(s.currentAttendees)),
	}
	for attendee := range s.currentAttendees {
		snapshot.Attendees = append(snapshot.Attendees, attendee)
	}

	if err := copier.Copy(&snapshot.SignalLevels, &s.currentSignalLevels); err != nil {
		return RosterSnapshot{}, err
	}
	if err := copier.Copy(&snapshot.VolumeLevels, &s.currentVolumeLevels); err != nil {
		return RosterSnapshot{}, err
	}

	return snapshot, nil
}
