package session

import (
	"slices"
	"sync"

	"github.com/voxmeet/meet-core/core/attendees"
	"github.com/voxmeet/meet-core/core/transcript"
)

// SessionObserver receives session lifecycle and connection health events.
type SessionObserver interface {
	SessionStarted(reconnecting bool)
	ConnectionRecovered()
	ConnectionBecamePoor()
	SessionDropped()
	ReconnectCancelled()
	SessionStoppedWithStatus(status SessionStatus)
}

// RealtimeObserver receives roster, signal and volume events.
type RealtimeObserver interface {
	SignalStrengthChanged(updates []attendees.SignalUpdate)
	VolumeChanged(updates []attendees.VolumeUpdate)
	AttendeesJoined(joined []attendees.AttendeeInfo)
	AttendeesLeft(left []attendees.AttendeeInfo)
	AttendeesDropped(dropped []attendees.AttendeeInfo)
	AttendeesMuted(muted []attendees.AttendeeInfo)
	AttendeesUnmuted(unmuted []attendees.AttendeeInfo)
}

// TranscriptObserver receives translated transcript events, one call per
// translated raw payload, in arrival order.
type TranscriptObserver interface {
	TranscriptEventReceived(event transcript.Event)
}

// observerSet is one fan-out channel. Add and remove are safe from any
// goroutine, including from inside a dispatched callback. forEach invokes the
// action once per observer registered at the start of the pass; mutations
// performed mid-pass take effect on later passes.
type observerSet[T any] struct {
	mu        sync.Mutex
	observers []T
}

func (s *observerSet[T]) add(observer T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.observers {
		if any(existing) == any(observer) {
			return
		}
	}
	s.observers = append(s.observers, observer)
}

func (s *observerSet[T]) remove(observer T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.observers = slices.DeleteFunc(s.observers, func(existing T) bool {
		return any(existing) == any(observer)
	})
}

func (s *observerSet[T]) forEach(notify func(T)) {
	s.mu.Lock()
	snapshot := slices.Clone(s.observers)
	s.mu.Unlock()

	for _, observer := range snapshot {
		notifyObserver(observer, notify)
	}
}

// notifyObserver isolates one observer's panic from the rest of the pass and
// from the engine callback that triggered it.
func notifyObserver[T any](observer T, notify func(T)) {
	defer func() {
		if recovered := recover(); recovered != nil {
			logger.Error("observer callback panicked", "panic", recovered)
		}
	}()

	notify(observer)
}

// AddSessionObserver subscribes an observer to session lifecycle events.
func (s *Session) AddSessionObserver(observer SessionObserver) {
	s.sessionObservers.add(observer)
}

// RemoveSessionObserver unsubscribes a previously added observer.
func (s *Session) RemoveSessionObserver(observer SessionObserver) {
	s.sessionObservers.remove(observer)
}

// AddRealtimeObserver subscribes an observer to roster, signal and volume
// events.
func (s *Session) AddRealtimeObserver(observer RealtimeObserver) {
	s.realtimeObservers.add(observer)
}

// RemoveRealtimeObserver unsubscribes a previously added observer.
func (s *Session) RemoveRealtimeObserver(observer RealtimeObserver) {
	s.realtimeObservers.remove(observer)
}

// AddTranscriptObserver subscribes an observer to transcript events.
func (s *Session) AddTranscriptObserver(observer TranscriptObserver) {
	s.transcriptObservers.add(observer)
}

// RemoveTranscriptObserver unsubscribes a previously added observer.
func (s *Session) RemoveTranscriptObserver(observer TranscriptObserver) {
	s.transcriptObservers.remove(observer)
}
