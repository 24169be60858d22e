package session

import (
	"github.com/voxmeet/meet-core/core/attendees"
	"github.com/voxmeet/meet-core/core/audioclient"
)

// PresenceChanged reconciles one batch of raw presence updates against the
// current attendee set. Joins are de-duplicated against the set; attendees
// reported left or dropped are announced with the full reported set and
// removed. Updates carrying unrecognized transition codes are ignored.
func (s *Session) PresenceChanged(updates []audioclient.AttendeeUpdate) {
	byStatus := map[attendees.AttendeeStatus][]attendees.AttendeeInfo{}
	for _, update := range updates {
		status, ok := attendees.AttendeeStatusFromRaw(update.Value)
		if !ok {
			continue
		}
		byStatus[status] = append(byStatus[status],
			s.resolver.Resolve(update.ProfileID, update.ExternalUserID))
	}

	s.handleAttendeesJoined(byStatus[attendees.AttendeeStatusJoined])
	s.handleAttendeesRemoved(byStatus[attendees.AttendeeStatusLeft], attendees.AttendeeStatusLeft)
	s.handleAttendeesRemoved(byStatus[attendees.AttendeeStatusDropped], attendees.AttendeeStatusDropped)
}

func (s *Session) handleAttendeesJoined(reported []attendees.AttendeeInfo) {
	s.rosterMu.Lock()
	joined := make([]attendees.AttendeeInfo, 0, len(reported))
	seen := map[attendees.AttendeeInfo]struct{}{}
	for _, attendee := range reported {
		if _, present := s.currentAttendees[attendee]; present {
			continue
		}
		if _, duplicate := seen[attendee]; duplicate {
			continue
		}
		seen[attendee] = struct{}{}
		joined = append(joined, attendee)
	}
	s.rosterMu.Unlock()

	if len(joined) == 0 {
		return
	}

	s.realtimeObservers.forEach(func(observer RealtimeObserver) {
		observer.AttendeesJoined(joined)
	})

	s.rosterMu.Lock()
	for _, attendee := range joined {
		s.currentAttendees[attendee] = struct{}{}
	}
	s.rosterMu.Unlock()
}

func (s *Session) handleAttendeesRemoved(reported []attendees.AttendeeInfo, status attendees.AttendeeStatus) {
	if len(reported) == 0 {
		return
	}

	// Any attendee reported left or dropped is announced, present in the
	// current set or not.
	s.realtimeObservers.forEach(func(observer RealtimeObserver) {
		if status == attendees.AttendeeStatusLeft {
			observer.AttendeesLeft(reported)
		} else {
			observer.AttendeesDropped(reported)
		}
	})

	s.rosterMu.Lock()
	for _, attendee := range reported {
		delete(s.currentAttendees, attendee)
	}
	s.rosterMu.Unlock()
}

// SignalStrengthChanged replaces the signal snapshot with the reported one
// and dispatches the delta, if any. Updates carrying unrecognized level codes
// are ignored.
func (s *Session) SignalStrengthChanged(updates []audioclient.AttendeeUpdate) {
	next := map[attendees.AttendeeInfo]attendees.SignalStrength{}
	for _, update := range updates {
		level, ok := attendees.SignalStrengthFromRaw(update.Value)
		if !ok {
			continue
		}
		next[s.resolver.Resolve(update.ProfileID, update.ExternalUserID)] = level
	}

	s.rosterMu.Lock()
	delta := attendees.Delta(s.currentSignalLevels, next)
	s.currentSignalLevels = next
	s.rosterMu.Unlock()

	if len(delta) == 0 {
		return
	}

	changes := make([]attendees.SignalUpdate, 0, len(delta))
	for attendee, level := range delta {
		changes = append(changes, attendees.SignalUpdate{Attendee: attendee, Level: level})
	}

	s.realtimeObservers.forEach(func(observer RealtimeObserver) {
		observer.SignalStrengthChanged(changes)
	})
}

// VolumeStateChanged replaces the volume snapshot with the reported one and
// dispatches the delta plus the derived mute and unmute sets. The unmute set
// is derived against the volume map from before this callback.
func (s *Session) VolumeStateChanged(updates []audioclient.AttendeeUpdate) {
	next := map[attendees.AttendeeInfo]attendees.VolumeLevel{}
	for _, update := range updates {
		level, ok := attendees.VolumeLevelFromRaw(update.Value)
		if !ok {
			continue
		}
		next[s.resolver.Resolve(update.ProfileID, update.ExternalUserID)] = level
	}

	s.rosterMu.Lock()
	delta := attendees.Delta(s.currentVolumeLevels, next)
	muted, unmuted := attendees.MuteDelta(s.currentVolumeLevels, delta)
	s.currentVolumeLevels = next
	s.rosterMu.Unlock()

	if len(delta) == 0 {
		return
	}

	changes := make([]attendees.VolumeUpdate, 0, len(delta))
	for attendee, level := range delta {
		changes = append(changes, attendees.VolumeUpdate{Attendee: attendee, Level: level})
	}

	s.realtimeObservers.forEach(func(observer RealtimeObserver) {
		observer.VolumeChanged(changes)
	})

	if len(muted) > 0 {
		s.realtimeObservers.forEach(func(observer RealtimeObserver) {
			observer.AttendeesMuted(muted)
		})
	}
	if len(unmuted) > 0 {
		s.realtimeObservers.forEach(func(observer RealtimeObserver) {
			observer.AttendeesUnmuted(unmuted)
		})
	}
}
