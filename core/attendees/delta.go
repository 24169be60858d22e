package attendees

// Delta reports every attendee whose value in next differs from its value in
// prev, attendees absent from prev included. Attendees present only in prev
// are not part of the delta; their disappearance is reported through presence
// events instead. Delta has no side effects and imposes no ordering.
func Delta[V comparable](prev, next map[AttendeeInfo]V) map[AttendeeInfo]V {
	delta := map[AttendeeInfo]V{}
	for attendee, value := range next {
		if previous, known := prev[attendee]; !known || previous != value {
			delta[attendee] = value
		}
	}
	return delta
}

// MuteDelta derives the newly muted and newly unmuted attendee sets from a
// volume delta. The unmuted set is read against the previous volume map: an
// attendee whose old level was muted and who appears in the delta at all has
// necessarily moved off muted. prev must be the map the delta was computed
// against, before any update.
func MuteDelta(prev map[AttendeeInfo]VolumeLevel, delta map[AttendeeInfo]VolumeLevel) (muted, unmuted []AttendeeInfo) {
	for attendee, level := range delta {
		if level == VolumeLevelMuted {
			muted = append(muted, attendee)
		} else if prev[attendee] == VolumeLevelMuted {
			unmuted = append(unmuted, attendee)
		}
	}
	return muted, unmuted
}
