package attendees

import "testing"

func TestDeltaReportsChangedAndNewKeysOnly(t *testing.T) {
	a := AttendeeInfo{AttendeeID: "a", ExternalUserID: "ext-a"}
	b := AttendeeInfo{AttendeeID: "b", ExternalUserID: "ext-b"}
	c := AttendeeInfo{AttendeeID: "c", ExternalUserID: "ext-c"}
	d := AttendeeInfo{AttendeeID: "d", ExternalUserID: "ext-d"}

	prev := map[AttendeeInfo]SignalStrength{
		a: SignalStrengthHigh,
		b: SignalStrengthLow,
		d: SignalStrengthHigh,
	}
	next := map[AttendeeInfo]SignalStrength{
		a: SignalStrengthHigh, // unchanged
		b: SignalStrengthHigh, // changed
		c: SignalStrengthLow,  // new
	}

	delta := Delta(prev, next)

	if len(delta) != 2 {
		t.Fatalf("expected 2 delta entries, got %d: %v", len(delta), delta)
	}
	if level, ok := delta[b]; !ok || level != SignalStrengthHigh {
		t.Fatalf("expected changed entry for b at high, got %v (present=%v)", level, ok)
	}
	if level, ok := delta[c]; !ok || level != SignalStrengthLow {
		t.Fatalf("expected new entry for c at low, got %v (present=%v)", level, ok)
	}
	if _, ok := delta[d]; ok {
		t.Fatalf("expected removed key d to stay out of the delta")
	}
}

func TestDeltaOfIdenticalMapsIsEmpty(t *testing.T) {
	a := AttendeeInfo{AttendeeID: "a", ExternalUserID: "ext-a"}
	m := map[AttendeeInfo]VolumeLevel{a: VolumeLevelMedium}

	if delta := Delta(m, m); len(delta) != 0 {
		t.Fatalf("expected empty delta for identical maps, got %v", delta)
	}
}

func TestDeltaFromEmptyPreviousReportsEverything(t *testing.T) {
	a := AttendeeInfo{AttendeeID: "a", ExternalUserID: "ext-a"}
	b := AttendeeInfo{AttendeeID: "b", ExternalUserID: "ext-b"}
	next := map[AttendeeInfo]VolumeLevel{a: VolumeLevelMuted, b: VolumeLevelLow}

	delta := Delta(map[AttendeeInfo]VolumeLevel{}, next)

	if len(delta) != 2 {
		t.Fatalf("expected every entry in the delta, got %v", delta)
	}
}

func TestMuteDeltaDerivesDisjointSets(t *testing.T) {
	mutedNow := AttendeeInfo{AttendeeID: "muted-now", ExternalUserID: "ext-1"}
	unmutedNow := AttendeeInfo{AttendeeID: "unmuted-now", ExternalUserID: "ext-2"}
	newcomer := AttendeeInfo{AttendeeID: "newcomer", ExternalUserID: "ext-3"}

	prev := map[AttendeeInfo]VolumeLevel{
		mutedNow:   VolumeLevelLow,
		unmutedNow: VolumeLevelMuted,
	}
	next := map[AttendeeInfo]VolumeLevel{
		mutedNow:   VolumeLevelMuted,
		unmutedNow: VolumeLevelMedium,
		newcomer:   VolumeLevelLow,
	}

	delta := Delta(prev, next)
	muted, unmuted := MuteDelta(prev, delta)

	if len(muted) != 1 || muted[0] != mutedNow {
		t.Fatalf("expected muted set [%v], got %v", mutedNow, muted)
	}
	if len(unmuted) != 1 || unmuted[0] != unmutedNow {
		t.Fatalf("expected unmuted set [%v], got %v", unmutedNow, unmuted)
	}
}

func TestMuteDeltaIgnoresNewcomersWithoutPreviousEntry(t *testing.T) {
	newcomer := AttendeeInfo{AttendeeID: "newcomer", ExternalUserID: "ext-1"}

	prev := map[AttendeeInfo]VolumeLevel{}
	delta := map[AttendeeInfo]VolumeLevel{newcomer: VolumeLevelLow}

	muted, unmuted := MuteDelta(prev, delta)

	if len(muted) != 0 || len(unmuted) != 0 {
		t.Fatalf("expected newcomer at audible level in neither set, got muted=%v unmuted=%v", muted, unmuted)
	}
}

func TestMuteDeltaCountsNewcomerArrivingMuted(t *testing.T) {
	newcomer := AttendeeInfo{AttendeeID: "newcomer", ExternalUserID: "ext-1"}

	delta := map[AttendeeInfo]VolumeLevel{newcomer: VolumeLevelMuted}

	muted, unmuted := MuteDelta(map[AttendeeInfo]VolumeLevel{}, delta)

	if len(muted) != 1 || muted[0] != newcomer {
		t.Fatalf("expected newcomer arriving muted in the muted set, got %v", muted)
	}
	if len(unmuted) != 0 {
		t.Fatalf("expected empty unmuted set, got %v", unmuted)
	}
}
