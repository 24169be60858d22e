package attendees

// IdentityResolver turns raw engine attendee records into stable identities.
// The engine does not echo the local participant's own external user id back,
// so the resolver substitutes the one the client already knows from its
// credentials whenever the engine's report for the local attendee is blank.
type IdentityResolver struct {
	localAttendeeID     string
	localExternalUserID string
}

func NewIdentityResolver(localAttendeeID, localExternalUserID string) IdentityResolver {
	return IdentityResolver{
		localAttendeeID:     localAttendeeID,
		localExternalUserID: localExternalUserID,
	}
}

// Resolve maps a raw (profileID, externalUserID) pair to an AttendeeInfo. A
// non-empty reported external user id always wins, even for the local
// attendee.
func (r IdentityResolver) Resolve(profileID, externalUserID string) AttendeeInfo {
	if externalUserID == "" && profileID == r.localAttendeeID {
		externalUserID = r.localExternalUserID
	}

	return AttendeeInfo{AttendeeID: profileID, ExternalUserID: externalUserID}
}
