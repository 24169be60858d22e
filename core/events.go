package session

// Analytics event names and attribute keys published through the analytics
// collaborator.
const (
	EventMeetingStartSucceeded = "meetingStartSucceeded"
	EventMeetingReconnected    = "meetingReconnected"
	EventMeetingFailed         = "meetingFailed"

	AttributeMeetingStatus       = "meetingStatus"
	AttributeMeetingErrorMessage = "meetingErrorMessage"
)
