// Package transcript defines the canonical transcript event model and the
// translation from the raw payload variants the engine boundary produces.
//
// Event kinds:
//
//   - Status: a transcription lifecycle notification (started, stopped, ...).
//   - Transcript: a batch of results, each owning ordered alternatives, each
//     owning ordered items attributed to an attendee.
//
// All models are immutable once constructed and preserve the ordering of the
// raw payload they were translated from.
package transcript

import "github.com/voxmeet/meet-core/core/attendees"

// Event is the sealed canonical transcript event variant.
type Event interface {
	isEvent()
}

// StatusType classifies a transcription lifecycle notification.
type StatusType int

const (
	StatusTypeUnknown StatusType = iota
	StatusTypeStarted
	StatusTypeInterrupted
	StatusTypeResumed
	StatusTypeStopped
	StatusTypeFailed
)

func (t StatusType) String() string {
	switch t {
	case StatusTypeStarted:
		return "started"
	case StatusTypeInterrupted:
		return "interrupted"
	case StatusTypeResumed:
		return "resumed"
	case StatusTypeStopped:
		return "stopped"
	case StatusTypeFailed:
		return "failed"
	}
	return "unknown"
}

// Status reports a transcription lifecycle change.
type Status struct {
	Type          StatusType
	EventTimeMs   int64
	Region        string
	Configuration string
	Message       string
}

func (Status) isEvent() {}

// ItemType classifies one transcript item.
type ItemType int

const (
	ItemTypeUnknown ItemType = iota
	ItemTypePronunciation
	ItemTypePunctuation
)

func (t ItemType) String() string {
	switch t {
	case ItemTypePronunciation:
		return "pronunciation"
	case ItemTypePunctuation:
		return "punctuation"
	}
	return "unknown"
}

// Transcript carries ordered transcription results.
type Transcript struct {
	Results []Result
}

func (Transcript) isEvent() {}

// Result is one transcription result, partial or final.
type Result struct {
	ResultID     string
	ChannelID    string
	IsPartial    bool
	StartTimeMs  int64
	EndTimeMs    int64
	Alternatives []Alternative
}

// Alternative is one candidate transcription with its attributed items.
type Alternative struct {
	Transcript string
	Items      []Item
}

// Item is one attributed word or punctuation mark.
type Item struct {
	Type        ItemType
	StartTimeMs int64
	EndTimeMs   int64
	Attendee    attendees.AttendeeInfo
	Content     string
}
