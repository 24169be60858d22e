package audioclient

// TranscriptEvent is the sealed variant the engine boundary produces for one
// raw transcription payload. The two known shapes are TranscriptionStatus and
// Transcript; the translator matches the variant exhaustively and treats
// anything else as a malformed entry.
type TranscriptEvent interface {
	isTranscriptEvent()
}

// Transcription status type codes as emitted by the engine.
const (
	TranscriptionStarted = 1 + iota
	TranscriptionInterrupted
	TranscriptionResumed
	TranscriptionStopped
	TranscriptionFailed
)

// TranscriptionStatus is the status-shaped raw transcript payload.
type TranscriptionStatus struct {
	Type          int
	EventTimeMs   int64
	Region        string
	Configuration string
	Message       string
}

func (TranscriptionStatus) isTranscriptEvent() {}

// Transcript item type codes as emitted by the engine.
const (
	TranscriptItemPronunciation = 1 + iota
	TranscriptItemPunctuation
)

// Transcript is the result-shaped raw transcript payload.
type Transcript struct {
	Results []TranscriptResult
}

func (Transcript) isTranscriptEvent() {}

type TranscriptResult struct {
	ResultID     string
	ChannelID    string
	IsPartial    bool
	StartTimeMs  int64
	EndTimeMs    int64
	Alternatives []TranscriptAlternative
}

type TranscriptAlternative struct {
	Transcript string
	Items      []TranscriptItem
}

type TranscriptItem struct {
	Type           int
	StartTimeMs    int64
	EndTimeMs      int64
	ProfileID      string
	ExternalUserID string
	Content        string
}
