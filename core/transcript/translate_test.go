package transcript

import (
	"testing"

	"github.com/voxmeet/meet-core/core/attendees"
	"github.com/voxmeet/meet-core/core/audioclient"
)

func TestTranslateStatusCarriesFieldsVerbatim(t *testing.T) {
	resolver := attendees.NewIdentityResolver("local", "local-ext")

	event, err := Translate(audioclient.TranscriptionStatus{
		Type:          audioclient.TranscriptionStarted,
		EventTimeMs:   1712000000000,
		Region:        "eu-central-1",
		Configuration: "engine=standard",
		Message:       "transcription started",
	}, resolver)
	if err != nil {
		t.Fatalf("expected status payload to translate, got %v", err)
	}

	status, ok := event.(Status)
	if !ok {
		t.Fatalf("expected a Status event, got %T", event)
	}
	if status.Type != StatusTypeStarted {
		t.Fatalf("expected started status type, got %v", status.Type)
	}
	if status.EventTimeMs != 1712000000000 || status.Region != "eu-central-1" ||
		status.Configuration != "engine=standard" || status.Message != "transcription started" {
		t.Fatalf("expected raw fields carried verbatim, got %+v", status)
	}
}

func TestTranslateStatusTypeTable(t *testing.T) {
	resolver := attendees.NewIdentityResolver("local", "local-ext")

	testCases := []struct {
		name     string
		raw      int
		expected StatusType
	}{
		{name: "started", raw: audioclient.TranscriptionStarted, expected: StatusTypeStarted},
		{name: "interrupted", raw: audioclient.TranscriptionInterrupted, expected: StatusTypeInterrupted},
		{name: "resumed", raw: audioclient.TranscriptionResumed, expected: StatusTypeResumed},
		{name: "stopped", raw: audioclient.TranscriptionStopped, expected: StatusTypeStopped},
		{name: "failed", raw: audioclient.TranscriptionFailed, expected: StatusTypeFailed},
		{name: "unrecognized code", raw: 99, expected: StatusTypeUnknown},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			event, err := Translate(audioclient.TranscriptionStatus{Type: testCase.raw}, resolver)
			if err != nil {
				t.Fatalf("expected translation to succeed, got %v", err)
			}
			if got := event.(Status).Type; got != testCase.expected {
				t.Fatalf("expected status type %v, got %v", testCase.expected, got)
			}
		})
	}
}

func TestTranslateTranscriptPreservesOrderingAndResolvesAttendees(t *testing.T) {
	resolver := attendees.NewIdentityResolver("local", "local-ext")

	raw := audioclient.Transcript{
		Results: []audioclient.TranscriptResult{
			{
				ResultID:    "r-1",
				ChannelID:   "ch-0",
				IsPartial:   true,
				StartTimeMs: 100,
				EndTimeMs:   900,
				Alternatives: []audioclient.TranscriptAlternative{
					{
						Transcript: "hello there",
						Items: []audioclient.TranscriptItem{
							{
								Type:        audioclient.TranscriptItemPronunciation,
								StartTimeMs: 100,
								EndTimeMs:   400,
								ProfileID:   "local",
								Content:     "hello",
							},
							{
								Type:           audioclient.TranscriptItemPronunciation,
								StartTimeMs:    500,
								EndTimeMs:      900,
								ProfileID:      "remote",
								ExternalUserID: "remote-ext",
								Content:        "there",
							},
							{
								Type:        audioclient.TranscriptItemPunctuation,
								StartTimeMs: 900,
								EndTimeMs:   900,
								ProfileID:   "remote",
								Content:     ".",
							},
						},
					},
				},
			},
			{ResultID: "r-2", IsPartial: false},
		},
	}

	event, err := Translate(raw, resolver)
	if err != nil {
		t.Fatalf("expected transcript payload to translate, got %v", err)
	}

	translated, ok := event.(Transcript)
	if !ok {
		t.Fatalf("expected a Transcript event, got %T", event)
	}
	if len(translated.Results) != 2 || translated.Results[0].ResultID != "r-1" || translated.Results[1].ResultID != "r-2" {
		t.Fatalf("expected result ordering preserved, got %+v", translated.Results)
	}

	result := translated.Results[0]
	if !result.IsPartial || result.ChannelID != "ch-0" || result.StartTimeMs != 100 || result.EndTimeMs != 900 {
		t.Fatalf("expected result fields carried over, got %+v", result)
	}
	if len(result.Alternatives) != 1 || result.Alternatives[0].Transcript != "hello there" {
		t.Fatalf("expected one alternative with its transcript text, got %+v", result.Alternatives)
	}

	items := result.Alternatives[0].Items
	if len(items) != 3 {
		t.Fatalf("expected 3 items in order, got %d", len(items))
	}
	if items[0].Attendee != (attendees.AttendeeInfo{AttendeeID: "local", ExternalUserID: "local-ext"}) {
		t.Fatalf("expected local attendee reference resolved, got %+v", items[0].Attendee)
	}
	if items[1].Attendee != (attendees.AttendeeInfo{AttendeeID: "remote", ExternalUserID: "remote-ext"}) {
		t.Fatalf("expected remote attendee passed through, got %+v", items[1].Attendee)
	}
	if items[0].Type != ItemTypePronunciation || items[2].Type != ItemTypePunctuation {
		t.Fatalf("expected item type codes converted, got %v and %v", items[0].Type, items[2].Type)
	}
	if items[2].Content != "." {
		t.Fatalf("expected punctuation content preserved, got %q", items[2].Content)
	}
}

func TestTranslateRejectsUnrecognizedShape(t *testing.T) {
	resolver := attendees.NewIdentityResolver("local", "local-ext")

	if _, err := Translate(nil, resolver); err == nil {
		t.Fatalf("expected an error for an unrecognized payload shape")
	}
}
