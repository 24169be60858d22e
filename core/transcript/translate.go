package transcript

import (
	"fmt"

	"github.com/voxmeet/meet-core/core/attendees"
	"github.com/voxmeet/meet-core/core/audioclient"
)

var statusTypeFromRaw = map[int]StatusType{
	audioclient.TranscriptionStarted:     StatusTypeStarted,
	audioclient.TranscriptionInterrupted: StatusTypeInterrupted,
	audioclient.TranscriptionResumed:     StatusTypeResumed,
	audioclient.TranscriptionStopped:     StatusTypeStopped,
	audioclient.TranscriptionFailed:      StatusTypeFailed,
}

var itemTypeFromRaw = map[int]ItemType{
	audioclient.TranscriptItemPronunciation: ItemTypePronunciation,
	audioclient.TranscriptItemPunctuation:   ItemTypePunctuation,
}

// Translate converts one raw transcript payload into its canonical event.
// Attendee references inside result items go through the supplied resolver.
// An unrecognized variant is an error for that single payload; the caller
// decides whether to skip or abort.
func Translate(raw audioclient.TranscriptEvent, resolver attendees.IdentityResolver) (Event, error) {
	switch typedEvent := raw.(type) {
	case audioclient.TranscriptionStatus:
		return Status{
			Type:          statusTypeFromRaw[typedEvent.Type],
			EventTimeMs:   typedEvent.EventTimeMs,
			Region:        typedEvent.Region,
			Configuration: typedEvent.Configuration,
			Message:       typedEvent.Message,
		}, nil
	case audioclient.Transcript:
		return translateTranscript(typedEvent, resolver), nil
	default:
		return nil, fmt.Errorf("unrecognized transcript payload shape %T", raw)
	}
}

func translateTranscript(raw audioclient.Transcript, resolver attendees.IdentityResolver) Transcript {
	results := make([]Result, 0, len(raw.Results))
	for _, rawResult := range raw.Results {
		alternatives := make([]Alternative, 0, len(rawResult.Alternatives))
		for _, rawAlternative := range rawResult.Alternatives {
			items := make([]Item, 0, len(rawAlternative.Items))
			for _, rawItem := range rawAlternative.Items {
				items = append(items, Item{
					Type:        itemTypeFromRaw[rawItem.Type],
					StartTimeMs: rawItem.StartTimeMs,
					EndTimeMs:   rawItem.EndTimeMs,
					Attendee:    resolver.Resolve(rawItem.ProfileID, rawItem.ExternalUserID),
					Content:     rawItem.Content,
				})
			}
			alternatives = append(alternatives, Alternative{
				Transcript: rawAlternative.Transcript,
				Items:      items,
			})
		}
		results = append(results, Result{
			ResultID:     rawResult.ResultID,
			ChannelID:    rawResult.ChannelID,
			IsPartial:    rawResult.IsPartial,
			StartTimeMs:  rawResult.StartTimeMs,
			EndTimeMs:    rawResult.EndTimeMs,
			Alternatives: alternatives,
		})
	}

	return Transcript{Results: results}
}
