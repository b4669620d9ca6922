package calendar

import (
	"time"

	calendar "google.golang.org/api/calendar/v3"
)

// EntryPointTypeVideo is the conferencing entry point type carrying the
// Meet join URL. Other types (phone, sip, more) may precede it.
const EntryPointTypeVideo = "video"

// ConferenceEventInput describes the event to create around a conference.
type ConferenceEventInput struct {
	Summary     string
	Description string
	Start       time.Time
	End         time.Time

	// TimeZone is attached to both start and end. Empty means UTC.
	TimeZone string
}

// ConferenceEvent is the relevant slice of a created calendar event.
type ConferenceEvent struct {
	EventID     string
	Summary     string
	Description string
	Start       time.Time
	End         time.Time

	// MeetLink is the video entry point URI. Empty when the provider
	// returned no video entry point.
	MeetLink string
}

// toConferenceEvent converts a Google Calendar event into a ConferenceEvent.
func toConferenceEvent(event *calendar.Event) ConferenceEvent {
	if event == nil {
		return ConferenceEvent{}
	}

	ce := ConferenceEvent{
		EventID:     event.Id,
		Summary:     event.Summary,
		Description: event.Description,
		MeetLink:    videoEntryPoint(event),
	}

	if event.Start != nil && event.Start.DateTime != "" {
		if t, err := time.Parse(time.RFC3339, event.Start.DateTime); err == nil {
			ce.Start = t
		}
	}
	if event.End != nil && event.End.DateTime != "" {
		if t, err := time.Parse(time.RFC3339, event.End.DateTime); err == nil {
			ce.End = t
		}
	}

	return ce
}

// videoEntryPoint returns the URI of the video-typed conferencing entry
// point, or "" when the conference has none.
func videoEntryPoint(event *calendar.Event) string {
	if event == nil || event.ConferenceData == nil {
		return ""
	}
	for _, ep := range event.ConferenceData.EntryPoints {
		if ep.EntryPointType == EntryPointTypeVideo {
			return ep.Uri
		}
	}
	return ""
}
