package calendar

import (
	"context"
	"testing"

	calendar "google.golang.org/api/calendar/v3"
)

func TestVideoEntryPoint(t *testing.T) {
	tests := []struct {
		name     string
		event    *calendar.Event
		expected string
	}{
		{
			name:     "nil event",
			event:    nil,
			expected: "",
		},
		{
			name:     "no conference data",
			event:    &calendar.Event{},
			expected: "",
		},
		{
			name: "video entry only",
			event: &calendar.Event{
				ConferenceData: &calendar.ConferenceData{
					EntryPoints: []*calendar.EntryPoint{
						{EntryPointType: "video", Uri: "https://meet.google.com/abc-defg-hij"},
					},
				},
			},
			expected: "https://meet.google.com/abc-defg-hij",
		},
		{
			name: "phone entry listed before video",
			event: &calendar.Event{
				ConferenceData: &calendar.ConferenceData{
					EntryPoints: []*calendar.EntryPoint{
						{EntryPointType: "phone", Uri: "tel:+1-555-0100"},
						{EntryPointType: "sip", Uri: "sip:123@example.com"},
						{EntryPointType: "video", Uri: "https://meet.google.com/abc-defg-hij"},
					},
				},
			},
			expected: "https://meet.google.com/abc-defg-hij",
		},
		{
			name: "phone and sip only",
			event: &calendar.Event{
				ConferenceData: &calendar.ConferenceData{
					EntryPoints: []*calendar.EntryPoint{
						{EntryPointType: "phone", Uri: "tel:+1-555-0100"},
						{EntryPointType: "sip", Uri: "sip:123@example.com"},
					},
				},
			},
			expected: "",
		},
		{
			name: "zero entry points",
			event: &calendar.Event{
				ConferenceData: &calendar.ConferenceData{},
			},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := videoEntryPoint(tt.event)
			if result != tt.expected {
				t.Errorf("videoEntryPoint() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestToConferenceEvent(t *testing.T) {
	summary := toConferenceEvent(nil)
	if summary.EventID != "" {
		t.Errorf("expected empty ID for nil event, got %s", summary.EventID)
	}

	event := &calendar.Event{
		Id:          "evt-1",
		Summary:     "Standup",
		Description: "Daily sync",
		Start:       &calendar.EventDateTime{DateTime: "2026-09-01T10:00:00Z"},
		End:         &calendar.EventDateTime{DateTime: "2026-09-01T11:00:00Z"},
		ConferenceData: &calendar.ConferenceData{
			EntryPoints: []*calendar.EntryPoint{
				{EntryPointType: "video", Uri: "https://meet.google.com/abc-defg-hij"},
			},
		},
	}

	ce := toConferenceEvent(event)
	if ce.EventID != "evt-1" {
		t.Errorf("unexpected event ID %s", ce.EventID)
	}
	if ce.Summary != "Standup" {
		t.Errorf("unexpected summary %s", ce.Summary)
	}
	if ce.MeetLink != "https://meet.google.com/abc-defg-hij" {
		t.Errorf("unexpected meet link %s", ce.MeetLink)
	}
	if got := ce.End.Sub(ce.Start).Minutes(); got != 60 {
		t.Errorf("expected 60 minute duration, got %v", got)
	}
}

func TestNewClientForToken_EmptyToken(t *testing.T) {
	_, err := NewClientForToken(context.Background(), "")
	if err == nil {
		t.Error("expected error for empty access token")
	}
}

func TestWithCalendarID(t *testing.T) {
	c := &Client{calendarID: "primary"}

	WithCalendarID("")(c)
	if c.calendarID != "primary" {
		t.Error("empty calendar id must not override the default")
	}

	WithCalendarID("team@example.com")(c)
	if c.CalendarID() != "team@example.com" {
		t.Errorf("unexpected calendar id %s", c.CalendarID())
	}
}
