package meeting

import (
	"strings"
	"testing"
	"time"
)

func TestScheduleInput_Resolve(t *testing.T) {
	now := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   ScheduleInput
		wantErr string
		check   func(t *testing.T, req CreateRequest)
	}{
		{
			name:    "no date selected",
			input:   ScheduleInput{Time: "10:00", Duration: "60"},
			wantErr: "no date selected",
		},
		{
			name:    "past date",
			input:   ScheduleInput{Date: "2026-08-28", Time: "10:00", Duration: "60"},
			wantErr: "future date",
		},
		{
			name:    "past time today",
			input:   ScheduleInput{Date: "2026-08-29", Time: "08:00", Duration: "60"},
			wantErr: "future date",
		},
		{
			name:    "malformed date",
			input:   ScheduleInput{Date: "tomorrow", Time: "10:00", Duration: "60"},
			wantErr: "invalid date",
		},
		{
			name:    "unknown duration",
			input:   ScheduleInput{Date: "2026-08-30", Time: "10:00", Duration: "90"},
			wantErr: "duration must be one of",
		},
		{
			name:    "custom duration too small",
			input:   ScheduleInput{Date: "2026-08-30", Time: "10:00", Duration: "custom", CustomMins: 0},
			wantErr: "between 1 and 300",
		},
		{
			name:    "custom duration too large",
			input:   ScheduleInput{Date: "2026-08-30", Time: "10:00", Duration: "custom", CustomMins: 301},
			wantErr: "between 1 and 300",
		},
		{
			name:  "valid preset duration",
			input: ScheduleInput{Title: "Standup", Date: "2026-08-30", Time: "10:00", Duration: "60"},
			check: func(t *testing.T, req CreateRequest) {
				if req.Summary != "Standup" {
					t.Errorf("unexpected summary %q", req.Summary)
				}
				wantStart := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
				if !req.Start.Equal(wantStart) {
					t.Errorf("unexpected start %v", req.Start)
				}
				if req.End.Sub(req.Start) != 60*time.Minute {
					t.Errorf("unexpected duration %v", req.End.Sub(req.Start))
				}
			},
		},
		{
			name:  "valid custom duration",
			input: ScheduleInput{Date: "2026-08-30", Time: "14:30", Duration: "custom", CustomMins: 25},
			check: func(t *testing.T, req CreateRequest) {
				if req.End.Sub(req.Start) != 25*time.Minute {
					t.Errorf("unexpected duration %v", req.End.Sub(req.Start))
				}
			},
		},
		{
			name:  "defaults applied for empty title and description",
			input: ScheduleInput{Date: "2026-08-30", Duration: "15"},
			check: func(t *testing.T, req CreateRequest) {
				if req.Summary != DefaultScheduledTitle {
					t.Errorf("unexpected summary %q", req.Summary)
				}
				if req.Description != DefaultDescription {
					t.Errorf("unexpected description %q", req.Description)
				}
				// Time defaults to 10:00
				if req.Start.Hour() != 10 {
					t.Errorf("expected default start time 10:00, got %v", req.Start)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.input.Location == nil {
				tt.input.Location = time.UTC
			}
			req, err := tt.input.Resolve(now)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("expected error containing %q, got %q", tt.wantErr, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.check != nil {
				tt.check(t, req)
			}
		})
	}
}

func TestMeeting_Validate(t *testing.T) {
	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	valid := Meeting{
		EventID:       "evt-1",
		Title:         "Standup",
		StartDateTime: start,
		EndDateTime:   start.Add(time.Hour),
		MeetLink:      "https://meet.google.com/abc-defg-hij",
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("unexpected error for valid meeting: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(m *Meeting)
	}{
		{"missing event id", func(m *Meeting) { m.EventID = "" }},
		{"missing meet link", func(m *Meeting) { m.MeetLink = "" }},
		{"end equals start", func(m *Meeting) { m.EndDateTime = m.StartDateTime }},
		{"end before start", func(m *Meeting) { m.EndDateTime = m.StartDateTime.Add(-time.Minute) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := valid
			tt.mutate(&m)
			if err := m.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
