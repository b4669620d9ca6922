package meeting

import (
	"fmt"
	"time"
)

// Default titles and description applied when the caller leaves them empty,
// matching what the scheduler has always written into the calendar.
const (
	DefaultInstantTitle   = "Instant Meeting"
	DefaultScheduledTitle = "Scheduled Meeting"
	DefaultDescription    = "Meeting created via Meeting Scheduler"
)

// InstantDuration is the fixed length of an instant meeting.
const InstantDuration = 60 * time.Minute

// Meeting is the persisted record of a created meeting. Field names follow
// the wire format of the store and the HTTP API.
type Meeting struct {
	EventID       string    `json:"eventId"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	StartDateTime time.Time `json:"startDateTime"`
	EndDateTime   time.Time `json:"endDateTime"`
	MeetLink      string    `json:"meetLink"`
	IsCompleted   bool      `json:"isCompleted"`
}

// Validate checks the structural invariants of a Meeting record.
func (m Meeting) Validate() error {
	if m.EventID == "" {
		return fmt.Errorf("meeting has no event id")
	}
	if m.MeetLink == "" {
		return fmt.Errorf("meeting has no meet link")
	}
	if !m.EndDateTime.After(m.StartDateTime) {
		return fmt.Errorf("meeting end %s is not after start %s",
			m.EndDateTime.Format(time.RFC3339), m.StartDateTime.Format(time.RFC3339))
	}
	return nil
}

// Duration returns the meeting length.
func (m Meeting) Duration() time.Duration {
	return m.EndDateTime.Sub(m.StartDateTime)
}
