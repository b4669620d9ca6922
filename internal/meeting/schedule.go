package meeting

import (
	"fmt"
	"time"
)

// DurationCustom selects a caller-supplied duration in minutes.
const DurationCustom = "custom"

// PresetDurations are the selectable meeting lengths in minutes.
var PresetDurations = []int{15, 30, 45, 60}

// Custom duration bounds in minutes.
const (
	MinCustomMinutes = 1
	MaxCustomMinutes = 300
)

// ScheduleInput collects the parameters of the scheduling form. Date and
// Time are kept as entered so validation can distinguish "nothing selected"
// from a bad value.
type ScheduleInput struct {
	Title       string
	Description string
	Date        string // YYYY-MM-DD
	Time        string // HH:MM, 24h
	Duration    string // one of PresetDurations, or "custom"
	CustomMins  int    // used when Duration == "custom"
	Location    *time.Location
}

// Resolve validates the input against the current wall clock and returns the
// creation request it describes. No request is built when validation fails.
func (in ScheduleInput) Resolve(now time.Time) (CreateRequest, error) {
	var req CreateRequest

	if in.Date == "" {
		return req, fmt.Errorf("no date selected")
	}

	loc := in.Location
	if loc == nil {
		loc = now.Location()
	}

	startTime := in.Time
	if startTime == "" {
		startTime = "10:00"
	}

	start, err := time.ParseInLocation("2006-01-02 15:04", in.Date+" "+startTime, loc)
	if err != nil {
		return req, fmt.Errorf("invalid date or time: %w", err)
	}

	if start.Before(now) {
		return req, fmt.Errorf("please select a future date and time")
	}

	minutes, err := in.durationMinutes()
	if err != nil {
		return req, err
	}

	req.Summary = in.Title
	if req.Summary == "" {
		req.Summary = DefaultScheduledTitle
	}
	req.Description = in.Description
	if req.Description == "" {
		req.Description = DefaultDescription
	}
	req.Start = start
	req.End = start.Add(time.Duration(minutes) * time.Minute)

	return req, nil
}

func (in ScheduleInput) durationMinutes() (int, error) {
	if in.Duration == DurationCustom {
		if in.CustomMins < MinCustomMinutes || in.CustomMins > MaxCustomMinutes {
			return 0, fmt.Errorf("custom duration must be between %d and %d minutes",
				MinCustomMinutes, MaxCustomMinutes)
		}
		return in.CustomMins, nil
	}

	for _, preset := range PresetDurations {
		if in.Duration == fmt.Sprintf("%d", preset) {
			return preset, nil
		}
	}
	return 0, fmt.Errorf("duration must be one of 15, 30, 45, 60 or custom")
}

// CreateRequest is a validated scheduled-meeting creation request.
type CreateRequest struct {
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
}
