package meeting

import (
	"context"
	"log/slog"
	"time"

	"github.com/meetmint/meetmint/internal/calendar"
	"github.com/meetmint/meetmint/internal/logging"
)

// Meeting modes, used in responses, logs and metrics.
const (
	ModeInstant   = "instant"
	ModeScheduled = "scheduled"
)

// InstantNote explains why an instant meeting never shows up on the calendar.
const InstantNote = "Event was deleted right after creation. Only Meet link returned."

// Conferencer is the slice of the calendar client the service needs.
type Conferencer interface {
	CreateConferenceEvent(ctx context.Context, input calendar.ConferenceEventInput) (*calendar.ConferenceEvent, error)
	DeleteEvent(ctx context.Context, eventID string) error
}

// Store is the persisted meeting collection. Implemented by internal/store.
type Store interface {
	// Add appends a meeting and persists the collection.
	Add(m Meeting) error
	// SetCompleted replaces the completion flag of the matching record.
	// Unknown event ids are a silent no-op.
	SetCompleted(eventID string, isCompleted bool) error
	// Meetings returns the collection in insertion order.
	Meetings() []Meeting
}

// MetricsRecorder records meeting creation outcomes. Implemented by
// instrumentation.Metrics; nil disables recording.
type MetricsRecorder interface {
	RecordMeetingCreation(ctx context.Context, mode, status string, duration time.Duration)
}

// Service creates meetings through the calendar provider and records them in
// the store. One Service guards one creation at a time; the caller-facing
// trigger is expected to be disabled while a request is in flight.
type Service struct {
	cal      Conferencer
	store    Store
	logger   *slog.Logger
	metrics  MetricsRecorder
	timeZone string
	tracker  *StateTracker

	// now is swappable in tests
	now func() time.Time
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithTimeZone sets the time zone attached to created events.
func WithTimeZone(tz string) ServiceOption {
	return func(s *Service) {
		if tz != "" {
			s.timeZone = tz
		}
	}
}

// WithMetrics attaches a metrics recorder.
func WithMetrics(m MetricsRecorder) ServiceOption {
	return func(s *Service) { s.metrics = m }
}

// WithClock overrides the wall clock, for tests.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) { s.now = now }
}

// WithStateTracker shares a creation-state tracker between services. Services
// built per request use this to keep the in-flight guard process-wide.
func WithStateTracker(t *StateTracker) ServiceOption {
	return func(s *Service) {
		if t != nil {
			s.tracker = t
		}
	}
}

// NewService creates a meeting service. logger may be nil.
func NewService(cal Conferencer, store Store, logger *slog.Logger, opts ...ServiceOption) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		cal:      cal,
		store:    store,
		logger:   logger,
		timeZone: "UTC",
		tracker:  NewStateTracker(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Result is the outcome of a successful creation.
type Result struct {
	Meeting Meeting

	// Deleted reports whether the backing calendar event was removed again
	// (instant mode). False in scheduled mode, and in the rare instant case
	// where the cleanup delete failed after the link was minted.
	Deleted bool

	// Note carries the instant-mode explanation, empty otherwise.
	Note string
}

// CreateInstant mints a Meet link without leaving a calendar footprint:
// it creates an event starting now with a fixed one-hour window, extracts
// the link, and deletes the event again.
func (s *Service) CreateInstant(ctx context.Context) (*Result, error) {
	return s.CreateInstantWindow(ctx, CreateRequest{})
}

// CreateInstantWindow is CreateInstant with caller-supplied overrides. Zero
// fields fall back to the instant defaults: title, description, and a window
// of now plus one hour.
func (s *Service) CreateInstantWindow(ctx context.Context, req CreateRequest) (*Result, error) {
	summary := req.Summary
	if summary == "" {
		summary = DefaultInstantTitle
	}
	description := req.Description
	if description == "" {
		description = DefaultDescription
	}
	start := req.Start
	if start.IsZero() {
		start = s.now()
	}
	end := req.End
	if end.IsZero() {
		end = start.Add(InstantDuration)
	}

	input := calendar.ConferenceEventInput{
		Summary:     summary,
		Description: description,
		Start:       start,
		End:         end,
		TimeZone:    s.timeZone,
	}

	return s.create(ctx, ModeInstant, input, true)
}

// CreateScheduled creates a real calendar event with an attached Meet link.
// The request is assumed validated upstream; in particular end > start is
// the scheduling form's responsibility.
func (s *Service) CreateScheduled(ctx context.Context, req CreateRequest) (*Result, error) {
	summary := req.Summary
	if summary == "" {
		summary = DefaultScheduledTitle
	}
	description := req.Description
	if description == "" {
		description = DefaultDescription
	}

	input := calendar.ConferenceEventInput{
		Summary:     summary,
		Description: description,
		Start:       req.Start,
		End:         req.End,
		TimeZone:    s.timeZone,
	}

	return s.create(ctx, ModeScheduled, input, false)
}

func (s *Service) create(ctx context.Context, mode string, input calendar.ConferenceEventInput, removeAfter bool) (*Result, error) {
	if err := s.tracker.begin(); err != nil {
		return nil, err
	}

	logger := logging.WithMode(s.logger, mode)
	started := s.now()

	ce, err := s.cal.CreateConferenceEvent(ctx, input)
	if err != nil {
		// A link-less event may still have been created; remove it so the
		// failed request leaves no calendar footprint.
		if ce != nil && ce.EventID != "" {
			if delErr := s.cal.DeleteEvent(ctx, ce.EventID); delErr != nil {
				logger.Warn("failed to clean up link-less event",
					logging.EventID(ce.EventID), logging.Err(delErr))
			}
		}
		s.finish(ctx, mode, started, nil, err)
		logger.Error("meeting creation failed", logging.Err(err))
		return nil, err
	}

	deleted := false
	if removeAfter {
		deleted = true
		if delErr := s.cal.DeleteEvent(ctx, ce.EventID); delErr != nil {
			// The link is already minted; losing the cleanup only leaves a
			// stray calendar entry, which the caller is told about.
			logger.Warn("failed to delete instant meeting event",
				logging.EventID(ce.EventID), logging.Err(delErr))
			deleted = false
		}
	}

	m := Meeting{
		EventID:       ce.EventID,
		Title:         input.Summary,
		Description:   input.Description,
		StartDateTime: input.Start,
		EndDateTime:   input.End,
		MeetLink:      ce.MeetLink,
		IsCompleted:   false,
	}

	if err := s.store.Add(m); err != nil {
		s.finish(ctx, mode, started, nil, err)
		logger.Error("failed to record meeting", logging.EventID(m.EventID), logging.Err(err))
		return nil, err
	}

	s.finish(ctx, mode, started, &m, nil)
	logger.Info("meeting created",
		logging.EventID(m.EventID), logging.Status(logging.StatusSuccess))

	result := &Result{Meeting: m, Deleted: deleted}
	if mode == ModeInstant {
		result.Note = InstantNote
	}
	return result, nil
}

func (s *Service) finish(ctx context.Context, mode string, started time.Time, m *Meeting, err error) {
	if err != nil {
		s.tracker.fail(err)
	} else {
		s.tracker.succeed(*m)
	}

	if s.metrics != nil {
		status := logging.StatusSuccess
		if err != nil {
			status = logging.StatusError
		}
		s.metrics.RecordMeetingCreation(ctx, mode, status, s.now().Sub(started))
	}
}

// State returns a snapshot of the creation lifecycle.
func (s *Service) State() CreationState {
	return s.tracker.current()
}

// List returns the stored meetings newest first.
func (s *Service) List() []Meeting {
	stored := s.store.Meetings()
	out := make([]Meeting, len(stored))
	for i, m := range stored {
		out[len(stored)-1-i] = m
	}
	return out
}

// SetCompleted toggles the completion flag of a stored meeting.
func (s *Service) SetCompleted(eventID string, isCompleted bool) error {
	return s.store.SetCompleted(eventID, isCompleted)
}
