package calendar

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/meetmint/meetmint/internal/config"
	"github.com/meetmint/meetmint/internal/google"
)

// ErrNoVideoEntryPoint is returned when the provider attached conference data
// without a video entry point, so no Meet link can be extracted.
var ErrNoVideoEntryPoint = errors.New("conference data contains no video entry point")

// Client wraps the Google Calendar service
type Client struct {
	svc        *calendar.Service
	calendarID string
}

// Option configures a Client.
type Option func(*Client)

// WithCalendarID targets a calendar other than "primary".
func WithCalendarID(id string) Option {
	return func(c *Client) {
		if id != "" {
			c.calendarID = id
		}
	}
}

// NewClientForAccount creates a Calendar client authenticated with the stored
// token for a named account (CLI usage). It fails with authorization
// instructions when no token exists; tokens are minted by the auth command.
func NewClientForAccount(ctx context.Context, cfg *config.Config, account string, opts ...Option) (*Client, error) {
	if !google.HasTokenForAccount(account) {
		return nil, errors.New(google.AuthInstructions(cfg, account))
	}

	httpClient, err := google.HTTPClientForAccount(ctx, cfg, account)
	if err != nil {
		return nil, fmt.Errorf("failed to get Google OAuth client for account %s: %w", account, err)
	}

	return newClient(ctx, httpClient, opts...)
}

// NewClientForToken creates a Calendar client from a raw access token
// supplied by the caller (HTTP relay usage). The token is used verbatim;
// expiry surfaces as a provider error on the first call.
func NewClientForToken(ctx context.Context, accessToken string, opts ...Option) (*Client, error) {
	if accessToken == "" {
		return nil, fmt.Errorf("access token cannot be empty")
	}
	return newClient(ctx, google.HTTPClientForToken(ctx, accessToken), opts...)
}

func newClient(ctx context.Context, httpClient *http.Client, opts ...Option) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create Calendar service: %w", err)
	}

	c := &Client{
		svc:        svc,
		calendarID: "primary",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// CalendarID returns the calendar this client creates events in.
func (c *Client) CalendarID() string {
	return c.calendarID
}

// CreateConferenceEvent creates a calendar event with an attached Google Meet
// conference and returns the created event with its extracted Meet link.
//
// When the provider returns conference data without a video entry point the
// error is ErrNoVideoEntryPoint; the returned event still carries the created
// EventID so the caller can clean the event up.
func (c *Client) CreateConferenceEvent(ctx context.Context, input ConferenceEventInput) (*ConferenceEvent, error) {
	tz := input.TimeZone
	if tz == "" {
		tz = "UTC"
	}

	event := &calendar.Event{
		Summary:     input.Summary,
		Description: input.Description,
		Start: &calendar.EventDateTime{
			DateTime: input.Start.Format(time.RFC3339),
			TimeZone: tz,
		},
		End: &calendar.EventDateTime{
			DateTime: input.End.Format(time.RFC3339),
			TimeZone: tz,
		},
		ConferenceData: &calendar.ConferenceData{
			CreateRequest: &calendar.CreateConferenceRequest{
				RequestId: "meet-" + uuid.NewString(),
				ConferenceSolutionKey: &calendar.ConferenceSolutionKey{
					Type: "hangoutsMeet",
				},
			},
		},
	}

	created, err := c.svc.Events.Insert(c.calendarID, event).
		ConferenceDataVersion(1).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	ce := toConferenceEvent(created)
	if ce.MeetLink == "" {
		return &ce, ErrNoVideoEntryPoint
	}
	return &ce, nil
}

// DeleteEvent deletes a calendar event
func (c *Client) DeleteEvent(ctx context.Context, eventID string) error {
	err := c.svc.Events.Delete(c.calendarID, eventID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}
