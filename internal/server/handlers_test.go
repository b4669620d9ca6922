package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meetmint/meetmint/internal/calendar"
	"github.com/meetmint/meetmint/internal/config"
	"github.com/meetmint/meetmint/internal/meeting"
	"github.com/meetmint/meetmint/internal/store"
)

// fakeConferencer is an in-memory calendar provider for handler tests.
type fakeConferencer struct {
	mu        sync.Mutex
	createErr error
	unblock   chan struct{} // when set, CreateConferenceEvent waits on it
	deleted   []string
	nextID    int
}

func (f *fakeConferencer) CreateConferenceEvent(ctx context.Context, input calendar.ConferenceEventInput) (*calendar.ConferenceEvent, error) {
	if f.unblock != nil {
		select {
		case <-f.unblock:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return nil, f.createErr
	}

	f.nextID++
	return &calendar.ConferenceEvent{
		EventID:     fmt.Sprintf("evt-%d", f.nextID),
		Summary:     input.Summary,
		Description: input.Description,
		Start:       input.Start,
		End:         input.End,
		MeetLink:    fmt.Sprintf("https://meet.google.com/fak-e%04d-id", f.nextID),
	}, nil
}

func (f *fakeConferencer) DeleteEvent(ctx context.Context, eventID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, eventID)
	return nil
}

type handlerFixture struct {
	sc      *ServerContext
	handler *APIHandler
	mux     *http.ServeMux
	store   *store.Store
	cal     *fakeConferencer
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()

	st, err := store.Open(filepath.Join(t.TempDir(), "meetings.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	cfg := &config.Config{
		TimeZone:   "UTC",
		CalendarID: "primary",
		Account:    "default",
	}

	sc, err := NewServerContext(context.Background(), cfg, st)
	require.NoError(t, err)

	cal := &fakeConferencer{}
	h := NewAPIHandler(sc, nil)
	h.serviceForToken = func(r *http.Request, accessToken string) (*meeting.Service, error) {
		return meeting.NewService(cal, st, nil,
			meeting.WithTimeZone(cfg.TimeZone),
			meeting.WithStateTracker(sc.StateTracker()),
		), nil
	}

	mux := http.NewServeMux()
	h.Register(mux)

	return &handlerFixture{sc: sc, handler: h, mux: mux, store: st, cal: cal}
}

func (f *handlerFixture) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	f.mux.ServeHTTP(rec, req)
	return rec
}

func TestCreateInstantEndpoint(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.do(t, http.MethodPost, "/api/meetings/instant", `{"accessToken":"tok"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp instantResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Equal(t, "evt-1", resp.EventID)
	assert.Contains(t, resp.MeetLink, "https://meet.google.com/")
	assert.True(t, resp.Deleted)
	assert.False(t, resp.IsCompleted)
	assert.Equal(t, meeting.InstantNote, resp.Note)

	// The backing event must have been deleted again.
	assert.Equal(t, []string{"evt-1"}, f.cal.deleted)

	// And the meeting recorded.
	require.Equal(t, 1, f.store.Len())
	assert.Equal(t, meeting.DefaultInstantTitle, f.store.Meetings()[0].Title)
}

func TestCreateInstantEndpoint_MissingToken(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.do(t, http.MethodPost, "/api/meetings/instant", `{"summary":"x"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "accessToken")
}

func TestCreateInstantEndpoint_BadJSON(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.do(t, http.MethodPost, "/api/meetings/instant", `{`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateInstantEndpoint_ProviderFailure(t *testing.T) {
	f := newHandlerFixture(t)
	f.cal.createErr = errors.New("quota exceeded")

	rec := f.do(t, http.MethodPost, "/api/meetings/instant", `{"accessToken":"tok"}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "quota exceeded")

	// Nothing stored on failure.
	assert.Equal(t, 0, f.store.Len())
}

func TestCreateScheduledEndpoint(t *testing.T) {
	f := newHandlerFixture(t)

	body := `{
		"summary": "Design review",
		"startDateTime": "2026-09-01T10:00:00Z",
		"endDateTime": "2026-09-01T10:30:00Z",
		"accessToken": "tok"
	}`
	rec := f.do(t, http.MethodPost, "/api/meetings/scheduled", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp scheduledResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Equal(t, "evt-1", resp.EventID)
	assert.False(t, resp.IsCompleted)

	// Scheduled events stay on the calendar.
	assert.Empty(t, f.cal.deleted)

	require.Equal(t, 1, f.store.Len())
	stored := f.store.Meetings()[0]
	assert.Equal(t, "Design review", stored.Title)
	assert.Equal(t, time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC), stored.StartDateTime.UTC())
}

func TestCreateScheduledEndpoint_MissingTimes(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.do(t, http.MethodPost, "/api/meetings/scheduled", `{"accessToken":"tok"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "startDateTime")
}

func TestCreateScheduledEndpoint_MalformedTime(t *testing.T) {
	f := newHandlerFixture(t)

	body := `{"startDateTime":"tomorrow","endDateTime":"2026-09-01T10:30:00Z","accessToken":"tok"}`
	rec := f.do(t, http.MethodPost, "/api/meetings/scheduled", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateEndpoint_ConflictWhileInFlight(t *testing.T) {
	f := newHandlerFixture(t)
	f.cal.unblock = make(chan struct{})

	firstDone := make(chan *httptest.ResponseRecorder, 1)
	go func() {
		firstDone <- f.do(t, http.MethodPost, "/api/meetings/instant", `{"accessToken":"tok"}`)
	}()

	// Wait until the first request is holding the in-flight guard.
	require.Eventually(t, func() bool {
		return f.sc.StateTracker() != nil && serviceState(f, t).Phase == meeting.InFlight
	}, time.Second, 5*time.Millisecond)

	rec := f.do(t, http.MethodPost, "/api/meetings/scheduled",
		`{"startDateTime":"2026-09-01T10:00:00Z","endDateTime":"2026-09-01T10:30:00Z","accessToken":"tok"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	close(f.cal.unblock)
	first := <-firstDone
	assert.Equal(t, http.StatusOK, first.Code)
}

// serviceState reads the shared creation state through a throwaway service.
func serviceState(f *handlerFixture, t *testing.T) meeting.CreationState {
	t.Helper()
	svc := meeting.NewService(f.cal, f.store, nil, meeting.WithStateTracker(f.sc.StateTracker()))
	return svc.State()
}

func TestListMeetingsEndpoint_NewestFirst(t *testing.T) {
	f := newHandlerFixture(t)

	require.NoError(t, f.store.Add(meeting.Meeting{EventID: "a", Title: "first"}))
	require.NoError(t, f.store.Add(meeting.Meeting{EventID: "b", Title: "second"}))

	rec := f.do(t, http.MethodGet, "/api/meetings", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp listResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.Len(t, resp.Meetings, 2)
	assert.Equal(t, "b", resp.Meetings[0].EventID)
	assert.Equal(t, "a", resp.Meetings[1].EventID)
}

func TestSetCompletedEndpoint(t *testing.T) {
	f := newHandlerFixture(t)
	require.NoError(t, f.store.Add(meeting.Meeting{EventID: "evt-1"}))

	rec := f.do(t, http.MethodPatch, "/api/meetings/evt-1", `{"isCompleted":true}`)
	require.Equal(t, http.StatusNoContent, rec.Code)

	assert.True(t, f.store.Meetings()[0].IsCompleted)
}

func TestSetCompletedEndpoint_UnknownID(t *testing.T) {
	f := newHandlerFixture(t)

	// Unknown ids are a silent no-op by the store contract.
	rec := f.do(t, http.MethodPatch, "/api/meetings/missing", `{"isCompleted":true}`)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestSetCompletedEndpoint_BadBody(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.do(t, http.MethodPatch, "/api/meetings/evt-1", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
