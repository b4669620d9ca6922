package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/meetmint/meetmint/internal/instrumentation"
	"github.com/meetmint/meetmint/internal/logging"
	"github.com/meetmint/meetmint/internal/meeting"
)

// createRequest is the body of the meeting creation endpoints. The access
// token is the caller's Google OAuth token; it is relayed to the Calendar
// API and never persisted or logged.
type createRequest struct {
	Summary       string `json:"summary,omitempty"`
	Description   string `json:"description,omitempty"`
	StartDateTime string `json:"startDateTime,omitempty"`
	EndDateTime   string `json:"endDateTime,omitempty"`
	AccessToken   string `json:"accessToken"`
}

// instantResponse is the success body of POST /api/meetings/instant.
type instantResponse struct {
	Success     bool   `json:"success"`
	MeetLink    string `json:"meetLink"`
	EventID     string `json:"eventId"`
	Deleted     bool   `json:"deleted"`
	IsCompleted bool   `json:"isCompleted"`
	Note        string `json:"note,omitempty"`
}

// scheduledResponse is the success body of POST /api/meetings/scheduled.
type scheduledResponse struct {
	Success     bool   `json:"success"`
	MeetLink    string `json:"meetLink"`
	EventID     string `json:"eventId"`
	IsCompleted bool   `json:"isCompleted"`
}

// listResponse is the body of GET /api/meetings.
type listResponse struct {
	Success  bool              `json:"success"`
	Meetings []meeting.Meeting `json:"meetings"`
}

// completionRequest is the body of PATCH /api/meetings/{eventId}.
type completionRequest struct {
	IsCompleted bool `json:"isCompleted"`
}

// errorResponse is the failure body of every endpoint.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// APIHandler serves the meeting endpoints.
type APIHandler struct {
	sc     *ServerContext
	logger *slog.Logger

	// serviceForToken builds the request-scoped meeting service;
	// swappable in tests.
	serviceForToken func(r *http.Request, accessToken string) (*meeting.Service, error)
}

// NewAPIHandler creates an APIHandler. logger may be nil.
func NewAPIHandler(sc *ServerContext, logger *slog.Logger) *APIHandler {
	if logger == nil {
		logger = slog.Default()
	}
	h := &APIHandler{sc: sc, logger: logger}
	h.serviceForToken = func(r *http.Request, accessToken string) (*meeting.Service, error) {
		return sc.ServiceForToken(r.Context(), accessToken)
	}
	return h
}

// Register registers the meeting endpoints on the given mux.
func (h *APIHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/meetings/instant", h.handleCreateInstant)
	mux.HandleFunc("POST /api/meetings/scheduled", h.handleCreateScheduled)
	mux.HandleFunc("GET /api/meetings", h.handleListMeetings)
	mux.HandleFunc("PATCH /api/meetings/{eventId}", h.handleSetCompleted)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Success: false, Error: err.Error()})
}

// decodeCreateRequest parses and validates the shared creation body.
// requireTimes enforces the scheduled contract, where both timestamps
// come from the already validated scheduling form.
func decodeCreateRequest(r *http.Request, requireTimes bool) (*createRequest, meeting.CreateRequest, error) {
	var body createRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, meeting.CreateRequest{}, fmt.Errorf("invalid request body: %w", err)
	}
	if body.AccessToken == "" {
		return nil, meeting.CreateRequest{}, errors.New("accessToken is required")
	}

	req := meeting.CreateRequest{
		Summary:     body.Summary,
		Description: body.Description,
	}

	if body.StartDateTime != "" {
		start, err := time.Parse(time.RFC3339, body.StartDateTime)
		if err != nil {
			return nil, meeting.CreateRequest{}, fmt.Errorf("invalid startDateTime: %w", err)
		}
		req.Start = start
	} else if requireTimes {
		return nil, meeting.CreateRequest{}, errors.New("startDateTime is required")
	}

	if body.EndDateTime != "" {
		end, err := time.Parse(time.RFC3339, body.EndDateTime)
		if err != nil {
			return nil, meeting.CreateRequest{}, fmt.Errorf("invalid endDateTime: %w", err)
		}
		req.End = end
	} else if requireTimes {
		return nil, meeting.CreateRequest{}, errors.New("endDateTime is required")
	}

	return &body, req, nil
}

// creationStatus maps a creation error to the relayed HTTP status. Provider
// failures come back as 500 with the provider message; a duplicate trigger
// while one creation is in flight is a conflict, not a server fault.
func creationStatus(err error) int {
	if errors.Is(err, meeting.ErrCreationInFlight) {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func (h *APIHandler) audit(mode string, res *meeting.Result, started time.Time, err error) {
	al := h.sc.AuditLogger()
	if al == nil {
		return
	}

	mc := &instrumentation.MeetingCreation{
		Mode:     mode,
		Duration: time.Since(started),
		Success:  err == nil,
	}
	if err != nil {
		mc.Error = err.Error()
	}
	if res != nil {
		mc.EventID = res.Meeting.EventID
		mc.EventDeleted = res.Deleted
	}

	al.LogMeetingCreation(mc)
}

func (h *APIHandler) handleCreateInstant(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	body, req, err := decodeCreateRequest(r, false)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	svc, err := h.serviceForToken(r, body.AccessToken)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	res, err := svc.CreateInstantWindow(r.Context(), req)
	h.audit(meeting.ModeInstant, res, started, err)
	if err != nil {
		h.logger.Error("instant meeting creation failed",
			logging.Mode(meeting.ModeInstant), logging.Err(err))
		writeError(w, creationStatus(err), err)
		return
	}

	writeJSON(w, http.StatusOK, instantResponse{
		Success:     true,
		MeetLink:    res.Meeting.MeetLink,
		EventID:     res.Meeting.EventID,
		Deleted:     res.Deleted,
		IsCompleted: res.Meeting.IsCompleted,
		Note:        res.Note,
	})
}

func (h *APIHandler) handleCreateScheduled(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	body, req, err := decodeCreateRequest(r, true)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	svc, err := h.serviceForToken(r, body.AccessToken)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	res, err := svc.CreateScheduled(r.Context(), req)
	h.audit(meeting.ModeScheduled, res, started, err)
	if err != nil {
		h.logger.Error("scheduled meeting creation failed",
			logging.Mode(meeting.ModeScheduled), logging.Err(err))
		writeError(w, creationStatus(err), err)
		return
	}

	writeJSON(w, http.StatusOK, scheduledResponse{
		Success:     true,
		MeetLink:    res.Meeting.MeetLink,
		EventID:     res.Meeting.EventID,
		IsCompleted: res.Meeting.IsCompleted,
	})
}

func (h *APIHandler) handleListMeetings(w http.ResponseWriter, r *http.Request) {
	// Newest first, matching the list view's render order.
	stored := h.sc.Store().Meetings()
	meetings := make([]meeting.Meeting, 0, len(stored))
	for i := len(stored) - 1; i >= 0; i-- {
		meetings = append(meetings, stored[i])
	}

	writeJSON(w, http.StatusOK, listResponse{Success: true, Meetings: meetings})
}

func (h *APIHandler) handleSetCompleted(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventId")
	if eventID == "" {
		writeError(w, http.StatusBadRequest, errors.New("event id is required"))
		return
	}

	var body completionRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	if err := h.sc.Store().SetCompleted(eventID, body.IsCompleted); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	if m := h.sc.Metrics(); m != nil {
		m.RecordStoreMutation(r.Context(), "set_completed", instrumentation.StatusSuccess)
	}

	w.WriteHeader(http.StatusNoContent)
}
