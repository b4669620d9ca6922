package instrumentation

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestToolInvocation_Complete(t *testing.T) {
	ti := NewToolInvocation("meeting_create_instant")
	if ti.Tool != "meeting_create_instant" {
		t.Errorf("expected tool name to be set, got %q", ti.Tool)
	}
	if ti.StartTime.IsZero() {
		t.Error("expected start time to be set")
	}

	ti.Complete(true, nil)
	if !ti.Success {
		t.Error("expected success")
	}
	if ti.Error != "" {
		t.Errorf("expected no error, got %q", ti.Error)
	}
	if ti.Status() != StatusSuccess {
		t.Errorf("expected status %q, got %q", StatusSuccess, ti.Status())
	}
}

func TestToolInvocation_CompleteWithError(t *testing.T) {
	ti := NewToolInvocation("meeting_schedule")
	ti.CompleteWithError(errors.New("calendar unavailable"))

	if ti.Success {
		t.Error("expected failure")
	}
	if ti.Error != "calendar unavailable" {
		t.Errorf("expected error message, got %q", ti.Error)
	}
	if ti.Status() != StatusError {
		t.Errorf("expected status %q, got %q", StatusError, ti.Status())
	}
}

func TestToolInvocation_UserDomain(t *testing.T) {
	ti := NewToolInvocation("meeting_list").WithUser("jane@example.com")
	if got := ti.UserDomain(); got != "example.com" {
		t.Errorf("expected domain 'example.com', got %q", got)
	}
}

func TestToolInvocation_LogAttrs_OmitsPII(t *testing.T) {
	ti := NewToolInvocation("meeting_create_instant").
		WithUser("jane@example.com").
		WithAccount("work").
		WithMode(ModeInstant).
		WithEventID("evt-1").
		CompleteSuccess()

	attrs := ti.LogAttrs()
	for _, attr := range attrs {
		if attr.Key == "user" {
			t.Error("LogAttrs must not include the full user email")
		}
		if attr.Key == "user_domain" && attr.Value.String() != "example.com" {
			t.Errorf("expected user_domain 'example.com', got %q", attr.Value.String())
		}
	}
}

func TestToolInvocation_LogAuditAttrs_IncludesPII(t *testing.T) {
	ti := NewToolInvocation("meeting_create_instant").
		WithUser("jane@example.com").
		WithEventID("evt-1").
		CompleteSuccess()

	var sawUser, sawEventID bool
	for _, attr := range ti.LogAuditAttrs() {
		switch attr.Key {
		case "user":
			sawUser = attr.Value.String() == "jane@example.com"
		case "event_id":
			sawEventID = attr.Value.String() == "evt-1"
		}
	}

	if !sawUser {
		t.Error("expected full user email in audit attrs")
	}
	if !sawEventID {
		t.Error("expected event_id in audit attrs")
	}
}

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func TestAuditLogger_LogToolInvocation(t *testing.T) {
	logger, buf := newBufferLogger()
	al := NewAuditLogger(logger)

	ti := NewToolInvocation("meeting_list").CompleteSuccess()
	al.LogToolInvocation(ti)

	out := buf.String()
	if !strings.Contains(out, "tool_executed") {
		t.Errorf("expected tool_executed log line, got %q", out)
	}
	if !strings.Contains(out, "tool=meeting_list") {
		t.Errorf("expected tool attribute, got %q", out)
	}
}

func TestAuditLogger_LogToolInvocation_Failure(t *testing.T) {
	logger, buf := newBufferLogger()
	al := NewAuditLogger(logger)

	ti := NewToolInvocation("meeting_schedule").CompleteWithError(errors.New("boom"))
	al.LogToolInvocation(ti)

	out := buf.String()
	if !strings.Contains(out, "tool_failed") {
		t.Errorf("expected tool_failed log line, got %q", out)
	}
	if !strings.Contains(out, "boom") {
		t.Errorf("expected error in log line, got %q", out)
	}
}

func TestAuditLogger_Disabled(t *testing.T) {
	logger, buf := newBufferLogger()
	al := NewAuditLoggerWithConfig(logger, AuditLoggingConfig{Enabled: false})

	al.LogToolInvocation(NewToolInvocation("meeting_list").CompleteSuccess())
	al.LogMeetingCreation(&MeetingCreation{Mode: ModeInstant, Success: true})

	if buf.Len() != 0 {
		t.Errorf("expected no output from disabled audit logger, got %q", buf.String())
	}
}

func TestAuditLogger_LogMeetingCreation(t *testing.T) {
	logger, buf := newBufferLogger()
	al := NewAuditLogger(logger)

	al.LogMeetingCreation(&MeetingCreation{
		Mode:         ModeInstant,
		EventID:      "evt-9",
		EventDeleted: true,
		Duration:     250 * time.Millisecond,
		Success:      true,
	})

	out := buf.String()
	if !strings.Contains(out, "meeting_created") {
		t.Errorf("expected meeting_created log line, got %q", out)
	}
	if !strings.Contains(out, "mode=instant") {
		t.Errorf("expected mode attribute, got %q", out)
	}
	if !strings.Contains(out, "event_deleted=true") {
		t.Errorf("expected event_deleted attribute for instant mode, got %q", out)
	}
}

func TestAuditLogger_LogMeetingCreation_Failure(t *testing.T) {
	logger, buf := newBufferLogger()
	al := NewAuditLogger(logger)

	al.LogMeetingCreation(&MeetingCreation{
		Mode:    ModeScheduled,
		Success: false,
		Error:   "insert failed",
	})

	out := buf.String()
	if !strings.Contains(out, "meeting_creation_failed") {
		t.Errorf("expected meeting_creation_failed log line, got %q", out)
	}
	if !strings.Contains(out, "insert failed") {
		t.Errorf("expected error in log line, got %q", out)
	}
}
