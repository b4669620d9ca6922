package meeting_tools

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/meetmint/meetmint/internal/meeting"
	"github.com/meetmint/meetmint/internal/server"
	"github.com/meetmint/meetmint/internal/tools/common"
)

// TestCommonGetAccountFromArgs verifies that the meeting_tools package
// correctly uses the shared common.GetAccountFromArgs function.
// Comprehensive tests for GetAccountFromArgs are in internal/tools/common/account_test.go
func TestCommonGetAccountFromArgs(t *testing.T) {
	ctx := context.Background()

	args := map[string]interface{}{
		"account": "test-account",
	}
	result := common.GetAccountFromArgs(ctx, args)
	if result != "test-account" {
		t.Errorf("GetAccountFromArgs() = %v, expected test-account", result)
	}
}

func TestScheduleLocation_UnsetFallsBackToLocal(t *testing.T) {
	sc := newTestServerContext(t, "")
	if got := scheduleLocation(sc); got != time.Local {
		t.Errorf("scheduleLocation() = %v, expected time.Local", got)
	}
}

func TestScheduleLocation_InvalidFallsBackToLocal(t *testing.T) {
	sc := newTestServerContext(t, "Not/AZone")
	if got := scheduleLocation(sc); got != time.Local {
		t.Errorf("scheduleLocation() = %v, expected time.Local", got)
	}
}

func TestScheduleLocation_Configured(t *testing.T) {
	sc := newTestServerContext(t, "UTC")
	if got := scheduleLocation(sc); got != time.UTC {
		t.Errorf("scheduleLocation() = %v, expected time.UTC", got)
	}
}

func seedMeeting(t *testing.T, sc *server.ServerContext, eventID, title string) {
	t.Helper()

	start := time.Date(2026, 9, 3, 14, 0, 0, 0, time.UTC)
	err := sc.Store().Add(meeting.Meeting{
		EventID:       eventID,
		Title:         title,
		StartDateTime: start,
		EndDateTime:   start.Add(30 * time.Minute),
		MeetLink:      "https://meet.google.com/" + eventID,
	})
	if err != nil {
		t.Fatalf("failed to seed meeting: %v", err)
	}
}

// The list tool reads the local store only, so it must work for accounts
// that never authorized a calendar token.
func TestHandleList_WorksWithoutToken(t *testing.T) {
	ctx := context.Background()
	sc := newTestServerContext(t, "UTC")
	seedMeeting(t, sc, "evt-list-1", "Planning")

	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]interface{}{
		"account": "account-without-token",
	}

	result, err := handleList(ctx, req, sc)
	if err != nil {
		t.Fatalf("handleList() error = %v", err)
	}
	if result.IsError {
		t.Fatalf("handleList() returned error result: %v", result.Content)
	}

	text := resultText(t, result)
	if !strings.Contains(text, "Planning") {
		t.Errorf("expected listed meeting in output, got %q", text)
	}
	if !strings.Contains(text, "evt-list-1") {
		t.Errorf("expected event ID in output, got %q", text)
	}
}

func TestHandleList_NewestFirst(t *testing.T) {
	ctx := context.Background()
	sc := newTestServerContext(t, "UTC")
	seedMeeting(t, sc, "evt-old", "Old meeting")
	seedMeeting(t, sc, "evt-new", "New meeting")

	result, err := handleList(ctx, mcp.CallToolRequest{}, sc)
	if err != nil {
		t.Fatalf("handleList() error = %v", err)
	}

	text := resultText(t, result)
	newIdx := strings.Index(text, "New meeting")
	oldIdx := strings.Index(text, "Old meeting")
	if newIdx == -1 || oldIdx == -1 {
		t.Fatalf("expected both meetings in output, got %q", text)
	}
	if newIdx > oldIdx {
		t.Errorf("expected newest meeting first, got %q", text)
	}
}

// Completion toggling is a store-only mutation and must not require a token.
func TestHandleSetCompleted_WorksWithoutToken(t *testing.T) {
	ctx := context.Background()
	sc := newTestServerContext(t, "UTC")
	seedMeeting(t, sc, "evt-done-1", "Standup")

	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]interface{}{
		"account":  "account-without-token",
		"event_id": "evt-done-1",
	}

	result, err := handleSetCompleted(ctx, req, sc)
	if err != nil {
		t.Fatalf("handleSetCompleted() error = %v", err)
	}
	if result.IsError {
		t.Fatalf("handleSetCompleted() returned error result: %v", result.Content)
	}

	meetings := sc.Store().Meetings()
	if len(meetings) != 1 || !meetings[0].IsCompleted {
		t.Errorf("expected meeting to be marked completed, got %+v", meetings)
	}
}

func TestHandleSetCompleted_MissingEventID(t *testing.T) {
	ctx := context.Background()
	sc := newTestServerContext(t, "UTC")

	result, err := handleSetCompleted(ctx, mcp.CallToolRequest{}, sc)
	if err != nil {
		t.Fatalf("handleSetCompleted() error = %v", err)
	}
	if !result.IsError {
		t.Error("expected error result for missing event_id")
	}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	var sb strings.Builder
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			sb.WriteString(tc.Text)
		}
	}
	return sb.String()
}
