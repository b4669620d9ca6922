package meeting_tools

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/meetmint/meetmint/internal/meeting"
	"github.com/meetmint/meetmint/internal/server"
	"github.com/meetmint/meetmint/internal/tools/common"
)

// RegisterMeetingTools registers all meeting-related tools with the MCP server
func RegisterMeetingTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	// List stored meetings (read-only, always available)
	listTool := mcp.NewTool("meeting_list",
		mcp.WithDescription("List all meetings created so far, newest first, with their completion status"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithBoolean("include_links",
			mcp.Description("Include the Google Meet link of each meeting in the output (default: false)"),
		),
	)

	s.AddTool(listTool, common.InstrumentedToolHandler("meeting_list", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleList(ctx, request, sc)
		}))

	if readOnly {
		return nil
	}

	// Instant meeting: mint a Meet link without leaving a calendar entry
	instantTool := mcp.NewTool("meeting_create_instant",
		mcp.WithDescription("Create an instant Google Meet link. The backing calendar event is deleted right after the link is extracted, so the meeting works immediately without cluttering the calendar."),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("title",
			mcp.Description("Meeting title (default: 'Instant Meeting')"),
		),
		mcp.WithString("description",
			mcp.Description("Meeting description (optional)"),
		),
	)

	s.AddTool(instantTool, common.InstrumentedToolHandlerWithOperation("meeting_create_instant", "create", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleCreateInstant(ctx, request, sc)
		}))

	// Scheduled meeting: the calendar event persists
	scheduleTool := mcp.NewTool("meeting_schedule",
		mcp.WithDescription("Schedule a Google Meet meeting at a future date and time. The calendar event persists and carries the Meet link."),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("title",
			mcp.Description("Meeting title (default: 'Scheduled Meeting')"),
		),
		mcp.WithString("description",
			mcp.Description("Meeting description (optional)"),
		),
		mcp.WithString("date",
			mcp.Required(),
			mcp.Description("Meeting date in YYYY-MM-DD format"),
		),
		mcp.WithString("time",
			mcp.Description("Start time in HH:MM 24-hour format (default: '10:00')"),
		),
		mcp.WithString("duration",
			mcp.Description("Meeting duration in minutes: '15', '30', '45', '60', or 'custom' (default: '60')"),
		),
		mcp.WithNumber("custom_minutes",
			mcp.Description("Duration in minutes when duration is 'custom' (1-300)"),
		),
	)

	s.AddTool(scheduleTool, common.InstrumentedToolHandlerWithOperation("meeting_schedule", "create", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleSchedule(ctx, request, sc)
		}))

	// Toggle the completion flag of a stored meeting
	setCompletedTool := mcp.NewTool("meeting_set_completed",
		mcp.WithDescription("Mark a stored meeting as completed or not completed"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("event_id",
			mcp.Required(),
			mcp.Description("The event ID of the meeting, as shown by meeting_list"),
		),
		mcp.WithBoolean("is_completed",
			mcp.Description("The completion state to set (default: true)"),
		),
	)

	s.AddTool(setCompletedTool, common.InstrumentedToolHandler("meeting_set_completed", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleSetCompleted(ctx, request, sc)
		}))

	return nil
}

func handleCreateInstant(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(ctx, args)

	svc, err := sc.ServiceForAccount(account)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	req := meeting.CreateRequest{}
	if title, ok := args["title"].(string); ok {
		req.Summary = title
	}
	if description, ok := args["description"].(string); ok {
		req.Description = description
	}

	res, err := svc.CreateInstantWindow(ctx, req)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create instant meeting: %v", err)), nil
	}

	result := fmt.Sprintf("Instant meeting created!\n\nMeet Link: %s\n", res.Meeting.MeetLink)
	result += fmt.Sprintf("Title: %s\n", res.Meeting.Title)
	if res.Note != "" {
		result += fmt.Sprintf("\nNote: %s\n", res.Note)
	}
	if !res.Deleted {
		result += fmt.Sprintf("\nWarning: the temporary calendar event %s could not be removed; it may still appear in the calendar.\n", res.Meeting.EventID)
	}

	return mcp.NewToolResultText(result), nil
}

func handleSchedule(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(ctx, args)

	date, ok := args["date"].(string)
	if !ok || date == "" {
		return mcp.NewToolResultError("date is required"), nil
	}

	svc, err := sc.ServiceForAccount(account)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	input := meeting.ScheduleInput{
		Date:     date,
		Duration: "60",
		Location: scheduleLocation(sc),
	}
	if title, ok := args["title"].(string); ok {
		input.Title = title
	}
	if description, ok := args["description"].(string); ok {
		input.Description = description
	}
	if startTime, ok := args["time"].(string); ok {
		input.Time = startTime
	}
	if duration, ok := args["duration"].(string); ok && duration != "" {
		input.Duration = duration
	}
	if customMins, ok := args["custom_minutes"].(float64); ok {
		input.CustomMins = int(customMins)
	}

	req, err := input.Resolve(time.Now().In(input.Location))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	res, err := svc.CreateScheduled(ctx, req)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to schedule meeting: %v", err)), nil
	}

	result := fmt.Sprintf("Meeting scheduled!\n\nMeet Link: %s\n", res.Meeting.MeetLink)
	result += fmt.Sprintf("Title: %s\n", res.Meeting.Title)
	result += fmt.Sprintf("Start: %s\n", res.Meeting.StartDateTime.Format("2006-01-02 15:04 MST"))
	result += fmt.Sprintf("End: %s\n", res.Meeting.EndDateTime.Format("2006-01-02 15:04 MST"))
	result += fmt.Sprintf("Event ID: %s\n", res.Meeting.EventID)

	return mcp.NewToolResultText(result), nil
}

func handleList(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	includeLinks := false
	if v, ok := args["include_links"].(bool); ok {
		includeLinks = v
	}

	// Reads the local store only; no calendar client and no token needed.
	stored := sc.Store().Meetings()
	if len(stored) == 0 {
		return mcp.NewToolResultText("No meetings created yet"), nil
	}

	result := fmt.Sprintf("Found %d meeting(s), newest first:\n\n", len(stored))
	for i := range stored {
		m := stored[len(stored)-1-i]
		status := "open"
		if m.IsCompleted {
			status = "completed"
		}
		result += fmt.Sprintf("%d. %s [%s]\n", i+1, m.Title, status)
		result += fmt.Sprintf("   Start: %s\n", m.StartDateTime.Format("2006-01-02 15:04 MST"))
		result += fmt.Sprintf("   Event ID: %s\n", m.EventID)
		if includeLinks && m.MeetLink != "" {
			result += fmt.Sprintf("   Meet Link: %s\n", m.MeetLink)
		}
		result += "\n"
	}

	return mcp.NewToolResultText(result), nil
}

func handleSetCompleted(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	eventID, ok := args["event_id"].(string)
	if !ok || eventID == "" {
		return mcp.NewToolResultError("event_id is required"), nil
	}

	isCompleted := true
	if v, ok := args["is_completed"].(bool); ok {
		isCompleted = v
	}

	// Store-only mutation; no calendar client and no token needed.
	if err := sc.Store().SetCompleted(eventID, isCompleted); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to update meeting %s: %v", eventID, err)), nil
	}

	state := "completed"
	if !isCompleted {
		state = "not completed"
	}
	return mcp.NewToolResultText(fmt.Sprintf("Meeting %s marked as %s", eventID, state)), nil
}

// scheduleLocation resolves the configured time zone, falling back to the
// process-local zone when it is unset or invalid.
func scheduleLocation(sc *server.ServerContext) *time.Location {
	tz := sc.Config().TimeZone
	if tz == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.Local
	}
	return loc
}
