// Package meeting_tools provides MCP tools for minting and tracking Google
// Meet links.
//
// Available tools:
//
// Meeting Creation (Write):
//   - meeting_create_instant - Mint a Meet link that works immediately; the
//     backing calendar event is removed right after the link is extracted
//   - meeting_schedule - Create a future meeting whose calendar event persists
//
// Meeting Tracking:
//   - meeting_list - List stored meetings, newest first (Read)
//   - meeting_set_completed - Toggle the completion flag of a meeting (Write)
//
// All tools support multi-account authentication via the "account" parameter.
//
// Example usage:
//
//	# Mint a Meet link right now
//	meeting_create_instant(account="work", title="Quick sync")
//
//	# Schedule a half-hour meeting
//	meeting_schedule(
//	    account="work",
//	    title="Planning",
//	    date="2026-09-03",
//	    time="14:00",
//	    duration="30"
//	)
//
//	# Mark it done afterwards
//	meeting_set_completed(event_id="abc123", is_completed=true)
package meeting_tools
