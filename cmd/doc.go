// Package cmd implements the command-line interface for meetmint.
//
// This package provides the following commands:
//   - instant: Mint a Google Meet link that works immediately
//   - schedule: Create a future meeting whose calendar event persists
//   - list: Show stored meetings, newest first
//   - done: Toggle the completion flag of a stored meeting
//   - auth: Authorize a Google account for CLI use
//   - serve: Start the HTTP JSON API server
//   - mcp: Start the MCP server to provide tools for AI assistants
//   - version: Display version information
//
// The list command is the default command when no subcommand is specified.
package cmd
