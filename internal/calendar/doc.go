// Package calendar wraps the Google Calendar API for meetmint.
//
// The client creates calendar events with an attached Google Meet conference,
// extracts the video entry point of the provisioned conference, and deletes
// events again (instant meetings exist on the calendar only for the moment it
// takes to mint their Meet link).
//
// Entry-point extraction always selects the entry whose type is "video".
// Conference data can carry phone and SIP entries in any order, so indexing
// the first entry is never safe.
package calendar
