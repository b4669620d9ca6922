// Package meeting holds the meetmint domain: the Meeting record, scheduling
// input validation, the creation request lifecycle, and the service that
// turns creation requests into calendar events with Meet links.
package meeting
