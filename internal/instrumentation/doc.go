// Package instrumentation provides OpenTelemetry-based observability for
// meetmint: metrics, distributed tracing, and audit logging.
//
// # Metrics
//
// Metrics cover the HTTP relay (request counts and latency), Google Calendar
// API operations, meeting creations by mode and result, meeting store
// mutations, OAuth authentication attempts, and MCP tool invocations. The
// default exporter is Prometheus, served by the metrics server; OTLP and
// stdout exporters can be selected via METRICS_EXPORTER.
//
// # Tracing
//
// Tracing is disabled by default. Set TRACING_EXPORTER to "otlp" or "stdout"
// to enable it. Spans follow the meeting creation flow: an outer
// meeting.create.<mode> span wraps the calendar.insert span and, for instant
// meetings, the calendar.delete span that removes the backing event.
//
// # Audit logging
//
// Instant meetings delete their backing calendar event immediately, so the
// audit log is the only durable server-side record that a link was minted.
// Audit records omit PII by default; set AUDIT_LOGGING_INCLUDE_PII=true to
// log full account emails.
//
// # Configuration
//
// All settings are environment-driven with sensible defaults; see
// DefaultConfig. INSTRUMENTATION_ENABLED=false disables the entire stack,
// leaving no-op recorders in place so call sites need no guards.
package instrumentation
