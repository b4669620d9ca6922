// Package server provides the shared server context, the meeting HTTP API,
// health endpoints, and the dedicated Prometheus metrics server.
//
// # Key Components
//
// ServerContext owns the configuration, the meeting store, and the
// process-wide creation-state tracker. It builds meeting services two ways:
//   - ServiceForAccount: long-lived, cached per named account, authenticated
//     with that account's saved OAuth token (CLI and MCP usage)
//   - ServiceForToken: request-scoped, authenticated with a caller-supplied
//     access token (HTTP relay usage); shares the store and tracker so the
//     in-flight guard stays process-wide
//
// APIHandler serves the meeting endpoints:
//   - POST /api/meetings/instant: mint a Meet link, delete the backing event
//   - POST /api/meetings/scheduled: create a calendar event with a Meet link
//   - GET /api/meetings: the stored collection, newest first
//   - PATCH /api/meetings/{eventId}: toggle a meeting's completion flag
//
// HealthChecker exposes /healthz and /readyz for Kubernetes probes; readiness
// covers the store connection and flips during graceful shutdown.
//
// MetricsServer serves /metrics on a dedicated port, isolated from the
// meeting API traffic.
//
// # Security
//
// Caller access tokens are relayed to the Google Calendar API and never
// persisted or logged; request bodies are excluded from request logs.
package server
