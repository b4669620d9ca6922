// Package google handles OAuth2 authentication against Google for meetmint.
//
// Two token sources exist side by side:
//
//   - HTTP and MCP callers supply a raw access token per request; it is used
//     verbatim through a static token source and never stored or refreshed.
//   - The CLI uses file-backed tokens (one file per named account) obtained
//     through the authorization-code flow, refreshed automatically by the
//     oauth2 transport.
//
// Client credentials come from configuration (environment or config file)
// and are never embedded in the binary.
package google
