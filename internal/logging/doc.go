// Package logging provides structured logging utilities for meetmint.
//
// This package centralizes logging patterns to ensure consistent, structured
// logging throughout the codebase using the standard library's slog package.
//
// # Key Features
//
//   - Structured logging with slog
//   - Consistent attribute naming across the codebase
//   - OAuth token sanitization (tokens are never written to logs)
//   - Logger adapter interface for code that should not depend on slog directly
package logging
