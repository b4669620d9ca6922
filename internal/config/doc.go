// Package config resolves meetmint configuration from its three sources:
// hard defaults, an optional TOML config file, and environment variables
// (with .env support for development). Environment always wins over the file.
package config
