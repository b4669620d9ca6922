package google

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"

	"github.com/meetmint/meetmint/internal/config"
)

// TokenProvider is an interface for providing OAuth tokens for Google APIs.
// This abstraction allows different token sources (file-based for the CLI,
// request-supplied for the HTTP relay).
type TokenProvider interface {
	// GetTokenForAccount retrieves an OAuth token for the specified account
	GetTokenForAccount(ctx context.Context, account string) (*oauth2.Token, error)

	// HasTokenForAccount checks if a token exists for the specified account
	HasTokenForAccount(account string) bool
}

// FileTokenProvider provides tokens from disk files (CLI usage)
type FileTokenProvider struct {
	cfg *config.Config
}

// NewFileTokenProvider creates a new file-based token provider
func NewFileTokenProvider(cfg *config.Config) *FileTokenProvider {
	return &FileTokenProvider{cfg: cfg}
}

// GetTokenForAccount retrieves a token from disk for the specified account
func (p *FileTokenProvider) GetTokenForAccount(ctx context.Context, account string) (*oauth2.Token, error) {
	ts, err := TokenSourceForAccount(ctx, p.cfg, account)
	if err != nil {
		return nil, err
	}

	token, err := ts.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to get token from file: %w", err)
	}
	return token, nil
}

// HasTokenForAccount checks if a token file exists for the specified account
func (p *FileTokenProvider) HasTokenForAccount(account string) bool {
	return HasTokenForAccount(account)
}

// StaticTokenProvider serves a single caller-supplied access token for any
// account. It backs the HTTP relay, where each request carries its own token.
type StaticTokenProvider struct {
	token string
}

// NewStaticTokenProvider creates a provider around a raw access token.
func NewStaticTokenProvider(accessToken string) *StaticTokenProvider {
	return &StaticTokenProvider{token: accessToken}
}

// GetTokenForAccount returns the wrapped access token.
func (p *StaticTokenProvider) GetTokenForAccount(ctx context.Context, account string) (*oauth2.Token, error) {
	if p.token == "" {
		return nil, fmt.Errorf("no access token supplied")
	}
	return &oauth2.Token{AccessToken: p.token, TokenType: "Bearer"}, nil
}

// HasTokenForAccount reports whether a token was supplied.
func (p *StaticTokenProvider) HasTokenForAccount(account string) bool {
	return p.token != ""
}
