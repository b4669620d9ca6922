package google

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"

	"github.com/meetmint/meetmint/internal/config"
)

// OAuthConfig builds the oauth2 configuration from meetmint configuration.
func OAuthConfig(cfg *config.Config) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		Endpoint:     googleoauth.Endpoint,
		RedirectURL:  cfg.GoogleRedirectURI,
		Scopes:       DefaultOAuthScopes,
	}
}

// GetAuthURL returns the OAuth URL for user authorization.
// Offline access is requested so a refresh token is issued.
func GetAuthURL(cfg *config.Config) string {
	return OAuthConfig(cfg).AuthCodeURL("state", oauth2.AccessTypeOffline)
}

// tokenFile returns the path of the stored token for an account.
func tokenFile(account string) string {
	return filepath.Join(tokenDir(), account+".json")
}

func tokenDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "meetmint", "tokens")
}

// HasTokenForAccount checks if a stored OAuth token exists for the account.
func HasTokenForAccount(account string) bool {
	if account == "" {
		return false
	}
	_, err := os.Stat(tokenFile(account))
	return err == nil
}

// SaveTokenForAccount exchanges an authorization code for tokens and saves
// them under the account name.
func SaveTokenForAccount(ctx context.Context, cfg *config.Config, account, authCode string) error {
	if account == "" {
		return fmt.Errorf("account name cannot be empty")
	}

	t, err := OAuthConfig(cfg).Exchange(ctx, authCode)
	if err != nil {
		return fmt.Errorf("failed to exchange auth code: %w", err)
	}

	if err := os.MkdirAll(tokenDir(), 0700); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}

	data, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to encode token: %w", err)
	}
	if err := os.WriteFile(tokenFile(account), data, 0600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}

// TokenSourceForAccount returns an auto-refreshing token source backed by the
// stored token for the account.
func TokenSourceForAccount(ctx context.Context, cfg *config.Config, account string) (oauth2.TokenSource, error) {
	data, err := os.ReadFile(tokenFile(account))
	if err != nil {
		return nil, fmt.Errorf("no valid Google OAuth token found for account %s", account)
	}

	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("invalid token file for account %s: %w", account, err)
	}

	return OAuthConfig(cfg).TokenSource(ctx, &token), nil
}

// HTTPClientForAccount returns an HTTP client authenticated with the stored
// token for the account. The client is pinned to HTTP/1.1 to avoid HTTP/2
// protocol errors seen against the Google APIs.
func HTTPClientForAccount(ctx context.Context, cfg *config.Config, account string) (*http.Client, error) {
	ts, err := TokenSourceForAccount(ctx, cfg, account)
	if err != nil {
		return nil, err
	}
	return newHTTP1Client(ctx, ts), nil
}

// HTTPClientForToken returns an HTTP client that authenticates with a raw
// access token supplied by the caller. No refresh is attempted; when the
// token expires the provider rejects the request and the error is relayed.
func HTTPClientForToken(ctx context.Context, accessToken string) *http.Client {
	ts := oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	})
	return newHTTP1Client(ctx, ts)
}

func newHTTP1Client(ctx context.Context, ts oauth2.TokenSource) *http.Client {
	client := oauth2.NewClient(ctx, ts)

	// Force HTTP/1.1 by disabling HTTP/2
	if transport, ok := client.Transport.(*oauth2.Transport); ok {
		transport.Base = &http.Transport{
			ForceAttemptHTTP2: false,
		}
	}
	return client
}

// AuthInstructions returns a user-facing message describing how to authorize
// an account from the CLI.
func AuthInstructions(cfg *config.Config, account string) string {
	return fmt.Sprintf(`Google OAuth token not found for account %q. To authorize access:

1. Visit this URL in your browser:
   %s

2. Sign in with your Google account and grant Calendar access
3. Copy the authorization code
4. Run: meetmint auth --account %s --code <authorization code>`,
		account, GetAuthURL(cfg), account)
}
