package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/meetmint/meetmint/internal/calendar"
	"github.com/meetmint/meetmint/internal/config"
	"github.com/meetmint/meetmint/internal/meeting"
	"github.com/meetmint/meetmint/internal/store"
)

// openStore loads the configuration and opens the meeting store it points at.
// The caller owns closing the store.
func openStore() (*config.Config, *store.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	st, err := store.Open(cfg.StorePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open meeting store at %s: %w", cfg.StorePath, err)
	}

	return cfg, st, nil
}

// newCLIService builds a meeting service for an account from its saved OAuth
// token. Fails with authorization instructions when no token exists.
func newCLIService(ctx context.Context, cfg *config.Config, st *store.Store, account string) (*meeting.Service, error) {
	if account == "" {
		account = cfg.Account
	}

	client, err := calendar.NewClientForAccount(ctx, cfg, account,
		calendar.WithCalendarID(cfg.CalendarID))
	if err != nil {
		return nil, err
	}

	return meeting.NewService(client, st, nil, meeting.WithTimeZone(cfg.TimeZone)), nil
}

// configLocation resolves the configured time zone, falling back to the
// process-local zone.
func configLocation(cfg *config.Config) *time.Location {
	if cfg.TimeZone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return time.Local
	}
	return loc
}
