package server

import (
	"context"
	"fmt"
	"sync"

	"github.com/meetmint/meetmint/internal/calendar"
	"github.com/meetmint/meetmint/internal/config"
	"github.com/meetmint/meetmint/internal/instrumentation"
	"github.com/meetmint/meetmint/internal/meeting"
	"github.com/meetmint/meetmint/internal/store"
)

// ServerContext holds the shared state of a running server: configuration,
// the meeting store, the process-wide creation-state tracker, and cached
// per-account meeting services.
type ServerContext struct {
	ctx     context.Context
	cancel  context.CancelFunc
	cfg     *config.Config
	store   *store.Store
	tracker *meeting.StateTracker

	metrics     *instrumentation.Metrics
	auditLogger *instrumentation.AuditLogger

	services map[string]*meeting.Service // account name -> service (file tokens)
	mu       sync.RWMutex
	shutdown bool
}

// NewServerContext creates a new server context.
func NewServerContext(ctx context.Context, cfg *config.Config, st *store.Store) (*ServerContext, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if st == nil {
		return nil, fmt.Errorf("store is required")
	}

	shutdownCtx, cancel := context.WithCancel(ctx)

	return &ServerContext{
		ctx:      shutdownCtx,
		cancel:   cancel,
		cfg:      cfg,
		store:    st,
		tracker:  meeting.NewStateTracker(),
		services: make(map[string]*meeting.Service),
	}, nil
}

// Context returns the server context.
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// Config returns the server configuration.
func (sc *ServerContext) Config() *config.Config {
	return sc.cfg
}

// Store returns the meeting store.
func (sc *ServerContext) Store() *store.Store {
	return sc.store
}

// StateTracker returns the process-wide creation-state tracker.
func (sc *ServerContext) StateTracker() *meeting.StateTracker {
	return sc.tracker
}

// SetMetrics sets the metrics recorder for instrumentation.
func (sc *ServerContext) SetMetrics(m *instrumentation.Metrics) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.metrics = m
}

// Metrics returns the metrics recorder, or nil if instrumentation is not configured.
func (sc *ServerContext) Metrics() *instrumentation.Metrics {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.metrics
}

// SetAuditLogger sets the audit logger.
func (sc *ServerContext) SetAuditLogger(al *instrumentation.AuditLogger) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.auditLogger = al
}

// AuditLogger returns the audit logger, or nil if not configured.
func (sc *ServerContext) AuditLogger() *instrumentation.AuditLogger {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.auditLogger
}

// serviceOptions builds the common options for a meeting service: the
// configured timezone and the shared creation-state tracker, plus metrics
// when instrumentation is wired.
func (sc *ServerContext) serviceOptions() []meeting.ServiceOption {
	opts := []meeting.ServiceOption{
		meeting.WithTimeZone(sc.cfg.TimeZone),
		meeting.WithStateTracker(sc.tracker),
	}
	if m := sc.Metrics(); m != nil {
		opts = append(opts, meeting.WithMetrics(m))
	}
	return opts
}

// ServiceForAccount returns the meeting service for a named account, built
// from that account's saved OAuth token. Services are cached per account.
func (sc *ServerContext) ServiceForAccount(account string) (*meeting.Service, error) {
	if account == "" {
		account = sc.cfg.Account
	}

	sc.mu.Lock()
	if svc, ok := sc.services[account]; ok {
		sc.mu.Unlock()
		return svc, nil
	}
	sc.mu.Unlock()

	client, err := calendar.NewClientForAccount(sc.ctx, sc.cfg, account,
		calendar.WithCalendarID(sc.cfg.CalendarID))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar client for account %s: %w", account, err)
	}

	svc := meeting.NewService(client, sc.store, nil, sc.serviceOptions()...)

	sc.mu.Lock()
	sc.services[account] = svc
	sc.mu.Unlock()

	return svc, nil
}

// ServiceForToken builds a meeting service around a caller-supplied access
// token. The service is request-scoped but shares the store and the creation
// tracker, so the in-flight guard stays process-wide.
func (sc *ServerContext) ServiceForToken(ctx context.Context, accessToken string) (*meeting.Service, error) {
	client, err := calendar.NewClientForToken(ctx, accessToken,
		calendar.WithCalendarID(sc.cfg.CalendarID))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar client: %w", err)
	}

	return meeting.NewService(client, sc.store, nil, sc.serviceOptions()...), nil
}

// IsShutdown returns whether the server has been shutdown.
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// Shutdown shuts down the server context.
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.shutdown = true
	sc.cancel()
	return nil
}
