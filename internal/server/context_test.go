package server

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/meetmint/meetmint/internal/config"
	"github.com/meetmint/meetmint/internal/store"
)

func newTestContext(t *testing.T) *ServerContext {
	t.Helper()

	st, err := store.Open(filepath.Join(t.TempDir(), "meetings.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	cfg := &config.Config{TimeZone: "UTC", CalendarID: "primary", Account: "default"}
	sc, err := NewServerContext(context.Background(), cfg, st)
	if err != nil {
		t.Fatalf("failed to create server context: %v", err)
	}
	return sc
}

func TestNewServerContext_RequiresConfigAndStore(t *testing.T) {
	if _, err := NewServerContext(context.Background(), nil, nil); err == nil {
		t.Error("expected error for nil config")
	}

	cfg := &config.Config{}
	if _, err := NewServerContext(context.Background(), cfg, nil); err == nil {
		t.Error("expected error for nil store")
	}
}

func TestServerContext_Shutdown(t *testing.T) {
	sc := newTestContext(t)

	if sc.IsShutdown() {
		t.Error("fresh context must not be shut down")
	}

	if err := sc.Shutdown(); err != nil {
		t.Errorf("shutdown failed: %v", err)
	}
	if !sc.IsShutdown() {
		t.Error("context should report shutdown")
	}

	select {
	case <-sc.Context().Done():
	default:
		t.Error("context should be cancelled after shutdown")
	}

	// Second shutdown is a no-op.
	if err := sc.Shutdown(); err != nil {
		t.Errorf("repeated shutdown failed: %v", err)
	}
}

func TestServerContext_ServiceForToken_SharesTracker(t *testing.T) {
	sc := newTestContext(t)

	svc1, err := sc.ServiceForToken(context.Background(), "tok-a")
	if err != nil {
		t.Fatalf("failed to build service: %v", err)
	}
	svc2, err := sc.ServiceForToken(context.Background(), "tok-b")
	if err != nil {
		t.Fatalf("failed to build service: %v", err)
	}

	if svc1 == svc2 {
		t.Fatal("token services must be request-scoped")
	}

	// Both services read the same tracker state.
	if svc1.State().Phase != svc2.State().Phase {
		t.Error("expected services to share creation state")
	}
}
