package meeting_tools

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/meetmint/meetmint/internal/config"
	"github.com/meetmint/meetmint/internal/server"
	"github.com/meetmint/meetmint/internal/store"
)

func newTestServerContext(t *testing.T, timeZone string) *server.ServerContext {
	t.Helper()

	st, err := store.Open(filepath.Join(t.TempDir(), "meetings.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	cfg := &config.Config{
		TimeZone:   timeZone,
		CalendarID: "primary",
		Account:    "default",
	}

	sc, err := server.NewServerContext(context.Background(), cfg, st)
	if err != nil {
		t.Fatalf("failed to create server context: %v", err)
	}
	t.Cleanup(func() { sc.Shutdown() })

	return sc
}
