package instrumentation

import (
	"context"
	"testing"
	"time"
)

func newTestProvider(t *testing.T, ctx context.Context) *Provider {
	t.Helper()

	provider, err := NewProvider(ctx, Config{
		ServiceName:     "test-service",
		ServiceVersion:  "1.0.0",
		Enabled:         true,
		MetricsExporter: "prometheus",
		TracingExporter: "none",
	})
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}
	t.Cleanup(func() { _ = provider.Shutdown(ctx) })

	return provider
}

func TestMetrics_RecordHTTPRequest(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	provider := newTestProvider(t, ctx)

	metrics := provider.Metrics()
	if metrics == nil {
		t.Fatal("expected metrics to be non-nil")
	}

	// Should not panic
	metrics.RecordHTTPRequest(ctx, "POST", "/api/meetings/instant", 200, 100*time.Millisecond)
	metrics.RecordHTTPRequest(ctx, "GET", "/api/meetings", 500, 50*time.Millisecond)
}

func TestMetrics_RecordCalendarOperation(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	metrics := newTestProvider(t, ctx).Metrics()

	// Should not panic
	metrics.RecordCalendarOperation(ctx, OperationCreate, StatusSuccess, 200*time.Millisecond)
	metrics.RecordCalendarOperation(ctx, OperationDelete, StatusError, 500*time.Millisecond)
	metrics.RecordCalendarOperation(ctx, OperationGet, StatusSuccess, 100*time.Millisecond)
}

func TestMetrics_RecordMeetingCreation(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	metrics := newTestProvider(t, ctx).Metrics()

	// Should not panic
	metrics.RecordMeetingCreation(ctx, ModeInstant, StatusSuccess, 800*time.Millisecond)
	metrics.RecordMeetingCreation(ctx, ModeScheduled, StatusSuccess, 400*time.Millisecond)
	metrics.RecordMeetingCreation(ctx, ModeInstant, StatusError, 100*time.Millisecond)
}

func TestMetrics_RecordStoreMutation(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	metrics := newTestProvider(t, ctx).Metrics()

	// Should not panic
	metrics.RecordStoreMutation(ctx, "add", StatusSuccess)
	metrics.RecordStoreMutation(ctx, "set_completed", StatusError)
}

func TestMetrics_RecordOAuthAuth(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	metrics := newTestProvider(t, ctx).Metrics()

	// Should not panic
	metrics.RecordOAuthAuth(ctx, OAuthResultSuccess)
	metrics.RecordOAuthAuth(ctx, OAuthResultFailure)
}

func TestMetrics_RecordToolInvocation(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	metrics := newTestProvider(t, ctx).Metrics()

	// Should not panic
	metrics.RecordToolInvocation(ctx, "meeting_create_instant", StatusSuccess, 300*time.Millisecond)
	metrics.RecordToolInvocation(ctx, "meeting_schedule", StatusError, 100*time.Millisecond)
	metrics.RecordToolInvocationWithAccount(ctx, "meeting_list", StatusSuccess, "work", 10*time.Millisecond)
}

func TestMetrics_NoOpWhenUninitialized(t *testing.T) {
	ctx := context.Background()
	m := &Metrics{}

	// All recorders must tolerate an uninitialized Metrics value.
	m.RecordHTTPRequest(ctx, "GET", "/api/meetings", 200, time.Millisecond)
	m.RecordCalendarOperation(ctx, OperationCreate, StatusSuccess, time.Millisecond)
	m.RecordMeetingCreation(ctx, ModeInstant, StatusSuccess, time.Millisecond)
	m.RecordStoreMutation(ctx, "add", StatusSuccess)
	m.RecordOAuthAuth(ctx, OAuthResultSuccess)
	m.RecordToolInvocation(ctx, "meeting_list", StatusSuccess, time.Millisecond)
}
