package meeting

import (
	"errors"
	"sync"
)

// ErrCreationInFlight is returned when a creation is triggered while another
// one is still running.
var ErrCreationInFlight = errors.New("a meeting creation is already in flight")

// Phase is the lifecycle phase of the most recent creation request.
type Phase int

const (
	// Idle means no creation has been requested yet.
	Idle Phase = iota
	// InFlight means a creation request is waiting on the provider.
	InFlight
	// Succeeded means the last creation produced a meeting.
	Succeeded
	// Failed means the last creation ended in an error.
	Failed
)

// String returns the lower-case phase name.
func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case InFlight:
		return "in_flight"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// CreationState is a snapshot of the creation lifecycle: exactly one of
// Meeting (Succeeded) or Reason (Failed) is meaningful, selected by Phase.
type CreationState struct {
	Phase   Phase
	Meeting *Meeting
	Reason  string
}

// StateTracker serializes creation requests within one process. It is the
// explicit replacement for the implicit "isLoading" flag: a second trigger
// while a request is in flight is refused instead of silently racing.
//
// A tracker can be shared by several Service instances (WithStateTracker) so
// that short-lived services built per request still refuse concurrent
// creations process-wide.
type StateTracker struct {
	mu    sync.Mutex
	state CreationState
}

// NewStateTracker returns an idle tracker.
func NewStateTracker() *StateTracker {
	return &StateTracker{}
}

// begin transitions to InFlight, refusing when already in flight.
func (t *StateTracker) begin() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state.Phase == InFlight {
		return ErrCreationInFlight
	}
	t.state = CreationState{Phase: InFlight}
	return nil
}

// succeed records a successful creation.
func (t *StateTracker) succeed(m Meeting) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = CreationState{Phase: Succeeded, Meeting: &m}
}

// fail records a failed creation.
func (t *StateTracker) fail(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	reason := ""
	if err != nil {
		reason = err.Error()
	}
	t.state = CreationState{Phase: Failed, Reason: reason}
}

// current returns a copy of the state.
func (t *StateTracker) current() CreationState {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.state
	if s.Meeting != nil {
		m := *s.Meeting
		s.Meeting = &m
	}
	return s
}
