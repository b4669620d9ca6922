package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/meetmint/meetmint/internal/meeting"
)

const DriverName = "sqlite3"

// DefaultNamespace is the record key the meeting collection lives under.
const DefaultNamespace = "meetings-storage"

// ErrDuplicateEvent is returned when a meeting with the same event id is
// already stored.
var ErrDuplicateEvent = errors.New("meeting with this event id already stored")

// Store is the sqlite-backed meeting collection. All mutations go through a
// single writer lock and rewrite the namespaced record.
type Store struct {
	db        *sqlx.DB
	namespace string

	mu       sync.Mutex
	meetings []meeting.Meeting
}

// Open opens (creating if necessary) the store at the given sqlite path and
// loads the meeting collection.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	db, err := sqlx.Open(DriverName, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	s, err := newStore(db, DefaultNamespace)
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// NewWithDB wraps an existing sqlite connection, mainly for tests.
func NewWithDB(db *sql.DB, namespace string) (*Store, error) {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return newStore(sqlx.NewDb(db, DriverName), namespace)
}

func newStore(db *sqlx.DB, namespace string) (*Store, error) {
	s := &Store{
		db:        db,
		namespace: namespace,
	}
	if err := s.runMigrations(); err != nil {
		return nil, fmt.Errorf("store: running migrations: %w", err)
	}
	if err := s.load(); err != nil {
		return nil, fmt.Errorf("store: loading state: %w", err)
	}
	return s, nil
}

// Close closes the underlying database.
// Ping verifies the database connection is still usable.
func (s *Store) Ping() error {
	return s.db.Ping()
}

func (s *Store) Close() error {
	return s.db.Close()
}

// load reads the namespaced record into memory. A missing record means an
// empty collection.
func (s *Store) load() error {
	var data string
	err := s.db.Get(&data, `SELECT data FROM stores WHERE namespace = ?`, s.namespace)
	if errors.Is(err, sql.ErrNoRows) {
		s.meetings = nil
		return nil
	}
	if err != nil {
		return err
	}

	var meetings []meeting.Meeting
	if err := json.Unmarshal([]byte(data), &meetings); err != nil {
		return fmt.Errorf("corrupt meeting record: %w", err)
	}
	s.meetings = meetings
	return nil
}

// persist rewrites the namespaced record from the in-memory collection.
// Callers hold s.mu.
func (s *Store) persist() error {
	data, err := json.Marshal(s.meetings)
	if err != nil {
		return fmt.Errorf("failed to encode meetings: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO stores (namespace, data) VALUES (?, ?)
		ON CONFLICT(namespace) DO UPDATE SET data = excluded.data;
	`, s.namespace, string(data))
	return err
}

// Add appends a meeting to the collection and persists it. A duplicate event
// id is rejected; a failed persist leaves the in-memory collection unchanged.
func (s *Store) Add(m meeting.Meeting) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.meetings {
		if existing.EventID == m.EventID {
			return fmt.Errorf("%w: %s", ErrDuplicateEvent, m.EventID)
		}
	}

	s.meetings = append(s.meetings, m)
	if err := s.persist(); err != nil {
		s.meetings = s.meetings[:len(s.meetings)-1]
		return err
	}
	return nil
}

// SetCompleted replaces the completion flag of the record with the matching
// event id and persists. An unknown event id is a silent no-op.
func (s *Store) SetCompleted(eventID string, isCompleted bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.meetings {
		if s.meetings[i].EventID != eventID {
			continue
		}
		previous := s.meetings[i].IsCompleted
		s.meetings[i].IsCompleted = isCompleted
		if err := s.persist(); err != nil {
			s.meetings[i].IsCompleted = previous
			return err
		}
		return nil
	}
	return nil
}

// Meetings returns a copy of the collection in insertion order.
func (s *Store) Meetings() []meeting.Meeting {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]meeting.Meeting, len(s.meetings))
	copy(out, s.meetings)
	return out
}

// Len returns the number of stored meetings.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.meetings)
}
