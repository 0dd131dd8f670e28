// Package memory keeps mood logs and journal entries in process memory. It
// backs STORAGE_BACKEND=memory and serves as the store double in tests.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zhouzirui/mood-mirror/backend/internal/model/journal"
	"github.com/zhouzirui/mood-mirror/backend/internal/model/mood"
)

// Store implements mood.LogStore and journal.Store.
type Store struct {
	mu      sync.RWMutex
	nextID  int64
	logs    []mood.LogRecord
	entries map[string][]journal.Entry
	now     func() time.Time
}

// New bootstraps an empty store.
func New() *Store {
	return &Store{
		entries: make(map[string][]journal.Entry),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// CreateMoodLog appends a record with the next id.
func (s *Store) CreateMoodLog(_ context.Context, log mood.NewLog) (mood.LogRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	record := mood.LogRecord{
		ID:              s.nextID,
		Mood:            log.Mood,
		Confidence:      log.Confidence,
		Method:          log.Method,
		InputData:       cloneString(log.InputData),
		Recommendations: log.Recommendations.Clone(),
		CreatedAt:       s.now(),
	}
	s.logs = append(s.logs, record)
	return cloneLog(record), nil
}

// ListMoodLogs returns records newest first.
func (s *Store) ListMoodLogs(_ context.Context, limit int) ([]mood.LogRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]mood.LogRecord, 0, len(s.logs))
	for i := len(s.logs) - 1; i >= 0; i-- {
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, cloneLog(s.logs[i]))
	}
	return out, nil
}

// CreateJournalEntry appends an entry under its user.
func (s *Store) CreateJournalEntry(_ context.Context, entry journal.NewEntry) (journal.Entry, error) {
	if entry.UserID == "" {
		return journal.Entry{}, journal.ErrEmptyUserID
	}

	created := journal.Entry{
		ID:        uuid.NewString(),
		UserID:    entry.UserID,
		Content:   entry.Content,
		Mood:      entry.Mood,
		Summary:   cloneString(entry.Summary),
		CreatedAt: s.now(),
	}

	s.mu.Lock()
	s.entries[entry.UserID] = append(s.entries[entry.UserID], created)
	s.mu.Unlock()

	return created, nil
}

// ListJournalEntries returns the user's entries newest first.
func (s *Store) ListJournalEntries(_ context.Context, userID string, limit int) ([]journal.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.entries[userID]
	out := make([]journal.Entry, 0, len(stored))
	for i := len(stored) - 1; i >= 0; i-- {
		if limit > 0 && len(out) == limit {
			break
		}
		e := stored[i]
		e.Summary = cloneString(e.Summary)
		out = append(out, e)
	}
	return out, nil
}

func cloneLog(r mood.LogRecord) mood.LogRecord {
	r.InputData = cloneString(r.InputData)
	r.Recommendations = r.Recommendations.Clone()
	return r
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
