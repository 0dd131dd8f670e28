package journal

import (
	"context"
	"errors"
	"time"
)

// ErrEmptyUserID rejects journal entries without an owner.
var ErrEmptyUserID = errors.New("journal entry user id is empty")

// Entry is a persisted reflection produced by a journaling conversation.
type Entry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Content   string    `json:"content"`
	Mood      string    `json:"mood"`
	Summary   *string   `json:"summary"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewEntry is the caller-supplied part of an Entry.
type NewEntry struct {
	UserID  string
	Content string
	Mood    string
	Summary *string
}

// Store persists journal entries scoped per user. CreateJournalEntry returns
// ErrEmptyUserID when UserID is empty.
type Store interface {
	CreateJournalEntry(ctx context.Context, entry NewEntry) (Entry, error)
	// ListJournalEntries returns the user's entries newest first. limit <= 0 returns all.
	ListJournalEntries(ctx context.Context, userID string, limit int) ([]Entry, error)
}
