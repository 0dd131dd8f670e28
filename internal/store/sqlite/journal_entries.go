package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/zhouzirui/mood-mirror/backend/internal/model/journal"
)

const journalEntriesTable = "journal_entries"

// CreateJournalEntry inserts an entry with a fresh uuid.
func (s *Store) CreateJournalEntry(ctx context.Context, entry journal.NewEntry) (journal.Entry, error) {
	if entry.UserID == "" {
		return journal.Entry{}, journal.ErrEmptyUserID
	}

	created := journal.Entry{
		ID:        uuid.NewString(),
		UserID:    entry.UserID,
		Content:   entry.Content,
		Mood:      entry.Mood,
		CreatedAt: fromMillis(toMillis(s.now())),
	}
	if entry.Summary != nil {
		v := *entry.Summary
		created.Summary = &v
	}

	query, args, err := s.builder.
		Insert(journalEntriesTable).
		Columns("id", "user_id", "content", "mood", "summary", "created_at").
		Values(created.ID, created.UserID, created.Content, created.Mood, created.Summary, toMillis(created.CreatedAt)).
		ToSql()
	if err != nil {
		return journal.Entry{}, fmt.Errorf("build journal entry insert: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return journal.Entry{}, fmt.Errorf("insert journal entry: %w", err)
	}
	return created, nil
}

// ListJournalEntries returns the user's entries newest first.
func (s *Store) ListJournalEntries(ctx context.Context, userID string, limit int) ([]journal.Entry, error) {
	builder := s.builder.
		Select("id", "user_id", "content", "mood", "summary", "created_at").
		From(journalEntriesTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "rowid DESC")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build journal entry select: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query journal entries: %w", err)
	}
	defer rows.Close()

	entries := make([]journal.Entry, 0)
	for rows.Next() {
		var (
			e         journal.Entry
			summary   sql.NullString
			createdAt int64
		)
		if err := rows.Scan(&e.ID, &e.UserID, &e.Content, &e.Mood, &summary, &createdAt); err != nil {
			return nil, fmt.Errorf("scan journal entry: %w", err)
		}
		e.Summary = nullableString(summary)
		e.CreatedAt = fromMillis(createdAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate journal entries: %w", err)
	}
	return entries, nil
}
