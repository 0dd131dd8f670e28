package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/zhouzirui/mood-mirror/backend/internal/model/mood"
)

const moodLogsTable = "mood_logs"

var moodLogColumns = []string{"id", "mood", "confidence", "method", "input_data", "recommendations", "created_at"}

// CreateMoodLog inserts a record and returns it with its id and timestamp.
func (s *Store) CreateMoodLog(ctx context.Context, log mood.NewLog) (mood.LogRecord, error) {
	payload, err := json.Marshal(log.Recommendations)
	if err != nil {
		return mood.LogRecord{}, fmt.Errorf("encode mood log recommendations: %w", err)
	}

	createdAt := s.now()
	query, args, err := s.builder.
		Insert(moodLogsTable).
		Columns("mood", "confidence", "method", "input_data", "recommendations", "created_at").
		Values(string(log.Mood), log.Confidence, string(log.Method), log.InputData, string(payload), toMillis(createdAt)).
		ToSql()
	if err != nil {
		return mood.LogRecord{}, fmt.Errorf("build mood log insert: %w", err)
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return mood.LogRecord{}, fmt.Errorf("insert mood log: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return mood.LogRecord{}, fmt.Errorf("read mood log id: %w", err)
	}

	var input *string
	if log.InputData != nil {
		v := *log.InputData
		input = &v
	}
	return mood.LogRecord{
		ID:              id,
		Mood:            log.Mood,
		Confidence:      log.Confidence,
		Method:          log.Method,
		InputData:       input,
		Recommendations: log.Recommendations.Clone(),
		CreatedAt:       fromMillis(toMillis(createdAt)),
	}, nil
}

// ListMoodLogs returns records newest first. limit <= 0 returns all.
func (s *Store) ListMoodLogs(ctx context.Context, limit int) ([]mood.LogRecord, error) {
	builder := s.builder.
		Select(moodLogColumns...).
		From(moodLogsTable).
		OrderBy("created_at DESC", "id DESC")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build mood log select: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query mood logs: %w", err)
	}
	defer rows.Close()

	records := make([]mood.LogRecord, 0)
	for rows.Next() {
		var (
			r         mood.LogRecord
			moodRaw   string
			methodRaw string
			input     sql.NullString
			payload   string
			createdAt int64
		)
		if err := rows.Scan(&r.ID, &moodRaw, &r.Confidence, &methodRaw, &input, &payload, &createdAt); err != nil {
			return nil, fmt.Errorf("scan mood log: %w", err)
		}
		if err := json.Unmarshal([]byte(payload), &r.Recommendations); err != nil {
			return nil, fmt.Errorf("decode mood log %d recommendations: %w", r.ID, err)
		}
		r.Mood = mood.Mood(moodRaw)
		r.Method = mood.Method(methodRaw)
		r.InputData = nullableString(input)
		r.CreatedAt = fromMillis(createdAt)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate mood logs: %w", err)
	}
	return records, nil
}
