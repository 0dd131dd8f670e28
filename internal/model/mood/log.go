package mood

import (
	"context"
	"time"
)

// LogRecord is one persisted check-in. Records are append-only.
type LogRecord struct {
	ID              int64           `json:"id"`
	Mood            Mood            `json:"mood"`
	Confidence      float64         `json:"confidence"`
	Method          Method          `json:"method"`
	InputData       *string         `json:"inputData"`
	Recommendations Recommendations `json:"recommendations"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// NewLog carries the fields a caller supplies; the store assigns ID and CreatedAt.
type NewLog struct {
	Mood            Mood
	Confidence      float64
	Method          Method
	InputData       *string
	Recommendations Recommendations
}

// LogStore persists check-ins.
type LogStore interface {
	CreateMoodLog(ctx context.Context, log NewLog) (LogRecord, error)
	// ListMoodLogs returns records newest first. limit <= 0 returns all.
	ListMoodLogs(ctx context.Context, limit int) ([]LogRecord, error)
}
