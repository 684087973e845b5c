// Package history keeps the closed rounds of a game.
package history

import "github.com/agenthands/kamsam/internal/core/model"

// DefaultLimit is the number of closed rounds kept.
const DefaultLimit = 20

// Log is a most-recent-first list of closed rounds, bounded to Limit records.
// The oldest records are dropped silently once the bound is exceeded.
type Log struct {
	records []model.HistoryRecord
	limit   int
}

// NewLog returns an empty log. A non-positive limit means DefaultLimit.
func NewLog(limit int) *Log {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Log{
		records: make([]model.HistoryRecord, 0, limit),
		limit:   limit,
	}
}

// Prepend adds rec as the newest record and returns how many were evicted.
func (l *Log) Prepend(rec model.HistoryRecord) int {
	l.records = append([]model.HistoryRecord{rec.Clone()}, l.records...)
	evicted := 0
	if len(l.records) > l.limit {
		evicted = len(l.records) - l.limit
		l.records = l.records[:l.limit]
	}
	return evicted
}

// Records returns a deep copy, newest first.
func (l *Log) Records() []model.HistoryRecord {
	out := make([]model.HistoryRecord, len(l.records))
	for i, r := range l.records {
		out[i] = r.Clone()
	}
	return out
}

func (l *Log) Len() int {
	return len(l.records)
}

func (l *Log) Limit() int {
	return l.limit
}
