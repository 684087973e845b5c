package model

import "time"

// Entry is one word entered into a round.
type Entry struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	Color       string `json:"color"`
	Highlighted bool   `json:"highlighted"`
}

// HistoryRecord is a closed round. The triggering duplicate is always the
// last entry.
type HistoryRecord struct {
	ID       string    `json:"id"`
	Entries  []Entry   `json:"entries"`
	ClosedAt time.Time `json:"closed_at"`
}

// Clone returns a copy that shares no backing array with r.
func (r HistoryRecord) Clone() HistoryRecord {
	entries := make([]Entry, len(r.Entries))
	copy(entries, r.Entries)
	r.Entries = entries
	return r
}

// Snapshot is a read-only projection of the whole game for rendering.
type Snapshot struct {
	Policy  Policy          `json:"policy"`
	State   State           `json:"state"`
	Round   []Entry         `json:"round"`
	History []HistoryRecord `json:"history"`
	Pending *Duplicate      `json:"pending,omitempty"`
}
