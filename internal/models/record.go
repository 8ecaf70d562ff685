package models

import "time"

// Record is a row of the records table. Business documents are stored as
// JSON in Body; the other columns are projections used for filtering.
type Record struct {
	Kind       string    `db:"kind"`
	RecordID   string    `db:"record_id"`
	StallID    string    `db:"stall_id"`
	Status     string    `db:"status"`
	RecordDate time.Time `db:"record_date"`
	IsActive   bool      `db:"is_active"`
	Version    int64     `db:"version"`
	Body       []byte    `db:"body"`
}
