package domain

import "time"

// AuditFields holds standard timestamps for persisted entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// TimestampLayout is the layout used when dates travel as text (SQLite columns, CSV files).
const TimestampLayout = "2006-01-02 15:04:05"
