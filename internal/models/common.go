package models

import "time"

// AuditFields holds the timestamps every persisted row carries.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
}
