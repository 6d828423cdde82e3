package models

// Container is the persisted form of a book.
type Container struct {
	ContainerID int64  `db:"container_id"`
	Name        string `db:"name"`
	AuditFields
}
