package domain

// DefaultContainerID is the id of the container seeded on first use. It cannot be deleted.
const DefaultContainerID int64 = 1

// DefaultContainerName is the name of the seeded container.
const DefaultContainerName = "Personal"

// Container is a book that scopes accounts, transactions and reports.
type Container struct {
	ContainerID int64  `json:"containerID"`
	Name        string `json:"name"`
	AuditFields
}

// IsDefault reports whether c is the protected default container.
func (c Container) IsDefault() bool {
	return c.ContainerID == DefaultContainerID
}
