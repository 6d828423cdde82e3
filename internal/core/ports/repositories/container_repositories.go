package repositories

import (
	"context"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
)

// ContainerReader defines read operations for container data
type ContainerReader interface {
	// FindContainerByID retrieves a specific container by its ID.
	FindContainerByID(ctx context.Context, containerID int64) (*domain.Container, error)

	// ListContainers retrieves every container ordered by id.
	ListContainers(ctx context.Context) ([]domain.Container, error)
}

// ContainerWriter defines write operations for container data
type ContainerWriter interface {
	// SaveContainer persists a new container and returns it with its assigned id.
	SaveContainer(ctx context.Context, container domain.Container) (*domain.Container, error)

	// UpdateContainer persists a new name for an existing container.
	UpdateContainer(ctx context.Context, container domain.Container) error

	// DeleteContainer removes a container together with its accounts and transactions
	// in one database transaction.
	DeleteContainer(ctx context.Context, containerID int64) error
}

// ContainerRepositoryFacade combines all container-related repository interfaces
type ContainerRepositoryFacade interface {
	ContainerReader
	ContainerWriter
}
