package services

import (
	"context"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
	"github.com/SscSPs/ledgerbook/internal/dto"
)

// ContainerReaderSvc defines read operations for containers
type ContainerReaderSvc interface {
	// GetContainer retrieves a container by id.
	GetContainer(ctx context.Context, containerID int64) (*domain.Container, error)

	// ListContainers retrieves every container ordered by id.
	ListContainers(ctx context.Context) ([]domain.Container, error)
}

// ContainerWriterSvc defines write operations for containers
type ContainerWriterSvc interface {
	// CreateContainer creates a new, uniquely named container.
	CreateContainer(ctx context.Context, req dto.CreateContainerRequest) (*domain.Container, error)

	// RenameContainer changes the name of a container.
	RenameContainer(ctx context.Context, containerID int64, req dto.UpdateContainerRequest) (*domain.Container, error)

	// DeleteContainer removes a container with its accounts and transactions.
	// The default container cannot be deleted.
	DeleteContainer(ctx context.Context, containerID int64) error
}

// ContainerSvcFacade combines all container-related service interfaces
type ContainerSvcFacade interface {
	ContainerReaderSvc
	ContainerWriterSvc
}
