package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	portsrepo "github.com/SscSPs/ledgerbook/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledgerbook/internal/core/ports/services"
	"github.com/SscSPs/ledgerbook/internal/dto"
)

// containerService implements the ContainerSvcFacade interface
type containerService struct {
	BaseService
	containerRepo portsrepo.ContainerRepositoryFacade
}

// NewContainerService creates a new container service with the provided options
func NewContainerService(repo portsrepo.ContainerRepositoryFacade, options ...Option) portssvc.ContainerSvcFacade {
	svc := &containerService{containerRepo: repo}
	svc.apply(options)
	return svc
}

var _ portssvc.ContainerSvcFacade = (*containerService)(nil)

func (s *containerService) GetContainer(ctx context.Context, containerID int64) (*domain.Container, error) {
	return s.containerRepo.FindContainerByID(ctx, containerID)
}

func (s *containerService) ListContainers(ctx context.Context) ([]domain.Container, error) {
	containers, err := s.containerRepo.ListContainers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list containers")
		return nil, err
	}
	return containers, nil
}

func (s *containerService) CreateContainer(ctx context.Context, req dto.CreateContainerRequest) (*domain.Container, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.ValidationError("container name cannot be empty")
	}

	now := s.now()
	created, err := s.containerRepo.SaveContainer(ctx, domain.Container{
		Name:        name,
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create container", slog.String("name", name))
		return nil, err
	}

	s.notify(ctx, domain.LedgerEvent{Type: domain.EventContainerCreated, ContainerID: created.ContainerID})
	s.LogInfo(ctx, "Container created", slog.Int64("container_id", created.ContainerID))
	return created, nil
}

func (s *containerService) RenameContainer(ctx context.Context, containerID int64, req dto.UpdateContainerRequest) (*domain.Container, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.ValidationError("container name cannot be empty")
	}

	var renamed *domain.Container
	err := s.withRead(containerID, func() error {
		container, err := s.containerRepo.FindContainerByID(ctx, containerID)
		if err != nil {
			return err
		}
		container.Name = name
		container.LastUpdatedAt = s.now()
		if err := s.containerRepo.UpdateContainer(ctx, *container); err != nil {
			return err
		}
		renamed = container
		s.notify(ctx, domain.LedgerEvent{Type: domain.EventContainerUpdated, ContainerID: containerID})
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to rename container", slog.Int64("container_id", containerID))
		return nil, err
	}

	s.LogInfo(ctx, "Container renamed", slog.Int64("container_id", containerID))
	return renamed, nil
}

func (s *containerService) DeleteContainer(ctx context.Context, containerID int64) error {
	if containerID == domain.DefaultContainerID {
		return apperrors.ConflictError("the default container %q cannot be deleted", domain.DefaultContainerName)
	}

	// Deleting drops every transaction, so a fenced container may be deleted too.
	err := s.withRead(containerID, func() error {
		if _, err := s.containerRepo.FindContainerByID(ctx, containerID); err != nil {
			return err
		}
		if err := s.containerRepo.DeleteContainer(ctx, containerID); err != nil {
			return err
		}
		if s.Locks != nil {
			s.Locks.Lift(containerID)
		}
		s.notify(ctx, domain.LedgerEvent{Type: domain.EventContainerDeleted, ContainerID: containerID})
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete container", slog.Int64("container_id", containerID))
		return err
	}

	s.LogInfo(ctx, "Container deleted", slog.Int64("container_id", containerID))
	return nil
}
