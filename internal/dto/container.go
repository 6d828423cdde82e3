package dto

import (
	"time"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
)

// CreateContainerRequest defines the data needed to create a new container.
type CreateContainerRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateContainerRequest defines the data allowed for renaming a container.
type UpdateContainerRequest struct {
	Name string `json:"name" binding:"required"`
}

// ContainerResponse defines the data returned for a container.
type ContainerResponse struct {
	ContainerID   int64     `json:"containerID"`
	Name          string    `json:"name"`
	IsDefault     bool      `json:"isDefault"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ListContainersResponse wraps a list of containers.
type ListContainersResponse struct {
	Containers []ContainerResponse `json:"containers"`
}

// ToContainerResponse converts a domain.Container to its DTO
func ToContainerResponse(c *domain.Container) ContainerResponse {
	return ContainerResponse{
		ContainerID:   c.ContainerID,
		Name:          c.Name,
		IsDefault:     c.IsDefault(),
		CreatedAt:     c.CreatedAt,
		LastUpdatedAt: c.LastUpdatedAt,
	}
}

// ToListContainersResponse converts a slice of domain.Container to its DTO
func ToListContainersResponse(containers []domain.Container) ListContainersResponse {
	res := make([]ContainerResponse, len(containers))
	for i := range containers {
		res[i] = ToContainerResponse(&containers[i])
	}
	return ListContainersResponse{Containers: res}
}
