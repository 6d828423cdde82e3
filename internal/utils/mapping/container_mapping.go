package mapping

import (
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	"github.com/SscSPs/ledgerbook/internal/models"
)

// ToModelContainer converts a domain Container to a model Container
func ToModelContainer(d domain.Container) models.Container {
	return models.Container{
		ContainerID: d.ContainerID,
		Name:        d.Name,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainContainer converts a model Container to a domain Container
func ToDomainContainer(m models.Container) domain.Container {
	return domain.Container{
		ContainerID: m.ContainerID,
		Name:        m.Name,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainContainerSlice converts a slice of model Containers to domain Containers
func ToDomainContainerSlice(ms []models.Container) []domain.Container {
	ds := make([]domain.Container, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainContainer(m)
	}
	return ds
}
