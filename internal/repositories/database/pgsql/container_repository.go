package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	portsrepo "github.com/SscSPs/ledgerbook/internal/core/ports/repositories"
	"github.com/SscSPs/ledgerbook/internal/models"
	"github.com/SscSPs/ledgerbook/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type containerRepository struct {
	BaseRepository
}

var _ portsrepo.ContainerRepositoryFacade = (*containerRepository)(nil)

const containerColumns = `container_id, name, created_at, last_updated_at`

func (r *containerRepository) FindContainerByID(ctx context.Context, containerID int64) (*domain.Container, error) {
	var m models.Container
	err := r.Pool.QueryRow(ctx, `SELECT `+containerColumns+` FROM containers WHERE container_id = $1`, containerID).
		Scan(&m.ContainerID, &m.Name, &m.CreatedAt, &m.LastUpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFoundError("container %d not found", containerID)
		}
		return nil, fmt.Errorf("find container %d: %w", containerID, err)
	}
	c := mapping.ToDomainContainer(m)
	return &c, nil
}

func (r *containerRepository) ListContainers(ctx context.Context) ([]domain.Container, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+containerColumns+` FROM containers ORDER BY container_id`)
	if err != nil {
		return nil, fmt.Errorf("list containers: %w", err)
	}
	defer rows.Close()

	var ms []models.Container
	for rows.Next() {
		var m models.Container
		if err := rows.Scan(&m.ContainerID, &m.Name, &m.CreatedAt, &m.LastUpdatedAt); err != nil {
			return nil, fmt.Errorf("scan container: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate containers: %w", err)
	}
	return mapping.ToDomainContainerSlice(ms), nil
}

func (r *containerRepository) SaveContainer(ctx context.Context, container domain.Container) (*domain.Container, error) {
	m := mapping.ToModelContainer(container)
	err := r.Pool.QueryRow(ctx,
		`INSERT INTO containers (name, created_at, last_updated_at) VALUES ($1, $2, $3) RETURNING container_id`,
		m.Name, m.CreatedAt, m.LastUpdatedAt,
	).Scan(&m.ContainerID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.DuplicateNameError("container", m.Name)
		}
		return nil, fmt.Errorf("save container %q: %w", m.Name, err)
	}
	saved := mapping.ToDomainContainer(m)
	return &saved, nil
}

func (r *containerRepository) UpdateContainer(ctx context.Context, container domain.Container) error {
	tag, err := r.Pool.Exec(ctx,
		`UPDATE containers SET name = $1, last_updated_at = $2 WHERE container_id = $3`,
		container.Name, container.LastUpdatedAt, container.ContainerID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.DuplicateNameError("container", container.Name)
		}
		return fmt.Errorf("update container %d: %w", container.ContainerID, err)
	}
	return checkAffected(tag, apperrors.NotFoundError("container %d not found", container.ContainerID))
}

func (r *containerRepository) DeleteContainer(ctx context.Context, containerID int64) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM transactions WHERE container_id = $1`, containerID); err != nil {
			return fmt.Errorf("delete transactions of container %d: %w", containerID, err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM accounts WHERE container_id = $1`, containerID); err != nil {
			return fmt.Errorf("delete accounts of container %d: %w", containerID, err)
		}
		tag, err := tx.Exec(ctx, `DELETE FROM containers WHERE container_id = $1`, containerID)
		if err != nil {
			return fmt.Errorf("delete container %d: %w", containerID, err)
		}
		return checkAffected(tag, apperrors.NotFoundError("container %d not found", containerID))
	})
}
