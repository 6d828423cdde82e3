package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	portsrepo "github.com/SscSPs/ledgerbook/internal/core/ports/repositories"
	"github.com/SscSPs/ledgerbook/internal/models"
	"github.com/SscSPs/ledgerbook/internal/utils/mapping"
)

type containerRepository struct {
	BaseRepository
}

func newContainerRepository(db *sql.DB) *containerRepository {
	return &containerRepository{BaseRepository{DB: db}}
}

var _ portsrepo.ContainerRepositoryFacade = (*containerRepository)(nil)

const containerColumns = `container_id, name, created_at, last_updated_at`

func scanContainer(row interface{ Scan(...any) error }) (models.Container, error) {
	var m models.Container
	var createdAt, updatedAt string
	if err := row.Scan(&m.ContainerID, &m.Name, &createdAt, &updatedAt); err != nil {
		return m, err
	}
	var err error
	if m.CreatedAt, err = parseTime(createdAt); err != nil {
		return m, err
	}
	if m.LastUpdatedAt, err = parseTime(updatedAt); err != nil {
		return m, err
	}
	return m, nil
}

func (r *containerRepository) FindContainerByID(ctx context.Context, containerID int64) (*domain.Container, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+containerColumns+` FROM containers WHERE container_id = ?`, containerID)
	m, err := scanContainer(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFoundError("container %d not found", containerID)
		}
		return nil, fmt.Errorf("find container %d: %w", containerID, err)
	}
	c := mapping.ToDomainContainer(m)
	return &c, nil
}

func (r *containerRepository) ListContainers(ctx context.Context) ([]domain.Container, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+containerColumns+` FROM containers ORDER BY container_id`)
	if err != nil {
		return nil, fmt.Errorf("list containers: %w", err)
	}
	defer rows.Close()

	var ms []models.Container
	for rows.Next() {
		m, err := scanContainer(rows)
		if err != nil {
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
	err := r.DB.QueryRowContext(ctx,
		`INSERT INTO containers (name, created_at, last_updated_at) VALUES (?, ?, ?) RETURNING container_id`,
		m.Name, formatTime(m.CreatedAt), formatTime(m.LastUpdatedAt),
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
	res, err := r.DB.ExecContext(ctx,
		`UPDATE containers SET name = ?, last_updated_at = ? WHERE container_id = ?`,
		container.Name, formatTime(container.LastUpdatedAt), container.ContainerID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.DuplicateNameError("container", container.Name)
		}
		return fmt.Errorf("update container %d: %w", container.ContainerID, err)
	}
	return checkAffected(res, apperrors.NotFoundError("container %d not found", container.ContainerID))
}

func (r *containerRepository) DeleteContainer(ctx context.Context, containerID int64) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM transactions WHERE container_id = ?`, containerID); err != nil {
			return fmt.Errorf("delete transactions of container %d: %w", containerID, err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM accounts WHERE container_id = ?`, containerID); err != nil {
			return fmt.Errorf("delete accounts of container %d: %w", containerID, err)
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM containers WHERE container_id = ?`, containerID)
		if err != nil {
			return fmt.Errorf("delete container %d: %w", containerID, err)
		}
		return checkAffected(res, apperrors.NotFoundError("container %d not found", containerID))
	})
}
