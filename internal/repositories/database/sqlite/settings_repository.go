package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	portsrepo "github.com/SscSPs/ledgerbook/internal/core/ports/repositories"
)

type settingsRepository struct {
	BaseRepository
}

func newSettingsRepository(db *sql.DB) *settingsRepository {
	return &settingsRepository{BaseRepository{DB: db}}
}

var _ portsrepo.SettingsRepository = (*settingsRepository)(nil)

func (r *settingsRepository) LoadDisplaySettings(ctx context.Context) (*domain.DisplaySettings, error) {
	var raw string
	err := r.DB.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, domain.DisplaySettingsKey).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFoundError("no stored %s", domain.DisplaySettingsKey)
		}
		return nil, fmt.Errorf("load %s: %w", domain.DisplaySettingsKey, err)
	}
	var s domain.DisplaySettings
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, fmt.Errorf("decode %s: %w", domain.DisplaySettingsKey, err)
	}
	return &s, nil
}

func (r *settingsRepository) SaveDisplaySettings(ctx context.Context, settings domain.DisplaySettings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode %s: %w", domain.DisplaySettingsKey, err)
	}
	_, err = r.DB.ExecContext(ctx,
		`INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		domain.DisplaySettingsKey, string(raw), formatTime(time.Now()),
	)
	if err != nil {
		return fmt.Errorf("save %s: %w", domain.DisplaySettingsKey, err)
	}
	return nil
}

func (r *settingsRepository) DeleteDisplaySettings(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM settings WHERE key = ?`, domain.DisplaySettingsKey); err != nil {
		return fmt.Errorf("delete %s: %w", domain.DisplaySettingsKey, err)
	}
	return nil
}
