package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	portsrepo "github.com/SscSPs/ledgerbook/internal/core/ports/repositories"
	"gopkg.in/yaml.v3"
)

// settingsDocument is the on-disk layout: one top-level key per settings record.
type settingsDocument struct {
	DisplaySettings *domain.DisplaySettings `yaml:"display_settings,omitempty"`
}

// SettingsRepository keeps display settings in a YAML file.
type SettingsRepository struct {
	mu   sync.Mutex
	path string
}

// NewSettingsRepository returns a repository backed by the YAML file at path.
// The file is created on first save.
func NewSettingsRepository(path string) *SettingsRepository {
	return &SettingsRepository{path: path}
}

var _ portsrepo.SettingsRepository = (*SettingsRepository)(nil)

func (r *SettingsRepository) read() (settingsDocument, error) {
	var doc settingsDocument
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return doc, nil
		}
		return doc, fmt.Errorf("read settings file %s: %w", r.path, err)
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return doc, fmt.Errorf("decode settings file %s: %w", r.path, err)
	}
	return doc, nil
}

func (r *SettingsRepository) write(doc settingsDocument) error {
	raw, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return os.Rename(tmp, r.path)
}

func (r *SettingsRepository) LoadDisplaySettings(_ context.Context) (*domain.DisplaySettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.read()
	if err != nil {
		return nil, err
	}
	if doc.DisplaySettings == nil {
		return nil, apperrors.NotFoundError("no stored %s in %s", domain.DisplaySettingsKey, r.path)
	}
	return doc.DisplaySettings, nil
}

func (r *SettingsRepository) SaveDisplaySettings(_ context.Context, settings domain.DisplaySettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.read()
	if err != nil {
		return err
	}
	doc.DisplaySettings = &settings
	return r.write(doc)
}

func (r *SettingsRepository) DeleteDisplaySettings(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.read()
	if err != nil {
		return err
	}
	if doc.DisplaySettings == nil {
		return nil
	}
	doc.DisplaySettings = nil
	return r.write(doc)
}
