package services

import (
	"context"
	"time"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
	"github.com/SscSPs/ledgerbook/internal/utils/money"
)

// SettingsSvcFacade manages the display settings lifecycle.
type SettingsSvcFacade interface {
	// Default returns the built-in display settings.
	Default() domain.DisplaySettings

	// Load returns the stored settings, or the defaults when none were saved.
	Load(ctx context.Context) (domain.DisplaySettings, error)

	// Save validates and stores the settings.
	Save(ctx context.Context, settings domain.DisplaySettings) (domain.DisplaySettings, error)

	// Reset drops the stored settings and returns the defaults.
	Reset(ctx context.Context) (domain.DisplaySettings, error)

	// Formatter builds an amount formatter from the current settings.
	Formatter(ctx context.Context) (*money.Formatter, error)
}

// TokenSvc mints bearer tokens for the HTTP API.
type TokenSvc interface {
	GenerateAccessToken(ctx context.Context, subject string) (string, time.Time, error)
}
