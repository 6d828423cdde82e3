package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	portsrepo "github.com/SscSPs/ledgerbook/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledgerbook/internal/core/ports/services"
	"github.com/SscSPs/ledgerbook/internal/utils/money"
	"github.com/go-playground/validator/v10"
)

// settingsService owns the display settings lifecycle: defaults, load, validate, save, reset.
type settingsService struct {
	BaseService
	repo     portsrepo.SettingsRepository
	validate *validator.Validate
}

// NewSettingsService creates a new settings service over any SettingsRepository
func NewSettingsService(repo portsrepo.SettingsRepository, options ...Option) portssvc.SettingsSvcFacade {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		s := sl.Current().Interface().(domain.DisplaySettings)
		if s.Locale != "" && !money.ValidLocale(s.Locale) {
			sl.ReportError(s.Locale, "Locale", "locale", "bcp47", "")
		}
	}, domain.DisplaySettings{})

	svc := &settingsService{repo: repo, validate: v}
	svc.apply(options)
	return svc
}

var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

func (s *settingsService) Default() domain.DisplaySettings {
	return domain.DefaultDisplaySettings()
}

func (s *settingsService) Load(ctx context.Context) (domain.DisplaySettings, error) {
	stored, err := s.repo.LoadDisplaySettings(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return s.Default(), nil
		}
		s.LogError(ctx, err, "Failed to load display settings")
		return domain.DisplaySettings{}, err
	}
	return *stored, nil
}

func normalizeSettings(in domain.DisplaySettings) domain.DisplaySettings {
	return domain.DisplaySettings{
		CurrencyCode: strings.ToUpper(strings.TrimSpace(in.CurrencyCode)),
		Symbol:       strings.TrimSpace(in.Symbol),
		Placement:    domain.Placement(strings.ToLower(strings.TrimSpace(string(in.Placement)))),
		Locale:       strings.TrimSpace(in.Locale),
	}
}

func (s *settingsService) Save(ctx context.Context, settings domain.DisplaySettings) (domain.DisplaySettings, error) {
	settings = normalizeSettings(settings)
	if err := s.validate.Struct(settings); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			problems := make([]string, len(fieldErrs))
			for i, fe := range fieldErrs {
				problems[i] = fmt.Sprintf("%s failed '%s'", fe.Field(), fe.Tag())
			}
			return domain.DisplaySettings{}, apperrors.ValidationError("invalid display settings: %s", strings.Join(problems, ", "))
		}
		return domain.DisplaySettings{}, apperrors.ValidationError("invalid display settings: %v", err)
	}

	if err := s.repo.SaveDisplaySettings(ctx, settings); err != nil {
		s.LogError(ctx, err, "Failed to save display settings")
		return domain.DisplaySettings{}, err
	}
	s.LogInfo(ctx, "Display settings saved",
		slog.String("currency_code", settings.CurrencyCode),
		slog.String("locale", settings.Locale))
	return settings, nil
}

func (s *settingsService) Reset(ctx context.Context) (domain.DisplaySettings, error) {
	if err := s.repo.DeleteDisplaySettings(ctx); err != nil {
		s.LogError(ctx, err, "Failed to reset display settings")
		return domain.DisplaySettings{}, err
	}
	s.LogInfo(ctx, "Display settings reset to defaults")
	return s.Default(), nil
}

// Formatter never fails on a store error; it formats with the defaults instead.
func (s *settingsService) Formatter(ctx context.Context) (*money.Formatter, error) {
	settings, err := s.Load(ctx)
	if err != nil {
		return money.NewFormatter(s.Default()), err
	}
	return money.NewFormatter(settings), nil
}
