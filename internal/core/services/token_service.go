package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	portssvc "github.com/SscSPs/ledgerbook/internal/core/ports/services"
	"github.com/SscSPs/ledgerbook/internal/platform/config"
	"github.com/SscSPs/ledgerbook/internal/utils"
)

type tokenService struct {
	BaseService
	secret string
	issuer string
	expiry time.Duration
}

// NewTokenService creates a token service from the JWT settings of cfg
func NewTokenService(cfg *config.Config, options ...Option) portssvc.TokenSvc {
	svc := &tokenService{
		secret: cfg.JWTSecret,
		issuer: cfg.JWTIssuer,
		expiry: cfg.JWTExpiryDuration,
	}
	svc.apply(options)
	return svc
}

func (s *tokenService) GenerateAccessToken(ctx context.Context, subject string) (string, time.Time, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return "", time.Time{}, apperrors.ValidationError("token subject cannot be empty")
	}
	if s.secret == "" {
		return "", time.Time{}, apperrors.ValidationError("JWT_SECRET is not configured, authentication is disabled")
	}

	expiresAt := time.Now().Add(s.expiry)
	token, err := utils.GenerateJWT(subject, s.secret, s.expiry, s.issuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.String("subject", subject))
		return "", time.Time{}, err
	}
	s.LogInfo(ctx, "Access token issued", slog.String("subject", subject), slog.Time("expires_at", expiresAt))
	return token, expiresAt, nil
}
