package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	portsrepo "github.com/SscSPs/ledgerbook/internal/core/ports/repositories"
	"github.com/SscSPs/ledgerbook/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	// Locks serializes work per container. Nil means no serialization (unit tests).
	Locks *ContainerLocks
	// Notifier receives every committed change. Nil disables notifications.
	Notifier *ChangeNotifier
	// ContainerRepo, when set, is used to reject operations on unknown containers.
	ContainerRepo portsrepo.ContainerReader
	// Clock returns the current time. Defaults to time.Now.
	Clock func() time.Time
}

// Option is a functional option shared by every service constructor
type Option func(*BaseService)

// WithLocks sets the lock manager used to serialize work per container.
func WithLocks(locks *ContainerLocks) Option {
	return func(s *BaseService) {
		s.Locks = locks
	}
}

// WithNotifier sets the change notifier.
func WithNotifier(n *ChangeNotifier) Option {
	return func(s *BaseService) {
		s.Notifier = n
	}
}

// WithContainerReader makes the service reject unknown containers.
func WithContainerReader(repo portsrepo.ContainerReader) Option {
	return func(s *BaseService) {
		s.ContainerRepo = repo
	}
}

// WithClock overrides the time source.
func WithClock(clock func() time.Time) Option {
	return func(s *BaseService) {
		s.Clock = clock
	}
}

func (s *BaseService) apply(options []Option) {
	for _, option := range options {
		option(s)
	}
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

func (s *BaseService) now() time.Time {
	if s.Clock != nil {
		return s.Clock().UTC()
	}
	return time.Now().UTC()
}

// withRead runs fn while holding the container read lock.
func (s *BaseService) withRead(containerID int64, fn func() error) error {
	if s.Locks == nil {
		return fn()
	}
	return s.Locks.WithReadLock(containerID, fn)
}

// withWrite runs fn while holding the container write lock, refusing fenced containers.
func (s *BaseService) withWrite(containerID int64, fn func() error) error {
	if s.Locks == nil {
		return fn()
	}
	return s.Locks.WithWriteLock(containerID, fn)
}

// withCategoriesRead keeps the category registry stable while fn runs.
func (s *BaseService) withCategoriesRead(fn func() error) error {
	if s.Locks == nil {
		return fn()
	}
	return s.Locks.WithCategoriesRead(fn)
}

// withCategoriesWrite serializes category changes against withCategoriesRead.
func (s *BaseService) withCategoriesWrite(fn func() error) error {
	if s.Locks == nil {
		return fn()
	}
	return s.Locks.WithCategoriesWrite(fn)
}

func (s *BaseService) notify(ctx context.Context, event domain.LedgerEvent) {
	if s.Notifier != nil {
		s.Notifier.notify(ctx, event)
	}
}

// requireContainer fails with ErrNotFound when the container does not exist.
func (s *BaseService) requireContainer(ctx context.Context, containerID int64) error {
	if s.ContainerRepo == nil {
		return nil
	}
	if _, err := s.ContainerRepo.FindContainerByID(ctx, containerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NotFoundError("container %d not found", containerID)
		}
		return err
	}
	return nil
}

// loadAccount returns the account when it exists and belongs to the container.
// An account of another container is reported as not found.
func loadAccount(ctx context.Context, repo portsrepo.AccountReader, containerID, accountID int64) (*domain.Account, error) {
	account, err := repo.FindAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.AccountNotFoundError(accountID)
		}
		return nil, err
	}
	if account.ContainerID != containerID {
		return nil, apperrors.AccountNotFoundError(accountID)
	}
	return account, nil
}
