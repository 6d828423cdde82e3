package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	portsrepo "github.com/SscSPs/ledgerbook/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledgerbook/internal/core/ports/services"
	"github.com/SscSPs/ledgerbook/internal/dto"
)

// categoryService implements the CategorySvcFacade interface.
// Categories are global, so changes take the registry-wide category lock.
type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates a new category service with the provided options
func NewCategoryService(repo portsrepo.CategoryRepositoryFacade, options ...Option) portssvc.CategorySvcFacade {
	svc := &categoryService{categoryRepo: repo}
	svc.apply(options)
	return svc
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) GetCategories(ctx context.Context) domain.CategoryList {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load categories, using built-in defaults")
		return domain.CategoryList{
			Categories: domain.DefaultCategories(),
			Source:     domain.CategorySourceDefaults,
			Cause:      err,
		}
	}
	return domain.CategoryList{Categories: categories, Source: domain.CategorySourceStore}
}

func (s *categoryService) GetCategory(ctx context.Context, name string) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	category, err := s.categoryRepo.FindCategoryByName(ctx, name)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFoundError("category %q not found", name)
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) AddCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.ValidationError("category name cannot be empty")
	}
	if strings.EqualFold(name, domain.TransferCategory) {
		return nil, apperrors.ValidationError("category name %q is reserved for transfers", domain.TransferCategory)
	}
	if !req.Type.IsValid() {
		return nil, apperrors.ValidationError("invalid category type %q: must be expense or income", req.Type)
	}

	category := domain.Category{Name: name, Type: req.Type}
	err := s.withCategoriesWrite(func() error {
		return s.categoryRepo.SaveCategory(ctx, category)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to add category", slog.String("category", name))
		return nil, err
	}

	s.notify(ctx, domain.LedgerEvent{Type: domain.EventCategoryCreated})
	s.LogInfo(ctx, "Category added", slog.String("category", name), slog.String("type", string(req.Type)))
	return &category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)

	err := s.withCategoriesWrite(func() error {
		category, err := s.GetCategory(ctx, name)
		if err != nil {
			return err
		}
		if category.IsDefault {
			return apperrors.ConflictError("category %q is built-in and cannot be deleted", name)
		}

		inUse, err := s.categoryRepo.CountTransactionsByCategory(ctx, name)
		if err != nil {
			return err
		}
		if inUse > 0 {
			return apperrors.ConflictError("category %q is used by %d transaction(s)", name, inUse)
		}

		// The store re-checks usage in the delete itself; another process may share it.
		return s.categoryRepo.DeleteCategory(ctx, name)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete category", slog.String("category", name))
		return err
	}

	s.notify(ctx, domain.LedgerEvent{Type: domain.EventCategoryDeleted})
	s.LogInfo(ctx, "Category deleted", slog.String("category", name))
	return nil
}

func (s *categoryService) EnsureDefaults(ctx context.Context) error {
	if err := s.categoryRepo.SeedCategories(ctx, domain.DefaultCategories()); err != nil {
		s.LogError(ctx, err, "Failed to seed default categories")
		return err
	}
	return nil
}
