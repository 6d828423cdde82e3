package services

import (
	"context"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
	"github.com/SscSPs/ledgerbook/internal/dto"
)

// CategorySvcFacade manages the global category registry.
type CategorySvcFacade interface {
	// GetCategories returns the stored categories. When the store cannot be read the
	// built-in defaults are returned and the outcome says so.
	GetCategories(ctx context.Context) domain.CategoryList

	// GetCategory retrieves one category by name.
	GetCategory(ctx context.Context, name string) (*domain.Category, error)

	// AddCategory creates a custom category.
	AddCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error)

	// DeleteCategory removes a custom category that no transaction uses.
	DeleteCategory(ctx context.Context, name string) error

	// EnsureDefaults seeds the built-in categories. Safe to call repeatedly.
	EnsureDefaults(ctx context.Context) error
}
