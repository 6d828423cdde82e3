package repositories

import (
	"context"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
)

// CategoryReader defines read operations for category data
type CategoryReader interface {
	// ListCategories retrieves all categories, built-in ones first, then by name.
	ListCategories(ctx context.Context) ([]domain.Category, error)

	// FindCategoryByName retrieves a category by its name.
	FindCategoryByName(ctx context.Context, name string) (*domain.Category, error)

	// CountTransactionsByCategory counts the transactions tagged with a category in any container.
	CountTransactionsByCategory(ctx context.Context, name string) (int64, error)
}

// CategoryWriter defines write operations for category data
type CategoryWriter interface {
	// SaveCategory persists a new category. A duplicate name yields apperrors.ErrConflict.
	SaveCategory(ctx context.Context, category domain.Category) error

	// SeedCategories inserts the given categories, skipping names that already exist.
	SeedCategories(ctx context.Context, categories []domain.Category) error

	// DeleteCategory removes a user category by name. A built-in category or one still
	// referenced by a transaction yields apperrors.ErrConflict, checked atomically with the delete.
	DeleteCategory(ctx context.Context, name string) error
}

// CategoryRepositoryFacade combines all category-related repository interfaces
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
