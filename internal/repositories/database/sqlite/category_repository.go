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

type categoryRepository struct {
	BaseRepository
}

func newCategoryRepository(db *sql.DB) *categoryRepository {
	return &categoryRepository{BaseRepository{DB: db}}
}

var _ portsrepo.CategoryRepositoryFacade = (*categoryRepository)(nil)

func (r *categoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT name, category_type, is_default FROM categories ORDER BY is_default DESC, name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var ms []models.Category
	for rows.Next() {
		var m models.Category
		if err := rows.Scan(&m.Name, &m.Type, &m.IsDefault); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return mapping.ToDomainCategorySlice(ms), nil
}

func (r *categoryRepository) FindCategoryByName(ctx context.Context, name string) (*domain.Category, error) {
	var m models.Category
	err := r.DB.QueryRowContext(ctx,
		`SELECT name, category_type, is_default FROM categories WHERE name = ?`, name,
	).Scan(&m.Name, &m.Type, &m.IsDefault)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFoundError("category %q not found", name)
		}
		return nil, fmt.Errorf("find category %q: %w", name, err)
	}
	c := mapping.ToDomainCategory(m)
	return &c, nil
}

func (r *categoryRepository) CountTransactionsByCategory(ctx context.Context, name string) (int64, error) {
	var count int64
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions WHERE category = ?`, name).Scan(&count); err != nil {
		return 0, fmt.Errorf("count transactions for category %q: %w", name, err)
	}
	return count, nil
}

func (r *categoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	m := mapping.ToModelCategory(category)
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO categories (name, category_type, is_default) VALUES (?, ?, ?)`, m.Name, m.Type, m.IsDefault)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.DuplicateNameError("category", m.Name)
		}
		return fmt.Errorf("save category %q: %w", m.Name, err)
	}
	return nil
}

func (r *categoryRepository) SeedCategories(ctx context.Context, categories []domain.Category) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		for _, c := range categories {
			m := mapping.ToModelCategory(c)
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO categories (name, category_type, is_default) VALUES (?, ?, ?) ON CONFLICT (name) DO NOTHING`,
				m.Name, m.Type, m.IsDefault,
			); err != nil {
				return fmt.Errorf("seed category %q: %w", m.Name, err)
			}
		}
		return nil
	})
}

func (r *categoryRepository) DeleteCategory(ctx context.Context, name string) error {
	res, err := r.DB.ExecContext(ctx,
		`DELETE FROM categories
		 WHERE name = ? AND is_default = 0
		   AND NOT EXISTS (SELECT 1 FROM transactions WHERE category = ?)`,
		name, name,
	)
	if err != nil {
		return fmt.Errorf("delete category %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	if _, err := r.FindCategoryByName(ctx, name); err != nil {
		return err
	}
	return apperrors.ConflictError("category %q is built-in or in use and cannot be deleted", name)
}
