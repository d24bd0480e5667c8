package repositories

import (
	"context"

	"github.com/gestorsaas/gestor_financeiro_app/internal/core/domain"
)

// CategoryReader defines read operations for chart-of-accounts categories
type CategoryReader interface {
	// FindCategoryByID retrieves a category by its identifier within a company.
	FindCategoryByID(ctx context.Context, companyID string, categoryID string) (*domain.Category, error)

	// FindCategoryByCode retrieves the category whose code matches exactly, if any.
	FindCategoryByCode(ctx context.Context, companyID string, code string) (*domain.Category, error)

	// ListCategories retrieves the company's categories, optionally restricted to one kind,
	// ordered by code then name.
	ListCategories(ctx context.Context, companyID string, kind *domain.CategoryKind) ([]domain.Category, error)
}

// CategoryWriter defines write operations for chart-of-accounts categories
type CategoryWriter interface {
	// SaveCategory persists a new category.
	SaveCategory(ctx context.Context, category domain.Category) error

	// UpdateCategory updates an existing category's details.
	UpdateCategory(ctx context.Context, category domain.Category) error

	// DeleteCategory removes a category. The delete is rejected while scheduled
	// entries still reference it.
	DeleteCategory(ctx context.Context, companyID string, categoryID string) error
}

// CategoryRepositoryFacade combines all category-related repository interfaces
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}

// CategoryRepositoryWithTx extends CategoryRepositoryFacade with transaction capabilities
type CategoryRepositoryWithTx interface {
	CategoryRepositoryFacade
	TransactionManager
}
