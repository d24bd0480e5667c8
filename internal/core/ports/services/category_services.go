package services

import (
	"context"

	"github.com/gestorsaas/gestor_financeiro_app/internal/core/domain"
	"github.com/gestorsaas/gestor_financeiro_app/internal/dto"
)

// CategoryReaderSvc defines read operations for chart-of-accounts categories
type CategoryReaderSvc interface {
	// GetCategoryByID retrieves a specific category by its ID.
	GetCategoryByID(ctx context.Context, companyID string, categoryID string) (*domain.Category, error)

	// ListCategories retrieves the company's categories, optionally by kind.
	ListCategories(ctx context.Context, companyID string, kind *domain.CategoryKind) ([]domain.Category, error)
}

// CategoryWriterSvc defines write operations for chart-of-accounts categories
type CategoryWriterSvc interface {
	// CreateCategory persists a new category.
	CreateCategory(ctx context.Context, companyID string, req dto.CreateCategoryRequest, creatorUserID string) (*domain.Category, error)

	// UpdateCategory updates a category's details.
	UpdateCategory(ctx context.Context, companyID string, categoryID string, req dto.UpdateCategoryRequest, requestingUserID string) (*domain.Category, error)

	// DeleteCategory removes a category, failing while scheduled entries still use it.
	DeleteCategory(ctx context.Context, companyID string, categoryID string) error
}

// CategorySvcFacade combines all category-related service interfaces
type CategorySvcFacade interface {
	CategoryReaderSvc
	CategoryWriterSvc
}
