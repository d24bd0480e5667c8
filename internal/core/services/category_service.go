package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gestorsaas/gestor_financeiro_app/internal/apperrors"
	"github.com/gestorsaas/gestor_financeiro_app/internal/core/domain"
	portsrepo "github.com/gestorsaas/gestor_financeiro_app/internal/core/ports/repositories"
	portssvc "github.com/gestorsaas/gestor_financeiro_app/internal/core/ports/services"
	"github.com/gestorsaas/gestor_financeiro_app/internal/dto"
	"github.com/google/uuid"
)

type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
	entryRepo    portsrepo.ScheduledEntryReader
	movementRepo portsrepo.MovementReader
}

// NewCategoryService creates the category service. The entry and movement
// readers back the in-use checks that guard deletions.
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade, entryRepo portsrepo.ScheduledEntryReader, movementRepo portsrepo.MovementReader) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: categoryRepo, entryRepo: entryRepo, movementRepo: movementRepo}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) CreateCategory(ctx context.Context, companyID string, req dto.CreateCategoryRequest, creatorUserID string) (*domain.Category, error) {
	now := time.Now()
	category := domain.Category{
		CategoryID: uuid.NewString(),
		CompanyID:  companyID,
		Name:       req.Name,
		Kind:       req.Kind,
		Code:       req.Code,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save category", slog.String("category_id", category.CategoryID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Category created", slog.String("category_id", category.CategoryID), slog.String("kind", string(category.Kind)))
	return &category, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, companyID string, categoryID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, companyID, categoryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find category", slog.String("category_id", categoryID))
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) ListCategories(ctx context.Context, companyID string, kind *domain.CategoryKind) ([]domain.Category, error) {
	categories, err := s.categoryRepo.ListCategories(ctx, companyID, kind)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories")
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, companyID string, categoryID string, req dto.UpdateCategoryRequest, requestingUserID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, companyID, categoryID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Kind != nil {
		category.Kind = *req.Kind
	}
	if req.Code != nil {
		category.Code = *req.Code
	}
	category.LastUpdatedAt = time.Now()
	category.LastUpdatedBy = requestingUserID

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to update category", slog.String("category_id", categoryID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Category updated", slog.String("category_id", categoryID))
	return category, nil
}

// DeleteCategory removes a category unless either ledger still references
// it: scheduled entries or cash movements. Deleting a category under recorded
// movements would strip their income statement classification.
func (s *categoryService) DeleteCategory(ctx context.Context, companyID string, categoryID string) error {
	entryCount, err := s.entryRepo.CountEntriesByCategory(ctx, companyID, categoryID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check category usage", slog.String("category_id", categoryID))
		return err
	}
	if entryCount > 0 {
		return fmt.Errorf("%w: category has %d scheduled entries", apperrors.ErrConflict, entryCount)
	}

	movementCount, err := s.movementRepo.CountMovementsByCategory(ctx, companyID, categoryID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check category usage", slog.String("category_id", categoryID))
		return err
	}
	if movementCount > 0 {
		return fmt.Errorf("%w: category has %d movements", apperrors.ErrConflict, movementCount)
	}

	if err := s.categoryRepo.DeleteCategory(ctx, companyID, categoryID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to delete category", slog.String("category_id", categoryID))
		}
		return err
	}

	s.LogInfo(ctx, "Category deleted", slog.String("category_id", categoryID))
	return nil
}
