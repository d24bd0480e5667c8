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

type movementService struct {
	BaseService
	movementRepo portsrepo.MovementRepositoryFacade
	cashBoxRepo  portsrepo.CashBoxReader
	categoryRepo portsrepo.CategoryReader
}

// NewMovementService creates the cash movement service.
func NewMovementService(movementRepo portsrepo.MovementRepositoryFacade, cashBoxRepo portsrepo.CashBoxReader, categoryRepo portsrepo.CategoryReader) portssvc.MovementSvcFacade {
	return &movementService{movementRepo: movementRepo, cashBoxRepo: cashBoxRepo, categoryRepo: categoryRepo}
}

var _ portssvc.MovementSvcFacade = (*movementService)(nil)

// checkRefs validates that the cash box and optional category belong to the
// company.
func (s *movementService) checkRefs(ctx context.Context, companyID string, cashBoxID string, categoryID *string) error {
	if _, err := s.cashBoxRepo.FindCashBoxByID(ctx, companyID, cashBoxID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: cash box %s does not exist", apperrors.ErrValidation, cashBoxID)
		}
		return err
	}
	if categoryID != nil && *categoryID != "" {
		if _, err := s.categoryRepo.FindCategoryByID(ctx, companyID, *categoryID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("%w: category %s does not exist", apperrors.ErrValidation, *categoryID)
			}
			return err
		}
	}
	return nil
}

// CreateMovement records a manual cash posting. The stored amount is
// sign-normalized: debits non-positive, credits non-negative, regardless of
// the sign the caller sent.
func (s *movementService) CreateMovement(ctx context.Context, companyID string, req dto.CreateMovementRequest, creatorUserID string) (*domain.Movement, error) {
	if req.Amount.IsZero() {
		return nil, fmt.Errorf("%w: amount cannot be zero", apperrors.ErrValidation)
	}
	if err := s.checkRefs(ctx, companyID, req.CashBoxID, req.CategoryID); err != nil {
		return nil, err
	}

	now := time.Now()
	movement := domain.Movement{
		MovementID:   uuid.NewString(),
		CompanyID:    companyID,
		CashBoxID:    req.CashBoxID,
		CategoryID:   req.CategoryID,
		MovementDate: req.MovementDate,
		Description:  req.Description,
		Amount:       req.Kind.Normalize(req.Amount),
		Kind:         req.Kind,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.movementRepo.SaveMovement(ctx, movement); err != nil {
		s.LogError(ctx, err, "Failed to save movement", slog.String("movement_id", movement.MovementID))
		return nil, err
	}

	s.LogInfo(ctx, "Movement created",
		slog.String("movement_id", movement.MovementID),
		slog.String("kind", string(movement.Kind)),
		slog.String("amount", movement.Amount.StringFixed(2)))
	return &movement, nil
}

func (s *movementService) GetMovementByID(ctx context.Context, companyID string, movementID string) (*domain.Movement, error) {
	movement, err := s.movementRepo.FindMovementByID(ctx, companyID, movementID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find movement", slog.String("movement_id", movementID))
		}
		return nil, err
	}
	return movement, nil
}

func (s *movementService) ListMovements(ctx context.Context, companyID string, params dto.ListMovementsParams) ([]domain.Movement, error) {
	filter := portsrepo.MovementFilter{
		CashBoxID:  params.CashBoxID,
		CategoryID: params.CategoryID,
		From:       params.From,
		To:         params.To,
	}
	movements, err := s.movementRepo.ListMovements(ctx, companyID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list movements")
		return nil, fmt.Errorf("failed to list movements: %w", err)
	}
	return movements, nil
}

func (s *movementService) UpdateMovement(ctx context.Context, companyID string, movementID string, req dto.UpdateMovementRequest, requestingUserID string) (*domain.Movement, error) {
	movement, err := s.movementRepo.FindMovementByID(ctx, companyID, movementID)
	if err != nil {
		return nil, err
	}

	if req.CashBoxID != nil {
		movement.CashBoxID = *req.CashBoxID
	}
	if req.CategoryID != nil {
		movement.CategoryID = req.CategoryID
	}
	if req.MovementDate != nil {
		movement.MovementDate = *req.MovementDate
	}
	if req.Description != nil {
		movement.Description = *req.Description
	}
	if req.Kind != nil {
		movement.Kind = *req.Kind
	}
	if req.Amount != nil {
		if req.Amount.IsZero() {
			return nil, fmt.Errorf("%w: amount cannot be zero", apperrors.ErrValidation)
		}
		movement.Amount = *req.Amount
	}
	// Re-normalize in case the kind or amount changed.
	movement.Amount = movement.Kind.Normalize(movement.Amount)

	if err := s.checkRefs(ctx, companyID, movement.CashBoxID, movement.CategoryID); err != nil {
		return nil, err
	}

	movement.LastUpdatedAt = time.Now()
	movement.LastUpdatedBy = requestingUserID

	if err := s.movementRepo.UpdateMovement(ctx, *movement); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update movement", slog.String("movement_id", movementID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Movement updated", slog.String("movement_id", movementID))
	return movement, nil
}

// DeleteMovement removes a movement. Deleting a settlement movement also
// reverts its origin entry to pending, in the same transaction, so the
// payable/receivable reopens the moment its payment record disappears.
func (s *movementService) DeleteMovement(ctx context.Context, companyID string, movementID string, requestingUserID string) error {
	movement, err := s.movementRepo.FindMovementByID(ctx, companyID, movementID)
	if err != nil {
		return err
	}

	if movement.IsSettlement() {
		if err := s.movementRepo.DeleteMovementAndReopenEntry(ctx, *movement, requestingUserID, time.Now()); err != nil {
			s.LogError(ctx, err, "Failed to delete settlement movement", slog.String("movement_id", movementID))
			return err
		}
		s.LogInfo(ctx, "Settlement movement deleted, entry reopened",
			slog.String("movement_id", movementID),
			slog.String("entry_id", *movement.OriginEntryID))
		return nil
	}

	if err := s.movementRepo.DeleteMovement(ctx, companyID, movementID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete movement", slog.String("movement_id", movementID))
		}
		return err
	}

	s.LogInfo(ctx, "Movement deleted", slog.String("movement_id", movementID))
	return nil
}
