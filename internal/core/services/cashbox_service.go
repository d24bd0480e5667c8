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
	"github.com/shopspring/decimal"
)

type cashBoxService struct {
	BaseService
	cashBoxRepo   portsrepo.CashBoxRepositoryFacade
	movementRepo  portsrepo.MovementReader
	reportingRepo portsrepo.ReportingRepository
}

// NewCashBoxService creates the cash box service. The movement reader backs
// the in-use check that guards deletions; the reporting repository backs the
// running balance calculation.
func NewCashBoxService(cashBoxRepo portsrepo.CashBoxRepositoryFacade, movementRepo portsrepo.MovementReader, reportingRepo portsrepo.ReportingRepository) portssvc.CashBoxSvcFacade {
	return &cashBoxService{cashBoxRepo: cashBoxRepo, movementRepo: movementRepo, reportingRepo: reportingRepo}
}

var _ portssvc.CashBoxSvcFacade = (*cashBoxService)(nil)

func (s *cashBoxService) CreateCashBox(ctx context.Context, companyID string, req dto.CreateCashBoxRequest, creatorUserID string) (*domain.CashBox, error) {
	now := time.Now()
	cashBox := domain.CashBox{
		CashBoxID:      uuid.NewString(),
		CompanyID:      companyID,
		Name:           req.Name,
		OpeningBalance: req.OpeningBalance,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.cashBoxRepo.SaveCashBox(ctx, cashBox); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save cash box", slog.String("cash_box_id", cashBox.CashBoxID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Cash box created", slog.String("cash_box_id", cashBox.CashBoxID))
	return &cashBox, nil
}

func (s *cashBoxService) GetCashBoxByID(ctx context.Context, companyID string, cashBoxID string) (*domain.CashBox, error) {
	cashBox, err := s.cashBoxRepo.FindCashBoxByID(ctx, companyID, cashBoxID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find cash box", slog.String("cash_box_id", cashBoxID))
		}
		return nil, err
	}
	return cashBox, nil
}

func (s *cashBoxService) ListCashBoxes(ctx context.Context, companyID string) ([]domain.CashBox, error) {
	boxes, err := s.cashBoxRepo.ListCashBoxes(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list cash boxes")
		return nil, fmt.Errorf("failed to list cash boxes: %w", err)
	}
	return boxes, nil
}

func (s *cashBoxService) UpdateCashBox(ctx context.Context, companyID string, cashBoxID string, req dto.UpdateCashBoxRequest, requestingUserID string) (*domain.CashBox, error) {
	cashBox, err := s.cashBoxRepo.FindCashBoxByID(ctx, companyID, cashBoxID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		cashBox.Name = *req.Name
	}
	if req.OpeningBalance != nil {
		cashBox.OpeningBalance = *req.OpeningBalance
	}
	cashBox.LastUpdatedAt = time.Now()
	cashBox.LastUpdatedBy = requestingUserID

	if err := s.cashBoxRepo.UpdateCashBox(ctx, *cashBox); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to update cash box", slog.String("cash_box_id", cashBoxID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Cash box updated", slog.String("cash_box_id", cashBoxID))
	return cashBox, nil
}

// DeleteCashBox removes a cash box unless movements still reference it.
func (s *cashBoxService) DeleteCashBox(ctx context.Context, companyID string, cashBoxID string) error {
	count, err := s.movementRepo.CountMovementsByCashBox(ctx, companyID, cashBoxID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check cash box usage", slog.String("cash_box_id", cashBoxID))
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: cash box has %d movements", apperrors.ErrConflict, count)
	}

	if err := s.cashBoxRepo.DeleteCashBox(ctx, companyID, cashBoxID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to delete cash box", slog.String("cash_box_id", cashBoxID))
		}
		return err
	}

	s.LogInfo(ctx, "Cash box deleted", slog.String("cash_box_id", cashBoxID))
	return nil
}

// CalculateRunningBalance returns the opening balance plus the signed sum of
// all movements dated up to and including asOf. Movement amounts are stored
// sign-normalized, so no per-kind arithmetic is needed here.
func (s *cashBoxService) CalculateRunningBalance(ctx context.Context, companyID string, cashBoxID string, asOf time.Time) (decimal.Decimal, error) {
	cashBox, err := s.cashBoxRepo.FindCashBoxByID(ctx, companyID, cashBoxID)
	if err != nil {
		return decimal.Zero, err
	}

	// SumMovementsBefore is exclusive of its cutoff, so shift by one day to
	// include movements dated asOf.
	cutoff := asOf.AddDate(0, 0, 1)
	moved, err := s.reportingRepo.SumMovementsBefore(ctx, companyID, &cashBoxID, nil, cutoff)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum movements for running balance", slog.String("cash_box_id", cashBoxID))
		return decimal.Zero, err
	}

	return cashBox.OpeningBalance.Add(moved), nil
}
