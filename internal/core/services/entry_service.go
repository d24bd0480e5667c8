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
	"github.com/gestorsaas/gestor_financeiro_app/internal/utils/schedule"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

type entryService struct {
	BaseService
	entryRepo        portsrepo.ScheduledEntryRepositoryFacade
	categoryRepo     portsrepo.CategoryReader
	registrationRepo portsrepo.RegistrationReader
	cashBoxRepo      portsrepo.CashBoxReader
}

// NewEntryService creates the scheduled entry service.
func NewEntryService(
	entryRepo portsrepo.ScheduledEntryRepositoryFacade,
	categoryRepo portsrepo.CategoryReader,
	registrationRepo portsrepo.RegistrationReader,
	cashBoxRepo portsrepo.CashBoxReader,
) portssvc.EntrySvcFacade {
	return &entryService{
		entryRepo:        entryRepo,
		categoryRepo:     categoryRepo,
		registrationRepo: registrationRepo,
		cashBoxRepo:      cashBoxRepo,
	}
}

var _ portssvc.EntrySvcFacade = (*entryService)(nil)

// resolveRefs checks the category and optional registration of an entry and
// returns the category. A registration must be capable of the side implied by
// the category kind: customers for revenues, suppliers for expenses.
func (s *entryService) resolveRefs(ctx context.Context, companyID string, categoryID string, registrationID *string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, companyID, categoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: category %s does not exist", apperrors.ErrValidation, categoryID)
		}
		return nil, err
	}

	if registrationID != nil && *registrationID != "" {
		registration, err := s.registrationRepo.FindRegistrationByID(ctx, companyID, *registrationID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: registration %s does not exist", apperrors.ErrValidation, *registrationID)
			}
			return nil, err
		}
		if !registration.Role.Allows(category.Kind) {
			return nil, fmt.Errorf("%w: registration role %s cannot be used on %s entries", apperrors.ErrValidation, registration.Role, category.Kind)
		}
	}

	return category, nil
}

func (s *entryService) CreateEntry(ctx context.Context, companyID string, req dto.CreateEntryRequest, creatorUserID string) (*domain.ScheduledEntry, error) {
	if req.Amount.IsNegative() || req.Amount.IsZero() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if _, err := s.resolveRefs(ctx, companyID, req.CategoryID, req.RegistrationID); err != nil {
		return nil, err
	}

	now := time.Now()
	entry := domain.ScheduledEntry{
		EntryID:        uuid.NewString(),
		CompanyID:      companyID,
		CategoryID:     req.CategoryID,
		RegistrationID: req.RegistrationID,
		Description:    req.Description,
		Amount:         req.Amount,
		DueDate:        req.DueDate,
		Status:         domain.EntryPending,
		DocumentLabel:  schedule.NewDocumentLabel(),
		Notes:          req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.entryRepo.SaveEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save entry", slog.String("entry_id", entry.EntryID))
		return nil, err
	}

	s.LogInfo(ctx, "Entry created", slog.String("entry_id", entry.EntryID), slog.String("document_label", entry.DocumentLabel))
	return &entry, nil
}

// CreateInstallments divides the base amount plus interest evenly across the
// requested number of installments. Each installment is rounded to cents on
// its own; any residual cents stay unallocated rather than being pushed onto
// one installment. Due dates advance month by month from the first, clamping
// to shorter months.
func (s *entryService) CreateInstallments(ctx context.Context, companyID string, req dto.CreateInstallmentsRequest, creatorUserID string) ([]domain.ScheduledEntry, error) {
	if req.Amount.IsNegative() || req.Amount.IsZero() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if req.Installments < 2 {
		return nil, fmt.Errorf("%w: installments must be at least 2", apperrors.ErrValidation)
	}
	if req.InterestRate.IsNegative() {
		return nil, fmt.Errorf("%w: interest rate cannot be negative", apperrors.ErrValidation)
	}
	if _, err := s.resolveRefs(ctx, companyID, req.CategoryID, req.RegistrationID); err != nil {
		return nil, err
	}

	total := req.Amount.Mul(decimal.NewFromInt(1).Add(req.InterestRate.Div(oneHundred)))
	perInstallment := total.Div(decimal.NewFromInt(int64(req.Installments))).Round(2)
	group := schedule.NewInstallmentGroup()

	now := time.Now()
	entries := make([]domain.ScheduledEntry, req.Installments)
	for i := 0; i < req.Installments; i++ {
		entries[i] = domain.ScheduledEntry{
			EntryID:        uuid.NewString(),
			CompanyID:      companyID,
			CategoryID:     req.CategoryID,
			RegistrationID: req.RegistrationID,
			Description:    req.Description,
			Amount:         perInstallment,
			DueDate:        schedule.AddMonths(req.FirstDueDate, i),
			Status:         domain.EntryPending,
			DocumentLabel:  schedule.InstallmentLabel(group, i+1, req.Installments),
			Notes:          req.Notes,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     creatorUserID,
				LastUpdatedAt: now,
				LastUpdatedBy: creatorUserID,
			},
		}
	}

	if err := s.entryRepo.SaveEntries(ctx, entries); err != nil {
		s.LogError(ctx, err, "Failed to save installment batch", slog.String("group", group))
		return nil, err
	}

	s.LogInfo(ctx, "Installments created",
		slog.String("group", group),
		slog.Int("count", req.Installments),
		slog.String("total", total.StringFixed(2)))
	return entries, nil
}

func (s *entryService) GetEntryByID(ctx context.Context, companyID string, entryID string) (*domain.ScheduledEntry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, companyID, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find entry", slog.String("entry_id", entryID))
		}
		return nil, err
	}
	return entry, nil
}

func (s *entryService) ListEntries(ctx context.Context, companyID string, params dto.ListEntriesParams) ([]domain.ScheduledEntry, error) {
	filter := portsrepo.EntryFilter{
		Kind:           params.Kind,
		CategoryID:     params.CategoryID,
		RegistrationID: params.RegistrationID,
		DueFrom:        params.DueFrom,
		DueTo:          params.DueTo,
	}
	switch params.Status {
	case "":
		// No status filter.
	case "OVERDUE":
		today := time.Now()
		filter.OverdueOn = &today
	default:
		status := domain.EntryStatus(params.Status)
		filter.Status = &status
	}

	entries, err := s.entryRepo.ListEntries(ctx, companyID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list entries")
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	return entries, nil
}

func (s *entryService) UpdateEntry(ctx context.Context, companyID string, entryID string, req dto.UpdateEntryRequest, requestingUserID string) (*domain.ScheduledEntry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, companyID, entryID)
	if err != nil {
		return nil, err
	}
	if entry.Status != domain.EntryPending {
		return nil, fmt.Errorf("%w: only pending entries can be edited", apperrors.ErrConflict)
	}

	if req.CategoryID != nil {
		entry.CategoryID = *req.CategoryID
	}
	if req.RegistrationID != nil {
		entry.RegistrationID = req.RegistrationID
	}
	if req.Description != nil {
		entry.Description = *req.Description
	}
	if req.Amount != nil {
		if req.Amount.IsNegative() || req.Amount.IsZero() {
			return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
		}
		entry.Amount = *req.Amount
	}
	if req.DueDate != nil {
		entry.DueDate = *req.DueDate
	}
	if req.Notes != nil {
		entry.Notes = *req.Notes
	}

	if _, err := s.resolveRefs(ctx, companyID, entry.CategoryID, entry.RegistrationID); err != nil {
		return nil, err
	}

	entry.LastUpdatedAt = time.Now()
	entry.LastUpdatedBy = requestingUserID

	if err := s.entryRepo.UpdateEntry(ctx, *entry); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update entry", slog.String("entry_id", entryID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Entry updated", slog.String("entry_id", entryID))
	return entry, nil
}

func (s *entryService) CancelEntry(ctx context.Context, companyID string, entryID string, requestingUserID string) error {
	entry, err := s.entryRepo.FindEntryByID(ctx, companyID, entryID)
	if err != nil {
		return err
	}
	if entry.Status != domain.EntryPending {
		return fmt.Errorf("%w: only pending entries can be cancelled", apperrors.ErrConflict)
	}

	if err := s.entryRepo.UpdateEntryStatus(ctx, companyID, entryID, domain.EntryCancelled, requestingUserID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to cancel entry", slog.String("entry_id", entryID))
		return err
	}

	s.LogInfo(ctx, "Entry cancelled", slog.String("entry_id", entryID))
	return nil
}

// DeleteEntry removes an entry. Settled entries are refused: the payment
// record must be deleted first, which reopens the entry.
func (s *entryService) DeleteEntry(ctx context.Context, companyID string, entryID string) error {
	entry, err := s.entryRepo.FindEntryByID(ctx, companyID, entryID)
	if err != nil {
		return err
	}
	if entry.Status == domain.EntrySettled {
		return fmt.Errorf("%w: entry is settled, delete its movement first", apperrors.ErrConflict)
	}

	if err := s.entryRepo.DeleteEntry(ctx, companyID, entryID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to delete entry", slog.String("entry_id", entryID))
		}
		return err
	}

	s.LogInfo(ctx, "Entry deleted", slog.String("entry_id", entryID))
	return nil
}

// SettleEntry records the payment of a pending entry. The cash movement takes
// its direction from the entry's category: revenues produce credits, expenses
// debits, with the stored amount sign-normalized accordingly. The movement
// insert and the status flip happen in one transaction.
func (s *entryService) SettleEntry(ctx context.Context, companyID string, entryID string, req dto.SettleEntryRequest, requestingUserID string) (*domain.Movement, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, companyID, entryID)
	if err != nil {
		return nil, err
	}
	if entry.Status != domain.EntryPending {
		return nil, fmt.Errorf("%w: entry %s is not pending", apperrors.ErrConflict, entryID)
	}

	category, err := s.categoryRepo.FindCategoryByID(ctx, companyID, entry.CategoryID)
	if err != nil {
		return nil, err
	}

	if err := s.checkSettlementCashBox(ctx, companyID, req.CashBoxID); err != nil {
		return nil, err
	}

	kind := category.Kind.MovementKindFor()

	now := time.Now()
	categoryID := entry.CategoryID
	movement := domain.Movement{
		MovementID:    uuid.NewString(),
		CompanyID:     companyID,
		CashBoxID:     req.CashBoxID,
		CategoryID:    &categoryID,
		OriginEntryID: &entry.EntryID,
		MovementDate:  req.SettlementDate,
		Description:   "Settlement: " + entry.Description,
		Amount:        kind.Normalize(entry.Amount),
		Kind:          kind,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}

	if err := s.entryRepo.SettleEntry(ctx, *entry, movement); err != nil {
		if !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to settle entry", slog.String("entry_id", entryID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Entry settled",
		slog.String("entry_id", entryID),
		slog.String("movement_id", movement.MovementID),
		slog.String("cash_box_id", req.CashBoxID))
	return &movement, nil
}

// checkSettlementCashBox verifies the cash box a settlement posts to. A
// settlement must always name one.
func (s *entryService) checkSettlementCashBox(ctx context.Context, companyID string, cashBoxID string) error {
	if cashBoxID == "" {
		return fmt.Errorf("%w: cash box is required to settle an entry", apperrors.ErrValidation)
	}
	if _, err := s.cashBoxRepo.FindCashBoxByID(ctx, companyID, cashBoxID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: cash box %s does not exist", apperrors.ErrValidation, cashBoxID)
		}
		return err
	}
	return nil
}
