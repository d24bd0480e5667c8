package services

import (
	"context"

	"github.com/gestorsaas/gestor_financeiro_app/internal/core/domain"
	"github.com/gestorsaas/gestor_financeiro_app/internal/dto"
)

// EntryReaderSvc defines read operations for scheduled entries
type EntryReaderSvc interface {
	// GetEntryByID retrieves a specific scheduled entry by its ID.
	GetEntryByID(ctx context.Context, companyID string, entryID string) (*domain.ScheduledEntry, error)

	// ListEntries retrieves the company's scheduled entries matching the params.
	ListEntries(ctx context.Context, companyID string, params dto.ListEntriesParams) ([]domain.ScheduledEntry, error)
}

// EntryWriterSvc defines write operations for scheduled entries
type EntryWriterSvc interface {
	// CreateEntry persists a single new scheduled entry.
	CreateEntry(ctx context.Context, companyID string, req dto.CreateEntryRequest, creatorUserID string) (*domain.ScheduledEntry, error)

	// CreateInstallments generates and persists a series of scheduled entries
	// sharing one installment group.
	CreateInstallments(ctx context.Context, companyID string, req dto.CreateInstallmentsRequest, creatorUserID string) ([]domain.ScheduledEntry, error)

	// UpdateEntry updates a pending entry's details.
	UpdateEntry(ctx context.Context, companyID string, entryID string, req dto.UpdateEntryRequest, requestingUserID string) (*domain.ScheduledEntry, error)

	// CancelEntry marks a pending entry as cancelled.
	CancelEntry(ctx context.Context, companyID string, entryID string, requestingUserID string) error

	// DeleteEntry removes a scheduled entry, failing for settled ones.
	DeleteEntry(ctx context.Context, companyID string, entryID string) error
}

// EntrySettlerSvc defines the settlement operation
type EntrySettlerSvc interface {
	// SettleEntry records the cash movement that pays a pending entry and marks
	// it settled, atomically. Returns the created movement.
	SettleEntry(ctx context.Context, companyID string, entryID string, req dto.SettleEntryRequest, requestingUserID string) (*domain.Movement, error)
}

// EntrySvcFacade combines all scheduled-entry-related service interfaces
type EntrySvcFacade interface {
	EntryReaderSvc
	EntryWriterSvc
	EntrySettlerSvc
}
