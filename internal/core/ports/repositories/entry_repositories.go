package repositories

import (
	"context"
	"time"

	"github.com/gestorsaas/gestor_financeiro_app/internal/core/domain"
)

// EntryFilter narrows scheduled entry listings. Nil fields are ignored.
type EntryFilter struct {
	Status         *domain.EntryStatus
	Kind           *domain.CategoryKind
	CategoryID     *string
	RegistrationID *string
	DueFrom        *time.Time
	DueTo          *time.Time
	// OverdueOn restricts to pending entries strictly due before the given
	// date. When set, Status is ignored.
	OverdueOn *time.Time
}

// ScheduledEntryReader defines read operations for scheduled entries
type ScheduledEntryReader interface {
	// FindEntryByID retrieves a scheduled entry by its identifier within a company.
	FindEntryByID(ctx context.Context, companyID string, entryID string) (*domain.ScheduledEntry, error)

	// ListEntries retrieves the company's scheduled entries matching the filter,
	// ordered by due date then document label.
	ListEntries(ctx context.Context, companyID string, filter EntryFilter) ([]domain.ScheduledEntry, error)

	// CountEntriesByCategory returns how many scheduled entries reference a category.
	CountEntriesByCategory(ctx context.Context, companyID string, categoryID string) (int64, error)

	// CountEntriesByRegistration returns how many scheduled entries reference a registration.
	CountEntriesByRegistration(ctx context.Context, companyID string, registrationID string) (int64, error)
}

// ScheduledEntryWriter defines write operations for scheduled entries
type ScheduledEntryWriter interface {
	// SaveEntry persists a new scheduled entry.
	SaveEntry(ctx context.Context, entry domain.ScheduledEntry) error

	// SaveEntries persists a batch of scheduled entries atomically. Used by
	// installment generation so either every installment lands or none does.
	SaveEntries(ctx context.Context, entries []domain.ScheduledEntry) error

	// UpdateEntry updates an existing scheduled entry's details.
	UpdateEntry(ctx context.Context, entry domain.ScheduledEntry) error

	// UpdateEntryStatus updates only the lifecycle status of an entry.
	UpdateEntryStatus(ctx context.Context, companyID string, entryID string, status domain.EntryStatus, updatedByUserID string, updatedAt time.Time) error

	// DeleteEntry removes a scheduled entry.
	DeleteEntry(ctx context.Context, companyID string, entryID string) error

	// SettleEntry inserts the settlement movement and marks the entry settled
	// within a single database transaction.
	SettleEntry(ctx context.Context, entry domain.ScheduledEntry, movement domain.Movement) error
}

// ScheduledEntryRepositoryFacade combines all scheduled-entry-related repository interfaces
type ScheduledEntryRepositoryFacade interface {
	ScheduledEntryReader
	ScheduledEntryWriter
}

// ScheduledEntryRepositoryWithTx extends ScheduledEntryRepositoryFacade with transaction capabilities
type ScheduledEntryRepositoryWithTx interface {
	ScheduledEntryRepositoryFacade
	TransactionManager
}
