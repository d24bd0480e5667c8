package repositories

import (
	"context"
	"time"

	"github.com/gestorsaas/gestor_financeiro_app/internal/core/domain"
)

// MovementFilter narrows movement listings. Nil fields are ignored.
type MovementFilter struct {
	CashBoxID  *string
	CategoryID *string
	From       *time.Time
	To         *time.Time
}

// MovementReader defines read operations for cash movements
type MovementReader interface {
	// FindMovementByID retrieves a movement by its identifier within a company.
	FindMovementByID(ctx context.Context, companyID string, movementID string) (*domain.Movement, error)

	// FindMovementByOriginEntry retrieves the settlement movement linked to a
	// scheduled entry, if one exists.
	FindMovementByOriginEntry(ctx context.Context, companyID string, entryID string) (*domain.Movement, error)

	// ListMovements retrieves the company's movements matching the filter,
	// ordered by movement date descending then creation time descending.
	ListMovements(ctx context.Context, companyID string, filter MovementFilter) ([]domain.Movement, error)

	// CountMovementsByCashBox returns how many movements reference a cash box.
	CountMovementsByCashBox(ctx context.Context, companyID string, cashBoxID string) (int64, error)

	// CountMovementsByCategory returns how many movements reference a category.
	CountMovementsByCategory(ctx context.Context, companyID string, categoryID string) (int64, error)
}

// MovementWriter defines write operations for cash movements
type MovementWriter interface {
	// SaveMovement persists a new movement.
	SaveMovement(ctx context.Context, movement domain.Movement) error

	// UpdateMovement updates an existing movement's details.
	UpdateMovement(ctx context.Context, movement domain.Movement) error

	// DeleteMovement removes a movement without touching any linked entry.
	DeleteMovement(ctx context.Context, companyID string, movementID string) error

	// DeleteMovementAndReopenEntry removes a settlement movement and reverts its
	// origin entry to pending within a single database transaction.
	DeleteMovementAndReopenEntry(ctx context.Context, movement domain.Movement, updatedByUserID string, updatedAt time.Time) error
}

// MovementRepositoryFacade combines all movement-related repository interfaces
type MovementRepositoryFacade interface {
	MovementReader
	MovementWriter
}

// MovementRepositoryWithTx extends MovementRepositoryFacade with transaction capabilities
type MovementRepositoryWithTx interface {
	MovementRepositoryFacade
	TransactionManager
}
