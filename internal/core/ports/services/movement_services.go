package services

import (
	"context"

	"github.com/gestorsaas/gestor_financeiro_app/internal/core/domain"
	"github.com/gestorsaas/gestor_financeiro_app/internal/dto"
)

// MovementReaderSvc defines read operations for cash movements
type MovementReaderSvc interface {
	// GetMovementByID retrieves a specific movement by its ID.
	GetMovementByID(ctx context.Context, companyID string, movementID string) (*domain.Movement, error)

	// ListMovements retrieves the company's movements matching the params.
	ListMovements(ctx context.Context, companyID string, params dto.ListMovementsParams) ([]domain.Movement, error)
}

// MovementWriterSvc defines write operations for cash movements
type MovementWriterSvc interface {
	// CreateMovement persists a new movement with its amount sign-normalized.
	CreateMovement(ctx context.Context, companyID string, req dto.CreateMovementRequest, creatorUserID string) (*domain.Movement, error)

	// UpdateMovement updates a movement's details, re-normalizing the amount.
	UpdateMovement(ctx context.Context, companyID string, movementID string, req dto.UpdateMovementRequest, requestingUserID string) (*domain.Movement, error)

	// DeleteMovement removes a movement. A settlement movement also reverts its
	// origin entry to pending.
	DeleteMovement(ctx context.Context, companyID string, movementID string, requestingUserID string) error
}

// MovementSvcFacade combines all movement-related service interfaces
type MovementSvcFacade interface {
	MovementReaderSvc
	MovementWriterSvc
}
