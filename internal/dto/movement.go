package dto

import (
	"time"

	"github.com/gestorsaas/gestor_financeiro_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateMovementRequest defines the data needed to record a cash movement.
// The amount may arrive with either sign; it is normalized per kind before
// being stored.
type CreateMovementRequest struct {
	CashBoxID    string              `json:"cashBoxID" binding:"required"`
	CategoryID   *string             `json:"categoryID"`
	MovementDate time.Time           `json:"movementDate" binding:"required"`
	Description  string              `json:"description" binding:"required"`
	Amount       decimal.Decimal     `json:"amount" binding:"required"`
	Kind         domain.MovementKind `json:"kind" binding:"required,oneof=CREDIT DEBIT"`
}

// UpdateMovementRequest defines the data allowed for updating a movement.
type UpdateMovementRequest struct {
	CashBoxID    *string              `json:"cashBoxID"`
	CategoryID   *string              `json:"categoryID"`
	MovementDate *time.Time           `json:"movementDate"`
	Description  *string              `json:"description"`
	Amount       *decimal.Decimal     `json:"amount"`
	Kind         *domain.MovementKind `json:"kind" binding:"omitempty,oneof=CREDIT DEBIT"`
}

// ListMovementsParams defines query parameters for listing movements.
type ListMovementsParams struct {
	CashBoxID  *string    `form:"cashBoxID"`
	CategoryID *string    `form:"categoryID"`
	From       *time.Time `form:"from" time_format:"2006-01-02"`
	To         *time.Time `form:"to" time_format:"2006-01-02"`
}

// MovementResponse defines the data returned for a cash movement.
type MovementResponse struct {
	MovementID    string              `json:"movementID"`
	CashBoxID     string              `json:"cashBoxID"`
	CategoryID    *string             `json:"categoryID,omitempty"`
	OriginEntryID *string             `json:"originEntryID,omitempty"`
	MovementDate  time.Time           `json:"movementDate"`
	Description   string              `json:"description"`
	Amount        decimal.Decimal     `json:"amount"`
	Kind          domain.MovementKind `json:"kind"`
	CreatedAt     time.Time           `json:"createdAt"`
	CreatedBy     string              `json:"createdBy"`
	LastUpdatedAt time.Time           `json:"lastUpdatedAt"`
	LastUpdatedBy string              `json:"lastUpdatedBy"`
}

// ToMovementResponse converts a domain.Movement to MovementResponse DTO
func ToMovementResponse(m *domain.Movement) MovementResponse {
	return MovementResponse{
		MovementID:    m.MovementID,
		CashBoxID:     m.CashBoxID,
		CategoryID:    m.CategoryID,
		OriginEntryID: m.OriginEntryID,
		MovementDate:  m.MovementDate,
		Description:   m.Description,
		Amount:        m.Amount,
		Kind:          m.Kind,
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
		LastUpdatedAt: m.LastUpdatedAt,
		LastUpdatedBy: m.LastUpdatedBy,
	}
}

// ToListMovementResponse converts a slice of domain.Movement to response DTOs
func ToListMovementResponse(movements []domain.Movement) []MovementResponse {
	res := make([]MovementResponse, len(movements))
	for i, m := range movements {
		res[i] = ToMovementResponse(&m)
	}
	return res
}
