package dto

import (
	"time"

	"github.com/gestorsaas/gestor_financeiro_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCashBoxRequest defines the data needed to create a cash box.
type CreateCashBoxRequest struct {
	Name           string          `json:"name" binding:"required"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
}

// UpdateCashBoxRequest defines the data allowed for updating a cash box.
type UpdateCashBoxRequest struct {
	Name           *string          `json:"name"`
	OpeningBalance *decimal.Decimal `json:"openingBalance"`
}

// CashBoxResponse defines the data returned for a cash box.
type CashBoxResponse struct {
	CashBoxID      string          `json:"cashBoxID"`
	Name           string          `json:"name"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	CreatedAt      time.Time       `json:"createdAt"`
	CreatedBy      string          `json:"createdBy"`
	LastUpdatedAt  time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy  string          `json:"lastUpdatedBy"`
}

// CashBoxBalanceResponse defines the data returned for a running balance query.
type CashBoxBalanceResponse struct {
	CashBoxID string          `json:"cashBoxID"`
	AsOf      time.Time       `json:"asOf"`
	Balance   decimal.Decimal `json:"balance"`
}

// ToCashBoxResponse converts a domain.CashBox to CashBoxResponse DTO
func ToCashBoxResponse(cb *domain.CashBox) CashBoxResponse {
	return CashBoxResponse{
		CashBoxID:      cb.CashBoxID,
		Name:           cb.Name,
		OpeningBalance: cb.OpeningBalance,
		CreatedAt:      cb.CreatedAt,
		CreatedBy:      cb.CreatedBy,
		LastUpdatedAt:  cb.LastUpdatedAt,
		LastUpdatedBy:  cb.LastUpdatedBy,
	}
}

// ToListCashBoxResponse converts a slice of domain.CashBox to response DTOs
func ToListCashBoxResponse(boxes []domain.CashBox) []CashBoxResponse {
	res := make([]CashBoxResponse, len(boxes))
	for i, cb := range boxes {
		res[i] = ToCashBoxResponse(&cb)
	}
	return res
}
