package dto

import (
	"time"

	"github.com/gestorsaas/gestor_financeiro_app/internal/core/domain"
)

// SetParameterRequest defines the data needed to create or replace a
// system parameter.
type SetParameterRequest struct {
	Key         string `json:"key" binding:"required"`
	Value       string `json:"value" binding:"required"`
	Description string `json:"description"`
}

// ParameterResponse defines the data returned for a system parameter.
type ParameterResponse struct {
	Key           string    `json:"key"`
	Value         string    `json:"value"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToParameterResponse converts a domain.SystemParameter to ParameterResponse DTO
func ToParameterResponse(p *domain.SystemParameter) ParameterResponse {
	return ParameterResponse{
		Key:           p.Key,
		Value:         p.Value,
		Description:   p.Description,
		CreatedAt:     p.CreatedAt,
		LastUpdatedAt: p.LastUpdatedAt,
	}
}

// ToListParameterResponse converts a slice of domain.SystemParameter to response DTOs
func ToListParameterResponse(params []domain.SystemParameter) []ParameterResponse {
	res := make([]ParameterResponse, len(params))
	for i, p := range params {
		res[i] = ToParameterResponse(&p)
	}
	return res
}
