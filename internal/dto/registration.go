package dto

import (
	"time"

	"github.com/gestorsaas/gestor_financeiro_app/internal/core/domain"
)

// CreateRegistrationRequest defines the data needed to create a directory entry.
type CreateRegistrationRequest struct {
	LegalName  string                    `json:"legalName" binding:"required"`
	Role       domain.RegistrationRole   `json:"role" binding:"required,oneof=CUSTOMER SUPPLIER BOTH"`
	PersonType domain.PersonType         `json:"personType" binding:"required,oneof=INDIVIDUAL COMPANY"`
	CPFCNPJ    string                    `json:"cpfCnpj"`
	Email      string                    `json:"email" binding:"omitempty,email"`
	Phone      string                    `json:"phone"`
	City       string                    `json:"city"`
	State      string                    `json:"state"`
	BirthDate  *time.Time                `json:"birthDate"`
	Status     domain.RegistrationStatus `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE"`
	Notes      string                    `json:"notes"`
}

// UpdateRegistrationRequest defines the data allowed for updating a directory entry.
type UpdateRegistrationRequest struct {
	LegalName  *string                    `json:"legalName"`
	Role       *domain.RegistrationRole   `json:"role" binding:"omitempty,oneof=CUSTOMER SUPPLIER BOTH"`
	PersonType *domain.PersonType         `json:"personType" binding:"omitempty,oneof=INDIVIDUAL COMPANY"`
	CPFCNPJ    *string                    `json:"cpfCnpj"`
	Email      *string                    `json:"email" binding:"omitempty,email"`
	Phone      *string                    `json:"phone"`
	City       *string                    `json:"city"`
	State      *string                    `json:"state"`
	BirthDate  *time.Time                 `json:"birthDate"`
	Status     *domain.RegistrationStatus `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE"`
	Notes      *string                    `json:"notes"`
}

// ListRegistrationsParams defines query parameters for listing directory entries.
type ListRegistrationsParams struct {
	Role   *domain.RegistrationRole   `form:"role" binding:"omitempty,oneof=CUSTOMER SUPPLIER BOTH"`
	Status *domain.RegistrationStatus `form:"status" binding:"omitempty,oneof=ACTIVE INACTIVE"`
	Search string                     `form:"search"`
}

// RegistrationResponse defines the data returned for a directory entry.
type RegistrationResponse struct {
	RegistrationID string                    `json:"registrationID"`
	LegalName      string                    `json:"legalName"`
	Role           domain.RegistrationRole   `json:"role"`
	PersonType     domain.PersonType         `json:"personType"`
	CPFCNPJ        string                    `json:"cpfCnpj"`
	Email          string                    `json:"email"`
	Phone          string                    `json:"phone"`
	City           string                    `json:"city"`
	State          string                    `json:"state"`
	BirthDate      *time.Time                `json:"birthDate,omitempty"`
	Status         domain.RegistrationStatus `json:"status"`
	Notes          string                    `json:"notes"`
	CreatedAt      time.Time                 `json:"createdAt"`
	CreatedBy      string                    `json:"createdBy"`
	LastUpdatedAt  time.Time                 `json:"lastUpdatedAt"`
	LastUpdatedBy  string                    `json:"lastUpdatedBy"`
}

// ToRegistrationResponse converts a domain.Registration to RegistrationResponse DTO
func ToRegistrationResponse(r *domain.Registration) RegistrationResponse {
	return RegistrationResponse{
		RegistrationID: r.RegistrationID,
		LegalName:      r.LegalName,
		Role:           r.Role,
		PersonType:     r.PersonType,
		CPFCNPJ:        r.CPFCNPJ,
		Email:          r.Email,
		Phone:          r.Phone,
		City:           r.City,
		State:          r.State,
		BirthDate:      r.BirthDate,
		Status:         r.Status,
		Notes:          r.Notes,
		CreatedAt:      r.CreatedAt,
		CreatedBy:      r.CreatedBy,
		LastUpdatedAt:  r.LastUpdatedAt,
		LastUpdatedBy:  r.LastUpdatedBy,
	}
}

// ToListRegistrationResponse converts a slice of domain.Registration to response DTOs
func ToListRegistrationResponse(regs []domain.Registration) []RegistrationResponse {
	res := make([]RegistrationResponse, len(regs))
	for i, r := range regs {
		res[i] = ToRegistrationResponse(&r)
	}
	return res
}
