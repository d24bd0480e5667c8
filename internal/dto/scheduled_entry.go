package dto

import (
	"time"

	"github.com/gestorsaas/gestor_financeiro_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEntryRequest defines the data needed to create a single scheduled entry.
type CreateEntryRequest struct {
	CategoryID     string          `json:"categoryID" binding:"required"`
	RegistrationID *string         `json:"registrationID"`
	Description    string          `json:"description" binding:"required"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	DueDate        time.Time       `json:"dueDate" binding:"required"`
	Notes          string          `json:"notes"`
}

// CreateInstallmentsRequest defines the data needed to generate a series of
// scheduled entries: the base amount plus interest is divided evenly across
// the installments, due dates advancing one month at a time.
type CreateInstallmentsRequest struct {
	CategoryID     string          `json:"categoryID" binding:"required"`
	RegistrationID *string         `json:"registrationID"`
	Description    string          `json:"description" binding:"required"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	InterestRate   decimal.Decimal `json:"interestRate"` // Percent applied to the total, e.g. 10 for 10%
	Installments   int             `json:"installments" binding:"required,min=2"`
	FirstDueDate   time.Time       `json:"firstDueDate" binding:"required"`
	Notes          string          `json:"notes"`
}

// UpdateEntryRequest defines the data allowed for updating a scheduled entry.
type UpdateEntryRequest struct {
	CategoryID     *string          `json:"categoryID"`
	RegistrationID *string          `json:"registrationID"`
	Description    *string          `json:"description"`
	Amount         *decimal.Decimal `json:"amount"`
	DueDate        *time.Time       `json:"dueDate"`
	Notes          *string          `json:"notes"`
}

// SettleEntryRequest defines the data needed to settle a scheduled entry.
// The movement always posts the entry's own amount.
type SettleEntryRequest struct {
	CashBoxID      string    `json:"cashBoxID" binding:"required"`
	SettlementDate time.Time `json:"settlementDate" binding:"required"`
}

// ListEntriesParams defines query parameters for listing scheduled entries.
// Status accepts PENDING, SETTLED, CANCELLED or OVERDUE; OVERDUE selects
// pending entries whose due date has passed.
type ListEntriesParams struct {
	Status         string               `form:"status" binding:"omitempty,oneof=PENDING SETTLED CANCELLED OVERDUE"`
	Kind           *domain.CategoryKind `form:"kind" binding:"omitempty,oneof=REVENUE EXPENSE"`
	CategoryID     *string              `form:"categoryID"`
	RegistrationID *string              `form:"registrationID"`
	DueFrom        *time.Time           `form:"dueFrom" time_format:"2006-01-02"`
	DueTo          *time.Time           `form:"dueTo" time_format:"2006-01-02"`
}

// EntryResponse defines the data returned for a scheduled entry.
type EntryResponse struct {
	EntryID        string             `json:"entryID"`
	CategoryID     string             `json:"categoryID"`
	RegistrationID *string            `json:"registrationID,omitempty"`
	Description    string             `json:"description"`
	Amount         decimal.Decimal    `json:"amount"`
	DueDate        time.Time          `json:"dueDate"`
	Status         domain.EntryStatus `json:"status"`
	DocumentLabel  string             `json:"documentLabel"`
	Notes          string             `json:"notes"`
	CreatedAt      time.Time          `json:"createdAt"`
	CreatedBy      string             `json:"createdBy"`
	LastUpdatedAt  time.Time          `json:"lastUpdatedAt"`
	LastUpdatedBy  string             `json:"lastUpdatedBy"`
}

// ToEntryResponse converts a domain.ScheduledEntry to EntryResponse DTO
func ToEntryResponse(e *domain.ScheduledEntry) EntryResponse {
	return EntryResponse{
		EntryID:        e.EntryID,
		CategoryID:     e.CategoryID,
		RegistrationID: e.RegistrationID,
		Description:    e.Description,
		Amount:         e.Amount,
		DueDate:        e.DueDate,
		Status:         e.Status,
		DocumentLabel:  e.DocumentLabel,
		Notes:          e.Notes,
		CreatedAt:      e.CreatedAt,
		CreatedBy:      e.CreatedBy,
		LastUpdatedAt:  e.LastUpdatedAt,
		LastUpdatedBy:  e.LastUpdatedBy,
	}
}

// ToListEntryResponse converts a slice of domain.ScheduledEntry to response DTOs
func ToListEntryResponse(entries []domain.ScheduledEntry) []EntryResponse {
	res := make([]EntryResponse, len(entries))
	for i, e := range entries {
		res[i] = ToEntryResponse(&e)
	}
	return res
}
