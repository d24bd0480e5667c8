package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus indicates the lifecycle state of a scheduled entry.
type EntryStatus string

const (
	EntryPending   EntryStatus = "PENDING"
	EntrySettled   EntryStatus = "SETTLED"
	EntryCancelled EntryStatus = "CANCELLED"
)

// ScheduledEntry is a forward-looking payable or receivable. The amount is
// always stored positive; whether money flows in or out is derived from the
// category kind. An entry becomes SETTLED only through the settlement
// operation, which posts a linked cash movement.
type ScheduledEntry struct {
	EntryID        string          `json:"entryID"`    // Primary Key (UUID)
	CompanyID      string          `json:"companyID"`  // FK -> companies.company_id (NON-NULL)
	CategoryID     string          `json:"categoryID"` // FK -> categories (NON-NULL, delete protected)
	RegistrationID *string         `json:"registrationID"` // Optional counterparty, cleared when the registration is removed
	Description    string          `json:"description"`
	Amount         decimal.Decimal `json:"amount"` // Always positive
	DueDate        time.Time       `json:"dueDate"`
	Status         EntryStatus     `json:"status"`
	DocumentLabel  string          `json:"documentLabel"` // "12345" or "{group}-{i}/{count}" for installments
	Notes          string          `json:"notes"`
	AuditFields
}

// IsOverdue reports whether the entry is pending past its due date.
func (e ScheduledEntry) IsOverdue(today time.Time) bool {
	return e.Status == EntryPending && e.DueDate.Before(today)
}
