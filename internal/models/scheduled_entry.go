package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus is the lifecycle state of a scheduled entry.
type EntryStatus string

const (
	EntryPending   EntryStatus = "PENDING"
	EntrySettled   EntryStatus = "SETTLED"
	EntryCancelled EntryStatus = "CANCELLED"
)

// ScheduledEntry represents a payable or receivable awaiting settlement.
// RegistrationID uses a pointer for the nullable counterparty reference.
type ScheduledEntry struct {
	EntryID        string          `db:"entry_id"`
	CompanyID      string          `db:"company_id"`
	CategoryID     string          `db:"category_id"`
	RegistrationID *string         `db:"registration_id"`
	Description    string          `db:"description"`
	Amount         decimal.Decimal `db:"amount"`
	DueDate        time.Time       `db:"due_date"`
	Status         EntryStatus     `db:"status"`
	DocumentLabel  string          `db:"document_label"`
	Notes          string          `db:"notes"`
	AuditFields
}
