package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementKind indicates the direction of a cash movement.
type MovementKind string

const (
	Credit MovementKind = "CREDIT"
	Debit  MovementKind = "DEBIT"
)

// Normalize corrects the sign of an amount for this movement kind, keeping
// the magnitude: debits are stored non-positive, credits non-negative.
func (k MovementKind) Normalize(amount decimal.Decimal) decimal.Decimal {
	switch {
	case k == Debit && amount.IsPositive():
		return amount.Neg()
	case k == Credit && amount.IsNegative():
		return amount.Neg()
	}
	return amount
}

// Movement is a realized cash posting against a cash box. The stored amount
// is sign-normalized, so summing movements directly yields a balance.
// OriginEntryID links a settlement movement back to the scheduled entry it
// settled; at most one movement references a given entry.
type Movement struct {
	MovementID    string          `json:"movementID"` // Primary Key (UUID)
	CompanyID     string          `json:"companyID"`  // FK -> companies.company_id (NON-NULL)
	CashBoxID     string          `json:"cashBoxID"`  // FK -> cash_boxes (NON-NULL, delete protected)
	CategoryID    *string         `json:"categoryID"` // Optional classification, cleared if the category goes away
	OriginEntryID *string         `json:"originEntryID"`
	MovementDate  time.Time       `json:"movementDate"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"` // Sign-normalized per Kind
	Kind          MovementKind    `json:"kind"`
	AuditFields
}

// IsSettlement reports whether the movement was created by settling a
// scheduled entry.
func (m Movement) IsSettlement() bool {
	return m.OriginEntryID != nil && *m.OriginEntryID != ""
}
