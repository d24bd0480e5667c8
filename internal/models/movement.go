package models

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

// Movement represents a realized cash posting against a cash box. Amount is
// stored sign-normalized per Kind.
type Movement struct {
	MovementID    string          `db:"movement_id"`
	CompanyID     string          `db:"company_id"`
	CashBoxID     string          `db:"cash_box_id"`
	CategoryID    *string         `db:"category_id"`
	OriginEntryID *string         `db:"origin_entry_id"`
	MovementDate  time.Time       `db:"movement_date"`
	Description   string          `db:"description"`
	Amount        decimal.Decimal `db:"amount"`
	Kind          MovementKind    `db:"kind"`
	AuditFields
}
