package models

import (
	"github.com/shopspring/decimal"
)

// CashBox represents a store of funds (till, bank account) within a company.
type CashBox struct {
	CashBoxID      string          `db:"cash_box_id"`
	CompanyID      string          `db:"company_id"`
	Name           string          `db:"name"`
	OpeningBalance decimal.Decimal `db:"opening_balance"`
	AuditFields
}
