package domain

import "github.com/shopspring/decimal"

// CashBox represents a money-holding account: a bank account or a physical
// cash drawer. Its opening balance seeds every running-balance computation.
type CashBox struct {
	CashBoxID      string          `json:"cashBoxID"` // Primary Key (UUID)
	CompanyID      string          `json:"companyID"` // FK -> companies.company_id (NON-NULL)
	Name           string          `json:"name"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	AuditFields
}
