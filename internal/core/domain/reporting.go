package domain

import (
	"github.com/shopspring/decimal"
)

// CashFlowStatement is the period view of a cash box (or of all boxes):
// movements in the interval plus the balance carried into and out of it.
type CashFlowStatement struct {
	Movements      []Movement      `json:"movements"`
	OpeningBalance decimal.Decimal `json:"openingBalance"` // "saldo anterior"
	PeriodTotal    decimal.Decimal `json:"periodTotal"`
	ClosingBalance decimal.Decimal `json:"closingBalance"` // "saldo final"
}

// PrintableStatement is the report form of the cash flow: movements split by
// side, ordered date ascending for printing.
type PrintableStatement struct {
	Credits        []Movement      `json:"credits"`
	Debits         []Movement      `json:"debits"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	TotalCredits   decimal.Decimal `json:"totalCredits"`
	TotalDebits    decimal.Decimal `json:"totalDebits"`
	PeriodResult   decimal.Decimal `json:"periodResult"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
}

// CategoryTotal is one line of an income statement: a category (or synthetic
// group) with the signed sum of its movements.
type CategoryTotal struct {
	Code  string          `json:"code"`
	Name  string          `json:"name"`
	Total decimal.Decimal `json:"total"`
}

// IncomeStatement is the DRE over a period: per-category subtotals split by
// movement side, with algebraic result (debit totals are negative).
type IncomeStatement struct {
	Revenues     []CategoryTotal `json:"revenues"`
	Expenses     []CategoryTotal `json:"expenses"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	Result       decimal.Decimal `json:"result"`
}

// IncomeStatementRow is the raw grouped aggregate the reporting repository
// returns: one category/side pair with its signed total.
type IncomeStatementRow struct {
	CategoryID string
	Code       string
	Name       string
	Kind       MovementKind
	Total      decimal.Decimal
}

// SyntheticGroupKey derives the top-level group key of a category code for
// the synthetic DRE: the segment before the first '.', or the first two
// characters when the code has no dot. Empty codes fall into "OTHER".
func SyntheticGroupKey(code string) string {
	if code == "" {
		return "OTHER"
	}
	for i := 0; i < len(code); i++ {
		if code[i] == '.' {
			return code[:i]
		}
	}
	if len(code) > 2 {
		return code[:2]
	}
	return code
}
