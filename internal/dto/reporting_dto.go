package dto

import (
	"time"

	"github.com/gestorsaas/gestor_financeiro_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CashBoxSelection carries the three-way cash box choice of a report request:
// a named box, explicitly every box, or nothing, in which case the company's
// default cash box parameter decides.
type CashBoxSelection struct {
	// CashBoxID is the explicitly named box, nil when none was named.
	CashBoxID *string
	// AllBoxes is true when the caller explicitly asked for every box,
	// suppressing the default cash box fallback.
	AllBoxes bool
}

// CashFlowParams defines the inputs of a period cash flow statement.
type CashFlowParams struct {
	Selection  CashBoxSelection
	CategoryID *string
	From       time.Time
	To         time.Time
}

// CashFlowResponse defines the data returned for a cash flow statement.
type CashFlowResponse struct {
	CashBoxID      *string            `json:"cashBoxID,omitempty"`
	From           time.Time          `json:"from"`
	To             time.Time          `json:"to"`
	OpeningBalance decimal.Decimal    `json:"openingBalance"`
	Movements      []MovementResponse `json:"movements"`
	PeriodTotal    decimal.Decimal    `json:"periodTotal"`
	ClosingBalance decimal.Decimal    `json:"closingBalance"`
}

// PrintableStatementResponse defines the report form of the cash flow, with
// movements split by side for printing.
type PrintableStatementResponse struct {
	CashBoxID      *string            `json:"cashBoxID,omitempty"`
	From           time.Time          `json:"from"`
	To             time.Time          `json:"to"`
	OpeningBalance decimal.Decimal    `json:"openingBalance"`
	Credits        []MovementResponse `json:"credits"`
	Debits         []MovementResponse `json:"debits"`
	TotalCredits   decimal.Decimal    `json:"totalCredits"`
	TotalDebits    decimal.Decimal    `json:"totalDebits"`
	PeriodResult   decimal.Decimal    `json:"periodResult"`
	ClosingBalance decimal.Decimal    `json:"closingBalance"`
}

// CategoryTotalResponse is one line of an income statement.
type CategoryTotalResponse struct {
	Code  string          `json:"code"`
	Name  string          `json:"name"`
	Total decimal.Decimal `json:"total"`
}

// IncomeStatementResponse defines the data returned for an income statement.
type IncomeStatementResponse struct {
	From         time.Time               `json:"from"`
	To           time.Time               `json:"to"`
	Synthetic    bool                    `json:"synthetic"`
	Revenues     []CategoryTotalResponse `json:"revenues"`
	Expenses     []CategoryTotalResponse `json:"expenses"`
	TotalRevenue decimal.Decimal         `json:"totalRevenue"`
	TotalExpense decimal.Decimal         `json:"totalExpense"`
	Result       decimal.Decimal         `json:"result"`
}

// ToCashFlowResponse converts a domain.CashFlowStatement to its response DTO.
func ToCashFlowResponse(s *domain.CashFlowStatement, cashBoxID *string, from, to time.Time) CashFlowResponse {
	return CashFlowResponse{
		CashBoxID:      cashBoxID,
		From:           from,
		To:             to,
		OpeningBalance: s.OpeningBalance,
		Movements:      ToListMovementResponse(s.Movements),
		PeriodTotal:    s.PeriodTotal,
		ClosingBalance: s.ClosingBalance,
	}
}

// ToPrintableStatementResponse converts a domain.PrintableStatement to its response DTO.
func ToPrintableStatementResponse(s *domain.PrintableStatement, cashBoxID *string, from, to time.Time) PrintableStatementResponse {
	return PrintableStatementResponse{
		CashBoxID:      cashBoxID,
		From:           from,
		To:             to,
		OpeningBalance: s.OpeningBalance,
		Credits:        ToListMovementResponse(s.Credits),
		Debits:         ToListMovementResponse(s.Debits),
		TotalCredits:   s.TotalCredits,
		TotalDebits:    s.TotalDebits,
		PeriodResult:   s.PeriodResult,
		ClosingBalance: s.ClosingBalance,
	}
}

// ToIncomeStatementResponse converts a domain.IncomeStatement to its response DTO.
func ToIncomeStatementResponse(s *domain.IncomeStatement, synthetic bool, from, to time.Time) IncomeStatementResponse {
	toLines := func(ts []domain.CategoryTotal) []CategoryTotalResponse {
		lines := make([]CategoryTotalResponse, len(ts))
		for i, t := range ts {
			lines[i] = CategoryTotalResponse{Code: t.Code, Name: t.Name, Total: t.Total}
		}
		return lines
	}
	return IncomeStatementResponse{
		From:         from,
		To:           to,
		Synthetic:    synthetic,
		Revenues:     toLines(s.Revenues),
		Expenses:     toLines(s.Expenses),
		TotalRevenue: s.TotalRevenue,
		TotalExpense: s.TotalExpense,
		Result:       s.Result,
	}
}
