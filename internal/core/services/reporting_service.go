package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/gestorsaas/gestor_financeiro_app/internal/apperrors"
	"github.com/gestorsaas/gestor_financeiro_app/internal/core/domain"
	portsrepo "github.com/gestorsaas/gestor_financeiro_app/internal/core/ports/repositories"
	portssvc "github.com/gestorsaas/gestor_financeiro_app/internal/core/ports/services"
	"github.com/gestorsaas/gestor_financeiro_app/internal/dto"
	"github.com/shopspring/decimal"
)

type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	cashBoxRepo   portsrepo.CashBoxReader
	categoryRepo  portsrepo.CategoryReader
	parameterSvc  portssvc.ParameterSvcFacade
}

// NewReportingService creates the reporting service. The category reader
// resolves display names for synthetic income statement groups; the parameter
// service resolves the default cash box.
func NewReportingService(
	reportingRepo portsrepo.ReportingRepository,
	cashBoxRepo portsrepo.CashBoxReader,
	categoryRepo portsrepo.CategoryReader,
	parameterSvc portssvc.ParameterSvcFacade,
) portssvc.ReportingService {
	return &reportingService{
		reportingRepo: reportingRepo,
		cashBoxRepo:   cashBoxRepo,
		categoryRepo:  categoryRepo,
		parameterSvc:  parameterSvc,
	}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// resolveSelection turns the three-way cash box choice into a concrete filter:
// a named box is validated and used, an explicit all-boxes request stays nil,
// and an absent choice falls back to the default cash box parameter, which may
// itself resolve to nil (all boxes).
func (s *reportingService) resolveSelection(ctx context.Context, companyID string, sel dto.CashBoxSelection) (*string, error) {
	if sel.CashBoxID != nil && *sel.CashBoxID != "" {
		if _, err := s.cashBoxRepo.FindCashBoxByID(ctx, companyID, *sel.CashBoxID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: cash box %s does not exist", apperrors.ErrValidation, *sel.CashBoxID)
			}
			return nil, err
		}
		return sel.CashBoxID, nil
	}
	if sel.AllBoxes {
		return nil, nil
	}
	return s.parameterSvc.ResolveDefaultCashBoxID(ctx, companyID)
}

// openingBalance computes the balance carried into the period: cash box
// opening balances plus all movements dated before the start. A category
// filter zeroes the opening balances, since those are not attributable to any
// category, and keeps only the prior movements of that category.
func (s *reportingService) openingBalance(ctx context.Context, companyID string, cashBoxID *string, categoryID *string, from time.Time) (decimal.Decimal, error) {
	opening := decimal.Zero
	if categoryID == nil {
		var err error
		opening, err = s.reportingRepo.SumOpeningBalances(ctx, companyID, cashBoxID)
		if err != nil {
			return decimal.Zero, err
		}
	}

	prior, err := s.reportingRepo.SumMovementsBefore(ctx, companyID, cashBoxID, categoryID, from)
	if err != nil {
		return decimal.Zero, err
	}
	return opening.Add(prior), nil
}

// CashFlow generates the period statement of the selected cash box (or all
// boxes) with movements newest first. Returns the statement together with the
// resolved cash box filter.
func (s *reportingService) CashFlow(ctx context.Context, companyID string, params dto.CashFlowParams) (*domain.CashFlowStatement, *string, error) {
	statement, cashBoxID, err := s.periodStatement(ctx, companyID, params)
	if err != nil {
		return nil, nil, err
	}
	slices.Reverse(statement.Movements)
	return statement, cashBoxID, nil
}

// periodStatement computes the period statement with movements in date
// ascending order, the order the printable report keeps.
func (s *reportingService) periodStatement(ctx context.Context, companyID string, params dto.CashFlowParams) (*domain.CashFlowStatement, *string, error) {
	cashBoxID, err := s.resolveSelection(ctx, companyID, params.Selection)
	if err != nil {
		return nil, nil, err
	}

	opening, err := s.openingBalance(ctx, companyID, cashBoxID, params.CategoryID, params.From)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute opening balance")
		return nil, nil, err
	}

	movements, err := s.reportingRepo.ListMovementsBetween(ctx, companyID, cashBoxID, params.CategoryID, params.From, params.To)
	if err != nil {
		s.LogError(ctx, err, "Failed to list period movements")
		return nil, nil, err
	}

	period := decimal.Zero
	for _, m := range movements {
		period = period.Add(m.Amount)
	}

	statement := &domain.CashFlowStatement{
		Movements:      movements,
		OpeningBalance: opening,
		PeriodTotal:    period,
		ClosingBalance: opening.Add(period),
	}

	s.LogDebug(ctx, "Cash flow statement generated",
		slog.Int("movements", len(movements)),
		slog.String("closing_balance", statement.ClosingBalance.StringFixed(2)))
	return statement, cashBoxID, nil
}

// PrintableStatement generates the printable form of the cash flow: the same
// period computation with movements split by side.
func (s *reportingService) PrintableStatement(ctx context.Context, companyID string, params dto.CashFlowParams) (*domain.PrintableStatement, *string, error) {
	flow, cashBoxID, err := s.periodStatement(ctx, companyID, params)
	if err != nil {
		return nil, nil, err
	}

	credits := []domain.Movement{}
	debits := []domain.Movement{}
	totalCredits := decimal.Zero
	totalDebits := decimal.Zero
	for _, m := range flow.Movements {
		if m.Kind == domain.Credit {
			credits = append(credits, m)
			totalCredits = totalCredits.Add(m.Amount)
		} else {
			debits = append(debits, m)
			totalDebits = totalDebits.Add(m.Amount)
		}
	}

	statement := &domain.PrintableStatement{
		Credits:        credits,
		Debits:         debits,
		OpeningBalance: flow.OpeningBalance,
		TotalCredits:   totalCredits,
		TotalDebits:    totalDebits,
		PeriodResult:   totalCredits.Add(totalDebits),
		ClosingBalance: flow.ClosingBalance,
	}
	return statement, cashBoxID, nil
}

// IncomeStatement generates the income statement for a period. Detailed mode
// lists every category; synthetic mode collapses categories into top-level
// code groups, naming each group after the category whose code equals the
// group key when one exists.
func (s *reportingService) IncomeStatement(ctx context.Context, companyID string, from, to time.Time, synthetic bool) (*domain.IncomeStatement, error) {
	rows, err := s.reportingRepo.GetIncomeStatementRows(ctx, companyID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to load income statement rows")
		return nil, err
	}

	var revenues, expenses []domain.CategoryTotal
	if synthetic {
		revenues = s.groupSynthetic(ctx, companyID, rows, domain.Credit)
		expenses = s.groupSynthetic(ctx, companyID, rows, domain.Debit)
	} else {
		revenues = selectDetailed(rows, domain.Credit)
		expenses = selectDetailed(rows, domain.Debit)
	}

	totalRevenue := decimal.Zero
	for _, t := range revenues {
		totalRevenue = totalRevenue.Add(t.Total)
	}
	totalExpense := decimal.Zero
	for _, t := range expenses {
		totalExpense = totalExpense.Add(t.Total)
	}

	statement := &domain.IncomeStatement{
		Revenues:     revenues,
		Expenses:     expenses,
		TotalRevenue: totalRevenue,
		TotalExpense: totalExpense,
		Result:       totalRevenue.Add(totalExpense),
	}

	s.LogDebug(ctx, "Income statement generated",
		slog.Bool("synthetic", synthetic),
		slog.String("result", statement.Result.StringFixed(2)))
	return statement, nil
}

// selectDetailed keeps the rows of one movement side as statement lines.
// Only categorized movements belong to the income statement.
func selectDetailed(rows []domain.IncomeStatementRow, kind domain.MovementKind) []domain.CategoryTotal {
	lines := []domain.CategoryTotal{}
	for _, row := range rows {
		if row.Kind != kind || row.CategoryID == "" {
			continue
		}
		lines = append(lines, domain.CategoryTotal{Code: row.Code, Name: row.Name, Total: row.Total})
	}
	return lines
}

// groupSynthetic collapses one side's rows into top-level code groups,
// preserving the code ordering of the underlying rows.
func (s *reportingService) groupSynthetic(ctx context.Context, companyID string, rows []domain.IncomeStatementRow, kind domain.MovementKind) []domain.CategoryTotal {
	totals := map[string]decimal.Decimal{}
	order := []string{}
	for _, row := range rows {
		if row.Kind != kind || row.CategoryID == "" {
			continue
		}
		key := domain.SyntheticGroupKey(row.Code)
		if _, seen := totals[key]; !seen {
			order = append(order, key)
		}
		totals[key] = totals[key].Add(row.Total)
	}

	lines := make([]domain.CategoryTotal, 0, len(order))
	for _, key := range order {
		lines = append(lines, domain.CategoryTotal{
			Code:  key,
			Name:  s.syntheticGroupName(ctx, companyID, key),
			Total: totals[key],
		})
	}
	return lines
}

// syntheticGroupName names a group after the category whose code equals the
// group key, falling back to a generic label.
func (s *reportingService) syntheticGroupName(ctx context.Context, companyID string, key string) string {
	if key == "OTHER" {
		return "OTHER"
	}
	category, err := s.categoryRepo.FindCategoryByCode(ctx, companyID, key)
	if err == nil {
		return category.Name
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogDebug(ctx, "Failed to resolve synthetic group name", slog.String("key", key), slog.String("error", err.Error()))
	}
	return "GROUP " + key
}
