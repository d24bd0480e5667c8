package models

// CategoryKind defines whether a category classifies money coming in or
// going out.
type CategoryKind string

const (
	KindRevenue CategoryKind = "REVENUE"
	KindExpense CategoryKind = "EXPENSE"
)

// Category represents a chart-of-accounts entry scoped to a company.
type Category struct {
	CategoryID  string       `db:"category_id"`
	CompanyID   string       `db:"company_id"`
	Name        string       `db:"name"`
	Kind        CategoryKind `db:"kind"`
	Code        string       `db:"code"`
	AuditFields              // Embed common audit fields
}
