package domain

// CategoryKind defines whether a chart of accounts category classifies
// revenue or expense.
type CategoryKind string

const (
	KindRevenue CategoryKind = "REVENUE"
	KindExpense CategoryKind = "EXPENSE"
)

// Category is a chart of accounts classification node. Scheduled entries and
// cash movements reference it for reporting. The code is hierarchical by
// convention (e.g. "1.01"); (company_id, code) is unique when code is set.
type Category struct {
	CategoryID  string       `json:"categoryID"` // Primary Key (UUID)
	CompanyID   string       `json:"companyID"`  // FK -> companies.company_id (NON-NULL)
	Name        string       `json:"name"`
	Kind        CategoryKind `json:"kind"`
	Code        string       `json:"code"` // Optional hierarchical code, e.g. "1.01"
	AuditFields
}

// MovementKindFor maps the category classification to the movement side a
// settlement must post: revenue settles as a credit, expense as a debit.
func (k CategoryKind) MovementKindFor() MovementKind {
	if k == KindRevenue {
		return Credit
	}
	return Debit
}
