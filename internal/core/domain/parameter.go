package domain

// Well-known system parameter keys.
const (
	ParamDefaultCashBoxID = "DEFAULT_CASH_BOX_ID"
)

// SystemParameter is a tenant-scoped configuration value.
// (company_id, key) is unique.
type SystemParameter struct {
	ParameterID string `json:"parameterID"` // Primary Key (UUID)
	CompanyID   string `json:"companyID"`   // FK -> companies.company_id (NON-NULL)
	Key         string `json:"key"`
	Value       string `json:"value"`
	Description string `json:"description"`
	AuditFields
}
