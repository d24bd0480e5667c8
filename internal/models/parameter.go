package models

// SystemParameter represents a tenant-scoped configuration value.
type SystemParameter struct {
	ParameterID string `db:"parameter_id"`
	CompanyID   string `db:"company_id"`
	Key         string `db:"param_key"`
	Value       string `db:"param_value"`
	Description string `db:"description"`
	AuditFields
}
