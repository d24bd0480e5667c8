package domain

import "time"

// RegistrationRole defines the capacities a registration can act in.
// A registration may be a customer, a supplier, or both; ledger operations
// test capability membership instead of comparing raw strings.
type RegistrationRole string

const (
	RoleCustomer RegistrationRole = "CUSTOMER"
	RoleSupplier RegistrationRole = "SUPPLIER"
	RoleBoth     RegistrationRole = "BOTH"
)

// CanBeCustomer reports whether the role allows acting as the counterparty
// of a receivable.
func (r RegistrationRole) CanBeCustomer() bool {
	return r == RoleCustomer || r == RoleBoth
}

// CanBeSupplier reports whether the role allows acting as the counterparty
// of a payable.
func (r RegistrationRole) CanBeSupplier() bool {
	return r == RoleSupplier || r == RoleBoth
}

// Allows reports whether the role is compatible with the given category
// kind: receivables need customer-capable counterparties, payables need
// supplier-capable ones.
func (r RegistrationRole) Allows(kind CategoryKind) bool {
	if kind == KindRevenue {
		return r.CanBeCustomer()
	}
	return r.CanBeSupplier()
}

// PersonType distinguishes individuals from legal entities.
type PersonType string

const (
	PersonIndividual PersonType = "INDIVIDUAL"
	PersonCompany    PersonType = "COMPANY"
)

// RegistrationStatus indicates whether a registration is selectable.
type RegistrationStatus string

const (
	RegistrationActive   RegistrationStatus = "ACTIVE"
	RegistrationInactive RegistrationStatus = "INACTIVE"
)

// Registration is a counterparty record (customer and/or supplier).
// (company_id, cpf_cnpj) is unique.
type Registration struct {
	RegistrationID string             `json:"registrationID"` // Primary Key (UUID)
	CompanyID      string             `json:"companyID"`      // FK -> companies.company_id (NON-NULL)
	LegalName      string             `json:"legalName"`      // Display name: legal entity name or full personal name
	Role           RegistrationRole   `json:"role"`
	PersonType     PersonType         `json:"personType"`
	CPFCNPJ        string             `json:"cpfCnpj"`
	Email          string             `json:"email"`
	Phone          string             `json:"phone"`
	City           string             `json:"city"`
	State          string             `json:"state"`
	BirthDate      *time.Time         `json:"birthDate"` // Birth or founding date
	Status         RegistrationStatus `json:"status"`
	Notes          string             `json:"notes"`
	AuditFields
}
