package models

import "time"

// RegistrationRole says which side of the ledger a counterparty may sit on.
type RegistrationRole string

const (
	RoleCustomer RegistrationRole = "CUSTOMER"
	RoleSupplier RegistrationRole = "SUPPLIER"
	RoleBoth     RegistrationRole = "BOTH"
)

// PersonType distinguishes natural persons from legal entities.
type PersonType string

const (
	PersonIndividual PersonType = "INDIVIDUAL"
	PersonCompany    PersonType = "COMPANY"
)

// RegistrationStatus marks whether a registration is usable on new entries.
type RegistrationStatus string

const (
	RegistrationActive   RegistrationStatus = "ACTIVE"
	RegistrationInactive RegistrationStatus = "INACTIVE"
)

// Registration represents a customer/supplier directory entry.
// BirthDate uses a pointer for the nullable column.
type Registration struct {
	RegistrationID string             `db:"registration_id"`
	CompanyID      string             `db:"company_id"`
	LegalName      string             `db:"legal_name"`
	Role           RegistrationRole   `db:"role"`
	PersonType     PersonType         `db:"person_type"`
	CPFCNPJ        string             `db:"cpf_cnpj"`
	Email          string             `db:"email"`
	Phone          string             `db:"phone"`
	City           string             `db:"city"`
	State          string             `db:"state"`
	BirthDate      *time.Time         `db:"birth_date"`
	Status         RegistrationStatus `db:"status"`
	Notes          string             `db:"notes"`
	AuditFields
}
