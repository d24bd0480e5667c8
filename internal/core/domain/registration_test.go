package domain_test

import (
	"testing"

	"github.com/gestorsaas/gestor_financeiro_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestRegistrationRole_Capabilities(t *testing.T) {
	tests := []struct {
		name         string
		role         domain.RegistrationRole
		wantCustomer bool
		wantSupplier bool
	}{
		{name: "customer only", role: domain.RoleCustomer, wantCustomer: true, wantSupplier: false},
		{name: "supplier only", role: domain.RoleSupplier, wantCustomer: false, wantSupplier: true},
		{name: "both", role: domain.RoleBoth, wantCustomer: true, wantSupplier: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCustomer, tt.role.CanBeCustomer())
			assert.Equal(t, tt.wantSupplier, tt.role.CanBeSupplier())
		})
	}
}

func TestRegistrationRole_Allows(t *testing.T) {
	// Receivables take customer-capable counterparties, payables take
	// supplier-capable ones.
	assert.True(t, domain.RoleCustomer.Allows(domain.KindRevenue))
	assert.False(t, domain.RoleCustomer.Allows(domain.KindExpense))
	assert.False(t, domain.RoleSupplier.Allows(domain.KindRevenue))
	assert.True(t, domain.RoleSupplier.Allows(domain.KindExpense))
	assert.True(t, domain.RoleBoth.Allows(domain.KindRevenue))
	assert.True(t, domain.RoleBoth.Allows(domain.KindExpense))
}
