package mapping

import (
	"github.com/gestorsaas/gestor_financeiro_app/internal/core/domain"
	"github.com/gestorsaas/gestor_financeiro_app/internal/models"
)

// ToModelCashBox converts a domain CashBox to a model CashBox
func ToModelCashBox(d domain.CashBox) models.CashBox {
	return models.CashBox{
		CashBoxID:      d.CashBoxID,
		CompanyID:      d.CompanyID,
		Name:           d.Name,
		OpeningBalance: d.OpeningBalance,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCashBox converts a model CashBox to a domain CashBox
func ToDomainCashBox(m models.CashBox) domain.CashBox {
	return domain.CashBox{
		CashBoxID:      m.CashBoxID,
		CompanyID:      m.CompanyID,
		Name:           m.Name,
		OpeningBalance: m.OpeningBalance,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCashBoxSlice converts a slice of model CashBoxes to domain CashBoxes
func ToDomainCashBoxSlice(ms []models.CashBox) []domain.CashBox {
	ds := make([]domain.CashBox, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCashBox(m)
	}
	return ds
}
