package mapping

import (
	"github.com/gestorsaas/gestor_financeiro_app/internal/core/domain"
	"github.com/gestorsaas/gestor_financeiro_app/internal/models"
)

// ToModelMovement converts a domain Movement to a model Movement
func ToModelMovement(d domain.Movement) models.Movement {
	return models.Movement{
		MovementID:    d.MovementID,
		CompanyID:     d.CompanyID,
		CashBoxID:     d.CashBoxID,
		CategoryID:    d.CategoryID,
		OriginEntryID: d.OriginEntryID,
		MovementDate:  d.MovementDate,
		Description:   d.Description,
		Amount:        d.Amount,
		Kind:          models.MovementKind(d.Kind),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainMovement converts a model Movement to a domain Movement
func ToDomainMovement(m models.Movement) domain.Movement {
	return domain.Movement{
		MovementID:    m.MovementID,
		CompanyID:     m.CompanyID,
		CashBoxID:     m.CashBoxID,
		CategoryID:    m.CategoryID,
		OriginEntryID: m.OriginEntryID,
		MovementDate:  m.MovementDate,
		Description:   m.Description,
		Amount:        m.Amount,
		Kind:          domain.MovementKind(m.Kind),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainMovementSlice converts a slice of model Movements to domain Movements
func ToDomainMovementSlice(ms []models.Movement) []domain.Movement {
	ds := make([]domain.Movement, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMovement(m)
	}
	return ds
}
