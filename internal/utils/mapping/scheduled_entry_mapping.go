package mapping

import (
	"github.com/gestorsaas/gestor_financeiro_app/internal/core/domain"
	"github.com/gestorsaas/gestor_financeiro_app/internal/models"
)

// ToModelScheduledEntry converts a domain ScheduledEntry to a model ScheduledEntry
func ToModelScheduledEntry(d domain.ScheduledEntry) models.ScheduledEntry {
	return models.ScheduledEntry{
		EntryID:        d.EntryID,
		CompanyID:      d.CompanyID,
		CategoryID:     d.CategoryID,
		RegistrationID: d.RegistrationID,
		Description:    d.Description,
		Amount:         d.Amount,
		DueDate:        d.DueDate,
		Status:         models.EntryStatus(d.Status),
		DocumentLabel:  d.DocumentLabel,
		Notes:          d.Notes,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainScheduledEntry converts a model ScheduledEntry to a domain ScheduledEntry
func ToDomainScheduledEntry(m models.ScheduledEntry) domain.ScheduledEntry {
	return domain.ScheduledEntry{
		EntryID:        m.EntryID,
		CompanyID:      m.CompanyID,
		CategoryID:     m.CategoryID,
		RegistrationID: m.RegistrationID,
		Description:    m.Description,
		Amount:         m.Amount,
		DueDate:        m.DueDate,
		Status:         domain.EntryStatus(m.Status),
		DocumentLabel:  m.DocumentLabel,
		Notes:          m.Notes,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainScheduledEntrySlice converts a slice of model ScheduledEntries to domain ScheduledEntries
func ToDomainScheduledEntrySlice(ms []models.ScheduledEntry) []domain.ScheduledEntry {
	ds := make([]domain.ScheduledEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainScheduledEntry(m)
	}
	return ds
}
