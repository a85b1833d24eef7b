package mapping

import (
	"github.com/Namer-kimhyojin/Budget-sub000/internal/core/domain"
	"github.com/Namer-kimhyojin/Budget-sub000/internal/models"
)

// ToDomainEntry converts a model BudgetEntry plus its detail rows to a
// domain BudgetEntry
func ToDomainEntry(m models.BudgetEntry, details []models.DetailLine) domain.BudgetEntry {
	entry := domain.BudgetEntry{
		EntryID:        m.EntryID,
		SubjectID:      m.SubjectID,
		OrgID:          m.OrgID,
		ProjectID:      m.ProjectID,
		FiscalYear:     m.FiscalYear,
		Round:          m.Round,
		BaselineAmount: m.BaselineAmount,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
	for _, d := range details {
		entry.Details = append(entry.Details, ToDomainDetailLine(d))
	}
	return entry
}

// ToDomainDetailLine converts a model DetailLine to a domain DetailLine
func ToDomainDetailLine(m models.DetailLine) domain.DetailLine {
	return domain.DetailLine{
		DetailID:      m.DetailID,
		EntryID:       m.EntryID,
		Description:   m.Description,
		Price:         m.Price,
		Quantity:      m.Quantity,
		Frequency:     m.Frequency,
		Unit:          m.Unit,
		FrequencyUnit: m.FrequencyUnit,
		SortOrder:     m.SortOrder,
	}
}
