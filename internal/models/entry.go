package models

import (
	"github.com/shopspring/decimal"
)

// BudgetEntry represents a budget entry row. Detail lines live in their own
// table and are attached when listing.
type BudgetEntry struct {
	EntryID        string          `db:"entry_id"`
	SubjectID      string          `db:"subject_id"`
	OrgID          string          `db:"org_id"`
	ProjectID      string          `db:"project_id"` // Nullable
	FiscalYear     int             `db:"fiscal_year"`
	Round          int             `db:"round"`
	BaselineAmount decimal.Decimal `db:"baseline_amount"`
	AuditFields
}

// DetailLine represents one costed line of a budget entry.
type DetailLine struct {
	DetailID      string          `db:"detail_id"`
	EntryID       string          `db:"entry_id"`
	Description   string          `db:"description"`
	Price         decimal.Decimal `db:"price"`
	Quantity      decimal.Decimal `db:"quantity"`
	Frequency     decimal.Decimal `db:"frequency"`
	Unit          string          `db:"unit"`
	FrequencyUnit string          `db:"frequency_unit"`
	SortOrder     int             `db:"sort_order"`
}
