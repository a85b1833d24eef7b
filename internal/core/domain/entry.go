package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DetailLine is one costed line inside a budget entry. The entry's computed
// amount is the sum of price x quantity x frequency over its detail lines.
type DetailLine struct {
	DetailID      string          `json:"detailID"`      // Primary Key (UUID)
	EntryID       string          `json:"entryID"`       // FK -> BudgetEntry.entryID (Not Null)
	Description   string          `json:"description"`   // Nullable line label
	Price         decimal.Decimal `json:"price"`         // Unit price
	Quantity      decimal.Decimal `json:"quantity"`      // Units per occurrence
	Frequency     decimal.Decimal `json:"frequency"`     // Occurrences
	Unit          string          `json:"unit"`          // Label for quantity (e.g. "people")
	FrequencyUnit string          `json:"frequencyUnit"` // Label for frequency (e.g. "months")
	SortOrder     int             `json:"sortOrder"`
}

// Amount returns price x quantity x frequency for this line.
func (d DetailLine) Amount() decimal.Decimal {
	return d.Price.Mul(d.Quantity).Mul(d.Frequency)
}

// BudgetEntry is a flat financial record referencing a subject node. Entries
// are created and mutated by the ledger; the aggregation engine only reads
// them.
type BudgetEntry struct {
	EntryID        string          `json:"entryID"`        // Primary Key (UUID)
	SubjectID      string          `json:"subjectID"`      // FK -> Node.nodeID (subject family)
	OrgID          string          `json:"orgID"`          // FK -> Node.nodeID (organization family)
	ProjectID      string          `json:"projectID"`      // Nullable project reference
	FiscalYear     int             `json:"fiscalYear"`     // Budget year
	Round          int             `json:"round"`          // Supplemental revision number, 0 = original
	BaselineAmount decimal.Decimal `json:"baselineAmount"` // Prior-period amount, supplied by the caller
	Details        []DetailLine    `json:"details"`
	AuditFields
}

// ComputedAmount returns the product-sum of the entry's detail lines.
func (e BudgetEntry) ComputedAmount() decimal.Decimal {
	total := decimal.Zero
	for _, d := range e.Details {
		total = total.Add(d.Amount())
	}
	return total
}

// Validate performs basic structural checks on the entry.
func (e BudgetEntry) Validate() error {
	if e.SubjectID == "" {
		return fmt.Errorf("subject ID is required")
	}
	if e.OrgID == "" {
		return fmt.Errorf("organization ID is required")
	}
	if e.FiscalYear <= 0 {
		return fmt.Errorf("fiscal year must be positive")
	}
	for _, d := range e.Details {
		if d.Price.IsNegative() || d.Quantity.IsNegative() || d.Frequency.IsNegative() {
			return fmt.Errorf("detail line amounts must not be negative")
		}
	}
	return nil
}
