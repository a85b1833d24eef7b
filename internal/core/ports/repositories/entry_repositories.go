package repositories

import (
	"context"

	"github.com/Namer-kimhyojin/Budget-sub000/internal/core/domain"
)

// EntryScope narrows an entry listing to one aggregation context.
type EntryScope struct {
	OrgID      string
	FiscalYear int
	Round      int
}

// EntryReader defines read operations for budget entries. The aggregation
// engine only ever reads entries; their lifecycle belongs to the ledger.
type EntryReader interface {
	// ListEntries retrieves the entries (with detail lines) for a scope.
	ListEntries(ctx context.Context, scope EntryScope) ([]domain.BudgetEntry, error)

	// CountEntriesForSubjects returns how many entries reference any of the
	// given subject nodes. Used to refuse subtree deletion.
	CountEntriesForSubjects(ctx context.Context, subjectIDs []string) (int64, error)
}
