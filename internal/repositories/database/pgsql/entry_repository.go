package pgsql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Namer-kimhyojin/Budget-sub000/internal/core/domain"
	portsrepo "github.com/Namer-kimhyojin/Budget-sub000/internal/core/ports/repositories"
	"github.com/Namer-kimhyojin/Budget-sub000/internal/models"
	"github.com/Namer-kimhyojin/Budget-sub000/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxEntryRepository struct {
	BaseRepository
}

// newPgxEntryRepository creates a new repository for budget entry data.
func newPgxEntryRepository(pool *pgxpool.Pool) *PgxEntryRepository {
	return &PgxEntryRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxEntryRepository implements portsrepo.EntryReader
var _ portsrepo.EntryReader = (*PgxEntryRepository)(nil)

// ListEntries retrieves the entries of a scope with their detail lines
// attached, ordered for stable aggregation output.
func (r *PgxEntryRepository) ListEntries(ctx context.Context, scope portsrepo.EntryScope) ([]domain.BudgetEntry, error) {
	query := `
		SELECT entry_id, subject_id, org_id, project_id, fiscal_year, round, baseline_amount,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM budget_entries
		WHERE org_id = $1 AND fiscal_year = $2 AND round = $3
		ORDER BY entry_id;
	`
	rows, err := r.Pool.Query(ctx, query, scope.OrgID, scope.FiscalYear, scope.Round)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	defer rows.Close()

	var entryModels []models.BudgetEntry
	for rows.Next() {
		var m models.BudgetEntry
		var projectID sql.NullString
		err := rows.Scan(
			&m.EntryID, &m.SubjectID, &m.OrgID, &projectID, &m.FiscalYear, &m.Round, &m.BaselineAmount,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry row: %w", err)
		}
		m.ProjectID = projectID.String
		entryModels = append(entryModels, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entry rows: %w", err)
	}
	if len(entryModels) == 0 {
		return nil, nil
	}

	detailsByEntry, err := r.listDetails(ctx, entryModels)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.BudgetEntry, 0, len(entryModels))
	for _, m := range entryModels {
		entries = append(entries, mapping.ToDomainEntry(m, detailsByEntry[m.EntryID]))
	}
	return entries, nil
}

func (r *PgxEntryRepository) listDetails(ctx context.Context, entries []models.BudgetEntry) (map[string][]models.DetailLine, error) {
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.EntryID)
	}

	query := `
		SELECT detail_id, entry_id, description, price, quantity, frequency, unit, frequency_unit, sort_order
		FROM entry_details
		WHERE entry_id = ANY($1)
		ORDER BY entry_id, sort_order;
	`
	rows, err := r.Pool.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to list entry details: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]models.DetailLine)
	for rows.Next() {
		var d models.DetailLine
		var description sql.NullString
		err := rows.Scan(&d.DetailID, &d.EntryID, &description, &d.Price, &d.Quantity, &d.Frequency, &d.Unit, &d.FrequencyUnit, &d.SortOrder)
		if err != nil {
			return nil, fmt.Errorf("failed to scan detail row: %w", err)
		}
		d.Description = description.String
		out[d.EntryID] = append(out[d.EntryID], d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating detail rows: %w", err)
	}
	return out, nil
}

// CountEntriesForSubjects returns how many entries reference any of the
// given subject nodes.
func (r *PgxEntryRepository) CountEntriesForSubjects(ctx context.Context, subjectIDs []string) (int64, error) {
	if len(subjectIDs) == 0 {
		return 0, nil
	}
	var count int64
	query := `SELECT COUNT(*) FROM budget_entries WHERE subject_id = ANY($1);`
	if err := r.Pool.QueryRow(ctx, query, subjectIDs).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count entries for subjects: %w", err)
	}
	return count, nil
}
