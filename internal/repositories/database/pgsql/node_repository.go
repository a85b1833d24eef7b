package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Namer-kimhyojin/Budget-sub000/internal/apperrors"
	"github.com/Namer-kimhyojin/Budget-sub000/internal/core/domain"
	portsrepo "github.com/Namer-kimhyojin/Budget-sub000/internal/core/ports/repositories"
	"github.com/Namer-kimhyojin/Budget-sub000/internal/models"
	"github.com/Namer-kimhyojin/Budget-sub000/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxNodeRepository struct {
	BaseRepository
}

// newPgxNodeRepository creates a new repository for hierarchy node data.
func newPgxNodeRepository(pool *pgxpool.Pool) *PgxNodeRepository {
	return &PgxNodeRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxNodeRepository implements portsrepo.NodeRepositoryFacade
var _ portsrepo.NodeRepositoryFacade = (*PgxNodeRepository)(nil)

const nodeColumns = `node_id, family, category, code, name, description, level, parent_node_id, sort_order, created_at, created_by, last_updated_at, last_updated_by`

func scanNode(row pgx.Row) (*models.Node, error) {
	var m models.Node
	var description, parentID sql.NullString
	err := row.Scan(
		&m.NodeID, &m.Family, &m.Category, &m.Code, &m.Name, &description,
		&m.Level, &parentID, &m.SortOrder,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	m.Description = description.String
	m.ParentNodeID = parentID.String
	return &m, nil
}

// SaveNode inserts a new node.
func (r *PgxNodeRepository) SaveNode(ctx context.Context, node domain.Node) error {
	m := mapping.ToModelNode(node)

	query := `
		INSERT INTO nodes (` + nodeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	// Use sql.NullString for potentially NULL parent_node_id
	var parentID sql.NullString
	if m.ParentNodeID != "" {
		parentID = sql.NullString{String: m.ParentNodeID, Valid: true}
	}

	_, err := r.Pool.Exec(ctx, query,
		m.NodeID, m.Family, m.Category, m.Code, m.Name, m.Description,
		m.Level, parentID, m.SortOrder,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: node with code %s already exists in family %s", apperrors.ErrDuplicate, m.Code, m.Family)
		}
		return fmt.Errorf("failed to save node %s: %w", m.NodeID, err)
	}
	return nil
}

// FindNodeByID retrieves a node by its primary key.
func (r *PgxNodeRepository) FindNodeByID(ctx context.Context, nodeID string) (*domain.Node, error) {
	query := `SELECT ` + nodeColumns + ` FROM nodes WHERE node_id = $1;`
	m, err := scanNode(r.Pool.QueryRow(ctx, query, nodeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: node %s", apperrors.ErrNotFound, nodeID)
		}
		return nil, fmt.Errorf("failed to find node %s: %w", nodeID, err)
	}
	node := mapping.ToDomainNode(*m)
	return &node, nil
}

// ListNodes retrieves all nodes of a family, optionally restricted to a
// category, ordered by level then sort order so parents precede children and
// siblings arrive in display order.
func (r *PgxNodeRepository) ListNodes(ctx context.Context, family domain.NodeFamily, category domain.Category) ([]domain.Node, error) {
	query := `SELECT ` + nodeColumns + ` FROM nodes WHERE family = $1`
	args := []any{string(family)}
	if category != "" {
		query += ` AND category = $2`
		args = append(args, string(category))
	}
	query += ` ORDER BY level, sort_order, code;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list nodes: %w", err)
	}
	defer rows.Close()

	var nodes []domain.Node
	for rows.Next() {
		m, err := scanNode(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan node row: %w", err)
		}
		nodes = append(nodes, mapping.ToDomainNode(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating node rows: %w", err)
	}
	return nodes, nil
}

// ListSiblings retrieves one sibling group ordered by sort order.
func (r *PgxNodeRepository) ListSiblings(ctx context.Context, family domain.NodeFamily, category domain.Category, parentNodeID string) ([]domain.Node, error) {
	query := `SELECT ` + nodeColumns + ` FROM nodes WHERE family = $1 AND category = $2 AND `
	args := []any{string(family), string(category)}
	if parentNodeID == "" {
		query += `parent_node_id IS NULL`
	} else {
		query += `parent_node_id = $3`
		args = append(args, parentNodeID)
	}
	query += ` ORDER BY sort_order, code;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list siblings: %w", err)
	}
	defer rows.Close()

	var nodes []domain.Node
	for rows.Next() {
		m, err := scanNode(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sibling row: %w", err)
		}
		nodes = append(nodes, mapping.ToDomainNode(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sibling rows: %w", err)
	}
	return nodes, nil
}

// PatchNode applies a partial update. Only the fields set in the patch are
// written; an empty ParentNodeID pointer value clears the link to NULL.
func (r *PgxNodeRepository) PatchNode(ctx context.Context, nodeID string, patch portsrepo.NodePatch) error {
	sets := []string{"last_updated_at = $1", "last_updated_by = $2"}
	args := []any{patch.LastUpdatedAt, patch.LastUpdatedBy}

	appendSet := func(col string, val any) {
		args = append(args, val)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if patch.Name != nil {
		appendSet("name", *patch.Name)
	}
	if patch.Description != nil {
		appendSet("description", *patch.Description)
	}
	if patch.ParentNodeID != nil {
		if *patch.ParentNodeID == "" {
			appendSet("parent_node_id", sql.NullString{})
		} else {
			appendSet("parent_node_id", *patch.ParentNodeID)
		}
	}
	if patch.Level != nil {
		appendSet("level", *patch.Level)
	}
	if patch.SortOrder != nil {
		appendSet("sort_order", *patch.SortOrder)
	}

	args = append(args, nodeID)
	query := fmt.Sprintf("UPDATE nodes SET %s WHERE node_id = $%d;", strings.Join(sets, ", "), len(args))

	tag, err := r.Pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to patch node %s: %w", nodeID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: node %s", apperrors.ErrNotFound, nodeID)
	}
	return nil
}

// DeleteNodes removes the given nodes in one transaction, children before
// parents so the self-referencing foreign key never trips.
func (r *PgxNodeRepository) DeleteNodes(ctx context.Context, nodeIDs []string) error {
	if len(nodeIDs) == 0 {
		return nil
	}
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	// nodeIDs arrive in preorder; delete in reverse.
	for i := len(nodeIDs) - 1; i >= 0; i-- {
		if _, err := tx.Exec(ctx, `DELETE FROM nodes WHERE node_id = $1;`, nodeIDs[i]); err != nil {
			return fmt.Errorf("failed to delete node %s: %w", nodeIDs[i], err)
		}
	}
	return r.Commit(ctx, tx)
}

// ReorderSiblings persists a full sibling permutation in one transaction.
// The intermediate state is never visible to another reader.
func (r *PgxNodeRepository) ReorderSiblings(ctx context.Context, orderedNodeIDs []string, updatedBy string, now time.Time) error {
	if len(orderedNodeIDs) == 0 {
		return nil
	}
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	query := `UPDATE nodes SET sort_order = $1, last_updated_at = $2, last_updated_by = $3 WHERE node_id = $4;`
	for i, id := range orderedNodeIDs {
		tag, err := tx.Exec(ctx, query, i, now, updatedBy, id)
		if err != nil {
			return fmt.Errorf("failed to reorder node %s: %w", id, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: node %s", apperrors.ErrNotFound, id)
		}
	}
	return r.Commit(ctx, tx)
}
