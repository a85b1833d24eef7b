package services

import (
	"context"

	"github.com/Namer-kimhyojin/Budget-sub000/internal/core/domain"
	"github.com/Namer-kimhyojin/Budget-sub000/internal/utils/hierarchy"
)

// TreeSvcFacade exposes the read-only tree projections built from the
// persisted flat node list.
type TreeSvcFacade interface {
	// GetTree returns the nested forest of a family and category, pruned by
	// an optional case-insensitive search over code and name.
	GetTree(ctx context.Context, family domain.NodeFamily, category domain.Category, search string) ([]*hierarchy.TreeNode, error)

	// GetVisibleList returns the expansion-aware depth-first flattening used
	// to map UI positions to sibling indices.
	GetVisibleList(ctx context.Context, family domain.NodeFamily, category domain.Category, expandedIDs []string) ([]hierarchy.VisibleNode, error)
}

// ReorderSvcFacade computes and persists a new sibling order from a visible
// list drag gesture.
type ReorderSvcFacade interface {
	// Reorder resolves the destination of a move gesture. Same-parent moves
	// are persisted as one atomic sibling permutation; cross-parent moves
	// are returned unapplied for the caller to route to relocation.
	Reorder(ctx context.Context, visible []hierarchy.VisibleNode, sourceIndex, destIndex int, userID string) (*hierarchy.ReorderPlan, error)
}
