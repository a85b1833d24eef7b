package repositories

import (
	"context"
	"time"

	"github.com/Namer-kimhyojin/Budget-sub000/internal/core/domain"
)

// NodePatch carries the mutable node fields for a partial update. Nil fields
// are left untouched; an explicitly empty ParentNodeID detaches the node to
// root.
type NodePatch struct {
	Name         *string
	Description  *string
	ParentNodeID *string
	Level        *int
	SortOrder    *int

	LastUpdatedAt time.Time
	LastUpdatedBy string
}

// NodeReader defines read operations for hierarchy nodes.
type NodeReader interface {
	// FindNodeByID retrieves a specific node by its unique identifier.
	FindNodeByID(ctx context.Context, nodeID string) (*domain.Node, error)

	// ListNodes retrieves every node of a family and category, ordered by
	// level then sort order. Pass an empty category to span the whole family.
	ListNodes(ctx context.Context, family domain.NodeFamily, category domain.Category) ([]domain.Node, error)

	// ListSiblings retrieves the nodes sharing a parent within a family and
	// category, ordered by sort order. An empty parentNodeID selects roots.
	ListSiblings(ctx context.Context, family domain.NodeFamily, category domain.Category, parentNodeID string) ([]domain.Node, error)
}

// NodeWriter defines write operations for hierarchy nodes.
type NodeWriter interface {
	// SaveNode persists a new node.
	SaveNode(ctx context.Context, node domain.Node) error

	// PatchNode applies a partial update to an existing node.
	PatchNode(ctx context.Context, nodeID string, patch NodePatch) error

	// DeleteNodes removes the given nodes in one atomic call.
	DeleteNodes(ctx context.Context, nodeIDs []string) error

	// ReorderSiblings persists a full sibling ordering in one atomic call.
	// orderedNodeIDs is the complete permutation of one sibling group.
	ReorderSiblings(ctx context.Context, orderedNodeIDs []string, updatedBy string, now time.Time) error
}

// NodeRepositoryFacade combines all node repository interfaces for clients
// that need full access.
type NodeRepositoryFacade interface {
	NodeReader
	NodeWriter
}
