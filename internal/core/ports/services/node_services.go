package services

import (
	"context"

	"github.com/Namer-kimhyojin/Budget-sub000/internal/core/domain"
	"github.com/Namer-kimhyojin/Budget-sub000/internal/dto"
)

// NodeReaderSvc defines read operations for hierarchy nodes
type NodeReaderSvc interface {
	// GetNodeByID retrieves a specific node by its unique identifier.
	GetNodeByID(ctx context.Context, nodeID string) (*domain.Node, error)

	// ListNodes retrieves all nodes of a family, optionally restricted to a
	// category, ordered by level then sort order.
	ListNodes(ctx context.Context, family domain.NodeFamily, category domain.Category) ([]domain.Node, error)
}

// NodeWriterSvc defines lifecycle operations for hierarchy nodes
type NodeWriterSvc interface {
	// CreateNode persists a new root or child node, assigning its level,
	// code, and sort order.
	CreateNode(ctx context.Context, req dto.CreateNodeRequest, userID string) (*domain.Node, error)

	// RenameNode updates a node's display fields.
	RenameNode(ctx context.Context, nodeID string, req dto.UpdateNodeRequest, userID string) (*domain.Node, error)

	// DeleteNode removes a node and its whole subtree. Refused when budget
	// entries still reference any node in the subtree.
	DeleteNode(ctx context.Context, nodeID string, userID string) error
}

// NodeSvcFacade combines all node lifecycle interfaces
type NodeSvcFacade interface {
	NodeReaderSvc
	NodeWriterSvc
}

// RelocationSvcFacade moves nodes (with their subtrees) to new parents,
// recomputing levels and enforcing the depth bound.
type RelocationSvcFacade interface {
	// Relocate moves a node under newParentID; empty means "make root".
	Relocate(ctx context.Context, nodeID string, newParentID string, userID string) error

	// Promote relocates a node to its current grandparent.
	Promote(ctx context.Context, nodeID string, userID string) error

	// Demote relocates a node under its nearest preceding sibling.
	Demote(ctx context.Context, nodeID string, userID string) error
}
