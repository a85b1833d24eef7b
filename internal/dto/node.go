package dto

import (
	"time"

	"github.com/Namer-kimhyojin/Budget-sub000/internal/core/domain"
)

// CreateNodeRequest defines the data needed to create a new hierarchy node.
// An empty ParentNodeID creates a level-1 root.
type CreateNodeRequest struct {
	Family       domain.NodeFamily `json:"family" binding:"required,oneof=SUBJECT ORGANIZATION"`
	Category     domain.Category   `json:"category" binding:"required,nodecategory"`
	ParentNodeID *string           `json:"parentNodeID"` // Optional, use pointer for nullability
	Code         string            `json:"code"`         // Optional, generated when empty
	Name         string            `json:"name" binding:"required"`
	Description  string            `json:"description"` // Optional
}

// UpdateNodeRequest defines the data allowed for renaming a node.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateNodeRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// RelocateNodeRequest moves a node (and its subtree) under a new parent.
// An empty NewParentNodeID makes the node a root.
type RelocateNodeRequest struct {
	NewParentNodeID string `json:"newParentNodeID"`
}

// ReorderRequest carries a move gesture on the visible list of one family
// and category: the indices come straight from the drag, the expanded set
// reproduces the list the user was looking at.
type ReorderRequest struct {
	Family      domain.NodeFamily `json:"family" binding:"required,oneof=SUBJECT ORGANIZATION"`
	Category    domain.Category   `json:"category" binding:"required,nodecategory"`
	ExpandedIDs []string          `json:"expandedIDs"`
	SourceIndex int               `json:"sourceIndex" binding:"min=0"`
	DestIndex   int               `json:"destIndex" binding:"min=0"`
}

// NodeResponse defines the data returned for a node.
type NodeResponse struct {
	NodeID       string            `json:"nodeID"`
	Family       domain.NodeFamily `json:"family"`
	Category     domain.Category   `json:"category"`
	Code         string            `json:"code"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	Level        int               `json:"level"`
	ParentNodeID string            `json:"parentNodeID"`
	SortOrder    int               `json:"sortOrder"`
	CreatedAt    time.Time         `json:"createdAt"`
	CreatedBy    string            `json:"createdBy"`
	LastUpdatedAt time.Time        `json:"lastUpdatedAt"`
	LastUpdatedBy string           `json:"lastUpdatedBy"`
}

// ToNodeResponse converts a domain.Node to NodeResponse DTO
func ToNodeResponse(n *domain.Node) NodeResponse {
	return NodeResponse{
		NodeID:        n.NodeID,
		Family:        n.Family,
		Category:      n.Category,
		Code:          n.Code,
		Name:          n.Name,
		Description:   n.Description,
		Level:         n.Level,
		ParentNodeID:  n.ParentNodeID,
		SortOrder:     n.SortOrder,
		CreatedAt:     n.CreatedAt,
		CreatedBy:     n.CreatedBy,
		LastUpdatedAt: n.LastUpdatedAt,
		LastUpdatedBy: n.LastUpdatedBy,
	}
}

// ToNodeResponses converts a slice of domain nodes.
func ToNodeResponses(nodes []domain.Node) []NodeResponse {
	out := make([]NodeResponse, 0, len(nodes))
	for i := range nodes {
		out = append(out, ToNodeResponse(&nodes[i]))
	}
	return out
}
