package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Namer-kimhyojin/Budget-sub000/internal/apperrors"
	"github.com/Namer-kimhyojin/Budget-sub000/internal/core/domain"
	portsrepo "github.com/Namer-kimhyojin/Budget-sub000/internal/core/ports/repositories"
	"github.com/Namer-kimhyojin/Budget-sub000/internal/middleware"
	"github.com/Namer-kimhyojin/Budget-sub000/internal/utils/hierarchy"
)

// RelocationService moves a node and its whole subtree under a new parent,
// cascading the level delta through every descendant. Depth and cycle
// violations are rejected before anything is written. Persistence is the
// root's attachment first, then one level patch per descendant; the sequence
// is not atomic, and a failure partway through is surfaced as a
// PartialFailureError without rolling back the steps already applied.
type RelocationService struct {
	nodeRepo portsrepo.NodeRepositoryFacade
}

func NewRelocationService(nodeRepo portsrepo.NodeRepositoryFacade) *RelocationService {
	return &RelocationService{nodeRepo: nodeRepo}
}

// Relocate moves nodeID under newParentID (empty = make root).
func (s *RelocationService) Relocate(ctx context.Context, nodeID string, newParentID string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	node, err := s.nodeRepo.FindNodeByID(ctx, nodeID)
	if err != nil {
		return err
	}

	nodes, err := s.nodeRepo.ListNodes(ctx, node.Family, node.Category)
	if err != nil {
		return fmt.Errorf("failed to list nodes: %w", err)
	}

	newLevel := 1
	if newParentID != "" {
		if newParentID == nodeID {
			return fmt.Errorf("%w: node cannot become its own parent", apperrors.ErrCyclicMove)
		}
		byID := indexNodes(nodes)
		parent, ok := byID[newParentID]
		if !ok {
			return fmt.Errorf("%w: parent node %s", apperrors.ErrNotFound, newParentID)
		}
		if parent.Category != node.Category {
			return fmt.Errorf("%w: parent belongs to category %s", apperrors.ErrValidation, parent.Category)
		}
		// Walk the target's ancestor chain before touching anything: landing
		// inside the moving subtree would create a cycle.
		chain, ok := hierarchy.AncestorChain(byID, newParentID)
		if !ok {
			return fmt.Errorf("%w: parent node %s has a broken ancestor chain", apperrors.ErrValidation, newParentID)
		}
		for _, anc := range chain {
			if anc.NodeID == nodeID {
				return fmt.Errorf("%w: target parent is inside the moving subtree", apperrors.ErrCyclicMove)
			}
		}
		newLevel = parent.Level + 1
	}

	delta := newLevel - node.Level
	if newParentID == node.ParentNodeID && delta == 0 {
		return nil
	}

	subtree := hierarchy.CollectSubtree(nodes, nodeID)
	maxDepth := node.Family.MaxDepth()
	for _, n := range subtree {
		moved := n.Level + delta
		if moved < 1 || moved > maxDepth {
			return fmt.Errorf("%w: node %s would land at level %d (max %d)", apperrors.ErrDepthExceeded, n.NodeID, moved, maxDepth)
		}
	}

	now := time.Now()
	total := len(subtree)

	// Root first: its parent link and level move together.
	rootPatch := portsrepo.NodePatch{
		ParentNodeID:  &newParentID,
		Level:         &newLevel,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}
	if err := s.nodeRepo.PatchNode(ctx, nodeID, rootPatch); err != nil {
		logger.Error("Failed to relocate subtree root", slog.String("error", err.Error()), slog.String("node_id", nodeID))
		return err
	}

	// Descendants keep their parent; only the level cascades. Each patch is
	// an independent store call, so a failure here leaves the root moved and
	// the remaining descendants at stale levels.
	completed := 1
	for _, n := range subtree[1:] {
		level := n.Level + delta
		patch := portsrepo.NodePatch{
			Level:         &level,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		}
		if err := s.nodeRepo.PatchNode(ctx, n.NodeID, patch); err != nil {
			logger.Error("Relocation failed partway through subtree",
				slog.String("error", err.Error()),
				slog.String("node_id", nodeID),
				slog.Int("completed", completed),
				slog.Int("total", total))
			return &apperrors.PartialFailureError{Completed: completed, Total: total, Err: err}
		}
		completed++
	}

	logger.Info("Node relocated",
		slog.String("node_id", nodeID),
		slog.String("new_parent_id", newParentID),
		slog.Int("level_delta", delta),
		slog.Int("subtree_size", total))
	return nil
}

// Promote relocates a node to its current grandparent, lifting it one level.
func (s *RelocationService) Promote(ctx context.Context, nodeID string, userID string) error {
	node, err := s.nodeRepo.FindNodeByID(ctx, nodeID)
	if err != nil {
		return err
	}
	if node.IsRoot() {
		return fmt.Errorf("%w: node is already at level 1", apperrors.ErrValidation)
	}
	parent, err := s.nodeRepo.FindNodeByID(ctx, node.ParentNodeID)
	if err != nil {
		return err
	}
	return s.Relocate(ctx, nodeID, parent.ParentNodeID, userID)
}

// Demote relocates a node under its nearest preceding sibling, pushing it
// one level deeper.
func (s *RelocationService) Demote(ctx context.Context, nodeID string, userID string) error {
	node, err := s.nodeRepo.FindNodeByID(ctx, nodeID)
	if err != nil {
		return err
	}
	if node.Level >= node.Family.MaxDepth() {
		return fmt.Errorf("%w: node is already at max depth %d", apperrors.ErrDepthExceeded, node.Family.MaxDepth())
	}

	siblings, err := s.nodeRepo.ListSiblings(ctx, node.Family, node.Category, node.ParentNodeID)
	if err != nil {
		return fmt.Errorf("failed to list sibling group: %w", err)
	}
	var preceding *domain.Node
	for i := range siblings {
		if siblings[i].NodeID == nodeID {
			break
		}
		preceding = &siblings[i]
	}
	if preceding == nil {
		return fmt.Errorf("%w: node has no preceding sibling to nest under", apperrors.ErrValidation)
	}
	return s.Relocate(ctx, nodeID, preceding.NodeID, userID)
}

func indexNodes(nodes []domain.Node) map[string]domain.Node {
	byID := make(map[string]domain.Node, len(nodes))
	for _, n := range nodes {
		byID[n.NodeID] = n
	}
	return byID
}
