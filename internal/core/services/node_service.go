package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Namer-kimhyojin/Budget-sub000/internal/apperrors"
	"github.com/Namer-kimhyojin/Budget-sub000/internal/core/domain"
	portsrepo "github.com/Namer-kimhyojin/Budget-sub000/internal/core/ports/repositories"
	"github.com/Namer-kimhyojin/Budget-sub000/internal/dto"
	"github.com/Namer-kimhyojin/Budget-sub000/internal/middleware"
	"github.com/Namer-kimhyojin/Budget-sub000/internal/utils/hierarchy"
	"github.com/google/uuid"
)

// NodeService owns the lifecycle of hierarchy nodes: create, rename, cascade
// delete. Structural moves live in RelocationService.
type NodeService struct {
	nodeRepo  portsrepo.NodeRepositoryFacade
	entryRepo portsrepo.EntryReader
}

func NewNodeService(nodeRepo portsrepo.NodeRepositoryFacade, entryRepo portsrepo.EntryReader) *NodeService {
	return &NodeService{nodeRepo: nodeRepo, entryRepo: entryRepo}
}

// CreateNode persists a new root or child node. Children inherit the
// parent's category; the new level is parent level + 1, bounded by the
// family's max depth. Sort order is the count of current siblings.
func (s *NodeService) CreateNode(ctx context.Context, req dto.CreateNodeRequest, userID string) (*domain.Node, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	level := 1
	category := req.Category
	parentID := ""
	if req.ParentNodeID != nil && *req.ParentNodeID != "" {
		parentID = *req.ParentNodeID
		parent, err := s.nodeRepo.FindNodeByID(ctx, parentID)
		if err != nil {
			return nil, err
		}
		if parent.Family != req.Family {
			return nil, fmt.Errorf("%w: parent belongs to family %s", apperrors.ErrValidation, parent.Family)
		}
		level = parent.Level + 1
		category = parent.Category
		if level > req.Family.MaxDepth() {
			return nil, fmt.Errorf("%w: level %d exceeds max depth %d", apperrors.ErrDepthExceeded, level, req.Family.MaxDepth())
		}
	}

	siblings, err := s.nodeRepo.ListSiblings(ctx, req.Family, category, parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list siblings: %w", err)
	}

	code := strings.TrimSpace(req.Code)
	if code == "" {
		code = generateSiblingCode(category, level, siblings)
	}

	now := time.Now()
	node := domain.Node{
		NodeID:       uuid.NewString(),
		Family:       req.Family,
		Category:     category,
		Code:         code,
		Name:         req.Name,
		Description:  req.Description,
		Level:        level,
		ParentNodeID: parentID,
		SortOrder:    len(siblings),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.nodeRepo.SaveNode(ctx, node); err != nil {
		logger.Error("Failed to save node in repository", slog.String("error", err.Error()), slog.String("node_id", node.NodeID))
		return nil, err
	}

	logger.Info("Node created successfully in service", slog.String("node_id", node.NodeID), slog.Int("level", node.Level))
	return &node, nil
}

func (s *NodeService) GetNodeByID(ctx context.Context, nodeID string) (*domain.Node, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	node, err := s.nodeRepo.FindNodeByID(ctx, nodeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find node by ID in repository", slog.String("error", err.Error()), slog.String("node_id", nodeID))
		}
		return nil, err
	}
	return node, nil
}

func (s *NodeService) ListNodes(ctx context.Context, family domain.NodeFamily, category domain.Category) ([]domain.Node, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	nodes, err := s.nodeRepo.ListNodes(ctx, family, category)
	if err != nil {
		logger.Error("Failed to list nodes from repository", slog.String("error", err.Error()), slog.String("family", string(family)))
		return nil, fmt.Errorf("failed to list nodes: %w", err)
	}
	if nodes == nil {
		return []domain.Node{}, nil
	}
	return nodes, nil
}

// RenameNode updates the display fields of a node.
func (s *NodeService) RenameNode(ctx context.Context, nodeID string, req dto.UpdateNodeRequest, userID string) (*domain.Node, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Name == nil && req.Description == nil {
		return nil, fmt.Errorf("%w: no fields to update", apperrors.ErrValidation)
	}

	patch := portsrepo.NodePatch{
		Name:          req.Name,
		Description:   req.Description,
		LastUpdatedAt: time.Now(),
		LastUpdatedBy: userID,
	}
	if err := s.nodeRepo.PatchNode(ctx, nodeID, patch); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to patch node in repository", slog.String("error", err.Error()), slog.String("node_id", nodeID))
		}
		return nil, err
	}

	logger.Info("Node renamed successfully", slog.String("node_id", nodeID))
	return s.nodeRepo.FindNodeByID(ctx, nodeID)
}

// DeleteNode removes a node and all its descendants. The delete is refused
// when any budget entry references a node anywhere in the subtree.
func (s *NodeService) DeleteNode(ctx context.Context, nodeID string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	node, err := s.nodeRepo.FindNodeByID(ctx, nodeID)
	if err != nil {
		return err
	}

	nodes, err := s.nodeRepo.ListNodes(ctx, node.Family, node.Category)
	if err != nil {
		return fmt.Errorf("failed to list nodes: %w", err)
	}

	subtree := hierarchy.CollectSubtree(nodes, nodeID)
	ids := make([]string, 0, len(subtree))
	for _, n := range subtree {
		ids = append(ids, n.NodeID)
	}

	if node.Family == domain.FamilySubject {
		count, err := s.entryRepo.CountEntriesForSubjects(ctx, ids)
		if err != nil {
			return fmt.Errorf("failed to count linked entries: %w", err)
		}
		if count > 0 {
			logger.Warn("Delete refused, subtree has linked entries", slog.String("node_id", nodeID), slog.Int64("entry_count", count))
			return fmt.Errorf("%w: %d entries reference this subtree", apperrors.ErrLinkedEntries, count)
		}
	}

	if err := s.nodeRepo.DeleteNodes(ctx, ids); err != nil {
		logger.Error("Failed to delete subtree in repository", slog.String("error", err.Error()), slog.String("node_id", nodeID))
		return err
	}

	logger.Info("Node subtree deleted", slog.String("node_id", nodeID), slog.Int("deleted_count", len(ids)))
	return nil
}

// generateSiblingCode derives a fallback code like "EXPENSE-2-3" from the
// category, level, and sibling count. Callers normally supply codes; this
// keeps auto-created nodes unique enough for the store's unique index.
func generateSiblingCode(category domain.Category, level int, siblings []domain.Node) string {
	taken := make(map[string]bool, len(siblings))
	for _, s := range siblings {
		taken[s.Code] = true
	}
	n := len(siblings) + 1
	for {
		code := fmt.Sprintf("%s-%d-%d", category, level, n)
		if !taken[code] {
			return code
		}
		n++
	}
}
