package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Namer-kimhyojin/Budget-sub000/internal/apperrors"
	portsrepo "github.com/Namer-kimhyojin/Budget-sub000/internal/core/ports/repositories"
	"github.com/Namer-kimhyojin/Budget-sub000/internal/middleware"
	"github.com/Namer-kimhyojin/Budget-sub000/internal/utils/hierarchy"
)

// ReorderService turns a visible-list move gesture into a persisted sibling
// permutation. The whole new order goes to the store in one call, so a
// mid-sequence failure can never leave a partially reordered group.
type ReorderService struct {
	nodeRepo portsrepo.NodeRepositoryFacade
}

func NewReorderService(nodeRepo portsrepo.NodeRepositoryFacade) *ReorderService {
	return &ReorderService{nodeRepo: nodeRepo}
}

// Reorder resolves the destination of a move gesture against the visible
// list. Cross-parent gestures are returned unapplied; the caller routes
// them to RelocationService. Same-parent gestures are persisted atomically.
func (s *ReorderService) Reorder(ctx context.Context, visible []hierarchy.VisibleNode, sourceIndex, destIndex int, userID string) (*hierarchy.ReorderPlan, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if sourceIndex < 0 || sourceIndex >= len(visible) {
		plan := hierarchy.ReorderPlan{NoOp: true}
		return &plan, nil
	}
	source := visible[sourceIndex].Node

	siblings, err := s.nodeRepo.ListSiblings(ctx, source.Family, source.Category, source.ParentNodeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			plan := hierarchy.ReorderPlan{NoOp: true}
			return &plan, nil
		}
		return nil, fmt.Errorf("failed to list sibling group: %w", err)
	}

	plan := hierarchy.PlanReorder(visible, sourceIndex, destIndex, siblings)
	if plan.NoOp || plan.CrossParent {
		if plan.CrossParent {
			logger.Debug("Move gesture resolved as cross-parent relocation",
				slog.String("node_id", plan.SourceNodeID),
				slog.String("destination_parent_id", plan.DestinationParentID))
		}
		return &plan, nil
	}

	if err := s.nodeRepo.ReorderSiblings(ctx, plan.OrderedIDs, userID, time.Now()); err != nil {
		logger.Error("Failed to persist sibling order", slog.String("error", err.Error()), slog.String("node_id", source.NodeID))
		return nil, err
	}

	logger.Info("Sibling group reordered", slog.String("node_id", source.NodeID), slog.Int("group_size", len(plan.OrderedIDs)))
	return &plan, nil
}
