package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/Namer-kimhyojin/Budget-sub000/internal/apperrors"
	"github.com/Namer-kimhyojin/Budget-sub000/internal/core/domain"
	portsrepo "github.com/Namer-kimhyojin/Budget-sub000/internal/core/ports/repositories"
	"github.com/Namer-kimhyojin/Budget-sub000/internal/dto"
	"github.com/Namer-kimhyojin/Budget-sub000/internal/middleware"
	"github.com/Namer-kimhyojin/Budget-sub000/internal/utils/hierarchy"
	"github.com/google/uuid"
)

// ClipboardService serializes subtrees for copy and cut, and re-creates
// (copy) or relocates (cut) them on paste. Copy payloads are immutable
// records of codes, names, and levels; a cut payload still points at live
// nodes, so its paste is a relocation with the cycle guard re-applied.
type ClipboardService struct {
	nodeRepo   portsrepo.NodeRepositoryFacade
	relocation *RelocationService
}

func NewClipboardService(nodeRepo portsrepo.NodeRepositoryFacade, relocation *RelocationService) *ClipboardService {
	return &ClipboardService{nodeRepo: nodeRepo, relocation: relocation}
}

// Copy collects the subtree of nodeID in preorder. A parent code is recorded
// only for items whose parent is itself inside the subtree; the subtree
// root's link is re-established by the paste anchor instead.
func (s *ClipboardService) Copy(ctx context.Context, nodeID string) (*domain.ClipboardPayload, error) {
	return s.collect(ctx, nodeID, domain.ClipboardCopy)
}

// Cut records the same collection flagged as a pending move. The source
// stays untouched until paste.
func (s *ClipboardService) Cut(ctx context.Context, nodeID string) (*domain.ClipboardPayload, error) {
	return s.collect(ctx, nodeID, domain.ClipboardCut)
}

func (s *ClipboardService) collect(ctx context.Context, nodeID string, mode domain.ClipboardMode) (*domain.ClipboardPayload, error) {
	node, err := s.nodeRepo.FindNodeByID(ctx, nodeID)
	if err != nil {
		return nil, err
	}
	nodes, err := s.nodeRepo.ListNodes(ctx, node.Family, node.Category)
	if err != nil {
		return nil, fmt.Errorf("failed to list nodes: %w", err)
	}

	subtree := hierarchy.CollectSubtree(nodes, nodeID)
	inSubtree := make(map[string]string, len(subtree)) // nodeID -> code
	for _, n := range subtree {
		inSubtree[n.NodeID] = n.Code
	}

	items := make([]domain.ClipboardItem, 0, len(subtree))
	for _, n := range subtree {
		item := domain.ClipboardItem{
			OriginalID:  n.NodeID,
			Code:        n.Code,
			Name:        n.Name,
			Description: n.Description,
			Level:       n.Level,
		}
		if parentCode, ok := inSubtree[n.ParentNodeID]; ok {
			item.ParentCode = parentCode
		}
		items = append(items, item)
	}

	return &domain.ClipboardPayload{
		Mode:         mode,
		SourceNodeID: nodeID,
		Family:       node.Family,
		Category:     node.Category,
		RootLevel:    node.Level,
		Items:        items,
	}, nil
}

// Paste applies a payload under anchorNodeID (empty = root level). A leaf
// anchor re-targets to its parent so a paste always lands on a non-leaf
// position. Copy payloads either create every item or stop and report how
// many succeeded; nothing already created is rolled back.
func (s *ClipboardService) Paste(ctx context.Context, payload domain.ClipboardPayload, anchorNodeID string, userID string) (*dto.PasteResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if len(payload.Items) == 0 {
		return nil, fmt.Errorf("%w: empty clipboard payload", apperrors.ErrValidation)
	}
	maxDepth := payload.Family.MaxDepth()

	var anchor *domain.Node
	if anchorNodeID != "" {
		a, err := s.nodeRepo.FindNodeByID(ctx, anchorNodeID)
		if err != nil {
			return nil, err
		}
		if a.Family != payload.Family || a.Category != payload.Category {
			return nil, fmt.Errorf("%w: paste target is outside the payload's category", apperrors.ErrValidation)
		}
		anchor = a
	}

	// A paste always lands on a non-leaf position.
	if anchor != nil && anchor.Level == maxDepth {
		if anchor.ParentNodeID == "" {
			anchor = nil
		} else {
			parent, err := s.nodeRepo.FindNodeByID(ctx, anchor.ParentNodeID)
			if err != nil {
				return nil, err
			}
			anchor = parent
		}
	}

	if payload.Mode == domain.ClipboardCut {
		return s.pasteCut(ctx, payload, anchor, userID)
	}
	return s.pasteCopy(ctx, payload, anchor, userID, logger)
}

// pasteCut degrades a cut payload to a relocation of the original root.
func (s *ClipboardService) pasteCut(ctx context.Context, payload domain.ClipboardPayload, anchor *domain.Node, userID string) (*dto.PasteResult, error) {
	source, err := s.nodeRepo.FindNodeByID(ctx, payload.SourceNodeID)
	if err != nil {
		return nil, err
	}

	anchorID := ""
	if anchor != nil {
		anchorID = anchor.NodeID
	}

	// The payload references live nodes, so the cycle guard applies again.
	if anchorID == payload.SourceNodeID {
		return nil, fmt.Errorf("%w: cannot paste a cut subtree onto itself", apperrors.ErrCyclicMove)
	}
	if anchorID != "" {
		nodes, err := s.nodeRepo.ListNodes(ctx, payload.Family, payload.Category)
		if err != nil {
			return nil, fmt.Errorf("failed to list nodes: %w", err)
		}
		if hierarchy.IsDescendant(nodes, payload.SourceNodeID, anchorID) {
			return nil, fmt.Errorf("%w: paste target is inside the cut subtree", apperrors.ErrCyclicMove)
		}
	}
	if anchorID == source.ParentNodeID {
		return nil, fmt.Errorf("%w: cut subtree is already at this location", apperrors.ErrValidation)
	}

	if err := s.relocation.Relocate(ctx, payload.SourceNodeID, anchorID, userID); err != nil {
		return nil, err
	}
	return &dto.PasteResult{Relocated: true, NewRootID: payload.SourceNodeID}, nil
}

// pasteCopy re-creates the payload under the anchor: parents before
// children, recorded parent codes resolved through the IDs created earlier
// in the same batch, every code made unique before use.
func (s *ClipboardService) pasteCopy(ctx context.Context, payload domain.ClipboardPayload, anchor *domain.Node, userID string, logger *slog.Logger) (*dto.PasteResult, error) {
	anchorLevel := 0
	anchorID := ""
	if anchor != nil {
		anchorLevel = anchor.Level
		anchorID = anchor.NodeID
	}
	delta := (anchorLevel + 1) - payload.RootLevel

	maxDepth := payload.Family.MaxDepth()
	for _, item := range payload.Items {
		moved := item.Level + delta
		if moved < 1 || moved > maxDepth {
			return nil, fmt.Errorf("%w: item %s would land at level %d (max %d)", apperrors.ErrDepthExceeded, item.Code, moved, maxDepth)
		}
	}

	nodes, err := s.nodeRepo.ListNodes(ctx, payload.Family, "")
	if err != nil {
		return nil, fmt.Errorf("failed to list nodes: %w", err)
	}
	takenCodes := make(map[string]bool, len(nodes))
	childCount := make(map[string]int)
	for _, n := range nodes {
		takenCodes[n.Code] = true
		childCount[n.ParentNodeID]++
	}

	// Ascending level order so every recorded parent code resolves to an
	// already-created ID. Stable sort keeps the preorder within a level.
	items := make([]domain.ClipboardItem, len(payload.Items))
	copy(items, payload.Items)
	sort.SliceStable(items, func(i, j int) bool { return items[i].Level < items[j].Level })

	codeToNewID := make(map[string]string, len(items))
	now := time.Now()

	var newRootID string
	for created, item := range items {
		parentID := anchorID
		if item.ParentCode != "" {
			resolved, ok := codeToNewID[item.ParentCode]
			if !ok {
				return nil, fmt.Errorf("%w: parent code %s not created before its child", apperrors.ErrValidation, item.ParentCode)
			}
			parentID = resolved
		}

		code := uniqueCode(item.Code, takenCodes)
		takenCodes[code] = true

		node := domain.Node{
			NodeID:       uuid.NewString(),
			Family:       payload.Family,
			Category:     payload.Category,
			Code:         code,
			Name:         item.Name,
			Description:  item.Description,
			Level:        item.Level + delta,
			ParentNodeID: parentID,
			SortOrder:    childCount[parentID],
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}

		if err := s.nodeRepo.SaveNode(ctx, node); err != nil {
			logger.Error("Paste failed partway through batch",
				slog.String("error", err.Error()),
				slog.Int("created", created),
				slog.Int("total", len(items)))
			return nil, &apperrors.PartialFailureError{Completed: created, Total: len(items), Err: err}
		}

		childCount[parentID]++
		codeToNewID[item.Code] = node.NodeID
		if item.OriginalID == payload.SourceNodeID {
			newRootID = node.NodeID
		}
	}

	logger.Info("Clipboard payload pasted",
		slog.String("anchor_id", anchorID),
		slog.Int("created_count", len(items)),
		slog.String("new_root_id", newRootID))
	return &dto.PasteResult{CreatedCount: len(items), NewRootID: newRootID}, nil
}

// uniqueCode appends _1, _2, ... until the code collides with neither an
// existing node nor a code already reserved earlier in the same batch.
func uniqueCode(base string, taken map[string]bool) string {
	if !taken[base] {
		return base
	}
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s_%d", base, n)
		if !taken[candidate] {
			return candidate
		}
	}
}
