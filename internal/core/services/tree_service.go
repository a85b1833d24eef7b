package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Namer-kimhyojin/Budget-sub000/internal/core/domain"
	portsrepo "github.com/Namer-kimhyojin/Budget-sub000/internal/core/ports/repositories"
	"github.com/Namer-kimhyojin/Budget-sub000/internal/utils/hierarchy"
)

// TreeService projects the persisted flat node list into the nested forest
// and the visible list. Pure transformation over the latest snapshot; all
// the tree math lives in the hierarchy package.
type TreeService struct {
	nodeRepo portsrepo.NodeReader
}

func NewTreeService(nodeRepo portsrepo.NodeReader) *TreeService {
	return &TreeService{nodeRepo: nodeRepo}
}

// GetTree returns the nested forest of a family and category. A non-empty
// search prunes the forest: a branch survives if it or any descendant
// matches on code or name.
func (s *TreeService) GetTree(ctx context.Context, family domain.NodeFamily, category domain.Category, search string) ([]*hierarchy.TreeNode, error) {
	nodes, err := s.nodeRepo.ListNodes(ctx, family, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list nodes: %w", err)
	}

	var matcher func(domain.Node) bool
	if q := strings.ToLower(strings.TrimSpace(search)); q != "" {
		matcher = func(n domain.Node) bool {
			return strings.Contains(strings.ToLower(n.Name), q) ||
				strings.Contains(strings.ToLower(n.Code), q)
		}
	}

	return hierarchy.BuildTree(nodes, category, matcher), nil
}

// GetVisibleList returns the depth-first flattening of the tree with only
// expanded branches descended into.
func (s *TreeService) GetVisibleList(ctx context.Context, family domain.NodeFamily, category domain.Category, expandedIDs []string) ([]hierarchy.VisibleNode, error) {
	tree, err := s.GetTree(ctx, family, category, "")
	if err != nil {
		return nil, err
	}
	expanded := make(map[string]bool, len(expandedIDs))
	for _, id := range expandedIDs {
		expanded[id] = true
	}
	return hierarchy.VisibleList(tree, expanded), nil
}
