package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Namer-kimhyojin/Budget-sub000/internal/core/domain"
	portsrepo "github.com/Namer-kimhyojin/Budget-sub000/internal/core/ports/repositories"
	"github.com/Namer-kimhyojin/Budget-sub000/internal/middleware"
	"github.com/Namer-kimhyojin/Budget-sub000/internal/utils/hierarchy"
	"github.com/shopspring/decimal"
)

// AggregationService groups flat budget entries back into the subject tree
// with bottom-up totals. Grouping itself is pure and never fails: entries
// whose subject chain cannot be resolved land in a synthetic placeholder
// bucket instead of being dropped.
type AggregationService struct {
	nodeRepo  portsrepo.NodeReader
	entryRepo portsrepo.EntryReader
}

func NewAggregationService(nodeRepo portsrepo.NodeReader, entryRepo portsrepo.EntryReader) *AggregationService {
	return &AggregationService{nodeRepo: nodeRepo, entryRepo: entryRepo}
}

// AggregateEntries loads the subject forest of a category and the entries of
// a scope and returns the grouped, summed display tree.
func (s *AggregationService) AggregateEntries(ctx context.Context, category domain.Category, scope portsrepo.EntryScope) (*domain.AggregateResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	nodes, err := s.nodeRepo.ListNodes(ctx, domain.FamilySubject, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list subject nodes: %w", err)
	}
	entries, err := s.entryRepo.ListEntries(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	result := Aggregate(nodes, category, entries)
	logger.Debug("Entries aggregated",
		slog.String("category", string(category)),
		slog.Int("entry_count", len(entries)),
		slog.Int("root_count", len(result.Roots)))
	return result, nil
}

// ListEntries returns the raw entries of a scope.
func (s *AggregationService) ListEntries(ctx context.Context, scope portsrepo.EntryScope) ([]domain.BudgetEntry, error) {
	entries, err := s.entryRepo.ListEntries(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	if entries == nil {
		return []domain.BudgetEntry{}, nil
	}
	return entries, nil
}

// Aggregate groups entries into the subject forest of one category. Every
// internal node carries the sum of its own entries plus every descendant's,
// for both the computed current amount and the caller-supplied baseline.
func Aggregate(nodes []domain.Node, category domain.Category, entries []domain.BudgetEntry) *domain.AggregateResult {
	byID := make(map[string]domain.Node, len(nodes))
	for _, n := range nodes {
		if n.Category == category {
			byID[n.NodeID] = n
		}
	}

	// Attach each entry to its subject when the ancestor chain resolves to a
	// level-1 root; otherwise it degrades to the placeholder bucket.
	entriesByNode := make(map[string][]domain.BudgetEntry)
	var unresolved []domain.BudgetEntry
	for _, e := range entries {
		if _, ok := byID[e.SubjectID]; !ok {
			unresolved = append(unresolved, e)
			continue
		}
		if _, ok := hierarchy.AncestorChain(byID, e.SubjectID); !ok {
			unresolved = append(unresolved, e)
			continue
		}
		entriesByNode[e.SubjectID] = append(entriesByNode[e.SubjectID], e)
	}

	tree := hierarchy.BuildTree(nodes, category, nil)

	var sum func(tn *hierarchy.TreeNode) *domain.GroupedNode
	sum = func(tn *hierarchy.TreeNode) *domain.GroupedNode {
		g := &domain.GroupedNode{
			Node:          tn.Node,
			Total:         decimal.Zero,
			BaselineTotal: decimal.Zero,
			Entries:       entriesByNode[tn.NodeID],
		}
		for _, e := range g.Entries {
			g.Total = g.Total.Add(e.ComputedAmount())
			g.BaselineTotal = g.BaselineTotal.Add(e.BaselineAmount)
		}
		for _, child := range tn.Children {
			gc := sum(child)
			g.Children = append(g.Children, gc)
			g.Total = g.Total.Add(gc.Total)
			g.BaselineTotal = g.BaselineTotal.Add(gc.BaselineTotal)
		}
		return g
	}

	result := &domain.AggregateResult{Total: decimal.Zero, BaselineTotal: decimal.Zero}
	for _, root := range tree {
		g := sum(root)
		result.Roots = append(result.Roots, g)
		result.Total = result.Total.Add(g.Total)
		result.BaselineTotal = result.BaselineTotal.Add(g.BaselineTotal)
	}

	if len(unresolved) > 0 {
		bucket := &domain.GroupedNode{
			Node: domain.Node{
				NodeID:   domain.PlaceholderBucketID,
				Family:   domain.FamilySubject,
				Category: category,
				Name:     "Unresolved entries",
				Level:    1,
			},
			Total:         decimal.Zero,
			BaselineTotal: decimal.Zero,
			Entries:       unresolved,
		}
		for _, e := range unresolved {
			bucket.Total = bucket.Total.Add(e.ComputedAmount())
			bucket.BaselineTotal = bucket.BaselineTotal.Add(e.BaselineAmount)
		}
		result.Unresolved = bucket
		result.Total = result.Total.Add(bucket.Total)
		result.BaselineTotal = result.BaselineTotal.Add(bucket.BaselineTotal)
	}

	return result
}
