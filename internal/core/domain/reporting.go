package domain

import (
	"github.com/shopspring/decimal"
)

// PlaceholderBucketID keys the synthetic bucket that collects entries whose
// subject chain cannot be resolved to a level-1 root. Nothing is dropped.
const PlaceholderBucketID = "__unresolved__"

// GroupedNode mirrors one subject node in an aggregation result. Total and
// BaselineTotal carry the node's own entries plus every descendant's.
type GroupedNode struct {
	Node          `json:"node"`
	Total         decimal.Decimal `json:"total"`
	BaselineTotal decimal.Decimal `json:"baselineTotal"`
	Entries       []BudgetEntry   `json:"entries,omitempty"`
	Children      []*GroupedNode  `json:"children,omitempty"`
}

// AggregateResult is the grouped, summed display tree produced from a
// subject forest and a flat entry list.
type AggregateResult struct {
	Roots         []*GroupedNode  `json:"roots"`
	Unresolved    *GroupedNode    `json:"unresolved,omitempty"` // placeholder bucket
	Total         decimal.Decimal `json:"total"`
	BaselineTotal decimal.Decimal `json:"baselineTotal"`
}
