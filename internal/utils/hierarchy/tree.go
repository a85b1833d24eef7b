// Package hierarchy holds the pure tree transformations shared by the
// mutation engines and the display layer. Nothing here touches a repository.
package hierarchy

import (
	"github.com/Namer-kimhyojin/Budget-sub000/internal/core/domain"
)

// TreeNode is a node with its children resolved in persisted sort order.
type TreeNode struct {
	domain.Node
	Children []*TreeNode `json:"children"`
}

// VisibleNode is one row of the expansion-aware depth-first flattening of the
// tree. Depth and IsLastChild drive connector drawing; HasChildren and
// Expanded drive the sibling/cross-parent destination heuristic on drags.
type VisibleNode struct {
	Node        domain.Node `json:"node"`
	Depth       int         `json:"depth"`
	IsLastChild bool        `json:"isLastChild"`
	HasChildren bool        `json:"hasChildren"`
	Expanded    bool        `json:"expanded"`
}

// BuildTree nests a flat node list into a forest restricted to one category.
// Input order is preserved: children appear under their parent exactly as
// they were ordered in the flat list, which carries the persisted sort order.
// When matches is non-nil the forest is pruned: a branch survives if it or
// any descendant matches.
func BuildTree(nodes []domain.Node, category domain.Category, matches func(domain.Node) bool) []*TreeNode {
	byParent := make(map[string][]domain.Node)
	for _, n := range nodes {
		if n.Category != category {
			continue
		}
		byParent[n.ParentNodeID] = append(byParent[n.ParentNodeID], n)
	}

	var build func(parentID string) []*TreeNode
	build = func(parentID string) []*TreeNode {
		var out []*TreeNode
		for _, n := range byParent[parentID] {
			child := &TreeNode{Node: n, Children: build(n.NodeID)}
			if matches != nil && !matches(n) && len(child.Children) == 0 {
				continue
			}
			out = append(out, child)
		}
		return out
	}
	return build("")
}

// VisibleList flattens a forest depth-first, descending into a node's
// children only when its ID is present in expanded. The returned slice is
// the list the UI renders and the coordinate system for drag gestures.
func VisibleList(roots []*TreeNode, expanded map[string]bool) []VisibleNode {
	var out []VisibleNode
	var walk func(nodes []*TreeNode, depth int)
	walk = func(nodes []*TreeNode, depth int) {
		for i, tn := range nodes {
			out = append(out, VisibleNode{
				Node:        tn.Node,
				Depth:       depth,
				IsLastChild: i == len(nodes)-1,
				HasChildren: len(tn.Children) > 0,
				Expanded:    expanded[tn.NodeID],
			})
			if expanded[tn.NodeID] {
				walk(tn.Children, depth+1)
			}
		}
	}
	walk(roots, 0)
	return out
}

// CollectSubtree returns the subtree rooted at rootID in preorder, the root
// itself first. Returns nil when the root is not in the list.
func CollectSubtree(nodes []domain.Node, rootID string) []domain.Node {
	byID := make(map[string]domain.Node, len(nodes))
	byParent := make(map[string][]domain.Node)
	for _, n := range nodes {
		byID[n.NodeID] = n
		byParent[n.ParentNodeID] = append(byParent[n.ParentNodeID], n)
	}

	root, ok := byID[rootID]
	if !ok {
		return nil
	}

	var out []domain.Node
	var walk func(n domain.Node)
	walk = func(n domain.Node) {
		out = append(out, n)
		for _, c := range byParent[n.NodeID] {
			walk(c)
		}
	}
	walk(root)
	return out
}

// AncestorChain walks from the node at startID up to its level-1 root and
// returns the chain root-first, the node itself last. ok is false when a
// parent link is missing or a cycle is detected before reaching a root.
func AncestorChain(byID map[string]domain.Node, startID string) (chain []domain.Node, ok bool) {
	seen := make(map[string]bool)
	cur, exists := byID[startID]
	if !exists {
		return nil, false
	}
	for {
		if seen[cur.NodeID] {
			return nil, false
		}
		seen[cur.NodeID] = true
		chain = append([]domain.Node{cur}, chain...)
		if cur.ParentNodeID == "" {
			return chain, true
		}
		parent, exists := byID[cur.ParentNodeID]
		if !exists {
			return nil, false
		}
		cur = parent
	}
}

// IsDescendant reports whether candidateID lies in the subtree of rootID
// (the root itself excluded).
func IsDescendant(nodes []domain.Node, rootID, candidateID string) bool {
	if candidateID == rootID {
		return false
	}
	for _, n := range CollectSubtree(nodes, rootID) {
		if n.NodeID == candidateID {
			return true
		}
	}
	return false
}
