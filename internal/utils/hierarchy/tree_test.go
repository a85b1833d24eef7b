package hierarchy

import (
	"strings"
	"testing"

	"github.com/Namer-kimhyojin/Budget-sub000/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func node(id, parentID string, level int, code, name string) domain.Node {
	return domain.Node{
		NodeID:       id,
		Family:       domain.FamilySubject,
		Category:     domain.CategoryExpense,
		Code:         code,
		Name:         name,
		Level:        level,
		ParentNodeID: parentID,
	}
}

// testForest builds, in persisted sort order:
//
//	A (1)
//	├── B (2)
//	│   └── C (3)
//	└── D (2)
//	E (1)
func testForest() []domain.Node {
	return []domain.Node{
		node("A", "", 1, "E-A", "Personnel"),
		node("E", "", 1, "E-E", "Operations"),
		node("B", "A", 2, "E-A-B", "Salaries"),
		node("D", "A", 2, "E-A-D", "Benefits"),
		node("C", "B", 3, "E-A-B-C", "Base Pay"),
	}
}

func TestBuildTree_NestsAndPreservesOrder(t *testing.T) {
	roots := BuildTree(testForest(), domain.CategoryExpense, nil)

	require.Len(t, roots, 2)
	assert.Equal(t, "A", roots[0].NodeID)
	assert.Equal(t, "E", roots[1].NodeID)

	require.Len(t, roots[0].Children, 2)
	assert.Equal(t, "B", roots[0].Children[0].NodeID)
	assert.Equal(t, "D", roots[0].Children[1].NodeID)

	require.Len(t, roots[0].Children[0].Children, 1)
	assert.Equal(t, "C", roots[0].Children[0].Children[0].NodeID)
	assert.Empty(t, roots[1].Children)
}

func TestBuildTree_FiltersCategory(t *testing.T) {
	nodes := testForest()
	income := node("I", "", 1, "I-1", "Taxes")
	income.Category = domain.CategoryIncome
	nodes = append(nodes, income)

	roots := BuildTree(nodes, domain.CategoryExpense, nil)
	require.Len(t, roots, 2)
	for _, r := range roots {
		assert.NotEqual(t, "I", r.NodeID)
	}

	incomeRoots := BuildTree(nodes, domain.CategoryIncome, nil)
	require.Len(t, incomeRoots, 1)
	assert.Equal(t, "I", incomeRoots[0].NodeID)
}

func TestBuildTree_SearchKeepsAncestorsOfMatches(t *testing.T) {
	matches := func(n domain.Node) bool {
		return strings.Contains(strings.ToLower(n.Name), "base")
	}

	roots := BuildTree(testForest(), domain.CategoryExpense, matches)

	// Only the A → B → C spine survives: A and B are kept because the
	// matching C lives beneath them, D and E are pruned.
	require.Len(t, roots, 1)
	assert.Equal(t, "A", roots[0].NodeID)
	require.Len(t, roots[0].Children, 1)
	assert.Equal(t, "B", roots[0].Children[0].NodeID)
	require.Len(t, roots[0].Children[0].Children, 1)
	assert.Equal(t, "C", roots[0].Children[0].Children[0].NodeID)
}

func TestBuildTree_SearchNoMatches(t *testing.T) {
	matches := func(domain.Node) bool { return false }
	roots := BuildTree(testForest(), domain.CategoryExpense, matches)
	assert.Empty(t, roots)
}

func TestVisibleList_CollapsedShowsRootsOnly(t *testing.T) {
	roots := BuildTree(testForest(), domain.CategoryExpense, nil)

	visible := VisibleList(roots, map[string]bool{})

	require.Len(t, visible, 2)
	assert.Equal(t, "A", visible[0].Node.NodeID)
	assert.True(t, visible[0].HasChildren)
	assert.False(t, visible[0].Expanded)
	assert.Equal(t, "E", visible[1].Node.NodeID)
	assert.True(t, visible[1].IsLastChild)
}

func TestVisibleList_ExpansionDrivesDescent(t *testing.T) {
	roots := BuildTree(testForest(), domain.CategoryExpense, nil)

	visible := VisibleList(roots, map[string]bool{"A": true})

	// A, B, D, E: C stays hidden because B is collapsed.
	require.Len(t, visible, 4)
	assert.Equal(t, []string{"A", "B", "D", "E"}, visibleIDs(visible))
	assert.Equal(t, 1, visible[1].Depth)
	assert.False(t, visible[1].IsLastChild)
	assert.True(t, visible[2].IsLastChild)

	visible = VisibleList(roots, map[string]bool{"A": true, "B": true})
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, visibleIDs(visible))
	assert.Equal(t, 2, visible[2].Depth)
	assert.True(t, visible[2].IsLastChild)
}

func TestCollectSubtree_Preorder(t *testing.T) {
	subtree := CollectSubtree(testForest(), "A")

	require.Len(t, subtree, 4)
	assert.Equal(t, "A", subtree[0].NodeID)
	assert.Equal(t, "B", subtree[1].NodeID)
	assert.Equal(t, "C", subtree[2].NodeID)
	assert.Equal(t, "D", subtree[3].NodeID)
}

func TestCollectSubtree_MissingRoot(t *testing.T) {
	assert.Nil(t, CollectSubtree(testForest(), "nope"))
}

func TestAncestorChain(t *testing.T) {
	byID := make(map[string]domain.Node)
	for _, n := range testForest() {
		byID[n.NodeID] = n
	}

	chain, ok := AncestorChain(byID, "C")
	require.True(t, ok)
	require.Len(t, chain, 3)
	assert.Equal(t, "A", chain[0].NodeID)
	assert.Equal(t, "B", chain[1].NodeID)
	assert.Equal(t, "C", chain[2].NodeID)

	chain, ok = AncestorChain(byID, "A")
	require.True(t, ok)
	require.Len(t, chain, 1)
}

func TestAncestorChain_BrokenLink(t *testing.T) {
	byID := map[string]domain.Node{
		"orphan": node("orphan", "ghost", 2, "X", "Orphan"),
	}
	_, ok := AncestorChain(byID, "orphan")
	assert.False(t, ok)
}

func TestAncestorChain_CycleDetected(t *testing.T) {
	byID := map[string]domain.Node{
		"a": node("a", "b", 2, "A", "A"),
		"b": node("b", "a", 2, "B", "B"),
	}
	_, ok := AncestorChain(byID, "a")
	assert.False(t, ok)
}

func TestIsDescendant(t *testing.T) {
	nodes := testForest()
	assert.True(t, IsDescendant(nodes, "A", "C"))
	assert.True(t, IsDescendant(nodes, "B", "C"))
	assert.False(t, IsDescendant(nodes, "A", "A")) // root excluded
	assert.False(t, IsDescendant(nodes, "B", "D"))
	assert.False(t, IsDescendant(nodes, "E", "A"))
}

func visibleIDs(visible []VisibleNode) []string {
	out := make([]string, 0, len(visible))
	for _, v := range visible {
		out = append(out, v.Node.NodeID)
	}
	return out
}
