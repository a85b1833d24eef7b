package hierarchy

import (
	"testing"

	"github.com/Namer-kimhyojin/Budget-sub000/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// expandedForestList flattens testForest with everything expanded:
// A(0), B(1), C(2), D(1), E(0).
func expandedForestList() []VisibleNode {
	roots := BuildTree(testForest(), domain.CategoryExpense, nil)
	return VisibleList(roots, map[string]bool{"A": true, "B": true})
}

func siblingsOfA() []domain.Node {
	forest := testForest()
	return []domain.Node{forest[2], forest[3]} // B, D in sort order
}

func TestResolveDestinationParent(t *testing.T) {
	visible := expandedForestList()

	// Top of the list has no preceding item: drop lands at root.
	assert.Equal(t, "", ResolveDestinationParent(visible, 0))

	// Preceding item A is expanded with children: drop becomes A's child.
	assert.Equal(t, "A", ResolveDestinationParent(visible, 1))

	// Preceding item C is a leaf: drop becomes C's sibling.
	assert.Equal(t, "B", ResolveDestinationParent(visible, 3))

	// Preceding item D is a collapsed leaf: drop joins D's parent.
	assert.Equal(t, "A", ResolveDestinationParent(visible, 4))
}

func TestPlanReorder_SameParentPermutation(t *testing.T) {
	visible := expandedForestList()
	siblings := siblingsOfA()

	// Drag D (index 3) to just under A (index 1), ahead of B.
	plan := PlanReorder(visible, 3, 1, siblings)

	require.False(t, plan.NoOp)
	require.False(t, plan.CrossParent)
	assert.Equal(t, "D", plan.SourceNodeID)
	assert.Equal(t, "A", plan.DestinationParentID)
	assert.Equal(t, []string{"D", "B"}, plan.OrderedIDs)

	// The emitted order is always a permutation of the sibling group.
	assert.ElementsMatch(t, []string{"B", "D"}, plan.OrderedIDs)
}

func TestPlanReorder_NoOpOnSameIndex(t *testing.T) {
	plan := PlanReorder(expandedForestList(), 2, 2, siblingsOfA())
	assert.True(t, plan.NoOp)
}

func TestPlanReorder_NoOpOnOutOfRange(t *testing.T) {
	visible := expandedForestList()
	assert.True(t, PlanReorder(visible, -1, 2, siblingsOfA()).NoOp)
	assert.True(t, PlanReorder(visible, 0, len(visible), siblingsOfA()).NoOp)
}

func TestPlanReorder_CrossParentDetected(t *testing.T) {
	visible := expandedForestList()
	forest := testForest()
	rootSiblings := []domain.Node{forest[0], forest[1]} // A, E

	// Drag E (index 4) between B and C: the preceding item after the splice
	// is the expanded B, so E would become B's child.
	plan := PlanReorder(visible, 4, 2, rootSiblings)

	require.True(t, plan.CrossParent)
	assert.Equal(t, "E", plan.SourceNodeID)
	assert.Equal(t, "B", plan.DestinationParentID)
	assert.Empty(t, plan.OrderedIDs)
}

func TestPlanReorder_DropToTopPromotesToRoot(t *testing.T) {
	visible := expandedForestList()

	// Drag D (a level-2 node) to the very top: no preceding item, so the
	// gesture resolves as a move to root level.
	plan := PlanReorder(visible, 3, 0, siblingsOfA())

	require.True(t, plan.CrossParent)
	assert.Equal(t, "D", plan.SourceNodeID)
	assert.Equal(t, "", plan.DestinationParentID)
}

func TestPlanReorder_SourceMissingFromGroup(t *testing.T) {
	visible := expandedForestList()
	staleSiblings := []domain.Node{testForest()[2]} // B only, D missing

	plan := PlanReorder(visible, 3, 1, staleSiblings)
	assert.True(t, plan.NoOp)
}
