package hierarchy

import (
	"github.com/Namer-kimhyojin/Budget-sub000/internal/core/domain"
)

// ReorderPlan is the outcome of resolving a move gesture on the visible
// list. Exactly one of three things holds: the gesture is a no-op, a
// same-parent reorder (OrderedIDs carries the full sibling permutation), or
// a cross-parent move the caller must route to relocation.
type ReorderPlan struct {
	NoOp                bool     `json:"noOp"`
	CrossParent         bool     `json:"crossParent"`
	SourceNodeID        string   `json:"sourceNodeID"`
	DestinationParentID string   `json:"destinationParentID"`
	OrderedIDs          []string `json:"orderedIDs,omitempty"`
}

// ResolveDestinationParent determines the parent a dropped node would attach
// to, from the visible-list item immediately preceding the drop position: an
// expanded item with children receives the drop as a child, anything else
// makes the drop a sibling of itself. Known ambiguity: at collapsed or
// boundary positions this heuristic can classify a reorder as a cross-parent
// move or vice versa; it is reproduced as-is.
func ResolveDestinationParent(visible []VisibleNode, destIndex int) string {
	if destIndex <= 0 || destIndex > len(visible) {
		return ""
	}
	preceding := visible[destIndex-1]
	if preceding.Expanded && preceding.HasChildren {
		return preceding.Node.NodeID
	}
	return preceding.Node.ParentNodeID
}

// PlanReorder resolves a move of visible[sourceIndex] to destIndex against
// the node's current sibling group (ordered by persisted sort order). The
// emitted OrderedIDs is always a permutation of the sibling-group id set.
func PlanReorder(visible []VisibleNode, sourceIndex, destIndex int, siblings []domain.Node) ReorderPlan {
	if sourceIndex == destIndex {
		return ReorderPlan{NoOp: true}
	}
	if sourceIndex < 0 || sourceIndex >= len(visible) || destIndex < 0 || destIndex >= len(visible) {
		return ReorderPlan{NoOp: true}
	}
	source := visible[sourceIndex].Node

	// Simulate the drop so the preceding-item heuristic sees the list as the
	// user does after the gesture.
	moved := make([]VisibleNode, 0, len(visible))
	moved = append(moved, visible[:sourceIndex]...)
	moved = append(moved, visible[sourceIndex+1:]...)
	if destIndex > len(moved) {
		return ReorderPlan{NoOp: true}
	}
	moved = append(moved[:destIndex], append([]VisibleNode{visible[sourceIndex]}, moved[destIndex:]...)...)

	destParentID := ResolveDestinationParent(moved, destIndex)
	if destParentID != source.ParentNodeID {
		return ReorderPlan{
			CrossParent:         true,
			SourceNodeID:        source.NodeID,
			DestinationParentID: destParentID,
		}
	}

	group := make(map[string]bool, len(siblings))
	found := false
	for _, s := range siblings {
		group[s.NodeID] = true
		if s.NodeID == source.NodeID {
			found = true
		}
	}
	if !found {
		return ReorderPlan{NoOp: true}
	}

	// Sibling-relative insert position: group members dropped ahead of the
	// destination slot.
	insertAt := 0
	for i := 0; i < destIndex; i++ {
		if moved[i].Node.NodeID != source.NodeID && group[moved[i].Node.NodeID] {
			insertAt++
		}
	}

	ordered := make([]string, 0, len(siblings))
	for _, s := range siblings {
		if s.NodeID != source.NodeID {
			ordered = append(ordered, s.NodeID)
		}
	}
	if insertAt > len(ordered) {
		insertAt = len(ordered)
	}
	ordered = append(ordered[:insertAt], append([]string{source.NodeID}, ordered[insertAt:]...)...)

	return ReorderPlan{
		SourceNodeID:        source.NodeID,
		DestinationParentID: destParentID,
		OrderedIDs:          ordered,
	}
}
