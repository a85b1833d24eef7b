package dto

import (
	"github.com/Namer-kimhyojin/Budget-sub000/internal/core/domain"
)

// ClipboardRequest names the subtree root for a copy or cut.
type ClipboardRequest struct {
	NodeID string `json:"nodeID" binding:"required"`
}

// PasteRequest applies a previously returned payload under an anchor.
// An empty AnchorNodeID pastes at root level.
type PasteRequest struct {
	Payload      domain.ClipboardPayload `json:"payload" binding:"required"`
	AnchorNodeID string                  `json:"anchorNodeID"`
}

// PasteResult reports what a paste did. CreatedCount counts newly created
// nodes for copy payloads; Relocated is true when a cut payload degraded to
// a relocation of the original subtree.
type PasteResult struct {
	Relocated    bool   `json:"relocated"`
	CreatedCount int    `json:"createdCount"`
	NewRootID    string `json:"newRootID,omitempty"`
}
