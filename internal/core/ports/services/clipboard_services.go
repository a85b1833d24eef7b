package services

import (
	"context"

	"github.com/Namer-kimhyojin/Budget-sub000/internal/core/domain"
	"github.com/Namer-kimhyojin/Budget-sub000/internal/dto"
)

// ClipboardSvcFacade serializes subtrees for copy/cut and re-creates or
// relocates them on paste.
type ClipboardSvcFacade interface {
	// Copy records a subtree for later duplication. Does not mutate the source.
	Copy(ctx context.Context, nodeID string) (*domain.ClipboardPayload, error)

	// Cut records a subtree as a pending move. The source is untouched until
	// paste, at which point the cut degrades to a relocation.
	Cut(ctx context.Context, nodeID string) (*domain.ClipboardPayload, error)

	// Paste applies a payload under an anchor node (empty anchor = root).
	// Copy payloads create remapped nodes with fresh IDs and unique codes;
	// cut payloads relocate the original subtree.
	Paste(ctx context.Context, payload domain.ClipboardPayload, anchorNodeID string, userID string) (*dto.PasteResult, error)
}
