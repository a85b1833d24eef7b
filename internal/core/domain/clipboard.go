package domain

// ClipboardMode distinguishes a duplicating copy from a pending move.
type ClipboardMode string

const (
	ClipboardCopy ClipboardMode = "COPY"
	ClipboardCut  ClipboardMode = "CUT"
)

// ClipboardItem is one recorded node of a copied or cut subtree. ParentCode
// is set only when the item's parent is itself inside the subtree; items
// without a parent code relink to the paste anchor.
type ClipboardItem struct {
	OriginalID  string `json:"originalID"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Level       int    `json:"level"`
	ParentCode  string `json:"parentCode"`
}

// ClipboardPayload is the immutable record of a copy or cut. A cut payload
// still references live nodes: paste of a cut degrades to a relocation of
// SourceNodeID rather than a re-creation of the items.
type ClipboardPayload struct {
	Mode         ClipboardMode   `json:"mode"`
	SourceNodeID string          `json:"sourceNodeID"`
	Family       NodeFamily      `json:"family"`
	Category     Category        `json:"category"`
	RootLevel    int             `json:"rootLevel"`
	Items        []ClipboardItem `json:"items"` // preorder, root first
}
