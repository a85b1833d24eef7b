package models

// NodeFamily mirrors the domain discriminator at the storage layer.
type NodeFamily string

// Node represents a hierarchy node row.
// Note: ParentNodeID uses string for nullable foreign key; DB handling may vary.
type Node struct {
	NodeID       string     `db:"node_id"`
	Family       NodeFamily `db:"family"`
	Category     string     `db:"category"`
	Code         string     `db:"code"`
	Name         string     `db:"name"`
	Description  string     `db:"description"`
	Level        int        `db:"level"`
	ParentNodeID string     `db:"parent_node_id"` // Nullable
	SortOrder    int        `db:"sort_order"`
	AuditFields             // Embed common audit fields
}
