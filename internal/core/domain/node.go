package domain

// NodeFamily distinguishes the two node hierarchies managed by the service.
// Subjects and organization units share the same record shape; only the depth
// cap differs.
type NodeFamily string

const (
	FamilySubject      NodeFamily = "SUBJECT"
	FamilyOrganization NodeFamily = "ORGANIZATION"
)

// MaxDepth returns the deepest level a node of this family may occupy.
// Subjects span chapter/section/item/line (4 levels), organizations span 2.
func (f NodeFamily) MaxDepth() int {
	if f == FamilyOrganization {
		return 2
	}
	return 4
}

// Category partitions a family's forest. A node's ancestors and descendants
// always share its category, and codes are unique within a family.
type Category string

const (
	CategoryIncome       Category = "INCOME"
	CategoryExpense      Category = "EXPENSE"
	CategoryOrganization Category = "ORGANIZATION"
)

// Node represents one entry in the coded classification hierarchy.
// This is the primary representation used by services.
type Node struct {
	NodeID       string     `json:"nodeID"`       // Primary Key (UUID)
	Family       NodeFamily `json:"family"`       // SUBJECT or ORGANIZATION
	Category     Category   `json:"category"`     // Partition within the family
	Code         string     `json:"code"`         // Human-facing short code, unique within family
	Name         string     `json:"name"`         // Display name
	Description  string     `json:"description"`  // Nullable description
	Level        int        `json:"level"`        // 1 (root) .. Family.MaxDepth()
	ParentNodeID string     `json:"parentNodeID"` // Empty iff Level == 1
	SortOrder    int        `json:"sortOrder"`    // Display order among siblings
	AuditFields             // Embed CreatedAt, CreatedBy, etc.
}

// IsRoot reports whether the node sits at level 1.
func (n Node) IsRoot() bool {
	return n.ParentNodeID == ""
}
