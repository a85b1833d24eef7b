package mapping

import (
	"github.com/Namer-kimhyojin/Budget-sub000/internal/core/domain"
	"github.com/Namer-kimhyojin/Budget-sub000/internal/models"
)

// ToModelNode converts a domain Node to a model Node
func ToModelNode(d domain.Node) models.Node {
	return models.Node{
		NodeID:       d.NodeID,
		Family:       models.NodeFamily(d.Family),
		Category:     string(d.Category),
		Code:         d.Code,
		Name:         d.Name,
		Description:  d.Description,
		Level:        d.Level,
		ParentNodeID: d.ParentNodeID,
		SortOrder:    d.SortOrder,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

// ToDomainNode converts a model Node to a domain Node
func ToDomainNode(m models.Node) domain.Node {
	return domain.Node{
		NodeID:       m.NodeID,
		Family:       domain.NodeFamily(m.Family),
		Category:     domain.Category(m.Category),
		Code:         m.Code,
		Name:         m.Name,
		Description:  m.Description,
		Level:        m.Level,
		ParentNodeID: m.ParentNodeID,
		SortOrder:    m.SortOrder,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}
