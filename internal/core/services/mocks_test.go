package services_test

import (
	"context"
	"time"

	"github.com/Namer-kimhyojin/Budget-sub000/internal/core/domain"
	portsrepo "github.com/Namer-kimhyojin/Budget-sub000/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// MockNodeRepository is a mock type for the NodeRepositoryFacade interface
type MockNodeRepository struct {
	mock.Mock
}

func (m *MockNodeRepository) FindNodeByID(ctx context.Context, nodeID string) (*domain.Node, error) {
	args := m.Called(ctx, nodeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Node), args.Error(1)
}

func (m *MockNodeRepository) ListNodes(ctx context.Context, family domain.NodeFamily, category domain.Category) ([]domain.Node, error) {
	args := m.Called(ctx, family, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Node), args.Error(1)
}

func (m *MockNodeRepository) ListSiblings(ctx context.Context, family domain.NodeFamily, category domain.Category, parentNodeID string) ([]domain.Node, error) {
	args := m.Called(ctx, family, category, parentNodeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Node), args.Error(1)
}

func (m *MockNodeRepository) SaveNode(ctx context.Context, node domain.Node) error {
	args := m.Called(ctx, node)
	return args.Error(0)
}

func (m *MockNodeRepository) PatchNode(ctx context.Context, nodeID string, patch portsrepo.NodePatch) error {
	args := m.Called(ctx, nodeID, patch)
	return args.Error(0)
}

func (m *MockNodeRepository) DeleteNodes(ctx context.Context, nodeIDs []string) error {
	args := m.Called(ctx, nodeIDs)
	return args.Error(0)
}

func (m *MockNodeRepository) ReorderSiblings(ctx context.Context, orderedNodeIDs []string, updatedBy string, now time.Time) error {
	args := m.Called(ctx, orderedNodeIDs, updatedBy, now)
	return args.Error(0)
}

// MockEntryRepository is a mock type for the EntryReader interface
type MockEntryRepository struct {
	mock.Mock
}

func (m *MockEntryRepository) ListEntries(ctx context.Context, scope portsrepo.EntryScope) ([]domain.BudgetEntry, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BudgetEntry), args.Error(1)
}

func (m *MockEntryRepository) CountEntriesForSubjects(ctx context.Context, subjectIDs []string) (int64, error) {
	args := m.Called(ctx, subjectIDs)
	return args.Get(0).(int64), args.Error(1)
}

// subjectNode builds a subject node for tests with just the structural fields.
func subjectNode(id, parentID string, level int, category domain.Category, code, name string) domain.Node {
	return domain.Node{
		NodeID:       id,
		Family:       domain.FamilySubject,
		Category:     category,
		Code:         code,
		Name:         name,
		Level:        level,
		ParentNodeID: parentID,
	}
}
