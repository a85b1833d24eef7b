package services_test

import (
	"context"
	"testing"

	"github.com/Namer-kimhyojin/Budget-sub000/internal/core/domain"
	"github.com/Namer-kimhyojin/Budget-sub000/internal/core/services"
	"github.com/Namer-kimhyojin/Budget-sub000/internal/utils/hierarchy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReorderServiceTestSuite struct {
	suite.Suite
	mockNodeRepo *MockNodeRepository
	service      *services.ReorderService
}

func (suite *ReorderServiceTestSuite) SetupTest() {
	suite.mockNodeRepo = new(MockNodeRepository)
	suite.service = services.NewReorderService(suite.mockNodeRepo)
}

// visibleForest renders sampleForest fully expanded: A, B, C, D, E.
func visibleForest() []hierarchy.VisibleNode {
	roots := hierarchy.BuildTree(sampleForest(), domain.CategoryExpense, nil)
	return hierarchy.VisibleList(roots, map[string]bool{"A": true, "B": true})
}

func (suite *ReorderServiceTestSuite) TestReorder_PersistsPermutation() {
	ctx := context.Background()
	visible := visibleForest()
	forest := sampleForest()
	siblings := []domain.Node{forest[2], forest[3]} // B, D

	suite.mockNodeRepo.On("ListSiblings", ctx, domain.FamilySubject, domain.CategoryExpense, "A").
		Return(siblings, nil).Once()
	suite.mockNodeRepo.On("ReorderSiblings", ctx, []string{"D", "B"}, "tester", mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	// Drag D (index 3) to just under A (index 1).
	plan, err := suite.service.Reorder(ctx, visible, 3, 1, "tester")

	suite.Require().NoError(err)
	suite.Require().NotNil(plan)
	suite.False(plan.NoOp)
	suite.False(plan.CrossParent)
	suite.Equal([]string{"D", "B"}, plan.OrderedIDs)
	suite.mockNodeRepo.AssertExpectations(suite.T())
}

func (suite *ReorderServiceTestSuite) TestReorder_CrossParentNotPersisted() {
	ctx := context.Background()
	visible := visibleForest()
	forest := sampleForest()
	rootSiblings := []domain.Node{forest[0], forest[1]} // A, E

	suite.mockNodeRepo.On("ListSiblings", ctx, domain.FamilySubject, domain.CategoryExpense, "").
		Return(rootSiblings, nil).Once()

	// Drag E between B and C: resolves as a move into B.
	plan, err := suite.service.Reorder(ctx, visible, 4, 2, "tester")

	suite.Require().NoError(err)
	suite.Require().NotNil(plan)
	suite.True(plan.CrossParent)
	suite.Equal("E", plan.SourceNodeID)
	suite.Equal("B", plan.DestinationParentID)
	suite.mockNodeRepo.AssertNotCalled(suite.T(), "ReorderSiblings", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReorderServiceTestSuite) TestReorder_NoOpOutOfRange() {
	ctx := context.Background()

	plan, err := suite.service.Reorder(ctx, visibleForest(), 99, 0, "tester")

	suite.Require().NoError(err)
	suite.True(plan.NoOp)
	suite.mockNodeRepo.AssertNotCalled(suite.T(), "ListSiblings", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReorderServiceTestSuite) TestReorder_PersistError() {
	ctx := context.Background()
	visible := visibleForest()
	forest := sampleForest()
	siblings := []domain.Node{forest[2], forest[3]}
	storeErr := assert.AnError

	suite.mockNodeRepo.On("ListSiblings", ctx, domain.FamilySubject, domain.CategoryExpense, "A").
		Return(siblings, nil).Once()
	suite.mockNodeRepo.On("ReorderSiblings", ctx, mock.Anything, "tester", mock.AnythingOfType("time.Time")).
		Return(storeErr).Once()

	plan, err := suite.service.Reorder(ctx, visible, 3, 1, "tester")

	suite.Require().Error(err)
	suite.Nil(plan)
	suite.ErrorIs(err, storeErr)
}

func TestReorderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReorderServiceTestSuite))
}
