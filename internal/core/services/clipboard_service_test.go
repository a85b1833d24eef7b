package services_test

import (
	"context"
	"testing"

	"github.com/Namer-kimhyojin/Budget-sub000/internal/apperrors"
	"github.com/Namer-kimhyojin/Budget-sub000/internal/core/domain"
	portsrepo "github.com/Namer-kimhyojin/Budget-sub000/internal/core/ports/repositories"
	"github.com/Namer-kimhyojin/Budget-sub000/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ClipboardServiceTestSuite struct {
	suite.Suite
	mockNodeRepo *MockNodeRepository
	service      *services.ClipboardService
}

func (suite *ClipboardServiceTestSuite) SetupTest() {
	suite.mockNodeRepo = new(MockNodeRepository)
	relocation := services.NewRelocationService(suite.mockNodeRepo)
	suite.service = services.NewClipboardService(suite.mockNodeRepo, relocation)
}

func (suite *ClipboardServiceTestSuite) TestCopy_CollectsSubtreeWithRelativeParentCodes() {
	ctx := context.Background()
	nodes := sampleForest()
	b := nodes[2]

	suite.mockNodeRepo.On("FindNodeByID", ctx, "B").Return(&b, nil).Once()
	suite.mockNodeRepo.On("ListNodes", ctx, domain.FamilySubject, domain.CategoryExpense).Return(nodes, nil).Once()

	payload, err := suite.service.Copy(ctx, "B")

	suite.Require().NoError(err)
	suite.Equal(domain.ClipboardCopy, payload.Mode)
	suite.Equal("B", payload.SourceNodeID)
	suite.Equal(2, payload.RootLevel)
	suite.Require().Len(payload.Items, 2)

	// The root's parent (A) is outside the subtree, so its parent code is
	// empty; C's parent (B) is inside, so the code is recorded.
	suite.Equal("E-A-B", payload.Items[0].Code)
	suite.Empty(payload.Items[0].ParentCode)
	suite.Equal("E-A-B-C", payload.Items[1].Code)
	suite.Equal("E-A-B", payload.Items[1].ParentCode)
}

func (suite *ClipboardServiceTestSuite) TestPasteCopy_RecreatesUnderAnchor() {
	ctx := context.Background()
	nodes := sampleForest()
	e := nodes[1]

	payload := domain.ClipboardPayload{
		Mode:         domain.ClipboardCopy,
		SourceNodeID: "B",
		Family:       domain.FamilySubject,
		Category:     domain.CategoryExpense,
		RootLevel:    2,
		Items: []domain.ClipboardItem{
			{OriginalID: "B", Code: "E-A-B", Name: "B", Level: 2},
			{OriginalID: "C", Code: "E-A-B-C", Name: "C", Level: 3, ParentCode: "E-A-B"},
		},
	}

	suite.mockNodeRepo.On("FindNodeByID", ctx, "E").Return(&e, nil).Once()
	suite.mockNodeRepo.On("ListNodes", ctx, domain.FamilySubject, domain.Category("")).Return(nodes, nil).Once()

	var savedCopies []domain.Node
	suite.mockNodeRepo.On("SaveNode", ctx, mock.AnythingOfType("domain.Node")).
		Run(func(args mock.Arguments) {
			savedCopies = append(savedCopies, args.Get(1).(domain.Node))
		}).Return(nil).Twice()

	result, err := suite.service.Paste(ctx, payload, "E", "tester")

	suite.Require().NoError(err)
	suite.False(result.Relocated)
	suite.Equal(2, result.CreatedCount)
	suite.Require().Len(savedCopies, 2)

	// The copied root attaches to the anchor at level 2; its child follows
	// under the fresh ID, and both codes collide with the originals so they
	// get suffixed.
	newRoot := savedCopies[0]
	newChild := savedCopies[1]
	suite.Equal("E", newRoot.ParentNodeID)
	suite.Equal(2, newRoot.Level)
	suite.Equal("E-A-B_1", newRoot.Code)
	suite.NotEqual("B", newRoot.NodeID)
	suite.Equal(result.NewRootID, newRoot.NodeID)

	suite.Equal(newRoot.NodeID, newChild.ParentNodeID)
	suite.Equal(3, newChild.Level)
	suite.Equal("E-A-B-C_1", newChild.Code)
}

func (suite *ClipboardServiceTestSuite) TestPasteCopy_LeafAnchorRetargetsToParent() {
	ctx := context.Background()
	nodes := sampleForest()
	// Leaf at max depth under C.
	leaf := subjectNode("L", "C", 4, domain.CategoryExpense, "E-L", "Leaf")
	c := nodes[4]
	all := append(nodes, leaf)

	payload := domain.ClipboardPayload{
		Mode:         domain.ClipboardCopy,
		SourceNodeID: "D",
		Family:       domain.FamilySubject,
		Category:     domain.CategoryExpense,
		RootLevel:    2,
		Items: []domain.ClipboardItem{
			{OriginalID: "D", Code: "E-A-D", Name: "D", Level: 2},
		},
	}

	suite.mockNodeRepo.On("FindNodeByID", ctx, "L").Return(&leaf, nil).Once()
	suite.mockNodeRepo.On("FindNodeByID", ctx, "C").Return(&c, nil).Once()
	suite.mockNodeRepo.On("ListNodes", ctx, domain.FamilySubject, domain.Category("")).Return(all, nil).Once()
	suite.mockNodeRepo.On("SaveNode", ctx, mock.MatchedBy(func(n domain.Node) bool {
		return n.ParentNodeID == "C" && n.Level == 4
	})).Return(nil).Once()

	result, err := suite.service.Paste(ctx, payload, "L", "tester")

	suite.Require().NoError(err)
	suite.Equal(1, result.CreatedCount)
	suite.mockNodeRepo.AssertExpectations(suite.T())
}

func (suite *ClipboardServiceTestSuite) TestPasteCopy_DepthOverflowRejectedBeforeWrites() {
	ctx := context.Background()
	nodes := sampleForest()
	c := nodes[4] // level 3

	payload := domain.ClipboardPayload{
		Mode:         domain.ClipboardCopy,
		SourceNodeID: "B",
		Family:       domain.FamilySubject,
		Category:     domain.CategoryExpense,
		RootLevel:    2,
		Items: []domain.ClipboardItem{
			{OriginalID: "B", Code: "E-A-B", Name: "B", Level: 2},
			{OriginalID: "C", Code: "E-A-B-C", Name: "C", Level: 3, ParentCode: "E-A-B"},
		},
	}

	suite.mockNodeRepo.On("FindNodeByID", ctx, "C").Return(&c, nil).Once()

	// Anchor at level 3 puts the copied root at 4 and its child at 5.
	result, err := suite.service.Paste(ctx, payload, "C", "tester")

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrDepthExceeded)
	suite.mockNodeRepo.AssertNotCalled(suite.T(), "SaveNode", mock.Anything, mock.Anything)
}

func (suite *ClipboardServiceTestSuite) TestPasteCopy_EmptyPayload() {
	ctx := context.Background()

	result, err := suite.service.Paste(ctx, domain.ClipboardPayload{Mode: domain.ClipboardCopy}, "", "tester")

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ClipboardServiceTestSuite) TestPasteCopy_PartialFailure() {
	ctx := context.Background()
	nodes := sampleForest()
	storeErr := assert.AnError

	payload := domain.ClipboardPayload{
		Mode:         domain.ClipboardCopy,
		SourceNodeID: "B",
		Family:       domain.FamilySubject,
		Category:     domain.CategoryExpense,
		RootLevel:    1,
		Items: []domain.ClipboardItem{
			{OriginalID: "B", Code: "FRESH-1", Name: "B", Level: 1},
			{OriginalID: "C", Code: "FRESH-2", Name: "C", Level: 2, ParentCode: "FRESH-1"},
		},
	}

	suite.mockNodeRepo.On("ListNodes", ctx, domain.FamilySubject, domain.Category("")).Return(nodes, nil).Once()
	suite.mockNodeRepo.On("SaveNode", ctx, mock.MatchedBy(func(n domain.Node) bool {
		return n.Code == "FRESH-1"
	})).Return(nil).Once()
	suite.mockNodeRepo.On("SaveNode", ctx, mock.MatchedBy(func(n domain.Node) bool {
		return n.Code == "FRESH-2"
	})).Return(storeErr).Once()

	result, err := suite.service.Paste(ctx, payload, "", "tester")

	suite.Require().Error(err)
	suite.Nil(result)
	var pf *apperrors.PartialFailureError
	suite.Require().ErrorAs(err, &pf)
	suite.Equal(1, pf.Completed)
	suite.Equal(2, pf.Total)
}

func (suite *ClipboardServiceTestSuite) TestPasteCut_DegradesToRelocation() {
	ctx := context.Background()
	nodes := sampleForest()
	e := nodes[1]
	b := nodes[2]

	payload := domain.ClipboardPayload{
		Mode:         domain.ClipboardCut,
		SourceNodeID: "B",
		Family:       domain.FamilySubject,
		Category:     domain.CategoryExpense,
		RootLevel:    2,
		Items: []domain.ClipboardItem{
			{OriginalID: "B", Code: "E-A-B", Name: "B", Level: 2},
			{OriginalID: "C", Code: "E-A-B-C", Name: "C", Level: 3, ParentCode: "E-A-B"},
		},
	}

	suite.mockNodeRepo.On("FindNodeByID", ctx, "E").Return(&e, nil).Once()
	suite.mockNodeRepo.On("FindNodeByID", ctx, "B").Return(&b, nil).Twice() // pasteCut + Relocate
	// Once for the descendant guard, once inside Relocate.
	suite.mockNodeRepo.On("ListNodes", ctx, domain.FamilySubject, domain.CategoryExpense).Return(nodes, nil).Twice()

	suite.mockNodeRepo.On("PatchNode", ctx, "B", mock.MatchedBy(func(p portsrepo.NodePatch) bool {
		return p.ParentNodeID != nil && *p.ParentNodeID == "E" && p.Level != nil && *p.Level == 2
	})).Return(nil).Once()
	suite.mockNodeRepo.On("PatchNode", ctx, "C", mock.MatchedBy(func(p portsrepo.NodePatch) bool {
		return p.Level != nil && *p.Level == 3
	})).Return(nil).Once()

	result, err := suite.service.Paste(ctx, payload, "E", "tester")

	suite.Require().NoError(err)
	suite.True(result.Relocated)
	suite.Equal(0, result.CreatedCount)
	suite.Equal("B", result.NewRootID)
	suite.mockNodeRepo.AssertNotCalled(suite.T(), "SaveNode", mock.Anything, mock.Anything)
}

func (suite *ClipboardServiceTestSuite) TestPasteCut_IntoOwnSubtreeRejected() {
	ctx := context.Background()
	nodes := sampleForest()
	c := nodes[4]
	b := nodes[2]

	payload := domain.ClipboardPayload{
		Mode:         domain.ClipboardCut,
		SourceNodeID: "B",
		Family:       domain.FamilySubject,
		Category:     domain.CategoryExpense,
		RootLevel:    2,
		Items: []domain.ClipboardItem{
			{OriginalID: "B", Code: "E-A-B", Name: "B", Level: 2},
		},
	}

	suite.mockNodeRepo.On("FindNodeByID", ctx, "C").Return(&c, nil).Once()
	suite.mockNodeRepo.On("FindNodeByID", ctx, "B").Return(&b, nil).Once()
	suite.mockNodeRepo.On("ListNodes", ctx, domain.FamilySubject, domain.CategoryExpense).Return(nodes, nil).Once()

	result, err := suite.service.Paste(ctx, payload, "C", "tester")

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrCyclicMove)
	suite.mockNodeRepo.AssertNotCalled(suite.T(), "PatchNode", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ClipboardServiceTestSuite) TestPasteCut_SameLocationRejected() {
	ctx := context.Background()
	nodes := sampleForest()
	a := nodes[0]
	b := nodes[2]

	payload := domain.ClipboardPayload{
		Mode:         domain.ClipboardCut,
		SourceNodeID: "B",
		Family:       domain.FamilySubject,
		Category:     domain.CategoryExpense,
		RootLevel:    2,
		Items: []domain.ClipboardItem{
			{OriginalID: "B", Code: "E-A-B", Name: "B", Level: 2},
		},
	}

	suite.mockNodeRepo.On("FindNodeByID", ctx, "A").Return(&a, nil).Once()
	suite.mockNodeRepo.On("FindNodeByID", ctx, "B").Return(&b, nil).Once()
	suite.mockNodeRepo.On("ListNodes", ctx, domain.FamilySubject, domain.CategoryExpense).Return(nodes, nil).Once()

	result, err := suite.service.Paste(ctx, payload, "A", "tester")

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ClipboardServiceTestSuite) TestPaste_CategoryMismatchRejected() {
	ctx := context.Background()
	incomeAnchor := domain.Node{
		NodeID:   "I",
		Family:   domain.FamilySubject,
		Category: domain.CategoryIncome,
		Level:    1,
	}

	payload := domain.ClipboardPayload{
		Mode:         domain.ClipboardCopy,
		SourceNodeID: "B",
		Family:       domain.FamilySubject,
		Category:     domain.CategoryExpense,
		RootLevel:    2,
		Items: []domain.ClipboardItem{
			{OriginalID: "B", Code: "E-A-B", Name: "B", Level: 2},
		},
	}

	suite.mockNodeRepo.On("FindNodeByID", ctx, "I").Return(&incomeAnchor, nil).Once()

	result, err := suite.service.Paste(ctx, payload, "I", "tester")

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestClipboardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ClipboardServiceTestSuite))
}
