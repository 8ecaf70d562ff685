package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/stallchain/internal/apperrors"
	"github.com/SscSPs/stallchain/internal/core/domain"
	portssvc "github.com/SscSPs/stallchain/internal/core/ports/services"
	"github.com/SscSPs/stallchain/internal/core/services"
	"github.com/SscSPs/stallchain/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type StallServiceTestSuite struct {
	suite.Suite
	mockRepo *MockStallRepository
	service  portssvc.StallSvcFacade
}

func (suite *StallServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockStallRepository)
	suite.service = services.NewStallService(suite.mockRepo, services.WithClock(fixedClock))
}

func openStall() *domain.Stall {
	return &domain.Stall{
		StallID:   "stall-1",
		Name:      "MG Road",
		Code:      "MGR01",
		IsActive:  true,
		Versioned: domain.Versioned{Version: 3},
	}
}

func (suite *StallServiceTestSuite) TestCreateStall_Success() {
	ctx := context.Background()
	req := dto.CreateStallRequest{Name: " Koramangala ", Code: "kor01", City: "Bengaluru"}

	suite.mockRepo.On("SaveStall", ctx, mock.MatchedBy(func(s domain.Stall) bool {
		return s.Code == "KOR01" && s.Name == "Koramangala" && s.Version == 1 && s.IsActive
	})).Return(nil).Once()

	stall, err := suite.service.CreateStall(ctx, req, testManager)

	suite.Require().NoError(err)
	suite.NotEmpty(stall.StallID)
	suite.Equal(testManager.UserID, stall.CreatedBy)
	suite.Equal(testNow, stall.CreatedAt)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *StallServiceTestSuite) TestCreateStall_StaffForbidden() {
	stall, err := suite.service.CreateStall(context.Background(), dto.CreateStallRequest{Name: "X", Code: "X1"}, testStaff)

	suite.Nil(stall)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveStall", mock.Anything, mock.Anything)
}

func (suite *StallServiceTestSuite) TestUpdateStall_BumpsVersion() {
	ctx := context.Background()
	city := "Mysuru"

	suite.mockRepo.On("FindStallByID", ctx, "stall-1").Return(openStall(), nil).Once()
	suite.mockRepo.On("UpdateStall", ctx, mock.MatchedBy(func(s domain.Stall) bool {
		return s.City == city && s.Version == 4 && s.LastUpdatedBy == testManager.UserID
	})).Return(nil).Once()

	stall, err := suite.service.UpdateStall(ctx, "stall-1", dto.UpdateStallRequest{City: &city}, testManager)

	suite.Require().NoError(err)
	suite.Equal(int64(4), stall.Version)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *StallServiceTestSuite) TestUpdateStall_StaleVersion() {
	ctx := context.Background()
	city := "Mysuru"
	req := dto.UpdateStallRequest{City: &city, VersionGuard: dto.VersionGuard{ExpectedVersion: int64Ptr(2)}}

	suite.mockRepo.On("FindStallByID", ctx, "stall-1").Return(openStall(), nil).Once()

	stall, err := suite.service.UpdateStall(ctx, "stall-1", req, testManager)

	suite.Nil(stall)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateStall", mock.Anything, mock.Anything)
}

func (suite *StallServiceTestSuite) TestDeactivateStall() {
	ctx := context.Background()

	err := suite.service.DeactivateStall(ctx, "stall-1", nil, testManager)
	suite.ErrorIs(err, apperrors.ErrForbidden)

	suite.mockRepo.On("FindStallByID", ctx, "stall-1").Return(openStall(), nil).Once()
	suite.mockRepo.On("UpdateStall", ctx, mock.MatchedBy(func(s domain.Stall) bool { return !s.IsActive })).Return(nil).Once()

	err = suite.service.DeactivateStall(ctx, "stall-1", nil, testOwner)
	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *StallServiceTestSuite) TestEnsureStallActive() {
	ctx := context.Background()
	closed := openStall()
	closed.IsActive = false

	suite.mockRepo.On("FindStallByID", ctx, "stall-1").Return(openStall(), nil).Once()
	suite.mockRepo.On("FindStallByID", ctx, "stall-2").Return(closed, nil).Once()
	suite.mockRepo.On("FindStallByID", ctx, "stall-3").Return(nil, apperrors.ErrNotFound).Once()

	suite.NoError(suite.service.EnsureStallActive(ctx, "stall-1"))
	suite.ErrorIs(suite.service.EnsureStallActive(ctx, "stall-2"), apperrors.ErrValidation)
	suite.ErrorIs(suite.service.EnsureStallActive(ctx, "stall-3"), apperrors.ErrNotFound)
	suite.ErrorIs(suite.service.EnsureStallActive(ctx, " "), apperrors.ErrValidation)
}

func TestStallService(t *testing.T) {
	suite.Run(t, new(StallServiceTestSuite))
}
