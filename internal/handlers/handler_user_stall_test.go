package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/SscSPs/stallchain/internal/apperrors"
	"github.com/SscSPs/stallchain/internal/core/domain"
	portssvc "github.com/SscSPs/stallchain/internal/core/ports/services"
	"github.com/SscSPs/stallchain/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserStallHandlerTestSuite struct {
	apiSuite
	mockUsers  *MockUserService
	mockStalls *MockStallService
}

func (suite *UserStallHandlerTestSuite) SetupTest() {
	suite.mockUsers = new(MockUserService)
	suite.mockStalls = new(MockStallService)
	suite.router = nil
	suite.services = &portssvc.ServiceContainer{User: suite.mockUsers, Stall: suite.mockStalls}
}

func (suite *UserStallHandlerTestSuite) TestGetMe() {
	suite.mockUsers.On("GetUserByID", mock.Anything, "u-staff").
		Return(&domain.User{UserID: "u-staff", Username: "tara01", Name: "Tara", Role: domain.RoleStaff, PasswordHash: "hash"}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/users/me", nil, actorOf(staffActor))

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.UserResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("tara01", resp.Username)
	suite.NotContains(w.Body.String(), "hash")
}

func (suite *UserStallHandlerTestSuite) TestGetUser_Access() {
	other := &domain.User{UserID: "u-other", Username: "ravi", Role: domain.RoleStaff}
	suite.mockUsers.On("GetUserByID", mock.Anything, "u-other").Return(other, nil)

	tests := []struct {
		name       string
		actor      domain.Actor
		wantStatus int
	}{
		{"staff reading another user", staffActor, http.StatusForbidden},
		{"manager reading another user", managerActor, http.StatusOK},
		{"owner reading another user", ownerActor, http.StatusOK},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			w := suite.do(http.MethodGet, "/api/v1/users/u-other", nil, actorOf(tt.actor))
			suite.Equal(tt.wantStatus, w.Code)
		})
	}
	suite.mockUsers.AssertNumberOfCalls(suite.T(), "GetUserByID", 2)
}

func (suite *UserStallHandlerTestSuite) TestListUsers_ApproversOnly() {
	suite.mockUsers.On("ListUsers", mock.Anything, 20, 0).Return([]domain.User{{UserID: "u-1"}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/users", nil, actorOf(staffActor))
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/users", nil, actorOf(managerActor))
	suite.Equal(http.StatusOK, w.Code)
	suite.mockUsers.AssertExpectations(suite.T())
}

func (suite *UserStallHandlerTestSuite) TestDeleteUser_OwnerOnly() {
	suite.mockUsers.On("DeleteUser", mock.Anything, "u-staff", ownerActor).Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/users/u-staff", nil, actorOf(managerActor))
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.do(http.MethodDelete, "/api/v1/users/u-staff", nil, actorOf(ownerActor))
	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *UserStallHandlerTestSuite) TestListStalls() {
	suite.mockStalls.On("ListStalls", mock.Anything, true, 50, 0).
		Return([]domain.Stall{{StallID: "stall-1", Name: "Koramangala", IsActive: true}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/stalls?includeInactive=true&limit=50", nil, actorOf(staffActor))
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	w = suite.do(http.MethodGet, "/api/v1/stalls?limit=101", nil, actorOf(staffActor))
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockStalls.AssertExpectations(suite.T())
}

func (suite *UserStallHandlerTestSuite) TestCreateStall_ManagerAllowedStaffForbidden() {
	body := `{"name":"Indiranagar","code":"IND","address":"100ft Road","city":"Bengaluru"}`
	suite.mockStalls.On("CreateStall", mock.Anything, mock.AnythingOfType("dto.CreateStallRequest"), managerActor).
		Return(&domain.Stall{StallID: "stall-2", Name: "Indiranagar", Code: "IND", IsActive: true}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/stalls", body, actorOf(staffActor))
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/stalls", body, actorOf(managerActor))
	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
	suite.mockStalls.AssertExpectations(suite.T())
}

func (suite *UserStallHandlerTestSuite) TestDeactivateStall() {
	suite.mockStalls.On("DeactivateStall", mock.Anything, "stall-1", mock.MatchedBy(func(v *int64) bool {
		return v != nil && *v == 4
	}), ownerActor).Return(apperrors.NewVersionConflictError("stall", "stall-1")).Once()

	w := suite.do(http.MethodDelete, "/api/v1/stalls/stall-1?expectedVersion=4", nil, actorOf(managerActor))
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.do(http.MethodDelete, "/api/v1/stalls/stall-1?expectedVersion=4", nil, actorOf(ownerActor))
	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(suite.errorBody(w), "modified by another request")
}

func TestUserStallHandler(t *testing.T) {
	suite.Run(t, new(UserStallHandlerTestSuite))
}
