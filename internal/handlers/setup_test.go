package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"time"

	"github.com/SscSPs/stallchain/internal/core/domain"
	portssvc "github.com/SscSPs/stallchain/internal/core/ports/services"
	"github.com/SscSPs/stallchain/internal/handlers"
	"github.com/SscSPs/stallchain/internal/platform/config"
	"github.com/SscSPs/stallchain/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

const testSecret = "test-secret-key-that-is-long-enough"

var (
	ownerActor      = domain.Actor{UserID: "u-owner", UserName: "Meera", UserRole: domain.RoleOwner}
	managerActor    = domain.Actor{UserID: "u-manager", UserName: "Ravi", UserRole: domain.RoleManager}
	staffActor      = domain.Actor{UserID: "u-staff", UserName: "Tara", UserRole: domain.RoleStaff}
	accountantActor = domain.Actor{UserID: "u-accounts", UserName: "Irfan", UserRole: domain.RoleAccountant}
)

// apiSuite serves requests through the real route table with mocked services.
type apiSuite struct {
	suite.Suite
	router   *gin.Engine
	services *portssvc.ServiceContainer
}

// serve builds the router lazily so that each test can install its mocks
// in services first.
func (s *apiSuite) serve(method, path string, body io.Reader, actor *domain.Actor, contentType string) *httptest.ResponseRecorder {
	if s.router == nil {
		gin.SetMode(gin.TestMode)
		s.Require().NoError(handlers.RegisterValidators())
		s.router = gin.New()
		cfg := &config.Config{JWTSecret: testSecret, IsProduction: true}
		handlers.RegisterRoutes(s.router, cfg, s.services, nil)
	}

	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if actor != nil {
		token, err := utils.GenerateJWT(*actor, testSecret, time.Hour, "test", time.Now())
		s.Require().NoError(err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *apiSuite) do(method, path string, payload any, actor *domain.Actor) *httptest.ResponseRecorder {
	if payload == nil {
		return s.serve(method, path, nil, actor, "")
	}
	var body []byte
	switch p := payload.(type) {
	case string:
		body = []byte(p)
	default:
		var err error
		body, err = json.Marshal(p)
		s.Require().NoError(err)
	}
	return s.serve(method, path, bytes.NewReader(body), actor, "application/json")
}

func (s *apiSuite) errorBody(w *httptest.ResponseRecorder) string {
	var resp handlers.ErrorResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Error
}

func actorOf(a domain.Actor) *domain.Actor {
	return &a
}
