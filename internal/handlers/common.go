package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/stallchain/internal/apperrors"
	"github.com/SscSPs/stallchain/internal/core/domain"
	"github.com/SscSPs/stallchain/internal/dto"
	"github.com/SscSPs/stallchain/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError maps err to its HTTP status. Client errors echo the error
// text; server errors are logged and answered with a generic message.
func respondError(c *gin.Context, err error, failure string) {
	logger := middleware.GetLoggerFromContext(c)
	status := apperrors.StatusCode(err)
	if status >= http.StatusInternalServerError {
		logger.Error(failure, slog.String("error", err.Error()))
		c.JSON(status, ErrorResponse{Error: failure})
		return
	}
	logger.Warn(failure, slog.String("error", err.Error()), slog.Int("status", status))
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

// bindJSON binds the request body into req, answering 400 on failure.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		middleware.GetLoggerFromContext(c).Warn("Failed to bind JSON", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return false
	}
	return true
}

// bindOptionalJSON binds the body when one was sent. Transition endpoints
// accept an empty body.
func bindOptionalJSON(c *gin.Context, req any) bool {
	if c.Request.Body == nil || c.Request.Body == http.NoBody || c.Request.ContentLength == 0 {
		return true
	}
	return bindJSON(c, req)
}

// bindList binds the shared list query parameters.
func bindList(c *gin.Context) (dto.ListParams, bool) {
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		middleware.GetLoggerFromContext(c).Warn("Failed to bind query parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return params, false
	}
	return params, true
}

// requireActor loads the authenticated caller, answering 401 when absent.
func requireActor(c *gin.Context) (domain.Actor, bool) {
	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		middleware.GetLoggerFromContext(c).Error("Actor not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return domain.Actor{}, false
	}
	return actor, true
}

// expectedVersionQuery reads the optional expectedVersion query parameter
// used by DELETE requests, which carry no body.
func expectedVersionQuery(c *gin.Context) (*int64, bool) {
	raw := c.Query("expectedVersion")
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 1 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "expectedVersion must be a positive integer"})
		return nil, false
	}
	return &v, true
}
