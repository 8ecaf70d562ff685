package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/stallchain/internal/core/domain"
	portssvc "github.com/SscSPs/stallchain/internal/core/ports/services"
	"github.com/SscSPs/stallchain/internal/dto"
	"github.com/SscSPs/stallchain/internal/middleware"
	"github.com/gin-gonic/gin"
)

// stallHandler handles HTTP requests related to stalls.
type stallHandler struct {
	stallService portssvc.StallSvcFacade
}

// newStallHandler creates a new stallHandler.
func newStallHandler(ss portssvc.StallSvcFacade) *stallHandler {
	return &stallHandler{
		stallService: ss,
	}
}

// registerStallRoutes registers routes for managing the stalls of the chain.
func registerStallRoutes(rg *gin.RouterGroup, stallService portssvc.StallSvcFacade) {
	h := newStallHandler(stallService)

	stalls := rg.Group("/stalls")
	{
		stalls.GET("", h.listStalls)
		stalls.GET("/:id", h.getStall)
		stalls.POST("", middleware.RequireRoles(domain.RoleOwner, domain.RoleManager), h.createStall)
		stalls.PUT("/:id", middleware.RequireRoles(domain.RoleOwner, domain.RoleManager), h.updateStall)
		stalls.DELETE("/:id", middleware.RequireRoles(domain.RoleOwner), h.deactivateStall)
	}
}

// listStallsQuery holds the query parameters of the stall listing.
type listStallsQuery struct {
	IncludeInactive bool `form:"includeInactive"`
	Limit           int  `form:"limit,default=20" binding:"gte=0,lte=100"`
	Offset          int  `form:"offset,default=0" binding:"gte=0"`
}

// createStall godoc
// @Summary Open a new stall
// @Description Creates a new stall. Owners and managers only.
// @Tags stalls
// @Accept  json
// @Produce  json
// @Param   stall body dto.CreateStallRequest true "Stall details"
// @Success 201 {object} dto.StallResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Stall code already in use"
// @Security BearerAuth
// @Router /stalls [post]
func (h *stallHandler) createStall(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.CreateStallRequest
	if !bindJSON(c, &req) {
		return
	}

	logger := middleware.GetLoggerFromContext(c).With(slog.String("stall_code", req.Code))
	logger.Info("Received request to create stall")

	stall, err := h.stallService.CreateStall(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, err, "Failed to create stall")
		return
	}

	logger.Info("Stall created successfully", slog.String("stall_id", stall.StallID))
	c.JSON(http.StatusCreated, dto.ToStallResponse(stall))
}

// listStalls godoc
// @Summary List stalls
// @Description Lists stalls ordered by name. Closed stalls are hidden unless includeInactive is set.
// @Tags stalls
// @Produce  json
// @Param includeInactive query bool false "Include closed stalls"
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListStallsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /stalls [get]
func (h *stallHandler) listStalls(c *gin.Context) {
	var q listStallsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	stalls, err := h.stallService.ListStalls(c.Request.Context(), q.IncludeInactive, q.Limit, q.Offset)
	if err != nil {
		respondError(c, err, "Failed to list stalls")
		return
	}
	c.JSON(http.StatusOK, dto.ToListStallsResponse(stalls))
}

// getStall godoc
// @Summary Get a stall
// @Tags stalls
// @Produce  json
// @Param   id path string true "Stall ID"
// @Success 200 {object} dto.StallResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /stalls/{id} [get]
func (h *stallHandler) getStall(c *gin.Context) {
	stall, err := h.stallService.GetStallByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve stall")
		return
	}
	c.JSON(http.StatusOK, dto.ToStallResponse(stall))
}

// updateStall godoc
// @Summary Update a stall
// @Tags stalls
// @Accept  json
// @Produce  json
// @Param   id path string true "Stall ID"
// @Param   stall body dto.UpdateStallRequest true "Fields to update"
// @Success 200 {object} dto.StallResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Version conflict"
// @Security BearerAuth
// @Router /stalls/{id} [put]
func (h *stallHandler) updateStall(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.UpdateStallRequest
	if !bindJSON(c, &req) {
		return
	}
	stall, err := h.stallService.UpdateStall(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, err, "Failed to update stall")
		return
	}
	c.JSON(http.StatusOK, dto.ToStallResponse(stall))
}

// deactivateStall godoc
// @Summary Close a stall
// @Description Soft deletes a stall. Owners only.
// @Tags stalls
// @Param   id path string true "Stall ID"
// @Param   expectedVersion query int false "Refuse the change unless the stall is at this version"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Version conflict"
// @Security BearerAuth
// @Router /stalls/{id} [delete]
func (h *stallHandler) deactivateStall(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	expected, ok := expectedVersionQuery(c)
	if !ok {
		return
	}
	if err := h.stallService.DeactivateStall(c.Request.Context(), c.Param("id"), expected, actor); err != nil {
		respondError(c, err, "Failed to close stall")
		return
	}
	middleware.GetLoggerFromContext(c).Info("Stall closed", slog.String("stall_id", c.Param("id")))
	c.Status(http.StatusNoContent)
}
