package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/stallchain/internal/core/ports/services"
	"github.com/SscSPs/stallchain/internal/dto"
	"github.com/SscSPs/stallchain/internal/middleware"
	"github.com/gin-gonic/gin"
)

type stallPerformanceHandler struct {
	scorecardService portssvc.StallPerformanceSvcFacade
}

func newStallPerformanceHandler(ss portssvc.StallPerformanceSvcFacade) *stallPerformanceHandler {
	return &stallPerformanceHandler{scorecardService: ss}
}

func registerStallPerformanceRoutes(rg *gin.RouterGroup, scorecardService portssvc.StallPerformanceSvcFacade) {
	h := newStallPerformanceHandler(scorecardService)
	approvers := middleware.RequireRoles(middleware.ApproverRoles...)

	scorecards := rg.Group("/stall-performance")
	{
		scorecards.GET("", h.listScorecards)
		scorecards.POST("", h.createScorecard)
		scorecards.GET("/:id", h.getScorecard)
		scorecards.PUT("/:id", h.updateScorecard)
		scorecards.POST("/:id/calculate", h.updateScorecard)
		scorecards.POST("/:id/submit", h.submitScorecard)
		scorecards.POST("/:id/review", approvers, h.reviewScorecard)
		scorecards.POST("/:id/approve", approvers, h.approveScorecard)
		scorecards.POST("/:id/archive", approvers, h.archiveScorecard)
	}
}

// listScorecards godoc
// @Summary List stall scorecards
// @Tags stall-performance
// @Produce  json
// @Param stallID query string false "Filter by stall"
// @Param status query string false "Filter by status"
// @Param from query string false "Period starting on or after (YYYY-MM-DD)"
// @Param to query string false "Period starting on or before (YYYY-MM-DD)"
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListResponse[domain.StallPerformance]
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /stall-performance [get]
func (h *stallPerformanceHandler) listScorecards(c *gin.Context) {
	params, ok := bindList(c)
	if !ok {
		return
	}
	filter := params.ToFilter()
	scorecards, err := h.scorecardService.ListScorecards(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "Failed to list scorecards")
		return
	}
	c.JSON(http.StatusOK, dto.NewListResponse(scorecards, filter))
}

// getScorecard godoc
// @Summary Get a stall scorecard
// @Tags stall-performance
// @Produce  json
// @Param   id path string true "Scorecard ID"
// @Success 200 {object} domain.StallPerformance
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /stall-performance/{id} [get]
func (h *stallPerformanceHandler) getScorecard(c *gin.Context) {
	scorecard, err := h.scorecardService.GetScorecard(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve scorecard")
		return
	}
	c.JSON(http.StatusOK, scorecard)
}

// createScorecard godoc
// @Summary Score a stall for a period
// @Description With fromOrders set, sales figures are aggregated from the stall's delivered orders.
// @Tags stall-performance
// @Accept  json
// @Produce  json
// @Param   scorecard body dto.CreateScorecardRequest true "Period and metrics"
// @Success 201 {object} domain.StallPerformance
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /stall-performance [post]
func (h *stallPerformanceHandler) createScorecard(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.CreateScorecardRequest
	if !bindJSON(c, &req) {
		return
	}
	scorecard, err := h.scorecardService.CreateScorecard(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, err, "Failed to create scorecard")
		return
	}
	c.JSON(http.StatusCreated, scorecard)
}

// updateScorecard godoc
// @Summary Replace the metrics of a draft scorecard and rescore it
// @Tags stall-performance
// @Accept  json
// @Produce  json
// @Param   id path string true "Scorecard ID"
// @Param   metrics body dto.UpdateScorecardRequest true "Metrics"
// @Success 200 {object} domain.StallPerformance
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /stall-performance/{id}/calculate [post]
func (h *stallPerformanceHandler) updateScorecard(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.UpdateScorecardRequest
	if !bindJSON(c, &req) {
		return
	}
	scorecard, err := h.scorecardService.UpdateScorecard(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, err, "Failed to update scorecard")
		return
	}
	c.JSON(http.StatusOK, scorecard)
}

// submitScorecard godoc
// @Summary Submit a scorecard for review
// @Tags stall-performance
// @Accept  json
// @Produce  json
// @Param   id path string true "Scorecard ID"
// @Param   body body dto.TransitionRequest false "Version guard"
// @Success 200 {object} domain.StallPerformance
// @Failure 409 {object} ErrorResponse "Invalid transition"
// @Security BearerAuth
// @Router /stall-performance/{id}/submit [post]
func (h *stallPerformanceHandler) submitScorecard(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.TransitionRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	scorecard, err := h.scorecardService.SubmitScorecard(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, err, "Failed to submit scorecard")
		return
	}
	c.JSON(http.StatusOK, scorecard)
}

// reviewScorecard godoc
// @Summary Review a submitted scorecard
// @Tags stall-performance
// @Accept  json
// @Produce  json
// @Param   id path string true "Scorecard ID"
// @Param   body body dto.ApprovalRequest false "Review comments"
// @Success 200 {object} domain.StallPerformance
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Invalid transition"
// @Security BearerAuth
// @Router /stall-performance/{id}/review [post]
func (h *stallPerformanceHandler) reviewScorecard(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.ApprovalRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	scorecard, err := h.scorecardService.ReviewScorecard(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, err, "Failed to review scorecard")
		return
	}
	c.JSON(http.StatusOK, scorecard)
}

// approveScorecard godoc
// @Summary Approve a reviewed scorecard
// @Tags stall-performance
// @Accept  json
// @Produce  json
// @Param   id path string true "Scorecard ID"
// @Param   body body dto.ApprovalRequest false "Approval comments"
// @Success 200 {object} domain.StallPerformance
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Invalid transition"
// @Security BearerAuth
// @Router /stall-performance/{id}/approve [post]
func (h *stallPerformanceHandler) approveScorecard(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.ApprovalRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	scorecard, err := h.scorecardService.ApproveScorecard(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, err, "Failed to approve scorecard")
		return
	}
	c.JSON(http.StatusOK, scorecard)
}

// archiveScorecard godoc
// @Summary Archive an approved scorecard
// @Tags stall-performance
// @Accept  json
// @Produce  json
// @Param   id path string true "Scorecard ID"
// @Param   body body dto.TransitionRequest false "Version guard"
// @Success 200 {object} domain.StallPerformance
// @Failure 409 {object} ErrorResponse "Invalid transition"
// @Security BearerAuth
// @Router /stall-performance/{id}/archive [post]
func (h *stallPerformanceHandler) archiveScorecard(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.TransitionRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	scorecard, err := h.scorecardService.ArchiveScorecard(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, err, "Failed to archive scorecard")
		return
	}
	c.JSON(http.StatusOK, scorecard)
}
