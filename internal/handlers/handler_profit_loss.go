package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/stallchain/internal/core/ports/services"
	"github.com/SscSPs/stallchain/internal/dto"
	"github.com/SscSPs/stallchain/internal/middleware"
	"github.com/gin-gonic/gin"
)

type profitLossHandler struct {
	reportService portssvc.ProfitLossSvcFacade
}

func newProfitLossHandler(rs portssvc.ProfitLossSvcFacade) *profitLossHandler {
	return &profitLossHandler{reportService: rs}
}

// registerProfitLossRoutes registers P/L report routes. Financial reports are
// restricted to approvers.
func registerProfitLossRoutes(rg *gin.RouterGroup, reportService portssvc.ProfitLossSvcFacade) {
	h := newProfitLossHandler(reportService)

	reports := rg.Group("/profit-loss", middleware.RequireRoles(middleware.ApproverRoles...))
	{
		reports.GET("", h.listReports)
		reports.POST("", h.createReport)
		reports.POST("/generate", h.generateReport)
		reports.GET("/:id", h.getReport)
		reports.DELETE("/:id", h.deleteReport)
		reports.POST("/:id/calculate", h.recalculateReport)

		reports.PUT("/:id/owner-share", h.setOwnerShare)
		reports.POST("/:id/investor-shares", h.addInvestorShare)
		reports.DELETE("/:id/investor-shares/:investorID", h.removeInvestorShare)

		reports.POST("/:id/finalize", h.finalizeReport)
		reports.POST("/:id/approve", h.approveReport)
		reports.POST("/:id/publish", h.publishReport)
	}
}

// listReports godoc
// @Summary List profit/loss reports
// @Tags profit-loss
// @Produce  json
// @Param stallID query string false "Filter by stall"
// @Param status query string false "Filter by status"
// @Param from query string false "Period starting on or after (YYYY-MM-DD)"
// @Param to query string false "Period starting on or before (YYYY-MM-DD)"
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListResponse[domain.ProfitLoss]
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /profit-loss [get]
func (h *profitLossHandler) listReports(c *gin.Context) {
	params, ok := bindList(c)
	if !ok {
		return
	}
	filter := params.ToFilter()
	reports, err := h.reportService.ListReports(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "Failed to list reports")
		return
	}
	c.JSON(http.StatusOK, dto.NewListResponse(reports, filter))
}

// getReport godoc
// @Summary Get a profit/loss report
// @Tags profit-loss
// @Produce  json
// @Param   id path string true "Report ID"
// @Success 200 {object} domain.ProfitLoss
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /profit-loss/{id} [get]
func (h *profitLossHandler) getReport(c *gin.Context) {
	report, err := h.reportService.GetReport(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// createReport godoc
// @Summary Create a report from entered figures
// @Tags profit-loss
// @Accept  json
// @Produce  json
// @Param   report body dto.CreateProfitLossRequest true "Period and figures"
// @Success 201 {object} domain.ProfitLoss
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /profit-loss [post]
func (h *profitLossHandler) createReport(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.CreateProfitLossRequest
	if !bindJSON(c, &req) {
		return
	}
	report, err := h.reportService.CreateReport(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, err, "Failed to create report")
		return
	}
	c.JSON(http.StatusCreated, report)
}

// generateReport godoc
// @Summary Generate a report from orders and expenses
// @Description Aggregates delivered orders and approved or paid expenses of the period.
// @Tags profit-loss
// @Accept  json
// @Produce  json
// @Param   report body dto.GenerateProfitLossRequest true "Period and adjustments"
// @Success 201 {object} domain.ProfitLoss
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /profit-loss/generate [post]
func (h *profitLossHandler) generateReport(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.GenerateProfitLossRequest
	if !bindJSON(c, &req) {
		return
	}
	report, err := h.reportService.GenerateReport(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, err, "Failed to generate report")
		return
	}
	c.JSON(http.StatusCreated, report)
}

// recalculateReport godoc
// @Summary Recalculate a draft report
// @Tags profit-loss
// @Accept  json
// @Produce  json
// @Param   id path string true "Report ID"
// @Param   adjustments body dto.RecalculateProfitLossRequest true "Adjustments"
// @Success 200 {object} domain.ProfitLoss
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /profit-loss/{id}/calculate [post]
func (h *profitLossHandler) recalculateReport(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.RecalculateProfitLossRequest
	if !bindJSON(c, &req) {
		return
	}
	report, err := h.reportService.RecalculateReport(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, err, "Failed to recalculate report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// deleteReport godoc
// @Summary Delete a draft report
// @Tags profit-loss
// @Param   id path string true "Report ID"
// @Param   expectedVersion query int false "Refuse the change unless the report is at this version"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /profit-loss/{id} [delete]
func (h *profitLossHandler) deleteReport(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	expected, ok := expectedVersionQuery(c)
	if !ok {
		return
	}
	if err := h.reportService.DeleteReport(c.Request.Context(), c.Param("id"), expected, actor); err != nil {
		respondError(c, err, "Failed to delete report")
		return
	}
	c.Status(http.StatusNoContent)
}

// setOwnerShare godoc
// @Summary Set the owner's share of net profit
// @Tags profit-loss
// @Accept  json
// @Produce  json
// @Param   id path string true "Report ID"
// @Param   share body dto.OwnerShareRequest true "Owner share percentage"
// @Success 200 {object} domain.ProfitLoss
// @Failure 400 {object} ErrorResponse "Shares exceed 100 percent"
// @Security BearerAuth
// @Router /profit-loss/{id}/owner-share [put]
func (h *profitLossHandler) setOwnerShare(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.OwnerShareRequest
	if !bindJSON(c, &req) {
		return
	}
	report, err := h.reportService.SetOwnerShare(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, err, "Failed to set owner share")
		return
	}
	c.JSON(http.StatusOK, report)
}

// addInvestorShare godoc
// @Summary Add an investor's share of net profit
// @Description Defaults to the investor's profit share percentage when none is given.
// @Tags profit-loss
// @Accept  json
// @Produce  json
// @Param   id path string true "Report ID"
// @Param   share body dto.InvestorShareRequest true "Investor share"
// @Success 200 {object} domain.ProfitLoss
// @Failure 400 {object} ErrorResponse "Shares exceed 100 percent"
// @Failure 404 {object} ErrorResponse "Investor not found"
// @Security BearerAuth
// @Router /profit-loss/{id}/investor-shares [post]
func (h *profitLossHandler) addInvestorShare(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.InvestorShareRequest
	if !bindJSON(c, &req) {
		return
	}
	report, err := h.reportService.AddInvestorShare(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, err, "Failed to add investor share")
		return
	}
	c.JSON(http.StatusOK, report)
}

// removeInvestorShare godoc
// @Summary Remove an investor's share
// @Tags profit-loss
// @Produce  json
// @Param   id path string true "Report ID"
// @Param   investorID path string true "Investor ID"
// @Param   expectedVersion query int false "Refuse the change unless the report is at this version"
// @Success 200 {object} domain.ProfitLoss
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /profit-loss/{id}/investor-shares/{investorID} [delete]
func (h *profitLossHandler) removeInvestorShare(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	expected, ok := expectedVersionQuery(c)
	if !ok {
		return
	}
	report, err := h.reportService.RemoveInvestorShare(c.Request.Context(), c.Param("id"), c.Param("investorID"), expected, actor)
	if err != nil {
		respondError(c, err, "Failed to remove investor share")
		return
	}
	c.JSON(http.StatusOK, report)
}

// finalizeReport godoc
// @Summary Finalize a draft report
// @Tags profit-loss
// @Accept  json
// @Produce  json
// @Param   id path string true "Report ID"
// @Param   body body dto.TransitionRequest false "Version guard"
// @Success 200 {object} domain.ProfitLoss
// @Failure 409 {object} ErrorResponse "Invalid transition"
// @Security BearerAuth
// @Router /profit-loss/{id}/finalize [post]
func (h *profitLossHandler) finalizeReport(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.TransitionRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	report, err := h.reportService.FinalizeReport(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, err, "Failed to finalize report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// approveReport godoc
// @Summary Approve a finalized report
// @Tags profit-loss
// @Accept  json
// @Produce  json
// @Param   id path string true "Report ID"
// @Param   body body dto.ApprovalRequest false "Approval comments"
// @Success 200 {object} domain.ProfitLoss
// @Failure 409 {object} ErrorResponse "Invalid transition"
// @Security BearerAuth
// @Router /profit-loss/{id}/approve [post]
func (h *profitLossHandler) approveReport(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.ApprovalRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	report, err := h.reportService.ApproveReport(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, err, "Failed to approve report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// publishReport godoc
// @Summary Publish an approved report
// @Tags profit-loss
// @Accept  json
// @Produce  json
// @Param   id path string true "Report ID"
// @Param   body body dto.TransitionRequest false "Version guard"
// @Success 200 {object} domain.ProfitLoss
// @Failure 409 {object} ErrorResponse "Invalid transition"
// @Security BearerAuth
// @Router /profit-loss/{id}/publish [post]
func (h *profitLossHandler) publishReport(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.TransitionRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	report, err := h.reportService.PublishReport(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, err, "Failed to publish report")
		return
	}
	c.JSON(http.StatusOK, report)
}
