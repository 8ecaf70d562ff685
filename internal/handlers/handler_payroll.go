package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/stallchain/internal/core/ports/services"
	"github.com/SscSPs/stallchain/internal/dto"
	"github.com/SscSPs/stallchain/internal/middleware"
	"github.com/gin-gonic/gin"
)

type payrollHandler struct {
	payrollService portssvc.PayrollSvcFacade
}

func newPayrollHandler(ps portssvc.PayrollSvcFacade) *payrollHandler {
	return &payrollHandler{payrollService: ps}
}

// registerPayrollRoutes registers payroll routes. Salaries are visible to
// approvers only.
func registerPayrollRoutes(rg *gin.RouterGroup, payrollService portssvc.PayrollSvcFacade) {
	h := newPayrollHandler(payrollService)

	payrolls := rg.Group("/payrolls", middleware.RequireRoles(middleware.ApproverRoles...))
	{
		payrolls.GET("", h.listPayrolls)
		payrolls.POST("", h.createPayroll)
		payrolls.GET("/:id", h.getPayroll)
		payrolls.PUT("/:id", h.updatePayroll)
		payrolls.DELETE("/:id", h.deletePayroll)

		payrolls.POST("/:id/submit", h.submitPayroll)
		payrolls.POST("/:id/approve", h.approvePayroll)
		payrolls.POST("/:id/process", h.processPayroll)
		payrolls.POST("/:id/pay", h.markPaid)
		payrolls.POST("/:id/cancel", h.cancelPayroll)
	}
}

// listPayrolls godoc
// @Summary List payroll records
// @Tags payrolls
// @Produce  json
// @Param stallID query string false "Filter by stall"
// @Param status query string false "Filter by status"
// @Param from query string false "Pay period starting on or after (YYYY-MM-DD)"
// @Param to query string false "Pay period starting on or before (YYYY-MM-DD)"
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListResponse[domain.Payroll]
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /payrolls [get]
func (h *payrollHandler) listPayrolls(c *gin.Context) {
	params, ok := bindList(c)
	if !ok {
		return
	}
	filter := params.ToFilter()
	payrolls, err := h.payrollService.ListPayrolls(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "Failed to list payrolls")
		return
	}
	c.JSON(http.StatusOK, dto.NewListResponse(payrolls, filter))
}

// getPayroll godoc
// @Summary Get a payroll record
// @Tags payrolls
// @Produce  json
// @Param   id path string true "Payroll ID"
// @Success 200 {object} domain.Payroll
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /payrolls/{id} [get]
func (h *payrollHandler) getPayroll(c *gin.Context) {
	payroll, err := h.payrollService.GetPayroll(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve payroll")
		return
	}
	c.JSON(http.StatusOK, payroll)
}

// createPayroll godoc
// @Summary Draft a payroll record
// @Description Computes gross, deductions and net pay for one employee and period.
// @Tags payrolls
// @Accept  json
// @Produce  json
// @Param   payroll body dto.CreatePayrollRequest true "Payroll inputs"
// @Success 201 {object} domain.Payroll
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Period already has a payroll"
// @Security BearerAuth
// @Router /payrolls [post]
func (h *payrollHandler) createPayroll(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.CreatePayrollRequest
	if !bindJSON(c, &req) {
		return
	}
	payroll, err := h.payrollService.CreatePayroll(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, err, "Failed to create payroll")
		return
	}
	c.JSON(http.StatusCreated, payroll)
}

// updatePayroll godoc
// @Summary Update a draft payroll record
// @Tags payrolls
// @Accept  json
// @Produce  json
// @Param   id path string true "Payroll ID"
// @Param   payroll body dto.UpdatePayrollRequest true "Payroll inputs"
// @Success 200 {object} domain.Payroll
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /payrolls/{id} [put]
func (h *payrollHandler) updatePayroll(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.UpdatePayrollRequest
	if !bindJSON(c, &req) {
		return
	}
	payroll, err := h.payrollService.UpdatePayroll(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, err, "Failed to update payroll")
		return
	}
	c.JSON(http.StatusOK, payroll)
}

// deletePayroll godoc
// @Summary Delete a draft payroll record
// @Tags payrolls
// @Param   id path string true "Payroll ID"
// @Param   expectedVersion query int false "Refuse the change unless the record is at this version"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /payrolls/{id} [delete]
func (h *payrollHandler) deletePayroll(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	expected, ok := expectedVersionQuery(c)
	if !ok {
		return
	}
	if err := h.payrollService.DeletePayroll(c.Request.Context(), c.Param("id"), expected, actor); err != nil {
		respondError(c, err, "Failed to delete payroll")
		return
	}
	c.Status(http.StatusNoContent)
}

// submitPayroll godoc
// @Summary Submit a payroll for approval
// @Tags payrolls
// @Accept  json
// @Produce  json
// @Param   id path string true "Payroll ID"
// @Param   body body dto.TransitionRequest false "Version guard"
// @Success 200 {object} domain.Payroll
// @Failure 409 {object} ErrorResponse "Invalid transition"
// @Security BearerAuth
// @Router /payrolls/{id}/submit [post]
func (h *payrollHandler) submitPayroll(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.TransitionRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	payroll, err := h.payrollService.SubmitPayroll(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, err, "Failed to submit payroll")
		return
	}
	c.JSON(http.StatusOK, payroll)
}

// approvePayroll godoc
// @Summary Approve a submitted payroll
// @Tags payrolls
// @Accept  json
// @Produce  json
// @Param   id path string true "Payroll ID"
// @Param   body body dto.ApprovalRequest false "Approval comments"
// @Success 200 {object} domain.Payroll
// @Failure 409 {object} ErrorResponse "Invalid transition"
// @Security BearerAuth
// @Router /payrolls/{id}/approve [post]
func (h *payrollHandler) approvePayroll(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.ApprovalRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	payroll, err := h.payrollService.ApprovePayroll(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, err, "Failed to approve payroll")
		return
	}
	c.JSON(http.StatusOK, payroll)
}

// processPayroll godoc
// @Summary Start paying an approved payroll
// @Tags payrolls
// @Accept  json
// @Produce  json
// @Param   id path string true "Payroll ID"
// @Param   payment body dto.PaymentRequest false "Payment details"
// @Success 200 {object} domain.Payroll
// @Failure 409 {object} ErrorResponse "Invalid transition"
// @Security BearerAuth
// @Router /payrolls/{id}/process [post]
func (h *payrollHandler) processPayroll(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.PaymentRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	payroll, err := h.payrollService.ProcessPayroll(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, err, "Failed to process payroll")
		return
	}
	c.JSON(http.StatusOK, payroll)
}

// markPaid godoc
// @Summary Mark a payroll as paid
// @Tags payrolls
// @Accept  json
// @Produce  json
// @Param   id path string true "Payroll ID"
// @Param   payment body dto.PaymentRequest false "Payment details"
// @Success 200 {object} domain.Payroll
// @Failure 409 {object} ErrorResponse "Invalid transition"
// @Security BearerAuth
// @Router /payrolls/{id}/pay [post]
func (h *payrollHandler) markPaid(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.PaymentRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	payroll, err := h.payrollService.MarkPayrollPaid(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, err, "Failed to mark payroll paid")
		return
	}
	c.JSON(http.StatusOK, payroll)
}

// cancelPayroll godoc
// @Summary Cancel a payroll
// @Tags payrolls
// @Accept  json
// @Produce  json
// @Param   id path string true "Payroll ID"
// @Param   reason body dto.ReasonRequest true "Cancellation reason"
// @Success 200 {object} domain.Payroll
// @Failure 409 {object} ErrorResponse "Invalid transition"
// @Security BearerAuth
// @Router /payrolls/{id}/cancel [post]
func (h *payrollHandler) cancelPayroll(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.ReasonRequest
	if !bindJSON(c, &req) {
		return
	}
	payroll, err := h.payrollService.CancelPayroll(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, err, "Failed to cancel payroll")
		return
	}
	c.JSON(http.StatusOK, payroll)
}
