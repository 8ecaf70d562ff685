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

// maxReceiptUpload bounds the multipart body; the file itself is capped at 10 MB.
const maxReceiptUpload = 11 << 20

type expenseHandler struct {
	expenseService portssvc.ExpenseSvcFacade
}

func newExpenseHandler(es portssvc.ExpenseSvcFacade) *expenseHandler {
	return &expenseHandler{expenseService: es}
}

func registerExpenseRoutes(rg *gin.RouterGroup, expenseService portssvc.ExpenseSvcFacade) {
	h := newExpenseHandler(expenseService)
	approvers := middleware.RequireRoles(middleware.ApproverRoles...)

	expenses := rg.Group("/expenses")
	{
		expenses.GET("/types", h.listTypes)
		expenses.POST("/recurring/run", middleware.RequireRoles(domain.RoleOwner), h.runRecurring)

		expenses.GET("", h.listExpenses)
		expenses.POST("", h.createExpense)
		expenses.GET("/:id", h.getExpense)
		expenses.PUT("/:id", h.updateExpense)
		expenses.DELETE("/:id", h.deleteExpense)
		expenses.POST("/:id/receipt", h.attachReceipt)

		expenses.POST("/:id/submit", h.submitExpense)
		expenses.POST("/:id/approve", approvers, h.approveExpense)
		expenses.POST("/:id/reject", approvers, h.rejectExpense)
		expenses.POST("/:id/pay", approvers, h.payExpense)
		expenses.POST("/:id/cancel", h.cancelExpense)
	}
}

// listTypes godoc
// @Summary List expense categories
// @Tags expenses
// @Produce  json
// @Success 200 {object} dto.ExpenseTypesResponse
// @Security BearerAuth
// @Router /expenses/types [get]
func (h *expenseHandler) listTypes(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ExpenseTypesResponse{Types: domain.ExpenseTypes})
}

// listExpenses godoc
// @Summary List expenses
// @Tags expenses
// @Produce  json
// @Param stallID query string false "Filter by stall"
// @Param status query string false "Filter by status"
// @Param from query string false "Expense date on or after (YYYY-MM-DD)"
// @Param to query string false "Expense date on or before (YYYY-MM-DD)"
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListResponse[domain.Expense]
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /expenses [get]
func (h *expenseHandler) listExpenses(c *gin.Context) {
	params, ok := bindList(c)
	if !ok {
		return
	}
	filter := params.ToFilter()
	expenses, err := h.expenseService.ListExpenses(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "Failed to list expenses")
		return
	}
	c.JSON(http.StatusOK, dto.NewListResponse(expenses, filter))
}

// getExpense godoc
// @Summary Get an expense
// @Tags expenses
// @Produce  json
// @Param   id path string true "Expense ID"
// @Success 200 {object} domain.Expense
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /expenses/{id} [get]
func (h *expenseHandler) getExpense(c *gin.Context) {
	expense, err := h.expenseService.GetExpense(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve expense")
		return
	}
	c.JSON(http.StatusOK, expense)
}

// createExpense godoc
// @Summary Record an expense
// @Description Creates a draft expense. The total is amount plus tax.
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   expense body dto.CreateExpenseRequest true "Expense details"
// @Success 201 {object} domain.Expense
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Stall not found"
// @Security BearerAuth
// @Router /expenses [post]
func (h *expenseHandler) createExpense(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.CreateExpenseRequest
	if !bindJSON(c, &req) {
		return
	}
	expense, err := h.expenseService.CreateExpense(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, err, "Failed to create expense")
		return
	}
	c.JSON(http.StatusCreated, expense)
}

// updateExpense godoc
// @Summary Update a draft expense
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   id path string true "Expense ID"
// @Param   expense body dto.UpdateExpenseRequest true "Expense details"
// @Success 200 {object} domain.Expense
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /expenses/{id} [put]
func (h *expenseHandler) updateExpense(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.UpdateExpenseRequest
	if !bindJSON(c, &req) {
		return
	}
	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, err, "Failed to update expense")
		return
	}
	c.JSON(http.StatusOK, expense)
}

// deleteExpense godoc
// @Summary Delete a draft expense
// @Tags expenses
// @Param   id path string true "Expense ID"
// @Param   expectedVersion query int false "Refuse the change unless the expense is at this version"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /expenses/{id} [delete]
func (h *expenseHandler) deleteExpense(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	expected, ok := expectedVersionQuery(c)
	if !ok {
		return
	}
	if err := h.expenseService.DeleteExpense(c.Request.Context(), c.Param("id"), expected, actor); err != nil {
		respondError(c, err, "Failed to delete expense")
		return
	}
	c.Status(http.StatusNoContent)
}

// attachReceipt godoc
// @Summary Upload a receipt for an expense
// @Description Accepts a JPEG, PNG, WebP or PDF up to 10 MB in the "receipt" form field.
// @Tags expenses
// @Accept  multipart/form-data
// @Produce  json
// @Param   id path string true "Expense ID"
// @Param   receipt formData file true "Receipt file"
// @Success 200 {object} domain.Expense
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /expenses/{id}/receipt [post]
func (h *expenseHandler) attachReceipt(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	logger := middleware.GetLoggerFromContext(c)

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxReceiptUpload)
	header, err := c.FormFile("receipt")
	if err != nil {
		logger.Warn("Receipt upload rejected", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "A receipt file of at most 10 MB is required"})
		return
	}
	file, err := header.Open()
	if err != nil {
		respondError(c, err, "Failed to read receipt")
		return
	}
	defer file.Close()

	upload := dto.ReceiptUpload{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
	}
	expense, err := h.expenseService.AttachReceipt(c.Request.Context(), c.Param("id"), upload, file, actor)
	if err != nil {
		respondError(c, err, "Failed to attach receipt")
		return
	}
	c.JSON(http.StatusOK, expense)
}

// submitExpense godoc
// @Summary Submit an expense for approval
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   id path string true "Expense ID"
// @Param   body body dto.TransitionRequest false "Version guard"
// @Success 200 {object} domain.Expense
// @Failure 409 {object} ErrorResponse "Invalid transition"
// @Security BearerAuth
// @Router /expenses/{id}/submit [post]
func (h *expenseHandler) submitExpense(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.TransitionRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	expense, err := h.expenseService.SubmitExpense(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, err, "Failed to submit expense")
		return
	}
	c.JSON(http.StatusOK, expense)
}

// approveExpense godoc
// @Summary Approve a pending expense
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   id path string true "Expense ID"
// @Param   body body dto.ApprovalRequest false "Approval comments"
// @Success 200 {object} domain.Expense
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Invalid transition"
// @Security BearerAuth
// @Router /expenses/{id}/approve [post]
func (h *expenseHandler) approveExpense(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.ApprovalRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	expense, err := h.expenseService.ApproveExpense(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, err, "Failed to approve expense")
		return
	}
	c.JSON(http.StatusOK, expense)
}

// rejectExpense godoc
// @Summary Reject a pending expense
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   id path string true "Expense ID"
// @Param   reason body dto.ReasonRequest true "Rejection reason"
// @Success 200 {object} domain.Expense
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Invalid transition"
// @Security BearerAuth
// @Router /expenses/{id}/reject [post]
func (h *expenseHandler) rejectExpense(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.ReasonRequest
	if !bindJSON(c, &req) {
		return
	}
	expense, err := h.expenseService.RejectExpense(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, err, "Failed to reject expense")
		return
	}
	c.JSON(http.StatusOK, expense)
}

// payExpense godoc
// @Summary Mark an approved expense as paid
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   id path string true "Expense ID"
// @Param   payment body dto.PaymentRequest false "Payment details"
// @Success 200 {object} domain.Expense
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Invalid transition"
// @Security BearerAuth
// @Router /expenses/{id}/pay [post]
func (h *expenseHandler) payExpense(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.PaymentRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	expense, err := h.expenseService.PayExpense(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, err, "Failed to pay expense")
		return
	}
	c.JSON(http.StatusOK, expense)
}

// cancelExpense godoc
// @Summary Cancel an expense
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   id path string true "Expense ID"
// @Param   reason body dto.ReasonRequest true "Cancellation reason"
// @Success 200 {object} domain.Expense
// @Failure 409 {object} ErrorResponse "Invalid transition"
// @Security BearerAuth
// @Router /expenses/{id}/cancel [post]
func (h *expenseHandler) cancelExpense(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.ReasonRequest
	if !bindJSON(c, &req) {
		return
	}
	expense, err := h.expenseService.CancelExpense(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, err, "Failed to cancel expense")
		return
	}
	c.JSON(http.StatusOK, expense)
}

// runRecurring godoc
// @Summary Generate due recurring expenses now
// @Description Runs the same pass as the scheduled task. Owners only.
// @Tags expenses
// @Produce  json
// @Success 200 {object} dto.RecurringRunResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /expenses/recurring/run [post]
func (h *expenseHandler) runRecurring(c *gin.Context) {
	result, err := h.expenseService.GenerateRecurringExpenses(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to generate recurring expenses")
		return
	}
	c.JSON(http.StatusOK, result)
}
