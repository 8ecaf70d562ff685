package handlers

import (
	"net/http"

	"github.com/SscSPs/stallchain/internal/core/domain"
	portssvc "github.com/SscSPs/stallchain/internal/core/ports/services"
	"github.com/SscSPs/stallchain/internal/dto"
	"github.com/SscSPs/stallchain/internal/middleware"
	"github.com/gin-gonic/gin"
)

type investorHandler struct {
	investorService portssvc.InvestorSvcFacade
}

func newInvestorHandler(is portssvc.InvestorSvcFacade) *investorHandler {
	return &investorHandler{investorService: is}
}

// registerInvestorRoutes registers investor routes. Investment terms are
// visible to approvers only; onboarding and status changes are owner only.
func registerInvestorRoutes(rg *gin.RouterGroup, investorService portssvc.InvestorSvcFacade) {
	h := newInvestorHandler(investorService)
	ownerOnly := middleware.RequireRoles(domain.RoleOwner)

	investors := rg.Group("/investors", middleware.RequireRoles(middleware.ApproverRoles...))
	{
		investors.GET("", h.listInvestors)
		investors.POST("", ownerOnly, h.createInvestor)
		investors.GET("/:id", h.getInvestor)
		investors.GET("/:id/roi", h.projectROI)
		investors.POST("/:id/payouts", h.addPayout)
		investors.POST("/:id/status", ownerOnly, h.changeStatus)
	}
}

// listInvestors godoc
// @Summary List investors
// @Tags investors
// @Produce  json
// @Param stallID query string false "Filter by stall"
// @Param status query string false "Filter by status"
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListResponse[domain.Investor]
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /investors [get]
func (h *investorHandler) listInvestors(c *gin.Context) {
	params, ok := bindList(c)
	if !ok {
		return
	}
	filter := params.ToFilter()
	investors, err := h.investorService.ListInvestors(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "Failed to list investors")
		return
	}
	c.JSON(http.StatusOK, dto.NewListResponse(investors, filter))
}

// getInvestor godoc
// @Summary Get an investor with the payout ledger
// @Tags investors
// @Produce  json
// @Param   id path string true "Investor ID"
// @Success 200 {object} domain.Investor
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /investors/{id} [get]
func (h *investorHandler) getInvestor(c *gin.Context) {
	investor, err := h.investorService.GetInvestor(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve investor")
		return
	}
	c.JSON(http.StatusOK, investor)
}

// createInvestor godoc
// @Summary Onboard an investor
// @Tags investors
// @Accept  json
// @Produce  json
// @Param   investor body dto.CreateInvestorRequest true "Investment terms"
// @Success 201 {object} domain.Investor
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /investors [post]
func (h *investorHandler) createInvestor(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.CreateInvestorRequest
	if !bindJSON(c, &req) {
		return
	}
	investor, err := h.investorService.CreateInvestor(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, err, "Failed to create investor")
		return
	}
	c.JSON(http.StatusCreated, investor)
}

// projectROI godoc
// @Summary Project an investor's return
// @Tags investors
// @Produce  json
// @Param   id path string true "Investor ID"
// @Param   months query int true "Projection horizon in months"
// @Success 200 {object} domain.ROIProjection
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /investors/{id}/roi [get]
func (h *investorHandler) projectROI(c *gin.Context) {
	var params dto.ROIParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	projection, err := h.investorService.ProjectROI(c.Request.Context(), c.Param("id"), params.Months)
	if err != nil {
		respondError(c, err, "Failed to project ROI")
		return
	}
	c.JSON(http.StatusOK, projection)
}

// addPayout godoc
// @Summary Record a payout to an investor
// @Tags investors
// @Accept  json
// @Produce  json
// @Param   id path string true "Investor ID"
// @Param   payout body dto.PayoutRequest true "Payout details"
// @Success 201 {object} domain.PayoutRecord
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Investor not active"
// @Security BearerAuth
// @Router /investors/{id}/payouts [post]
func (h *investorHandler) addPayout(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.PayoutRequest
	if !bindJSON(c, &req) {
		return
	}
	payout, err := h.investorService.AddPayout(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, err, "Failed to record payout")
		return
	}
	c.JSON(http.StatusCreated, payout)
}

// changeStatus godoc
// @Summary Change an investor's status
// @Tags investors
// @Accept  json
// @Produce  json
// @Param   id path string true "Investor ID"
// @Param   status body dto.InvestorStatusRequest true "New status"
// @Success 200 {object} domain.Investor
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Invalid transition"
// @Security BearerAuth
// @Router /investors/{id}/status [post]
func (h *investorHandler) changeStatus(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.InvestorStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	investor, err := h.investorService.ChangeInvestorStatus(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, err, "Failed to change investor status")
		return
	}
	c.JSON(http.StatusOK, investor)
}
