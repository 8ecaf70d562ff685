package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/stallchain/internal/core/ports/services"
	"github.com/SscSPs/stallchain/internal/dto"
	"github.com/SscSPs/stallchain/internal/middleware"
	"github.com/gin-gonic/gin"
)

type orderHandler struct {
	orderService portssvc.OrderSvcFacade
}

func newOrderHandler(svc portssvc.OrderSvcFacade) *orderHandler {
	return &orderHandler{orderService: svc}
}

func registerOrderRoutes(rg *gin.RouterGroup, orderService portssvc.OrderSvcFacade) {
	h := newOrderHandler(orderService)

	orders := rg.Group("/orders")
	{
		orders.GET("", h.listOrders)
		orders.POST("", h.placeOrder)
		orders.GET("/:id", h.getOrder)
		orders.POST("/:id/rider", h.assignRider)
		orders.POST("/:id/status", h.advanceOrder)
		orders.POST("/:id/cancel", h.cancelOrder)
	}
}

// listOrders godoc
// @Summary List orders
// @Tags orders
// @Produce  json
// @Param stallID query string false "Filter by stall"
// @Param status query string false "Filter by status"
// @Param from query string false "Placed on or after (YYYY-MM-DD)"
// @Param to query string false "Placed on or before (YYYY-MM-DD)"
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListResponse[domain.Order]
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders [get]
func (h *orderHandler) listOrders(c *gin.Context) {
	params, ok := bindList(c)
	if !ok {
		return
	}
	filter := params.ToFilter()
	orders, err := h.orderService.ListOrders(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "Failed to list orders")
		return
	}
	c.JSON(http.StatusOK, dto.NewListResponse(orders, filter))
}

// getOrder godoc
// @Summary Get an order with its status timeline
// @Tags orders
// @Produce  json
// @Param   id path string true "Order ID"
// @Success 200 {object} domain.Order
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders/{id} [get]
func (h *orderHandler) getOrder(c *gin.Context) {
	order, err := h.orderService.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve order")
		return
	}
	c.JSON(http.StatusOK, order)
}

// placeOrder godoc
// @Summary Place an order
// @Description Creates a pending order. Delivery orders are priced against their zone.
// @Tags orders
// @Accept  json
// @Produce  json
// @Param   order body dto.PlaceOrderRequest true "Order details"
// @Success 201 {object} domain.Order
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Stall or zone not found"
// @Security BearerAuth
// @Router /orders [post]
func (h *orderHandler) placeOrder(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.PlaceOrderRequest
	if !bindJSON(c, &req) {
		return
	}
	order, err := h.orderService.PlaceOrder(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, err, "Failed to place order")
		return
	}
	middleware.GetLoggerFromContext(c).Info("Order placed", slog.String("order_id", order.OrderID))
	c.JSON(http.StatusCreated, order)
}

// assignRider godoc
// @Summary Assign a rider to a delivery order
// @Tags orders
// @Accept  json
// @Produce  json
// @Param   id path string true "Order ID"
// @Param   rider body dto.AssignRiderRequest true "Rider"
// @Success 200 {object} domain.Order
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders/{id}/rider [post]
func (h *orderHandler) assignRider(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.AssignRiderRequest
	if !bindJSON(c, &req) {
		return
	}
	order, err := h.orderService.AssignRider(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, err, "Failed to assign rider")
		return
	}
	c.JSON(http.StatusOK, order)
}

// advanceOrder godoc
// @Summary Advance an order along its timeline
// @Tags orders
// @Accept  json
// @Produce  json
// @Param   id path string true "Order ID"
// @Param   status body dto.AdvanceOrderRequest true "Next status"
// @Success 200 {object} domain.Order
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Invalid transition"
// @Security BearerAuth
// @Router /orders/{id}/status [post]
func (h *orderHandler) advanceOrder(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.AdvanceOrderRequest
	if !bindJSON(c, &req) {
		return
	}
	order, err := h.orderService.AdvanceOrder(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, err, "Failed to update order status")
		return
	}
	c.JSON(http.StatusOK, order)
}

// cancelOrder godoc
// @Summary Cancel an order
// @Tags orders
// @Accept  json
// @Produce  json
// @Param   id path string true "Order ID"
// @Param   reason body dto.ReasonRequest true "Cancellation reason"
// @Success 200 {object} domain.Order
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Order already closed"
// @Security BearerAuth
// @Router /orders/{id}/cancel [post]
func (h *orderHandler) cancelOrder(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.ReasonRequest
	if !bindJSON(c, &req) {
		return
	}
	order, err := h.orderService.CancelOrder(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, err, "Failed to cancel order")
		return
	}
	c.JSON(http.StatusOK, order)
}
