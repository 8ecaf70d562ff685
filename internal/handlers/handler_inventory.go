package handlers

import (
	"context"
	"net/http"

	"github.com/SscSPs/stallchain/internal/core/domain"
	portssvc "github.com/SscSPs/stallchain/internal/core/ports/services"
	"github.com/SscSPs/stallchain/internal/dto"
	"github.com/SscSPs/stallchain/internal/middleware"
	"github.com/gin-gonic/gin"
)

type inventoryHandler struct {
	inventoryService portssvc.InventorySvcFacade
}

func newInventoryHandler(is portssvc.InventorySvcFacade) *inventoryHandler {
	return &inventoryHandler{inventoryService: is}
}

func registerInventoryRoutes(rg *gin.RouterGroup, inventoryService portssvc.InventorySvcFacade) {
	h := newInventoryHandler(inventoryService)

	batches := rg.Group("/inventory")
	{
		batches.GET("", h.listBatches)
		batches.POST("", h.createBatch)
		batches.POST("/refresh", middleware.RequireRoles(domain.RoleOwner, domain.RoleManager), h.refreshAll)
		batches.GET("/:id", h.getBatch)
		batches.POST("/:id/stock/add", h.addStock)
		batches.POST("/:id/stock/remove", h.removeStock)
		batches.POST("/:id/transfer", h.transferStock)
		batches.POST("/:id/wastage", h.recordWastage)
		batches.POST("/:id/refresh", h.refreshBatch)
	}
}

// listBatches godoc
// @Summary List inventory batches
// @Description With stallID, lists batches holding stock at that stall.
// @Tags inventory
// @Produce  json
// @Param stallID query string false "Batches stocked at this stall"
// @Param status query string false "Filter by expiry status"
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListResponse[domain.Inventory]
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /inventory [get]
func (h *inventoryHandler) listBatches(c *gin.Context) {
	params, ok := bindList(c)
	if !ok {
		return
	}
	filter := params.ToFilter()
	batches, err := h.inventoryService.ListBatches(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "Failed to list batches")
		return
	}
	c.JSON(http.StatusOK, dto.NewListResponse(batches, filter))
}

// getBatch godoc
// @Summary Get an inventory batch
// @Tags inventory
// @Produce  json
// @Param   id path string true "Batch ID"
// @Success 200 {object} domain.Inventory
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /inventory/{id} [get]
func (h *inventoryHandler) getBatch(c *gin.Context) {
	batch, err := h.inventoryService.GetBatch(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve batch")
		return
	}
	c.JSON(http.StatusOK, batch)
}

// createBatch godoc
// @Summary Receive a new inventory batch
// @Tags inventory
// @Accept  json
// @Produce  json
// @Param   batch body dto.CreateBatchRequest true "Batch details"
// @Success 201 {object} domain.Inventory
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /inventory [post]
func (h *inventoryHandler) createBatch(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.CreateBatchRequest
	if !bindJSON(c, &req) {
		return
	}
	batch, err := h.inventoryService.CreateBatch(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, err, "Failed to create batch")
		return
	}
	c.JSON(http.StatusCreated, batch)
}

// addStock godoc
// @Summary Add stock to a batch
// @Description Location is "production-house" (the default) or a stall ID.
// @Tags inventory
// @Accept  json
// @Produce  json
// @Param   id path string true "Batch ID"
// @Param   movement body dto.StockMovementRequest true "Location and quantity"
// @Success 200 {object} domain.Inventory
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /inventory/{id}/stock/add [post]
func (h *inventoryHandler) addStock(c *gin.Context) {
	h.moveStock(c, h.inventoryService.AddStock, "Failed to add stock")
}

// removeStock godoc
// @Summary Remove stock from a batch
// @Tags inventory
// @Accept  json
// @Produce  json
// @Param   id path string true "Batch ID"
// @Param   movement body dto.StockMovementRequest true "Location and quantity"
// @Success 200 {object} domain.Inventory
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Insufficient stock"
// @Security BearerAuth
// @Router /inventory/{id}/stock/remove [post]
func (h *inventoryHandler) removeStock(c *gin.Context) {
	h.moveStock(c, h.inventoryService.RemoveStock, "Failed to remove stock")
}

type stockMover func(ctx context.Context, batchID string, req dto.StockMovementRequest, actor domain.Actor) (*domain.Inventory, error)

func (h *inventoryHandler) moveStock(c *gin.Context, move stockMover, failure string) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.StockMovementRequest
	if !bindJSON(c, &req) {
		return
	}
	batch, err := move(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, err, failure)
		return
	}
	c.JSON(http.StatusOK, batch)
}

// transferStock godoc
// @Summary Transfer stock from the production house to a stall
// @Tags inventory
// @Accept  json
// @Produce  json
// @Param   id path string true "Batch ID"
// @Param   transfer body dto.TransferStockRequest true "Destination stall and quantity"
// @Success 200 {object} domain.Inventory
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Insufficient stock"
// @Security BearerAuth
// @Router /inventory/{id}/transfer [post]
func (h *inventoryHandler) transferStock(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.TransferStockRequest
	if !bindJSON(c, &req) {
		return
	}
	batch, err := h.inventoryService.TransferStock(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, err, "Failed to transfer stock")
		return
	}
	c.JSON(http.StatusOK, batch)
}

// recordWastage godoc
// @Summary Record wastage against a batch
// @Tags inventory
// @Accept  json
// @Produce  json
// @Param   id path string true "Batch ID"
// @Param   wastage body dto.WastageRequest true "Wastage details"
// @Success 201 {object} domain.WastageRecord
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Insufficient stock"
// @Security BearerAuth
// @Router /inventory/{id}/wastage [post]
func (h *inventoryHandler) recordWastage(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.WastageRequest
	if !bindJSON(c, &req) {
		return
	}
	record, err := h.inventoryService.RecordWastage(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, err, "Failed to record wastage")
		return
	}
	c.JSON(http.StatusCreated, record)
}

// refreshBatch godoc
// @Summary Recompute a batch's expiry status
// @Tags inventory
// @Produce  json
// @Param   id path string true "Batch ID"
// @Success 200 {object} domain.Inventory
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /inventory/{id}/refresh [post]
func (h *inventoryHandler) refreshBatch(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	batch, err := h.inventoryService.RefreshBatch(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		respondError(c, err, "Failed to refresh batch")
		return
	}
	c.JSON(http.StatusOK, batch)
}

// refreshAll godoc
// @Summary Refresh every active batch now
// @Description Runs the same pass as the scheduled task and queues expiry and low stock alerts.
// @Tags inventory
// @Produce  json
// @Success 200 {object} dto.BatchRefreshSummary
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /inventory/refresh [post]
func (h *inventoryHandler) refreshAll(c *gin.Context) {
	summary, err := h.inventoryService.RefreshAllBatches(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to refresh batches")
		return
	}
	c.JSON(http.StatusOK, summary)
}
