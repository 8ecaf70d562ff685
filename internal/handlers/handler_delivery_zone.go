package handlers

import (
	"net/http"

	"github.com/SscSPs/stallchain/internal/core/domain"
	portssvc "github.com/SscSPs/stallchain/internal/core/ports/services"
	"github.com/SscSPs/stallchain/internal/dto"
	"github.com/SscSPs/stallchain/internal/middleware"
	"github.com/gin-gonic/gin"
)

type deliveryZoneHandler struct {
	zoneService portssvc.DeliveryZoneSvcFacade
}

func newDeliveryZoneHandler(zs portssvc.DeliveryZoneSvcFacade) *deliveryZoneHandler {
	return &deliveryZoneHandler{zoneService: zs}
}

// registerDeliveryZoneRoutes registers zone configuration, pricing and fleet routes.
func registerDeliveryZoneRoutes(rg *gin.RouterGroup, zoneService portssvc.DeliveryZoneSvcFacade) {
	h := newDeliveryZoneHandler(zoneService)
	configurers := middleware.RequireRoles(domain.RoleOwner, domain.RoleManager)

	zones := rg.Group("/delivery-zones")
	{
		zones.GET("", h.listZones)
		zones.POST("", configurers, h.createZone)
		zones.GET("/:id", h.getZone)
		zones.PUT("/:id", configurers, h.updateZone)
		zones.DELETE("/:id", configurers, h.deactivateZone)

		zones.POST("/:id/quote", h.quoteDelivery)
		zones.GET("/:id/peak-status", h.peakStatus)

		zones.POST("/:id/persons", configurers, h.assignPerson)
		zones.DELETE("/:id/persons/:personID", configurers, h.removePerson)
		zones.PUT("/:id/persons/:personID/availability", h.setAvailability)
		zones.POST("/:id/deliveries", h.recordDelivery)
	}
}

// listZones godoc
// @Summary List delivery zones
// @Tags delivery-zones
// @Produce  json
// @Param stallID query string false "Filter by stall"
// @Param includeInactive query bool false "Include deactivated zones"
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListResponse[domain.DeliveryZone]
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /delivery-zones [get]
func (h *deliveryZoneHandler) listZones(c *gin.Context) {
	params, ok := bindList(c)
	if !ok {
		return
	}
	filter := params.ToFilter()
	zones, err := h.zoneService.ListZones(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "Failed to list delivery zones")
		return
	}
	c.JSON(http.StatusOK, dto.NewListResponse(zones, filter))
}

// getZone godoc
// @Summary Get a delivery zone
// @Tags delivery-zones
// @Produce  json
// @Param   id path string true "Zone ID"
// @Success 200 {object} domain.DeliveryZone
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /delivery-zones/{id} [get]
func (h *deliveryZoneHandler) getZone(c *gin.Context) {
	zone, err := h.zoneService.GetZone(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve delivery zone")
		return
	}
	c.JSON(http.StatusOK, zone)
}

// createZone godoc
// @Summary Create a delivery zone
// @Description Defines a stall's delivery area with its charge rules and peak windows.
// @Tags delivery-zones
// @Accept  json
// @Produce  json
// @Param   zone body dto.CreateDeliveryZoneRequest true "Zone configuration"
// @Success 201 {object} domain.DeliveryZone
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /delivery-zones [post]
func (h *deliveryZoneHandler) createZone(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.CreateDeliveryZoneRequest
	if !bindJSON(c, &req) {
		return
	}
	zone, err := h.zoneService.CreateZone(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, err, "Failed to create delivery zone")
		return
	}
	c.JSON(http.StatusCreated, zone)
}

// updateZone godoc
// @Summary Update a delivery zone
// @Tags delivery-zones
// @Accept  json
// @Produce  json
// @Param   id path string true "Zone ID"
// @Param   zone body dto.UpdateDeliveryZoneRequest true "Zone configuration"
// @Success 200 {object} domain.DeliveryZone
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Version conflict"
// @Security BearerAuth
// @Router /delivery-zones/{id} [put]
func (h *deliveryZoneHandler) updateZone(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.UpdateDeliveryZoneRequest
	if !bindJSON(c, &req) {
		return
	}
	zone, err := h.zoneService.UpdateZone(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, err, "Failed to update delivery zone")
		return
	}
	c.JSON(http.StatusOK, zone)
}

// deactivateZone godoc
// @Summary Deactivate a delivery zone
// @Tags delivery-zones
// @Param   id path string true "Zone ID"
// @Param   expectedVersion query int false "Refuse the change unless the zone is at this version"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /delivery-zones/{id} [delete]
func (h *deliveryZoneHandler) deactivateZone(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	expected, ok := expectedVersionQuery(c)
	if !ok {
		return
	}
	if err := h.zoneService.DeactivateZone(c.Request.Context(), c.Param("id"), expected, actor); err != nil {
		respondError(c, err, "Failed to deactivate delivery zone")
		return
	}
	c.Status(http.StatusNoContent)
}

// quoteDelivery godoc
// @Summary Quote a delivery charge
// @Description Prices a prospective order. Orders outside the zone's rules come back with serviceable=false and a reason.
// @Tags delivery-zones
// @Accept  json
// @Produce  json
// @Param   id path string true "Zone ID"
// @Param   quote body dto.DeliveryQuoteRequest true "Order amount, distance and locality"
// @Success 200 {object} dto.DeliveryQuoteResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /delivery-zones/{id}/quote [post]
func (h *deliveryZoneHandler) quoteDelivery(c *gin.Context) {
	var req dto.DeliveryQuoteRequest
	if !bindJSON(c, &req) {
		return
	}
	quote, err := h.zoneService.QuoteDelivery(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to quote delivery")
		return
	}
	c.JSON(http.StatusOK, quote)
}

// peakStatus godoc
// @Summary Current peak status of a zone
// @Tags delivery-zones
// @Produce  json
// @Param   id path string true "Zone ID"
// @Success 200 {object} dto.PeakStatusResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /delivery-zones/{id}/peak-status [get]
func (h *deliveryZoneHandler) peakStatus(c *gin.Context) {
	status, err := h.zoneService.PeakStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to read peak status")
		return
	}
	c.JSON(http.StatusOK, status)
}

// assignPerson godoc
// @Summary Assign a delivery person to a zone
// @Tags delivery-zones
// @Accept  json
// @Produce  json
// @Param   id path string true "Zone ID"
// @Param   person body dto.AssignDeliveryPersonRequest true "Rider details"
// @Success 200 {object} domain.DeliveryZone
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Rider already assigned"
// @Security BearerAuth
// @Router /delivery-zones/{id}/persons [post]
func (h *deliveryZoneHandler) assignPerson(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.AssignDeliveryPersonRequest
	if !bindJSON(c, &req) {
		return
	}
	zone, err := h.zoneService.AssignDeliveryPerson(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, err, "Failed to assign delivery person")
		return
	}
	c.JSON(http.StatusOK, zone)
}

// removePerson godoc
// @Summary Remove a delivery person from a zone
// @Tags delivery-zones
// @Produce  json
// @Param   id path string true "Zone ID"
// @Param   personID path string true "Rider ID"
// @Param   expectedVersion query int false "Refuse the change unless the zone is at this version"
// @Success 200 {object} domain.DeliveryZone
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /delivery-zones/{id}/persons/{personID} [delete]
func (h *deliveryZoneHandler) removePerson(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	expected, ok := expectedVersionQuery(c)
	if !ok {
		return
	}
	zone, err := h.zoneService.RemoveDeliveryPerson(c.Request.Context(), c.Param("id"), c.Param("personID"), expected, actor)
	if err != nil {
		respondError(c, err, "Failed to remove delivery person")
		return
	}
	c.JSON(http.StatusOK, zone)
}

// setAvailability godoc
// @Summary Set a delivery person's availability
// @Tags delivery-zones
// @Accept  json
// @Produce  json
// @Param   id path string true "Zone ID"
// @Param   personID path string true "Rider ID"
// @Param   availability body dto.PersonAvailabilityRequest true "Availability"
// @Success 200 {object} domain.DeliveryZone
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /delivery-zones/{id}/persons/{personID}/availability [put]
func (h *deliveryZoneHandler) setAvailability(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.PersonAvailabilityRequest
	if !bindJSON(c, &req) {
		return
	}
	zone, err := h.zoneService.SetPersonAvailability(c.Request.Context(), c.Param("id"), c.Param("personID"), req, actor)
	if err != nil {
		respondError(c, err, "Failed to update availability")
		return
	}
	c.JSON(http.StatusOK, zone)
}

// recordDelivery godoc
// @Summary Record a finished delivery
// @Description Updates the zone's counters and the rider's rolling rating.
// @Tags delivery-zones
// @Accept  json
// @Produce  json
// @Param   id path string true "Zone ID"
// @Param   delivery body dto.RecordDeliveryRequest true "Delivery outcome"
// @Success 200 {object} domain.DeliveryZone
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /delivery-zones/{id}/deliveries [post]
func (h *deliveryZoneHandler) recordDelivery(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.RecordDeliveryRequest
	if !bindJSON(c, &req) {
		return
	}
	zone, err := h.zoneService.RecordDelivery(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, err, "Failed to record delivery")
		return
	}
	c.JSON(http.StatusOK, zone)
}
