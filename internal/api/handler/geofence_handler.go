package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fleetedge/telematics-core/internal/core/domain"
	"github.com/fleetedge/telematics-core/internal/core/ports"
)

// GeofenceHandler manages the geofence set attached to a load.
type GeofenceHandler struct {
	factory ports.GeofenceFactory
}

func NewGeofenceHandler(factory ports.GeofenceFactory) *GeofenceHandler {
	return &GeofenceHandler{factory: factory}
}

// Create handles POST /v1/loads/:id/geofences: materializes the full fence
// set (approach, facility, waypoints) for a booked load.
//
// @Summary      Create the geofence set for a load
// @Tags         geofences
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Load ID"
// @Param        body  body      createGeofencesRequest true  "Pickup, delivery and waypoints"
// @Success      201   {array}   domain.Geofence
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/loads/{id}/geofences [post]
func (h *GeofenceHandler) Create(c echo.Context) error {
	loadID := c.Param("id")
	if loadID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "load id required")
	}

	var req createGeofencesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	waypoints := make([]ports.WaypointInput, 0, len(req.Waypoints))
	for _, w := range req.Waypoints {
		waypoints = append(waypoints, ports.WaypointInput{
			Name:     w.Name,
			Location: domain.Coordinates{Lat: w.Location.Lat, Lng: w.Location.Lng},
		})
	}

	fences, err := h.factory.CreateForLoad(c.Request().Context(), ports.CreateGeofencesInput{
		LoadID:                       loadID,
		PickupName:                   req.PickupName,
		Pickup:                       domain.Coordinates{Lat: req.Pickup.Lat, Lng: req.Pickup.Lng},
		DeliveryName:                 req.DeliveryName,
		Delivery:                     domain.Coordinates{Lat: req.Delivery.Lat, Lng: req.Delivery.Lng},
		Waypoints:                    waypoints,
		PickupFacilityRadiusMeters:   req.PickupFacilityRadiusMeters,
		DeliveryFacilityRadiusMeters: req.DeliveryFacilityRadiusMeters,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, fences)
}

// List handles GET /v1/loads/:id/geofences. Pass ?all=true to include
// deactivated fences.
//
// @Summary      List geofences for a load
// @Tags         geofences
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true   "Load ID"
// @Param        all  query     bool    false  "Include deactivated fences"
// @Success      200  {array}   domain.Geofence
// @Failure      401  {object}  errorResponse
// @Router       /v1/loads/{id}/geofences [get]
func (h *GeofenceHandler) List(c echo.Context) error {
	loadID := c.Param("id")
	if loadID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "load id required")
	}

	activeOnly := c.QueryParam("all") != "true"
	fences, err := h.factory.ListForLoad(c.Request().Context(), loadID, activeOnly)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, fences)
}

// Deactivate handles DELETE /v1/loads/:id/geofences: retires the whole fence
// set after delivery or cancellation. Fences are never hard-deleted; the
// event history keeps pointing at them.
//
// @Summary      Deactivate all geofences for a load
// @Tags         geofences
// @Security     BearerAuth
// @Param        id  path  string  true  "Load ID"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Router       /v1/loads/{id}/geofences [delete]
func (h *GeofenceHandler) Deactivate(c echo.Context) error {
	loadID := c.Param("id")
	if loadID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "load id required")
	}

	if err := h.factory.DeactivateForLoad(c.Request().Context(), loadID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
