package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/fleetedge/telematics-core/internal/core/domain"
	"github.com/fleetedge/telematics-core/internal/core/ports"
)

const defaultGeotagLimit = 100

// GeotagHandler exposes the append-only geotag trail.
type GeotagHandler struct {
	recorder ports.GeotagRecorder
}

func NewGeotagHandler(recorder ports.GeotagRecorder) *GeotagHandler {
	return &GeotagHandler{recorder: recorder}
}

// ListForLoad handles GET /v1/loads/:id/geotags: the chronological audit
// trail for one load.
//
// @Summary      List geotags for a load
// @Tags         geotags
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Load ID"
// @Success      200  {array}   domain.Geotag
// @Failure      401  {object}  errorResponse
// @Router       /v1/loads/{id}/geotags [get]
func (h *GeotagHandler) ListForLoad(c echo.Context) error {
	loadID := c.Param("id")
	if loadID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "load id required")
	}

	tags, err := h.recorder.ListForLoad(c.Request().Context(), loadID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tags)
}

// ListForDriver handles GET /v1/drivers/:id/geotags?limit=N, newest first.
// Drivers may only read their own trail.
//
// @Summary      List recent geotags for a driver
// @Tags         geotags
// @Produce      json
// @Security     BearerAuth
// @Param        id     path      string  true   "Driver ID"
// @Param        limit  query     int     false  "Max records (default 100)"
// @Success      200    {array}   domain.Geotag
// @Failure      401    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Router       /v1/drivers/{id}/geotags [get]
func (h *GeotagHandler) ListForDriver(c echo.Context) error {
	role, _, driverID, err := ctxClaims(c)
	if err != nil {
		return err
	}

	target := c.Param("id")
	if target == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "driver id required")
	}
	if role == domain.RoleDriver && target != driverID {
		return domain.ErrForbidden
	}

	limit := defaultGeotagLimit
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a positive integer")
		}
		limit = n
	}

	tags, err := h.recorder.ListForDriver(c.Request().Context(), target, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tags)
}
