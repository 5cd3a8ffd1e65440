package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fleetedge/telematics-core/internal/core/domain"
	"github.com/fleetedge/telematics-core/internal/core/service"
)

// IntelHandler serves the stateless query engines: ETA, route deviation,
// hazmat advice and channel resolution. Nothing here touches storage.
type IntelHandler struct {
	eta       *service.ETAEngine
	deviation *service.RouteDeviationDetector
	hazmat    *service.HazmatRouter
}

func NewIntelHandler(eta *service.ETAEngine, deviation *service.RouteDeviationDetector, hazmat *service.HazmatRouter) *IntelHandler {
	return &IntelHandler{eta: eta, deviation: deviation, hazmat: hazmat}
}

// EstimateETA handles POST /v1/eta.
//
// @Summary      Estimate arrival time
// @Tags         intel
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      etaRequest  true  "Current position and destination"
// @Success      200   {object}  service.ETAResult
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/eta [post]
func (h *IntelHandler) EstimateETA(c echo.Context) error {
	var req etaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result := h.eta.Estimate(
		domain.Coordinates{Lat: req.Current.Lat, Lng: req.Current.Lng},
		domain.Coordinates{Lat: req.Destination.Lat, Lng: req.Destination.Lng},
	)
	return c.JSON(http.StatusOK, result)
}

// CheckDeviation handles POST /v1/route-deviation.
//
// @Summary      Classify route deviation
// @Tags         intel
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      deviationRequest  true  "Route polyline and current position"
// @Success      200   {object}  service.DeviationResult
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/route-deviation [post]
func (h *IntelHandler) CheckDeviation(c echo.Context) error {
	var req deviationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	route, err := service.DecodePolyline(req.Polyline)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result := h.deviation.Check(route, domain.Coordinates{Lat: req.Current.Lat, Lng: req.Current.Lng})
	return c.JSON(http.StatusOK, result)
}

// HazmatAdvice handles GET /v1/hazmat/:class.
//
// @Summary      Routing advice for a hazard class
// @Tags         intel
// @Produce      json
// @Security     BearerAuth
// @Param        class  path      string  true  "Hazard class, e.g. 1.1 or 3"
// @Success      200    {object}  service.HazmatRouteAdvice
// @Failure      401    {object}  errorResponse
// @Router       /v1/hazmat/{class} [get]
func (h *IntelHandler) HazmatAdvice(c echo.Context) error {
	class := c.Param("class")
	if class == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "hazard class required")
	}
	return c.JSON(http.StatusOK, h.hazmat.Advise(class))
}

// Channels handles POST /v1/channels: resolves the realtime channel set the
// caller's role should subscribe to. The role and company come from the
// token, never the request body.
//
// @Summary      Resolve realtime channels for the caller
// @Tags         intel
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      channelsRequest  false  "Active loads and facility"
// @Success      200   {object}  channelsResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/channels [post]
func (h *IntelHandler) Channels(c echo.Context) error {
	role, companyID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req channelsRequest
	_ = c.Bind(&req)

	channels := service.ChannelsForRole(role, companyID, req.ActiveLoadIDs, req.FacilityID)
	return c.JSON(http.StatusOK, channelsResponse{Channels: channels})
}
