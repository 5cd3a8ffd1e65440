package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fleetedge/telematics-core/internal/core/domain"
	"github.com/fleetedge/telematics-core/internal/core/ports"
	"github.com/fleetedge/telematics-core/internal/core/service"
)

// LocationHandler handles GPS breadcrumb ingestion and signal-loss reports.
type LocationHandler struct {
	ingestor ports.BreadcrumbIngestor
	tracker  *service.SignalLossTracker
}

func NewLocationHandler(ingestor ports.BreadcrumbIngestor, tracker *service.SignalLossTracker) *LocationHandler {
	return &LocationHandler{ingestor: ingestor, tracker: tracker}
}

// IngestBatch handles POST /v1/locations: ingests a chronological batch of
// GPS samples for one driver.
//
// @Summary      Ingest a batch of GPS samples
// @Tags         locations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      locationBatchRequest  true  "GPS batch"
// @Success      200   {object}  ports.IngestResult
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/locations [post]
func (h *LocationHandler) IngestBatch(c echo.Context) error {
	role, _, driverID, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req locationBatchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	// Drivers may only report their own telemetry.
	if role == domain.RoleDriver && req.DriverID != driverID {
		return echo.NewHTTPError(http.StatusForbidden, "cannot ingest telemetry for another driver")
	}

	points := make([]domain.LocationPoint, 0, len(req.Points))
	for _, p := range req.Points {
		points = append(points, domain.LocationPoint{
			Lat:            p.Lat,
			Lng:            p.Lng,
			Timestamp:      p.Timestamp,
			SpeedMph:       p.SpeedMph,
			Heading:        p.Heading,
			AccuracyMeters: p.AccuracyMeters,
			AltitudeFeet:   p.AltitudeFeet,
			BatteryPercent: p.BatteryPercent,
			Charging:       p.Charging,
			OdometerMiles:  p.OdometerMiles,
			MockProvider:   p.MockProvider,
		})
	}

	result := h.ingestor.Ingest(c.Request().Context(), ports.IngestInput{
		DriverID:  req.DriverID,
		VehicleID: req.VehicleID,
		LoadID:    req.LoadID,
		LoadState: req.LoadState,
		Points:    points,
	})
	return c.JSON(http.StatusOK, result)
}

// ReportSignalLoss handles POST /v1/signal-loss: a mobile client reporting
// GPS dropout, which arms the exit-suppression grace window.
//
// @Summary      Report GPS signal loss
// @Tags         locations
// @Accept       json
// @Security     BearerAuth
// @Param        body  body  signalLossRequest  false  "Driver (defaults to token identity)"
// @Success      204
// @Failure      401   {object}  errorResponse
// @Router       /v1/signal-loss [post]
func (h *LocationHandler) ReportSignalLoss(c echo.Context) error {
	role, _, driverID, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req signalLossRequest
	_ = c.Bind(&req)

	target := req.DriverID
	if role == domain.RoleDriver || target == "" {
		target = driverID
	}
	if target == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "driver_id required")
	}

	h.tracker.ReportSignalLoss(target)
	return c.NoContent(http.StatusNoContent)
}
