package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fleetedge/telematics-core/internal/core/domain"
	"github.com/fleetedge/telematics-core/internal/core/ports"
)

// EventDispatcher is the interface the handler uses to enqueue crossings.
type EventDispatcher interface {
	Enqueue(event ports.GeofenceEventInput)
	EnqueueBatch(events []ports.GeofenceEventInput)
}

// EventHandler handles geofence crossing ingestion.
type EventHandler struct {
	dispatcher EventDispatcher
}

// NewEventHandler creates an EventHandler backed by the given dispatcher.
func NewEventHandler(dispatcher EventDispatcher) *EventHandler {
	return &EventHandler{dispatcher: dispatcher}
}

// Receive handles POST /v1/geofence-events: enqueues a single crossing, returns 202.
//
// @Summary      Ingest a single geofence crossing
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      geofenceEventRequest  true  "Geofence crossing"
// @Success      202   {object}  acceptedResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/geofence-events [post]
func (h *EventHandler) Receive(c echo.Context) error {
	var req geofenceEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	h.dispatcher.Enqueue(toEventInput(req))
	return c.JSON(http.StatusAccepted, acceptedResponse{Message: "event accepted"})
}

// ReceiveBatch handles POST /v1/geofence-events/batch: enqueues a batch, returns 202.
//
// @Summary      Ingest a batch of geofence crossings
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      []geofenceEventRequest  true  "Array of geofence crossings"
// @Success      202   {object}  acceptedResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/geofence-events/batch [post]
func (h *EventHandler) ReceiveBatch(c echo.Context) error {
	var reqs []geofenceEventRequest
	if err := c.Bind(&reqs); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if len(reqs) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "batch cannot be empty")
	}

	inputs := make([]ports.GeofenceEventInput, 0, len(reqs))
	for i, req := range reqs {
		if err := c.Validate(&req); err != nil {
			return echo.NewHTTPError(http.StatusUnprocessableEntity,
				fmt.Sprintf("event[%d]: %s", i, err.Error()))
		}
		inputs = append(inputs, toEventInput(req))
	}

	h.dispatcher.EnqueueBatch(inputs)
	return c.JSON(http.StatusAccepted, acceptedResponse{
		Message: "events accepted",
		Count:   len(inputs),
	})
}

// toEventInput maps the HTTP request to the processor DTO.
func toEventInput(r geofenceEventRequest) ports.GeofenceEventInput {
	return ports.GeofenceEventInput{
		GeofenceID:   r.GeofenceID,
		GeofenceType: domain.GeofenceType(r.GeofenceType),
		DriverID:     r.DriverID,
		LoadID:       r.LoadID,
		Action:       domain.GeofenceAction(r.Action),
		Location:     domain.Coordinates{Lat: r.Location.Lat, Lng: r.Location.Lng},
		DwellSeconds: r.DwellSeconds,
		Timestamp:    r.Timestamp,
		FromState:    r.FromState,
		ToState:      r.ToState,
	}
}
