package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fleetedge/telematics-core/internal/core/domain"
	"github.com/fleetedge/telematics-core/internal/core/ports"
)

const (
	collectionGeofenceEvents = "geofence_events"
	collectionStateCrossings = "state_crossings"
)

// EventRepository implements ports.EventRepository using MongoDB. Both
// collections are append-only audit trails.
type EventRepository struct {
	db *mongo.Database
}

// NewEventRepository creates a new EventRepository.
func NewEventRepository(db *mongo.Database) ports.EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) InsertGeofenceEvent(ctx context.Context, event *domain.GeofenceEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"geofence_id":   event.GeofenceID,
		"geofence_type": string(event.GeofenceType),
		"driver_id":     event.DriverID,
		"action":        string(event.Action),
		"location":      event.Location,
		"timestamp":     event.Timestamp.UTC(),
		"processed_at":  time.Now().UTC(),
	}
	if event.LoadID != "" {
		doc["load_id"] = event.LoadID
	}
	if event.DwellSeconds > 0 {
		doc["dwell_seconds"] = event.DwellSeconds
	}

	_, err := r.db.Collection(collectionGeofenceEvents).InsertOne(ctx, doc)
	return err
}

func (r *EventRepository) InsertStateCrossing(ctx context.Context, crossing *domain.StateCrossing) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.db.Collection(collectionStateCrossings).InsertOne(ctx, bson.M{
		"load_id":    crossing.LoadID,
		"driver_id":  crossing.DriverID,
		"from_state": crossing.FromState,
		"to_state":   crossing.ToState,
		"location":   crossing.Location,
		"timestamp":  crossing.Timestamp.UTC(),
	})
	return err
}
