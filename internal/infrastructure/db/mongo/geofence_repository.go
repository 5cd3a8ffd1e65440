package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fleetedge/telematics-core/internal/core/domain"
)

const collectionGeofences = "geofences"

// GeofenceRepository implements ports.GeofenceRepository using MongoDB.
type GeofenceRepository struct {
	col *mongo.Collection
}

func NewGeofenceRepository(db *mongo.Database) *GeofenceRepository {
	return &GeofenceRepository{col: db.Collection(collectionGeofences)}
}

// CreateBatch inserts the whole fence set for a load.
func (r *GeofenceRepository) CreateBatch(ctx context.Context, fences []*domain.Geofence) error {
	if len(fences) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	docs := make([]interface{}, 0, len(fences))
	for _, f := range fences {
		if f.ID == "" {
			f.ID = primitive.NewObjectID().Hex()
		}
		docs = append(docs, f)
	}

	_, err := r.col.InsertMany(ctx, docs)
	return err
}

func (r *GeofenceRepository) ListForLoad(ctx context.Context, loadID string, activeOnly bool) ([]*domain.Geofence, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"load_id": loadID}
	if activeOnly {
		filter["active"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var fences []*domain.Geofence
	if err := cur.All(ctx, &fences); err != nil {
		return nil, err
	}
	return fences, nil
}

// DeactivateForLoad clears the active flag on every fence for the load.
// Fences stay on record; only the flag changes.
func (r *GeofenceRepository) DeactivateForLoad(ctx context.Context, loadID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.UpdateMany(ctx,
		bson.M{"load_id": loadID, "active": true},
		bson.M{"$set": bson.M{"active": false}},
	)
	return err
}

// EnsureIndexes creates necessary indexes on the geofences collection.
func (r *GeofenceRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "load_id", Value: 1}, {Key: "active", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
