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

const collectionGeotags = "geotags"

// GeotagRepository implements ports.GeotagRepository using MongoDB. The type
// exposes no update or delete: geotags are append-only.
type GeotagRepository struct {
	col *mongo.Collection
}

func NewGeotagRepository(db *mongo.Database) *GeotagRepository {
	return &GeotagRepository{col: db.Collection(collectionGeotags)}
}

func (r *GeotagRepository) Insert(ctx context.Context, tag *domain.Geotag) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if tag.ID == "" {
		tag.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.col.InsertOne(ctx, tag); err != nil {
		return "", err
	}
	return tag.ID, nil
}

func (r *GeotagRepository) ListForLoad(ctx context.Context, loadID string) ([]*domain.Geotag, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{"load_id": loadID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var tags []*domain.Geotag
	if err := cur.All(ctx, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *GeotagRepository) ListForDriver(ctx context.Context, driverID string, limit int) ([]*domain.Geotag, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(int64(limit))
	}
	cur, err := r.col.Find(ctx, bson.M{"driver_id": driverID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var tags []*domain.Geotag
	if err := cur.All(ctx, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// EnsureIndexes creates necessary indexes on the geotags collection.
func (r *GeotagRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "load_id", Value: 1}, {Key: "timestamp", Value: 1}}},
		{Keys: bson.D{{Key: "driver_id", Value: 1}, {Key: "timestamp", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
