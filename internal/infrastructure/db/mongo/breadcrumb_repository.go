package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fleetedge/telematics-core/internal/core/domain"
)

const collectionBreadcrumbs = "breadcrumbs"

// BreadcrumbRepository implements ports.BreadcrumbRepository using MongoDB.
type BreadcrumbRepository struct {
	col *mongo.Collection
}

func NewBreadcrumbRepository(db *mongo.Database) *BreadcrumbRepository {
	return &BreadcrumbRepository{col: db.Collection(collectionBreadcrumbs)}
}

// InsertBatch writes one bounded chunk of breadcrumbs. Unordered so one bad
// document does not sink the chunk.
func (r *BreadcrumbRepository) InsertBatch(ctx context.Context, crumbs []*domain.Breadcrumb) error {
	if len(crumbs) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	docs := make([]interface{}, 0, len(crumbs))
	for _, c := range crumbs {
		if c.ID == "" {
			c.ID = primitive.NewObjectID().Hex()
		}
		docs = append(docs, c)
	}

	_, err := r.col.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	return err
}

// LastForDriver returns the driver's most recent breadcrumb, or (nil, nil)
// when the trail is empty.
func (r *BreadcrumbRepository) LastForDriver(ctx context.Context, driverID string) (*domain.Breadcrumb, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "timestamp", Value: -1}})

	var crumb domain.Breadcrumb
	err := r.col.FindOne(ctx, bson.M{"driver_id": driverID}, opts).Decode(&crumb)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &crumb, nil
}

// EnsureIndexes creates necessary indexes on the breadcrumbs collection.
func (r *BreadcrumbRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "driver_id", Value: 1}, {Key: "timestamp", Value: -1}}},
		{Keys: bson.D{{Key: "load_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
