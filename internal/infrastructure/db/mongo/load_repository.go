package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fleetedge/telematics-core/internal/core/domain"
)

const collectionLoads = "loads"

// LoadRepository implements ports.LoadRepository over the loads collection
// owned by the shipment-management system. This core touches only the status
// field.
type LoadRepository struct {
	col *mongo.Collection
}

func NewLoadRepository(db *mongo.Database) *LoadRepository {
	return &LoadRepository{col: db.Collection(collectionLoads)}
}

func (r *LoadRepository) GetStatus(ctx context.Context, loadID string) (domain.LoadStatus, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var load domain.Load
	err := r.col.FindOne(ctx, bson.M{"_id": loadID}).Decode(&load)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", domain.ErrLoadNotFound
		}
		return "", err
	}
	return load.Status, nil
}

func (r *LoadRepository) SetStatus(ctx context.Context, loadID string, status domain.LoadStatus) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": loadID},
		bson.M{"$set": bson.M{"status": string(status)}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrLoadNotFound
	}
	return nil
}
