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

const collectionDetention = "detention_records"

// DetentionRepository implements ports.DetentionRepository using MongoDB.
type DetentionRepository struct {
	col *mongo.Collection
}

func NewDetentionRepository(db *mongo.Database) *DetentionRepository {
	return &DetentionRepository{col: db.Collection(collectionDetention)}
}

func (r *DetentionRepository) Insert(ctx context.Context, rec *domain.DetentionRecord) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if rec.ID == "" {
		rec.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.col.InsertOne(ctx, rec); err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (r *DetentionRepository) FindOpen(ctx context.Context, loadID string, locationType domain.DetentionLocationType) (*domain.DetentionRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"load_id":       loadID,
		"location_type": string(locationType),
		"exit_at":       bson.M{"$exists": false},
	}

	var rec domain.DetentionRecord
	err := r.col.FindOne(ctx, filter).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

// CloseOpen atomically claims the most recent open record for the pair by
// stamping exit_at in a single findAndModify. Concurrent exits race on the
// same filter; only one wins the claim, the loser sees no open record.
func (r *DetentionRepository) CloseOpen(ctx context.Context, loadID string, locationType domain.DetentionLocationType, exitAt time.Time) (*domain.DetentionRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"load_id":       loadID,
		"location_type": string(locationType),
		"exit_at":       bson.M{"$exists": false},
	}
	update := bson.M{"$set": bson.M{"exit_at": exitAt.UTC()}}
	opts := options.FindOneAndUpdate().
		SetSort(bson.D{{Key: "enter_at", Value: -1}}).
		SetReturnDocument(options.After)

	var rec domain.DetentionRecord
	err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

// Finalize writes the computed billing fields onto a claimed record.
func (r *DetentionRepository) Finalize(ctx context.Context, id string, totalDwellMin, detentionMin int, charge float64, billable bool) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"total_dwell_minutes": totalDwellMin,
			"detention_minutes":   detentionMin,
			"charge":              charge,
			"billable":            billable,
		},
	})
	return err
}

// EnsureIndexes creates necessary indexes on the detention collection.
func (r *DetentionRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "load_id", Value: 1}, {Key: "location_type", Value: 1}, {Key: "enter_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
