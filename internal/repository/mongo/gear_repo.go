package mongo

import (
	"context"
	"errors"

	"github.com/officeappout/out-run-app-sub011/internal/domain"
	"github.com/officeappout/out-run-app-sub011/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const gearCollectionName = "gear"

// mongoGearRepository implements repository.GearRepository
type mongoGearRepository struct {
	collection *mongo.Collection
}

// NewMongoGearRepository creates a new Gear repository backed by MongoDB.
func NewMongoGearRepository(db *mongo.Database) repository.GearRepository {
	return &mongoGearRepository{
		collection: db.Collection(gearCollectionName),
	}
}

// GetAll retrieves every gear definition.
func (r *mongoGearRepository) GetAll(ctx context.Context) ([]domain.Gear, error) {
	var gear []domain.Gear

	findOptions := options.Find().SetSort(bson.D{{Key: "gearId", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &gear); err != nil {
		return nil, err
	}

	return gear, nil
}

// GetByGearID retrieves one gear definition by its stable string key.
func (r *mongoGearRepository) GetByGearID(ctx context.Context, gearID string) (*domain.Gear, error) {
	var gear domain.Gear
	filter := bson.M{"gearId": gearID}

	err := r.collection.FindOne(ctx, filter).Decode(&gear)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &gear, nil
}

// EnsureGearIndexes creates necessary indexes for the gear collection.
func EnsureGearIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "gearId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
