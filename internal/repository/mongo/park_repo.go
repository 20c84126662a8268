package mongo

import (
	"context"
	"errors"

	"github.com/officeappout/out-run-app-sub011/internal/domain"
	"github.com/officeappout/out-run-app-sub011/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const parkCollectionName = "parks"

// mongoParkRepository implements repository.ParkRepository
type mongoParkRepository struct {
	collection *mongo.Collection
}

// NewMongoParkRepository creates a new Park repository backed by MongoDB.
func NewMongoParkRepository(db *mongo.Database) repository.ParkRepository {
	return &mongoParkRepository{
		collection: db.Collection(parkCollectionName),
	}
}

// GetByID retrieves a park with its installed equipment list.
func (r *mongoParkRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Park, error) {
	var park domain.Park
	filter := bson.M{"_id": id}

	err := r.collection.FindOne(ctx, filter).Decode(&park)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &park, nil
}
