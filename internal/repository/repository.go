package repository

import (
	"context"

	"github.com/officeappout/out-run-app-sub011/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user profiles.
// Progression data on the profile is mutated by the progression/reward
// subsystem; the engine only ever reads it.
type UserRepository interface {
	Create(ctx context.Context, profile *domain.UserProfile) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.UserProfile, error)
	GetByEmail(ctx context.Context, email string) (*domain.UserProfile, error)
}

// ExerciseRepository defines the interface for the exercise catalog.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error)
	GetByDomain(ctx context.Context, d domain.TrainingDomain) ([]domain.Exercise, error)
	GetAll(ctx context.Context) ([]domain.Exercise, error)
	Update(ctx context.Context, exercise *domain.Exercise) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ProgramRepository defines the interface for program templates.
type ProgramRepository interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.ProgramTemplate, error)
	GetAll(ctx context.Context) ([]domain.ProgramTemplate, error)
}

// GearRepository defines the interface for gear definitions.
type GearRepository interface {
	GetAll(ctx context.Context) ([]domain.Gear, error)
	GetByGearID(ctx context.Context, gearID string) (*domain.Gear, error)
}

// ParkRepository defines the interface for park facility data.
type ParkRepository interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Park, error)
}

// WorkoutPlanRepository defines the interface for persisting generated
// plans for the workout player.
type WorkoutPlanRepository interface {
	Create(ctx context.Context, plan *domain.WorkoutPlan) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutPlan, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.WorkoutPlan, error)
}
