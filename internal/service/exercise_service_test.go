package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/officeappout/out-run-app-sub011/internal/domain"
	"github.com/officeappout/out-run-app-sub011/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// catalogExerciseRepo is an in-memory ExerciseRepository for catalog tests.
type catalogExerciseRepo struct {
	store map[primitive.ObjectID]*domain.Exercise
}

func newCatalogExerciseRepo() *catalogExerciseRepo {
	return &catalogExerciseRepo{store: map[primitive.ObjectID]*domain.Exercise{}}
}

func (r *catalogExerciseRepo) Create(ctx context.Context, ex *domain.Exercise) (primitive.ObjectID, error) {
	ex.ID = primitive.NewObjectID()
	ex.CreatedAt = time.Now()
	ex.UpdatedAt = ex.CreatedAt
	r.store[ex.ID] = ex
	return ex.ID, nil
}

func (r *catalogExerciseRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error) {
	if ex, ok := r.store[id]; ok {
		return ex, nil
	}
	return nil, repository.ErrNotFound
}

func (r *catalogExerciseRepo) GetByDomain(ctx context.Context, d domain.TrainingDomain) ([]domain.Exercise, error) {
	return nil, nil
}

func (r *catalogExerciseRepo) GetAll(ctx context.Context) ([]domain.Exercise, error) {
	var all []domain.Exercise
	for _, ex := range r.store {
		all = append(all, *ex)
	}
	return all, nil
}

func (r *catalogExerciseRepo) Update(ctx context.Context, ex *domain.Exercise) error {
	if _, ok := r.store[ex.ID]; !ok {
		return repository.ErrNotFound
	}
	r.store[ex.ID] = ex
	return nil
}

func (r *catalogExerciseRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := r.store[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.store, id)
	return nil
}

// stubMediaStorage returns predictable URLs.
type stubMediaStorage struct{}

func (stubMediaStorage) GeneratePresignedUploadURL(ctx context.Context, objectKey, contentType string, expires time.Duration) (string, error) {
	return "https://storage.test/upload/" + objectKey, nil
}

func (stubMediaStorage) GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error) {
	return "https://storage.test/download/" + objectKey, nil
}

func (stubMediaStorage) DeleteObject(ctx context.Context, objectKey string) error { return nil }

func validInput() ExerciseInput {
	return ExerciseInput{
		Name:    domain.LocalizedText{En: "Pistol Squat", He: "סקוואט פיסטול"},
		Domains: []domain.TrainingDomain{domain.DomainLowerBody},
		Type:    domain.ExerciseTypeRepetition,
	}
}

func TestCreateExerciseNormalizesTags(t *testing.T) {
	svc := NewExerciseService(newCatalogExerciseRepo(), stubMediaStorage{})

	input := validInput()
	input.RawTags = []string{"Plyometric", "שיווי משקל", "explosive", "made-up-tag", " Technique "}

	ex, err := svc.CreateExercise(context.Background(), input)
	require.NoError(t, err)

	// Aliases fold to the enum, duplicates collapse, unknown tags drop.
	assert.Equal(t, []domain.ExerciseTag{domain.TagExplosive, domain.TagBalance, domain.TagTechnique}, ex.Tags)
}

func TestCreateExerciseValidation(t *testing.T) {
	svc := NewExerciseService(newCatalogExerciseRepo(), stubMediaStorage{})

	tests := []struct {
		name   string
		mutate func(*ExerciseInput)
	}{
		{"missing english name", func(in *ExerciseInput) { in.Name.En = "" }},
		{"no domains", func(in *ExerciseInput) { in.Domains = nil }},
		{"unknown domain", func(in *ExerciseInput) { in.Domains = []domain.TrainingDomain{"cardio"} }},
		{"unknown type", func(in *ExerciseInput) { in.Type = "isometric" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)
			_, err := svc.CreateExercise(context.Background(), input)
			assert.ErrorIs(t, err, ErrValidationFailed)
		})
	}
}

func TestUpdateExerciseNotFound(t *testing.T) {
	svc := NewExerciseService(newCatalogExerciseRepo(), stubMediaStorage{})

	_, err := svc.UpdateExercise(context.Background(), primitive.NewObjectID(), validInput())
	assert.ErrorIs(t, err, ErrExerciseNotFound)
}

func TestDeleteExercise(t *testing.T) {
	repo := newCatalogExerciseRepo()
	svc := NewExerciseService(repo, stubMediaStorage{})

	ex, err := svc.CreateExercise(context.Background(), validInput())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteExercise(context.Background(), ex.ID))
	assert.ErrorIs(t, svc.DeleteExercise(context.Background(), ex.ID), ErrExerciseNotFound)
}

func TestRequestMediaUploadURL(t *testing.T) {
	repo := newCatalogExerciseRepo()
	svc := NewExerciseService(repo, stubMediaStorage{})

	ex, err := svc.CreateExercise(context.Background(), validInput())
	require.NoError(t, err)

	t.Run("video content type produces a scoped key", func(t *testing.T) {
		resp, err := svc.RequestMediaUploadURL(context.Background(), ex.ID, "video/mp4")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(resp.ObjectKey, "exercise-media/"+ex.ID.Hex()+"/"))
		assert.True(t, strings.HasSuffix(resp.ObjectKey, ".mp4"))
		assert.Contains(t, resp.UploadURL, resp.ObjectKey)
	})

	t.Run("non-media content type rejected", func(t *testing.T) {
		_, err := svc.RequestMediaUploadURL(context.Background(), ex.ID, "application/pdf")
		assert.Error(t, err)
	})

	t.Run("unknown exercise rejected", func(t *testing.T) {
		_, err := svc.RequestMediaUploadURL(context.Background(), primitive.NewObjectID(), "video/mp4")
		assert.ErrorIs(t, err, ErrExerciseNotFound)
	})
}
