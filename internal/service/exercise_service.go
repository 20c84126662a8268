package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/officeappout/out-run-app-sub011/internal/domain"
	"github.com/officeappout/out-run-app-sub011/internal/repository"
	"github.com/officeappout/out-run-app-sub011/internal/storage"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrValidationFailed = errors.New("exercise validation failed")
	ErrUploadURLError   = errors.New("failed to generate upload URL")
	ErrDownloadURLError = errors.New("failed to generate download URL")
)

// ExerciseInput carries the admin-supplied fields of a catalog entry.
// RawTags are free-text content-team tags; unknown ones are dropped
// during normalization.
type ExerciseInput struct {
	Name                    domain.LocalizedText
	Domains                 []domain.TrainingDomain
	Type                    domain.ExerciseType
	RawTags                 []string
	ProgramTargets          map[string]int
	Methods                 []domain.ExecutionMethod
	AlternativeRequirements []domain.EquipmentRequirement
	RequiredEquipmentID     string
	RequiredUserGearID      string
}

// MediaUploadResponse returns the presigned PUT URL plus the object key
// the admin reports back when attaching the media to an execution method.
type MediaUploadResponse struct {
	UploadURL string `json:"uploadUrl"`
	ObjectKey string `json:"objectKey"`
}

// ExerciseService manages the exercise catalog for the admin dashboard.
type ExerciseService interface {
	CreateExercise(ctx context.Context, input ExerciseInput) (*domain.Exercise, error)
	GetExerciseByID(ctx context.Context, exerciseID primitive.ObjectID) (*domain.Exercise, error)
	GetAllExercises(ctx context.Context) ([]domain.Exercise, error)
	UpdateExercise(ctx context.Context, exerciseID primitive.ObjectID, input ExerciseInput) (*domain.Exercise, error)
	DeleteExercise(ctx context.Context, exerciseID primitive.ObjectID) error

	RequestMediaUploadURL(ctx context.Context, exerciseID primitive.ObjectID, contentType string) (*MediaUploadResponse, error)
	MediaDownloadURL(ctx context.Context, objectKey string) (string, error)
}

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
	mediaStorage storage.MediaStorage
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(exerciseRepo repository.ExerciseRepository, mediaStorage storage.MediaStorage) ExerciseService {
	return &exerciseService{
		exerciseRepo: exerciseRepo,
		mediaStorage: mediaStorage,
	}
}

// normalizeInput validates an ExerciseInput and folds its raw tags into
// the normalized tag enum.
func normalizeInput(input *ExerciseInput) ([]domain.ExerciseTag, error) {
	if input.Name.En == "" {
		return nil, ErrValidationFailed
	}
	if len(input.Domains) == 0 {
		return nil, ErrValidationFailed
	}
	for _, d := range input.Domains {
		if !d.IsValid() {
			return nil, fmt.Errorf("%w: unknown training domain %q", ErrValidationFailed, d)
		}
	}
	if input.Type != domain.ExerciseTypeRepetition && input.Type != domain.ExerciseTypeDuration {
		return nil, fmt.Errorf("%w: unknown exercise type %q", ErrValidationFailed, input.Type)
	}

	var tags []domain.ExerciseTag
	seen := make(map[domain.ExerciseTag]bool)
	for _, raw := range input.RawTags {
		tag, ok := domain.NormalizeTag(raw)
		if !ok || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags, nil
}

// CreateExercise handles the creation of a new catalog entry.
func (s *exerciseService) CreateExercise(ctx context.Context, input ExerciseInput) (*domain.Exercise, error) {
	tags, err := normalizeInput(&input)
	if err != nil {
		return nil, err
	}

	exercise := &domain.Exercise{
		Name:                    input.Name,
		Domains:                 input.Domains,
		Type:                    input.Type,
		Tags:                    tags,
		ProgramTargets:          input.ProgramTargets,
		Methods:                 input.Methods,
		AlternativeRequirements: input.AlternativeRequirements,
		RequiredEquipmentID:     input.RequiredEquipmentID,
		RequiredUserGearID:      input.RequiredUserGearID,
	}

	exerciseID, err := s.exerciseRepo.Create(ctx, exercise)
	if err != nil {
		return nil, err
	}
	// Fetch again so CreatedAt/UpdatedAt come back populated.
	return s.exerciseRepo.GetByID(ctx, exerciseID)
}

// GetExerciseByID retrieves a single catalog entry.
func (s *exerciseService) GetExerciseByID(ctx context.Context, exerciseID primitive.ObjectID) (*domain.Exercise, error) {
	exercise, err := s.exerciseRepo.GetByID(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return exercise, nil
}

// GetAllExercises retrieves the full catalog for the admin dashboard.
func (s *exerciseService) GetAllExercises(ctx context.Context) ([]domain.Exercise, error) {
	return s.exerciseRepo.GetAll(ctx)
}

// UpdateExercise replaces the editable fields of an existing entry.
func (s *exerciseService) UpdateExercise(ctx context.Context, exerciseID primitive.ObjectID, input ExerciseInput) (*domain.Exercise, error) {
	if exerciseID == primitive.NilObjectID {
		return nil, errors.New("exercise ID is required")
	}
	tags, err := normalizeInput(&input)
	if err != nil {
		return nil, err
	}

	existing, err := s.exerciseRepo.GetByID(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}

	existing.Name = input.Name
	existing.Domains = input.Domains
	existing.Type = input.Type
	existing.Tags = tags
	existing.ProgramTargets = input.ProgramTargets
	existing.Methods = input.Methods
	existing.AlternativeRequirements = input.AlternativeRequirements
	existing.RequiredEquipmentID = input.RequiredEquipmentID
	existing.RequiredUserGearID = input.RequiredUserGearID

	if err = s.exerciseRepo.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return existing, nil
}

// DeleteExercise removes a catalog entry.
func (s *exerciseService) DeleteExercise(ctx context.Context, exerciseID primitive.ObjectID) error {
	if exerciseID == primitive.NilObjectID {
		return errors.New("exercise ID is required")
	}

	err := s.exerciseRepo.Delete(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrExerciseNotFound
		}
		return err
	}
	return nil
}

// RequestMediaUploadURL generates a presigned URL for uploading a demo
// video or thumbnail for a catalog entry.
func (s *exerciseService) RequestMediaUploadURL(ctx context.Context, exerciseID primitive.ObjectID, contentType string) (*MediaUploadResponse, error) {
	if exerciseID == primitive.NilObjectID {
		return nil, errors.New("exercise ID is required")
	}
	lowered := strings.ToLower(contentType)
	if !strings.HasPrefix(lowered, "video/") && !strings.HasPrefix(lowered, "image/") {
		return nil, errors.New("invalid or missing media content type")
	}

	// Make sure the entry exists before handing out an upload slot.
	if _, err := s.exerciseRepo.GetByID(ctx, exerciseID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}

	uniqueID := uuid.NewString()
	fileExtension := ""
	if parts := strings.Split(contentType, "/"); len(parts) == 2 {
		fileExtension = parts[1]
	}
	objectKey := path.Join("exercise-media", exerciseID.Hex(), fmt.Sprintf("%s.%s", uniqueID, fileExtension))

	uploadURL, err := s.mediaStorage.GeneratePresignedUploadURL(ctx, objectKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, ErrUploadURLError
	}

	return &MediaUploadResponse{UploadURL: uploadURL, ObjectKey: objectKey}, nil
}

// MediaDownloadURL generates a temporary URL for viewing a stored media
// object (execution-method demo video or thumbnail).
func (s *exerciseService) MediaDownloadURL(ctx context.Context, objectKey string) (string, error) {
	if objectKey == "" {
		return "", errors.New("object key is required")
	}
	url, err := s.mediaStorage.GeneratePresignedDownloadURL(ctx, objectKey, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return "", ErrDownloadURLError
	}
	return url, nil
}
