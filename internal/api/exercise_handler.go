package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/officeappout/out-run-app-sub011/internal/domain"
	"github.com/officeappout/out-run-app-sub011/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExerciseHandler holds the exercise service dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// --- DTOs for API (Data Transfer Objects) ---

// ExerciseRequest defines the expected JSON for creating or updating a
// catalog exercise. Tags arrive as free text and are normalized server-side.
type ExerciseRequest struct {
	Name                    domain.LocalizedText          `json:"name" binding:"required"`
	Domains                 []string                      `json:"domains" binding:"required,min=1"`
	Type                    string                        `json:"type" binding:"required,oneof=repetition duration"`
	Tags                    []string                      `json:"tags" binding:"omitempty"`
	ProgramTargets          map[string]int                `json:"programTargets" binding:"omitempty"`
	Methods                 []domain.ExecutionMethod      `json:"executionMethods" binding:"omitempty"`
	AlternativeRequirements []domain.EquipmentRequirement `json:"alternativeRequirements" binding:"omitempty"`
	RequiredEquipmentID     string                        `json:"requiredEquipmentId" binding:"omitempty"`
	RequiredUserGearID      string                        `json:"requiredUserGearId" binding:"omitempty"`
}

// ExerciseResponse is the DTO for returning catalog exercise details.
type ExerciseResponse struct {
	ID                      string                        `json:"id"`
	Name                    domain.LocalizedText          `json:"name"`
	Domains                 []domain.TrainingDomain       `json:"domains"`
	Type                    domain.ExerciseType           `json:"type"`
	Tags                    []domain.ExerciseTag          `json:"tags,omitempty"`
	ProgramTargets          map[string]int                `json:"programTargets,omitempty"`
	Methods                 []domain.ExecutionMethod      `json:"executionMethods,omitempty"`
	AlternativeRequirements []domain.EquipmentRequirement `json:"alternativeRequirements,omitempty"`
	RequiredEquipmentID     string                        `json:"requiredEquipmentId,omitempty"`
	RequiredUserGearID      string                        `json:"requiredUserGearId,omitempty"`
	CreatedAt               time.Time                     `json:"createdAt"`
	UpdatedAt               time.Time                     `json:"updatedAt"`
}

// MediaUploadRequest asks for a presigned upload slot for exercise media.
type MediaUploadRequest struct {
	ContentType string `json:"contentType" binding:"required"`
}

// MapExerciseToResponse converts a domain.Exercise to ExerciseResponse DTO.
func MapExerciseToResponse(ex *domain.Exercise) ExerciseResponse {
	if ex == nil {
		return ExerciseResponse{}
	}
	return ExerciseResponse{
		ID:                      ex.ID.Hex(),
		Name:                    ex.Name,
		Domains:                 ex.Domains,
		Type:                    ex.Type,
		Tags:                    ex.Tags,
		ProgramTargets:          ex.ProgramTargets,
		Methods:                 ex.Methods,
		AlternativeRequirements: ex.AlternativeRequirements,
		RequiredEquipmentID:     ex.RequiredEquipmentID,
		RequiredUserGearID:      ex.RequiredUserGearID,
		CreatedAt:               ex.CreatedAt,
		UpdatedAt:               ex.UpdatedAt,
	}
}

// MapExercisesToResponse converts a slice of domain.Exercise to DTOs.
func MapExercisesToResponse(exercises []domain.Exercise) []ExerciseResponse {
	responses := make([]ExerciseResponse, len(exercises))
	for i := range exercises {
		responses[i] = MapExerciseToResponse(&exercises[i])
	}
	return responses
}

func (r *ExerciseRequest) toInput() service.ExerciseInput {
	domains := make([]domain.TrainingDomain, len(r.Domains))
	for i, d := range r.Domains {
		domains[i] = domain.TrainingDomain(d)
	}
	return service.ExerciseInput{
		Name:                    r.Name,
		Domains:                 domains,
		Type:                    domain.ExerciseType(r.Type),
		RawTags:                 r.Tags,
		ProgramTargets:          r.ProgramTargets,
		Methods:                 r.Methods,
		AlternativeRequirements: r.AlternativeRequirements,
		RequiredEquipmentID:     r.RequiredEquipmentID,
		RequiredUserGearID:      r.RequiredUserGearID,
	}
}

// --- Handler Methods ---

// CreateExercise handles POST /admin/exercises.
func (h *ExerciseHandler) CreateExercise(c *gin.Context) {
	var req ExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	exercise, err := h.exerciseService.CreateExercise(c.Request.Context(), req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create exercise.")
		}
		return
	}

	c.JSON(http.StatusCreated, MapExerciseToResponse(exercise))
}

// GetExerciseByID handles GET /exercises/:exerciseId.
func (h *ExerciseHandler) GetExerciseByID(c *gin.Context) {
	exerciseID, err := primitive.ObjectIDFromHex(c.Param("exerciseId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise ID format.")
		return
	}

	exercise, err := h.exerciseService.GetExerciseByID(c.Request.Context(), exerciseID)
	if err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			abortWithError(c, http.StatusNotFound, "Exercise not found.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve exercise.")
		}
		return
	}

	c.JSON(http.StatusOK, MapExerciseToResponse(exercise))
}

// GetAllExercises handles GET /exercises.
func (h *ExerciseHandler) GetAllExercises(c *gin.Context) {
	exercises, err := h.exerciseService.GetAllExercises(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve exercises.")
		return
	}

	if exercises == nil {
		c.JSON(http.StatusOK, []ExerciseResponse{})
		return
	}
	c.JSON(http.StatusOK, MapExercisesToResponse(exercises))
}

// UpdateExercise handles PUT /admin/exercises/:exerciseId.
func (h *ExerciseHandler) UpdateExercise(c *gin.Context) {
	exerciseID, err := primitive.ObjectIDFromHex(c.Param("exerciseId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise ID format.")
		return
	}

	var req ExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	exercise, err := h.exerciseService.UpdateExercise(c.Request.Context(), exerciseID, req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExerciseNotFound):
			abortWithError(c, http.StatusNotFound, "Exercise not found.")
		case errors.Is(err, service.ErrValidationFailed):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update exercise.")
		}
		return
	}

	c.JSON(http.StatusOK, MapExerciseToResponse(exercise))
}

// DeleteExercise handles DELETE /admin/exercises/:exerciseId.
func (h *ExerciseHandler) DeleteExercise(c *gin.Context) {
	exerciseID, err := primitive.ObjectIDFromHex(c.Param("exerciseId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise ID format.")
		return
	}

	if err := h.exerciseService.DeleteExercise(c.Request.Context(), exerciseID); err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			abortWithError(c, http.StatusNotFound, "Exercise not found.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete exercise.")
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// RequestMediaUploadURL handles POST /admin/exercises/:exerciseId/media-upload-url.
func (h *ExerciseHandler) RequestMediaUploadURL(c *gin.Context) {
	exerciseID, err := primitive.ObjectIDFromHex(c.Param("exerciseId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise ID format.")
		return
	}

	var req MediaUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	resp, err := h.exerciseService.RequestMediaUploadURL(c.Request.Context(), exerciseID, req.ContentType)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExerciseNotFound):
			abortWithError(c, http.StatusNotFound, "Exercise not found.")
		case errors.Is(err, service.ErrValidationFailed):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrUploadURLError):
			abortWithError(c, http.StatusInternalServerError, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to generate upload URL.")
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// MediaDownloadURL handles GET /exercises/media-url?key=...
func (h *ExerciseHandler) MediaDownloadURL(c *gin.Context) {
	objectKey := c.Query("key")
	if objectKey == "" {
		abortWithError(c, http.StatusBadRequest, "Query parameter 'key' is required.")
		return
	}

	url, err := h.exerciseService.MediaDownloadURL(c.Request.Context(), objectKey)
	if err != nil {
		if errors.Is(err, service.ErrDownloadURLError) {
			abortWithError(c, http.StatusInternalServerError, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to generate download URL.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"downloadUrl": url})
}
