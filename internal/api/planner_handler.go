package api

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/officeappout/out-run-app-sub011/internal/cache"
	"github.com/officeappout/out-run-app-sub011/internal/domain"
	"github.com/officeappout/out-run-app-sub011/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlannerHandler holds the workout generation dependencies.
type PlannerHandler struct {
	plannerService service.PlannerService
	gearCache      *cache.GearCache
}

// NewPlannerHandler creates a new PlannerHandler.
func NewPlannerHandler(plannerService service.PlannerService, gearCache *cache.GearCache) *PlannerHandler {
	return &PlannerHandler{plannerService: plannerService, gearCache: gearCache}
}

// --- DTOs for API (Data Transfer Objects) ---

// GenerateWorkoutRequest defines the knobs the client may supply for one
// generation call. Everything is optional; omitted fields use defaults.
type GenerateWorkoutRequest struct {
	DurationMinutes int    `json:"durationMinutes" binding:"omitempty,min=1"`
	Intensity       string `json:"intensity" binding:"omitempty,oneof=high normal low"`
	Location        string `json:"location" binding:"omitempty"`
	ParkID          string `json:"parkId" binding:"omitempty"`
}

// PlanEntryResponse is the DTO for one exercise inside a plan. GearName is
// enriched from the gear-definition cache when the method references gear.
type PlanEntryResponse struct {
	ExerciseID      string                 `json:"exerciseId"`
	Name            domain.LocalizedText   `json:"name"`
	Domain          domain.TrainingDomain  `json:"domain"`
	Type            domain.ExerciseType    `json:"type"`
	Tags            []domain.ExerciseTag   `json:"tags,omitempty"`
	Method          domain.ExecutionMethod `json:"method"`
	GearName        *domain.LocalizedText  `json:"gearName,omitempty"`
	Sets            int                    `json:"sets"`
	Reps            int                    `json:"reps,omitempty"`
	DurationSeconds int                    `json:"durationSeconds,omitempty"`
	RestSeconds     int                    `json:"restSeconds"`
}

// WorkoutPlanResponse is the DTO for returning a plan.
type WorkoutPlanResponse struct {
	ID               string                  `json:"id"`
	UserID           string                  `json:"userId"`
	FocusDomains     []domain.TrainingDomain `json:"focusDomains"`
	Intensity        domain.Intensity        `json:"intensity"`
	Location         domain.Location         `json:"location"`
	ParkID           string                  `json:"parkId,omitempty"`
	Entries          []PlanEntryResponse     `json:"entries"`
	EstimatedMinutes int                     `json:"estimatedMinutes"`
	CreatedAt        time.Time               `json:"createdAt"`
}

// GeneratedWorkoutResponse pairs the plan with its classification.
type GeneratedWorkoutResponse struct {
	Plan           WorkoutPlanResponse         `json:"plan"`
	Classification domain.ClassificationResult `json:"classification"`
}

// MapPlanToResponse converts a domain.WorkoutPlan to its DTO, enriching
// entries with gear display names from the given index (nil is fine).
func MapPlanToResponse(plan *domain.WorkoutPlan, gearNames map[string]domain.LocalizedText) WorkoutPlanResponse {
	if plan == nil {
		return WorkoutPlanResponse{}
	}
	entries := make([]PlanEntryResponse, len(plan.Entries))
	for i, e := range plan.Entries {
		entry := PlanEntryResponse{
			ExerciseID:      e.ExerciseID.Hex(),
			Name:            e.Name,
			Domain:          e.Domain,
			Type:            e.Type,
			Tags:            e.Tags,
			Method:          e.Method,
			Sets:            e.Sets,
			Reps:            e.Reps,
			DurationSeconds: e.DurationSeconds,
			RestSeconds:     e.RestSeconds,
		}
		if e.Method.GearID != "" {
			if name, ok := gearNames[e.Method.GearID]; ok {
				entry.GearName = &name
			}
		}
		entries[i] = entry
	}

	resp := WorkoutPlanResponse{
		ID:               plan.ID.Hex(),
		UserID:           plan.UserID.Hex(),
		FocusDomains:     plan.FocusDomains,
		Intensity:        plan.Intensity,
		Location:         plan.Location,
		Entries:          entries,
		EstimatedMinutes: plan.EstimatedMinutes,
		CreatedAt:        plan.CreatedAt,
	}
	if plan.ParkID != nil {
		resp.ParkID = plan.ParkID.Hex()
	}
	return resp
}

// --- Handler Methods ---

// GenerateWorkout handles POST /workouts/generate.
func (h *PlannerHandler) GenerateWorkout(c *gin.Context) {
	var req GenerateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	userID, err := objectIDFromToken(c)
	if err != nil {
		return // objectIDFromToken already aborted
	}

	opts := service.GenerateOptions{
		DurationMinutes: req.DurationMinutes,
		Intensity:       domain.Intensity(req.Intensity),
		Location:        domain.Location(req.Location),
	}
	if req.ParkID != "" {
		parkID, err := primitive.ObjectIDFromHex(req.ParkID)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid park ID format.")
			return
		}
		opts.ParkID = &parkID
	}

	generated, err := h.plannerService.GenerateWorkout(c.Request.Context(), userID, opts)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProfileNotFound):
			abortWithError(c, http.StatusNotFound, "User profile not found.")
		case errors.Is(err, service.ErrParkNotFound):
			abortWithError(c, http.StatusNotFound, "Park not found.")
		default:
			log.Printf("ERROR: generating workout for user %s: %v", userID.Hex(), err)
			abortWithError(c, http.StatusInternalServerError, "Failed to generate workout.")
		}
		return
	}

	c.JSON(http.StatusOK, GeneratedWorkoutResponse{
		Plan:           MapPlanToResponse(&generated.Plan, h.gearNameIndex(c)),
		Classification: generated.Classification,
	})
}

// GetPlanByID handles GET /workouts/:planId.
func (h *PlannerHandler) GetPlanByID(c *gin.Context) {
	userID, err := objectIDFromToken(c)
	if err != nil {
		return
	}
	planID, err := primitive.ObjectIDFromHex(c.Param("planId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid plan ID format.")
		return
	}

	plan, err := h.plannerService.GetPlanByID(c.Request.Context(), userID, planID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPlanNotFound):
			abortWithError(c, http.StatusNotFound, "Workout plan not found.")
		case errors.Is(err, service.ErrPlanAccessDenied):
			abortWithError(c, http.StatusForbidden, "Access denied to this workout plan.")
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve workout plan.")
		}
		return
	}

	c.JSON(http.StatusOK, MapPlanToResponse(plan, h.gearNameIndex(c)))
}

// GetPlans handles GET /workouts for the authenticated user.
func (h *PlannerHandler) GetPlans(c *gin.Context) {
	userID, err := objectIDFromToken(c)
	if err != nil {
		return
	}

	plans, err := h.plannerService.GetPlansByUser(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve workout plans.")
		return
	}

	gearNames := h.gearNameIndex(c)
	responses := make([]WorkoutPlanResponse, len(plans))
	for i := range plans {
		responses[i] = MapPlanToResponse(&plans[i], gearNames)
	}
	c.JSON(http.StatusOK, responses)
}

// gearNameIndex fetches gear display names for response enrichment. A cache
// or catalog failure only costs the enrichment, never the response.
func (h *PlannerHandler) gearNameIndex(c *gin.Context) map[string]domain.LocalizedText {
	index, err := h.gearCache.NameIndex(c.Request.Context())
	if err != nil {
		log.Printf("WARN: failed to load gear names for response enrichment: %v", err)
		return nil
	}
	return index
}

// objectIDFromToken extracts the authenticated user's ObjectID, aborting
// the request on failure.
func objectIDFromToken(c *gin.Context) (primitive.ObjectID, error) {
	userIDStr, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return primitive.NilObjectID, err
	}
	userID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid user ID format in token.")
		return primitive.NilObjectID, err
	}
	return userID, nil
}
