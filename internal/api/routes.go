package api

import (
	"net/http"

	"github.com/officeappout/out-run-app-sub011/internal/cache"
	"github.com/officeappout/out-run-app-sub011/internal/domain"
	"github.com/officeappout/out-run-app-sub011/internal/repository"
	"github.com/officeappout/out-run-app-sub011/internal/service"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	plannerService service.PlannerService,
	exerciseService service.ExerciseService,
	gearCache *cache.GearCache,
	parkRepo repository.ParkRepository,
) {

	plannerHandler := NewPlannerHandler(plannerService, gearCache)
	exerciseHandler := NewExerciseHandler(exerciseService)
	catalogHandler := NewCatalogHandler(gearCache, parkRepo)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", func(c *gin.Context) {
			userIDStr, err := getUserIDFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
				return
			}
			role, _ := getUserRoleFromContext(c)
			c.JSON(http.StatusOK, gin.H{"userId": userIDStr, "role": role})
		})

		// --- Workout Routes ---
		workoutGroup := protected.Group("/workouts")
		{
			// POST /api/v1/workouts/generate
			workoutGroup.POST("/generate", plannerHandler.GenerateWorkout)
			// GET /api/v1/workouts
			workoutGroup.GET("", plannerHandler.GetPlans)
			// GET /api/v1/workouts/{planId}
			workoutGroup.GET("/:planId", plannerHandler.GetPlanByID)
		}

		// --- Catalog Read Routes ---
		protected.GET("/gear", catalogHandler.GetGearDefinitions)
		protected.GET("/parks/:parkId", catalogHandler.GetParkByID)
		protected.GET("/exercises", exerciseHandler.GetAllExercises)
		protected.GET("/exercises/media-url", exerciseHandler.MediaDownloadURL)
		protected.GET("/exercises/:exerciseId", exerciseHandler.GetExerciseByID)

		// --- Admin Routes ---
		// All routes in this group require authentication (from 'protected')
		// AND the user to have the 'admin' role.
		adminGroup := protected.Group("/admin")
		adminGroup.Use(RoleMiddleware(domain.RoleAdmin))
		{
			// POST /api/v1/admin/exercises
			adminGroup.POST("/exercises", exerciseHandler.CreateExercise)
			// GET /api/v1/admin/exercises
			adminGroup.GET("/exercises", exerciseHandler.GetAllExercises)
			// PUT /api/v1/admin/exercises/{exerciseId}
			adminGroup.PUT("/exercises/:exerciseId", exerciseHandler.UpdateExercise)
			// DELETE /api/v1/admin/exercises/{exerciseId}
			adminGroup.DELETE("/exercises/:exerciseId", exerciseHandler.DeleteExercise)
			// POST /api/v1/admin/exercises/{exerciseId}/media-upload-url
			adminGroup.POST("/exercises/:exerciseId/media-upload-url", exerciseHandler.RequestMediaUploadURL)
			// POST /api/v1/admin/gear/refresh
			adminGroup.POST("/gear/refresh", catalogHandler.RefreshGearCache)
		}
	}
}
