package api

import (
	"errors"
	"net/http"

	"github.com/officeappout/out-run-app-sub011/internal/cache"
	"github.com/officeappout/out-run-app-sub011/internal/domain"
	"github.com/officeappout/out-run-app-sub011/internal/repository"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CatalogHandler serves the read-only reference data the client needs to
// render plans: gear definitions and park facilities.
type CatalogHandler struct {
	gearCache *cache.GearCache
	parkRepo  repository.ParkRepository
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(gearCache *cache.GearCache, parkRepo repository.ParkRepository) *CatalogHandler {
	return &CatalogHandler{gearCache: gearCache, parkRepo: parkRepo}
}

// GetGearDefinitions handles GET /gear, served from the TTL cache.
func (h *CatalogHandler) GetGearDefinitions(c *gin.Context) {
	gear, err := h.gearCache.Definitions(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve gear definitions.")
		return
	}
	if gear == nil {
		c.JSON(http.StatusOK, []domain.Gear{})
		return
	}
	c.JSON(http.StatusOK, gear)
}

// GetParkByID handles GET /parks/:parkId.
func (h *CatalogHandler) GetParkByID(c *gin.Context) {
	parkID, err := primitive.ObjectIDFromHex(c.Param("parkId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid park ID format.")
		return
	}

	park, err := h.parkRepo.GetByID(c.Request.Context(), parkID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			abortWithError(c, http.StatusNotFound, "Park not found.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve park.")
		}
		return
	}

	c.JSON(http.StatusOK, park)
}

// RefreshGearCache handles POST /admin/gear/refresh. Admins call this after
// editing gear content so clients see the change before the TTL expires.
func (h *CatalogHandler) RefreshGearCache(c *gin.Context) {
	h.gearCache.Invalidate()
	c.JSON(http.StatusOK, gin.H{"message": "gear cache invalidated"})
}
