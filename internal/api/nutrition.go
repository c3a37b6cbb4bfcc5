package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mtharrison/fitlog/backend/internal/logger"
	"github.com/mtharrison/fitlog/backend/internal/metrics"
	"github.com/mtharrison/fitlog/backend/internal/nutrition"
	"github.com/mtharrison/fitlog/backend/internal/service"
)

// NutritionHandler handles food lookups and energy calculations.
type NutritionHandler struct {
	provider nutrition.Provider
	users    *service.UserService
}

func NewNutritionHandler(provider nutrition.Provider, users *service.UserService) *NutritionHandler {
	return &NutritionHandler{provider: provider, users: users}
}

// RegisterRoutes registers the nutrition routes. The group must already
// be behind auth middleware.
func (h *NutritionHandler) RegisterRoutes(router *gin.RouterGroup) {
	nutrition := router.Group("/nutrition")
	{
		nutrition.GET("/search", h.SearchFoods)
		nutrition.GET("/foods/:name", h.GetFood)
		nutrition.GET("/calculations", h.GetCalculations)
	}
}

// SearchFoods returns reference foods matching ?query=.
func (h *NutritionHandler) SearchFoods(c *gin.Context) {
	foods, err := h.provider.Search(c.Request.Context(), c.Query("query"))
	if err != nil {
		if errors.Is(err, nutrition.ErrInvalidQuery) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "search term is required"})
			return
		}
		logger.L().Error("food search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search foods"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": len(foods), "foods": foods})
}

func (h *NutritionHandler) GetFood(c *gin.Context) {
	food, err := h.provider.Lookup(c.Request.Context(), c.Param("name"))
	if err != nil {
		if errors.Is(err, nutrition.ErrFoodNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "food not found"})
			return
		}
		logger.L().Error("food lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to look up food"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"food": food})
}

// GetCalculations returns BMR, TDEE and calorie recommendations derived
// from the caller's profile.
func (h *NutritionHandler) GetCalculations(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	calcs, err := h.users.EnergyCalculations(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, metrics.ErrIncompleteProfile) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "profile must include weight, height and age"})
			return
		}
		logger.L().Error("calculations failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute calculations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"calculations": calcs})
}
