package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mtharrison/fitlog/backend/internal/logger"
	"github.com/mtharrison/fitlog/backend/internal/service"
	"github.com/mtharrison/fitlog/backend/internal/types"
)

// WorkoutHandler handles workout CRUD and stats requests.
type WorkoutHandler struct {
	workouts *service.WorkoutService
}

func NewWorkoutHandler(workouts *service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workouts: workouts}
}

// RegisterRoutes registers the workout routes. The group must already be
// behind auth middleware.
func (h *WorkoutHandler) RegisterRoutes(router *gin.RouterGroup) {
	workouts := router.Group("/workouts")
	{
		workouts.POST("", h.CreateWorkout)
		workouts.GET("", h.ListWorkouts)
		workouts.GET("/stats/weekly", h.WeeklyStats)
		workouts.PUT("/:id", h.UpdateWorkout)
		workouts.DELETE("/:id", h.DeleteWorkout)
	}
}

func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req types.CreateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workout, err := h.workouts.CreateWorkout(c.Request.Context(), userID, &req)
	if err != nil {
		logger.L().Error("workout create failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create workout"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"workout": workout})
}

func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	filter := service.WorkoutFilter{Type: c.Query("type")}
	if raw := c.Query("date"); raw != "" {
		day, err := service.ParseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
			return
		}
		filter.Date = day
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		filter.Limit = limit
	}

	list, err := h.workouts.ListWorkouts(c.Request.Context(), userID, filter)
	if err != nil {
		logger.L().Error("workout list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list workouts"})
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *WorkoutHandler) UpdateWorkout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	workoutID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid workout ID"})
		return
	}

	var req types.UpdateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workout, err := h.workouts.UpdateWorkout(c.Request.Context(), userID, workoutID, &req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "workout not found"})
		case errors.Is(err, service.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "not authorized to modify this workout"})
		default:
			logger.L().Error("workout update failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update workout"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"workout": workout})
}

func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	workoutID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid workout ID"})
		return
	}

	if err := h.workouts.DeleteWorkout(c.Request.Context(), userID, workoutID); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "workout not found"})
		case errors.Is(err, service.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "not authorized to delete this workout"})
		default:
			logger.L().Error("workout delete failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete workout"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "workout deleted"})
}

func (h *WorkoutHandler) WeeklyStats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	days, err := h.workouts.WeeklyStats(c.Request.Context(), userID)
	if err != nil {
		logger.L().Error("workout stats failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get workout stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"days": days})
}
