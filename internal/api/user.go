package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mtharrison/fitlog/backend/internal/logger"
	"github.com/mtharrison/fitlog/backend/internal/service"
	"github.com/mtharrison/fitlog/backend/internal/types"
)

// UserHandler handles profile, goals, daily-log and dashboard requests.
type UserHandler struct {
	users     *service.UserService
	dashboard *service.DashboardService
}

func NewUserHandler(users *service.UserService, dashboard *service.DashboardService) *UserHandler {
	return &UserHandler{users: users, dashboard: dashboard}
}

// RegisterRoutes registers the user routes. The group must already be
// behind auth middleware.
func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	user := router.Group("/user")
	{
		user.GET("/profile", h.GetProfile)
		user.PUT("/profile", h.UpdateProfile)
		user.GET("/daily-log", h.GetDailyLog)
		user.PUT("/daily-log", h.UpdateDailyLog)
		user.GET("/dashboard", h.GetDashboard)
	}

	goals := router.Group("/goals")
	{
		goals.GET("", h.GetGoals)
		goals.PUT("", h.UpdateGoals)
	}
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	user, err := h.users.GetUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get profile"})
		return
	}

	c.JSON(http.StatusOK, newProfileResponse(user))
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req types.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		logger.L().Error("profile update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, newProfileResponse(user))
}

func (h *UserHandler) GetGoals(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	user, err := h.users.GetUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get goals"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"goals": user.Goals})
}

func (h *UserHandler) UpdateGoals(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req types.UpdateGoalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goals, err := h.users.UpdateGoals(c.Request.Context(), userID, &req)
	if err != nil {
		logger.L().Error("goals update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update goals"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"goals": goals})
}

// GetDailyLog returns the log entry for ?date= (default today), creating
// an empty entry on first access.
func (h *UserHandler) GetDailyLog(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	day := h.users.Today()
	if raw := c.Query("date"); raw != "" {
		parsed, err := service.ParseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
			return
		}
		day = parsed
	}

	log, err := h.users.GetOrCreateDailyLog(c.Request.Context(), userID, day)
	if err != nil {
		logger.L().Error("daily log fetch failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get daily log"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"daily_log": log})
}

func (h *UserHandler) UpdateDailyLog(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req types.UpdateDailyLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := h.users.UpdateDailyLog(c.Request.Context(), userID, &req)
	if err != nil {
		logger.L().Error("daily log update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update daily log"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"daily_log": log})
}

func (h *UserHandler) GetDashboard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	dashboard, err := h.dashboard.Dashboard(c.Request.Context(), userID)
	if err != nil {
		logger.L().Error("dashboard fetch failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get dashboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"dashboard": dashboard})
}
