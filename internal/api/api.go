package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/mtharrison/fitlog/backend/internal/middleware"
	"github.com/mtharrison/fitlog/backend/internal/nutrition"
	"github.com/mtharrison/fitlog/backend/internal/service"
)

// SetupAPI wires services, middleware and handlers onto the router.
// redisClient may be nil, in which case record writes are not rate
// limited.
func SetupAPI(router *gin.Engine, db *gorm.DB, redisClient *redis.Client, jwtSecret string) {
	router.GET("/health", HealthCheck(db))
	router.GET("/api/health", HealthCheck(db))

	authService := service.NewAuthService(db, jwtSecret)
	userService := service.NewUserService(db)
	mealService := service.NewMealService(db)
	workoutService := service.NewWorkoutService(db)
	dashboardService := service.NewDashboardService(db, mealService, workoutService)
	foodProvider := nutrition.NewStaticProvider()

	authHandler := NewAuthHandler(authService)
	userHandler := NewUserHandler(userService, dashboardService)
	mealHandler := NewMealHandler(mealService)
	workoutHandler := NewWorkoutHandler(workoutService)
	nutritionHandler := NewNutritionHandler(foodProvider, userService)

	v1 := router.Group("/api/v1")
	authHandler.RegisterRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	if redisClient != nil {
		limiter := middleware.NewRecordWriteRateLimiter(redisClient)
		protected.Use(writeRateLimit(limiter))
	}

	userHandler.RegisterRoutes(protected)
	mealHandler.RegisterRoutes(protected)
	workoutHandler.RegisterRoutes(protected)
	nutritionHandler.RegisterRoutes(protected)
}

// writeRateLimit applies the limiter to mutating requests only; reads
// pass through.
func writeRateLimit(limiter *middleware.RateLimiter) gin.HandlerFunc {
	limit := limiter.Middleware()
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
		default:
			limit(c)
		}
	}
}
