package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mtharrison/fitlog/backend/internal/api"
	"github.com/mtharrison/fitlog/backend/internal/logger"
	"github.com/mtharrison/fitlog/backend/internal/middleware"
)

// Server is the HTTP server wrapping the API router.
type Server struct {
	router *gin.Engine
	http   *http.Server
}

// New builds the router with CORS and all API routes registered.
// redisClient may be nil.
func New(db *gorm.DB, redisClient *redis.Client, jwtSecret string) *Server {
	router := gin.Default()
	router.Use(middleware.CORS())

	api.SetupAPI(router, db, redisClient, jwtSecret)

	return &Server{router: router}
}

// Router exposes the underlying engine. Used by tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start listens on the given port and blocks until the server exits.
func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:              ":" + port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.L().Info("server listening", zap.String("port", port))
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop(ctx context.Context) error {
	if s.http != nil {
		return s.http.Shutdown(ctx)
	}
	return nil
}
