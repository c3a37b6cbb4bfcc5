package service

import (
	"context"

	"github.com/mtharrison/fitlog/backend/internal/models"
	"github.com/mtharrison/fitlog/backend/internal/types"
)

// IAuthService is the authentication contract handlers depend on.
type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	GenerateToken(user *models.User) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}
