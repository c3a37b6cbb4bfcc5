package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mtharrison/fitlog/backend/internal/metrics"
	"github.com/mtharrison/fitlog/backend/internal/models"
)

// ProfileResponse is a user profile with its derived BMI attached. BMI is
// null when the profile lacks height or weight.
type ProfileResponse struct {
	*models.User
	BMI         *float64 `json:"bmi"`
	BMICategory string   `json:"bmi_category,omitempty"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token string          `json:"token"`
	User  ProfileResponse `json:"user"`
}

func newProfileResponse(user *models.User) ProfileResponse {
	resp := ProfileResponse{User: user}
	if user.HeightCm != nil && user.WeightKg != nil {
		if bmi, ok := metrics.BMI(*user.HeightCm, *user.WeightKg); ok {
			resp.BMI = &bmi
			resp.BMICategory = metrics.Category(bmi)
		}
	}
	return resp
}

// currentUserID pulls the authenticated user's ID out of the gin context.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
