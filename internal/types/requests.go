package types

// RegisterRequest is the body for POST /auth/register. Biometrics are
// optional at signup and can be filled in later via the profile.
type RegisterRequest struct {
	Name          string   `json:"name" binding:"required"`
	Email         string   `json:"email" binding:"required,email"`
	Password      string   `json:"password" binding:"required,min=6"`
	Age           *int     `json:"age" binding:"omitempty,gte=10,lte=120"`
	Gender        string   `json:"gender" binding:"omitempty,oneof=male female other"`
	HeightCm      *float64 `json:"height" binding:"omitempty,gte=50,lte=300"`
	WeightKg      *float64 `json:"weight" binding:"omitempty,gte=20,lte=500"`
	ActivityLevel string   `json:"activity_level" binding:"omitempty,oneof=sedentary light moderate active very_active"`
}

// LoginRequest is the body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest carries the profile fields a user may change.
// Pointer fields distinguish "not provided" from zero values.
type UpdateProfileRequest struct {
	Name          *string  `json:"name"`
	Age           *int     `json:"age" binding:"omitempty,gte=10,lte=120"`
	Gender        *string  `json:"gender" binding:"omitempty,oneof=male female other"`
	HeightCm      *float64 `json:"height" binding:"omitempty,gte=50,lte=300"`
	WeightKg      *float64 `json:"weight" binding:"omitempty,gte=20,lte=500"`
	ActivityLevel *string  `json:"activity_level" binding:"omitempty,oneof=sedentary light moderate active very_active"`
}

// UpdateGoalsRequest is a partial update of daily targets.
type UpdateGoalsRequest struct {
	DailyCalories *int     `json:"daily_calories" binding:"omitempty,gte=0"`
	DailyWater    *int     `json:"daily_water" binding:"omitempty,gte=0,lte=50"`
	DailySteps    *int     `json:"daily_steps" binding:"omitempty,gte=0"`
	TargetWeight  *float64 `json:"target_weight" binding:"omitempty,gte=20,lte=500"`
}

// CreateMealRequest is the body for POST /meals.
type CreateMealRequest struct {
	Name        string   `json:"name" binding:"required"`
	MealType    string   `json:"meal_type" binding:"required,oneof=breakfast lunch dinner snack"`
	Calories    *float64 `json:"calories" binding:"required,gte=0"`
	Protein     float64  `json:"protein" binding:"gte=0"`
	Carbs       float64  `json:"carbs" binding:"gte=0"`
	Fats        float64  `json:"fats" binding:"gte=0"`
	Fiber       float64  `json:"fiber" binding:"gte=0"`
	ServingSize string   `json:"serving_size"`
	OccurredAt  string   `json:"occurred_at"`
	Notes       string   `json:"notes" binding:"omitempty,max=500"`
}

// UpdateMealRequest is the body for PUT /meals/:id. Same constraints as
// creation; absent fields are left unchanged.
type UpdateMealRequest struct {
	Name        *string  `json:"name"`
	MealType    *string  `json:"meal_type" binding:"omitempty,oneof=breakfast lunch dinner snack"`
	Calories    *float64 `json:"calories" binding:"omitempty,gte=0"`
	Protein     *float64 `json:"protein" binding:"omitempty,gte=0"`
	Carbs       *float64 `json:"carbs" binding:"omitempty,gte=0"`
	Fats        *float64 `json:"fats" binding:"omitempty,gte=0"`
	Fiber       *float64 `json:"fiber" binding:"omitempty,gte=0"`
	ServingSize *string  `json:"serving_size"`
	Notes       *string  `json:"notes" binding:"omitempty,max=500"`
}

// CreateWorkoutRequest is the body for POST /workouts.
type CreateWorkoutRequest struct {
	Exercise        string   `json:"exercise" binding:"required"`
	Type            string   `json:"type" binding:"omitempty,oneof=cardio strength flexibility sports other"`
	DurationMinutes *int     `json:"duration" binding:"required,gte=1"`
	CaloriesBurned  *float64 `json:"calories_burned" binding:"required,gte=0"`
	Intensity       string   `json:"intensity" binding:"omitempty,oneof=low medium high"`
	Sets            *int     `json:"sets" binding:"omitempty,gte=0"`
	Reps            *int     `json:"reps" binding:"omitempty,gte=0"`
	WeightKg        *float64 `json:"weight" binding:"omitempty,gte=0"`
	DistanceKm      *float64 `json:"distance" binding:"omitempty,gte=0"`
	OccurredAt      string   `json:"occurred_at"`
	Notes           string   `json:"notes" binding:"omitempty,max=500"`
}

// UpdateWorkoutRequest is the body for PUT /workouts/:id.
type UpdateWorkoutRequest struct {
	Exercise        *string  `json:"exercise"`
	Type            *string  `json:"type" binding:"omitempty,oneof=cardio strength flexibility sports other"`
	DurationMinutes *int     `json:"duration" binding:"omitempty,gte=1"`
	CaloriesBurned  *float64 `json:"calories_burned" binding:"omitempty,gte=0"`
	Intensity       *string  `json:"intensity" binding:"omitempty,oneof=low medium high"`
	Sets            *int     `json:"sets" binding:"omitempty,gte=0"`
	Reps            *int     `json:"reps" binding:"omitempty,gte=0"`
	WeightKg        *float64 `json:"weight" binding:"omitempty,gte=0"`
	DistanceKm      *float64 `json:"distance" binding:"omitempty,gte=0"`
	Notes           *string  `json:"notes" binding:"omitempty,max=500"`
}

// UpdateDailyLogRequest upserts the daily log for a date. Date defaults to
// today when empty; it accepts YYYY-MM-DD or RFC 3339.
type UpdateDailyLogRequest struct {
	Date        string   `json:"date"`
	WaterIntake *int     `json:"water_intake" binding:"omitempty,gte=0,lte=50"`
	Steps       *int     `json:"steps" binding:"omitempty,gte=0"`
	Weight      *float64 `json:"weight" binding:"omitempty,gte=20,lte=500"`
	SleepHours  *float64 `json:"sleep" binding:"omitempty,gte=0,lte=24"`
	Mood        *string  `json:"mood" binding:"omitempty,oneof=excellent good okay bad terrible"`
	Notes       *string  `json:"notes" binding:"omitempty,max=1000"`
}
