// Package metrics computes derived health metrics (BMI, BMR, TDEE and
// calorie recommendations) from profile biometrics. Everything here is a
// pure function over values the caller already holds.
package metrics

import (
	"errors"
	"math"
)

// ErrIncompleteProfile is returned when a calculation needs biometrics the
// profile does not carry. Callers should render "unavailable" rather than
// fail the whole request.
var ErrIncompleteProfile = errors.New("profile is missing weight, height, age or gender")

// Activity multipliers for the Mifflin-St Jeor TDEE estimate.
var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// BMI returns body mass index rounded to two decimals. ok is false when
// either input is missing or non-positive.
func BMI(heightCm, weightKg float64) (float64, bool) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, false
	}
	h := heightCm / 100.0
	return math.Round(weightKg/(h*h)*100) / 100, true
}

// BMR computes basal metabolic rate using the Mifflin-St Jeor equation.
// Only an exact "male" gets the +5 offset; every other gender value uses
// -161, matching the behavior the mobile clients were built against.
func BMR(weightKg, heightCm float64, age int, gender string) (float64, error) {
	if weightKg <= 0 || heightCm <= 0 || age <= 0 || gender == "" {
		return 0, ErrIncompleteProfile
	}
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}
	return bmr, nil
}

// TDEE scales a BMR by the activity multiplier. Unrecognized levels fall
// back to the moderate multiplier.
func TDEE(bmr float64, activityLevel string) float64 {
	mult, ok := activityMultipliers[activityLevel]
	if !ok {
		mult = activityMultipliers["moderate"]
	}
	return bmr * mult
}

// Recommendations are daily calorie targets derived from TDEE.
type Recommendations struct {
	Maintain    int `json:"maintain"`
	MildLoss    int `json:"mild_weight_loss"`
	Loss        int `json:"weight_loss"`
	ExtremeLoss int `json:"extreme_weight_loss"`
	MildGain    int `json:"mild_weight_gain"`
	Gain        int `json:"weight_gain"`
}

// Recommend returns calorie targets at the standard deficits/surpluses,
// each rounded to the nearest whole calorie.
func Recommend(tdee float64) Recommendations {
	round := func(v float64) int { return int(math.Round(v)) }
	return Recommendations{
		Maintain:    round(tdee),
		MildLoss:    round(tdee - 250),
		Loss:        round(tdee - 500),
		ExtremeLoss: round(tdee - 1000),
		MildGain:    round(tdee + 250),
		Gain:        round(tdee + 500),
	}
}

// Category maps a BMI value to its WHO band label.
func Category(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	default:
		return "Obese"
	}
}
