package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBMI(t *testing.T) {
	bmi, ok := BMI(180, 72)
	assert.True(t, ok)
	assert.Equal(t, 22.22, bmi)
}

func TestBMIUnavailable(t *testing.T) {
	_, ok := BMI(0, 72)
	assert.False(t, ok)

	_, ok = BMI(180, -1)
	assert.False(t, ok)
}

func TestBMR(t *testing.T) {
	bmr, err := BMR(70, 175, 25, "male")
	assert.NoError(t, err)
	// 10*70 + 6.25*175 - 5*25 + 5
	assert.Equal(t, 1673.75, bmr)
}

func TestBMRNonMaleOffset(t *testing.T) {
	female, err := BMR(70, 175, 25, "female")
	assert.NoError(t, err)
	other, err := BMR(70, 175, 25, "other")
	assert.NoError(t, err)
	// "female" and "other" share the same offset.
	assert.Equal(t, female, other)
	assert.Equal(t, 1507.75, female)
}

func TestBMRIncompleteProfile(t *testing.T) {
	_, err := BMR(0, 175, 25, "male")
	assert.ErrorIs(t, err, ErrIncompleteProfile)

	_, err = BMR(70, 175, 25, "")
	assert.ErrorIs(t, err, ErrIncompleteProfile)

	_, err = BMR(70, 175, 0, "male")
	assert.ErrorIs(t, err, ErrIncompleteProfile)
}

func TestTDEE(t *testing.T) {
	assert.InDelta(t, 2594.3125, TDEE(1673.75, "moderate"), 0.0001)
	assert.InDelta(t, 1673.75*1.2, TDEE(1673.75, "sedentary"), 0.0001)
	// Unknown levels fall back to moderate.
	assert.Equal(t, TDEE(1673.75, "moderate"), TDEE(1673.75, "couch"))
}

func TestRecommend(t *testing.T) {
	rec := Recommend(2749.3125)
	assert.Equal(t, Recommendations{
		Maintain:    2749,
		MildLoss:    2499,
		Loss:        2249,
		ExtremeLoss: 1749,
		MildGain:    2999,
		Gain:        3249,
	}, rec)
}

func TestCategory(t *testing.T) {
	assert.Equal(t, "Underweight", Category(18.4))
	assert.Equal(t, "Normal weight", Category(22.22))
	assert.Equal(t, "Overweight", Category(27))
	assert.Equal(t, "Obese", Category(31))
}
