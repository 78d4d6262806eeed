package calc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBMI(t *testing.T) {
	tests := []struct {
		name     string
		weight   float64
		height   float64
		wantBMI  float64
		category string
	}{
		{"normal", 70, 175, 22.86, "Normal weight"},
		{"underweight", 50, 175, 16.33, "Underweight"},
		{"overweight", 85, 175, 27.76, "Overweight"},
		{"obese", 100, 175, 32.65, "Obese"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BMI(tt.weight, tt.height)
			assert.InDelta(t, tt.wantBMI, got.BMI, 0.01)
			assert.Equal(t, tt.category, got.Category)
		})
	}
}

func TestBMR(t *testing.T) {
	// Mifflin-St Jeor reference values.
	assert.InDelta(t, 1648.75, BMR(true, 70, 175, 30), 0.01)
	assert.InDelta(t, 1482.75, BMR(false, 70, 175, 30), 0.01)
}

func TestCalories(t *testing.T) {
	got := Calories(true, 70, 175, 30, ActivityModerate)
	assert.Equal(t, 2556, got.Maintenance) // 1648.75 * 1.55
	assert.Equal(t, got.Maintenance-500, got.WeightLoss)

	// Unknown activity falls back to sedentary.
	fallback := Calories(true, 70, 175, 30, "couch")
	assert.Equal(t, Calories(true, 70, 175, 30, ActivitySedentary), fallback)
}

func TestBodyFat(t *testing.T) {
	male := BodyFat(true, 180, 38, 85, 0)
	assert.InDelta(t, 22.62, male, 0.01)

	female := BodyFat(false, 165, 33, 70, 95)
	assert.InDelta(t, 51.08, female, 0.01)
}

func TestIdealWeight(t *testing.T) {
	got := IdealWeight(true, 180) // ~10.87 inches over 5 feet
	assert.InDelta(t, 72.65, got.RobinsonKg, 0.1)
	assert.InDelta(t, 75.00, got.DevineKg, 0.1)

	// Below five feet clamps the increment at zero.
	short := IdealWeight(false, 150)
	assert.InDelta(t, 49, short.RobinsonKg, 0.001)
}

func TestDueDate(t *testing.T) {
	lastPeriod := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	due, weeks := DueDate(lastPeriod, now)
	assert.Equal(t, time.Date(2026, 10, 8, 0, 0, 0, 0, time.UTC), due)
	assert.Equal(t, 8, weeks)
}

func TestPeriod(t *testing.T) {
	lastPeriod := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	got := Period(lastPeriod, 28)

	assert.Equal(t, time.Date(2026, 1, 29, 0, 0, 0, 0, time.UTC), got.NextPeriod)
	assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), got.OvulationDate)
	assert.Equal(t, time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), got.FertileWindowStart)
	assert.Equal(t, time.Date(2026, 1, 16, 0, 0, 0, 0, time.UTC), got.FertileWindowEnd)
}
