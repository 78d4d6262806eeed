package calc

import (
	"math"
	"time"
)

// BMIResult holds the index and its conventional category.
type BMIResult struct {
	BMI      float64
	Category string
}

// BMI computes Body Mass Index from weight in kilograms and height in
// centimeters.
func BMI(weightKg, heightCm float64) BMIResult {
	heightM := heightCm / 100
	bmi := weightKg / (heightM * heightM)

	var category string
	switch {
	case bmi < 18.5:
		category = "Underweight"
	case bmi < 25:
		category = "Normal weight"
	case bmi < 30:
		category = "Overweight"
	default:
		category = "Obese"
	}
	return BMIResult{BMI: bmi, Category: category}
}

// BMR computes Basal Metabolic Rate with the Mifflin-St Jeor equation.
// Weight in kg, height in cm.
func BMR(male bool, weightKg, heightCm float64, ageYears int) float64 {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(ageYears)
	if male {
		return bmr + 5
	}
	return bmr - 161
}

// Activity levels for daily calorie needs.
const (
	ActivitySedentary = "sedentary"
	ActivityLight     = "light"
	ActivityModerate  = "moderate"
	ActivityActive    = "active"
	ActivityExtra     = "extra"
)

var activityMultipliers = map[string]float64{
	ActivitySedentary: 1.2,
	ActivityLight:     1.375,
	ActivityModerate:  1.55,
	ActivityActive:    1.725,
	ActivityExtra:     1.9,
}

// CalorieResult holds maintenance calories and deficit targets.
type CalorieResult struct {
	Maintenance int
	MildLoss    int // -250 kcal/day
	WeightLoss  int // -500 kcal/day
	ExtremeLoss int // -1000 kcal/day
}

// Calories estimates daily energy needs from BMR and an activity level.
// Unknown activity levels fall back to sedentary.
func Calories(male bool, weightKg, heightCm float64, ageYears int, activity string) CalorieResult {
	mult, ok := activityMultipliers[activity]
	if !ok {
		mult = activityMultipliers[ActivitySedentary]
	}
	maintenance := BMR(male, weightKg, heightCm, ageYears) * mult
	return CalorieResult{
		Maintenance: int(math.Round(maintenance)),
		MildLoss:    int(math.Round(maintenance - 250)),
		WeightLoss:  int(math.Round(maintenance - 500)),
		ExtremeLoss: int(math.Round(maintenance - 1000)),
	}
}

// BodyFat estimates body fat percentage with the U.S. Navy circumference
// method. All measurements in centimeters; hipCm is ignored for males.
func BodyFat(male bool, heightCm, neckCm, waistCm, hipCm float64) float64 {
	if male {
		return 86.010*math.Log10(waistCm-neckCm) - 70.041*math.Log10(heightCm) + 36.76
	}
	return 163.205*math.Log10(waistCm+hipCm-neckCm) - 97.684*math.Log10(heightCm) - 78.387
}

// IdealWeightResult gives the Robinson and Devine estimates in kilograms.
type IdealWeightResult struct {
	RobinsonKg float64
	DevineKg   float64
}

// IdealWeight estimates healthy weight from height in centimeters using the
// Robinson (1983) and Devine (1974) formulas, both expressed as a base plus
// an increment per inch over five feet.
func IdealWeight(male bool, heightCm float64) IdealWeightResult {
	inchesOverFiveFeet := heightCm/2.54 - 60
	if inchesOverFiveFeet < 0 {
		inchesOverFiveFeet = 0
	}
	if male {
		return IdealWeightResult{
			RobinsonKg: 52 + 1.9*inchesOverFiveFeet,
			DevineKg:   50 + 2.3*inchesOverFiveFeet,
		}
	}
	return IdealWeightResult{
		RobinsonKg: 49 + 1.7*inchesOverFiveFeet,
		DevineKg:   45.5 + 2.3*inchesOverFiveFeet,
	}
}

// DueDate returns the estimated delivery date (280 days after the last
// menstrual period) and the gestational age in completed weeks as of now.
func DueDate(lastPeriod, now time.Time) (due time.Time, gestationalWeeks int) {
	due = lastPeriod.AddDate(0, 0, 280)
	gestationalWeeks = int(now.Sub(lastPeriod).Hours() / 24 / 7)
	return due, gestationalWeeks
}

// PeriodResult holds the projected cycle dates.
type PeriodResult struct {
	NextPeriod         time.Time
	OvulationDate      time.Time
	FertileWindowStart time.Time
	FertileWindowEnd   time.Time
}

// Period projects the next period, ovulation day (14 days before it), and
// the surrounding fertile window from the last period start and cycle length
// in days.
func Period(lastPeriod time.Time, cycleDays int) PeriodResult {
	next := lastPeriod.AddDate(0, 0, cycleDays)
	ovulation := next.AddDate(0, 0, -14)
	return PeriodResult{
		NextPeriod:         next,
		OvulationDate:      ovulation,
		FertileWindowStart: ovulation.AddDate(0, 0, -5),
		FertileWindowEnd:   ovulation.AddDate(0, 0, 1),
	}
}
