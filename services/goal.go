package services

import (
	"math"
	"strings"
)

// activityMultipliers scales BMR to TDEE. Unknown levels fall back to sedentary.
var activityMultipliers = map[string]float64{
	"sedentary": 1.2,
	"light":     1.375,
	"moderate":  1.55,
	"active":    1.725,
}

const goalAdjustment = 500

type GoalInput struct {
	Gender        string
	Age           int
	HeightCm      float64
	CurrentWeight float64
	TargetWeight  float64
	ActivityLevel string
}

// ActivityMultiplier returns the TDEE factor for level.
func ActivityMultiplier(level string) float64 {
	if m, ok := activityMultipliers[strings.ToLower(strings.TrimSpace(level))]; ok {
		return m
	}
	return activityMultipliers["sedentary"]
}

// BMR is the Mifflin-St Jeor basal metabolic rate.
func BMR(gender string, age int, heightCm, weightKg float64) float64 {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if strings.EqualFold(strings.TrimSpace(gender), "female") {
		return bmr - 161
	}
	return bmr + 5
}

// CalculateCalorieGoal returns the daily calorie target: TDEE with a 500 kcal
// deficit when cutting, a 500 kcal surplus when bulking, or TDEE at maintenance.
func CalculateCalorieGoal(in GoalInput) int {
	tdee := BMR(in.Gender, in.Age, in.HeightCm, in.CurrentWeight) * ActivityMultiplier(in.ActivityLevel)

	switch {
	case in.CurrentWeight > in.TargetWeight:
		tdee -= goalAdjustment
	case in.CurrentWeight < in.TargetWeight:
		tdee += goalAdjustment
	}
	return int(math.Round(tdee))
}
