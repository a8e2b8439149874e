package client

import (
	"strings"
	"time"
)

type User struct {
	ID             string `json:"_id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	CalorieGoal    int    `json:"calorieGoal"`
	Streak         int    `json:"streak"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

type Profile struct {
	User
	Gender        string     `json:"gender"`
	Age           int        `json:"age"`
	Height        float64    `json:"height"`
	CurrentWeight float64    `json:"currentWeight"`
	TargetWeight  float64    `json:"targetWeight"`
	ActivityLevel string     `json:"activityLevel"`
	LastLogin     *time.Time `json:"lastLogin"`
	BMI           float64    `json:"bmi"`
	BMICategory   string     `json:"bmiCategory"`
}

type RegisterRequest struct {
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Password      string  `json:"password"`
	Gender        string  `json:"gender"`
	Age           int     `json:"age"`
	Height        float64 `json:"height"`
	CurrentWeight float64 `json:"currentWeight"`
	TargetWeight  float64 `json:"targetWeight"`
	ActivityLevel string  `json:"activityLevel,omitempty"`
}

type FoodInput struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein,omitempty"`
	Carbs    float64 `json:"carbs,omitempty"`
	Fat      float64 `json:"fat,omitempty"`
}

type FoodEntry struct {
	ID string `json:"_id"`
	FoodInput
	Date time.Time `json:"date"`
}

type ExerciseInput struct {
	ActivityName    string  `json:"activityName"`
	CaloriesBurned  float64 `json:"caloriesBurned"`
	DurationMinutes float64 `json:"durationMinutes"`
}

type ExerciseEntry struct {
	ID string `json:"_id"`
	ExerciseInput
	Date time.Time `json:"date"`
}

// FoodCandidate and ExerciseCandidate are AI suggestions, not yet logged.
type FoodCandidate = FoodInput
type ExerciseCandidate = ExerciseInput

type Summary struct {
	Date        string  `json:"date"`
	CalorieGoal int     `json:"calorieGoal"`
	Consumed    float64 `json:"consumed"`
	Burned      float64 `json:"burned"`
	Remaining   float64 `json:"remaining"`
	Streak      int     `json:"streak"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
}

type Alert struct {
	ID        uint      `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

const defaultGoal = 2000

// Totals is the client-side day balance.
type Totals struct {
	Goal      int
	Consumed  float64
	Burned    float64
	Remaining float64
}

// ComputeTotals sums the day's entries; a zero goal counts as 2000.
func ComputeTotals(foods []FoodEntry, exercises []ExerciseEntry, goal int) Totals {
	if goal == 0 {
		goal = defaultGoal
	}
	t := Totals{Goal: goal}
	for _, f := range foods {
		t.Consumed += f.Calories
	}
	for _, e := range exercises {
		t.Burned += e.CaloriesBurned
	}
	t.Remaining = float64(goal) + t.Burned - t.Consumed
	return t
}

// CombineFoods folds AI candidates into a single loggable entry.
func CombineFoods(items []FoodCandidate) FoodInput {
	var out FoodInput
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.Name)
		out.Calories += it.Calories
		out.Protein += it.Protein
		out.Carbs += it.Carbs
		out.Fat += it.Fat
	}
	out.Name = strings.Join(names, " & ")
	return out
}

func CombineExercises(items []ExerciseCandidate) ExerciseInput {
	var out ExerciseInput
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.ActivityName)
		out.CaloriesBurned += it.CaloriesBurned
		out.DurationMinutes += it.DurationMinutes
	}
	out.ActivityName = strings.Join(names, " & ")
	return out
}
