package services

import (
	"context"
	"fmt"
	"time"

	"healthtrack/models"
	"healthtrack/repository"
	"healthtrack/utils"
)

// DefaultCalorieGoal applies to accounts whose goal is unset (zero).
const DefaultCalorieGoal = 2000

type DailySummary struct {
	Date        string  `json:"date"`
	CalorieGoal int     `json:"calorieGoal"`
	Consumed    float64 `json:"consumed"`
	Burned      float64 `json:"burned"`
	Remaining   float64 `json:"remaining"`
	Streak      int     `json:"streak"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	Foods       int     `json:"foods"`
	Exercises   int     `json:"exercises"`
}

// Balance totals a day's entries against goal: remaining = goal + burned - consumed.
func Balance(goal int, foods []models.FoodEntry, exercises []models.ExerciseEntry) DailySummary {
	if goal == 0 {
		goal = DefaultCalorieGoal
	}
	s := DailySummary{CalorieGoal: goal, Foods: len(foods), Exercises: len(exercises)}
	for _, f := range foods {
		s.Consumed += f.Calories
		s.Protein += f.Protein
		s.Carbs += f.Carbs
		s.Fat += f.Fat
	}
	for _, e := range exercises {
		s.Burned += e.CaloriesBurned
	}
	s.Remaining = float64(goal) + s.Burned - s.Consumed
	return s
}

type DashboardService struct {
	foods     repository.FoodRepository
	exercises repository.ExerciseRepository
	loc       *time.Location
	Now       func() time.Time
}

func NewDashboardService(foods repository.FoodRepository, exercises repository.ExerciseRepository, loc *time.Location) *DashboardService {
	return &DashboardService{foods: foods, exercises: exercises, loc: loc, Now: time.Now}
}

// Today returns the window of the current calendar day.
func (s *DashboardService) Today() (time.Time, time.Time) {
	return utils.DayWindow(s.Now(), s.loc)
}

func (s *DashboardService) Summary(ctx context.Context, user *models.User) (*DailySummary, error) {
	start, end := s.Today()

	foods, err := s.foods.ListBetween(ctx, user.ID, start, end)
	if err != nil {
		return nil, fmt.Errorf("list foods: %w", err)
	}
	exercises, err := s.exercises.ListBetween(ctx, user.ID, start, end)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}

	summary := Balance(user.CalorieGoal, foods, exercises)
	summary.Date = start.Format("2006-01-02")
	summary.Streak = user.Streak
	return &summary, nil
}
