package services

import (
	"context"
	"fmt"
	"time"

	"healthtrack/models"
	"healthtrack/repository"
	"healthtrack/utils"
)

type AddFoodInput struct {
	Name     string
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}

type FoodService struct {
	foods     repository.FoodRepository
	dashboard *DashboardService
	alerts    *AlertService
	rt        Broadcaster
	loc       *time.Location
	Now       func() time.Time
}

// NewFoodService wires meal logging. alerts and rt may be nil.
func NewFoodService(foods repository.FoodRepository, dashboard *DashboardService, alerts *AlertService, rt Broadcaster, loc *time.Location) *FoodService {
	return &FoodService{foods: foods, dashboard: dashboard, alerts: alerts, rt: rt, loc: loc, Now: time.Now}
}

func (s *FoodService) Today(ctx context.Context, userID string) ([]models.FoodEntry, error) {
	start, end := utils.DayWindow(s.Now(), s.loc)
	return s.foods.ListBetween(ctx, userID, start, end)
}

func (s *FoodService) Add(ctx context.Context, user *models.User, in AddFoodInput) (*models.FoodEntry, error) {
	entry := &models.FoodEntry{
		UserID:   user.ID,
		Name:     in.Name,
		Calories: in.Calories,
		Protein:  in.Protein,
		Carbs:    in.Carbs,
		Fat:      in.Fat,
		Date:     s.Now(),
	}
	if err := s.foods.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("save food: %w", err)
	}

	if s.rt != nil {
		s.rt.Broadcast(user.ID, Event{Kind: "food.created", Data: entry})
	}
	s.checkGoal(ctx, user, entry)
	return entry, nil
}

// checkGoal raises an alert when this entry pushed the day's balance below zero.
func (s *FoodService) checkGoal(ctx context.Context, user *models.User, entry *models.FoodEntry) {
	if s.alerts == nil || s.dashboard == nil {
		return
	}
	summary, err := s.dashboard.Summary(ctx, user)
	if err != nil {
		utils.Log.Errorf("goal check for %s: %v", user.ID, err)
		return
	}
	if summary.Remaining >= 0 || summary.Remaining+entry.Calories < 0 {
		return
	}

	msg := fmt.Sprintf("You've gone %.0f kcal over today's %d kcal goal.", -summary.Remaining, summary.CalorieGoal)
	if _, err := s.alerts.Emit(ctx, user.ID, AlertGoalExceeded, msg); err != nil {
		utils.Log.Errorf("goal alert for %s: %v", user.ID, err)
	}
}
