package services

import (
	"context"
	"fmt"
	"time"

	"healthtrack/models"
	"healthtrack/repository"
	"healthtrack/utils"
)

type AddExerciseInput struct {
	ActivityName    string
	CaloriesBurned  float64
	DurationMinutes float64
}

type ExerciseService struct {
	exercises repository.ExerciseRepository
	rt        Broadcaster
	loc       *time.Location
	Now       func() time.Time
}

func NewExerciseService(exercises repository.ExerciseRepository, rt Broadcaster, loc *time.Location) *ExerciseService {
	return &ExerciseService{exercises: exercises, rt: rt, loc: loc, Now: time.Now}
}

func (s *ExerciseService) Today(ctx context.Context, userID string) ([]models.ExerciseEntry, error) {
	start, end := utils.DayWindow(s.Now(), s.loc)
	return s.exercises.ListBetween(ctx, userID, start, end)
}

func (s *ExerciseService) Add(ctx context.Context, userID string, in AddExerciseInput) (*models.ExerciseEntry, error) {
	entry := &models.ExerciseEntry{
		UserID:          userID,
		ActivityName:    in.ActivityName,
		CaloriesBurned:  in.CaloriesBurned,
		DurationMinutes: in.DurationMinutes,
		Date:            s.Now(),
	}
	if err := s.exercises.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("save exercise: %w", err)
	}
	if s.rt != nil {
		s.rt.Broadcast(userID, Event{Kind: "exercise.created", Data: entry})
	}
	return entry, nil
}
