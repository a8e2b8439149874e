package services

import (
	"context"
	"fmt"
	"time"

	"healthtrack/models"
	"healthtrack/repository"
	"healthtrack/utils"
)

const streakAttempts = 3

// NextStreak applies one login at now to a {streak, lastLogin} pair and
// reports whether anything changed. Days are compared in loc.
func NextStreak(streak int, lastLogin *time.Time, now time.Time, loc *time.Location) (int, bool) {
	if lastLogin == nil || lastLogin.IsZero() {
		return 1, true
	}

	today := utils.DayStart(now, loc)
	last := utils.DayStart(*lastLogin, loc)

	switch {
	case last.Equal(today):
		return streak, false
	case last.Equal(today.AddDate(0, 0, -1)):
		return streak + 1, true
	default:
		return 1, true
	}
}

type StreakService struct {
	users repository.UserRepository
	loc   *time.Location
	Now   func() time.Time
}

func NewStreakService(users repository.UserRepository, loc *time.Location) *StreakService {
	return &StreakService{users: users, loc: loc, Now: time.Now}
}

// RecordLogin updates the user's streak for a successful login. Concurrent
// logins are serialized with a compare-and-set on the streak version.
func (s *StreakService) RecordLogin(ctx context.Context, userID string) (*models.User, error) {
	for attempt := 0; attempt < streakAttempts; attempt++ {
		user, err := s.users.FindByID(ctx, userID)
		if err != nil {
			return nil, err
		}

		now := s.Now()
		streak, changed := NextStreak(user.Streak, user.LastLogin, now, s.loc)
		if !changed {
			return user, nil
		}

		ok, err := s.users.UpdateStreak(ctx, user.ID, user.StreakVersion, streak, now)
		if err != nil {
			return nil, fmt.Errorf("update streak: %w", err)
		}
		if ok {
			user.Streak = streak
			user.LastLogin = &now
			user.StreakVersion++
			return user, nil
		}
		utils.Log.Infof("streak update for %s lost a race, retrying", userID)
	}
	return nil, ErrStreakContention
}
