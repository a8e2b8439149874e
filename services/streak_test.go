package services

import (
	"context"
	"testing"
	"time"

	"healthtrack/models"
	"healthtrack/repository"
	"healthtrack/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func ptr(t time.Time) *time.Time { return &t }

func TestNextStreak(t *testing.T) {
	tests := []struct {
		name        string
		streak      int
		last        *time.Time
		now         string
		want        int
		wantChanged bool
	}{
		{"first login", 0, nil, "2026-03-10T09:00:00Z", 1, true},
		{"same day", 4, ptr(at("2026-03-10T00:05:00Z")), "2026-03-10T23:50:00Z", 4, false},
		{"next day", 4, ptr(at("2026-03-09T23:59:00Z")), "2026-03-10T00:01:00Z", 5, true},
		{"two day gap", 4, ptr(at("2026-03-08T12:00:00Z")), "2026-03-10T12:00:00Z", 1, true},
		{"month boundary", 9, ptr(at("2026-02-28T20:00:00Z")), "2026-03-01T07:00:00Z", 10, true},
		{"year boundary", 2, ptr(at("2025-12-31T10:00:00Z")), "2026-01-01T10:00:00Z", 3, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, changed := NextStreak(tc.streak, tc.last, at(tc.now), time.UTC)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.wantChanged, changed)
		})
	}
}

func TestNextStreakUsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	// 20:00Z and 03:00Z next day are the same local day in UTC+5
	got, changed := NextStreak(3, ptr(at("2026-03-09T20:00:00Z")), at("2026-03-10T03:00:00Z"), loc)
	assert.False(t, changed)
	assert.Equal(t, 3, got)
}

func seedUser(t *testing.T, users repository.UserRepository, email string, streak int, last *time.Time) *models.User {
	t.Helper()
	u := &models.User{
		Name: "Streaker", Email: email, Password: "x", Gender: "male",
		Age: 30, Height: 175, CurrentWeight: 80, TargetWeight: 70,
		ActivityLevel: "moderate", CalorieGoal: 2211, Streak: streak, LastLogin: last,
	}
	require.NoError(t, users.Create(context.Background(), u))
	return u
}

func TestRecordLoginPersists(t *testing.T) {
	users := repository.NewUserRepo(testutil.NewDB(t))
	u := seedUser(t, users, "s@example.com", 2, ptr(at("2026-03-09T08:00:00Z")))

	svc := NewStreakService(users, time.UTC)
	svc.Now = func() time.Time { return at("2026-03-10T08:00:00Z") }

	got, err := svc.RecordLogin(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Streak)

	// second login the same day is a no-op
	got, err = svc.RecordLogin(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Streak)

	stored, err := users.FindByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.Streak)
	assert.Equal(t, int64(1), stored.StreakVersion)
}

// racingUsers makes the first n streak writes lose their compare-and-set.
type racingUsers struct {
	repository.UserRepository
	losses int
	calls  int
}

func (r *racingUsers) UpdateStreak(ctx context.Context, id string, version int64, streak int, last time.Time) (bool, error) {
	r.calls++
	if r.calls <= r.losses {
		return false, nil
	}
	return r.UserRepository.UpdateStreak(ctx, id, version, streak, last)
}

func TestRecordLoginRetriesLostRace(t *testing.T) {
	base := repository.NewUserRepo(testutil.NewDB(t))
	u := seedUser(t, base, "race@example.com", 1, ptr(at("2026-03-09T08:00:00Z")))

	users := &racingUsers{UserRepository: base, losses: 2}
	svc := NewStreakService(users, time.UTC)
	svc.Now = func() time.Time { return at("2026-03-10T08:00:00Z") }

	got, err := svc.RecordLogin(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Streak)
	assert.Equal(t, 3, users.calls)
}

func TestRecordLoginGivesUp(t *testing.T) {
	base := repository.NewUserRepo(testutil.NewDB(t))
	u := seedUser(t, base, "busy@example.com", 1, ptr(at("2026-03-08T08:00:00Z")))

	users := &racingUsers{UserRepository: base, losses: 10}
	svc := NewStreakService(users, time.UTC)
	svc.Now = func() time.Time { return at("2026-03-10T08:00:00Z") }

	_, err := svc.RecordLogin(context.Background(), u.ID)
	assert.ErrorIs(t, err, ErrStreakContention)
}
