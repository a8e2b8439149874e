package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"healthtrack/models"
	"healthtrack/repository"
	"healthtrack/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingBroadcaster struct {
	mu     sync.Mutex
	events []Event
}

func (r *recordingBroadcaster) Broadcast(_ string, payload any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ev, ok := payload.(Event); ok {
		r.events = append(r.events, ev)
	}
}

func (r *recordingBroadcaster) kinds() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Kind)
	}
	return out
}

func TestBalance(t *testing.T) {
	foods := []models.FoodEntry{
		{Calories: 300, Protein: 20, Carbs: 30, Fat: 10},
		{Calories: 450, Protein: 25, Carbs: 50, Fat: 15},
	}
	exercises := []models.ExerciseEntry{{CaloriesBurned: 200}}

	s := Balance(2000, foods, exercises)
	assert.Equal(t, 750.0, s.Consumed)
	assert.Equal(t, 200.0, s.Burned)
	assert.Equal(t, 1450.0, s.Remaining)
	assert.Equal(t, 45.0, s.Protein)
	assert.Equal(t, 2, s.Foods)
	assert.Equal(t, 1, s.Exercises)
}

func TestBalanceDefaultsGoal(t *testing.T) {
	s := Balance(0, nil, nil)
	assert.Equal(t, DefaultCalorieGoal, s.CalorieGoal)
	assert.Equal(t, float64(DefaultCalorieGoal), s.Remaining)
}

func TestBalanceKeepsNegativeGoal(t *testing.T) {
	s := Balance(-120, []models.FoodEntry{{Calories: 100}}, nil)
	assert.Equal(t, -120, s.CalorieGoal)
	assert.Equal(t, -220.0, s.Remaining)
}

type entryFixture struct {
	users     repository.UserRepository
	dashboard *DashboardService
	foods     *FoodService
	exercises *ExerciseService
	alerts    *AlertService
	rt        *recordingBroadcaster
	clock     time.Time
}

func newEntryFixture(t *testing.T) *entryFixture {
	t.Helper()
	db := testutil.NewDB(t)
	f := &entryFixture{
		users: repository.NewUserRepo(db),
		rt:    &recordingBroadcaster{},
		clock: at("2026-03-10T12:00:00Z"),
	}
	now := func() time.Time { return f.clock }

	f.dashboard = NewDashboardService(repository.NewFoodRepo(db), repository.NewExerciseRepo(db), time.UTC)
	f.dashboard.Now = now
	f.alerts = NewAlertService(repository.NewAlertRepo(db), f.rt, nil)
	f.alerts.Now = now
	f.foods = NewFoodService(repository.NewFoodRepo(db), f.dashboard, f.alerts, f.rt, time.UTC)
	f.foods.Now = now
	f.exercises = NewExerciseService(repository.NewExerciseRepo(db), f.rt, time.UTC)
	f.exercises.Now = now
	return f
}

func TestDashboardSummaryToday(t *testing.T) {
	f := newEntryFixture(t)
	ctx := context.Background()
	user := seedUser(t, f.users, "dash@example.com", 3, nil)
	user.CalorieGoal = 2000

	// yesterday's meal must not count
	f.clock = at("2026-03-09T23:30:00Z")
	_, err := f.foods.Add(ctx, user, AddFoodInput{Name: "Late snack", Calories: 999})
	require.NoError(t, err)

	f.clock = at("2026-03-10T08:00:00Z")
	_, err = f.foods.Add(ctx, user, AddFoodInput{Name: "Oats", Calories: 300})
	require.NoError(t, err)
	f.clock = at("2026-03-10T13:00:00Z")
	_, err = f.foods.Add(ctx, user, AddFoodInput{Name: "Rice bowl", Calories: 450})
	require.NoError(t, err)
	_, err = f.exercises.Add(ctx, user.ID, AddExerciseInput{ActivityName: "Run", CaloriesBurned: 200, DurationMinutes: 20})
	require.NoError(t, err)

	f.clock = at("2026-03-10T21:00:00Z")
	s, err := f.dashboard.Summary(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-10", s.Date)
	assert.Equal(t, 750.0, s.Consumed)
	assert.Equal(t, 200.0, s.Burned)
	assert.Equal(t, 1450.0, s.Remaining)
	assert.Equal(t, 3, s.Streak)

	foods, err := f.foods.Today(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, foods, 2)
	assert.Equal(t, "Oats", foods[0].Name)

	exercises, err := f.exercises.Today(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, exercises, 1)
}

func TestFoodAddRaisesGoalExceededOnce(t *testing.T) {
	f := newEntryFixture(t)
	ctx := context.Background()
	user := seedUser(t, f.users, "over@example.com", 1, nil)
	user.CalorieGoal = 1000

	_, err := f.foods.Add(ctx, user, AddFoodInput{Name: "Lunch", Calories: 600})
	require.NoError(t, err)
	_, err = f.foods.Add(ctx, user, AddFoodInput{Name: "Dinner", Calories: 500})
	require.NoError(t, err)
	_, err = f.foods.Add(ctx, user, AddFoodInput{Name: "Dessert", Calories: 100})
	require.NoError(t, err)

	alerts, err := f.alerts.Recent(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, AlertGoalExceeded, alerts[0].Type)
	assert.Contains(t, alerts[0].Message, "100 kcal over")

	assert.Equal(t, []string{"food.created", "food.created", "alert.created", "food.created"}, f.rt.kinds())
}
