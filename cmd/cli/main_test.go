package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"healthtrack/repository"
	"healthtrack/routes"
	"healthtrack/services"
	"healthtrack/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cannedGenerator string

func (g cannedGenerator) Generate(context.Context, string) (string, error) {
	return string(g), nil
}

func startAPI(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewDB(t)
	users := repository.NewUserRepo(db)
	foods := repository.NewFoodRepo(db)
	exercises := repository.NewExerciseRepo(db)
	hub := services.NewRealtimeHub()
	dashboard := services.NewDashboardService(foods, exercises, time.UTC)

	srv := httptest.NewServer(routes.SetupRouter(routes.Deps{
		Auth:      services.NewAuthService(users, services.NewStreakService(users, time.UTC), nil, "cli-secret"),
		Users:     services.NewUserService(users, nil),
		Foods:     services.NewFoodService(foods, dashboard, nil, hub, time.UTC),
		Exercises: services.NewExerciseService(exercises, hub, time.UTC),
		Dashboard: dashboard,
		AI:        services.NewAIService(cannedGenerator(`[{"name":"Banana","calories":105}]`), nil),
		Alerts:    services.NewAlertService(repository.NewAlertRepo(db), hub, nil),
		Hub:       hub,
	}))
	t.Cleanup(srv.Close)

	t.Setenv("HEALTHTRACK_URL", srv.URL)
	t.Setenv("HEALTHTRACK_SESSION", filepath.Join(t.TempDir(), "session.json"))
}

func runCLI(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, run(args, &out), out.String())
	return out.String()
}

func TestUsage(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(nil, &out))
	assert.Contains(t, out.String(), "usage: healthtrack")
}

func TestCLIFlow(t *testing.T) {
	startAPI(t)

	out := runCLI(t, "register", "--name", "Kim", "--email", "kim@example.com", "--password", "pw",
		"--gender", "male", "--age", "30", "--height", "175", "--weight", "80", "--target", "70", "--activity", "moderate")
	assert.Contains(t, out, "Your daily goal is 2211 kcal")

	out = runCLI(t, "add-food", "--name", "Oats", "--calories", "300")
	assert.Contains(t, out, "Logged Oats (300 kcal)")

	out = runCLI(t, "ai-food", "--log", "a", "banana")
	assert.Contains(t, out, "Banana")
	assert.Contains(t, out, "Logged Banana (105 kcal)")

	out = runCLI(t, "add-exercise", "--name", "Run", "--calories", "200", "--minutes", "20")
	assert.Contains(t, out, "Logged Run")

	out = runCLI(t, "today")
	assert.Contains(t, out, "Goal 2211 + burned 200 - eaten 405 = 2006 kcal remaining")

	runCLI(t, "logout")
	var buf bytes.Buffer
	err := run([]string{"today"}, &buf)
	assert.Error(t, err)

	out = runCLI(t, "login", "--email", "kim@example.com", "--password", "pw")
	assert.Contains(t, out, "1-day streak")
}

func TestUnknownCommand(t *testing.T) {
	t.Setenv("HEALTHTRACK_SESSION", filepath.Join(t.TempDir(), "session.json"))
	err := run([]string{"fly"}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "unknown command")
}
